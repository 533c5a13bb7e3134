package usecase

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/config"
	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
	"github.com/AlexCL0320/backend-banco-angeles/internal/infrastructure/cache"
	"github.com/AlexCL0320/backend-banco-angeles/internal/repository/memory"
	"github.com/AlexCL0320/backend-banco-angeles/internal/service"
	"github.com/AlexCL0320/backend-banco-angeles/pkg/jwt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func ptr[T any](v T) *T { return &v }

// UsecaseSuite runs every family against one in-memory store, rebuilt per test.
type UsecaseSuite struct {
	suite.Suite
	ctx context.Context

	store      *memory.Store
	auditRepo  repository.AuditLogRepository
	tokenStore cache.TokenStore
	jwtService *jwt.JWTService

	municipalities MunicipalityUsecase
	neighborhoods  NeighborhoodUsecase
	coordinates    CoordinateUsecase
	addresses      AddressUsecase
	roles          RoleUsecase
	users          UserUsecase
	donors         DonorUsecase
	appointments   AppointmentUsecase
	auth           AuthUsecase
	auditLogs      AuditLogUsecase

	seq         int
	rolesSeeded bool
}

func TestUsecaseSuite(t *testing.T) {
	suite.Run(t, new(UsecaseSuite))
}

func (s *UsecaseSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.rolesSeeded = false
	log := quietLogger()

	municipalityRepo := memory.NewMunicipalityRepository(s.store)
	neighborhoodRepo := memory.NewNeighborhoodRepository(s.store)
	coordinateRepo := memory.NewCoordinateRepository(s.store)
	addressRepo := memory.NewAddressRepository(s.store)
	roleRepo := memory.NewRoleRepository(s.store)
	userRepo := memory.NewUserRepository(s.store)
	donorRepo := memory.NewDonorRepository(s.store)
	appointmentRepo := memory.NewAppointmentRepository(s.store)
	s.auditRepo = memory.NewAuditLogRepository(s.store)
	s.tokenStore = cache.NewMemoryTokenStore()
	s.jwtService = jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})

	audit := service.NewAuditService(log, s.auditRepo)

	s.municipalities = NewMunicipalityUsecase(log, municipalityRepo, audit)
	s.neighborhoods = NewNeighborhoodUsecase(log, neighborhoodRepo, municipalityRepo, audit)
	s.coordinates = NewCoordinateUsecase(log, coordinateRepo, audit)
	s.addresses = NewAddressUsecase(log, addressRepo, neighborhoodRepo, coordinateRepo, audit)
	s.roles = NewRoleUsecase(log, roleRepo, audit)
	s.users = NewUserUsecase(log, userRepo, roleRepo, s.tokenStore, audit)
	s.donors = NewDonorUsecase(log, donorRepo, userRepo, addressRepo, audit, config.DonorConfig{})
	s.appointments = NewAppointmentUsecase(log, appointmentRepo, donorRepo, audit)
	s.auth = NewAuthUsecase(log, userRepo, s.jwtService, s.tokenStore)
	s.auditLogs = NewAuditLogUsecase(log, s.auditRepo)
}

func (s *UsecaseSuite) municipality(name string) *entity.Municipality {
	m, err := s.municipalities.Create(s.ctx, &dto.CreateMunicipalityRequest{Name: name})
	s.Require().NoError(err)
	return m
}

func (s *UsecaseSuite) neighborhood(name string, municipalityID int64) *entity.Neighborhood {
	n, err := s.neighborhoods.Create(s.ctx, &dto.CreateNeighborhoodRequest{Name: name, MunicipalityID: municipalityID})
	s.Require().NoError(err)
	return n
}

func (s *UsecaseSuite) coordinate(lat, lon string) *entity.Coordinate {
	c, err := s.coordinates.Create(s.ctx, &dto.CreateCoordinateRequest{Latitude: lat, Longitude: lon})
	s.Require().NoError(err)
	return c
}

// address creates an address in a fresh municipality and neighborhood.
func (s *UsecaseSuite) address(street string) *entity.Address {
	m := s.municipality("Municipality " + street)
	n := s.neighborhood("Neighborhood "+street, m.ID)
	s.seq++
	c := s.coordinate(fmt.Sprintf("19.%04d", s.seq), "-99.1332")
	a, err := s.addresses.Create(s.ctx, &dto.CreateAddressRequest{
		Street:         street,
		ExteriorNumber: "10",
		NeighborhoodID: n.ID,
		CoordinateID:   c.ID,
	})
	s.Require().NoError(err)
	return a
}

// seedRoles inserts admin (id 1) and the default donor role (id 2).
func (s *UsecaseSuite) seedRoles() {
	if !s.rolesSeeded {
		s.store.SeedRoles()
		s.rolesSeeded = true
	}
}

func (s *UsecaseSuite) user(username string) *entity.User {
	s.seedRoles()
	u, err := s.users.Create(s.ctx, &dto.CreateUserRequest{
		Username: username,
		Email:    username + "@example.com",
		Sex:      "F",
		Password: "secret-pw",
	})
	s.Require().NoError(err)
	return u
}

func (s *UsecaseSuite) donorRequest(userID, addressID int64) *dto.CreateDonorRequest {
	return &dto.CreateDonorRequest{
		UserID:          userID,
		Name:            "Ana",
		PaternalSurname: "Lopez",
		Age:             30,
		BloodType:       "O+",
		Weight:          decimal.RequireFromString("62.50"),
		PhoneOne:        "5512345678",
		AddressID:       addressID,
	}
}

// donor creates a user and an address and a donor bound to both.
func (s *UsecaseSuite) donor(username string) *entity.Donor {
	u := s.user(username)
	a := s.address("Street " + username)
	d, err := s.donors.Create(s.ctx, s.donorRequest(u.ID, a.ID))
	s.Require().NoError(err)
	return d
}

func (s *UsecaseSuite) auditActions() []string {
	logs, _, err := s.auditRepo.FindAll(s.ctx, 1000, 0)
	s.Require().NoError(err)
	actions := make([]string, len(logs))
	for i, l := range logs {
		actions[i] = l.Entity + "." + l.Action
	}
	return actions
}
