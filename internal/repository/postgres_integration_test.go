//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	"github.com/AlexCL0320/backend-banco-angeles/internal/infrastructure/database"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresSuite runs the gorm adapters against a real postgres with the
// embedded migrations applied.
type PostgresSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
}

func TestPostgresSuite(t *testing.T) {
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcpostgres.Run(s.ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("banco"),
		tcpostgres.WithUsername("banco"),
		tcpostgres.WithPassword("banco"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	s.Require().NoError(err)

	migrator, err := database.NewMigrator(s.db)
	s.Require().NoError(err)
	s.Require().NoError(migrator.Up())
}

func (s *PostgresSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresSuite) SetupTest() {
	s.Require().NoError(s.db.Exec(
		"TRUNCATE appointments, donors, users, addresses, coordinates, neighborhoods, municipalities, audit_logs RESTART IDENTITY CASCADE",
	).Error)
}

func (s *PostgresSuite) TestSeededRoles() {
	roles := NewRoleRepository(s.db)

	def, err := roles.FindDefault(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(def)
	s.Equal(entity.RoleDonor, def.Name)
}

func (s *PostgresSuite) TestCatalogConstraints() {
	municipalities := NewMunicipalityRepository(s.db)
	neighborhoods := NewNeighborhoodRepository(s.db)

	puebla, err := municipalities.Save(s.ctx, &entity.Municipality{Name: "Puebla"})
	s.Require().NoError(err)
	s.NotZero(puebla.ID)

	_, err = municipalities.Save(s.ctx, &entity.Municipality{Name: "PUEBLA"})
	s.ErrorIs(err, apperror.ErrAlreadyExists)
	constraint, _ := apperror.ViolatedConstraint(err)
	s.Equal("ux_municipalities_name", constraint)

	_, err = neighborhoods.Save(s.ctx, &entity.Neighborhood{Name: "Centro", MunicipalityID: 999})
	s.ErrorIs(err, apperror.ErrInvalidReference)

	centro, err := neighborhoods.Save(s.ctx, &entity.Neighborhood{Name: "Centro", MunicipalityID: puebla.ID})
	s.Require().NoError(err)
	s.Equal("Puebla", centro.Municipality.Name)

	err = municipalities.Delete(s.ctx, puebla.ID)
	s.ErrorIs(err, apperror.ErrPersistence)

	err = municipalities.Delete(s.ctx, 12345)
	s.ErrorIs(err, apperror.ErrNotFound)

	found, err := municipalities.FindByName(s.ctx, "puebla")
	s.Require().NoError(err)
	s.Equal(puebla.ID, found.ID)
}

func (s *PostgresSuite) TestConcurrentRegistrationKeepsEmailUnique() {
	users := NewUserRepository(s.db)

	const workers = 50
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		created  int
		rejected int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := users.Save(s.ctx, &entity.User{
				Username: fmt.Sprintf("user%d", i),
				Email:    "same@banco.mx",
				Sex:      "F",
				RoleID:   2,
				Password: "secret",
				IsActive: true,
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, apperror.ErrAlreadyExists):
				rejected++
			default:
				s.Failf("unexpected error", "%v", err)
			}
		}(i)
	}
	wg.Wait()

	s.Equal(1, created)
	s.Equal(workers-1, rejected)
}

func (s *PostgresSuite) TestUserPasswordIsHashed() {
	users := NewUserRepository(s.db)

	saved, err := users.Save(s.ctx, &entity.User{Username: "ana", Email: "ana@banco.mx", Sex: "F", RoleID: 2, Password: "secret", IsActive: true})
	s.Require().NoError(err)
	s.NotEqual("secret", saved.PasswordHash)
	s.Equal(entity.RoleDonor, saved.Role.Name)

	saved.Username = "ana.m"
	hash := saved.PasswordHash
	updated, err := users.Save(s.ctx, saved)
	s.Require().NoError(err)
	s.Equal("ana.m", updated.Username)
	s.Equal(hash, updated.PasswordHash, "an empty password keeps the stored hash")
}

func (s *PostgresSuite) TestAuditLogPaging() {
	logs := NewAuditLogRepository(s.db)

	for i := 1; i <= 3; i++ {
		s.Require().NoError(logs.Create(s.ctx, &entity.AuditLog{Action: "municipality.create", Entity: "municipality", EntityID: int64(i)}))
	}

	page, total, err := logs.FindAll(s.ctx, 2, 0)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(page, 2)
	s.Equal(int64(3), page[0].EntityID, "newest first")
}
