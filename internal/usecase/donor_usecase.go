package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/config"
	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
	"github.com/AlexCL0320/backend-banco-angeles/internal/service"

	"github.com/sirupsen/logrus"
)

type DonorUsecase interface {
	GetAll(ctx context.Context, filter *entity.DonorFilter) ([]entity.Donor, error)
	// GetForMap lists the donors matching filter whose address has a coordinate.
	GetForMap(ctx context.Context, filter *entity.DonorFilter) ([]entity.Donor, error)
	GetByID(ctx context.Context, id int64) (*entity.Donor, error)
	GetByUserID(ctx context.Context, userID int64) (*entity.Donor, error)
	CheckEligibility(ctx context.Context, id int64) (*entity.Eligibility, error)
	Create(ctx context.Context, req *dto.CreateDonorRequest) (*entity.Donor, error)
	Update(ctx context.Context, id int64, req *dto.UpdateDonorRequest) (*entity.Donor, error)
	Delete(ctx context.Context, id int64) error
}

type donorUsecase struct {
	log          *logrus.Logger
	donorRepo    repository.DonorRepository
	userRepo     repository.UserRepository
	addressRepo  repository.AddressRepository
	auditService service.AuditService
	config       config.DonorConfig
	now          func() time.Time
}

func NewDonorUsecase(
	log *logrus.Logger,
	donorRepo repository.DonorRepository,
	userRepo repository.UserRepository,
	addressRepo repository.AddressRepository,
	auditService service.AuditService,
	cfg config.DonorConfig,
) DonorUsecase {
	return &donorUsecase{
		log:          log,
		donorRepo:    donorRepo,
		userRepo:     userRepo,
		addressRepo:  addressRepo,
		auditService: auditService,
		config:       cfg,
		now:          time.Now,
	}
}

func (u *donorUsecase) GetAll(ctx context.Context, filter *entity.DonorFilter) ([]entity.Donor, error) {
	if filter != nil && filter.BloodType != "" && !filter.BloodType.IsValid() {
		return nil, apperror.Validation("blood_type", "must be one of A+ A- B+ B- AB+ AB- O+ O-")
	}

	donors, err := u.donorRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find all donors: %+v", err)
		return nil, err
	}
	return donors, nil
}

func (u *donorUsecase) GetForMap(ctx context.Context, filter *entity.DonorFilter) ([]entity.Donor, error) {
	donors, err := u.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	located := make([]entity.Donor, 0, len(donors))
	for _, d := range donors {
		if d.Address != nil && d.Address.Coordinate != nil {
			located = append(located, d)
		}
	}
	return located, nil
}

func (u *donorUsecase) GetByID(ctx context.Context, id int64) (*entity.Donor, error) {
	donor, err := u.donorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find donor by ID: %+v", err)
		return nil, err
	}
	if donor == nil {
		return nil, notFound(ErrDonorNotFound, id)
	}
	return donor, nil
}

func (u *donorUsecase) GetByUserID(ctx context.Context, userID int64) (*entity.Donor, error) {
	donor, err := u.donorRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find donor by user ID: %+v", err)
		return nil, err
	}
	if donor == nil {
		return nil, fmt.Errorf("%w: user id %d", ErrDonorNotFound, userID)
	}
	return donor, nil
}

func (u *donorUsecase) CheckEligibility(ctx context.Context, id int64) (*entity.Eligibility, error) {
	donor, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	eligibility := donor.EligibilityAt(u.now())
	return &eligibility, nil
}

func (u *donorUsecase) checkUser(ctx context.Context, userID int64) error {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return notFound(ErrUserNotValid, userID)
	}
	return nil
}

func (u *donorUsecase) checkAddress(ctx context.Context, addressID int64) error {
	address, err := u.addressRepo.FindByID(ctx, addressID)
	if err != nil {
		u.log.Warnf("Failed to find address by ID: %+v", err)
		return err
	}
	if address == nil {
		return notFound(ErrAddressNotValid, addressID)
	}
	return nil
}

// checkDuplicate enforces one donor profile per user.
func (u *donorUsecase) checkDuplicate(ctx context.Context, userID, excludeID int64) error {
	existing, err := u.donorRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find donor by user ID: %+v", err)
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return fmt.Errorf("%w: user id %d", ErrDonorAlreadyExists, userID)
	}
	return nil
}

func (u *donorUsecase) validate(donor *entity.Donor) error {
	if err := donor.Validate(); err != nil {
		return err
	}
	if u.config.EnforceAgeRange {
		return donor.ValidateAgeRange()
	}
	return nil
}

func (u *donorUsecase) Create(ctx context.Context, req *dto.CreateDonorRequest) (*entity.Donor, error) {
	firstDonation, err := parseDate(req.FirstDonation)
	if err != nil {
		return nil, err
	}
	lastDonation, err := parseDate(req.LastDonation)
	if err != nil {
		return nil, err
	}

	donor := &entity.Donor{
		UserID:          req.UserID,
		Name:            req.Name,
		PaternalSurname: req.PaternalSurname,
		MaternalSurname: req.MaternalSurname,
		Age:             req.Age,
		BloodType:       entity.BloodType(req.BloodType),
		Weight:          req.Weight,
		PhoneOne:        req.PhoneOne,
		PhoneTwo:        req.PhoneTwo,
		Active:          true,
		FirstDonation:   firstDonation,
		LastDonation:    lastDonation,
		AddressID:       req.AddressID,
	}
	if req.Active != nil {
		donor.Active = *req.Active
	}
	if err := u.validate(donor); err != nil {
		return nil, err
	}

	if err := u.checkUser(ctx, donor.UserID); err != nil {
		return nil, err
	}
	if err := u.checkAddress(ctx, donor.AddressID); err != nil {
		return nil, err
	}
	if err := u.checkDuplicate(ctx, donor.UserID, 0); err != nil {
		return nil, err
	}

	saved, err := u.donorRepo.Save(ctx, donor)
	if err != nil {
		u.log.Warnf("Failed to create donor: %+v", err)
		return nil, storeError(err, ErrDonorAlreadyExists)
	}

	u.auditService.LogCreate(ctx, entity.AuditEntityDonor, saved.ID, saved)
	return saved, nil
}

func (u *donorUsecase) Update(ctx context.Context, id int64, req *dto.UpdateDonorRequest) (*entity.Donor, error) {
	donor, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *donor

	if err := applyDonorUpdate(donor, req); err != nil {
		return nil, err
	}
	if err := u.validate(donor); err != nil {
		return nil, err
	}

	if donor.UserID != old.UserID {
		if err := u.checkUser(ctx, donor.UserID); err != nil {
			return nil, err
		}
		if err := u.checkDuplicate(ctx, donor.UserID, id); err != nil {
			return nil, err
		}
	}
	if donor.AddressID != old.AddressID {
		if err := u.checkAddress(ctx, donor.AddressID); err != nil {
			return nil, err
		}
	}

	saved, err := u.donorRepo.Save(ctx, donor)
	if err != nil {
		u.log.Warnf("Failed to update donor: %+v", err)
		return nil, storeError(err, ErrDonorAlreadyExists)
	}

	if !old.Equal(saved) {
		u.auditService.LogUpdate(ctx, entity.AuditEntityDonor, id, old, saved)
	}
	return saved, nil
}

func applyDonorUpdate(donor *entity.Donor, req *dto.UpdateDonorRequest) error {
	setID(req.UserID, &donor.UserID)
	setID(req.AddressID, &donor.AddressID)

	if _, err := setText("name", req.Name, &donor.Name, true); err != nil {
		return err
	}
	if _, err := setText("paternal_surname", req.PaternalSurname, &donor.PaternalSurname, true); err != nil {
		return err
	}
	if _, err := setText("phone_one", req.PhoneOne, &donor.PhoneOne, true); err != nil {
		return err
	}
	if req.MaternalSurname != nil {
		donor.MaternalSurname = req.MaternalSurname
	}
	if req.PhoneTwo != nil {
		donor.PhoneTwo = req.PhoneTwo
	}
	if req.Age != nil {
		donor.Age = *req.Age
	}
	if req.BloodType != nil {
		donor.BloodType = entity.BloodType(*req.BloodType)
	}
	if req.Weight != nil {
		donor.Weight = *req.Weight
	}
	if req.Active != nil {
		donor.Active = *req.Active
	}
	if req.FirstDonation != nil {
		first, err := parseDate(req.FirstDonation)
		if err != nil {
			return err
		}
		donor.FirstDonation = first
	}
	if req.LastDonation != nil {
		last, err := parseDate(req.LastDonation)
		if err != nil {
			return err
		}
		donor.LastDonation = last
	}
	return nil
}

func (u *donorUsecase) Delete(ctx context.Context, id int64) error {
	donor, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.donorRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete donor: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, entity.AuditEntityDonor, id, donor)
	return nil
}
