package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
	"github.com/AlexCL0320/backend-banco-angeles/internal/service"

	"github.com/sirupsen/logrus"
)

type MunicipalityUsecase interface {
	GetAll(ctx context.Context) ([]entity.Municipality, error)
	GetByID(ctx context.Context, id int64) (*entity.Municipality, error)
	GetByName(ctx context.Context, name string) (*entity.Municipality, error)
	Create(ctx context.Context, req *dto.CreateMunicipalityRequest) (*entity.Municipality, error)
	Update(ctx context.Context, id int64, req *dto.UpdateMunicipalityRequest) (*entity.Municipality, error)
	Delete(ctx context.Context, id int64) error
}

type municipalityUsecase struct {
	log              *logrus.Logger
	municipalityRepo repository.MunicipalityRepository
	auditService     service.AuditService
}

func NewMunicipalityUsecase(
	log *logrus.Logger,
	municipalityRepo repository.MunicipalityRepository,
	auditService service.AuditService,
) MunicipalityUsecase {
	return &municipalityUsecase{
		log:              log,
		municipalityRepo: municipalityRepo,
		auditService:     auditService,
	}
}

func (u *municipalityUsecase) GetAll(ctx context.Context) ([]entity.Municipality, error) {
	municipalities, err := u.municipalityRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all municipalities: %+v", err)
		return nil, err
	}
	return municipalities, nil
}

func (u *municipalityUsecase) GetByID(ctx context.Context, id int64) (*entity.Municipality, error) {
	municipality, err := u.municipalityRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find municipality by ID: %+v", err)
		return nil, err
	}
	if municipality == nil {
		return nil, notFound(ErrMunicipalityNotFound, id)
	}
	return municipality, nil
}

func (u *municipalityUsecase) GetByName(ctx context.Context, name string) (*entity.Municipality, error) {
	municipality, err := u.municipalityRepo.FindByName(ctx, name)
	if err != nil {
		u.log.Warnf("Failed to find municipality by name: %+v", err)
		return nil, err
	}
	if municipality == nil {
		return nil, fmt.Errorf("%w: name %q", ErrMunicipalityNotFound, name)
	}
	return municipality, nil
}

// checkDuplicate fails when another municipality already uses name.
func (u *municipalityUsecase) checkDuplicate(ctx context.Context, name string, excludeID int64) error {
	existing, err := u.municipalityRepo.FindByName(ctx, name)
	if err != nil {
		u.log.Warnf("Failed to find municipality by name: %+v", err)
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return fmt.Errorf("%w: name %q", ErrMunicipalityAlreadyExists, name)
	}
	return nil
}

func (u *municipalityUsecase) Create(ctx context.Context, req *dto.CreateMunicipalityRequest) (*entity.Municipality, error) {
	municipality, err := entity.NewMunicipality(req.Name)
	if err != nil {
		return nil, err
	}

	if err := u.checkDuplicate(ctx, municipality.Name, 0); err != nil {
		return nil, err
	}

	saved, err := u.municipalityRepo.Save(ctx, municipality)
	if err != nil {
		u.log.Warnf("Failed to create municipality: %+v", err)
		return nil, storeError(err, ErrMunicipalityAlreadyExists)
	}

	u.auditService.LogCreate(ctx, entity.AuditEntityMunicipality, saved.ID, saved)
	return saved, nil
}

func (u *municipalityUsecase) Update(ctx context.Context, id int64, req *dto.UpdateMunicipalityRequest) (*entity.Municipality, error) {
	municipality, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *municipality

	changed, err := setText("name", req.Name, &municipality.Name, true)
	if err != nil {
		return nil, err
	}
	if changed && !strings.EqualFold(old.Name, municipality.Name) {
		if err := u.checkDuplicate(ctx, municipality.Name, id); err != nil {
			return nil, err
		}
	}

	saved, err := u.municipalityRepo.Save(ctx, municipality)
	if err != nil {
		u.log.Warnf("Failed to update municipality: %+v", err)
		return nil, storeError(err, ErrMunicipalityAlreadyExists)
	}

	if !old.Equal(saved) {
		u.auditService.LogUpdate(ctx, entity.AuditEntityMunicipality, id, old, saved)
	}
	return saved, nil
}

func (u *municipalityUsecase) Delete(ctx context.Context, id int64) error {
	municipality, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.municipalityRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete municipality: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, entity.AuditEntityMunicipality, id, municipality)
	return nil
}
