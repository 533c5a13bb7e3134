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

type NeighborhoodUsecase interface {
	GetAll(ctx context.Context) ([]entity.Neighborhood, error)
	GetByID(ctx context.Context, id int64) (*entity.Neighborhood, error)
	GetByMunicipality(ctx context.Context, municipalityID int64) ([]entity.Neighborhood, error)
	Create(ctx context.Context, req *dto.CreateNeighborhoodRequest) (*entity.Neighborhood, error)
	Update(ctx context.Context, id int64, req *dto.UpdateNeighborhoodRequest) (*entity.Neighborhood, error)
	Delete(ctx context.Context, id int64) error
}

type neighborhoodUsecase struct {
	log              *logrus.Logger
	neighborhoodRepo repository.NeighborhoodRepository
	municipalityRepo repository.MunicipalityRepository
	auditService     service.AuditService
}

func NewNeighborhoodUsecase(
	log *logrus.Logger,
	neighborhoodRepo repository.NeighborhoodRepository,
	municipalityRepo repository.MunicipalityRepository,
	auditService service.AuditService,
) NeighborhoodUsecase {
	return &neighborhoodUsecase{
		log:              log,
		neighborhoodRepo: neighborhoodRepo,
		municipalityRepo: municipalityRepo,
		auditService:     auditService,
	}
}

func (u *neighborhoodUsecase) GetAll(ctx context.Context) ([]entity.Neighborhood, error) {
	neighborhoods, err := u.neighborhoodRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all neighborhoods: %+v", err)
		return nil, err
	}
	return neighborhoods, nil
}

func (u *neighborhoodUsecase) GetByID(ctx context.Context, id int64) (*entity.Neighborhood, error) {
	neighborhood, err := u.neighborhoodRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find neighborhood by ID: %+v", err)
		return nil, err
	}
	if neighborhood == nil {
		return nil, notFound(ErrNeighborhoodNotFound, id)
	}
	return neighborhood, nil
}

func (u *neighborhoodUsecase) GetByMunicipality(ctx context.Context, municipalityID int64) ([]entity.Neighborhood, error) {
	if err := u.checkMunicipality(ctx, municipalityID); err != nil {
		return nil, err
	}

	neighborhoods, err := u.neighborhoodRepo.FindByMunicipality(ctx, municipalityID)
	if err != nil {
		u.log.Warnf("Failed to find neighborhoods by municipality: %+v", err)
		return nil, err
	}
	return neighborhoods, nil
}

func (u *neighborhoodUsecase) checkMunicipality(ctx context.Context, municipalityID int64) error {
	municipality, err := u.municipalityRepo.FindByID(ctx, municipalityID)
	if err != nil {
		u.log.Warnf("Failed to find municipality by ID: %+v", err)
		return err
	}
	if municipality == nil {
		return notFound(ErrMunicipalityNotValid, municipalityID)
	}
	return nil
}

func (u *neighborhoodUsecase) checkDuplicate(ctx context.Context, name string, municipalityID, excludeID int64) error {
	existing, err := u.neighborhoodRepo.FindByNameAndMunicipality(ctx, name, municipalityID)
	if err != nil {
		u.log.Warnf("Failed to find neighborhood by name: %+v", err)
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return fmt.Errorf("%w: name %q, municipality %d", ErrNeighborhoodAlreadyExists, name, municipalityID)
	}
	return nil
}

func (u *neighborhoodUsecase) Create(ctx context.Context, req *dto.CreateNeighborhoodRequest) (*entity.Neighborhood, error) {
	neighborhood, err := entity.NewNeighborhood(req.Name, req.MunicipalityID)
	if err != nil {
		return nil, err
	}

	if err := u.checkMunicipality(ctx, neighborhood.MunicipalityID); err != nil {
		return nil, err
	}
	if err := u.checkDuplicate(ctx, neighborhood.Name, neighborhood.MunicipalityID, 0); err != nil {
		return nil, err
	}

	saved, err := u.neighborhoodRepo.Save(ctx, neighborhood)
	if err != nil {
		u.log.Warnf("Failed to create neighborhood: %+v", err)
		return nil, storeError(err, ErrNeighborhoodAlreadyExists)
	}

	u.auditService.LogCreate(ctx, entity.AuditEntityNeighborhood, saved.ID, saved)
	return saved, nil
}

func (u *neighborhoodUsecase) Update(ctx context.Context, id int64, req *dto.UpdateNeighborhoodRequest) (*entity.Neighborhood, error) {
	neighborhood, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *neighborhood

	nameChanged, err := setText("name", req.Name, &neighborhood.Name, true)
	if err != nil {
		return nil, err
	}
	nameChanged = nameChanged && !strings.EqualFold(old.Name, neighborhood.Name)

	municipalityChanged := setID(req.MunicipalityID, &neighborhood.MunicipalityID)
	if municipalityChanged {
		if err := u.checkMunicipality(ctx, neighborhood.MunicipalityID); err != nil {
			return nil, err
		}
	}

	if nameChanged || municipalityChanged {
		if err := u.checkDuplicate(ctx, neighborhood.Name, neighborhood.MunicipalityID, id); err != nil {
			return nil, err
		}
	}

	saved, err := u.neighborhoodRepo.Save(ctx, neighborhood)
	if err != nil {
		u.log.Warnf("Failed to update neighborhood: %+v", err)
		return nil, storeError(err, ErrNeighborhoodAlreadyExists)
	}

	if !old.Equal(saved) {
		u.auditService.LogUpdate(ctx, entity.AuditEntityNeighborhood, id, old, saved)
	}
	return saved, nil
}

func (u *neighborhoodUsecase) Delete(ctx context.Context, id int64) error {
	neighborhood, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.neighborhoodRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete neighborhood: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, entity.AuditEntityNeighborhood, id, neighborhood)
	return nil
}
