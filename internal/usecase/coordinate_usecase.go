package usecase

import (
	"context"
	"fmt"

	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
	"github.com/AlexCL0320/backend-banco-angeles/internal/service"

	"github.com/sirupsen/logrus"
)

type CoordinateUsecase interface {
	GetAll(ctx context.Context) ([]entity.Coordinate, error)
	GetByID(ctx context.Context, id int64) (*entity.Coordinate, error)
	Create(ctx context.Context, req *dto.CreateCoordinateRequest) (*entity.Coordinate, error)
	Update(ctx context.Context, id int64, req *dto.UpdateCoordinateRequest) (*entity.Coordinate, error)
	Delete(ctx context.Context, id int64) error
}

type coordinateUsecase struct {
	log            *logrus.Logger
	coordinateRepo repository.CoordinateRepository
	auditService   service.AuditService
}

func NewCoordinateUsecase(
	log *logrus.Logger,
	coordinateRepo repository.CoordinateRepository,
	auditService service.AuditService,
) CoordinateUsecase {
	return &coordinateUsecase{
		log:            log,
		coordinateRepo: coordinateRepo,
		auditService:   auditService,
	}
}

func (u *coordinateUsecase) GetAll(ctx context.Context) ([]entity.Coordinate, error) {
	coordinates, err := u.coordinateRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all coordinates: %+v", err)
		return nil, err
	}
	return coordinates, nil
}

func (u *coordinateUsecase) GetByID(ctx context.Context, id int64) (*entity.Coordinate, error) {
	coordinate, err := u.coordinateRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find coordinate by ID: %+v", err)
		return nil, err
	}
	if coordinate == nil {
		return nil, notFound(ErrCoordinateNotFound, id)
	}
	return coordinate, nil
}

func (u *coordinateUsecase) checkDuplicate(ctx context.Context, latitude, longitude string, excludeID int64) error {
	existing, err := u.coordinateRepo.FindByLatLon(ctx, latitude, longitude)
	if err != nil {
		u.log.Warnf("Failed to find coordinate by lat/lon: %+v", err)
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return fmt.Errorf("%w: (%s, %s)", ErrCoordinateAlreadyExists, latitude, longitude)
	}
	return nil
}

func (u *coordinateUsecase) Create(ctx context.Context, req *dto.CreateCoordinateRequest) (*entity.Coordinate, error) {
	coordinate, err := entity.NewCoordinate(req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}

	if err := u.checkDuplicate(ctx, coordinate.Latitude, coordinate.Longitude, 0); err != nil {
		return nil, err
	}

	saved, err := u.coordinateRepo.Save(ctx, coordinate)
	if err != nil {
		u.log.Warnf("Failed to create coordinate: %+v", err)
		return nil, storeError(err, ErrCoordinateAlreadyExists)
	}

	u.auditService.LogCreate(ctx, entity.AuditEntityCoordinate, saved.ID, saved)
	return saved, nil
}

func (u *coordinateUsecase) Update(ctx context.Context, id int64, req *dto.UpdateCoordinateRequest) (*entity.Coordinate, error) {
	coordinate, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *coordinate

	latChanged, err := setText("latitude", req.Latitude, &coordinate.Latitude, true)
	if err != nil {
		return nil, err
	}
	lonChanged, err := setText("longitude", req.Longitude, &coordinate.Longitude, true)
	if err != nil {
		return nil, err
	}

	if latChanged || lonChanged {
		if err := u.checkDuplicate(ctx, coordinate.Latitude, coordinate.Longitude, id); err != nil {
			return nil, err
		}
	}

	saved, err := u.coordinateRepo.Save(ctx, coordinate)
	if err != nil {
		u.log.Warnf("Failed to update coordinate: %+v", err)
		return nil, storeError(err, ErrCoordinateAlreadyExists)
	}

	if !old.Equal(saved) {
		u.auditService.LogUpdate(ctx, entity.AuditEntityCoordinate, id, old, saved)
	}
	return saved, nil
}

func (u *coordinateUsecase) Delete(ctx context.Context, id int64) error {
	coordinate, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.coordinateRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete coordinate: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, entity.AuditEntityCoordinate, id, coordinate)
	return nil
}
