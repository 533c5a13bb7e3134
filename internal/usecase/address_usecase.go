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

type AddressUsecase interface {
	GetAll(ctx context.Context) ([]entity.Address, error)
	GetByID(ctx context.Context, id int64) (*entity.Address, error)
	GetByNeighborhood(ctx context.Context, neighborhoodID int64) ([]entity.Address, error)
	Create(ctx context.Context, req *dto.CreateAddressRequest) (*entity.Address, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAddressRequest) (*entity.Address, error)
	Delete(ctx context.Context, id int64) error
}

type addressUsecase struct {
	log              *logrus.Logger
	addressRepo      repository.AddressRepository
	neighborhoodRepo repository.NeighborhoodRepository
	coordinateRepo   repository.CoordinateRepository
	auditService     service.AuditService
}

func NewAddressUsecase(
	log *logrus.Logger,
	addressRepo repository.AddressRepository,
	neighborhoodRepo repository.NeighborhoodRepository,
	coordinateRepo repository.CoordinateRepository,
	auditService service.AuditService,
) AddressUsecase {
	return &addressUsecase{
		log:              log,
		addressRepo:      addressRepo,
		neighborhoodRepo: neighborhoodRepo,
		coordinateRepo:   coordinateRepo,
		auditService:     auditService,
	}
}

func (u *addressUsecase) GetAll(ctx context.Context) ([]entity.Address, error) {
	addresses, err := u.addressRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all addresses: %+v", err)
		return nil, err
	}
	return addresses, nil
}

func (u *addressUsecase) GetByID(ctx context.Context, id int64) (*entity.Address, error) {
	address, err := u.addressRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find address by ID: %+v", err)
		return nil, err
	}
	if address == nil {
		return nil, notFound(ErrAddressNotFound, id)
	}
	return address, nil
}

func (u *addressUsecase) GetByNeighborhood(ctx context.Context, neighborhoodID int64) ([]entity.Address, error) {
	if err := u.checkNeighborhood(ctx, neighborhoodID); err != nil {
		return nil, err
	}

	addresses, err := u.addressRepo.FindByNeighborhood(ctx, neighborhoodID)
	if err != nil {
		u.log.Warnf("Failed to find addresses by neighborhood: %+v", err)
		return nil, err
	}
	return addresses, nil
}

func (u *addressUsecase) checkNeighborhood(ctx context.Context, neighborhoodID int64) error {
	neighborhood, err := u.neighborhoodRepo.FindByID(ctx, neighborhoodID)
	if err != nil {
		u.log.Warnf("Failed to find neighborhood by ID: %+v", err)
		return err
	}
	if neighborhood == nil {
		return notFound(ErrNeighborhoodNotValid, neighborhoodID)
	}
	return nil
}

func (u *addressUsecase) checkCoordinate(ctx context.Context, coordinateID int64) error {
	coordinate, err := u.coordinateRepo.FindByID(ctx, coordinateID)
	if err != nil {
		u.log.Warnf("Failed to find coordinate by ID: %+v", err)
		return err
	}
	if coordinate == nil {
		return notFound(ErrCoordinateNotValid, coordinateID)
	}
	return nil
}

func (u *addressUsecase) checkDuplicate(ctx context.Context, a *entity.Address, excludeID int64) error {
	existing, err := u.addressRepo.FindByFullAddress(ctx, a.Street, a.InteriorNumber, a.ExteriorNumber, a.NeighborhoodID)
	if err != nil {
		u.log.Warnf("Failed to find address by full address: %+v", err)
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return fmt.Errorf("%w: %s %s %s, neighborhood %d", ErrAddressAlreadyExists, a.Street, a.ExteriorNumber, a.InteriorNumber, a.NeighborhoodID)
	}
	return nil
}

func (u *addressUsecase) Create(ctx context.Context, req *dto.CreateAddressRequest) (*entity.Address, error) {
	address, err := entity.NewAddress(req.Street, req.InteriorNumber, req.ExteriorNumber, req.NeighborhoodID, req.CoordinateID)
	if err != nil {
		return nil, err
	}

	if err := u.checkNeighborhood(ctx, address.NeighborhoodID); err != nil {
		return nil, err
	}
	if err := u.checkCoordinate(ctx, address.CoordinateID); err != nil {
		return nil, err
	}
	if err := u.checkDuplicate(ctx, address, 0); err != nil {
		return nil, err
	}

	saved, err := u.addressRepo.Save(ctx, address)
	if err != nil {
		u.log.Warnf("Failed to create address: %+v", err)
		return nil, storeError(err, ErrAddressAlreadyExists)
	}

	u.auditService.LogCreate(ctx, entity.AuditEntityAddress, saved.ID, saved)
	return saved, nil
}

// Update re-checks duplicates only when street, numbers or neighborhood
// change. Moving the coordinate never collides.
func (u *addressUsecase) Update(ctx context.Context, id int64, req *dto.UpdateAddressRequest) (*entity.Address, error) {
	address, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *address

	streetChanged, err := setText("street", req.Street, &address.Street, true)
	if err != nil {
		return nil, err
	}
	streetChanged = streetChanged && !strings.EqualFold(old.Street, address.Street)

	interiorChanged, err := setText("interior_number", req.InteriorNumber, &address.InteriorNumber, false)
	if err != nil {
		return nil, err
	}
	exteriorChanged, err := setText("exterior_number", req.ExteriorNumber, &address.ExteriorNumber, true)
	if err != nil {
		return nil, err
	}

	neighborhoodChanged := setID(req.NeighborhoodID, &address.NeighborhoodID)
	if neighborhoodChanged {
		if err := u.checkNeighborhood(ctx, address.NeighborhoodID); err != nil {
			return nil, err
		}
	}
	if setID(req.CoordinateID, &address.CoordinateID) {
		if err := u.checkCoordinate(ctx, address.CoordinateID); err != nil {
			return nil, err
		}
	}

	if streetChanged || interiorChanged || exteriorChanged || neighborhoodChanged {
		if err := u.checkDuplicate(ctx, address, id); err != nil {
			return nil, err
		}
	}

	saved, err := u.addressRepo.Save(ctx, address)
	if err != nil {
		u.log.Warnf("Failed to update address: %+v", err)
		return nil, storeError(err, ErrAddressAlreadyExists)
	}

	if !old.Equal(saved) {
		u.auditService.LogUpdate(ctx, entity.AuditEntityAddress, id, old, saved)
	}
	return saved, nil
}

func (u *addressUsecase) Delete(ctx context.Context, id int64) error {
	address, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.addressRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete address: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, entity.AuditEntityAddress, id, address)
	return nil
}
