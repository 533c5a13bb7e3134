package memory

import (
	"context"
	"strings"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
)

type addressRepository struct {
	s *Store
}

func NewAddressRepository(s *Store) domainRepo.AddressRepository {
	return &addressRepository{s: s}
}

func sameAddress(a, b entity.Address) bool {
	return strings.EqualFold(a.Street, b.Street) &&
		a.InteriorNumber == b.InteriorNumber &&
		a.ExteriorNumber == b.ExteriorNumber &&
		a.NeighborhoodID == b.NeighborhoodID
}

func (r *addressRepository) list(match func(entity.Address) bool) []entity.Address {
	rows := values(r.s.addresses,
		func(a entity.Address) int64 { return a.ID },
		func(a, b entity.Address) bool { return byLowerText(a.Street, b.Street) },
	)
	out := make([]entity.Address, 0, len(rows))
	for _, a := range rows {
		if match == nil || match(a) {
			out = append(out, *r.s.loadAddress(a))
		}
	}
	return out
}

func (r *addressRepository) FindAll(_ context.Context) ([]entity.Address, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.list(nil), nil
}

func (r *addressRepository) FindByID(_ context.Context, id int64) (*entity.Address, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if a, ok := r.s.addresses[id]; ok {
		return r.s.loadAddress(a), nil
	}
	return nil, nil
}

func (r *addressRepository) FindByFullAddress(_ context.Context, street, interiorNumber, exteriorNumber string, neighborhoodID int64) (*entity.Address, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	key := entity.Address{Street: street, InteriorNumber: interiorNumber, ExteriorNumber: exteriorNumber, NeighborhoodID: neighborhoodID}
	for _, a := range r.s.addresses {
		if sameAddress(a, key) {
			return r.s.loadAddress(a), nil
		}
	}
	return nil, nil
}

func (r *addressRepository) FindByNeighborhood(_ context.Context, neighborhoodID int64) ([]entity.Address, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.list(func(a entity.Address) bool { return a.NeighborhoodID == neighborhoodID }), nil
}

func (r *addressRepository) Save(_ context.Context, address *entity.Address) (*entity.Address, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.neighborhoods[address.NeighborhoodID]; !ok {
		return nil, foreignKeyViolation(domainRepo.ConstraintAddressNeighborhood)
	}
	if _, ok := r.s.coordinates[address.CoordinateID]; !ok {
		return nil, foreignKeyViolation(domainRepo.ConstraintAddressCoordinate)
	}
	for id, a := range r.s.addresses {
		if id != address.ID && sameAddress(a, *address) {
			return nil, uniqueViolation(domainRepo.ConstraintAddressFull)
		}
	}

	previous, exists := r.s.addresses[address.ID]
	if address.ID == 0 {
		address.ID = r.s.nextID("addresses")
	} else if !exists {
		return nil, notFound("address", address.ID)
	}
	stamp(&address.CreatedAt, &address.UpdatedAt, previous.CreatedAt, r.s.now())

	row := *address
	row.Neighborhood = nil
	row.Coordinate = nil
	r.s.addresses[row.ID] = row
	return r.s.loadAddress(row), nil
}

func (r *addressRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.addresses[id]; !ok {
		return notFound("address", id)
	}
	for _, d := range r.s.donors {
		if d.AddressID == id {
			return stillReferenced("address", id, domainRepo.ConstraintDonorAddress)
		}
	}
	delete(r.s.addresses, id)
	return nil
}
