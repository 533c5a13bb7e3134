package memory

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
)

type coordinateRepository struct {
	s *Store
}

func NewCoordinateRepository(s *Store) domainRepo.CoordinateRepository {
	return &coordinateRepository{s: s}
}

func (r *coordinateRepository) FindAll(_ context.Context) ([]entity.Coordinate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return values(r.s.coordinates, func(c entity.Coordinate) int64 { return c.ID }, nil), nil
}

func (r *coordinateRepository) FindByID(_ context.Context, id int64) (*entity.Coordinate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if c, ok := r.s.coordinates[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *coordinateRepository) FindByLatLon(_ context.Context, latitude, longitude string) (*entity.Coordinate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.coordinates {
		if c.Latitude == latitude && c.Longitude == longitude {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *coordinateRepository) Save(_ context.Context, coordinate *entity.Coordinate) (*entity.Coordinate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, c := range r.s.coordinates {
		if id != coordinate.ID && c.Latitude == coordinate.Latitude && c.Longitude == coordinate.Longitude {
			return nil, uniqueViolation(domainRepo.ConstraintCoordinateLatLon)
		}
	}

	previous, exists := r.s.coordinates[coordinate.ID]
	if coordinate.ID == 0 {
		coordinate.ID = r.s.nextID("coordinates")
	} else if !exists {
		return nil, notFound("coordinate", coordinate.ID)
	}
	stamp(&coordinate.CreatedAt, &coordinate.UpdatedAt, previous.CreatedAt, r.s.now())

	row := *coordinate
	r.s.coordinates[row.ID] = row
	return &row, nil
}

func (r *coordinateRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.coordinates[id]; !ok {
		return notFound("coordinate", id)
	}
	for _, a := range r.s.addresses {
		if a.CoordinateID == id {
			return stillReferenced("coordinate", id, domainRepo.ConstraintAddressCoordinate)
		}
	}
	delete(r.s.coordinates, id)
	return nil
}
