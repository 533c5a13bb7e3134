package memory

import (
	"context"
	"strings"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
)

type neighborhoodRepository struct {
	s *Store
}

func NewNeighborhoodRepository(s *Store) domainRepo.NeighborhoodRepository {
	return &neighborhoodRepository{s: s}
}

func (r *neighborhoodRepository) list(match func(entity.Neighborhood) bool) []entity.Neighborhood {
	rows := values(r.s.neighborhoods,
		func(n entity.Neighborhood) int64 { return n.ID },
		func(a, b entity.Neighborhood) bool { return byLowerText(a.Name, b.Name) },
	)
	out := make([]entity.Neighborhood, 0, len(rows))
	for _, n := range rows {
		if match == nil || match(n) {
			out = append(out, *r.s.loadNeighborhood(n))
		}
	}
	return out
}

func (r *neighborhoodRepository) FindAll(_ context.Context) ([]entity.Neighborhood, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.list(nil), nil
}

func (r *neighborhoodRepository) FindByID(_ context.Context, id int64) (*entity.Neighborhood, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if n, ok := r.s.neighborhoods[id]; ok {
		return r.s.loadNeighborhood(n), nil
	}
	return nil, nil
}

func (r *neighborhoodRepository) FindByNameAndMunicipality(_ context.Context, name string, municipalityID int64) (*entity.Neighborhood, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, n := range r.s.neighborhoods {
		if n.MunicipalityID == municipalityID && strings.EqualFold(n.Name, name) {
			return r.s.loadNeighborhood(n), nil
		}
	}
	return nil, nil
}

func (r *neighborhoodRepository) FindByMunicipality(_ context.Context, municipalityID int64) ([]entity.Neighborhood, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.list(func(n entity.Neighborhood) bool { return n.MunicipalityID == municipalityID }), nil
}

func (r *neighborhoodRepository) Save(_ context.Context, neighborhood *entity.Neighborhood) (*entity.Neighborhood, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.municipalities[neighborhood.MunicipalityID]; !ok {
		return nil, foreignKeyViolation(domainRepo.ConstraintNeighborhoodMunicipality)
	}
	for id, n := range r.s.neighborhoods {
		if id != neighborhood.ID && n.MunicipalityID == neighborhood.MunicipalityID && strings.EqualFold(n.Name, neighborhood.Name) {
			return nil, uniqueViolation(domainRepo.ConstraintNeighborhoodName)
		}
	}

	previous, exists := r.s.neighborhoods[neighborhood.ID]
	if neighborhood.ID == 0 {
		neighborhood.ID = r.s.nextID("neighborhoods")
	} else if !exists {
		return nil, notFound("neighborhood", neighborhood.ID)
	}
	stamp(&neighborhood.CreatedAt, &neighborhood.UpdatedAt, previous.CreatedAt, r.s.now())

	row := *neighborhood
	row.Municipality = nil
	r.s.neighborhoods[row.ID] = row
	return r.s.loadNeighborhood(row), nil
}

func (r *neighborhoodRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.neighborhoods[id]; !ok {
		return notFound("neighborhood", id)
	}
	for _, a := range r.s.addresses {
		if a.NeighborhoodID == id {
			return stillReferenced("neighborhood", id, domainRepo.ConstraintAddressNeighborhood)
		}
	}
	delete(r.s.neighborhoods, id)
	return nil
}
