package memory

import (
	"context"
	"strings"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
)

type municipalityRepository struct {
	s *Store
}

func NewMunicipalityRepository(s *Store) domainRepo.MunicipalityRepository {
	return &municipalityRepository{s: s}
}

func (r *municipalityRepository) FindAll(_ context.Context) ([]entity.Municipality, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return values(r.s.municipalities,
		func(m entity.Municipality) int64 { return m.ID },
		func(a, b entity.Municipality) bool { return byLowerText(a.Name, b.Name) },
	), nil
}

func (r *municipalityRepository) FindByID(_ context.Context, id int64) (*entity.Municipality, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if m, ok := r.s.municipalities[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (r *municipalityRepository) FindByName(_ context.Context, name string) (*entity.Municipality, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, m := range r.s.municipalities {
		if strings.EqualFold(m.Name, name) {
			return &m, nil
		}
	}
	return nil, nil
}

func (r *municipalityRepository) Save(_ context.Context, municipality *entity.Municipality) (*entity.Municipality, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, m := range r.s.municipalities {
		if id != municipality.ID && strings.EqualFold(m.Name, municipality.Name) {
			return nil, uniqueViolation(domainRepo.ConstraintMunicipalityName)
		}
	}

	previous, exists := r.s.municipalities[municipality.ID]
	if municipality.ID == 0 {
		municipality.ID = r.s.nextID("municipalities")
	} else if !exists {
		return nil, notFound("municipality", municipality.ID)
	}
	stamp(&municipality.CreatedAt, &municipality.UpdatedAt, previous.CreatedAt, r.s.now())

	row := *municipality
	r.s.municipalities[row.ID] = row
	return &row, nil
}

func (r *municipalityRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.municipalities[id]; !ok {
		return notFound("municipality", id)
	}
	for _, n := range r.s.neighborhoods {
		if n.MunicipalityID == id {
			return stillReferenced("municipality", id, domainRepo.ConstraintNeighborhoodMunicipality)
		}
	}
	delete(r.s.municipalities, id)
	return nil
}
