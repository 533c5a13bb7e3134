package memory

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
)

type donorRepository struct {
	s *Store
}

func NewDonorRepository(s *Store) domainRepo.DonorRepository {
	return &donorRepository{s: s}
}

func (r *donorRepository) matches(d entity.Donor, filter *entity.DonorFilter) bool {
	if filter == nil {
		return true
	}
	if filter.BloodType != "" && d.BloodType != filter.BloodType {
		return false
	}
	if filter.Active != nil && d.Active != *filter.Active {
		return false
	}
	if filter.NeighborhoodID != 0 {
		a, ok := r.s.addresses[d.AddressID]
		if !ok || a.NeighborhoodID != filter.NeighborhoodID {
			return false
		}
	}
	return true
}

func (r *donorRepository) FindAll(_ context.Context, filter *entity.DonorFilter) ([]entity.Donor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []entity.Donor{}
	for _, d := range values(r.s.donors, func(d entity.Donor) int64 { return d.ID }, nil) {
		if r.matches(d, filter) {
			out = append(out, *r.s.loadDonor(d))
		}
	}
	return out, nil
}

func (r *donorRepository) FindByID(_ context.Context, id int64) (*entity.Donor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if d, ok := r.s.donors[id]; ok {
		return r.s.loadDonor(d), nil
	}
	return nil, nil
}

func (r *donorRepository) FindByUserID(_ context.Context, userID int64) (*entity.Donor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, d := range r.s.donors {
		if d.UserID == userID {
			return r.s.loadDonor(d), nil
		}
	}
	return nil, nil
}

func (r *donorRepository) Save(_ context.Context, donor *entity.Donor) (*entity.Donor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[donor.UserID]; !ok {
		return nil, foreignKeyViolation(domainRepo.ConstraintDonorUserRef)
	}
	if _, ok := r.s.addresses[donor.AddressID]; !ok {
		return nil, foreignKeyViolation(domainRepo.ConstraintDonorAddress)
	}
	for id, d := range r.s.donors {
		if id != donor.ID && d.UserID == donor.UserID {
			return nil, uniqueViolation(domainRepo.ConstraintDonorUser)
		}
	}

	previous, exists := r.s.donors[donor.ID]
	if donor.ID == 0 {
		donor.ID = r.s.nextID("donors")
	} else if !exists {
		return nil, notFound("donor", donor.ID)
	}
	stamp(&donor.CreatedAt, &donor.UpdatedAt, previous.CreatedAt, r.s.now())

	row := *donor
	row.User = nil
	row.Address = nil
	r.s.donors[row.ID] = row
	return r.s.loadDonor(row), nil
}

func (r *donorRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.donors[id]; !ok {
		return notFound("donor", id)
	}
	for _, a := range r.s.appointments {
		if a.DonorID == id {
			return stillReferenced("donor", id, domainRepo.ConstraintAppointmentDonor)
		}
		if a.RecipientID == id {
			return stillReferenced("donor", id, domainRepo.ConstraintAppointmentRecipient)
		}
	}
	delete(r.s.donors, id)
	return nil
}
