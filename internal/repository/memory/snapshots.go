package memory

import (
	"slices"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
)

// The helpers below copy a stored row and attach the relationships the gorm
// adapters preload. The caller holds s.mu.

func (s *Store) loadNeighborhood(n entity.Neighborhood) *entity.Neighborhood {
	if m, ok := s.municipalities[n.MunicipalityID]; ok {
		n.Municipality = &m
	}
	return &n
}

func (s *Store) loadAddress(a entity.Address) *entity.Address {
	if n, ok := s.neighborhoods[a.NeighborhoodID]; ok {
		a.Neighborhood = &n
	}
	if c, ok := s.coordinates[a.CoordinateID]; ok {
		a.Coordinate = &c
	}
	return &a
}

func cloneRole(r entity.Role) entity.Role {
	r.Permissions = slices.Clone(r.Permissions)
	return r
}

func (s *Store) loadUser(u entity.User) *entity.User {
	if role, ok := s.roles[u.RoleID]; ok {
		u.Role = cloneRole(role)
	}
	return &u
}

func (s *Store) loadDonor(d entity.Donor) *entity.Donor {
	if u, ok := s.users[d.UserID]; ok {
		d.User = s.loadUser(u)
	}
	if a, ok := s.addresses[d.AddressID]; ok {
		d.Address = s.loadAddress(a)
	}
	return &d
}
