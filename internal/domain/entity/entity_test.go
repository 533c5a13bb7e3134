package entity

import (
	"testing"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsRejectEmptyText(t *testing.T) {
	_, err := NewMunicipality("")
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = NewNeighborhood("  ", 1)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = NewCoordinate("19.04", "")
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = NewAddress("", "", "12", 1, 1)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = NewRole("", nil, false)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = NewUser("ana", "a@x.com", "F", "", &Role{ID: 2})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = NewUser("ana", "a@x.com", " ", "pw", &Role{ID: 2})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestEqualityIncludesIdentity(t *testing.T) {
	a := &Municipality{ID: 1, Name: "Centro"}
	b := &Municipality{ID: 1, Name: "Centro"}
	c := &Municipality{ID: 2, Name: "Centro"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "different identifiers are never equal")
	assert.False(t, (&Municipality{Name: "Centro"}).Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestAddressEqualIgnoresSnapshots(t *testing.T) {
	a := &Address{ID: 3, Street: "Reforma", ExteriorNumber: "10", NeighborhoodID: 1, CoordinateID: 1}
	b := *a
	b.Neighborhood = &Neighborhood{ID: 1, Name: "Centro"}

	assert.True(t, a.Equal(&b))

	b.CoordinateID = 2
	assert.False(t, a.Equal(&b))
}

func TestRole(t *testing.T) {
	r, err := NewRole("donor", nil, true)
	require.NoError(t, err)
	assert.NotNil(t, r.Permissions)
	assert.False(t, r.HasPermission("donors.read"))

	r.Permissions = append(r.Permissions, "donors.read", "appointments.write")
	assert.True(t, r.HasPermission("donors.read"))

	other := *r
	other.Permissions = []string{"appointments.write", "donors.read"}
	assert.False(t, r.Equal(&other), "permission order is significant")
}

func TestNewUserDefaults(t *testing.T) {
	u, err := NewUser("ana", "a@x.com", "F", "pw", &Role{ID: 2, Name: RoleDonor})
	require.NoError(t, err)

	assert.True(t, u.IsActive)
	assert.False(t, u.IsStaff)
	assert.Equal(t, int64(2), u.RoleID)
	assert.Equal(t, RoleDonor, u.Role.Name)
	assert.Empty(t, u.PasswordHash)
}
