package entity

import (
	"slices"
	"time"

	"gorm.io/datatypes"
)

// Role groups users and carries their permission names. Exactly one role may
// be flagged as the default assigned to users created without a role.
type Role struct {
	ID          int64                      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string                     `gorm:"type:varchar(50);not null" json:"name"`
	Permissions datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"permissions"`
	IsDefault   bool                       `gorm:"not null" json:"is_default"`
	CreatedAt   time.Time                  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Role) TableName() string {
	return "roles"
}

// Seeded role names
const (
	RoleAdmin = "admin"
	RoleDonor = "donor"
)

func NewRole(name string, permissions []string, isDefault bool) (*Role, error) {
	if err := requireText("name", name); err != nil {
		return nil, err
	}
	if permissions == nil {
		permissions = []string{}
	}
	return &Role{Name: name, Permissions: permissions, IsDefault: isDefault}, nil
}

// HasPermission reports whether the role grants permission.
func (r *Role) HasPermission(permission string) bool {
	return slices.Contains(r.Permissions, permission)
}

// Equal compares identity, name, the ordered permission list and the default flag.
func (r *Role) Equal(other *Role) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.ID == other.ID &&
		r.Name == other.Name &&
		r.IsDefault == other.IsDefault &&
		slices.Equal(r.Permissions, other.Permissions)
}
