package entity

import "time"

// User is an account of the system. Password is write-only: it is set by
// callers and hashed by the persistence layer into PasswordHash.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"type:varchar(150);not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	Sex          string    `gorm:"type:varchar(20);not null" json:"sex"`
	RoleID       int64     `gorm:"not null;index" json:"role_id"`
	Password     string    `gorm:"-" json:"-"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	IsStaff      bool      `gorm:"not null" json:"is_staff"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role Role `gorm:"foreignKey:RoleID" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// NewUser builds an active, non-staff user bound to role.
func NewUser(username, email, sex, password string, role *Role) (*User, error) {
	if err := requireText("username", username); err != nil {
		return nil, err
	}
	if err := requireText("email", email); err != nil {
		return nil, err
	}
	if err := requireText("sex", sex); err != nil {
		return nil, err
	}
	if err := requireText("password", password); err != nil {
		return nil, err
	}
	return &User{
		Username: username,
		Email:    email,
		Sex:      sex,
		RoleID:   role.ID,
		Role:     *role,
		Password: password,
		IsActive: true,
	}, nil
}

// Equal compares identity and profile fields. Credentials are ignored.
func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.ID == other.ID &&
		u.Username == other.Username &&
		u.Email == other.Email &&
		u.Sex == other.Sex &&
		u.RoleID == other.RoleID &&
		u.IsActive == other.IsActive &&
		u.IsStaff == other.IsStaff
}
