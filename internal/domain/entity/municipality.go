package entity

import "time"

// Municipality is the top level of the address catalog.
type Municipality struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Municipality) TableName() string {
	return "municipalities"
}

func NewMunicipality(name string) (*Municipality, error) {
	if err := requireText("name", name); err != nil {
		return nil, err
	}
	return &Municipality{Name: name}, nil
}

// Equal compares identity and name. Timestamps are ignored.
func (m *Municipality) Equal(other *Municipality) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.ID == other.ID && m.Name == other.Name
}
