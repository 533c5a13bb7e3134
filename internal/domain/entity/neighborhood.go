package entity

import "time"

// Neighborhood (colonia) belongs to a Municipality.
type Neighborhood struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	MunicipalityID int64     `gorm:"not null;index" json:"municipality_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Municipality *Municipality `gorm:"foreignKey:MunicipalityID" json:"municipality,omitempty"`
}

func (Neighborhood) TableName() string {
	return "neighborhoods"
}

func NewNeighborhood(name string, municipalityID int64) (*Neighborhood, error) {
	if err := requireText("name", name); err != nil {
		return nil, err
	}
	return &Neighborhood{Name: name, MunicipalityID: municipalityID}, nil
}

func (n *Neighborhood) Equal(other *Neighborhood) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.ID == other.ID && n.Name == other.Name && n.MunicipalityID == other.MunicipalityID
}
