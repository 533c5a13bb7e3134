package entity

import "time"

// Address is a street address inside a Neighborhood, pinned to a Coordinate.
// The Neighborhood and Coordinate fields are snapshots loaded on read.
type Address struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Street         string    `gorm:"type:varchar(150);not null" json:"street"`
	InteriorNumber string    `gorm:"type:varchar(20);not null" json:"interior_number"`
	ExteriorNumber string    `gorm:"type:varchar(20);not null" json:"exterior_number"`
	NeighborhoodID int64     `gorm:"not null;index" json:"neighborhood_id"`
	CoordinateID   int64     `gorm:"not null;index" json:"coordinate_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Neighborhood *Neighborhood `gorm:"foreignKey:NeighborhoodID" json:"neighborhood,omitempty"`
	Coordinate   *Coordinate   `gorm:"foreignKey:CoordinateID" json:"coordinate,omitempty"`
}

func (Address) TableName() string {
	return "addresses"
}

func NewAddress(street, interiorNumber, exteriorNumber string, neighborhoodID, coordinateID int64) (*Address, error) {
	if err := requireText("street", street); err != nil {
		return nil, err
	}
	if err := requireText("exterior_number", exteriorNumber); err != nil {
		return nil, err
	}
	return &Address{
		Street:         street,
		InteriorNumber: interiorNumber,
		ExteriorNumber: exteriorNumber,
		NeighborhoodID: neighborhoodID,
		CoordinateID:   coordinateID,
	}, nil
}

// Equal compares identity, street fields and references. Snapshots are
// compared by reference id only.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.ID == other.ID &&
		a.Street == other.Street &&
		a.InteriorNumber == other.InteriorNumber &&
		a.ExteriorNumber == other.ExteriorNumber &&
		a.NeighborhoodID == other.NeighborhoodID &&
		a.CoordinateID == other.CoordinateID
}
