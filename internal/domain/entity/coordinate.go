package entity

import "time"

// Coordinate is a geographic point. Latitude and longitude are kept as text
// exactly as they were captured.
type Coordinate struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Latitude  string    `gorm:"type:varchar(32);not null" json:"latitude"`
	Longitude string    `gorm:"type:varchar(32);not null" json:"longitude"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Coordinate) TableName() string {
	return "coordinates"
}

func NewCoordinate(latitude, longitude string) (*Coordinate, error) {
	if err := requireText("latitude", latitude); err != nil {
		return nil, err
	}
	if err := requireText("longitude", longitude); err != nil {
		return nil, err
	}
	return &Coordinate{Latitude: latitude, Longitude: longitude}, nil
}

func (c *Coordinate) Equal(other *Coordinate) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.ID == other.ID && c.Latitude == other.Latitude && c.Longitude == other.Longitude
}
