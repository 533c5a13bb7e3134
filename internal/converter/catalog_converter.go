package converter

import (
	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
)

func MunicipalityToResponse(m *entity.Municipality) *dto.MunicipalityResponse {
	if m == nil {
		return nil
	}
	return &dto.MunicipalityResponse{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func MunicipalitiesToResponses(items []entity.Municipality) []dto.MunicipalityResponse {
	return toResponses(items, MunicipalityToResponse)
}

// NeighborhoodToResponse includes the municipality when it is loaded
func NeighborhoodToResponse(n *entity.Neighborhood) *dto.NeighborhoodResponse {
	if n == nil {
		return nil
	}
	return &dto.NeighborhoodResponse{
		ID:             n.ID,
		Name:           n.Name,
		MunicipalityID: n.MunicipalityID,
		Municipality:   MunicipalityToResponse(n.Municipality),
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}

func NeighborhoodsToResponses(items []entity.Neighborhood) []dto.NeighborhoodResponse {
	return toResponses(items, NeighborhoodToResponse)
}

func CoordinateToResponse(c *entity.Coordinate) *dto.CoordinateResponse {
	if c == nil {
		return nil
	}
	return &dto.CoordinateResponse{
		ID:        c.ID,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func CoordinatesToResponses(items []entity.Coordinate) []dto.CoordinateResponse {
	return toResponses(items, CoordinateToResponse)
}

func AddressToResponse(a *entity.Address) *dto.AddressResponse {
	if a == nil {
		return nil
	}
	return &dto.AddressResponse{
		ID:             a.ID,
		Street:         a.Street,
		InteriorNumber: a.InteriorNumber,
		ExteriorNumber: a.ExteriorNumber,
		NeighborhoodID: a.NeighborhoodID,
		CoordinateID:   a.CoordinateID,
		Neighborhood:   NeighborhoodToResponse(a.Neighborhood),
		Coordinate:     CoordinateToResponse(a.Coordinate),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func AddressesToResponses(items []entity.Address) []dto.AddressResponse {
	return toResponses(items, AddressToResponse)
}
