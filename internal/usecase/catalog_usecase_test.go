package usecase

import (
	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/dto"
	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/apperror"
)

func (s *UsecaseSuite) TestMunicipality_CreateAndDuplicate() {
	centro := s.municipality("Centro")
	s.EqualValues(1, centro.ID)

	_, err := s.municipalities.Create(s.ctx, &dto.CreateMunicipalityRequest{Name: "CENTRO"})
	s.ErrorIs(err, ErrMunicipalityAlreadyExists)
	s.ErrorIs(err, apperror.ErrAlreadyExists)

	other, err := s.municipalities.Create(s.ctx, &dto.CreateMunicipalityRequest{Name: "Tlalpan"})
	s.Require().NoError(err)
	s.EqualValues(2, other.ID)

	_, err = s.municipalities.Create(s.ctx, &dto.CreateMunicipalityRequest{Name: "  "})
	s.ErrorIs(err, apperror.ErrValidation)
}

func (s *UsecaseSuite) TestMunicipality_GetAllOrderedByName() {
	s.municipality("Xochimilco")
	s.municipality("Benito Juarez")
	s.municipality("coyoacan")

	all, err := s.municipalities.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("Benito Juarez", all[0].Name)
	s.Equal("coyoacan", all[1].Name)
	s.Equal("Xochimilco", all[2].Name)
}

func (s *UsecaseSuite) TestMunicipality_GetByName() {
	s.municipality("Centro")

	got, err := s.municipalities.GetByName(s.ctx, "centro")
	s.Require().NoError(err)
	s.Equal("Centro", got.Name)

	_, err = s.municipalities.GetByName(s.ctx, "Nowhere")
	s.ErrorIs(err, ErrMunicipalityNotFound)
}

func (s *UsecaseSuite) TestMunicipality_Update() {
	centro := s.municipality("Centro")
	s.municipality("Tlalpan")

	s.Run("no-op update returns an equal entity", func() {
		got, err := s.municipalities.Update(s.ctx, centro.ID, &dto.UpdateMunicipalityRequest{})
		s.Require().NoError(err)
		s.True(centro.Equal(got))
	})

	s.Run("case-only rename keeps its own key", func() {
		got, err := s.municipalities.Update(s.ctx, centro.ID, &dto.UpdateMunicipalityRequest{Name: ptr("CENTRO")})
		s.Require().NoError(err)
		s.Equal("CENTRO", got.Name)
	})

	s.Run("rename onto another municipality", func() {
		_, err := s.municipalities.Update(s.ctx, centro.ID, &dto.UpdateMunicipalityRequest{Name: ptr("tlalpan")})
		s.ErrorIs(err, ErrMunicipalityAlreadyExists)
	})

	s.Run("missing id", func() {
		_, err := s.municipalities.Update(s.ctx, 99, &dto.UpdateMunicipalityRequest{Name: ptr("X")})
		s.ErrorIs(err, ErrMunicipalityNotFound)
		s.EqualError(err, "municipality not found: id 99")
	})
}

func (s *UsecaseSuite) TestMunicipality_Delete() {
	centro := s.municipality("Centro")
	s.Require().NoError(s.municipalities.Delete(s.ctx, centro.ID))

	_, err := s.municipalities.GetByID(s.ctx, centro.ID)
	s.ErrorIs(err, ErrMunicipalityNotFound)

	err = s.municipalities.Delete(s.ctx, centro.ID)
	s.ErrorIs(err, apperror.ErrNotFound)

	s.Equal([]string{"municipality.delete", "municipality.create"}, s.auditActions())
}

func (s *UsecaseSuite) TestMunicipality_DeleteReferenced() {
	centro := s.municipality("Centro")
	s.neighborhood("Roma", centro.ID)

	err := s.municipalities.Delete(s.ctx, centro.ID)
	s.ErrorIs(err, apperror.ErrPersistence)

	_, err = s.municipalities.GetByID(s.ctx, centro.ID)
	s.NoError(err)
}

func (s *UsecaseSuite) TestNeighborhood_CaseInsensitiveCollision() {
	centro := s.municipality("Centro")
	s.EqualValues(1, centro.ID)

	n := s.neighborhood("Centro", 1)
	s.EqualValues(1, n.MunicipalityID)
	s.Require().NotNil(n.Municipality)
	s.Equal("Centro", n.Municipality.Name)

	_, err := s.neighborhoods.Create(s.ctx, &dto.CreateNeighborhoodRequest{Name: "centro", MunicipalityID: 1})
	s.ErrorIs(err, ErrNeighborhoodAlreadyExists)
	s.ErrorIs(err, apperror.ErrAlreadyExists)

	// same name in another municipality is a different key
	other := s.municipality("Tlalpan")
	_, err = s.neighborhoods.Create(s.ctx, &dto.CreateNeighborhoodRequest{Name: "centro", MunicipalityID: other.ID})
	s.NoError(err)
}

func (s *UsecaseSuite) TestNeighborhood_InvalidMunicipality() {
	_, err := s.neighborhoods.Create(s.ctx, &dto.CreateNeighborhoodRequest{Name: "Roma", MunicipalityID: 42})
	s.ErrorIs(err, ErrMunicipalityNotValid)
	s.ErrorIs(err, apperror.ErrInvalidReference)

	_, err = s.neighborhoods.GetByMunicipality(s.ctx, 42)
	s.ErrorIs(err, ErrMunicipalityNotValid)

	m := s.municipality("Centro")
	n := s.neighborhood("Roma", m.ID)
	_, err = s.neighborhoods.Update(s.ctx, n.ID, &dto.UpdateNeighborhoodRequest{MunicipalityID: ptr(int64(42))})
	s.ErrorIs(err, ErrMunicipalityNotValid)
}

func (s *UsecaseSuite) TestNeighborhood_UpdateMove() {
	centro := s.municipality("Centro")
	tlalpan := s.municipality("Tlalpan")
	s.neighborhood("Roma", tlalpan.ID)
	roma := s.neighborhood("Roma", centro.ID)

	_, err := s.neighborhoods.Update(s.ctx, roma.ID, &dto.UpdateNeighborhoodRequest{MunicipalityID: ptr(tlalpan.ID)})
	s.ErrorIs(err, ErrNeighborhoodAlreadyExists)

	moved, err := s.neighborhoods.Update(s.ctx, roma.ID, &dto.UpdateNeighborhoodRequest{
		Name:           ptr("Roma Norte"),
		MunicipalityID: ptr(tlalpan.ID),
	})
	s.Require().NoError(err)
	s.Equal(tlalpan.ID, moved.MunicipalityID)
	s.Equal("Tlalpan", moved.Municipality.Name)

	byMunicipality, err := s.neighborhoods.GetByMunicipality(s.ctx, tlalpan.ID)
	s.Require().NoError(err)
	s.Len(byMunicipality, 2)
}

func (s *UsecaseSuite) TestCoordinate_Duplicate() {
	c := s.coordinate("19.4326", "-99.1332")

	_, err := s.coordinates.Create(s.ctx, &dto.CreateCoordinateRequest{Latitude: "19.4326", Longitude: "-99.1332"})
	s.ErrorIs(err, ErrCoordinateAlreadyExists)

	other, err := s.coordinates.Create(s.ctx, &dto.CreateCoordinateRequest{Latitude: "19.4326", Longitude: "-99.1333"})
	s.Require().NoError(err)

	_, err = s.coordinates.Update(s.ctx, other.ID, &dto.UpdateCoordinateRequest{Longitude: ptr("-99.1332")})
	s.ErrorIs(err, ErrCoordinateAlreadyExists)

	got, err := s.coordinates.Update(s.ctx, c.ID, &dto.UpdateCoordinateRequest{Latitude: ptr("19.4326")})
	s.Require().NoError(err)
	s.True(c.Equal(got))
}

func (s *UsecaseSuite) TestAddress_CreateChecksReferencesInOrder() {
	m := s.municipality("Centro")
	n := s.neighborhood("Roma", m.ID)
	c := s.coordinate("19.41", "-99.16")

	_, err := s.addresses.Create(s.ctx, &dto.CreateAddressRequest{Street: "Orizaba", ExteriorNumber: "5", NeighborhoodID: 77, CoordinateID: 88})
	s.ErrorIs(err, ErrNeighborhoodNotValid)

	_, err = s.addresses.Create(s.ctx, &dto.CreateAddressRequest{Street: "Orizaba", ExteriorNumber: "5", NeighborhoodID: n.ID, CoordinateID: 88})
	s.ErrorIs(err, ErrCoordinateNotValid)

	a, err := s.addresses.Create(s.ctx, &dto.CreateAddressRequest{Street: "Orizaba", ExteriorNumber: "5", NeighborhoodID: n.ID, CoordinateID: c.ID})
	s.Require().NoError(err)
	s.Equal(n.ID, a.NeighborhoodID)
	s.Require().NotNil(a.Neighborhood)
	s.Require().NotNil(a.Coordinate)
	s.Equal("19.41", a.Coordinate.Latitude)

	_, err = s.addresses.Create(s.ctx, &dto.CreateAddressRequest{Street: "ORIZABA", ExteriorNumber: "5", NeighborhoodID: n.ID, CoordinateID: c.ID})
	s.ErrorIs(err, ErrAddressAlreadyExists)

	_, err = s.addresses.Create(s.ctx, &dto.CreateAddressRequest{Street: "Orizaba", InteriorNumber: "B", ExteriorNumber: "5", NeighborhoodID: n.ID, CoordinateID: c.ID})
	s.NoError(err)
}

func (s *UsecaseSuite) TestAddress_Update() {
	a := s.address("Orizaba")
	c := s.coordinate("20.0", "-100.0")

	moved, err := s.addresses.Update(s.ctx, a.ID, &dto.UpdateAddressRequest{CoordinateID: ptr(c.ID)})
	s.Require().NoError(err)
	s.Equal(c.ID, moved.CoordinateID)
	s.Equal("20.0", moved.Coordinate.Latitude)

	_, err = s.addresses.Update(s.ctx, a.ID, &dto.UpdateAddressRequest{CoordinateID: ptr(int64(999))})
	s.ErrorIs(err, ErrCoordinateNotValid)

	_, err = s.addresses.Update(s.ctx, a.ID, &dto.UpdateAddressRequest{Street: ptr("")})
	s.ErrorIs(err, apperror.ErrValidation)

	list, err := s.addresses.GetByNeighborhood(s.ctx, a.NeighborhoodID)
	s.Require().NoError(err)
	s.Len(list, 1)

	_, err = s.addresses.GetByNeighborhood(s.ctx, 999)
	s.ErrorIs(err, ErrNeighborhoodNotValid)
}

func (s *UsecaseSuite) TestRoundTrip() {
	m := s.municipality("Centro")
	gotM, err := s.municipalities.GetByID(s.ctx, m.ID)
	s.Require().NoError(err)
	s.True(m.Equal(gotM))

	a := s.address("Orizaba")
	gotA, err := s.addresses.GetByID(s.ctx, a.ID)
	s.Require().NoError(err)
	s.True(a.Equal(gotA))

	d := s.donor("ana")
	gotD, err := s.donors.GetByID(s.ctx, d.ID)
	s.Require().NoError(err)
	s.True(d.Equal(gotD))
}
