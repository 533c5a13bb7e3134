package repository

// Store constraint names. Adapters report violations with these names in an
// apperror.ConstraintError.
const (
	ConstraintMunicipalityName         = "ux_municipalities_name"
	ConstraintNeighborhoodName         = "ux_neighborhoods_name_municipality"
	ConstraintCoordinateLatLon         = "ux_coordinates_lat_lon"
	ConstraintAddressFull              = "ux_addresses_full"
	ConstraintRoleName                 = "ux_roles_name"
	ConstraintRoleDefault              = "ux_roles_default"
	ConstraintUserEmail                = "ux_users_email"
	ConstraintUserUsername             = "ux_users_username"
	ConstraintDonorUser                = "ux_donors_user_id"
	ConstraintNeighborhoodMunicipality = "fk_neighborhoods_municipality"
	ConstraintAddressNeighborhood      = "fk_addresses_neighborhood"
	ConstraintAddressCoordinate        = "fk_addresses_coordinate"
	ConstraintUserRole                 = "fk_users_role"
	ConstraintDonorUserRef             = "fk_donors_user"
	ConstraintDonorAddress             = "fk_donors_address"
	ConstraintAppointmentDonor         = "fk_appointments_donor"
	ConstraintAppointmentRecipient     = "fk_appointments_recipient"
)
