// Package repository declares the persistence ports consumed by the use cases.
//
// Reads return (nil, nil) when nothing matches. Save inserts when the entity
// id is zero and updates otherwise; it returns the stored entity with its
// relationships loaded. Delete and Save (update) report a missing id with an
// error wrapping apperror.ErrNotFound.
package repository

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . MunicipalityRepository,NeighborhoodRepository,CoordinateRepository,AddressRepository,RoleRepository,UserRepository,DonorRepository,AppointmentRepository,AuditLogRepository
