package http

import (
	"net/http"

	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/http/handler"
	"github.com/AlexCL0320/backend-banco-angeles/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

// Handlers groups every resource handler the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Municipality *handler.MunicipalityHandler
	Neighborhood *handler.NeighborhoodHandler
	Coordinate   *handler.CoordinateHandler
	Address      *handler.AddressHandler
	Role         *handler.RoleHandler
	User         *handler.UserHandler
	Donor        *handler.DonorHandler
	Appointment  *handler.AppointmentHandler
	AuditLog     *handler.AuditLogHandler
}

type Router struct {
	router            *mux.Router
	handlers          Handlers
	metricsHandler    http.Handler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
	metricsMiddleware *middleware.MetricsMiddleware
}

func NewRouter(
	handlers Handlers,
	metricsHandler http.Handler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		handlers:          handlers,
		metricsHandler:    metricsHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
		metricsMiddleware: metricsMiddleware,
	}
}

// crud mounts the staff-only write routes of a catalog resource.
func crud(r *mux.Router, path string, create, update, remove http.HandlerFunc) {
	staff := r.PathPrefix(path).Subrouter()
	staff.Use(middleware.RequireStaff)
	staff.HandleFunc("", create).Methods(http.MethodPost)
	staff.HandleFunc("/{id:[0-9]+}", update).Methods(http.MethodPut)
	staff.HandleFunc("/{id:[0-9]+}", remove).Methods(http.MethodDelete)
}

// Setup mounts every route. CORS wraps the whole router so preflight and
// unmatched requests get the headers too.
func (r *Router) Setup() http.Handler {
	h := r.handlers

	r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", h.Auth.RefreshToken).Methods(http.MethodPost)

	// Registration is public; staff may also pick the role
	api.Handle("/users", r.authMiddleware.OptionalAuthenticate(http.HandlerFunc(h.User.CreateUser))).Methods(http.MethodPost)

	// Everything below requires a token
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/logout", h.Auth.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", h.Auth.GetCurrentUser).Methods(http.MethodGet)

	// Catalog
	protected.HandleFunc("/municipalities", h.Municipality.GetAllMunicipalities).Methods(http.MethodGet)
	protected.HandleFunc("/municipalities/{id:[0-9]+}", h.Municipality.GetMunicipality).Methods(http.MethodGet)
	protected.HandleFunc("/municipalities/{id:[0-9]+}/neighborhoods", h.Municipality.GetNeighborhoods).Methods(http.MethodGet)
	crud(protected, "/municipalities", h.Municipality.CreateMunicipality, h.Municipality.UpdateMunicipality, h.Municipality.DeleteMunicipality)

	protected.HandleFunc("/neighborhoods", h.Neighborhood.GetAllNeighborhoods).Methods(http.MethodGet)
	protected.HandleFunc("/neighborhoods/{id:[0-9]+}", h.Neighborhood.GetNeighborhood).Methods(http.MethodGet)
	protected.HandleFunc("/neighborhoods/{id:[0-9]+}/addresses", h.Neighborhood.GetAddresses).Methods(http.MethodGet)
	crud(protected, "/neighborhoods", h.Neighborhood.CreateNeighborhood, h.Neighborhood.UpdateNeighborhood, h.Neighborhood.DeleteNeighborhood)

	protected.HandleFunc("/coordinates", h.Coordinate.GetAllCoordinates).Methods(http.MethodGet)
	protected.HandleFunc("/coordinates/{id:[0-9]+}", h.Coordinate.GetCoordinate).Methods(http.MethodGet)
	crud(protected, "/coordinates", h.Coordinate.CreateCoordinate, h.Coordinate.UpdateCoordinate, h.Coordinate.DeleteCoordinate)

	protected.HandleFunc("/addresses", h.Address.GetAllAddresses).Methods(http.MethodGet)
	protected.HandleFunc("/addresses/{id:[0-9]+}", h.Address.GetAddress).Methods(http.MethodGet)
	crud(protected, "/addresses", h.Address.CreateAddress, h.Address.UpdateAddress, h.Address.DeleteAddress)

	protected.HandleFunc("/roles", h.Role.GetAllRoles).Methods(http.MethodGet)
	protected.HandleFunc("/roles/default", h.Role.GetDefaultRole).Methods(http.MethodGet)
	protected.HandleFunc("/roles/{id:[0-9]+}", h.Role.GetRole).Methods(http.MethodGet)
	crud(protected, "/roles", h.Role.CreateRole, h.Role.UpdateRole, h.Role.DeleteRole)

	// Users
	protected.HandleFunc("/users", h.User.GetAllUsers).Methods(http.MethodGet)
	protected.HandleFunc("/users/by-email", h.User.GetUserByEmail).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id:[0-9]+}", h.User.GetUser).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id:[0-9]+}/donor", h.User.GetUserDonor).Methods(http.MethodGet)
	protected.Handle("/users/{id:[0-9]+}", middleware.RequireOwnerOrStaff(http.HandlerFunc(h.User.UpdateUser))).Methods(http.MethodPut)
	protected.Handle("/users/{id:[0-9]+}", middleware.RequireOwnerOrStaff(http.HandlerFunc(h.User.DeleteUser))).Methods(http.MethodDelete)

	// Donors
	protected.HandleFunc("/donors", h.Donor.GetAllDonors).Methods(http.MethodGet)
	protected.HandleFunc("/donors", h.Donor.CreateDonor).Methods(http.MethodPost)
	protected.HandleFunc("/donors/map", h.Donor.GetDonorMap).Methods(http.MethodGet)
	protected.HandleFunc("/donors/{id:[0-9]+}", h.Donor.GetDonor).Methods(http.MethodGet)
	protected.HandleFunc("/donors/{id:[0-9]+}", h.Donor.UpdateDonor).Methods(http.MethodPut)
	protected.HandleFunc("/donors/{id:[0-9]+}", h.Donor.DeleteDonor).Methods(http.MethodDelete)
	protected.HandleFunc("/donors/{id:[0-9]+}/eligibility", h.Donor.CheckEligibility).Methods(http.MethodGet)
	protected.HandleFunc("/donors/{id:[0-9]+}/appointments", h.Donor.GetDonorAppointments).Methods(http.MethodGet)

	// Appointments
	protected.HandleFunc("/appointments", h.Appointment.GetAllAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", h.Appointment.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id:[0-9]+}", h.Appointment.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id:[0-9]+}", h.Appointment.UpdateAppointment).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id:[0-9]+}", h.Appointment.DeleteAppointment).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments/{id:[0-9]+}/status", h.Appointment.UpdateAppointmentStatus).Methods(http.MethodPatch)

	// Audit trail (staff only)
	audit := protected.PathPrefix("/audit-logs").Subrouter()
	audit.Use(middleware.RequireStaff)
	audit.HandleFunc("", h.AuditLog.GetAllAuditLogs).Methods(http.MethodGet)
	audit.HandleFunc("/{id:[0-9]+}", h.AuditLog.GetAuditLog).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
