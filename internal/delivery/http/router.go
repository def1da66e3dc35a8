package http

import (
	"net/http"

	"clinic-booking-api/internal/delivery/http/handler"
	"clinic-booking-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                  *mux.Router
	authHandler             *handler.AuthHandler
	availabilityHandler     *handler.AvailabilityHandler
	availabilityRuleHandler *handler.AvailabilityRuleHandler
	blockedPeriodHandler    *handler.BlockedPeriodHandler
	appointmentHandler      *handler.AppointmentHandler
	auditLogHandler         *handler.AuditLogHandler
	authMiddleware          *middleware.AuthMiddleware
	corsMiddleware          *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	availabilityHandler *handler.AvailabilityHandler,
	availabilityRuleHandler *handler.AvailabilityRuleHandler,
	blockedPeriodHandler *handler.BlockedPeriodHandler,
	appointmentHandler *handler.AppointmentHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                  mux.NewRouter(),
		authHandler:             authHandler,
		availabilityHandler:     availabilityHandler,
		availabilityRuleHandler: availabilityRuleHandler,
		blockedPeriodHandler:    blockedPeriodHandler,
		appointmentHandler:      appointmentHandler,
		auditLogHandler:         auditLogHandler,
		authMiddleware:          authMiddleware,
		corsMiddleware:          corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/admin", r.authHandler.RegisterAdmin).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Availability routes (public, read only)
	api.HandleFunc("/admins", r.availabilityHandler.GetAdmins).Methods(http.MethodGet)
	api.HandleFunc("/admins/{adminId}/working-days", r.availabilityHandler.GetWorkingDays).Methods(http.MethodGet)
	api.HandleFunc("/admins/{adminId}/slots", r.availabilityHandler.GetDaySlots).Methods(http.MethodGet)

	// Appointment routes (protected - patient only)
	patient := api.PathPrefix("/appointments").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/me", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/{id}/cancel", r.appointmentHandler.CancelMyAppointment).Methods(http.MethodPost)

	// Admin routes (protected - doctor only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Weekly availability rules (admin)
	admin.HandleFunc("/availability-rules", r.availabilityRuleHandler.GetMyRules).Methods(http.MethodGet)
	admin.HandleFunc("/availability-rules", r.availabilityRuleHandler.UpsertRules).Methods(http.MethodPut)

	// Blocked periods (admin)
	admin.HandleFunc("/blocked-periods", r.blockedPeriodHandler.CreateBlockedPeriod).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-periods", r.blockedPeriodHandler.GetMyBlockedPeriods).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-periods/{id}", r.blockedPeriodHandler.DeleteBlockedPeriod).Methods(http.MethodDelete)

	// Appointment management (admin)
	admin.HandleFunc("/appointments", r.appointmentHandler.GetAdminAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPost)

	// Audit logs (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetRecentAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
