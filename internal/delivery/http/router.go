package http

import (
	"net/http"

	"go-hospital-management/internal/delivery/http/handler"
	"go-hospital-management/internal/delivery/http/middleware"
	"go-hospital-management/internal/domain/policy"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	patientHandler     *handler.PatientHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	visitHandler       *handler.VisitHandler
	chatbotHandler     *handler.ChatbotHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	visitHandler *handler.VisitHandler,
	chatbotHandler *handler.ChatbotHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		patientHandler:     patientHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		visitHandler:       visitHandler,
		chatbotHandler:     chatbotHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.HandleFunc("/", r.welcome).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Everything below requires a valid token; per-route permission checks
	// consult the central policy table before the handler runs.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	permit := func(resource policy.Resource, action policy.Action, h http.HandlerFunc) http.Handler {
		return middleware.RequirePermission(resource, action)(h)
	}

	// Patients
	protected.Handle("/patients", permit(policy.ResourcePatient, policy.ActionCreate, r.patientHandler.Create)).Methods(http.MethodPost)
	protected.Handle("/patients", permit(policy.ResourcePatient, policy.ActionRead, r.patientHandler.List)).Methods(http.MethodGet)
	protected.Handle("/patients/{id}", permit(policy.ResourcePatient, policy.ActionRead, r.patientHandler.Get)).Methods(http.MethodGet)
	protected.Handle("/patients/{id}", permit(policy.ResourcePatient, policy.ActionUpdate, r.patientHandler.Update)).Methods(http.MethodPut)
	protected.Handle("/patients/{id}", permit(policy.ResourcePatient, policy.ActionDelete, r.patientHandler.Delete)).Methods(http.MethodDelete)

	// Doctors
	protected.Handle("/doctors", permit(policy.ResourceDoctor, policy.ActionCreate, r.doctorHandler.Create)).Methods(http.MethodPost)
	protected.Handle("/doctors", permit(policy.ResourceDoctor, policy.ActionRead, r.doctorHandler.List)).Methods(http.MethodGet)
	protected.Handle("/doctors/{id}", permit(policy.ResourceDoctor, policy.ActionRead, r.doctorHandler.Get)).Methods(http.MethodGet)
	protected.Handle("/doctors/{id}", permit(policy.ResourceDoctor, policy.ActionUpdate, r.doctorHandler.Update)).Methods(http.MethodPut)
	protected.Handle("/doctors/{id}", permit(policy.ResourceDoctor, policy.ActionDelete, r.doctorHandler.Delete)).Methods(http.MethodDelete)

	// Appointments
	protected.Handle("/appointments", permit(policy.ResourceAppointment, policy.ActionCreate, r.appointmentHandler.Create)).Methods(http.MethodPost)
	protected.Handle("/appointments", permit(policy.ResourceAppointment, policy.ActionRead, r.appointmentHandler.List)).Methods(http.MethodGet)
	protected.Handle("/appointments/{id}", permit(policy.ResourceAppointment, policy.ActionRead, r.appointmentHandler.Get)).Methods(http.MethodGet)
	protected.Handle("/appointments/{id}", permit(policy.ResourceAppointment, policy.ActionUpdate, r.appointmentHandler.Update)).Methods(http.MethodPut)
	protected.Handle("/appointments/{id}", permit(policy.ResourceAppointment, policy.ActionDelete, r.appointmentHandler.Delete)).Methods(http.MethodDelete)
	protected.Handle("/patients/{id}/appointments", permit(policy.ResourceAppointment, policy.ActionRead, r.appointmentHandler.ListByPatient)).Methods(http.MethodGet)
	protected.Handle("/doctors/{id}/appointments", permit(policy.ResourceAppointment, policy.ActionRead, r.appointmentHandler.ListByDoctor)).Methods(http.MethodGet)

	// Visits (EHR)
	protected.Handle("/visits", permit(policy.ResourceVisit, policy.ActionCreate, r.visitHandler.Create)).Methods(http.MethodPost)
	protected.Handle("/visits", permit(policy.ResourceVisit, policy.ActionRead, r.visitHandler.List)).Methods(http.MethodGet)
	protected.Handle("/visits/{id}", permit(policy.ResourceVisit, policy.ActionRead, r.visitHandler.Get)).Methods(http.MethodGet)
	protected.Handle("/visits/{id}", permit(policy.ResourceVisit, policy.ActionUpdate, r.visitHandler.Update)).Methods(http.MethodPut)
	protected.Handle("/visits/{id}", permit(policy.ResourceVisit, policy.ActionDelete, r.visitHandler.Delete)).Methods(http.MethodDelete)
	protected.Handle("/patients/{id}/visits", permit(policy.ResourceVisit, policy.ActionRead, r.visitHandler.ListByPatient)).Methods(http.MethodGet)
	protected.Handle("/doctors/{id}/visits", permit(policy.ResourceVisit, policy.ActionRead, r.visitHandler.ListByDoctor)).Methods(http.MethodGet)

	// Chatbot
	protected.Handle("/chatbot/query", permit(policy.ResourceChatbot, policy.ActionQuery, r.chatbotHandler.Query)).Methods(http.MethodPost)

	// Audit trail
	protected.Handle("/audit-logs", permit(policy.ResourceAuditLog, policy.ActionRead, r.auditLogHandler.List)).Methods(http.MethodGet)
	protected.Handle("/audit-logs/{id}", permit(policy.ResourceAuditLog, policy.ActionRead, r.auditLogHandler.Get)).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

func (r *Router) welcome(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "Welcome to the Hospital Management System API"}`))
}
