package http

import (
	"net/http"

	"clinic-queue/internal/delivery/http/handler"
	"clinic-queue/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	healthHandler         *handler.HealthHandler
	doctorHandler         *handler.DoctorHandler
	patientHandler        *handler.PatientHandler
	specializationHandler *handler.SpecializationHandler
	appointmentHandler    *handler.AppointmentHandler
	auditLogHandler       *handler.AuditLogHandler
	corsMiddleware        *middleware.CORSMiddleware
	loggingMiddleware     *middleware.LoggingMiddleware
	rateLimitMiddleware   *middleware.RateLimitMiddleware
}

// NewRouter wires every route. rateLimitMiddleware may be nil, which
// disables rate limiting.
func NewRouter(
	healthHandler *handler.HealthHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	specializationHandler *handler.SpecializationHandler,
	appointmentHandler *handler.AppointmentHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		healthHandler:         healthHandler,
		doctorHandler:         doctorHandler,
		patientHandler:        patientHandler,
		specializationHandler: specializationHandler,
		appointmentHandler:    appointmentHandler,
		auditLogHandler:       auditLogHandler,
		corsMiddleware:        corsMiddleware,
		loggingMiddleware:     loggingMiddleware,
		rateLimitMiddleware:   rateLimitMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Doctors
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)
	api.HandleFunc("/doctors/{id}/appointments", r.doctorHandler.GetDoctorAppointments).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Specializations
	api.HandleFunc("/specializations", r.specializationHandler.GetAllSpecializations).Methods(http.MethodGet)
	api.HandleFunc("/specializations", r.specializationHandler.CreateSpecialization).Methods(http.MethodPost)
	api.HandleFunc("/specializations/{id}", r.specializationHandler.UpdateSpecialization).Methods(http.MethodPut)
	api.HandleFunc("/specializations/{id}", r.specializationHandler.DeleteSpecialization).Methods(http.MethodDelete)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Audit trail
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)

	// Preflight requests only need the CORS headers
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)
	if r.rateLimitMiddleware != nil {
		api.Use(r.rateLimitMiddleware.Handle)
	}

	return r.router
}
