package http

import (
	"net/http"

	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/http/handler"
	"github.com/Abdudhi100/dr-olaosebikan/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	serviceHandler     *handler.ServiceHandler
	slotHandler        *handler.SlotHandler
	bookingHandler     *handler.BookingHandler
	appointmentHandler *handler.AppointmentHandler
	publicationHandler *handler.PublicationHandler
	whatsAppHandler    *handler.WhatsAppHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	serviceHandler *handler.ServiceHandler,
	slotHandler *handler.SlotHandler,
	bookingHandler *handler.BookingHandler,
	appointmentHandler *handler.AppointmentHandler,
	publicationHandler *handler.PublicationHandler,
	whatsAppHandler *handler.WhatsAppHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		serviceHandler:     serviceHandler,
		slotHandler:        slotHandler,
		bookingHandler:     bookingHandler,
		appointmentHandler: appointmentHandler,
		publicationHandler: publicationHandler,
		whatsAppHandler:    whatsAppHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public site: service catalogue, slots, publications, contact.
	// Booking uses optional auth so a logged-in patient gets the appointment
	// linked to their account while guests book anonymously.
	public := api.PathPrefix("").Subrouter()
	public.Use(r.authMiddleware.OptionalAuthenticate)
	public.HandleFunc("/services", r.serviceHandler.ListServices).Methods(http.MethodGet)
	public.HandleFunc("/services/{id}", r.serviceHandler.GetService).Methods(http.MethodGet)
	public.HandleFunc("/services/{id}/slots", r.slotHandler.GetSlots).Methods(http.MethodGet)
	public.HandleFunc("/appointments", r.bookingHandler.CreateAppointment).Methods(http.MethodPost)
	public.HandleFunc("/publications", r.publicationHandler.ListPublications).Methods(http.MethodGet)
	public.HandleFunc("/achievements", r.publicationHandler.ListAchievements).Methods(http.MethodGet)
	public.HandleFunc("/contact/whatsapp", r.whatsAppHandler.CreateLink).Methods(http.MethodPost)

	// Patient routes (protected)
	patient := api.PathPrefix("").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.HandleFunc("/appointments/mine", r.bookingHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}/cancel", r.bookingHandler.CancelMyAppointment).Methods(http.MethodPost)

	// Doctor dashboard (protected, doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)

	doctor.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)

	doctor.HandleFunc("/services", r.serviceHandler.CreateService).Methods(http.MethodPost)
	doctor.HandleFunc("/services/{id}", r.serviceHandler.UpdateService).Methods(http.MethodPut)
	doctor.HandleFunc("/services/{id}", r.serviceHandler.DeleteService).Methods(http.MethodDelete)

	doctor.HandleFunc("/publications", r.publicationHandler.CreatePublication).Methods(http.MethodPost)
	doctor.HandleFunc("/publications/{id}", r.publicationHandler.DeletePublication).Methods(http.MethodDelete)
	doctor.HandleFunc("/achievements", r.publicationHandler.CreateAchievement).Methods(http.MethodPost)

	doctor.HandleFunc("/audit-logs", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)
	doctor.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
