package http

import (
	"net/http"

	"medical-directory-admin/internal/delivery/http/handler"
	"medical-directory-admin/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	directoryEntryHandler *handler.DirectoryEntryHandler
	auditLogHandler       *handler.AuditLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
	metricsMiddleware     *middleware.MetricsMiddleware
	metricsHandler        http.Handler
}

func NewRouter(
	authHandler *handler.AuthHandler,
	directoryEntryHandler *handler.DirectoryEntryHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		directoryEntryHandler: directoryEntryHandler,
		auditLogHandler:       auditLogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
		metricsMiddleware:     metricsMiddleware,
		metricsHandler:        metricsHandler,
	}
}

func (r *Router) Setup() *mux.Router {
	// Prometheus scrape endpoint, disabled when no handler is given
	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)
	}

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Directory entry management
	admin.HandleFunc("/directory-entries", r.directoryEntryHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/directory-entries", r.directoryEntryHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/directory-entries/{id}", r.directoryEntryHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/directory-entries/{id}", r.directoryEntryHandler.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/directory-entries/{id}", r.directoryEntryHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/directory-entries/{id}/status", r.directoryEntryHandler.UpdateStatus).Methods(http.MethodPatch)

	// Audit trail
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS and metrics middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
