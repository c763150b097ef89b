package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SetupRoutes configures all routes. Token-prefixed routes must come after
// the literal ones: mux matches in registration order, and every installed
// addon URL starts with an opaque {config} segment.
func SetupRoutes(handler *Handler) http.Handler {
	r := mux.NewRouter()

	// Root and health
	r.HandleFunc("/", handler.RootHandler).Methods("GET")
	r.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// Manifest
	r.HandleFunc("/manifest.json", handler.ManifestHandler).Methods("GET")

	// Configuration flow
	r.HandleFunc("/configure", handler.ConfigurePage).Methods("GET")
	r.HandleFunc("/auth/trakt", handler.TraktAuthRedirect).Methods("GET")
	r.HandleFunc("/auth/trakt/callback", handler.TraktAuthCallback).Methods("GET")

	// List queries for the configure page
	r.HandleFunc("/api/user/lists", handler.TraktUserLists).Methods("GET")
	r.HandleFunc("/api/user/mdblist-lists", handler.MDBListUserLists).Methods("GET")

	// Token-scoped Stremio endpoints
	r.HandleFunc("/{config}/manifest.json", handler.ConfiguredManifestHandler).Methods("GET")
	r.HandleFunc("/{config}/stream/{type}/{id}", handler.StreamHandler).Methods("GET")
	r.HandleFunc("/{config}/add/{type}/{id}/{list}", handler.AddHandler).Methods("GET")

	// Static assets (logo etc.)
	r.PathPrefix("/").Handler(http.FileServer(http.Dir("./public"))).Methods("GET")

	// Enable CORS
	r.Use(corsMiddleware)

	// Logging middleware
	r.Use(loggingMiddleware)

	return r
}
