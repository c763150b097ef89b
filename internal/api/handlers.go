package api

import (
	"encoding/json"
	"net/http"

	"github.com/Zerr0-C00L/ListLink/internal/config"
	"github.com/Zerr0-C00L/ListLink/internal/lists"
	"github.com/Zerr0-C00L/ListLink/internal/services"
	"github.com/Zerr0-C00L/ListLink/internal/views"
)

type Handler struct {
	cfg        *config.Config
	trakt      *services.TraktClient
	mdblist    *services.MDBListClient
	dispatcher *lists.Dispatcher
	views      *views.Renderer
}

func NewHandler(
	cfg *config.Config,
	trakt *services.TraktClient,
	mdblist *services.MDBListClient,
	dispatcher *lists.Dispatcher,
	views *views.Renderer,
) *Handler {
	return &Handler{
		cfg:        cfg,
		trakt:      trakt,
		mdblist:    mdblist,
		dispatcher: dispatcher,
		views:      views,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// RootHandler handles GET /
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/configure", http.StatusFound)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
