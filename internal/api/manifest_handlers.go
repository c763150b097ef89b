package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Zerr0-C00L/ListLink/internal/stremio"
	"github.com/Zerr0-C00L/ListLink/internal/userconfig"
)

// ManifestHandler serves the unconfigured manifest at GET /manifest.json.
// Stremio shows the configure button and refuses to install until the user
// runs the setup flow.
func (h *Handler) ManifestHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, stremio.BuildManifest(h.cfg.BaseURL, ""))
}

// ConfiguredManifestHandler serves GET /{config}/manifest.json. The token in
// the path is the user's entire configuration; a token that does not decode
// is the client's problem, not ours.
func (h *Handler) ConfiguredManifestHandler(w http.ResponseWriter, r *http.Request) {
	cfg, err := userconfig.Decode(mux.Vars(r)["config"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid configuration")
		return
	}

	username := cfg.Username
	if username == "" {
		username = "Configured"
	}
	respondJSON(w, http.StatusOK, stremio.BuildManifest(h.cfg.BaseURL, username))
}
