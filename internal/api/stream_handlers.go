package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Zerr0-C00L/ListLink/internal/lists"
	"github.com/Zerr0-C00L/ListLink/internal/stremio"
	"github.com/Zerr0-C00L/ListLink/internal/userconfig"
)

// StreamHandler serves GET /{config}/stream/{type}/{id}.json. Every
// configured list becomes one "stream" whose externalUrl deep-links back
// into the add endpoint; Stremio renders them as player-UI choices.
func (h *Handler) StreamHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	token := vars["config"]

	cfg, err := userconfig.Decode(token)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid configuration")
		return
	}

	mediaKind := vars["type"]
	rawID := strings.TrimSuffix(vars["id"], ".json")

	options := lists.BuildOptions(cfg, mediaKind, rawID)
	streams := make([]stremio.Stream, 0, len(options))
	for _, opt := range options {
		externalURL := fmt.Sprintf("%s/%s/add/%s/%s/%s",
			h.cfg.BaseURL, token, opt.MediaKind, opt.RawID, url.PathEscape(opt.Identifier))
		if opt.Source != userconfig.SourceTrakt {
			externalURL += "?source=" + url.QueryEscape(opt.Source)
		}
		streams = append(streams, stremio.Stream{
			Title:       opt.Label,
			ExternalURL: externalURL,
		})
	}

	respondJSON(w, http.StatusOK, stremio.StreamResponse{Streams: streams})
}

// AddHandler serves GET /{config}/add/{type}/{id}/{list}?source=. This is
// the endpoint the player-UI options point at: it decodes the token, routes
// the add through the dispatcher and answers with a human-facing HTML page,
// since Stremio opens it in a browser.
func (h *Handler) AddHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cfg, err := userconfig.Decode(vars["config"])
	if err != nil {
		http.Error(w, "Invalid configuration", http.StatusBadRequest)
		return
	}

	mediaKind := vars["type"]
	rawID := vars["id"]
	listTarget := vars["list"]
	source := r.URL.Query().Get("source")

	if err := h.dispatcher.AddToList(r.Context(), cfg, listTarget, source, mediaKind, rawID); err != nil {
		log.Printf("[Add] Failed to add %s to %s (%s): %v", rawID, listTarget, source, err)

		status := http.StatusInternalServerError
		if errors.Is(err, lists.ErrMissingCredential) {
			status = http.StatusBadRequest
		}
		h.renderHTML(w, status, func() error { return h.views.Error(w) })
		return
	}

	displayName := listTarget
	if listTarget == userconfig.Watchlist {
		displayName = "Watchlist"
	}
	h.renderHTML(w, http.StatusOK, func() error { return h.views.Success(w, displayName) })
}

func (h *Handler) renderHTML(w http.ResponseWriter, status int, render func() error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := render(); err != nil {
		log.Printf("[Views] Failed to render page: %v", err)
	}
}
