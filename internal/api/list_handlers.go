package api

import (
	"log"
	"net/http"
	"strings"
)

// TraktUserLists serves GET /api/user/lists for the configure page. The
// bearer token travels in the Authorization header, the way Trakt itself
// wants it.
func (h *Handler) TraktUserLists(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		respondError(w, http.StatusUnauthorized, "No authorization header")
		return
	}
	accessToken := strings.TrimPrefix(authHeader, "Bearer ")

	userLists, err := h.trakt.ListUserLists(r.Context(), accessToken)
	if err != nil {
		log.Printf("[API] Failed to fetch Trakt lists: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch lists")
		return
	}
	respondJSON(w, http.StatusOK, userLists)
}

// MDBListUserLists serves GET /api/user/mdblist-lists?apikey= for the
// configure page. MDBList keys travel as a query parameter.
func (h *Handler) MDBListUserLists(w http.ResponseWriter, r *http.Request) {
	apiKey := r.URL.Query().Get("apikey")
	if apiKey == "" {
		respondError(w, http.StatusUnauthorized, "No API key provided")
		return
	}

	userLists, err := h.mdblist.ListUserLists(r.Context(), apiKey)
	if err != nil {
		log.Printf("[API] Failed to fetch MDBList lists: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch MDBList lists")
		return
	}
	respondJSON(w, http.StatusOK, userLists)
}
