package api

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"net/url"
)

// ConfigurePage serves GET /configure.
func (h *Handler) ConfigurePage(w http.ResponseWriter, r *http.Request) {
	h.renderHTML(w, http.StatusOK, func() error {
		return h.views.Configure(w, h.cfg.BaseURL)
	})
}

// TraktAuthRedirect serves GET /auth/trakt: sends the user to Trakt's
// authorize page with a fresh random state nonce.
func (h *Handler) TraktAuthRedirect(w http.ResponseWriter, r *http.Request) {
	stateBytes := make([]byte, 16)
	if _, err := rand.Read(stateBytes); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate state")
		return
	}
	state := hex.EncodeToString(stateBytes)

	authURL := h.trakt.AuthURL(h.cfg.BaseURL+"/auth/trakt/callback", state)
	http.Redirect(w, r, authURL, http.StatusFound)
}

// TraktAuthCallback serves GET /auth/trakt/callback: exchanges the code for
// an access token, looks up the username and bounces back to the configure
// page with both in the query string. The configure page keeps them client-
// side; the server never stores either.
func (h *Handler) TraktAuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Authorization failed", http.StatusBadRequest)
		return
	}

	token, err := h.trakt.ExchangeCode(r.Context(), code, h.cfg.BaseURL+"/auth/trakt/callback")
	if err != nil {
		log.Printf("[Auth] OAuth token exchange failed: %v", err)
		http.Error(w, "Authentication failed", http.StatusInternalServerError)
		return
	}

	username, err := h.trakt.GetUsername(r.Context(), token.AccessToken)
	if err != nil {
		log.Printf("[Auth] Username lookup failed: %v", err)
		http.Error(w, "Authentication failed", http.StatusInternalServerError)
		return
	}

	q := url.Values{}
	q.Set("access_token", token.AccessToken)
	q.Set("username", username)
	http.Redirect(w, r, "/configure?"+q.Encode(), http.StatusFound)
}
