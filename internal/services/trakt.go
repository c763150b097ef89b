package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Zerr0-C00L/ListLink/internal/lists"
	"github.com/Zerr0-C00L/ListLink/internal/userconfig"
)

const traktBaseURL = "https://api.trakt.tv"

// TraktClient talks to the Trakt.tv v2 API. It implements lists.Provider for
// the list operations and additionally carries the OAuth glue the configure
// flow needs (authorize URL, code exchange, username lookup).
type TraktClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
}

func NewTraktClient(clientID, clientSecret string) *TraktClient {
	return &TraktClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      traktBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// TokenResponse is the Trakt OAuth token exchange response.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
	CreatedAt    int64  `json:"created_at"`
}

type traktList struct {
	Name string `json:"name"`
	IDs  struct {
		Trakt int    `json:"trakt"`
		Slug  string `json:"slug"`
	} `json:"ids"`
}

type traktListItem struct {
	IDs struct {
		IMDB string `json:"imdb"`
	} `json:"ids"`
}

// setTraktHeaders applies the headers every authenticated Trakt call wants.
func (t *TraktClient) setTraktHeaders(req *http.Request, accessToken string) {
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("trakt-api-version", "2")
	req.Header.Set("trakt-api-key", t.clientID)
}

// AuthURL builds the Trakt authorize redirect for the OAuth code flow.
func (t *TraktClient) AuthURL(redirectURI, state string) string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", t.clientID)
	q.Set("redirect_uri", redirectURI)
	q.Set("state", state)
	return t.baseURL + "/oauth/authorize?" + q.Encode()
}

// ExchangeCode trades an authorization code for an access token.
func (t *TraktClient) ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenResponse, error) {
	body, _ := json.Marshal(map[string]string{
		"code":          code,
		"client_id":     t.clientID,
		"client_secret": t.clientSecret,
		"redirect_uri":  redirectURI,
		"grant_type":    "authorization_code",
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/oauth/token", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var token TokenResponse
	if err := t.do(req, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// GetUsername fetches the authenticated user's Trakt username.
func (t *TraktClient) GetUsername(ctx context.Context, accessToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/users/me", nil)
	if err != nil {
		return "", err
	}
	t.setTraktHeaders(req, accessToken)

	var user struct {
		Username string `json:"username"`
	}
	if err := t.do(req, &user); err != nil {
		return "", err
	}
	return user.Username, nil
}

// ListUserLists returns the user's personal Trakt lists. The list slug is the
// identifier the items endpoint is parameterized by.
func (t *TraktClient) ListUserLists(ctx context.Context, accessToken string) ([]lists.NamedList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/users/me/lists", nil)
	if err != nil {
		return nil, err
	}
	t.setTraktHeaders(req, accessToken)

	var raw []traktList
	if err := t.do(req, &raw); err != nil {
		return nil, err
	}

	named := make([]lists.NamedList, 0, len(raw))
	for _, l := range raw {
		named = append(named, lists.NamedList{ID: l.IDs.Slug, Name: l.Name})
	}
	return named, nil
}

// AddItem posts one item to a Trakt list. The watchlist sentinel routes to
// the sync endpoint; any other target hits the named-list items endpoint.
// mediaKind is the Stremio vocabulary (movie/series); anything that is not a
// movie goes under the "shows" payload key.
func (t *TraktClient) AddItem(ctx context.Context, accessToken, listTarget, mediaKind, imdbID string) error {
	var item traktListItem
	item.IDs.IMDB = imdbID

	payload := map[string][]traktListItem{"shows": {item}}
	if mediaKind == "movie" {
		payload = map[string][]traktListItem{"movies": {item}}
	}

	endpoint := t.baseURL + "/users/me/lists/" + url.PathEscape(listTarget) + "/items"
	if listTarget == userconfig.Watchlist {
		endpoint = t.baseURL + "/sync/watchlist"
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	t.setTraktHeaders(req, accessToken)

	return t.do(req, nil)
}

// do runs the request, surfaces any non-2xx as *lists.UpstreamError and
// decodes the body into out when asked for.
func (t *TraktClient) do(req *http.Request, out interface{}) error {
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("trakt request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &lists.UpstreamError{Provider: "Trakt", Status: resp.StatusCode, Body: string(data)}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
