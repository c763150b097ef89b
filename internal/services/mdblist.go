package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Zerr0-C00L/ListLink/internal/lists"
	"github.com/Zerr0-C00L/ListLink/internal/userconfig"
)

const mdblistBaseURL = "https://api.mdblist.com"

// MDBListClient talks to the MDBList API and implements lists.Provider.
// MDBList authenticates every call with an apikey query parameter rather
// than a header; that asymmetry with Trakt is part of the API, not ours to
// unify.
type MDBListClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewMDBListClient() *MDBListClient {
	return &MDBListClient{
		baseURL: mdblistBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type mdblistList struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type mdblistItem struct {
	IMDB string `json:"imdb"`
}

// ListUserLists returns the user's MDBList lists. MDBList identifies lists
// by a numeric id, carried here as its decimal string.
func (m *MDBListClient) ListUserLists(ctx context.Context, apiKey string) ([]lists.NamedList, error) {
	endpoint := fmt.Sprintf("%s/lists/user?apikey=%s", m.baseURL, url.QueryEscape(apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var raw []mdblistList
	if err := m.do(req, &raw); err != nil {
		return nil, err
	}

	named := make([]lists.NamedList, 0, len(raw))
	for _, l := range raw {
		named = append(named, lists.NamedList{ID: strconv.Itoa(l.ID), Name: l.Name})
	}
	return named, nil
}

// AddItem posts one item to an MDBList list. The watchlist sentinel routes
// to the watchlist add endpoint; any other target hits the named-list add
// endpoint. mediaKind is MDBList vocabulary (movie/show); anything that is
// not a movie goes under the "shows" payload key.
func (m *MDBListClient) AddItem(ctx context.Context, apiKey, listTarget, mediaKind, imdbID string) error {
	item := mdblistItem{IMDB: imdbID}
	payload := map[string][]mdblistItem{"shows": {item}}
	if mediaKind == "movie" {
		payload = map[string][]mdblistItem{"movies": {item}}
	}

	path := "/lists/" + url.PathEscape(listTarget) + "/items/add"
	if listTarget == userconfig.Watchlist {
		path = "/watchlist/items/add"
	}
	endpoint := fmt.Sprintf("%s%s?apikey=%s", m.baseURL, path, url.QueryEscape(apiKey))

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return m.do(req, nil)
}

// do runs the request, surfaces any non-2xx as *lists.UpstreamError and
// decodes the body into out when asked for.
func (m *MDBListClient) do(req *http.Request, out interface{}) error {
	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mdblist request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &lists.UpstreamError{Provider: "MDBList", Status: resp.StatusCode, Body: string(data)}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
