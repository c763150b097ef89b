package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Zerr0-C00L/ListLink/internal/lists"
)

func newTestMDBListClient(url string) *MDBListClient {
	c := NewMDBListClient()
	c.baseURL = url
	return c
}

func TestMDBListAddItemWatchlist(t *testing.T) {
	srv, rec := newFakeUpstream(t, http.StatusOK, `{"added":1}`)
	c := newTestMDBListClient(srv.URL)

	if err := c.AddItem(context.Background(), "key-123", "watchlist", "movie", "tt1234567"); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}

	if rec.method != http.MethodPost || rec.path != "/watchlist/items/add?apikey=key-123" {
		t.Errorf("request = %s %s, want POST /watchlist/items/add?apikey=key-123", rec.method, rec.path)
	}
	want := `{"movies":[{"imdb":"tt1234567"}]}`
	if string(rec.body) != want {
		t.Errorf("body = %s, want %s", rec.body, want)
	}
}

func TestMDBListAddItemNamedListShow(t *testing.T) {
	srv, rec := newFakeUpstream(t, http.StatusOK, `{"added":1}`)
	c := newTestMDBListClient(srv.URL)

	if err := c.AddItem(context.Background(), "key-123", "456", "show", "tt1234567"); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}

	if rec.path != "/lists/456/items/add?apikey=key-123" {
		t.Errorf("path = %s, want /lists/456/items/add?apikey=key-123", rec.path)
	}
	// MDBList item descriptors are flat, unlike Trakt's nested ids object.
	want := `{"shows":[{"imdb":"tt1234567"}]}`
	if string(rec.body) != want {
		t.Errorf("body = %s, want %s", rec.body, want)
	}
}

func TestMDBListCredentialTravelsInQuery(t *testing.T) {
	srv, rec := newFakeUpstream(t, http.StatusOK, `{}`)
	c := newTestMDBListClient(srv.URL)

	if err := c.AddItem(context.Background(), "key with spaces", "watchlist", "movie", "tt1"); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}

	if got := rec.header.Get("Authorization"); got != "" {
		t.Errorf("Authorization header = %q, MDBList must not receive one", got)
	}
	if rec.path != "/watchlist/items/add?apikey=key+with+spaces" {
		t.Errorf("path = %s, apikey must be query-escaped", rec.path)
	}
}

func TestMDBListAddItemUpstreamError(t *testing.T) {
	srv, _ := newFakeUpstream(t, http.StatusForbidden, `{"error":"invalid api key"}`)
	c := newTestMDBListClient(srv.URL)

	err := c.AddItem(context.Background(), "bad-key", "watchlist", "movie", "tt1")

	var upstream *lists.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want *lists.UpstreamError", err)
	}
	if upstream.Provider != "MDBList" || upstream.Status != http.StatusForbidden {
		t.Errorf("upstream = %+v", upstream)
	}
}

func TestMDBListListUserLists(t *testing.T) {
	srv, rec := newFakeUpstream(t, http.StatusOK,
		`[{"id":123,"name":"Favorites","items":42},{"id":456,"name":"To Watch","items":7}]`)
	c := newTestMDBListClient(srv.URL)

	got, err := c.ListUserLists(context.Background(), "key-123")
	if err != nil {
		t.Fatalf("ListUserLists returned error: %v", err)
	}

	if rec.path != "/lists/user?apikey=key-123" {
		t.Errorf("path = %s, want /lists/user?apikey=key-123", rec.path)
	}
	want := []lists.NamedList{
		{ID: "123", Name: "Favorites"},
		{ID: "456", Name: "To Watch"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lists, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("lists[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
