package lists

import (
	"context"
	"errors"
	"testing"

	"github.com/Zerr0-C00L/ListLink/internal/userconfig"
)

// fakeProvider records the single AddItem call it receives.
type fakeProvider struct {
	calls []addCall
	err   error
}

type addCall struct {
	credential string
	listTarget string
	mediaKind  string
	imdbID     string
}

func (f *fakeProvider) ListUserLists(ctx context.Context, credential string) ([]NamedList, error) {
	return nil, nil
}

func (f *fakeProvider) AddItem(ctx context.Context, credential, listTarget, mediaKind, imdbID string) error {
	f.calls = append(f.calls, addCall{credential, listTarget, mediaKind, imdbID})
	return f.err
}

func newTestDispatcher() (*Dispatcher, *fakeProvider, *fakeProvider) {
	trakt := &fakeProvider{}
	mdblist := &fakeProvider{}
	d := NewDispatcher(map[string]Provider{
		userconfig.SourceTrakt:   trakt,
		userconfig.SourceMDBList: mdblist,
	})
	return d, trakt, mdblist
}

func TestAddToListRouting(t *testing.T) {
	cfg := userconfig.Configuration{
		AccessToken:   "trakt-token",
		MDBListAPIKey: "mdblist-key",
	}

	tests := []struct {
		name       string
		listTarget string
		source     string
		mediaKind  string
		rawID      string
		wantTrakt  bool
		want       addCall
	}{
		{
			name:       "trakt series passes media kind through unchanged",
			listTarget: "best-of-2024",
			source:     "trakt",
			mediaKind:  "series",
			rawID:      "tt1234567:1:2",
			wantTrakt:  true,
			want:       addCall{"trakt-token", "best-of-2024", "series", "tt1234567"},
		},
		{
			name:       "empty source defaults to trakt",
			listTarget: "watchlist",
			source:     "",
			mediaKind:  "movie",
			rawID:      "tt1234567",
			wantTrakt:  true,
			want:       addCall{"trakt-token", "watchlist", "movie", "tt1234567"},
		},
		{
			name:       "mdblist series maps to show",
			listTarget: "123",
			source:     "mdblist",
			mediaKind:  "series",
			rawID:      "tt1234567:3:4",
			wantTrakt:  false,
			want:       addCall{"mdblist-key", "123", "show", "tt1234567"},
		},
		{
			name:       "mdblist movie stays movie",
			listTarget: "watchlist",
			source:     "mdblist",
			mediaKind:  "movie",
			rawID:      "tt7654321",
			wantTrakt:  false,
			want:       addCall{"mdblist-key", "watchlist", "movie", "tt7654321"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, trakt, mdblist := newTestDispatcher()

			err := d.AddToList(context.Background(), cfg, tt.listTarget, tt.source, tt.mediaKind, tt.rawID)
			if err != nil {
				t.Fatalf("AddToList returned error: %v", err)
			}

			target, other := mdblist, trakt
			if tt.wantTrakt {
				target, other = trakt, mdblist
			}
			if len(other.calls) != 0 {
				t.Fatalf("wrong provider called: %+v", other.calls)
			}
			if len(target.calls) != 1 {
				t.Fatalf("provider called %d times, want 1", len(target.calls))
			}
			if target.calls[0] != tt.want {
				t.Errorf("call = %+v, want %+v", target.calls[0], tt.want)
			}
		})
	}
}

func TestAddToListMissingCredential(t *testing.T) {
	tests := []struct {
		name   string
		cfg    userconfig.Configuration
		source string
	}{
		{"mdblist without api key", userconfig.Configuration{AccessToken: "trakt-token"}, "mdblist"},
		{"trakt without access token", userconfig.Configuration{MDBListAPIKey: "mdblist-key"}, "trakt"},
		{"default source without access token", userconfig.Configuration{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, trakt, mdblist := newTestDispatcher()

			err := d.AddToList(context.Background(), tt.cfg, "watchlist", tt.source, "movie", "tt1")
			if !errors.Is(err, ErrMissingCredential) {
				t.Fatalf("error = %v, want ErrMissingCredential", err)
			}
			if len(trakt.calls)+len(mdblist.calls) != 0 {
				t.Error("provider was called despite missing credential")
			}
		})
	}
}

func TestAddToListPropagatesUpstreamError(t *testing.T) {
	d, trakt, _ := newTestDispatcher()
	trakt.err = &UpstreamError{Provider: "Trakt", Status: 420, Body: "slow down"}

	cfg := userconfig.Configuration{AccessToken: "trakt-token"}
	err := d.AddToList(context.Background(), cfg, "watchlist", "trakt", "movie", "tt1")

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if upstream.Status != 420 || upstream.Body != "slow down" {
		t.Errorf("upstream = %+v", upstream)
	}
}
