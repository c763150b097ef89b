package lists

import (
	"context"
	"fmt"

	"github.com/Zerr0-C00L/ListLink/internal/stremio"
	"github.com/Zerr0-C00L/ListLink/internal/userconfig"
)

// Dispatcher routes add-to-list requests to the provider that owns the
// target list. It holds no per-request state: the configuration arrives
// decoded from the URL token on every call.
type Dispatcher struct {
	providers map[string]Provider
}

// NewDispatcher registers one Provider per source tag. Supporting a third
// provider means one more entry in the map passed here.
func NewDispatcher(providers map[string]Provider) *Dispatcher {
	return &Dispatcher{providers: providers}
}

// Provider returns the adapter registered for a source tag.
func (d *Dispatcher) Provider(source string) (Provider, bool) {
	p, ok := d.providers[source]
	return p, ok
}

// AddToList normalizes the content id, selects the provider named by source
// (trakt when unspecified or unknown), checks the matching credential and
// invokes the provider's add operation.
//
// Media kinds are provider vocabulary: MDBList calls everything that is not
// a movie a "show", while Trakt takes the Stremio kind (movie/series)
// unchanged.
func (d *Dispatcher) AddToList(ctx context.Context, cfg userconfig.Configuration, listTarget, source, mediaKind, rawID string) error {
	imdbID := stremio.CanonicalID(rawID)

	if source != userconfig.SourceMDBList {
		source = userconfig.SourceTrakt
	}

	credential := cfg.AccessToken
	if source == userconfig.SourceMDBList {
		credential = cfg.MDBListAPIKey
		if mediaKind != "movie" {
			mediaKind = "show"
		}
	}
	if credential == "" {
		return fmt.Errorf("%s: %w", source, ErrMissingCredential)
	}

	provider, ok := d.providers[source]
	if !ok {
		return fmt.Errorf("no provider registered for source %q", source)
	}
	return provider.AddItem(ctx, credential, listTarget, mediaKind, imdbID)
}
