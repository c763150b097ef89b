package lists

import (
	"context"
	"errors"
	"fmt"
)

// NamedList is one list on an upstream provider, reduced to what the
// configure page needs to present a choice.
type NamedList struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Provider is the capability surface of one upstream list-hosting system.
// Each implementation decides how the credential travels (Trakt wants a
// bearer header, MDBList an apikey query parameter) and which endpoint an
// add targets; callers never see those differences.
type Provider interface {
	ListUserLists(ctx context.Context, credential string) ([]NamedList, error)
	AddItem(ctx context.Context, credential, listTarget, mediaKind, imdbID string) error
}

// UpstreamError carries a non-success upstream response. The body is kept
// verbatim for logging; nothing retries on it.
type UpstreamError struct {
	Provider string
	Status   int
	Body     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API returned status %d: %s", e.Provider, e.Status, e.Body)
}

// ErrMissingCredential is returned when the decoded configuration lacks the
// credential the requested provider needs. It is detected before any network
// call is attempted.
var ErrMissingCredential = errors.New("configuration lacks the credential required by the requested provider")
