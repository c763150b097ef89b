package userconfig

import "encoding/json"

// Source tags for the upstream list providers. Trakt is the default: legacy
// configurations predate multi-provider support and never carry a tag.
const (
	SourceTrakt   = "trakt"
	SourceMDBList = "mdblist"
)

// Watchlist is the sentinel list identifier denoting a provider's built-in
// watchlist rather than a named list.
const Watchlist = "watchlist"

// Configuration is everything a user chose during setup. It lives entirely
// inside the addon installation URL: encoded once by the configure page,
// decoded fresh on every request, never stored server-side.
type Configuration struct {
	AccessToken   string    `json:"accessToken,omitempty"`
	MDBListAPIKey string    `json:"mdblistApiKey,omitempty"`
	Username      string    `json:"username,omitempty"`
	Lists         []ListRef `json:"lists,omitempty"`
}

// ListRef is one list the user exposed as an "add to" action. Two wire shapes
// exist: the legacy form is a bare string (implicitly a Trakt list slug), the
// extended form is an {id, name, source} object. Both normalize through the
// accessor methods so nothing downstream has to care which shape arrived.
type ListRef struct {
	id     string
	name   string
	source string
	legacy bool
}

// LegacyTraktList builds the bare-string form. The value doubles as the list
// identifier and its display label.
func LegacyTraktList(name string) ListRef {
	return ListRef{id: name, legacy: true}
}

// ExplicitList builds the extended form.
func ExplicitList(id, name, source string) ListRef {
	return ListRef{id: id, name: name, source: source}
}

// Identifier returns the provider-specific list id, or the watchlist sentinel.
func (l ListRef) Identifier() string {
	return l.id
}

// DisplayName returns the human-readable label. The legacy watchlist sentinel
// maps to the literal "Watchlist".
func (l ListRef) DisplayName() string {
	if l.legacy {
		if l.id == Watchlist {
			return "Watchlist"
		}
		return l.id
	}
	return l.name
}

// ProviderSource returns the source tag, defaulting to trakt for legacy refs
// and extended refs that omit it.
func (l ListRef) ProviderSource() string {
	if l.legacy || l.source == "" {
		return SourceTrakt
	}
	return l.source
}

type extendedListRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

// MarshalJSON preserves the wire shape the ref was built from, so tokens
// round-trip byte-compatibly with configurations minted by older versions.
func (l ListRef) MarshalJSON() ([]byte, error) {
	if l.legacy {
		return json.Marshal(l.id)
	}
	return json.Marshal(extendedListRef{ID: l.id, Name: l.name, Source: l.source})
}

func (l *ListRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = LegacyTraktList(s)
		return nil
	}
	var ext extendedListRef
	if err := json.Unmarshal(data, &ext); err != nil {
		return err
	}
	*l = ExplicitList(ext.ID, ext.Name, ext.Source)
	return nil
}
