package lists

import (
	"github.com/Zerr0-C00L/ListLink/internal/userconfig"
)

// Option is one actionable "add to list" choice presented in the player UI.
// It carries everything the dispatcher needs to reconstruct the call when
// the user picks it.
type Option struct {
	Label      string
	MediaKind  string
	RawID      string
	Identifier string
	Source     string
}

// BuildOptions produces one Option per configured list, preserving the order
// the user chose. Lists on the default provider are unlabeled; MDBList
// entries carry a bracketed provider tag so mixed configurations stay
// readable.
//
// BuildOptions never fails: a configuration without lists yields an empty
// slice, so the stream endpoint always answers with a valid streams array.
func BuildOptions(cfg userconfig.Configuration, mediaKind, rawID string) []Option {
	options := make([]Option, 0, len(cfg.Lists))
	for _, ref := range cfg.Lists {
		label := "Add to " + ref.DisplayName()
		if ref.ProviderSource() == userconfig.SourceMDBList {
			label = "Add to [MDBList] " + ref.DisplayName()
		}

		options = append(options, Option{
			Label:      label,
			MediaKind:  mediaKind,
			RawID:      rawID,
			Identifier: ref.Identifier(),
			Source:     ref.ProviderSource(),
		})
	}
	return options
}
