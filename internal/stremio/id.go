package stremio

import "strings"

// CanonicalID strips any season/episode suffix from a Stremio content id.
// Series ids arrive as "tt1234567:1:2"; upstream list calls only want the
// external id before the first separator. Movie ids pass through unchanged.
func CanonicalID(rawID string) string {
	if i := strings.IndexByte(rawID, ':'); i >= 0 {
		return rawID[:i]
	}
	return rawID
}
