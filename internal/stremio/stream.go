package stremio

// Stream is one entry in a stream response. This addon never serves playable
// media: every stream is an externalUrl deep link back into the add endpoint,
// which Stremio renders as a selectable option in the player UI.
type Stream struct {
	Title       string `json:"title"`
	ExternalURL string `json:"externalUrl"`
}

// StreamResponse is the body of a /stream/{type}/{id}.json reply.
type StreamResponse struct {
	Streams []Stream `json:"streams"`
}
