package stremio

import "testing"

func TestCanonicalID(t *testing.T) {
	tests := []struct {
		rawID string
		want  string
	}{
		{"tt1234567", "tt1234567"},
		{"tt1234567:1:2", "tt1234567"},
		{"tt1234567:10:22", "tt1234567"},
		{"tt1234567:", "tt1234567"},
		{"", ""},
		{":1:2", ""},
	}

	for _, tt := range tests {
		if got := CanonicalID(tt.rawID); got != tt.want {
			t.Errorf("CanonicalID(%q) = %q, want %q", tt.rawID, got, tt.want)
		}
	}
}
