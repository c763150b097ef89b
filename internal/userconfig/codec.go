package userconfig

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
)

// ErrInvalidToken is returned by Decode for any token that cannot be reversed
// into a Configuration. Callers treat it as a client error, not a server
// fault.
var ErrInvalidToken = errors.New("invalid configuration token")

// Encode serializes a Configuration into its opaque URL-safe token form. The
// token appears as a path segment in every URL the addon hands to Stremio.
func Encode(cfg Configuration) string {
	data, _ := json.Marshal(cfg)
	return base64.URLEncoding.EncodeToString(data)
}

// Decode is the inverse of Encode. Tokens minted by older configure pages
// used the standard base64 alphabet, so both alphabets are accepted.
func Decode(token string) (Configuration, error) {
	data, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		data, err = base64.StdEncoding.DecodeString(token)
	}
	if err != nil {
		return Configuration{}, ErrInvalidToken
	}

	// A configuration is a JSON object; "null", arrays and bare scalars all
	// decode cleanly into the zero value, so reject them explicitly.
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Configuration{}, ErrInvalidToken
	}

	var cfg Configuration
	if err := json.Unmarshal(trimmed, &cfg); err != nil {
		return Configuration{}, ErrInvalidToken
	}
	return cfg, nil
}
