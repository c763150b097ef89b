package stremio

import "fmt"

const (
	addonID      = "community.listlink"
	addonVersion = "1.0.0"
)

// Manifest is the Stremio addon capability descriptor.
// See https://github.com/Stremio/stremio-addon-sdk/blob/master/docs/api/responses/manifest.md
type Manifest struct {
	ID            string        `json:"id"`
	Version       string        `json:"version"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Logo          string        `json:"logo,omitempty"`
	Resources     []string      `json:"resources"`
	Types         []string      `json:"types"`
	IDPrefixes    []string      `json:"idPrefixes"`
	Catalogs      []Catalog     `json:"catalogs"`
	BehaviorHints BehaviorHints `json:"behaviorHints"`
}

// Catalog is declared only so the manifest can carry an explicit empty
// catalogs array; this addon serves streams, not catalogs.
type Catalog struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BehaviorHints tells Stremio how the addon wants to be installed.
type BehaviorHints struct {
	Configurable          bool `json:"configurable"`
	ConfigurationRequired bool `json:"configurationRequired"`
}

// BuildManifest produces the addon descriptor. With an empty username the
// manifest flags that configuration is still required; once the user has run
// the configure flow their name is embedded in the addon title.
func BuildManifest(baseURL, username string) Manifest {
	name := "ListLink"
	if username != "" {
		name = fmt.Sprintf("ListLink (%s)", username)
	}

	return Manifest{
		ID:          addonID,
		Version:     addonVersion,
		Name:        name,
		Description: "Add watched content to your Trakt.tv and MDBList lists",
		Logo:        baseURL + "/logo.png",
		Resources:   []string{"stream"},
		Types:       []string{"movie", "series"},
		IDPrefixes:  []string{"tt"},
		Catalogs:    []Catalog{},
		BehaviorHints: BehaviorHints{
			Configurable:          true,
			ConfigurationRequired: username == "",
		},
	}
}
