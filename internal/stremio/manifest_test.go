package stremio

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildManifestUnconfigured(t *testing.T) {
	m := BuildManifest("http://localhost:7000", "")

	if m.Name != "ListLink" {
		t.Errorf("Name = %q, want ListLink", m.Name)
	}
	if !m.BehaviorHints.ConfigurationRequired {
		t.Error("ConfigurationRequired = false, want true for unconfigured manifest")
	}
	if !m.BehaviorHints.Configurable {
		t.Error("Configurable = false, want true")
	}
	if m.Logo != "http://localhost:7000/logo.png" {
		t.Errorf("Logo = %q", m.Logo)
	}
}

func TestBuildManifestConfigured(t *testing.T) {
	m := BuildManifest("http://localhost:7000", "alice")

	if m.Name != "ListLink (alice)" {
		t.Errorf("Name = %q, want ListLink (alice)", m.Name)
	}
	if m.BehaviorHints.ConfigurationRequired {
		t.Error("ConfigurationRequired = true, want false once a username is set")
	}
}

func TestManifestDescriptorShape(t *testing.T) {
	m := BuildManifest("http://localhost:7000", "alice")

	if m.ID != "community.listlink" {
		t.Errorf("ID = %q", m.ID)
	}
	if len(m.Resources) != 1 || m.Resources[0] != "stream" {
		t.Errorf("Resources = %v, want [stream]", m.Resources)
	}
	if len(m.Types) != 2 || m.Types[0] != "movie" || m.Types[1] != "series" {
		t.Errorf("Types = %v, want [movie series]", m.Types)
	}
	if len(m.IDPrefixes) != 1 || m.IDPrefixes[0] != "tt" {
		t.Errorf("IDPrefixes = %v, want [tt]", m.IDPrefixes)
	}

	// Stremio rejects manifests whose catalogs marshal as null.
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"catalogs":[]`) {
		t.Errorf("manifest JSON missing empty catalogs array: %s", data)
	}
}
