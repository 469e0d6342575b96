package sources

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRegistryHasNamedURLs(t *testing.T) {
	if len(Registry) == 0 {
		t.Fatal("built-in registry must not be empty")
	}
	for _, src := range Registry {
		if src.Name == "" || src.URL == "" {
			t.Fatalf("registry entry missing name or url: %+v", src)
		}
	}
}

func TestLoadOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	doc := `sources:
  - name: PV-Tech
    url: https://www.pv-tech.org/feed/
  - name: Test Feed
    url: https://test.example/feed
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(loaded))
	}
	if loaded[1].Name != "Test Feed" || loaded[1].URL != "https://test.example/feed" {
		t.Fatalf("unexpected second source: %+v", loaded[1])
	}
}

func TestLoadRejectsIncompleteEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	doc := `sources:
  - name: Missing URL
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for entry without url")
	}
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	if err := os.WriteFile(path, []byte("sources: []\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty source list")
	}
}
