package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaultTheme(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_BrokenFileDegrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = ["), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}
	p := Load(path)
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want default on parse failure", p.Theme)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")
	if err := Save(path, Prefs{Theme: "Ink"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	p := Load(path)
	if p.Theme != "Ink" {
		t.Fatalf("Theme = %q, want Ink", p.Theme)
	}
}
