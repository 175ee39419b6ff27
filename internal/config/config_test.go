package config

import (
	"os"
	"path/filepath"
	"testing"

	domerrors "github.com/domify-dev/domify/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"name":"demo"}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Name != "demo" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Server.Host != DefaultHost || cfg.Server.Port != DefaultPort {
		t.Errorf("Server = %+v, want defaults", cfg.Server)
	}
	if cfg.MaxDepth != DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want default", cfg.MaxDepth)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoadNormalizesRegistryKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"registry":{"My-Widget":"Widget"}}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Registry["my-widget"] != "Widget" {
		t.Errorf("Registry = %v, want lowercase key", cfg.Registry)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		content  string
		wantCode string
	}{
		{"malformed json", `{"name":`, "C002"},
		{"empty component name", `{"registry":{"x":" "}}`, "C003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, dir, tt.content)
			_, err := Load(path)
			de, ok := err.(*domerrors.DomifyError)
			if !ok || de.Code != tt.wantCode {
				t.Errorf("Load() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope", ConfigFileName))
		de, ok := err.(*domerrors.DomifyError)
		if !ok || de.Code != "C001" {
			t.Errorf("Load() error = %v, want code C001", err)
		}
	})
}

func TestFindWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"name":"above"}`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Find(nested)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if cfg.Name != "above" {
		t.Errorf("Name = %q, want config from ancestor", cfg.Name)
	}
}

func TestFindFallsBackToDefaults(t *testing.T) {
	cfg, err := Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if cfg.Path() != "" || cfg.Server.Port != DefaultPort {
		t.Errorf("Find() fallback = %+v", cfg)
	}
}

func TestEffectiveMaxDepth(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{DefaultMaxDepth, DefaultMaxDepth},
		{-1, 0},
		{7, 7},
	}

	for _, tt := range tests {
		cfg := &Config{MaxDepth: tt.in}
		if got := cfg.EffectiveMaxDepth(); got != tt.want {
			t.Errorf("EffectiveMaxDepth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
