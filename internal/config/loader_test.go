package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg Render
	if err := yaml.Unmarshal(defaultRenderYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg.Spiral.Seeds != Default().Spiral.Seeds {
		t.Errorf("embedded seeds = %d, expected %d", cfg.Spiral.Seeds, Default().Spiral.Seeds)
	}
	if cfg.Rects.Depth != Default().Rects.Depth {
		t.Errorf("embedded depth = %d, expected %d", cfg.Rects.Depth, Default().Rects.Depth)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	body := "spiral:\n  seeds: 42\n  spacing: 2.5\n  glyphs: \"*\"\nrects:\n  depth: 3\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Spiral.Seeds != 42 {
		t.Errorf("seeds = %d, expected 42", cfg.Spiral.Seeds)
	}
	if cfg.Spiral.Spacing != 2.5 {
		t.Errorf("spacing = %v, expected 2.5", cfg.Spiral.Spacing)
	}
	if cfg.Rects.Depth != 3 {
		t.Errorf("depth = %d, expected 3", cfg.Rects.Depth)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() with missing explicit path should fail")
	}
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("spiral: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestNormalize(t *testing.T) {
	cfg := Render{}.Normalize()

	if cfg.Spiral.Seeds <= 0 {
		t.Error("Normalize() left seeds non-positive")
	}
	if cfg.Spiral.Spacing <= 0 {
		t.Error("Normalize() left spacing non-positive")
	}
	if cfg.Spiral.Glyphs == "" {
		t.Error("Normalize() left glyphs empty")
	}
	if cfg.Rects.Depth <= 0 {
		t.Error("Normalize() left depth non-positive")
	}

	// Valid values pass through untouched.
	custom := Render{
		Spiral: Spiral{Seeds: 7, Spacing: 0.5, Glyphs: "#"},
		Rects:  Rects{Depth: 2},
	}
	if got := custom.Normalize(); got != custom {
		t.Errorf("Normalize() altered a valid config: %+v", got)
	}
}
