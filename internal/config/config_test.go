package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate(): %v", err)
	}
}

func TestPathEnvOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom.toml")
	t.Setenv(EnvConfig, p)
	if got := Path(); got != p {
		t.Fatalf("expected %s got %s", p, got)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.UI.HighContrast = true
	cfg.Export.Format = "yaml"
	if err := Save(cfg, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.UI.HighContrast || got.Export.Format != "yaml" || !got.UI.ShowControl {
		t.Fatalf("unexpected config after round trip: %+v", got)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(p, []byte("[ui]\nshow_scores = true\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.UI.ShowScores || cfg.Export.Format != "sqlite" || cfg.Log.Level != "warn" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"format": "[export]\nformat = \"xml\"\n",
		"level":  "[log]\nlevel = \"loud\"\n",
		"syntax": "[ui\n",
	}
	for name, body := range cases {
		p := filepath.Join(t.TempDir(), name+".toml")
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := Load(p); err == nil {
			t.Fatalf("%s: expected Load to fail", name)
		}
	}
}

func TestLoadWithPriority(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.toml")
	t.Setenv(EnvConfig, missing)

	cfg, used, err := LoadWithPriority("")
	if err != nil || used != "" {
		t.Fatalf("missing default should give defaults, got used=%q err=%v", used, err)
	}
	if cfg.Export.Format != "sqlite" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if _, err := os.Stat(missing); err == nil {
		t.Fatalf("loading must not create the default file")
	}

	broken := filepath.Join(dir, "broken.toml")
	_ = os.WriteFile(broken, []byte("not toml ["), 0o644)
	if _, _, err := LoadWithPriority(broken); err == nil {
		t.Fatalf("expected error for broken custom config")
	}

	t.Setenv(EnvConfig, broken)
	if _, used, err := LoadWithPriority(""); err != nil || used != "" {
		t.Fatalf("broken default config should fall back to defaults, got used=%q err=%v", used, err)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"[ui]", "show_control = true", "[export]", "format = \"sqlite\""} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in encoded config:\n%s", want, out)
		}
	}
}
