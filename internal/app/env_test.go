package app

import (
	"os"
	"path/filepath"
	"testing"
)

// LoadEnvFiles reads KEY=VALUE pairs into the process environment.
func TestLoadEnvFiles_LoadsKeyValues(t *testing.T) {
	t.Setenv("FOO", "")
	t.Setenv("BAR", "")

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env.test")
	content := "\n# sample dotenv file\nFOO=alpha\nBAR=\"beta\"\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	if err := LoadEnvFiles(envPath); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}

	if got := os.Getenv("FOO"); got != "alpha" {
		t.Fatalf("FOO=%q, want alpha", got)
	}
	if got := os.Getenv("BAR"); got != "beta" {
		t.Fatalf("BAR=%q, want beta", got)
	}
}

// Later files override earlier ones when loading multiple dotenv files.
func TestLoadEnvFiles_OverrideOrder(t *testing.T) {
	t.Setenv("K", "")
	dir := t.TempDir()
	a := filepath.Join(dir, ".env.a")
	b := filepath.Join(dir, ".env.b")
	if err := os.WriteFile(a, []byte("K=first\n"), 0o600); err != nil {
		t.Fatalf("write a: %v", err)
	}
	if err := os.WriteFile(b, []byte("K=second\n"), 0o600); err != nil {
		t.Fatalf("write b: %v", err)
	}

	if err := LoadEnvFiles(a, b); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}
	if got := os.Getenv("K"); got != "second" {
		t.Fatalf("override order failed: got %q, want second", got)
	}
}

func TestLoadEnvFiles_SkipsMissing(t *testing.T) {
	if err := LoadEnvFiles("", filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing files should be skipped, got %v", err)
	}
}

func TestApplyEnvToConfig_FillsUnsetOnly(t *testing.T) {
	t.Setenv("GHOSTWRITER_LINK_BASE", "https://env.example")
	t.Setenv("GHOSTWRITER_UL_MARKER", "*")
	t.Setenv("GHOSTWRITER_MAX_DEPTH", "64")
	t.Setenv("GHOSTWRITER_VERBOSE", "yes")

	cfg := Config{ULMarker: "+"}
	ApplyEnvToConfig(&cfg)
	if cfg.LinkBase != "https://env.example" {
		t.Fatalf("LinkBase=%q, want value from env", cfg.LinkBase)
	}
	if cfg.ULMarker != "+" {
		t.Fatalf("ULMarker=%q, explicit value must win over env", cfg.ULMarker)
	}
	if cfg.MaxDepth != 64 {
		t.Fatalf("MaxDepth=%d, want 64", cfg.MaxDepth)
	}
	if !cfg.Verbose {
		t.Fatalf("GHOSTWRITER_VERBOSE=yes should enable verbose")
	}
}

func TestApplyEnvOverrides_ReplacesValues(t *testing.T) {
	t.Setenv("GHOSTWRITER_FORMAT", "pdf")
	t.Setenv("GHOSTWRITER_OL_MARKER", "a")
	t.Setenv("GHOSTWRITER_MAX_DEPTH", "not-a-number")
	t.Setenv("GHOSTWRITER_VERBOSE", "off")

	cfg := Config{Format: FormatText, OLMarker: "1", MaxDepth: 10, Verbose: true, TableRow: "="}
	ApplyEnvOverrides(&cfg)
	if cfg.Format != FormatPDF || cfg.OLMarker != "a" {
		t.Fatalf("env should override file values, got format=%q olMarker=%q", cfg.Format, cfg.OLMarker)
	}
	if cfg.MaxDepth != 10 {
		t.Fatalf("invalid GHOSTWRITER_MAX_DEPTH must be ignored, got %d", cfg.MaxDepth)
	}
	if cfg.Verbose {
		t.Fatalf("GHOSTWRITER_VERBOSE=off should disable verbose")
	}
	if cfg.TableRow != "=" {
		t.Fatalf("unset env must keep TableRow, got %q", cfg.TableRow)
	}
}
