package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MaxExamples != 100 || cfg.MaxShrinks != 200 {
		t.Fatalf("Default() = %+v, want {MaxExamples:100 MaxShrinks:200 ...}", cfg)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conjecture.yaml")
	if err := os.WriteFile(path, []byte("max_examples: 5\nseed: 99\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxExamples != 5 {
		t.Fatalf("MaxExamples = %d, want 5", cfg.MaxExamples)
	}
	if cfg.Seed != 99 {
		t.Fatalf("Seed = %d, want 99", cfg.Seed)
	}
	if cfg.MaxShrinks != 200 {
		t.Fatalf("MaxShrinks = %d, want the default 200 (file did not override it)", cfg.MaxShrinks)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Load(missing file) = nil error, want an error")
	}
}

func TestFromEnvOverridesDefaults(t *testing.T) {
	t.Setenv("CONJECTURE_MAX_EXAMPLES", "7")
	t.Setenv("CONJECTURE_VERBOSE", "true")

	cfg, err := FromEnv("conjecture")
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.MaxExamples != 7 {
		t.Fatalf("MaxExamples = %d, want 7", cfg.MaxExamples)
	}
	if !cfg.Verbose {
		t.Fatalf("Verbose = false, want true")
	}
	if cfg.MaxShrinks != 200 {
		t.Fatalf("MaxShrinks = %d, want the untouched default 200", cfg.MaxShrinks)
	}
}

func TestFromEnvNoVariablesSetReturnsDefaults(t *testing.T) {
	cfg, err := FromEnv("conjecture_unused_prefix")
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("FromEnv with nothing set = %+v, want Default()", cfg)
	}
}
