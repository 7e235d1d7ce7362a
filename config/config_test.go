package config

import (
	"os"
	"path/filepath"
	"testing"
)

// fakeFS resolves only explicitly registered paths.
type fakeFS struct {
	files map[string]bool
}

func (f *fakeFS) Exists(path string) bool { return f.files[path] }
func (f *fakeFS) LoadEnv(path string) error {
	return nil
}

func TestEngineDefaults(t *testing.T) {
	var cfg Engine
	cfg.ApplyDefaults()
	if cfg.Workers != 1 {
		t.Errorf("workers default = %d, want 1", cfg.Workers)
	}
	if cfg.HistogramBins != 64 {
		t.Errorf("histogram_bins default = %d, want 64", cfg.HistogramBins)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging.level default = %q", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestEngineValidate(t *testing.T) {
	cfg := Engine{Workers: 0, HistogramBins: 64}
	cfg.Logging.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Error("workers=0 should be rejected")
	}
	cfg = Engine{Workers: 2, HistogramBins: -1}
	cfg.Logging.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Error("negative bins should be rejected")
	}
}

func TestLoadMissingFilesFallsBackToDefaults(t *testing.T) {
	var cfg Engine
	err := Load("dframe", &cfg, WithFileSystem(&fakeFS{files: map[string]bool{}}))
	if err != nil {
		t.Fatalf("Load with no files: %v", err)
	}
	cfg.ApplyDefaults()
	if cfg.Workers != 1 {
		t.Errorf("workers = %d, want default 1", cfg.Workers)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DFRAME_WORKERS", "8")
	t.Setenv("DFRAME_LOGGING_LEVEL", "debug")

	var cfg Engine
	err := Load("dframe", &cfg, WithFileSystem(&fakeFS{files: map[string]bool{}}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 8 {
		t.Errorf("workers = %d, want 8 from env", cfg.Workers)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug from env", cfg.Logging.Level)
	}
}

func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	data := []byte("workers: 3\nhistogram_bins: 32\nlogging:\n  level: warn\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	var cfg Engine
	err := Load("dframe", &cfg, WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 3 || cfg.HistogramBins != 32 {
		t.Errorf("unexpected engine config: %+v", cfg)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("logging.level = %q, want warn", cfg.Logging.Level)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("workers: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DFRAME_WORKERS", "5")

	var cfg Engine
	if err := Load("dframe", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 5 {
		t.Errorf("workers = %d, env should win over file", cfg.Workers)
	}
}
