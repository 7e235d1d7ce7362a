package logger

import (
	"testing"
)

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stderr" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Timestamp {
		t.Fatal("timestamps should default on")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Level: "debug", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	cfg.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid level accepted")
	}
	cfg = Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid format accepted")
	}
}

func TestFields(t *testing.T) {
	m := Fields("rows", 20, "workers", 4)
	if m["rows"] != 20 || m["workers"] != 4 {
		t.Fatalf("unexpected map: %v", m)
	}
	// Odd trailing value is dropped.
	m = Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Fatalf("expected 1 entry, got %v", m)
	}
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	l := Nop()
	l.Debug("quiet")
	l.Info("quiet", Fields("k", "v"))
	l.Warn("quiet")
	l.Error("quiet")
}

func TestWithHelpers(t *testing.T) {
	l := Nop().WithComponent("frame").WithFields(map[string]interface{}{"k": 1}).WithError(nil)
	if l == nil {
		t.Fatal("nil logger")
	}
}
