package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("default theme = %q", cfg.Appearance.Theme)
	}
	if cfg.Appearance.Currency != "₽" {
		t.Errorf("default currency = %q", cfg.Appearance.Currency)
	}
	if Exists() {
		t.Error("Exists() true with no config file")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Appearance.Theme = "tokyo-night"
	cfg.General.DBPath = "/tmp/custom.db"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Appearance.Theme != "tokyo-night" {
		t.Errorf("theme = %q", got.Appearance.Theme)
	}
	if got.General.DBPath != "/tmp/custom.db" {
		t.Errorf("db_path = %q", got.General.DBPath)
	}
}

func TestDBPathResolution(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataDir)

	cfg := DefaultConfig()
	want := filepath.Join(dataDir, "fincal", "fincal.db")
	if got := DBPath(cfg); got != want {
		t.Errorf("DBPath = %q, want %q", got, want)
	}

	cfg.General.DBPath = "/elsewhere/fincal.db"
	if got := DBPath(cfg); got != "/elsewhere/fincal.db" {
		t.Errorf("explicit DBPath = %q", got)
	}
}
