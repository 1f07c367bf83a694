package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Style != "digital" {
		t.Errorf("Style = %v, want digital", cfg.Style)
	}
	if cfg.Font != "block" {
		t.Errorf("Font = %v, want block", cfg.Font)
	}
	if cfg.ExtendedGlyphs {
		t.Error("ExtendedGlyphs should default to false")
	}
	if !cfg.FirstRun {
		t.Error("FirstRun should default to true")
	}
	if !cfg.Notifications.Enabled {
		t.Error("Notifications should default to enabled")
	}
	if cfg.Storage.DataDir != "~/.tock" {
		t.Errorf("DataDir = %v, want ~/.tock", cfg.Storage.DataDir)
	}
}

func TestGetConfigPath(t *testing.T) {
	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if !strings.HasSuffix(path, "config.toml") {
		t.Errorf("GetConfigPath() = %v, want a config.toml path", path)
	}
	if !strings.Contains(path, ".tock") {
		t.Errorf("GetConfigPath() = %v, want a .tock directory", path)
	}
}

func TestGetDBPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.DataDir = "/tmp/tock-test"

	if got := GetDBPath(cfg); got != "/tmp/tock-test/tock.db" {
		t.Errorf("GetDBPath() = %v, want /tmp/tock-test/tock.db", got)
	}
}
