package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.User != "default" || cfg.General.DefaultDays != 7 {
		t.Fatalf("defaults wrong: %+v", cfg.General)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("theme = %q", cfg.Appearance.Theme)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.User = "alex"
	cfg.General.DefaultDays = 14
	cfg.OpenAI.Model = "gpt-4o-mini"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip: got %+v, want %+v", got, cfg)
	}
}

func TestDBPath_OverrideAndDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg := DefaultConfig()
	if got, want := DBPath(cfg), filepath.Join(dir, "calring", "calring.db"); got != want {
		t.Fatalf("DBPath = %q, want %q", got, want)
	}

	cfg.General.DBPath = "/tmp/elsewhere.db"
	if got := DBPath(cfg); got != "/tmp/elsewhere.db" {
		t.Fatalf("DBPath override = %q", got)
	}
}

func TestGetAPIKey_EnvWinsOverConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpenAI.APIKey = "from-config"

	t.Setenv("OPENAI_API_KEY", "")
	_ = os.Unsetenv("OPENAI_API_KEY")
	if got := GetAPIKey(cfg); got != "from-config" {
		t.Fatalf("GetAPIKey = %q, want config value", got)
	}

	t.Setenv("OPENAI_API_KEY", "from-env")
	if got := GetAPIKey(cfg); got != "from-env" {
		t.Fatalf("GetAPIKey = %q, want env value", got)
	}
}
