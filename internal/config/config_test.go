package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvJSONLog, "")
	t.Setenv(EnvScale, "")

	c, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if c.LogLevel != DefaultLogLevel || c.JSONLog || c.Scale != DefaultScale {
		t.Errorf("unexpected defaults %+v", c)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvJSONLog, "1")
	t.Setenv(EnvScale, "5")

	c, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if c.LogLevel != "debug" || !c.JSONLog || c.Scale != 5 {
		t.Errorf("unexpected config %+v", c)
	}
}

func TestFromEnvBadScale(t *testing.T) {
	for _, v := range []string{"zero", "0", "17", "-2"} {
		t.Setenv(EnvScale, v)
		if _, err := FromEnv(); err == nil {
			t.Errorf("%s=%q: expected an error", EnvScale, v)
		}
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	// unset through t.Setenv so the original value is restored afterwards
	t.Setenv(EnvScale, "")
	os.Unsetenv(EnvScale)
	t.Setenv(EnvLogLevel, "")
	os.Unsetenv(EnvLogLevel)

	if err := os.WriteFile(filepath.Join(dir, ".env.local"), []byte(EnvScale+"=7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvScale+"=2\n"+EnvLogLevel+"=info\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if c.Scale != 7 {
		t.Errorf(".env.local should win, got scale %d", c.Scale)
	}
	if c.LogLevel != "info" {
		t.Errorf("expected log level from .env, got %q", c.LogLevel)
	}
}

func TestLoadEnvMissingFiles(t *testing.T) {
	if err := LoadEnv(t.TempDir()); err != nil {
		t.Errorf("missing env files should be ignored, got %v", err)
	}
}
