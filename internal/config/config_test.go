package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestCacheBase_XDGSet(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/custom/cache")
	got := cacheBase()
	want := filepath.Join("/custom/cache", "docmd")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCacheBase_HomeDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	got := cacheBase()
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home dir")
	}
	want := filepath.Join(home, ".cache", "docmd")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCacheBase_TmpFallback(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("HOME", "")
	got := cacheBase()
	if !strings.Contains(got, "docmd") {
		t.Errorf("expected docmd in path, got %q", got)
	}
}

func TestJSONCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/custom/cache")
	got := JSONCacheDir()
	want := filepath.Join("/custom/cache", "docmd", "json")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cargo.Toolchain != "nightly" {
		t.Errorf("Cargo.Toolchain = %q, want %q", cfg.Cargo.Toolchain, "nightly")
	}
	if !cfg.Build.KeepGoing {
		t.Error("Build.KeepGoing should default to true")
	}
	if cfg.Build.Parallelism != 0 {
		t.Errorf("Build.Parallelism = %d, want 0", cfg.Build.Parallelism)
	}
	if cfg.Output.Dir != "" {
		t.Errorf("Output.Dir = %q, want empty", cfg.Output.Dir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DOCMD_CARGO_TOOLCHAIN", "stable")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cargo.Toolchain != "stable" {
		t.Errorf("Cargo.Toolchain = %q, want %q", cfg.Cargo.Toolchain, "stable")
	}
}

func TestLoadConfigFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	configDir := filepath.Join(dir, "docmd")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "output = \"/tmp/corpus\"\n\n[build]\nkeep_going = false\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	// Run from an empty directory so a repo-local config file cannot
	// shadow the one under XDG_CONFIG_HOME.
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Dir != "/tmp/corpus" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "/tmp/corpus")
	}
	if cfg.Build.KeepGoing {
		t.Error("Build.KeepGoing should be false from config file")
	}
}
