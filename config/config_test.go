package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cocoonstack/hvconf/arch"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.OutputDir == "" || c.FragmentDir == "" || c.RunDir == "" {
		t.Errorf("defaults incomplete: %+v", c)
	}
	if c.Log.Level != "info" {
		t.Errorf("log level = %q", c.Log.Level)
	}
}

func TestConfigPath_PerArch(t *testing.T) {
	c := DefaultConfig()
	c.OutputDir = "/tmp/out"
	got := c.ConfigPath(arch.AMD64)
	want := filepath.Join("/tmp/out", "configuration-amd64.toml")
	if got != want {
		t.Errorf("ConfigPath = %q, want %q", got, want)
	}
}

func TestEnsureDirs(t *testing.T) {
	base := t.TempDir()
	c := &Config{
		OutputDir:   filepath.Join(base, "out"),
		FragmentDir: filepath.Join(base, "conf.d"),
		RunDir:      filepath.Join(base, "run"),
	}
	if err := c.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs: %v", err)
	}
	for _, p := range []string{c.OutputDir, c.FragmentDir, c.RunDir} {
		if info, err := os.Stat(p); err != nil || !info.IsDir() {
			t.Errorf("%s missing: %v", p, err)
		}
	}
}

func TestManifestPaths_UnderRunDir(t *testing.T) {
	c := DefaultConfig()
	c.RunDir = "/run/hvconf"
	if c.ManifestFile() != "/run/hvconf/manifest.json" {
		t.Errorf("ManifestFile = %q", c.ManifestFile())
	}
	if c.GenerateLock() != "/run/hvconf/generate.lock" {
		t.Errorf("GenerateLock = %q", c.GenerateLock())
	}
}
