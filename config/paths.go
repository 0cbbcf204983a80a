package config

import (
	"fmt"
	"path/filepath"

	"github.com/cocoonstack/hvconf/arch"
	"github.com/cocoonstack/hvconf/utils"
)

// EnsureDirs creates all directories the generator needs.
func (c *Config) EnsureDirs() error {
	return utils.EnsureDirs(
		c.OutputDir,
		c.FragmentDir,
		c.RunDir,
	)
}

// ConfigPath returns the output path of the generated runtime
// configuration for the given architecture.
func (c *Config) ConfigPath(a arch.Architecture) string {
	return filepath.Join(c.OutputDir, fmt.Sprintf("configuration-%s.toml", a))
}

// Manifest store paths (under RunDir).

// ManifestFile is the generation manifest index path.
func (c *Config) ManifestFile() string { return filepath.Join(c.RunDir, "manifest.json") }

// GenerateLock guards the manifest and the output directory: only one
// generator runs at a time.
func (c *Config) GenerateLock() string { return filepath.Join(c.RunDir, "generate.lock") }
