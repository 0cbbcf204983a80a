package config

import (
	coretypes "github.com/projecteru2/core/types"
)

// Config holds global hvconf configuration.
type Config struct {
	// OutputDir is where generated runtime configuration files land.
	// Env: HVCONF_OUTPUT_DIR. Default: /etc/hvconf.
	OutputDir string `json:"output_dir" mapstructure:"output_dir"`
	// FragmentDir holds drop-in override fragments (*.toml), merged on
	// top of the built-in architecture defaults in lexical filename
	// order. Env: HVCONF_FRAGMENT_DIR. Default: /etc/hvconf/conf.d.
	FragmentDir string `json:"fragment_dir" mapstructure:"fragment_dir"`
	// RunDir is the base directory for runtime state (lock files,
	// generation manifest). Env: HVCONF_RUN_DIR.
	// Default: /var/lib/hvconf.
	RunDir string `json:"run_dir" mapstructure:"run_dir"`
	// Log configuration, uses eru core's ServerLogConfig.
	Log coretypes.ServerLogConfig `json:"log" mapstructure:"log"`
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:   "/etc/hvconf",
		FragmentDir: "/etc/hvconf/conf.d",
		RunDir:      "/var/lib/hvconf",
		Log: coretypes.ServerLogConfig{
			Level: "info",
		},
	}
}
