package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load reads configuration from path (if it exists), environment variables
// prefixed VIMCORE_, and falls back to Defaults() for anything unset.
// A missing file is not an error — the core must run with no host
// configuration at all.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("VIMCORE")
	v.AutomaticEnv()

	defaults := Defaults()
	v.SetDefault("undo_stack_limit", defaults.UndoStackLimit)
	v.SetDefault("default_mode", defaults.DefaultMode)
	v.SetDefault("word_boundary_punctuation_is_word", defaults.WordBoundaryPunctuationIsWord)
	v.SetDefault("debug", defaults.Debug)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns the conventional config file location for a host
// binary, honoring $XDG_CONFIG_HOME.
func DefaultPath(appName string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, "config.yaml")
}
