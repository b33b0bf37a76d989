package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML field names. Booleans are pointers so
// an absent key is distinguishable from an explicit false.
type FileConfig struct {
	InputFolder  string `toml:"input_folder"`
	OutputFolder string `toml:"output_folder"`
	Extension    string `toml:"extension"`
	OnError      string `toml:"on_error"`
	ZeroMax      string `toml:"zero_max"`
	Report       *bool  `toml:"report"`
	Watch        *bool  `toml:"watch"`
	LogLevel     string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.sgynorm/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".sgynorm", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("input", fc.InputFolder, &cfg.InputDir)
	s.setString("output", fc.OutputFolder, &cfg.OutputDir)
	s.setString("extension", fc.Extension, &cfg.Extension)
	s.setString("on-error", fc.OnError, &cfg.OnError)
	s.setString("zero-max", fc.ZeroMax, &cfg.ZeroMax)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setBool("report", fc.Report, &cfg.Report)
	s.setBool("watch", fc.Watch, &cfg.Watch)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
