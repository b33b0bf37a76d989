package cliconfig

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Error-policy values accepted for OnError.
const (
	OnErrorAbort = "abort"
	OnErrorSkip  = "skip"
)

// Zero-maximum policy values accepted for ZeroMax.
const (
	ZeroMaxFail = "fail"
	ZeroMaxCopy = "copy"
)

// DefaultExtension is the trace-file extension matched during discovery.
const DefaultExtension = ".sgy"

// Config holds CLI configuration for sgynorm.
type Config struct {
	InputDir  string
	OutputDir string
	Extension string

	OnError string
	ZeroMax string

	Report bool
	Watch  bool

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Extension: DefaultExtension,
		OnError:   OnErrorAbort,
		ZeroMax:   ZeroMaxFail,
		Report:    true,
		LogLevel:  "info",
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input folder is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output folder is required")
	}
	if filepath.Clean(c.InputDir) == filepath.Clean(c.OutputDir) {
		return fmt.Errorf("input and output folders must differ")
	}
	// A nested output would make the tool rediscover (and, with --watch,
	// re-trigger on) its own writes.
	if insideTree(c.InputDir, c.OutputDir) {
		return fmt.Errorf("output folder must not be inside the input folder")
	}

	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}

	switch c.OnError {
	case OnErrorAbort, OnErrorSkip:
	default:
		return fmt.Errorf("on-error must be %q or %q", OnErrorAbort, OnErrorSkip)
	}
	switch c.ZeroMax {
	case ZeroMaxFail, ZeroMaxCopy:
	default:
		return fmt.Errorf("zero-max must be %q or %q", ZeroMaxFail, ZeroMaxCopy)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log-level must be one of debug, info, warn, error")
	}

	return nil
}

// insideTree reports whether path is a proper descendant of root.
func insideTree(root, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
