package cliconfig

import "os"

// ApplyEnvConfig applies SGYNORM_* environment variables to the Config.
// Environment values override file config but are overridden by flags
// (tracked via the changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv("SGYNORM_INPUT_FOLDER"), &cfg.InputDir)
	s.setString("output", os.Getenv("SGYNORM_OUTPUT_FOLDER"), &cfg.OutputDir)
	s.setString("extension", os.Getenv("SGYNORM_EXTENSION"), &cfg.Extension)
	s.setString("on-error", os.Getenv("SGYNORM_ON_ERROR"), &cfg.OnError)
	s.setString("zero-max", os.Getenv("SGYNORM_ZERO_MAX"), &cfg.ZeroMax)
	s.setString("log-level", os.Getenv("SGYNORM_LOG_LEVEL"), &cfg.LogLevel)

	s.setBoolFromString("report", os.Getenv("SGYNORM_REPORT"), &cfg.Report)
	s.setBoolFromString("watch", os.Getenv("SGYNORM_WATCH"), &cfg.Watch)
}
