package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfig(t, `
input_folder = "/surveys/raw"
output_folder = "/surveys/normalized"
extension = ".segy"
on_error = "skip"
zero_max = "copy"
report = false
watch = true
log_level = "debug"
`)

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}
	if fc.InputFolder != "/surveys/raw" {
		t.Errorf("input_folder = %q", fc.InputFolder)
	}
	if fc.OutputFolder != "/surveys/normalized" {
		t.Errorf("output_folder = %q", fc.OutputFolder)
	}
	if fc.OnError != "skip" || fc.ZeroMax != "copy" {
		t.Errorf("policies = %q/%q", fc.OnError, fc.ZeroMax)
	}
	if fc.Report == nil || *fc.Report {
		t.Error("report should be explicit false")
	}
	if fc.Watch == nil || !*fc.Watch {
		t.Error("watch should be explicit true")
	}
}

func TestLoadFileConfigBadTOML(t *testing.T) {
	path := writeConfig(t, "input_folder = [broken")
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyFileConfig(t *testing.T) {
	boolp := func(b bool) *bool { return &b }

	tests := []struct {
		name     string
		fc       FileConfig
		changed  map[string]bool
		initial  Config
		expected Config
	}{
		{
			name: "applies all fields",
			fc: FileConfig{
				InputFolder:  "/in",
				OutputFolder: "/out",
				OnError:      "skip",
				Watch:        boolp(true),
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: func() Config {
				c := DefaultConfig()
				c.InputDir = "/in"
				c.OutputDir = "/out"
				c.OnError = "skip"
				c.Watch = true
				return c
			}(),
		},
		{
			name: "respects changed flags",
			fc: FileConfig{
				InputFolder: "/file/in",
				Report:      boolp(false),
			},
			changed: map[string]bool{"input": true, "report": true},
			initial: func() Config {
				c := DefaultConfig()
				c.InputDir = "/flag/in"
				return c
			}(),
			expected: func() Config {
				c := DefaultConfig()
				c.InputDir = "/flag/in"
				return c
			}(),
		},
		{
			name:     "empty file changes nothing",
			fc:       FileConfig{},
			changed:  map[string]bool{},
			initial:  DefaultConfig(),
			expected: DefaultConfig(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			ApplyFileConfig(&cfg, tt.fc, tt.changed)
			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}
