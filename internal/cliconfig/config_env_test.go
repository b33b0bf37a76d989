package cliconfig

import "testing"

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"SGYNORM_INPUT_FOLDER":  "/env/in",
				"SGYNORM_OUTPUT_FOLDER": "/env/out",
				"SGYNORM_ON_ERROR":      "skip",
				"SGYNORM_WATCH":         "true",
				"SGYNORM_REPORT":        "0",
			},
			changed: map[string]bool{},
			initial: Config{Report: true},
			expected: Config{
				InputDir:  "/env/in",
				OutputDir: "/env/out",
				OnError:   "skip",
				Watch:     true,
				Report:    false,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"SGYNORM_INPUT_FOLDER": "/env/in",
			},
			changed:  map[string]bool{"input": true},
			initial:  Config{InputDir: "/flag/in"},
			expected: Config{InputDir: "/flag/in"},
		},
		{
			name:     "no env vars changes nothing",
			envVars:  map[string]string{},
			changed:  map[string]bool{},
			initial:  Config{InputDir: "/in"},
			expected: Config{InputDir: "/in"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			cfg := tt.initial
			ApplyEnvConfig(&cfg, tt.changed)
			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}
