package sgynorm

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/seiskit/sgynorm/internal/domain"
)

// ErrorPolicy controls handling of files that cannot be parsed.
type ErrorPolicy int

const (
	// ErrorAbort terminates the run on the first unreadable file.
	ErrorAbort ErrorPolicy = iota

	// ErrorSkip excludes unreadable files from both the maximum computation
	// and the output set, then continues.
	ErrorSkip
)

// ZeroMaxPolicy controls handling of an all-zero corpus.
type ZeroMaxPolicy int

const (
	// ZeroMaxFail surfaces ErrDegenerateCorpus before any scaling.
	ZeroMaxFail ZeroMaxPolicy = iota

	// ZeroMaxCopy writes every file unscaled.
	ZeroMaxCopy
)

// Config holds the configuration for a normalization runner.
// Use SetDefaults to fill optional fields.
type Config struct {
	// InputDir is the root scanned recursively for trace files. Required.
	InputDir string

	// OutputDir is the root the mirrored tree is written under. Required.
	OutputDir string

	// Extension is the file extension matched during discovery,
	// case-insensitive. Defaults to ".sgy".
	Extension string

	// OnError selects the unreadable-file policy. Defaults to ErrorAbort.
	OnError ErrorPolicy

	// ZeroMax selects the all-zero-corpus policy. Defaults to ZeroMaxFail.
	ZeroMax ZeroMaxPolicy

	// Report enables writing norm-report.json under the output root after a
	// successful run.
	Report bool
}

// SetDefaults fills unset optional fields with default values.
func (c *Config) SetDefaults() {
	if c.Extension == "" {
		c.Extension = ".sgy"
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
}

// Validate checks the configuration. Returned errors wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("%w: input dir is required", domain.ErrInvalidConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output dir is required", domain.ErrInvalidConfig)
	}
	if filepath.Clean(c.InputDir) == filepath.Clean(c.OutputDir) {
		return fmt.Errorf("%w: input and output dirs must differ", domain.ErrInvalidConfig)
	}
	// A nested output would make the tool rediscover (and, in watch mode,
	// re-trigger on) its own writes.
	if insideTree(c.InputDir, c.OutputDir) {
		return fmt.Errorf("%w: output dir must not be inside the input dir", domain.ErrInvalidConfig)
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
