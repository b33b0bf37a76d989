package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/seiskit/sgynorm/internal/domain"
	"github.com/seiskit/sgynorm/internal/ports"
	"github.com/seiskit/sgynorm/pkg/log"
)

// ErrorPolicy controls what happens when a discovered file cannot be parsed.
type ErrorPolicy int

const (
	// ErrorAbort terminates the run on the first unreadable file.
	ErrorAbort ErrorPolicy = iota

	// ErrorSkip excludes the file from both the maximum computation and the
	// output set, then continues. A file is never in one but not the other.
	ErrorSkip
)

// ZeroMaxPolicy controls what happens when the corpus global maximum is zero.
type ZeroMaxPolicy int

const (
	// ZeroMaxFail surfaces domain.ErrDegenerateCorpus before any scaling.
	ZeroMaxFail ZeroMaxPolicy = iota

	// ZeroMaxCopy writes every file unscaled.
	ZeroMaxCopy
)

// NormalizerConfig contains configuration for one normalization run.
type NormalizerConfig struct {
	InputDir  string
	OutputDir string
	Extension string
	OnError   ErrorPolicy
	ZeroMax   ZeroMaxPolicy
}

// Normalizer runs the two-pass global-maximum normalization: a scan pass that
// folds max(|sample|) over every trace of every discovered file, then a scale
// pass that divides every sample by that maximum and mirrors the input tree
// under the output root. Strictly sequential; the scan pass completes over the
// whole file set before any file is scaled.
type Normalizer struct {
	config  NormalizerConfig
	codec   ports.TraceCodec
	reports ports.ReportRepository
	logger  ports.Logger
}

// NewNormalizer creates a normalizer with the given dependencies.
// reports may be nil to disable the run report.
func NewNormalizer(config NormalizerConfig, codec ports.TraceCodec, reports ports.ReportRepository, logger ports.Logger) *Normalizer {
	return &Normalizer{
		config:  config,
		codec:   codec,
		reports: reports,
		logger:  logger,
	}
}

// Run executes discovery, the scan pass, and the scale pass, in that order.
// Returns the run report on success. All errors are terminal for the run; the
// message names the failing file and the phase it failed in.
func (n *Normalizer) Run(ctx context.Context) (domain.Report, error) {
	started := time.Now().UTC()

	files, err := Discover(n.config.InputDir, n.config.Extension)
	if err != nil {
		return domain.Report{}, err
	}
	n.logger.Info("discovered files",
		log.Int("count", len(files)),
		log.String("input", n.config.InputDir))
	if len(files) == 0 {
		return domain.Report{StartedAt: started, FinishedAt: time.Now().UTC()}, nil
	}

	globalMax, kept, skipped, err := n.scanMax(ctx, files)
	if err != nil {
		return domain.Report{}, err
	}
	n.logger.Info("global maximum amplitude",
		log.Float64("global_max", globalMax),
		log.Int("files", len(kept)),
		log.Int("skipped", len(skipped)))

	copyOnly := false
	if globalMax == 0 {
		if n.config.ZeroMax == ZeroMaxFail {
			return domain.Report{}, fmt.Errorf("scan: %w", domain.ErrDegenerateCorpus)
		}
		n.logger.Warn("corpus global maximum is zero, copying files unscaled")
		copyOnly = true
	}

	if err := n.scale(ctx, kept, globalMax, copyOnly); err != nil {
		return domain.Report{}, err
	}

	report := domain.Report{
		GlobalMax:  globalMax,
		Files:      len(kept),
		Skipped:    skipped,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
	}
	if n.reports != nil {
		if err := n.reports.Save(ctx, report); err != nil {
			return domain.Report{}, fmt.Errorf("write report %s: %w", n.reports.Path(), err)
		}
		n.logger.Debug("run report written", log.String("path", n.reports.Path()))
	}
	n.logger.Info("scaling complete", log.Int("files", len(kept)))
	return report, nil
}

// scanMax reads every file once and folds the maximum absolute sample value.
// It returns the files that remain in the run (all of them under the abort
// policy) and the relative paths it skipped.
func (n *Normalizer) scanMax(ctx context.Context, files domain.FileSet) (float64, domain.FileSet, []string, error) {
	var max float64
	kept := make(domain.FileSet, 0, len(files))
	var skipped []string

	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return 0, nil, nil, fmt.Errorf("scan %s: %w", rel, err)
		}
		tf, err := n.codec.ReadFile(filepath.Join(n.config.InputDir, rel))
		if err != nil {
			if n.config.OnError == ErrorSkip && errors.Is(err, domain.ErrBadTraceFile) {
				n.logger.Warn("skipping unreadable file", log.String("file", rel), log.Err(err))
				skipped = append(skipped, rel)
				continue
			}
			return 0, nil, nil, fmt.Errorf("scan %s: %w", rel, err)
		}
		if m := tf.MaxAbs(); m > max {
			max = m
		}
		n.logger.Debug("scanned", log.String("file", rel), log.Int("traces", len(tf.Traces)))
		kept = append(kept, rel)
	}
	return max, kept, skipped, nil
}

// scale re-reads every kept file, divides each sample by divisor (unless
// copyOnly), and writes the result to the mirrored path under the output
// root, creating intermediate directories as needed.
func (n *Normalizer) scale(ctx context.Context, files domain.FileSet, divisor float64, copyOnly bool) error {
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("scale %s: %w", rel, err)
		}
		tf, err := n.codec.ReadFile(filepath.Join(n.config.InputDir, rel))
		if err != nil {
			return fmt.Errorf("scale %s: %w", rel, err)
		}
		if !copyOnly {
			tf.Scale(divisor)
		}

		outPath := filepath.Join(n.config.OutputDir, rel)
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return fmt.Errorf("scale %s: %w", rel, err)
		}
		if err := n.codec.WriteFile(outPath, tf); err != nil {
			return fmt.Errorf("scale %s: %w", rel, err)
		}
		n.logger.Debug("scaled", log.String("file", rel))
	}
	return nil
}
