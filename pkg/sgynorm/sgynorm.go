package sgynorm

import (
	"context"
	"sync"

	"github.com/seiskit/sgynorm/internal/adapters/fs"
	"github.com/seiskit/sgynorm/internal/app"
	"github.com/seiskit/sgynorm/internal/domain"
	"github.com/seiskit/sgynorm/internal/ports"
	"github.com/seiskit/sgynorm/internal/segy"
)

// Result summarizes a completed run: the global maximum used as divisor,
// the number of files written, and any skipped paths.
type Result = domain.Report

// Sentinel errors returned by Run; check with errors.Is.
var (
	// ErrInputNotFound is returned when the input folder does not exist.
	ErrInputNotFound = domain.ErrInputNotFound

	// ErrBadTraceFile is returned (wrapped) when a file cannot be parsed and
	// the abort policy is in effect.
	ErrBadTraceFile = domain.ErrBadTraceFile

	// ErrDegenerateCorpus is returned when the corpus global maximum is zero
	// and the fail policy is in effect.
	ErrDegenerateCorpus = domain.ErrDegenerateCorpus

	// ErrAlreadyRunning is returned by Run while a run is in progress.
	ErrAlreadyRunning = domain.ErrAlreadyRunning

	// ErrInvalidConfig is returned by New when validation fails.
	ErrInvalidConfig = domain.ErrInvalidConfig
)

// Runner normalizes one corpus. A Runner is reusable: each Run re-discovers
// the file set and recomputes the global maximum from scratch. At most one
// run may be in progress at a time.
type Runner struct {
	config     Config
	normalizer *app.Normalizer

	mu      sync.Mutex
	running bool
}

// New creates a Runner with the given configuration.
// Returns an error wrapping ErrInvalidConfig if the configuration is invalid.
func New(cfg Config, opts ...Option) (*Runner, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var reports ports.ReportRepository
	if cfg.Report {
		reports = fs.NewReportFileRepository(cfg.OutputDir)
	}

	onError := app.ErrorAbort
	if cfg.OnError == ErrorSkip {
		onError = app.ErrorSkip
	}
	zeroMax := app.ZeroMaxFail
	if cfg.ZeroMax == ZeroMaxCopy {
		zeroMax = app.ZeroMaxCopy
	}

	normalizer := app.NewNormalizer(app.NormalizerConfig{
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,
		Extension: cfg.Extension,
		OnError:   onError,
		ZeroMax:   zeroMax,
	}, segy.NewCodec(), reports, o.logger)

	return &Runner{
		config:     cfg,
		normalizer: normalizer,
	}, nil
}

// Run executes one full normalization: discovery, the scan pass over every
// file, then the scale pass. Blocks until done or ctx is canceled. All errors
// are terminal for the run; re-run after fixing the cause.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return Result{}, ErrAlreadyRunning
	}
	r.running = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
	}()

	return r.normalizer.Run(ctx)
}

// Running reports whether a run is currently in progress.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}
