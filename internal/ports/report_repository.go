package ports

import (
	"context"

	"github.com/seiskit/sgynorm/internal/domain"
)

// ReportRepository persists the summary of a completed run.
// The report is informational output for the user; it is never read back,
// so there is no Load counterpart.
type ReportRepository interface {
	// Save persists the report atomically.
	Save(ctx context.Context, report domain.Report) error

	// Path returns where the report will be written, for logging.
	Path() string
}
