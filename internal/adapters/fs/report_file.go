package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/seiskit/sgynorm/internal/domain"
)

const reportFileName = "norm-report.json"

// ReportFileRepository implements ports.ReportRepository using a JSON file
// under the output root.
type ReportFileRepository struct {
	dir string
}

// NewReportFileRepository creates a new ReportFileRepository for the given directory.
func NewReportFileRepository(dir string) *ReportFileRepository {
	return &ReportFileRepository{dir: dir}
}

// Save persists the report atomically.
// Uses atomic write (write to temp file, then rename) to prevent corruption.
func (r *ReportFileRepository) Save(ctx context.Context, report domain.Report) error {
	// Ensure directory exists
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(r.dir, reportFileName)
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	// Atomic rename
	return os.Rename(tmp, path)
}

// Path returns the full path to the report file.
func (r *ReportFileRepository) Path() string {
	return filepath.Join(r.dir, reportFileName)
}
