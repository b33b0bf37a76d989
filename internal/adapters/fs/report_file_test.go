package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/seiskit/sgynorm/internal/domain"
)

func TestReportFileRepositorySave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	repo := NewReportFileRepository(dir)

	report := domain.Report{
		GlobalMax:  8,
		Files:      2,
		Skipped:    []string{"bad.sgy"},
		StartedAt:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2024, 5, 1, 10, 0, 3, 0, time.UTC),
	}
	if err := repo.Save(context.Background(), report); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(repo.Path())
	if err != nil {
		t.Fatal(err)
	}
	var got domain.Report
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.GlobalMax != report.GlobalMax || got.Files != report.Files {
		t.Errorf("round trip = %+v, want %+v", got, report)
	}
	if len(got.Skipped) != 1 || got.Skipped[0] != "bad.sgy" {
		t.Errorf("skipped = %v", got.Skipped)
	}

	// Overwrite must not leave a temp file behind.
	if err := repo.Save(context.Background(), report); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if _, err := os.Stat(repo.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after save")
	}
}
