package ports

import (
	"github.com/seiskit/sgynorm/internal/domain"
)

// TraceReader decodes trace files. Implementations own the binary layout;
// the application core only sees headers as opaque bytes and samples as
// float32 slices.
type TraceReader interface {
	// ReadFile decodes the file at path. The returned TraceFile carries every
	// structural byte needed to re-encode the file without loss.
	// Parse failures wrap domain.ErrBadTraceFile.
	ReadFile(path string) (*domain.TraceFile, error)
}

// TraceWriter re-encodes trace files. The file handle is scoped to the call
// and released before it returns, even on error.
type TraceWriter interface {
	// WriteFile encodes f to path, creating the file (truncating if present).
	// Structural headers are written back verbatim.
	WriteFile(path string, f *domain.TraceFile) error
}

// TraceCodec combines reading and writing of one trace-file format.
type TraceCodec interface {
	TraceReader
	TraceWriter
}
