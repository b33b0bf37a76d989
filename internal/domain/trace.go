package domain

import "math"

// Trace is one ordered sequence of amplitude samples recorded along a single
// sensor path, together with its opaque structural header.
type Trace struct {
	// Header is the raw trace header, preserved verbatim through scaling.
	Header []byte

	// Samples is the decoded amplitude payload.
	Samples []float32
}

// MaxAbs returns the largest absolute sample value in the trace.
// An empty trace yields 0.
func (t Trace) MaxAbs() float64 {
	var max float64
	for _, s := range t.Samples {
		if a := math.Abs(float64(s)); a > max {
			max = a
		}
	}
	return max
}

// Scale divides every sample in place by the given divisor.
// The divisor must be nonzero; callers enforce the degenerate-corpus policy
// before scaling begins.
func (t Trace) Scale(divisor float64) {
	for i, s := range t.Samples {
		t.Samples[i] = float32(float64(s) / divisor)
	}
}

// TraceFile is a decoded trace file: the opaque structural headers owned by
// the codec plus the ordered traces. Everything except Trace.Samples passes
// through scaling unchanged.
type TraceFile struct {
	// TextHeader is the raw textual file header.
	TextHeader []byte

	// BinHeader is the raw binary file header.
	BinHeader []byte

	// ExtHeaders are the raw extended textual headers, in file order.
	ExtHeaders [][]byte

	// Format is the codec-specific sample format code the file was read with.
	Format int

	// Traces are the decoded traces in file order.
	Traces []Trace
}

// MaxAbs returns the largest absolute sample value across all traces.
func (f *TraceFile) MaxAbs() float64 {
	var max float64
	for _, tr := range f.Traces {
		if m := tr.MaxAbs(); m > max {
			max = m
		}
	}
	return max
}

// Scale divides every sample of every trace in place by the given divisor.
func (f *TraceFile) Scale(divisor float64) {
	for _, tr := range f.Traces {
		tr.Scale(divisor)
	}
}

// FileSet is the ordered sequence of relative file paths discovered under the
// input root. Insertion order is discovery order; the scan and scale passes
// both iterate it in this order.
type FileSet []string
