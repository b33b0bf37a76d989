package segy

// Fixed region sizes from the SEG-Y rev 1 standard.
const (
	TextHeaderLen  = 3200
	BinHeaderLen   = 400
	TraceHeaderLen = 240
)

// Byte offsets of the consumed binary file header fields (0-based within the
// 400-byte header; the standard numbers them 3213+, 1-based from file start).
const (
	binSamplesPerTrace = 20  // uint16, default trace length
	binFormatCode      = 24  // uint16, data sample format
	binExtHeaderCount  = 304 // int16, number of extended textual headers
)

// Byte offset of the per-trace sample count in the 240-byte trace header.
// When nonzero it overrides the binary-header default.
const trcNumSamples = 114

// Data sample format codes.
const (
	FormatIBMFloat  = 1
	FormatInt32     = 2
	FormatInt16     = 3
	FormatIEEEFloat = 5
	FormatInt8      = 8
)

// sampleSize returns the encoded byte width of one sample, or 0 for formats
// the codec does not support.
func sampleSize(format int) int {
	switch format {
	case FormatIBMFloat, FormatInt32, FormatIEEEFloat:
		return 4
	case FormatInt16:
		return 2
	case FormatInt8:
		return 1
	default:
		return 0
	}
}

// isInteger reports whether the format stores samples as integers.
func isInteger(format int) bool {
	return format == FormatInt32 || format == FormatInt16 || format == FormatInt8
}

// Codec reads and writes SEG-Y files. The zero value is ready to use.
type Codec struct{}

// NewCodec creates a SEG-Y codec.
func NewCodec() *Codec {
	return &Codec{}
}
