// Package segy implements reading and writing of SEG-Y rev 1 trace files.
//
// The codec decodes the sample payload into float32 slices and carries every
// structural region (textual header, binary header, extended textual headers,
// per-trace headers) as opaque bytes, so a file can be re-encoded without
// touching anything but the samples.
//
// Supported data sample formats:
//
//   - 1: 4-byte IBM floating point
//   - 2: 4-byte two's complement integer
//   - 3: 2-byte two's complement integer
//   - 5: 4-byte IEEE floating point
//   - 8: 1-byte two's complement integer
//
// Integer formats are decoded for scanning but cannot represent normalized
// fractions, so [Codec.WriteFile] re-encodes them as IEEE float and patches
// the binary-header format code. Float formats round-trip in place.
package segy
