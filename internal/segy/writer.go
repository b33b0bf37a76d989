package segy

import (
	"bufio"
	"encoding/binary"
	"math"
	"os"

	"github.com/seiskit/sgynorm/internal/domain"
)

// WriteFile encodes tf to path, truncating any existing file. Structural
// headers are written back verbatim, except that integer-format files are
// promoted to IEEE float (normalized fractions are not representable as
// integers) with the binary-header format code patched to match.
func (c *Codec) WriteFile(path string, tf *domain.TraceFile) error {
	format := tf.Format
	bin := tf.BinHeader
	if isInteger(format) {
		format = FormatIEEEFloat
		bin = append([]byte(nil), tf.BinHeader...)
		binary.BigEndian.PutUint16(bin[binFormatCode:], uint16(format))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)

	write := func(b []byte) {
		if err == nil {
			_, err = bw.Write(b)
		}
	}
	write(tf.TextHeader)
	write(bin)
	for _, h := range tf.ExtHeaders {
		write(h)
	}
	for _, tr := range tf.Traces {
		write(tr.Header)
		write(encodeSamples(format, tr.Samples))
	}
	if err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// encodeSamples converts float32 samples into the big-endian payload for a
// float format (callers never encode integer formats).
func encodeSamples(format int, samples []float32) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		var bits uint32
		if format == FormatIBMFloat {
			bits = ibmFromFloat32(s)
		} else {
			bits = math.Float32bits(s)
		}
		binary.BigEndian.PutUint32(out[i*4:], bits)
	}
	return out
}
