package segy

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/seiskit/sgynorm/internal/domain"
)

// badFile wraps a parse failure so callers can match it with
// errors.Is(err, domain.ErrBadTraceFile).
func badFile(path, msg string) error {
	return fmt.Errorf("%s: %s: %w", path, msg, domain.ErrBadTraceFile)
}

// ReadFile decodes the SEG-Y file at path. The handle is closed before
// returning. I/O errors are returned as-is; structural problems wrap
// domain.ErrBadTraceFile.
func (c *Codec) ReadFile(path string) (*domain.TraceFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)

	text := make([]byte, TextHeaderLen)
	if _, err := io.ReadFull(br, text); err != nil {
		return nil, badFile(path, "short textual header")
	}
	bin := make([]byte, BinHeaderLen)
	if _, err := io.ReadFull(br, bin); err != nil {
		return nil, badFile(path, "short binary header")
	}

	format := int(binary.BigEndian.Uint16(bin[binFormatCode:]))
	width := sampleSize(format)
	if width == 0 {
		return nil, badFile(path, fmt.Sprintf("unsupported sample format %d", format))
	}
	defaultSamples := int(binary.BigEndian.Uint16(bin[binSamplesPerTrace:]))

	extCount := int(int16(binary.BigEndian.Uint16(bin[binExtHeaderCount:])))
	if extCount < 0 {
		// -1 means a variable number terminated by a sentinel record, which
		// this codec does not handle.
		return nil, badFile(path, "variable extended textual headers")
	}
	ext := make([][]byte, 0, extCount)
	for i := 0; i < extCount; i++ {
		h := make([]byte, TextHeaderLen)
		if _, err := io.ReadFull(br, h); err != nil {
			return nil, badFile(path, "short extended textual header")
		}
		ext = append(ext, h)
	}

	var traces []domain.Trace
	for {
		hdr := make([]byte, TraceHeaderLen)
		if _, err := io.ReadFull(br, hdr); err != nil {
			if errors.Is(err, io.EOF) {
				break // clean end on a trace boundary
			}
			return nil, badFile(path, "short trace header")
		}
		ns := int(binary.BigEndian.Uint16(hdr[trcNumSamples:]))
		if ns == 0 {
			ns = defaultSamples
		}
		raw := make([]byte, ns*width)
		if _, err := io.ReadFull(br, raw); err != nil {
			return nil, badFile(path, "truncated trace payload")
		}
		traces = append(traces, domain.Trace{
			Header:  hdr,
			Samples: decodeSamples(format, raw),
		})
	}

	return &domain.TraceFile{
		TextHeader: text,
		BinHeader:  bin,
		ExtHeaders: ext,
		Format:     format,
		Traces:     traces,
	}, nil
}

// decodeSamples converts a raw big-endian payload into float32 samples.
// raw length is a multiple of the format's sample width.
func decodeSamples(format int, raw []byte) []float32 {
	width := sampleSize(format)
	out := make([]float32, len(raw)/width)
	for i := range out {
		chunk := raw[i*width:]
		switch format {
		case FormatIBMFloat:
			out[i] = ibmToFloat32(binary.BigEndian.Uint32(chunk))
		case FormatIEEEFloat:
			out[i] = math.Float32frombits(binary.BigEndian.Uint32(chunk))
		case FormatInt32:
			out[i] = float32(int32(binary.BigEndian.Uint32(chunk)))
		case FormatInt16:
			out[i] = float32(int16(binary.BigEndian.Uint16(chunk)))
		case FormatInt8:
			out[i] = float32(int8(chunk[0]))
		}
	}
	return out
}
