// SPDX-License-Identifier: EPL-2.0

package spro

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/ik5/sprofeat/feature"
)

// floatSize is the on-disk width of one coefficient.
const floatSize = 4

// Result is a fully decoded SPro file.
type Result struct {
	Features *feature.Matrix
	Header   FixedHeader
	Text     VariableHeader
	// Warnings wrap ErrMalformedTextHeader.
	Warnings []error
}

type Decoder struct {
	Options Options
}

// Decode reads a whole SPro stream starting at offset 0. Either every part
// of the result is valid or a nil result and an error are returned. The
// caller keeps ownership of rs.
func (d Decoder) Decode(rs io.ReadSeeker) (*Result, error) {
	log := d.Options.logger()

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to start: %w", err)
	}

	text, warnings, err := locateTextHeader(rs, d.Options.maxTextHeader())
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		log.Warn("spro text header", slog.String("reason", w.Error()))
	}

	hdr, err := readFixedHeader(rs, d.Options)
	if err != nil {
		return nil, err
	}

	features, err := readFeatures(rs, hdr.FeatureSize)
	if err != nil {
		return nil, err
	}

	log.Debug("spro decoded",
		slog.Int("vectors", features.Rows()),
		slog.Int("dim", features.Cols()),
		slog.String("flags", hdr.Flags),
		slog.Float64("frame_rate", float64(hdr.FrameRate)),
	)

	return &Result{
		Features: features,
		Header:   hdr,
		Text:     parseVariableHeader(text),
		Warnings: warnings,
	}, nil
}

// readFeatures consumes the rest of rs as row-major float32 vectors of
// featureSize coefficients.
func readFeatures(rs io.ReadSeeker, featureSize int) (*feature.Matrix, error) {
	cur, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("locating payload: %w", err)
	}
	end, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("locating payload end: %w", err)
	}
	if _, err := rs.Seek(cur, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to payload: %w", err)
	}

	remaining := end - cur

	if featureSize == 0 {
		if remaining != 0 {
			return nil, &DataSizeError{Remaining: remaining, Divisor: 0, Remainder: remaining}
		}
		return feature.FromFloat32(0, nil)
	}

	// The upstream check divides by the dimension itself, the second by the
	// vector byte size so the payload always reshapes.
	for _, div := range []int64{int64(featureSize), int64(featureSize) * floatSize} {
		if rem := remaining % div; rem != 0 {
			return nil, &DataSizeError{Remaining: remaining, Divisor: div, Remainder: rem}
		}
	}

	buf := make([]byte, remaining)
	if _, err := io.ReadFull(rs, buf); err != nil {
		return nil, fmt.Errorf("reading features: %w", err)
	}

	values := make([]float32, remaining/floatSize)
	for i := range values {
		values[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*floatSize:]))
	}

	return feature.FromFloat32(featureSize, values)
}
