// SPDX-License-Identifier: EPL-2.0

package spro

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// FixedHeader is the binary header that follows the text header.
type FixedHeader struct {
	// FeatureSize is the vector dimension.
	FeatureSize int
	// RawFlags is the content flags bitmask as stored.
	RawFlags uint32
	// Flags is RawFlags decoded through the flag table, e.g. "EDA".
	Flags string
	// FrameRate in vectors per second.
	FrameRate float32
}

// fixedHeaderSize returns the on-disk size of the fixed header.
func fixedHeaderSize(flags64 bool) int {
	// int16 dim + uint32 flags + float32 rate
	size := 2 + 4 + 4
	if flags64 {
		size += 4
	}
	return size
}

func readFixedHeader(r io.Reader, opts Options) (FixedHeader, error) {
	buf := make([]byte, fixedHeaderSize(opts.Flags64))
	if _, err := io.ReadFull(r, buf); err != nil {
		return FixedHeader{}, fmt.Errorf("%w: reading fixed header: %w", ErrCorruptedHeader, err)
	}

	featureSize := int16(binary.LittleEndian.Uint16(buf[0:2]))
	if featureSize < 0 {
		return FixedHeader{}, fmt.Errorf("%w: negative feature size %d", ErrCorruptedHeader, featureSize)
	}

	flags := binary.LittleEndian.Uint32(buf[2:6])

	rateAt := 6
	if opts.Flags64 {
		// upper half of the 64-bit flags field
		rateAt += 4
	}
	rate := math.Float32frombits(binary.LittleEndian.Uint32(buf[rateAt : rateAt+4]))

	return FixedHeader{
		FeatureSize: int(featureSize),
		RawFlags:    flags,
		Flags:       opts.flagTable().Decode(flags),
		FrameRate:   rate,
	}, nil
}
