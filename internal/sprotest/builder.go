// SPDX-License-Identifier: EPL-2.0

// Package sprotest builds SPro feature files in memory for tests.
package sprotest

import (
	"encoding/binary"
	"math"
)

// File describes the bytes to produce. Frames are row-major with Dim
// coefficients each.
type File struct {
	// Text is written between <header> and </header> when HasText is set.
	Text    string
	HasText bool
	// OmitNewline drops the '\n' after </header>.
	OmitNewline bool

	Dim       int16
	Flags     uint32
	Flags64   bool
	FrameRate float32
	Frames    []float32

	// Trailing bytes appended after the frames.
	Trailing []byte
}

// Bytes serializes f.
func (f File) Bytes() []byte {
	var out []byte

	if f.HasText {
		out = append(out, "<header>"...)
		out = append(out, f.Text...)
		out = append(out, "</header>"...)
		if !f.OmitNewline {
			out = append(out, '\n')
		}
	}

	le := binary.LittleEndian
	out = le.AppendUint16(out, uint16(f.Dim))
	out = le.AppendUint32(out, f.Flags)
	if f.Flags64 {
		out = le.AppendUint32(out, 0)
	}
	out = le.AppendUint32(out, math.Float32bits(f.FrameRate))

	for _, v := range f.Frames {
		out = le.AppendUint32(out, math.Float32bits(v))
	}

	return append(out, f.Trailing...)
}

// Frames generates n vectors of dim coefficients from gen.
func Frames(n, dim int, gen func(frame, coef int) float32) []float32 {
	out := make([]float32, 0, n*dim)
	for i := range n {
		for j := range dim {
			out = append(out, gen(i, j))
		}
	}
	return out
}

// Ramp returns frames where coefficient j of vector i is i*dim+j.
func Ramp(n, dim int) []float32 {
	return Frames(n, dim, func(frame, coef int) float32 {
		return float32(frame*dim + coef)
	})
}

// Sine returns frames following a sine per coefficient, useful for values
// that are not exact integers.
func Sine(n, dim int, frameRate float64) []float32 {
	return Frames(n, dim, func(frame, coef int) float32 {
		t := float64(frame) / frameRate
		return float32(math.Sin(2 * math.Pi * float64(coef+1) * t))
	})
}
