// SPDX-License-Identifier: EPL-2.0

package feature

import (
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"
)

// Matrix is an immutable row-major matrix of feature vectors.
type Matrix struct {
	rows int
	cols int
	data []float64
}

// NewMatrix builds a rows x cols matrix over data. The slice is owned by the
// matrix afterwards.
func NewMatrix(rows, cols int, data []float64) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative shape %dx%d", ErrShapeMismatch, rows, cols)
	}

	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrShapeMismatch, len(data), rows, cols)
	}

	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// FromFloat32 widens row-major float32 values into a Matrix with cols columns.
func FromFloat32(cols int, values []float32) (*Matrix, error) {
	if cols == 0 {
		if len(values) != 0 {
			return nil, fmt.Errorf("%w: %d values for 0 columns", ErrShapeMismatch, len(values))
		}
		return &Matrix{}, nil
	}

	if cols < 0 || len(values)%cols != 0 {
		return nil, fmt.Errorf("%w: %d values for %d columns", ErrShapeMismatch, len(values), cols)
	}

	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}

	return &Matrix{rows: len(values) / cols, cols: cols, data: data}, nil
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

// At returns the coefficient j of vector i. It panics when out of range,
// like slice indexing.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("feature: index (%d,%d) out of range %dx%d", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// Row returns a copy of vector i.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrRowOutOfRange, i, m.rows)
	}

	row := make([]float64, m.cols)
	copy(row, m.data[i*m.cols:(i+1)*m.cols])
	return row, nil
}

// Data returns a copy of the row-major values.
func (m *Matrix) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Float32Buffer returns the matrix as an interleaved go-audio buffer: one
// channel per coefficient, one frame per vector. frameRate is rounded to the
// nearest integer since go-audio formats carry an integral rate.
func (m *Matrix) Float32Buffer(frameRate float32) *goaudio.Float32Buffer {
	data := make([]float32, len(m.data))
	for i, v := range m.data {
		data[i] = float32(v)
	}

	return &goaudio.Float32Buffer{
		Format: &goaudio.Format{
			NumChannels: m.cols,
			SampleRate:  int(math.Round(float64(frameRate))),
		},
		Data:           data,
		SourceBitDepth: 32,
	}
}
