// SPDX-License-Identifier: EPL-2.0

// Package feature holds the in-memory representation of decoded acoustic
// feature streams.
//
// A Matrix stores N feature vectors (frames) of M coefficients each, in the
// order they appear in time. Values are read from disk as float32 and widened
// to float64.
//
//	m, err := feature.NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	if err != nil {
//	    // Handle error
//	}
//	m.Rows() // 2
//	m.Cols() // 3
//	m.At(1, 0) // 4
//
// # go-audio interop
//
// Float32Buffer exposes the matrix as an interleaved go-audio buffer where
// every coefficient is a channel and every vector is a frame:
//
//	buf := m.Float32Buffer(100)
//	buf.NumFrames() // 2
//	buf.PCMFormat().NumChannels // 3
package feature
