// SPDX-License-Identifier: EPL-2.0

// Package sprofeat reads SPro acoustic feature files.
//
// SPro files store a sequence of fixed-dimension float32 feature vectors,
// such as MFCCs, behind a small binary header and an optional text header.
// The package is read-only.
//
// # Quick Start
//
//	res, err := sprofeat.DecodeFile("utt.prm", spro.Options{})
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(res.Header.FeatureSize, res.Header.Flags, res.Header.FrameRate)
//	for i := range res.Features.Rows() {
//	    row, _ := res.Features.Row(i)
//	    // row is one feature vector
//	}
//
// # Packages
//
//   - formats/spro: the decoder, its options, flag tables and errors
//   - feature: the decoded Matrix and its go-audio interop
//
// # Warnings
//
// A file without a text header, or with a badly terminated one, still
// decodes. The anomaly is listed in Result.Warnings and logged through the
// slog logger set on spro.Options (slog.Default() when unset).
//
// See the individual subpackages for more detailed documentation.
package sprofeat
