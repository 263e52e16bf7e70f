// SPDX-License-Identifier: EPL-2.0

// Package spro decodes SPro acoustic feature files.
//
// An SPro file holds a stream of fixed-dimension float32 feature vectors
// (MFCC, filter banks, ...) behind a small binary header, optionally preceded
// by a free-form text header. This package is read-only.
//
// # Decoding
//
//	f, _ := os.Open("utt.prm")
//	defer f.Close()
//
//	res, err := spro.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
//	res.Header.FeatureSize // vector dimension
//	res.Header.Flags       // e.g. "EDA"
//	res.Features.Rows()    // number of vectors
//	res.Text.Get("source") // text header lookups
//
// # File Format
//
// All numbers are little-endian:
//   - optional "<header>" + text + "</header>" + "\n"
//   - int16 feature size
//   - uint32 content flags (plus 4 padding bytes, see Flags64)
//   - float32 frame rate, vectors per second
//   - float32 values until EOF, feature size per vector
//
// The text header is a list of key=value clauses separated by newlines or
// ';'. Anything after '#' in a clause is a comment. Keys may repeat; all
// assignments are kept in order.
//
// # Content Flags
//
// The flags bitmask is rendered as letters through a FlagTable:
// E log-energy, Z mean removed, N static log-energy suppressed, D delta,
// A delta-delta, R variance normalized.
//
// DefaultFlagTable reproduces a known upstream defect: A tests bit 0x01,
// the same bit as E. CorrectedFlagTable uses 0x10 for A. Either table, or
// one loaded from YAML with LoadOptions, can be set on Options.FlagTable.
//
// # 64-bit Flags
//
// One historical encoder writes the flags as a 64-bit field while the format
// documents 32 bits. Set Options.Flags64 to read such files. Decoding one
// without it fails with ErrInvalidDataSize, and a remainder of 4 is called
// out in the error message.
//
// # Error Handling
//
// Fatal errors return a nil Result:
//   - ErrCorruptedHeader: negative feature size or truncated fixed header
//   - ErrInvalidDataSize: payload is not a whole number of vectors (*DataSizeError)
//
// A missing "<header>" tag or a missing newline after "</header>" is not
// fatal. Decoding continues and the condition is reported in
// Result.Warnings, each wrapping ErrMalformedTextHeader, and logged at warn
// level through Options.Logger.
package spro
