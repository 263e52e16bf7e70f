// SPDX-License-Identifier: EPL-2.0

package spro

import (
	"errors"
	"fmt"
)

var (
	// ErrOpenFailure indicates the input could not be opened
	ErrOpenFailure = errors.New("cannot open SPro stream")

	// ErrCorruptedHeader indicates the fixed binary header is unreadable or invalid
	ErrCorruptedHeader = errors.New("corrupted SPro header")

	// ErrInvalidDataSize indicates the payload is not a whole number of vectors
	ErrInvalidDataSize = errors.New("invalid SPro data size")

	// ErrMalformedTextHeader is a warning: the textual header is missing or badly terminated
	ErrMalformedTextHeader = errors.New("malformed SPro text header")

	// ErrInvalidFlagTable indicates a flag table entry cannot be used
	ErrInvalidFlagTable = errors.New("invalid flag table")
)

// DataSizeError reports a payload whose byte count is not a multiple of
// Divisor.
type DataSizeError struct {
	Remaining int64
	Divisor   int64
	Remainder int64
}

func (e *DataSizeError) Error() string {
	msg := fmt.Sprintf("%s: %d bytes left after header, not a multiple of %d (remainder %d)",
		ErrInvalidDataSize, e.Remaining, e.Divisor, e.Remainder)

	if e.Remainder == 4 {
		msg += "; the content flags field may be 64-bit, try Options.Flags64"
	}

	return msg
}

func (e *DataSizeError) Unwrap() error { return ErrInvalidDataSize }
