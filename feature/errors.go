// SPDX-License-Identifier: EPL-2.0

package feature

import "errors"

var (
	ErrShapeMismatch = errors.New("data length does not match matrix shape")
	ErrRowOutOfRange = errors.New("row index out of range")
)
