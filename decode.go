// SPDX-License-Identifier: EPL-2.0

package sprofeat

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/sprofeat/formats/spro"
)

// DecodeFile opens path, decodes it as an SPro feature file and closes it
// again on every path.
//
// Open errors wrap spro.ErrOpenFailure. A close error is only reported when
// the decode itself succeeded.
//
// Example:
//
//	res, err := sprofeat.DecodeFile("utt.prm", spro.Options{Flags64: true})
//	if errors.Is(err, spro.ErrInvalidDataSize) {
//	    // payload is not a whole number of vectors
//	}
func DecodeFile(path string, opts spro.Options) (*spro.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", spro.ErrOpenFailure, err)
	}

	return decodeAndClose(path, f, opts)
}

// decodeAndClose decodes rsc and closes it on every path.
func decodeAndClose(name string, rsc io.ReadSeekCloser, opts spro.Options) (res *spro.Result, err error) {
	defer func() {
		if cerr := rsc.Close(); cerr != nil && err == nil {
			res, err = nil, fmt.Errorf("closing %s: %w", name, cerr)
		}
	}()

	res, err = spro.Decoder{Options: opts}.Decode(rsc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return res, nil
}

// DecodeBytes decodes an SPro feature file held in memory.
func DecodeBytes(data []byte, opts spro.Options) (*spro.Result, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: %w", spro.ErrOpenFailure, errors.New("nil buffer"))
	}
	return spro.Decoder{Options: opts}.Decode(bytes.NewReader(data))
}
