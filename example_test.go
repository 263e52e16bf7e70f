// SPDX-License-Identifier: EPL-2.0

package sprofeat_test

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ik5/sprofeat"
	"github.com/ik5/sprofeat/formats/spro"
	"github.com/ik5/sprofeat/internal/sprotest"
)

// Example_decodeFile decodes a feature file from disk and hands it to a
// go-audio consumer.
func Example_decodeFile() {
	dir, err := os.MkdirTemp("", "sprofeat")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "utt.prm")
	data := sprotest.File{
		HasText:   true,
		Text:      "kind=fbank",
		Dim:       3,
		FrameRate: 100,
		Frames:    sprotest.Ramp(4, 3),
	}.Bytes()
	if err := os.WriteFile(path, data, 0o600); err != nil {
		log.Fatal(err)
	}

	res, err := sprofeat.DecodeFile(path, spro.Options{Logger: slog.New(slog.DiscardHandler)})
	if err != nil {
		log.Fatal(err)
	}

	buf := res.Features.Float32Buffer(res.Header.FrameRate)
	fmt.Printf("%d vectors of %d at %d Hz\n", buf.NumFrames(), buf.Format.NumChannels, buf.Format.SampleRate)

	// Output: 4 vectors of 3 at 100 Hz
}
