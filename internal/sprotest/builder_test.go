// SPDX-License-Identifier: EPL-2.0

package sprotest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFile_Bytes(t *testing.T) {
	t.Parallel()

	got := File{
		HasText:   true,
		Text:      "a=1",
		Dim:       -1,
		Flags:     0x0102,
		Flags64:   true,
		FrameRate: 1,
		Frames:    []float32{2},
		Trailing:  []byte{0xaa},
	}.Bytes()

	want := []byte("<header>a=1</header>\n")
	want = append(want,
		0xff, 0xff, // dim
		0x02, 0x01, 0x00, 0x00, // flags
		0x00, 0x00, 0x00, 0x00, // flags upper half
		0x00, 0x00, 0x80, 0x3f, // 1.0
		0x00, 0x00, 0x00, 0x40, // 2.0
		0xaa,
	)

	assert.Equal(t, want, got)
}

func TestFile_BytesWithoutText(t *testing.T) {
	t.Parallel()

	got := File{Dim: 2, FrameRate: 100, OmitNewline: true}.Bytes()
	assert.Len(t, got, 10)
	assert.Equal(t, []byte{0x02, 0x00}, got[:2])
}
