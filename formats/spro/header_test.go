// SPDX-License-Identifier: EPL-2.0

package spro

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/sprofeat/internal/sprotest"
)

func TestReadFixedHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file sprotest.File
		opts Options
		want FixedHeader
	}{
		{
			name: "32-bit flags",
			file: sprotest.File{Dim: 13, Flags: 0x08 | 0x02, FrameRate: 100},
			want: FixedHeader{FeatureSize: 13, RawFlags: 0x0a, Flags: "ZD", FrameRate: 100},
		},
		{
			name: "64-bit flags",
			file: sprotest.File{Dim: 39, Flags: 0x0d, Flags64: true, FrameRate: 62.5},
			opts: Options{Flags64: true},
			want: FixedHeader{FeatureSize: 39, RawFlags: 0x0d, Flags: "ENDA", FrameRate: 62.5},
		},
		{
			name: "custom table",
			file: sprotest.File{Dim: 2, Flags: 0x11, FrameRate: 50},
			opts: Options{FlagTable: CorrectedFlagTable},
			want: FixedHeader{FeatureSize: 2, RawFlags: 0x11, Flags: "EA", FrameRate: 50},
		},
		{
			name: "zero dimension",
			file: sprotest.File{Dim: 0, FrameRate: 1},
			want: FixedHeader{FeatureSize: 0, Flags: "", FrameRate: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := bytes.NewReader(tt.file.Bytes())
			got, err := readFixedHeader(r, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 0, r.Len())
		})
	}
}

func TestReadFixedHeader_NegativeDimension(t *testing.T) {
	t.Parallel()

	for _, dim := range []int16{-1, -32768} {
		file := sprotest.File{Dim: dim, FrameRate: 100, Frames: sprotest.Ramp(4, 4)}
		_, err := readFixedHeader(bytes.NewReader(file.Bytes()), Options{})
		require.ErrorIs(t, err, ErrCorruptedHeader)
	}
}

func TestReadFixedHeader_Truncated(t *testing.T) {
	t.Parallel()

	full := sprotest.File{Dim: 3, Flags64: true, FrameRate: 100}.Bytes()

	for n := range len(full) {
		_, err := readFixedHeader(bytes.NewReader(full[:n]), Options{Flags64: true})
		require.ErrorIs(t, err, ErrCorruptedHeader, "length %d", n)
	}
}

func TestFixedHeaderSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, fixedHeaderSize(false))
	assert.Equal(t, 14, fixedHeaderSize(true))
}
