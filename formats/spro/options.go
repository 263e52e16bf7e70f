// SPDX-License-Identifier: EPL-2.0

package spro

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultMaxTextHeader bounds how far the text header scan reads looking
	// for </header>.
	DefaultMaxTextHeader = 1 << 20

	// MaxTextHeaderLimit is the largest accepted MaxTextHeader. Larger values
	// are rejected by LoadOptions and clamped by the decoder.
	MaxTextHeaderLimit = 1 << 30
)

// Options configures a decode. The zero value is ready to use.
type Options struct {
	// Flags64 reads the content flags as a 64-bit field (4 extra bytes), as
	// written by the buggy encoder whose documentation claims 32 bits.
	Flags64 bool `yaml:"flags64"`

	// FlagTable replaces DefaultFlagTable when non-empty.
	FlagTable FlagTable `yaml:"flag_table,omitempty"`

	// MaxTextHeader bounds the text header scan. 0 means DefaultMaxTextHeader;
	// values above MaxTextHeaderLimit are clamped to it.
	MaxTextHeader int `yaml:"max_text_header,omitempty"`

	// Logger receives warnings. nil means slog.Default().
	Logger *slog.Logger `yaml:"-"`
}

// LoadOptions reads Options from YAML.
func LoadOptions(r io.Reader) (Options, error) {
	var opts Options

	if err := yaml.NewDecoder(r).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("reading options: %w", err)
	}

	if err := opts.FlagTable.Validate(); err != nil {
		return Options{}, err
	}

	if opts.MaxTextHeader < 0 || opts.MaxTextHeader > MaxTextHeaderLimit {
		return Options{}, fmt.Errorf("max_text_header must be in [0,%d], got %d", MaxTextHeaderLimit, opts.MaxTextHeader)
	}

	return opts, nil
}

func (o Options) flagTable() FlagTable {
	if len(o.FlagTable) == 0 {
		return DefaultFlagTable
	}
	return o.FlagTable
}

func (o Options) maxTextHeader() int {
	if o.MaxTextHeader <= 0 {
		return DefaultMaxTextHeader
	}
	return min(o.MaxTextHeader, MaxTextHeaderLimit)
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}
