// SPDX-License-Identifier: EPL-2.0

package spro

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FlagBit maps one bit mask of the content flags field to its letter.
type FlagBit struct {
	Mask    uint32 `yaml:"mask"`
	Letter  string `yaml:"letter"`
	Meaning string `yaml:"meaning,omitempty"`
}

// FlagTable is tested in order; every entry whose mask is set contributes
// its letter.
type FlagTable []FlagBit

// DefaultFlagTable is the mapping used by the upstream SPro reader.
//
// Known upstream defect: A (delta-delta) tests 0x01, the same bit as E, so a
// file with only log-energy set decodes as "EA". It is kept as the default
// to match files already described that way. Use CorrectedFlagTable for the
// SPro library's own layout.
var DefaultFlagTable = FlagTable{
	{Mask: 0x01, Letter: "E", Meaning: "log-energy"},
	{Mask: 0x02, Letter: "Z", Meaning: "mean removed"},
	{Mask: 0x04, Letter: "N", Meaning: "static log-energy suppressed"},
	{Mask: 0x08, Letter: "D", Meaning: "delta"},
	{Mask: 0x01, Letter: "A", Meaning: "delta-delta"},
	{Mask: 0x20, Letter: "R", Meaning: "variance normalized"},
}

// CorrectedFlagTable moves A to its own bit, 0x10.
var CorrectedFlagTable = FlagTable{
	{Mask: 0x01, Letter: "E", Meaning: "log-energy"},
	{Mask: 0x02, Letter: "Z", Meaning: "mean removed"},
	{Mask: 0x04, Letter: "N", Meaning: "static log-energy suppressed"},
	{Mask: 0x08, Letter: "D", Meaning: "delta"},
	{Mask: 0x10, Letter: "A", Meaning: "delta-delta"},
	{Mask: 0x20, Letter: "R", Meaning: "variance normalized"},
}

// Decode returns the concatenated letters of every entry set in flags.
// Bits that no entry names are ignored.
func (t FlagTable) Decode(flags uint32) string {
	var sb strings.Builder
	for _, b := range t {
		if flags&b.Mask != 0 {
			sb.WriteString(b.Letter)
		}
	}
	return sb.String()
}

// Validate checks that every entry has a non-zero mask and a letter of
// exactly one character (rune).
func (t FlagTable) Validate() error {
	for i, b := range t {
		if b.Mask == 0 {
			return fmt.Errorf("%w: entry %d has zero mask", ErrInvalidFlagTable, i)
		}
		if utf8.RuneCountInString(b.Letter) != 1 {
			return fmt.Errorf("%w: entry %d letter %q must be one character", ErrInvalidFlagTable, i, b.Letter)
		}
	}
	return nil
}
