// SPDX-License-Identifier: EPL-2.0

package spro

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	openTag  = "<header>"
	closeTag = "</header>"
)

// Pair is one key=value assignment of the text header.
type Pair struct {
	Key   string
	Value string
}

// VariableHeader holds the text header assignments in file order. Keys may
// repeat.
type VariableHeader []Pair

func (h VariableHeader) Len() int { return len(h) }

// Get returns the value of the first assignment to key.
func (h VariableHeader) Get(key string) (string, bool) {
	for _, p := range h {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Values returns every value assigned to key, in order.
func (h VariableHeader) Values(key string) []string {
	var out []string
	for _, p := range h {
		if p.Key == key {
			out = append(out, p.Value)
		}
	}
	return out
}

// locateTextHeader extracts the raw text between <header> and </header> and
// leaves rs at the first byte of the fixed header. Anomalies come back as
// warnings; the returned error is only set for I/O failures.
func locateTextHeader(rs io.ReadSeeker, maxLen int) (string, []error, error) {
	rewind := func(reason string) (string, []error, error) {
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return "", nil, fmt.Errorf("rewinding stream: %w", err)
		}
		return "", []error{fmt.Errorf("%w: %s", ErrMalformedTextHeader, reason)}, nil
	}

	probe := make([]byte, len(openTag))
	if _, err := io.ReadFull(rs, probe); err != nil {
		if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return "", nil, fmt.Errorf("reading text header: %w", err)
		}
		return rewind("missing " + openTag + " tag")
	}
	if string(probe) != openTag {
		return rewind("missing " + openTag + " tag")
	}

	// text, the closing tag and the newline after it
	limit := int64(maxLen) + int64(len(closeTag)) + 1
	br := bufio.NewReader(io.LimitReader(rs, limit))

	var acc []byte
	for !bytes.HasSuffix(acc, []byte(closeTag)) {
		if len(acc) >= maxLen+len(closeTag) {
			return rewind(fmt.Sprintf("no %s within %d bytes", closeTag, maxLen))
		}

		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return rewind(fmt.Sprintf("no %s before end of stream", closeTag))
		}
		if err != nil {
			return "", nil, fmt.Errorf("reading text header: %w", err)
		}
		acc = append(acc, b)
	}

	text := string(acc[:len(acc)-len(closeTag)])
	next := int64(len(openTag) + len(acc))

	var warnings []error
	b, err := br.ReadByte()
	switch {
	case err == nil && b == '\n':
		next++
	case err == nil || errors.Is(err, io.EOF):
		warnings = append(warnings, fmt.Errorf("%w: missing newline after %s", ErrMalformedTextHeader, closeTag))
	default:
		return "", nil, fmt.Errorf("reading text header: %w", err)
	}

	// br reads ahead, so reposition on the absolute offset.
	if _, err := rs.Seek(next, io.SeekStart); err != nil {
		return "", nil, fmt.Errorf("seeking past text header: %w", err)
	}

	return text, warnings, nil
}

// parseVariableHeader splits text into lines, lines into ';' clauses, drops
// '#' comments and keeps every trimmed key=value clause.
func parseVariableHeader(text string) VariableHeader {
	var h VariableHeader

	for line := range strings.SplitSeq(text, "\n") {
		for clause := range strings.SplitSeq(line, ";") {
			if i := strings.IndexByte(clause, '#'); i >= 0 {
				clause = clause[:i]
			}

			key, value, ok := strings.Cut(clause, "=")
			if !ok {
				continue
			}

			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}

			h = append(h, Pair{Key: key, Value: strings.TrimSpace(value)})
		}
	}

	return h
}
