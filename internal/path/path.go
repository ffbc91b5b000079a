// Package path implements the dotted/bracketed path grammar shared by
// mapping specs, together with read traversal over decoded JSON values
// and write traversal into an output tree being assembled.
//
// A path is a sequence of segments separated by ".". Each segment is a
// key optionally suffixed with "[]" (wildcard array access) or "[n]"
// (indexed array access). There is no escaping of "." inside keys.
package path

import (
	"strings"
)

//go:generate go tool stringer -type=ModeEnum -output=mode_string.go

// ModeEnum describes how a segment accesses its key.
type ModeEnum int

const (
	// ModePlain is ordinary property access.
	ModePlain ModeEnum = iota
	// ModeIndex selects a fixed element of an array-valued key.
	ModeIndex
	// ModeWildcard fans out over an array-valued key.
	ModeWildcard
)

// Segment is one step of a parsed path.
type Segment struct {
	Key   string
	Mode  ModeEnum
	Index int // meaningful only when Mode is ModeIndex
}

// Path is an immutable parsed path.
type Path struct {
	Segments []Segment
}

// ParseSegment parses a single path segment. The grammar is a key
// optionally followed by a bracket suffix: empty brackets mean
// wildcard, digits mean a fixed index. Text that does not fit the
// grammar is never rejected; it becomes a plain key equal to the whole
// input, so keys without brackets are always usable as-is.
func ParseSegment(text string) Segment {
	if len(text) < 2 || text[len(text)-1] != ']' {
		return Segment{Key: text, Mode: ModePlain}
	}

	open := strings.LastIndexByte(text[:len(text)-1], '[')
	if open < 0 {
		return Segment{Key: text, Mode: ModePlain}
	}

	body := text[open+1 : len(text)-1]
	key := text[:open]

	if body == "" {
		return Segment{Key: key, Mode: ModeWildcard}
	}

	index, ok := parseDigits(body)
	if !ok {
		return Segment{Key: text, Mode: ModePlain}
	}

	return Segment{Key: key, Mode: ModeIndex, Index: index}
}

// Parse splits a path string on "." and parses each segment
// independently. An empty path has no segments.
func Parse(text string) Path {
	if text == "" {
		return Path{}
	}

	var segments []Segment

	parts := strings.SplitSeq(text, ".")
	for part := range parts {
		segments = append(segments, ParseSegment(part))
	}

	return Path{Segments: segments}
}

// parseDigits parses a non-empty run of ASCII digits. Unlike
// strconv.Atoi it rejects signs and whitespace, keeping the bracket
// grammar strict so that "a[+1]" falls back to a plain key.
func parseDigits(s string) (int, bool) {
	n := 0

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}

		n = n*10 + int(r-'0')
	}

	return n, true
}
