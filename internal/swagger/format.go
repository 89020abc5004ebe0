// Package swagger serializes API description documents. Documents are
// opaque to the tool: bytes in, bytes out, with only the formatting mode
// applied.
package swagger

import "strings"

// Format selects the JSON output formatting mode.
type Format int

const (
	// FormatNone emits compact JSON. It is the default, including for
	// unrecognized --format values.
	FormatNone Format = iota
	// FormatIndented emits two-space indented JSON.
	FormatIndented
)

// ParseFormat maps a --format token to a Format. Matching is
// case-insensitive; anything unrecognized silently falls back to
// FormatNone.
func ParseFormat(s string) Format {
	if strings.EqualFold(s, "indented") {
		return FormatIndented
	}
	return FormatNone
}

func (f Format) String() string {
	if f == FormatIndented {
		return "Indented"
	}
	return "None"
}
