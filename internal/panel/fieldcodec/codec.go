// Package fieldcodec converts between list fields and the single text
// inputs used to edit them.
//
// Encoding then decoding returns the original list only when no item
// contains the separator or surrounding whitespace. "a, b" stored as one
// item comes back as two.
package fieldcodec

import "strings"

type Separator int

const (
	Comma Separator = iota
	Newline
)

func (s Separator) split() string {
	if s == Newline {
		return "\n"
	}
	return ","
}

func (s Separator) join() string {
	if s == Newline {
		return "\n"
	}
	return ", "
}

// EncodeList joins items for display in a text input.
func EncodeList(items []string, sep Separator) string {
	return strings.Join(items, sep.join())
}

// DecodeList splits raw text, trims every piece and drops empty ones.
// The result is never nil.
func DecodeList(raw string, sep Separator) []string {
	out := []string{}
	for _, piece := range strings.Split(raw, sep.split()) {
		if p := strings.TrimSpace(piece); p != "" {
			out = append(out, p)
		}
	}
	return out
}
