package fieldcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		sep  Separator
		want []string
	}{
		{"comma", "Go, Rust ,Zig", Comma, []string{"Go", "Rust", "Zig"}},
		{"drops empties", " , a,, b , ", Comma, []string{"a", "b"}},
		{"empty", "", Comma, []string{}},
		{"newline", "Led team\n\n  Shipped v2 \r\n", Newline, []string{"Led team", "Shipped v2"}},
		{"newline keeps commas", "a, b\nc", Newline, []string{"a, b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeList(tt.raw, tt.sep))
		})
	}
}

func TestEncodeList(t *testing.T) {
	assert.Equal(t, "Go, Rust", EncodeList([]string{"Go", "Rust"}, Comma))
	assert.Equal(t, "one\ntwo", EncodeList([]string{"one", "two"}, Newline))
	assert.Equal(t, "", EncodeList(nil, Comma))
}

func TestRoundTrip(t *testing.T) {
	items := []string{"Go", "PostgreSQL", "gRPC"}
	for _, sep := range []Separator{Comma, Newline} {
		assert.Equal(t, items, DecodeList(EncodeList(items, sep), sep))
	}

	// an item holding the separator splits on the way back
	assert.Equal(t, []string{"a", "b", "c"}, DecodeList(EncodeList([]string{"a, b", "c"}, Comma), Comma))
}
