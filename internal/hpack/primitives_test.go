package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// RFC 7541 appendix C.1.1-C.1.3 integer examples, mirroring the
// encode-side assertions the corpus's chrismoos-hpack/hpack_test.go
// makes for the same three cases.
func TestAppendIntExamples(t *testing.T) {
	cases := []struct {
		name   string
		value  uint64
		prefix uint8
		want   []byte
	}{
		{"10 fits in 5-bit prefix", 10, 5, []byte{10}},
		{"1337 needs continuation bytes", 1337, 5, []byte{31, 154, 10}},
		{"42 fits in 8-bit prefix", 42, 8, []byte{42}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dst := make([]byte, intSize(c.value, c.prefix))
			n := appendInt(dst, c.value, c.prefix, 0x00)
			assert.Equal(t, len(c.want), n)
			assert.Equal(t, c.want, dst)
		})
	}
}

func TestEncodeIndexedHeaderFieldTooSmall(t *testing.T) {
	dst := make([]byte, 0)
	n, ok := encodeIndexedHeaderField(dst, 8)
	assert.False(t, ok)
	assert.Equal(t, 0, n)
}

func TestEncodeIndexedHeaderFieldStatus200(t *testing.T) {
	dst := make([]byte, 1)
	n, ok := encodeIndexedHeaderField(dst, 8)
	assert.True(t, ok)
	assert.Equal(t, 1, n)
	assert.Equal(t, byte(0x88), dst[0])
}

func TestEncodeLiteralNewNameRoundTripShape(t *testing.T) {
	dst := make([]byte, 64)
	n, ok := encodeLiteralNewName(dst, flagLiteralWithIndexing, "custom-key", "custom-value")
	assert.True(t, ok)
	assert.Equal(t, byte(0x40), dst[0])
	assert.Greater(t, n, 1+len("custom-key")+len("custom-value"))
}

func TestEncodeDynamicTableSizeUpdate(t *testing.T) {
	dst := make([]byte, 8)
	n, ok := encodeDynamicTableSizeUpdate(dst, 0)
	assert.True(t, ok)
	assert.Equal(t, byte(0x20), dst[0])
	assert.Equal(t, 1, n)
}
