package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestRoundTripsThroughMsgpack(t *testing.T) {
	m := &HeaderManifest{
		StreamID:  1,
		Headers:   []Header{{Name: ":status", Value: "200"}},
		Wire:      []byte{0x88},
		TableSize: 0,
		TableMax:  4096,
	}

	data, err := EncodeManifest(m)
	require.NoError(t, err)
	assert.NotEqual(t, byte('{'), data[0])

	got, err := DecodeManifest(data)
	require.NoError(t, err)
	assert.Equal(t, m.StreamID, got.StreamID)
	assert.Equal(t, m.Wire, got.Wire)
	assert.Equal(t, m.Headers, got.Headers)
}

func TestManifestDecodeAutoDetectsJSON(t *testing.T) {
	m := &HeaderManifest{StreamID: 7, Headers: []Header{{Name: "x", Value: "y"}}}
	data, err := EncodeManifestJSON(m)
	require.NoError(t, err)
	require.Equal(t, byte('{'), data[0])

	got, err := DecodeManifest(data)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), got.StreamID)
}

func TestDecodeManifestRejectsEmptyInput(t *testing.T) {
	_, err := DecodeManifest(nil)
	assert.Error(t, err)
}
