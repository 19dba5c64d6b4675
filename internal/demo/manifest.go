// Package demo hosts the pieces of this repository that exist to
// exercise the hpack encoder end-to-end rather than to implement RFC
// 7541 itself: a wire format for recording encoded header blocks, a
// panic-safe fan-out harness for driving many connections at once, and
// a live occupancy dashboard.
package demo

import (
	"errors"

	json "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

// HeaderManifest is a record of one encoded header block: the
// (name, value) pairs that went in, the wire bytes that came out, and
// the dynamic-table occupancy immediately after encoding. Fanout
// records one per header set it encodes.
type HeaderManifest struct {
	StreamID    uint32   `json:"stream_id" msgpack:"stream_id"`
	Headers     []Header `json:"headers" msgpack:"headers"`
	Wire        []byte   `json:"wire" msgpack:"wire"`
	TableSize   uint32   `json:"table_size" msgpack:"table_size"`
	TableMax    uint32   `json:"table_max" msgpack:"table_max"`
	TableInsert uint64   `json:"table_inserts" msgpack:"table_inserts"`
}

// Header mirrors hpack.Header's wire-relevant fields without importing
// the hpack package's producer-contract metadata; kept separate so the
// manifest format doesn't change shape if the encoder's internal
// Header type grows fields the wire format has no business carrying.
type Header struct {
	Name  string `json:"name" msgpack:"name"`
	Value string `json:"value" msgpack:"value"`
}

// EncodeManifest serializes a HeaderManifest as msgpack, the compact
// encoding new writers should always produce.
func EncodeManifest(m *HeaderManifest) ([]byte, error) {
	return msgpack.Marshal(m)
}

// DecodeManifest decodes a HeaderManifest, auto-detecting the wire
// format from the leading byte: JSON objects start with '{', msgpack
// maps don't. This accepts manifests recorded by either an older
// JSON-emitting writer or the current msgpack one without a version
// field.
func DecodeManifest(data []byte) (*HeaderManifest, error) {
	if len(data) == 0 {
		return nil, errors.New("demo: empty manifest")
	}

	var m HeaderManifest
	if data[0] == '{' {
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
	} else {
		if err := msgpack.Unmarshal(data, &m); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

// EncodeManifestJSON serializes a HeaderManifest as JSON, so output is
// readable without a decoder.
func EncodeManifestJSON(m *HeaderManifest) ([]byte, error) {
	return json.Marshal(m)
}
