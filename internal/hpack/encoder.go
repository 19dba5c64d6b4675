// Package hpack implements an RFC 7541 HPACK header-block encoder for
// an HTTP/2 server's response direction. It owns the dynamic table,
// the entry pool, the per-header encoding-form selector, the
// list-size validator, and the top-level header-block driver; a
// decoder is explicitly out of scope.
package hpack

// DefaultMaxHeaderTableSize is SETTINGS_HEADER_TABLE_SIZE's default
// (RFC 7540 §6.5.2), used when a connection hasn't declared one yet.
// Mirrors the constant the teacher package used for the same value.
const DefaultMaxHeaderTableSize = 4096

// Encoder is the stateful dynamic-table manager and per-header
// encoding selector described by this package's design. One instance
// exists per HTTP/2 connection in the server-to-client direction; it
// is not safe for concurrent use (spec.md §5).
type Encoder struct {
	dynamic *dynamicTable

	maxHeaderListSize uint32

	// sensitive is the injected sensitivity predicate (spec.md §6).
	// A nil predicate means "never sensitive".
	sensitive func(name, value string) bool

	// pending carries at most one header across a begin_block/
	// continue_block pair that didn't fit in the prior call's buffer.
	pending *Header
}

// NewEncoder creates an encoder with the given initial dynamic table
// size (typically the peer's declared SETTINGS_HEADER_TABLE_SIZE, or
// DefaultMaxHeaderTableSize if the peer hasn't sent one).
func NewEncoder(maxHeaderTableSize uint32) *Encoder {
	return &Encoder{
		dynamic: newDynamicTable(maxHeaderTableSize),
	}
}

// SetSensitivityPredicate installs the callback consulted at most
// once per header to decide whether it must be encoded as Literal
// Header Field Never Indexed. A nil predicate (the default) treats
// every header as non-sensitive.
func (e *Encoder) SetSensitivityPredicate(pred func(name, value string) bool) {
	e.sensitive = pred
}

// SetMaxHeaderTableSize changes the dynamic table's capacity,
// evicting oldest-first if the new size is smaller (spec.md §4.1
// invariant 1, testable property 4).
//
// Per spec.md §9 Open Question (i), this does not itself write the
// HPACK "Dynamic Table Size Update" signal (RFC 7541 §6.3) onto the
// wire — the caller must prepend one to the next header block, using
// the EncodeDynamicTableSizeUpdate primitive, before a strict peer
// decoder will accept further output from this encoder.
func (e *Encoder) SetMaxHeaderTableSize(size uint32) {
	e.dynamic.setMaxSize(size)
}

// SetMaxHeaderListSize changes the limit validate_max_header_list_size
// checks incoming header sets against. Zero (the default) means the
// peer has not constrained the list size, and validation is skipped.
func (e *Encoder) SetMaxHeaderListSize(size uint32) {
	e.maxHeaderListSize = size
}

// ValidateMaxHeaderListSize implements spec.md §4.4: sums
// name_len+value_len+32 over the optional status header and every
// header the producer yields, comparing to the configured limit
// before any table mutation happens. The producer is fully drained by
// this call and cannot be reused afterward.
func (e *Encoder) ValidateMaxHeaderListSize(includeStatus bool, statusCode int, producer Producer) error {
	var headers []Header
	for {
		h, ok := producer.Next()
		if !ok {
			break
		}
		headers = append(headers, h)
	}
	return validateTotalSize(e.maxHeaderListSize, statusCode, includeStatus, headers)
}

// BeginEncodeHeaders implements spec.md §6's begin_encode_headers:
// optionally encodes a status pseudo-header, then encodes as many
// headers from producer as fit in buf.
//
// If hasStatus is false, statusCode is ignored and no :status is
// written. strict mirrors throw_if_none_encoded: when true and
// nothing at all could be written into an otherwise-empty buffer, an
// *EncodingFailure is returned instead of silently reporting zero
// bytes written.
func (e *Encoder) BeginEncodeHeaders(hasStatus bool, statusCode int, producer Producer, buf []byte, strict bool) (length int, complete bool, err error) {
	return e.beginBlock(hasStatus, statusCode, producer, buf, strict)
}

// ContinueEncodeHeaders implements spec.md §6's
// continue_encode_headers, used for CONTINUATION frames. Strict mode
// is always on: if the call makes no progress at all, an
// *EncodingFailure is returned.
func (e *Encoder) ContinueEncodeHeaders(producer Producer, buf []byte) (length int, complete bool, err error) {
	return e.continueBlock(producer, buf)
}

// TableStats is a read-only snapshot of dynamic-table occupancy,
// exposed for the demo dashboard and the CLI's `encode` summary.
type TableStats struct {
	Entries     int
	CurrentSize uint32
	MaxSize     uint32
	Inserts     uint64
	Evictions   uint64
	PoolDepth   int
}

// Stats returns the encoder's current dynamic-table occupancy. It
// never mutates state.
func (e *Encoder) Stats() TableStats {
	return TableStats{
		Entries:     e.dynamic.len(),
		CurrentSize: e.dynamic.currentSize,
		MaxSize:     e.dynamic.maxSize,
		Inserts:     e.dynamic.inserts,
		Evictions:   e.dynamic.evicted,
		PoolDepth:   e.dynamic.pool.Len(),
	}
}
