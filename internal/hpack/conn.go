package hpack

import (
	"go.uber.org/zap"
)

// Conn wraps a bare Encoder with the growable-buffer convenience most
// callers want and with the structured logging the teacher package
// applies at connection boundaries (see internal/recovery and the
// prior revision of internal/shared/compression/hpack, which logged
// this way at the listener/connection level, not inside the hot
// encode path). The bare Encoder in encoder.go stays logger-free and
// allocation-light, per spec.md §5's "no I/O, non-suspending"
// requirement on the core.
type Conn struct {
	enc    *Encoder
	logger *zap.Logger

	// blockSize sizes the internal scratch buffer used by
	// EncodeHeaders' begin/continue loop.
	blockSize int
}

// DefaultBlockSize is the size of EncodeHeaders' fixed scratch buffer;
// large enough that most header sets complete in a single
// begin_encode_headers call.
const DefaultBlockSize = 4096

// NewConn creates a Conn around a fresh Encoder sized to
// maxHeaderTableSize. A nil logger is replaced with zap.NewNop().
func NewConn(maxHeaderTableSize uint32, logger *zap.Logger) *Conn {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Conn{
		enc:       NewEncoder(maxHeaderTableSize),
		logger:    logger,
		blockSize: DefaultBlockSize,
	}
}

// Encoder returns the underlying Encoder for callers that need the
// partial-buffer begin/continue protocol directly (e.g. to drive
// real HEADERS/CONTINUATION frames with a fixed frame size).
func (c *Conn) Encoder() *Encoder {
	return c.enc
}

// SetSensitivityPredicate installs the sensitivity callback on the
// underlying encoder.
func (c *Conn) SetSensitivityPredicate(pred func(name, value string) bool) {
	c.enc.SetSensitivityPredicate(pred)
}

// SetMaxHeaderTableSize resizes the dynamic table, logging the
// transition the way the teacher's listener logs configuration
// changes that affect shared state.
func (c *Conn) SetMaxHeaderTableSize(size uint32) {
	before := c.enc.Stats()
	c.enc.SetMaxHeaderTableSize(size)
	after := c.enc.Stats()
	c.logger.Debug("hpack dynamic table resized",
		zap.Uint32("old_max_size", before.MaxSize),
		zap.Uint32("new_max_size", size),
		zap.Int("entries_before", before.Entries),
		zap.Int("entries_after", after.Entries),
	)
}

// SetMaxHeaderListSize sets the list-size validator's limit.
func (c *Conn) SetMaxHeaderListSize(size uint32) {
	c.enc.SetMaxHeaderListSize(size)
}

// EncodeHeaders is the no-continuation convenience path: it loops
// BeginEncodeHeaders/ContinueEncodeHeaders against a fixed scratch
// buffer of blockSize bytes, appending each chunk to a growing output
// slice, and returns the fully encoded block. The scratch buffer does
// not grow: a single header whose encoding exceeds blockSize is
// rejected with an *EncodingFailure. Most
// callers that don't need to interleave writes with HEADERS/
// CONTINUATION frame boundaries should use this instead of driving
// the partial-buffer protocol themselves.
func (c *Conn) EncodeHeaders(hasStatus bool, statusCode int, headers []Header) ([]byte, error) {
	producer := NewSliceProducer(autoHint(headers))

	out := make([]byte, 0, c.blockSize)
	scratch := make([]byte, c.blockSize)

	n, complete, err := c.enc.BeginEncodeHeaders(hasStatus, statusCode, producer, scratch, true)
	if err != nil {
		return nil, err
	}
	out = append(out, scratch[:n]...)

	for !complete {
		n, complete, err = c.enc.ContinueEncodeHeaders(producer, scratch)
		if err != nil {
			return nil, err
		}
		out = append(out, scratch[:n]...)
	}

	c.logger.Debug("encoded header block",
		zap.Int("header_count", len(headers)),
		zap.Int("bytes_written", len(out)),
	)

	return out, nil
}

// Stats returns the current dynamic-table occupancy snapshot.
func (c *Conn) Stats() TableStats {
	return c.enc.Stats()
}

// autoHint fills in StaticHint for any header that doesn't already
// carry one, using an exact static-table name lookup. This is the
// simplification spec.md §6's "known-header tag" mapping collapses
// to — see statictable.go's staticName.
func autoHint(headers []Header) []Header {
	out := make([]Header, len(headers))
	for i, h := range headers {
		if h.StaticHint <= 0 {
			if idx, ok := staticName(h.Name); ok {
				h.StaticHint = int64(idx)
			} else {
				h.StaticHint = NoStaticHint
			}
		}
		out[i] = h
	}
	return out
}
