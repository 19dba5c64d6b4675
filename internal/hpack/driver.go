package hpack

import "strconv"

// Header is one (name, value) pair plus the producer-contract
// metadata the selector needs (spec.md §6's "producer contract").
//
// StaticHint is the known-header tag's static-table index, or
// NoStaticHint if the producer doesn't know one. Sensitive marks the
// header as sensitive up front; when it is false the driver runs the
// sensitivity predicate over (Name, Value) at most once per header,
// when it first reads the header out of the producer.
type Header struct {
	Name, Value string
	Sensitive   bool
	StaticHint  int64
}

// NoStaticHint marks a Header with no known static-table index.
const NoStaticHint = noStaticHint

// Producer is the forward cursor spec.md §6 assumes a header source
// presents. The producer never surfaces the :status pseudo-header;
// that is handled separately by beginBlock.
type Producer interface {
	// Next returns the next header and true, or a zero Header and
	// false once exhausted.
	Next() (Header, bool)
}

// sliceProducer is the obvious concrete Producer over a plain slice,
// supplied because spec.md only specifies the interface and assumes
// an injected cursor — most callers just have a []Header.
type sliceProducer struct {
	headers []Header
	pos     int
}

// NewSliceProducer returns a Producer over a fixed slice of headers.
func NewSliceProducer(headers []Header) Producer {
	return &sliceProducer{headers: headers}
}

func (p *sliceProducer) Next() (Header, bool) {
	if p.pos >= len(p.headers) {
		return Header{}, false
	}
	h := p.headers[p.pos]
	p.pos++
	return h, true
}

// beginBlock implements spec.md §4.3's begin_block: optionally emits
// the :status pseudo-header, then drives the producer into buf.
// hasStatus selects whether a status is encoded at all; strict
// mirrors throw_if_none_encoded.
func (e *Encoder) beginBlock(hasStatus bool, statusCode int, producer Producer, buf []byte, strict bool) (int, bool, error) {
	written := 0

	if hasStatus {
		n, ok := e.writeStatus(statusCode, buf)
		if !ok {
			return 0, false, &EncodingFailure{Reason: "status pseudo-header did not fit in buffer"}
		}
		written += n
	}

	return e.drainProducer(producer, buf, written, strict)
}

// continueBlock implements spec.md §4.3's continue_block: identical
// to beginBlock without the status step, always strict.
func (e *Encoder) continueBlock(producer Producer, buf []byte) (int, bool, error) {
	return e.drainProducer(producer, buf, 0, true)
}

// writeStatus handles the seven-status fast path plus the general
// selector fallback described in spec.md §4.3.
func (e *Encoder) writeStatus(code int, buf []byte) (int, bool) {
	if idx := fastStatusIndex(code); idx != 0 {
		return encodeIndexedHeaderField(buf, idx)
	}

	value := strconv.Itoa(code)
	d := selectEncoding(e.dynamic, staticIndexStatus200, ":status", value, false)
	n, ok := d.write(buf, ":status", value)
	if !ok {
		return 0, false
	}
	if d.insert {
		e.dynamic.ensureCapacity(d.headerSize)
		e.dynamic.insert(":status", value, d.headerSize)
	}
	return n, true
}

// drainProducer is the shared loop body for beginBlock/continueBlock.
// It first flushes a header left over from a previous call that
// didn't fit in that call's buffer (e.pending), then pulls fresh
// headers from producer. This is how the encoder implements
// cross-call resumption without requiring the Producer itself to
// support "peek" or "unread": the encoder, not the cursor, owns the
// at-most-one-header carry between a begin_block/continue_block pair
// (spec.md §5 already makes the encoder instance stateful and
// single-threaded, so this costs no new concurrency assumption).
func (e *Encoder) drainProducer(producer Producer, buf []byte, written int, strict bool) (int, bool, error) {
	next := func() (Header, bool) {
		if e.pending != nil {
			h := *e.pending
			e.pending = nil
			return h, true
		}
		return producer.Next()
	}

	for {
		carried := e.pending != nil
		h, ok := next()
		if !ok {
			return written, true, nil
		}

		// A carried header already holds the verdict from the call that
		// first read it, so the predicate is not consulted again.
		sensitive := h.Sensitive
		if !sensitive && !carried && e.sensitive != nil {
			sensitive = e.sensitive(h.Name, h.Value)
		}
		h.Sensitive = sensitive
		d := selectEncoding(e.dynamic, normalizeHint(h.StaticHint), h.Name, h.Value, sensitive)
		n, fit := d.write(buf[written:], h.Name, h.Value)
		if !fit {
			e.pending = &h
			if written > 0 {
				return written, false, nil
			}
			if strict {
				e.pending = nil
				return 0, false, &EncodingFailure{Reason: "single header does not fit in an empty buffer"}
			}
			return 0, false, nil
		}

		written += n
		if d.insert {
			e.dynamic.ensureCapacity(d.headerSize)
			e.dynamic.insert(h.Name, h.Value, d.headerSize)
		}
	}
}
