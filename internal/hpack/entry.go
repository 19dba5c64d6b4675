package hpack

// headerEntry is one live binding in the dynamic table, or — once
// evicted — a detached node sitting on the entry pool waiting to be
// reused by the next insertion.
//
// The list links (prev/next) and the hash-bucket link (nextInBucket)
// are intrusive: no separate allocation backs them, matching the
// shape spec.md §9 calls out explicitly for a GC'd implementation.
type headerEntry struct {
	name, value string
	hash        uint32
	// seq is assigned at insertion and strictly decreases as entries
	// age out of "newest". It is the basis for the wire index (see
	// dynamicTable.wireIndex) and is 64-bit rather than the 32-bit the
	// reference design sketches, so it never needs to be re-based —
	// see DESIGN.md's note on spec.md §9's "monotonic insertion
	// sequence" open question.
	seq int64

	nextInBucket *headerEntry

	prev, next *headerEntry

	poolNext *headerEntry
}

// entrySize is the RFC 7541 §4.1 entry size: name/value bytes plus a
// fixed 32-byte overhead for the table's internal bookkeeping.
func entrySize(name, value string) uint32 {
	return uint32(len(name) + len(value) + 32)
}

// detach clears every field that would let this entry be mistaken
// for a live one. Required before the entry is pushed onto the pool
// (spec.md §3 invariant 5).
func (e *headerEntry) detach() {
	e.name = ""
	e.value = ""
	e.hash = 0
	e.seq = 0
	e.nextInBucket = nil
	e.prev = nil
	e.next = nil
}

// entryPool is a stack of detached entries retained after eviction,
// reducing allocator churn under steady-state insert/evict workloads
// (spec.md §4.5).
type entryPool struct {
	top *headerEntry
	len int
}

func (p *entryPool) pop() *headerEntry {
	e := p.top
	if e == nil {
		return nil
	}
	p.top = e.poolNext
	e.poolNext = nil
	p.len--
	return e
}

func (p *entryPool) push(e *headerEntry) {
	e.detach()
	e.poolNext = p.top
	p.top = e
	p.len++
}

// Len reports the number of detached entries currently retained,
// exposed for the demo dashboard's occupancy/pool-depth stat.
func (p *entryPool) Len() int {
	return p.len
}
