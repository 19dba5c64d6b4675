package hpack

import "hash/fnv"

// bucketCount is the number of hash buckets backing the dynamic
// table's name index. Kept small and a power of two deliberately:
// dynamic tables in practice hold a few dozen entries at most, so a
// larger array only costs cache locality (spec.md §9).
const bucketCount = 16

// dynamicTable is the doubly linked list + hash-bucket store
// described in spec.md §3-§4.1. head is a sentinel: head.next is the
// oldest live entry (the next eviction victim), head.prev is the
// newest insertion.
type dynamicTable struct {
	head    headerEntry
	buckets [bucketCount]*headerEntry

	currentSize uint32
	maxSize     uint32

	pool entryPool

	inserts uint64
	evicted uint64
}

// sentinelSeq seeds head.seq so the first real insertion's sequence
// number is sentinelSeq-1, which yields wire index staticTableSize+1
// per spec.md §4.1.
const sentinelSeq = int64(1) << 62

func newDynamicTable(maxSize uint32) *dynamicTable {
	dt := &dynamicTable{maxSize: maxSize}
	dt.head.seq = sentinelSeq
	dt.head.prev = &dt.head
	dt.head.next = &dt.head
	return dt
}

func hashName(name string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return h.Sum32()
}

func (dt *dynamicTable) bucketIndex(hash uint32) uint32 {
	return hash & (bucketCount - 1)
}

// lookupNameAndValue scans the bucket for hash(name), rejecting on
// hash then value (cheaper than name) then name, per spec.md §4.1.
func (dt *dynamicTable) lookupNameAndValue(name, value string) (*headerEntry, bool) {
	h := hashName(name)
	for e := dt.buckets[dt.bucketIndex(h)]; e != nil; e = e.nextInBucket {
		if e.hash != h {
			continue
		}
		if e.value != value {
			continue
		}
		if e.name != name {
			continue
		}
		return e, true
	}
	return nil, false
}

// lookupName returns the wire index of any live entry with a
// matching name. If more than one matches, the first encountered in
// the bucket chain wins — any live entry is an acceptable answer per
// spec.md §4.1.
func (dt *dynamicTable) lookupName(name string) (uint64, bool) {
	h := hashName(name)
	for e := dt.buckets[dt.bucketIndex(h)]; e != nil; e = e.nextInBucket {
		if e.hash == h && e.name == name {
			return dt.wireIndex(e), true
		}
	}
	return 0, false
}

// wireIndex implements the formula from spec.md §4.1.
func (dt *dynamicTable) wireIndex(e *headerEntry) uint64 {
	newest := dt.head.prev
	return uint64(e.seq-newest.seq) + 1 + staticTableSize
}

// ensureCapacity evicts oldest-first until there is room for
// headerSize more bytes. Callers must already have verified
// headerSize <= maxSize.
func (dt *dynamicTable) ensureCapacity(headerSize uint32) {
	for dt.maxSize-dt.currentSize < headerSize && dt.head.next != &dt.head {
		dt.evictOldest()
	}
}

func (dt *dynamicTable) evictOldest() {
	victim := dt.head.next
	if victim == &dt.head {
		return
	}
	dt.removeFromBucket(victim)
	victim.prev.next = victim.next
	victim.next.prev = victim.prev
	dt.currentSize -= entrySize(victim.name, victim.value)
	dt.evicted++
	dt.pool.push(victim)
}

func (dt *dynamicTable) removeFromBucket(e *headerEntry) {
	idx := dt.bucketIndex(e.hash)
	if dt.buckets[idx] == e {
		dt.buckets[idx] = e.nextInBucket
		return
	}
	for p := dt.buckets[idx]; p != nil; p = p.nextInBucket {
		if p.nextInBucket == e {
			p.nextInBucket = e.nextInBucket
			return
		}
	}
}

// insert adds (name, value) as the newest entry. Pre: a matching
// ensureCapacity(headerSize) has already run in the same logical
// step (spec.md §4.1).
func (dt *dynamicTable) insert(name, value string, headerSize uint32) {
	e := dt.pool.pop()
	if e == nil {
		e = &headerEntry{}
	}

	e.name = name
	e.value = value
	e.hash = hashName(name)
	e.seq = dt.head.prev.seq - 1

	idx := dt.bucketIndex(e.hash)
	e.nextInBucket = dt.buckets[idx]
	dt.buckets[idx] = e

	e.prev = dt.head.prev
	e.next = &dt.head
	dt.head.prev.next = e
	dt.head.prev = e

	dt.currentSize += headerSize
	dt.inserts++
}

// setMaxSize updates maxSize and evicts from the oldest end until
// the size invariant holds again. Per spec.md §4.1 / §9 Open
// Question (i), this never emits the HPACK Dynamic Table Size Update
// signal itself — see (*Encoder).SetMaxHeaderTableSize in encoder.go
// for how a caller emits it.
func (dt *dynamicTable) setMaxSize(newMax uint32) {
	dt.maxSize = newMax
	for dt.currentSize > dt.maxSize && dt.head.next != &dt.head {
		dt.evictOldest()
	}
}

func (dt *dynamicTable) len() int {
	n := 0
	for e := dt.head.next; e != &dt.head; e = e.next {
		n++
	}
	return n
}
