package hpack

// noStaticHint is the sentinel spec.md §4.2 calls `static_hint == -1`:
// the producer has no known-header tag for this header.
const noStaticHint = int64(-1)

// normalizeHint maps the zero value of Header.StaticHint (what a
// caller gets by leaving the field unset) onto noStaticHint. Wire
// index 0 is never valid — static and dynamic indices both start at
// 1 — so treating an unset field as "no hint" rather than "index 0"
// keeps a Header built without NoStaticHint still correct.
func normalizeHint(hint int64) int64 {
	if hint <= 0 {
		return noStaticHint
	}
	return hint
}

// form identifies which of the HPACK wire encodings the selector
// picked for a header.
type form int

const (
	formIndexed form = iota
	formLiteralIncrementalIndexedName
	formLiteralIncrementalNewName
	formLiteralNoIndexIndexedName
	formLiteralNoIndexNewName
	formLiteralNeverIndexIndexedName
	formLiteralNeverIndexNewName
)

// decision is the selector's pure output: what to write and whether
// a table insertion should follow a successful write.
type decision struct {
	form       form
	index      uint64 // meaningful for the *IndexedName / formIndexed variants
	insert     bool
	headerSize uint32
}

// selectEncoding implements the six-form decision tree of spec.md
// §4.2. It does not mutate dt or write any bytes; callers apply the
// decision (write, then insert on success) themselves so a failed
// write never corrupts table state.
func selectEncoding(dt *dynamicTable, staticHint int64, name, value string, sensitive bool) decision {
	headerSize := entrySize(name, value)

	// 1. Sensitive path: never indexed, never inserted.
	if sensitive {
		if staticHint != noStaticHint {
			return decision{form: formLiteralNeverIndexIndexedName, index: uint64(staticHint), headerSize: headerSize}
		}
		if idx, ok := dt.lookupName(name); ok {
			return decision{form: formLiteralNeverIndexIndexedName, index: idx, headerSize: headerSize}
		}
		return decision{form: formLiteralNeverIndexNewName, headerSize: headerSize}
	}

	// 2. Dynamic table disabled: literal without indexing, table
	// untouched (not even consulted for a name match).
	if dt.maxSize == 0 {
		if staticHint != noStaticHint {
			return decision{form: formLiteralNoIndexIndexedName, index: uint64(staticHint), headerSize: headerSize}
		}
		return decision{form: formLiteralNoIndexNewName, headerSize: headerSize}
	}

	// 3. Oversize: would force a full-table flush to insert, so don't.
	if headerSize > dt.maxSize {
		if staticHint != noStaticHint {
			return decision{form: formLiteralNoIndexIndexedName, index: uint64(staticHint), headerSize: headerSize}
		}
		if idx, ok := dt.lookupName(name); ok {
			return decision{form: formLiteralNoIndexIndexedName, index: idx, headerSize: headerSize}
		}
		return decision{form: formLiteralNoIndexNewName, headerSize: headerSize}
	}

	// 4. Normal path.
	if e, ok := dt.lookupNameAndValue(name, value); ok {
		return decision{form: formIndexed, index: dt.wireIndex(e), headerSize: headerSize}
	}
	if staticHint != noStaticHint {
		return decision{form: formLiteralIncrementalIndexedName, index: uint64(staticHint), insert: true, headerSize: headerSize}
	}
	if idx, ok := dt.lookupName(name); ok {
		return decision{form: formLiteralIncrementalIndexedName, index: idx, insert: true, headerSize: headerSize}
	}
	return decision{form: formLiteralIncrementalNewName, insert: true, headerSize: headerSize}
}

// write renders d into dst for the given (name, value), returning
// the bytes written and whether it fit.
func (d decision) write(dst []byte, name, value string) (int, bool) {
	switch d.form {
	case formIndexed:
		return encodeIndexedHeaderField(dst, d.index)
	case formLiteralIncrementalIndexedName:
		return encodeLiteralIndexedName(dst, flagLiteralWithIndexing, 6, d.index, value)
	case formLiteralIncrementalNewName:
		return encodeLiteralNewName(dst, flagLiteralWithIndexing, name, value)
	case formLiteralNoIndexIndexedName:
		return encodeLiteralIndexedName(dst, flagLiteralWithoutIndex, 4, d.index, value)
	case formLiteralNoIndexNewName:
		return encodeLiteralNewName(dst, flagLiteralWithoutIndex, name, value)
	case formLiteralNeverIndexIndexedName:
		return encodeLiteralIndexedName(dst, flagLiteralNeverIndexed, 4, d.index, value)
	case formLiteralNeverIndexNewName:
		return encodeLiteralNewName(dst, flagLiteralNeverIndexed, name, value)
	default:
		return 0, false
	}
}
