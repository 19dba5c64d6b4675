package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectEncodingSensitiveNeverInserted(t *testing.T) {
	dt := newDynamicTable(4096)
	d := selectEncoding(dt, noStaticHint, "authorization", "Bearer X", true)
	assert.Equal(t, formLiteralNeverIndexNewName, d.form)
	assert.False(t, d.insert)
}

func TestSelectEncodingSensitivePrefersStaticHint(t *testing.T) {
	dt := newDynamicTable(4096)
	d := selectEncoding(dt, 23, "authorization", "Bearer X", true)
	assert.Equal(t, formLiteralNeverIndexIndexedName, d.form)
	assert.Equal(t, uint64(23), d.index)
}

func TestSelectEncodingTableDisabled(t *testing.T) {
	dt := newDynamicTable(0)
	d := selectEncoding(dt, noStaticHint, "x-custom", "v", false)
	assert.Equal(t, formLiteralNoIndexNewName, d.form)
	assert.False(t, d.insert)
}

func TestSelectEncodingOversizeBypassesTable(t *testing.T) {
	dt := newDynamicTable(40)
	big := make([]byte, 67) // len("x") + 67 + 32 == 100, matching spec.md scenario S4
	d := selectEncoding(dt, noStaticHint, "x", string(big), false)
	assert.Equal(t, formLiteralNoIndexNewName, d.form)
	assert.False(t, d.insert)
}

func TestSelectEncodingStaticPreferredOverDynamicName(t *testing.T) {
	dt := newDynamicTable(4096)
	sz := entrySize("content-type", "text/plain")
	dt.ensureCapacity(sz)
	dt.insert("content-type", "text/plain", sz)

	// content-type has a static name entry (index 31); even though
	// the dynamic table also has a name match, static must win.
	d := selectEncoding(dt, 31, "content-type", "application/json", false)
	assert.Equal(t, formLiteralIncrementalIndexedName, d.form)
	assert.Equal(t, uint64(31), d.index)
}

func TestSelectEncodingExactHitIsIndexed(t *testing.T) {
	dt := newDynamicTable(4096)
	sz := entrySize("custom-key", "custom-value")
	dt.ensureCapacity(sz)
	dt.insert("custom-key", "custom-value", sz)

	d := selectEncoding(dt, noStaticHint, "custom-key", "custom-value", false)
	assert.Equal(t, formIndexed, d.form)
	assert.Equal(t, uint64(staticTableSize+1), d.index)
	assert.False(t, d.insert)
}

func TestSelectEncodingMissInsertsWithIncrementalIndexing(t *testing.T) {
	dt := newDynamicTable(4096)
	d := selectEncoding(dt, noStaticHint, "custom-key", "custom-value", false)
	assert.Equal(t, formLiteralIncrementalNewName, d.form)
	assert.True(t, d.insert)
}
