package http2

// dynamicTable is the per-connection (or per-stream, in the codec's
// bounded cache mode) HPACK dynamic table: a FIFO of header fields
// evicted oldest-first once the table's byte cost exceeds maxSize. Cost
// accounting follows RFC 7541 Section 4.1: each entry costs
// len(name)+len(value)+32 bytes, never the length of the encoded form.
//
// entries is kept as a plain slice with entries[0] the most recently
// added field, matching the table's own indexing rule (RFC 7541 Section
// 2.3.3: dynamic index 1 is the newest entry). Eviction trims off the
// tail.
type dynamicTable struct {
	entries []HeaderField
	size    int
	maxSize int
}

func newDynamicTable(maxSize int) *dynamicTable {
	return &dynamicTable{maxSize: maxSize}
}

// Add inserts f as the newest entry, evicting the oldest entries as
// needed to stay within maxSize. A field whose own size exceeds maxSize
// empties the table entirely without being stored (RFC 7541 Section
// 4.4).
func (t *dynamicTable) Add(f HeaderField) {
	cost := f.size()
	if cost > t.maxSize {
		t.entries = t.entries[:0]
		t.size = 0
		return
	}

	t.entries = append([]HeaderField{f}, t.entries...)
	t.size += cost
	t.evictOldest()
}

func (t *dynamicTable) evictOldest() {
	for t.size > t.maxSize && len(t.entries) > 0 {
		last := t.entries[len(t.entries)-1]
		t.entries = t.entries[:len(t.entries)-1]
		t.size -= last.size()
	}
}

// Get returns the dynamic-table entry at the given 1-based dynamic
// index (so caller-facing index 62 maps to Get(1)).
func (t *dynamicTable) Get(index int) (HeaderField, bool) {
	if index < 1 || index > len(t.entries) {
		return HeaderField{}, false
	}
	return t.entries[index-1], true
}

// Find returns the 1-based dynamic index of the newest entry matching f
// exactly, or of the newest entry matching only f.Name if no exact
// match exists.
func (t *dynamicTable) Find(f HeaderField) (index int, exact bool) {
	nameIdx := 0
	for i, e := range t.entries {
		if e.Name != f.Name {
			continue
		}
		if e.Value == f.Value {
			return i + 1, true
		}
		if nameIdx == 0 {
			nameIdx = i + 1
		}
	}
	if nameIdx != 0 {
		return nameIdx, false
	}
	return 0, false
}

// SetMaxSize applies a new size bound, evicting entries if the table is
// now over budget. It is called both when the local encoder configures
// its peer's advertised bound and when a dynamic-table-size-update
// representation sets it from a decoded header block.
func (t *dynamicTable) SetMaxSize(max int) {
	t.maxSize = max
	t.evictOldest()
}

// Len reports the number of entries currently held.
func (t *dynamicTable) Len() int { return len(t.entries) }

const staticTableLen = len(staticTable)

// resolveIndex maps a combined HPACK index (as seen on the wire, where
// 1..staticTableLen are static and staticTableLen+1.. are dynamic) to
// the referenced field.
func resolveIndex(dyn *dynamicTable, index int) (HeaderField, error) {
	if index < 1 {
		return HeaderField{}, InvalidIndexedHeader(index)
	}
	if index <= staticTableLen {
		return staticTable[index-1], nil
	}
	f, ok := dyn.Get(index - staticTableLen)
	if !ok {
		return HeaderField{}, IndexOutOfRange(index, staticTableLen+dyn.Len())
	}
	return f, nil
}

// findIndex looks up f across the static table first, then the dynamic
// table, returning a combined wire index.
func findIndex(dyn *dynamicTable, f HeaderField) (index int, exact bool) {
	if idx, ok := FindStaticIndex(f); ok {
		return idx, true
	}
	if idx, ok := staticNameIndex[f.Name]; ok {
		if dynIdx, dynExact := dyn.Find(f); dynExact {
			return staticTableLen + dynIdx, true
		}
		return idx, false
	}
	if dynIdx, dynExact := dyn.Find(f); dynIdx != 0 {
		return staticTableLen + dynIdx, dynExact
	}
	return 0, false
}
