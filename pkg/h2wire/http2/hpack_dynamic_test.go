package http2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicTableAddAndGet(t *testing.T) {
	dyn := newDynamicTable(4096)
	dyn.Add(HeaderField{Name: "custom-key", Value: "custom-value"})

	f, ok := dyn.Get(1)
	require.True(t, ok)
	assert.Equal(t, "custom-key", f.Name)
	assert.Equal(t, "custom-value", f.Value)
	assert.Equal(t, len("custom-key")+len("custom-value")+32, dyn.size)
}

func TestDynamicTableNewestIsIndexOne(t *testing.T) {
	dyn := newDynamicTable(4096)
	dyn.Add(HeaderField{Name: "a", Value: "1"})
	dyn.Add(HeaderField{Name: "b", Value: "2"})

	newest, ok := dyn.Get(1)
	require.True(t, ok)
	assert.Equal(t, "b", newest.Name)

	oldest, ok := dyn.Get(2)
	require.True(t, ok)
	assert.Equal(t, "a", oldest.Name)
}

func TestDynamicTableEvictsOldestOnOverflow(t *testing.T) {
	f := HeaderField{Name: "k", Value: "v"} // cost = 1+1+32 = 34
	dyn := newDynamicTable(34 * 2)
	dyn.Add(f)
	dyn.Add(f)
	assert.Equal(t, 2, dyn.Len())

	dyn.Add(f)
	assert.Equal(t, 2, dyn.Len(), "adding a third entry should evict the oldest to stay within budget")
}

func TestDynamicTableEntryLargerThanTableEmptiesIt(t *testing.T) {
	dyn := newDynamicTable(50)
	dyn.Add(HeaderField{Name: "k", Value: "v"})
	require.Equal(t, 1, dyn.Len())

	dyn.Add(HeaderField{Name: "too-big-to-fit", Value: "this single entry exceeds the table size on its own"})
	assert.Equal(t, 0, dyn.Len())
	assert.Equal(t, 0, dyn.size)
}

func TestDynamicTableSetMaxSizeEvicts(t *testing.T) {
	dyn := newDynamicTable(4096)
	dyn.Add(HeaderField{Name: "a", Value: "1"})
	dyn.Add(HeaderField{Name: "b", Value: "2"})
	require.Equal(t, 2, dyn.Len())

	dyn.SetMaxSize(34)
	assert.Equal(t, 1, dyn.Len(), "shrinking below both entries' combined cost evicts the oldest")
}

func TestDynamicTableFindExactAndNameOnly(t *testing.T) {
	dyn := newDynamicTable(4096)
	dyn.Add(HeaderField{Name: "x-custom", Value: "one"})
	dyn.Add(HeaderField{Name: "x-custom", Value: "two"})

	idx, exact := dyn.Find(HeaderField{Name: "x-custom", Value: "two"})
	assert.True(t, exact)
	assert.Equal(t, 1, idx)

	idx, exact = dyn.Find(HeaderField{Name: "x-custom", Value: "three"})
	assert.False(t, exact)
	assert.Equal(t, 1, idx, "newest entry with a matching name wins when no value matches")
}

func TestResolveIndexStaticAndDynamic(t *testing.T) {
	dyn := newDynamicTable(4096)
	dyn.Add(HeaderField{Name: "custom-key", Value: "custom-value"})

	f, err := resolveIndex(dyn, 2)
	require.NoError(t, err)
	assert.Equal(t, HeaderField{Name: ":method", Value: "GET"}, f)

	f, err = resolveIndex(dyn, staticTableLen+1)
	require.NoError(t, err)
	assert.Equal(t, "custom-key", f.Name)

	_, err = resolveIndex(dyn, staticTableLen+2)
	require.Error(t, err)
	var hpackErr HPACKError
	require.ErrorAs(t, err, &hpackErr)
}
