package http2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindStaticIndexExactMatch(t *testing.T) {
	idx, exact := FindStaticIndex(HeaderField{Name: ":method", Value: "GET"})
	assert.True(t, exact)
	assert.Equal(t, 2, idx)
}

func TestFindStaticIndexNameOnlyMatch(t *testing.T) {
	idx, exact := FindStaticIndex(HeaderField{Name: "accept", Value: "text/html"})
	assert.False(t, exact)
	assert.Equal(t, 19, idx)
}

func TestFindStaticIndexNoMatch(t *testing.T) {
	idx, exact := FindStaticIndex(HeaderField{Name: "x-custom", Value: "v"})
	assert.False(t, exact)
	assert.Equal(t, 0, idx)
}

func TestStaticTableHas61Entries(t *testing.T) {
	assert.Len(t, staticTable, 61)
	assert.Equal(t, HeaderField{Name: ":authority"}, staticTable[0])
	assert.Equal(t, HeaderField{Name: "www-authenticate"}, staticTable[60])
}
