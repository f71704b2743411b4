package http2

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// TestDecodeIndexedStatic covers the "indexed static" scenario: byte
// 0x82 alone resolves to :method: GET (RFC 7541 Section 6.1, static
// table index 2).
func TestDecodeIndexedStatic(t *testing.T) {
	d := NewDecoder(4096)
	fields, err := d.DecodeHeaderBlock([]byte{0x82})
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, HeaderField{Name: ":method", Value: "GET"}, fields[0])
}

// TestDecodeLiteralWithIncrementalIndexingRFCC21 decodes the RFC 7541
// Appendix C.2.1 vector and checks the entry lands in the dynamic
// table.
func TestDecodeLiteralWithIncrementalIndexingRFCC21(t *testing.T) {
	raw := decodeHex(t, "400a637573746f6d2d6b65790d637573746f6d2d686561646572")

	d := NewDecoder(4096)
	fields, err := d.DecodeHeaderBlock(raw)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, HeaderField{Name: "custom-key", Value: "custom-header"}, fields[0])

	entry, ok := d.dyn.Get(1)
	require.True(t, ok)
	assert.Equal(t, "custom-key", entry.Name)
}

// TestEncodeLiteralWithIncrementalIndexingHuffman checks a brand-new
// name/value pair is emitted as a literal-with-incremental-indexing
// representation, Huffman-coded, and round-trips through a decoder.
func TestEncodeLiteralWithIncrementalIndexingHuffman(t *testing.T) {
	e := NewEncoder(4096)
	f := HeaderField{Name: "custom-key", Value: "custom-value"}

	got := e.EncodeField(nil, f)
	require.NotEmpty(t, got)
	assert.Equal(t, byte(repLiteralIncremental), got[0]&0xc0)

	d := NewDecoder(4096)
	fields, err := d.DecodeHeaderBlock(got)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, f, fields[0])
}

// TestDecodeLiteralWithoutIndexingRFCC22 decodes the RFC 7541 Appendix
// C.2.2 vector, which must NOT affect the dynamic table.
func TestDecodeLiteralWithoutIndexingRFCC22(t *testing.T) {
	raw := decodeHex(t, "040c2f73616d706c652f70617468")

	d := NewDecoder(4096)
	fields, err := d.DecodeHeaderBlock(raw)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, HeaderField{Name: ":path", Value: "/sample/path"}, fields[0])
	assert.Equal(t, 0, d.dyn.Len())
}

// TestDecodeLiteralNeverIndexedRFCC23 decodes the RFC 7541 Appendix
// C.2.3 vector and checks the Sensitive bit is set.
func TestDecodeLiteralNeverIndexedRFCC23(t *testing.T) {
	raw := decodeHex(t, "100870617373776f726406736563726574")

	d := NewDecoder(4096)
	fields, err := d.DecodeHeaderBlock(raw)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "password", fields[0].Name)
	assert.Equal(t, "secret", fields[0].Value)
	assert.True(t, fields[0].Sensitive)
	assert.Equal(t, 0, d.dyn.Len())
}

func TestEncodeLiteralNeverIndexedDoesNotIndex(t *testing.T) {
	e := NewEncoder(4096)
	f := HeaderField{Name: "password", Value: "secret", Sensitive: true}

	got := e.EncodeField(nil, f)
	require.NotEmpty(t, got)
	assert.Equal(t, byte(repLiteralNeverIndexed), got[0]&0xf0)
	assert.Equal(t, 0, e.dyn.Len())

	d := NewDecoder(4096)
	fields, err := d.DecodeHeaderBlock(got)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, f, fields[0])
}

// TestDecodeHuffmanRequestRFCC41 decodes the RFC 7541 Appendix C.4.1
// Huffman-coded request header block.
func TestDecodeHuffmanRequestRFCC41(t *testing.T) {
	raw := decodeHex(t, "828684418cf1e3c2e5f23a6ba0ab90f4ff")

	d := NewDecoder(4096)
	fields, err := d.DecodeHeaderBlock(raw)
	require.NoError(t, err)

	want := []HeaderField{
		{Name: ":method", Value: "GET"},
		{Name: ":scheme", Value: "http"},
		{Name: ":path", Value: "/"},
		{Name: ":authority", Value: "www.example.com"},
	}
	assert.Equal(t, want, fields)
}

func TestEncodeDecodeRoundTripWithDynamicTable(t *testing.T) {
	fields := []HeaderField{
		{Name: ":method", Value: "GET"},
		{Name: ":path", Value: "/resource"},
		{Name: "custom-header", Value: "custom-value"},
		{Name: "custom-header", Value: "custom-value"},
	}

	e := NewEncoder(4096)
	block := e.EncodeHeaderBlock(fields)

	d := NewDecoder(4096)
	got, err := d.DecodeHeaderBlock(block)
	require.NoError(t, err)
	assert.Equal(t, fields, got)
}

func TestDynamicTableSizeUpdateRepresentation(t *testing.T) {
	e := NewEncoder(4096)
	update := e.SetMaxDynamicTableSize(100)

	d := NewDecoder(4096)
	fields, err := d.DecodeHeaderBlock(update)
	require.NoError(t, err)
	assert.Empty(t, fields)
	assert.Equal(t, 100, d.dyn.maxSize)
}

func TestDecodeIndexedHeaderZeroIsInvalid(t *testing.T) {
	d := NewDecoder(4096)
	_, err := d.DecodeHeaderBlock([]byte{0x80})
	require.Error(t, err)
	var hpackErr HPACKError
	require.ErrorAs(t, err, &hpackErr)
}

// TestDecodeIndexedHeaderWithEmptyValueIsRejected covers static index 1,
// :authority, whose default value is empty: RFC 7541 Section 6.1 permits
// this byte on the wire, but an indexed representation naming an entry
// with no value carries no usable header field.
func TestDecodeIndexedHeaderWithEmptyValueIsRejected(t *testing.T) {
	d := NewDecoder(4096)
	_, err := d.DecodeHeaderBlock([]byte{0x81})
	require.Error(t, err)
	var hpackErr HPACKError
	require.ErrorAs(t, err, &hpackErr)
}

func TestDecodeStringExceedingMaxLengthIsRejected(t *testing.T) {
	cfg := DefaultCodecConfig()
	cfg.MaxStringLength = 4
	d := NewDecoderWithConfig(cfg)

	e := NewEncoder(4096)
	block := e.EncodeField(nil, HeaderField{Name: "custom-key", Value: "custom-value"})

	_, err := d.DecodeHeaderBlock(block)
	require.Error(t, err)
	var hpackErr HPACKError
	require.ErrorAs(t, err, &hpackErr)
}

func TestDecodeRejectsMisplacedSizeUpdateWhenStrict(t *testing.T) {
	cfg := DefaultCodecConfig()
	cfg.StrictSizeUpdatePosition = true
	d := NewDecoderWithConfig(cfg)

	block := append([]byte{0x82}, decodeIntBytes(100)...)
	_, err := d.DecodeHeaderBlock(block)
	require.Error(t, err)
	var hpackErr HPACKError
	require.ErrorAs(t, err, &hpackErr)
}

func decodeIntBytes(max int) []byte {
	return appendInt(nil, uint64(max), 5, repDynamicTableSizeUpdate)
}
