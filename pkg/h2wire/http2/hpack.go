package http2

import "fmt"

// HPACK header block codec (RFC 7541). Encoder and Decoder each own a
// dynamic table; a Decoder's table tracks the *peer's* encoder state,
// and vice versa, so the two must be kept in lockstep exactly as RFC
// 7541 Section 2.2 requires: every header block, even one the caller
// never intends to emit to the wire, has to run through the decoder
// that mirrors it or the two tables diverge.

// Representation tag bits (RFC 7541 Section 6).
const (
	repIndexed                = 0x80 // 1xxxxxxx, 7-bit prefix
	repLiteralIncremental     = 0x40 // 01xxxxxx, 6-bit prefix
	repLiteralNeverIndexed    = 0x10 // 0001xxxx, 4-bit prefix
	repLiteralWithoutIndex    = 0x00 // 0000xxxx, 4-bit prefix
	repDynamicTableSizeUpdate = 0x20 // 001xxxxx, 5-bit prefix

	huffmanFlag = 0x80 // high bit of a string literal's length prefix
)

// byteReader walks a header block without copying it. It exists
// because the integer and string decoders need to peek ahead (the
// Huffman flag bit, the length prefix) without allocating a sub-slice
// header for every lookahead.
type byteReader struct {
	data []byte
	pos  int
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data}
}

func (r *byteReader) remaining() []byte {
	return r.data[r.pos:]
}

func (r *byteReader) len() int { return len(r.data) - r.pos }

func (r *byteReader) peekByte() (byte, bool) {
	if r.pos >= len(r.data) {
		return 0, false
	}
	return r.data[r.pos], true
}

func (r *byteReader) advance(n int) {
	r.pos += n
}

func (r *byteReader) readN(n int) ([]byte, error) {
	if r.len() < n {
		return nil, IncompleteError{Need: n - r.len()}
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Encoder encodes header lists into HPACK header blocks, maintaining
// the dynamic table state a matching Decoder must mirror. Literal
// string values and names are always Huffman-coded.
type Encoder struct {
	dyn *dynamicTable
}

// NewEncoder returns an Encoder whose dynamic table starts at
// maxDynamicTableSize bytes.
func NewEncoder(maxDynamicTableSize int) *Encoder {
	return &Encoder{dyn: newDynamicTable(maxDynamicTableSize)}
}

// SetMaxDynamicTableSize resizes the encoder's table and returns the
// dynamic-table-size-update representation the caller must prepend to
// the next header block so the decoder applies the same bound.
func (e *Encoder) SetMaxDynamicTableSize(max int) []byte {
	e.dyn.SetMaxSize(max)
	return appendInt(nil, uint64(max), 5, repDynamicTableSizeUpdate)
}

// EncodeField appends the HPACK representation of f to dst and returns
// the extended slice. Sensitive fields are always encoded as literal
// never indexed and are never added to the dynamic table.
func (e *Encoder) EncodeField(dst []byte, f HeaderField) []byte {
	if f.Sensitive {
		return e.encodeLiteral(dst, f, repLiteralNeverIndexed, 4, false)
	}

	index, exact := findIndex(e.dyn, f)
	if exact {
		return appendInt(dst, uint64(index), 7, repIndexed)
	}

	dst = e.encodeLiteralWithNameIndex(dst, f, index, repLiteralIncremental, 6, true)
	e.dyn.Add(f)
	return dst
}

// EncodeHeaderBlock encodes fields in order into a single header block.
func (e *Encoder) EncodeHeaderBlock(fields []HeaderField) []byte {
	var dst []byte
	for _, f := range fields {
		dst = e.EncodeField(dst, f)
	}
	return dst
}

func (e *Encoder) encodeLiteral(dst []byte, f HeaderField, top byte, prefixBits uint8, index bool) []byte {
	return e.encodeLiteralWithNameIndex(dst, f, 0, top, prefixBits, index)
}

// encodeLiteralWithNameIndex writes a literal representation, referring
// to nameIndex for the name when nonzero (an indexed name) or encoding
// the name as a string literal when zero.
func (e *Encoder) encodeLiteralWithNameIndex(dst []byte, f HeaderField, nameIndex int, top byte, prefixBits uint8, _ bool) []byte {
	dst = appendInt(dst, uint64(nameIndex), prefixBits, top)
	if nameIndex == 0 {
		dst = e.encodeString(dst, f.Name)
	}
	return e.encodeString(dst, f.Value)
}

func (e *Encoder) encodeString(dst []byte, s string) []byte {
	dst = appendInt(dst, uint64(HuffmanEncodeLen(s)), 7, huffmanFlag)
	return append(dst, HuffmanEncode(s)...)
}

// Decoder decodes HPACK header blocks into header lists, maintaining
// the dynamic table state a matching Encoder must mirror.
type Decoder struct {
	dyn                      *dynamicTable
	maxStringLength          int
	strictSizeUpdatePosition bool
}

// NewDecoder returns a Decoder whose dynamic table starts at
// maxDynamicTableSize bytes, with no string length ceiling and no
// position restriction on dynamic-table-size-update representations.
// Most callers should use NewDecoderWithConfig instead.
func NewDecoder(maxDynamicTableSize int) *Decoder {
	return &Decoder{dyn: newDynamicTable(maxDynamicTableSize)}
}

// NewDecoderWithConfig returns a Decoder governed by cfg: string literals
// longer than cfg.MaxStringLength are rejected, and if
// cfg.StrictSizeUpdatePosition is set, a dynamic-table-size-update
// representation appearing anywhere but the start of the header block is
// rejected.
func NewDecoderWithConfig(cfg CodecConfig) *Decoder {
	return &Decoder{
		dyn:                      newDynamicTable(cfg.MaxDynamicTableSize),
		maxStringLength:          cfg.MaxStringLength,
		strictSizeUpdatePosition: cfg.StrictSizeUpdatePosition,
	}
}

// SetMaxDynamicTableSize applies a bound the peer has communicated out
// of band (for example via SETTINGS_HEADER_TABLE_SIZE), independent of
// any dynamic-table-size-update representation seen in a header block.
func (d *Decoder) SetMaxDynamicTableSize(max int) {
	d.dyn.SetMaxSize(max)
}

// DecodeHeaderBlock decodes a complete header block into a header list,
// in wire order.
func (d *Decoder) DecodeHeaderBlock(data []byte) ([]HeaderField, error) {
	r := newByteReader(data)
	var fields []HeaderField
	sawRepresentation := false

	for r.len() > 0 {
		b, _ := r.peekByte()

		switch {
		case b&repIndexed != 0:
			f, err := d.decodeIndexed(r)
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
			sawRepresentation = true

		case b&0xc0 == repLiteralIncremental:
			f, err := d.decodeLiteral(r, 6, true)
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
			sawRepresentation = true

		case b&0xe0 == repDynamicTableSizeUpdate:
			if d.strictSizeUpdatePosition && sawRepresentation {
				return nil, HPACKError{Err: fmt.Errorf("hpack: dynamic table size update must precede all header representations")}
			}
			size, n, err := decodeIntFrom(r.remaining(), 5)
			if err != nil {
				return nil, err
			}
			r.advance(n)
			d.dyn.SetMaxSize(int(size))

		case b&0xf0 == repLiteralNeverIndexed:
			f, err := d.decodeLiteral(r, 4, false)
			if err != nil {
				return nil, err
			}
			f.Sensitive = true
			fields = append(fields, f)
			sawRepresentation = true

		case b&0xf0 == repLiteralWithoutIndex:
			f, err := d.decodeLiteral(r, 4, false)
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
			sawRepresentation = true

		default:
			return nil, HPACKError{Err: ErrInvalidRepresentation}
		}
	}

	return fields, nil
}

func (d *Decoder) decodeIndexed(r *byteReader) (HeaderField, error) {
	index, n, err := decodeIntFrom(r.remaining(), 7)
	if err != nil {
		return HeaderField{}, err
	}
	r.advance(n)
	if index == 0 {
		return HeaderField{}, InvalidIndexedHeader(0)
	}
	f, err := resolveIndex(d.dyn, int(index))
	if err != nil {
		return HeaderField{}, err
	}
	if f.Value == "" {
		return HeaderField{}, IndexedHeaderWithNoValue(int(index))
	}
	return f, nil
}

func (d *Decoder) decodeLiteral(r *byteReader, prefixBits uint8, index bool) (HeaderField, error) {
	nameIndex, n, err := decodeIntFrom(r.remaining(), prefixBits)
	if err != nil {
		return HeaderField{}, err
	}
	r.advance(n)

	var name string
	if nameIndex == 0 {
		name, err = d.decodeString(r)
		if err != nil {
			return HeaderField{}, err
		}
	} else {
		f, err := resolveIndex(d.dyn, int(nameIndex))
		if err != nil {
			return HeaderField{}, err
		}
		name = f.Name
	}

	value, err := d.decodeString(r)
	if err != nil {
		return HeaderField{}, err
	}

	f := HeaderField{Name: name, Value: value}
	if index {
		d.dyn.Add(f)
	}
	return f, nil
}

func (d *Decoder) decodeString(r *byteReader) (string, error) {
	b, ok := r.peekByte()
	if !ok {
		return "", IncompleteError{Need: 1}
	}
	huffman := b&huffmanFlag != 0

	length, n, err := decodeIntFrom(r.remaining(), 7)
	if err != nil {
		return "", err
	}
	r.advance(n)

	if d.maxStringLength > 0 && int(length) > d.maxStringLength {
		return "", HPACKError{Err: fmt.Errorf("hpack: string length %d exceeds maximum %d", length, d.maxStringLength)}
	}

	raw, err := r.readN(int(length))
	if err != nil {
		return "", HPACKError{Err: ErrTruncatedBlock}
	}

	if !huffman {
		return string(raw), nil
	}
	return HuffmanDecode(raw)
}
