package http2

// Canonical Huffman code lengths for the static code defined in RFC 7541
// Appendix B, one entry per byte value 0-255. The codes themselves are
// derived from these lengths during package variable initialization by
// buildHuffmanCodes, using the
// same canonical assignment (shorter codes first, ties broken by symbol
// value) that produced the RFC table in the first place; the EOS symbol
// (257th entry, value 256) is handled separately since it is never
// emitted as decoder output.
var huffmanCodeLengths = [256]uint8{
	13, 23, 28, 28, 28, 28, 28, 28,
	28, 24, 30, 28, 28, 30, 28, 28,
	28, 28, 28, 28, 28, 28, 30, 28,
	28, 28, 28, 28, 28, 28, 28, 28,
	6, 10, 10, 12, 13, 6, 8, 11,
	10, 10, 8, 11, 8, 6, 6, 6,
	5, 5, 5, 6, 6, 6, 6, 6,
	6, 6, 7, 8, 15, 6, 12, 10,
	13, 6, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7,
	8, 7, 8, 13, 19, 13, 14, 6,
	15, 5, 6, 5, 6, 5, 6, 6,
	6, 5, 7, 7, 6, 6, 6, 5,
	6, 7, 6, 5, 5, 6, 7, 7,
	7, 7, 7, 15, 11, 14, 13, 28,
	20, 22, 20, 20, 22, 22, 22, 23,
	22, 23, 23, 23, 23, 23, 24, 23,
	24, 24, 22, 23, 24, 23, 23, 23,
	23, 21, 22, 23, 22, 23, 23, 24,
	22, 21, 20, 22, 22, 23, 23, 21,
	23, 22, 22, 24, 21, 22, 23, 23,
	21, 21, 22, 21, 23, 22, 23, 23,
	20, 22, 22, 22, 23, 22, 22, 23,
	26, 26, 20, 19, 22, 23, 22, 25,
	26, 26, 26, 27, 27, 26, 24, 25,
	19, 21, 26, 27, 27, 26, 27, 24,
	21, 21, 26, 26, 28, 27, 27, 27,
	20, 24, 20, 21, 22, 21, 21, 23,
	22, 22, 25, 25, 24, 24, 26, 23,
	26, 27, 26, 26, 27, 27, 27, 27,
	27, 28, 27, 27, 27, 27, 27, 26,
}

// huffmanEOSBits is the bit length of the end-of-string code, the longest
// length in the table (symbols 10, 13 and 22 share it). The EOS code is
// the last code of that length and is all ones, so a run of 1-bits
// shorter than a byte is always a prefix of it and safe as padding.
const huffmanEOSBits = 30

// huffmanCodes holds the code value for each of the 256 byte symbols. It
// is set by a package variable initializer, which Go runs before any init
// function, so the decode table built in huffman.go's init sees it filled.
var huffmanCodes = buildHuffmanCodes()

func buildHuffmanCodes() [256]uint32 {
	var codes [256]uint32
	var lengthCounts [huffmanEOSBits + 1]uint32
	for _, l := range huffmanCodeLengths {
		lengthCounts[l]++
	}

	var nextCode [huffmanEOSBits + 1]uint32
	var code uint32
	for bits := 1; bits <= huffmanEOSBits; bits++ {
		code = (code + lengthCounts[bits-1]) << 1
		nextCode[bits] = code
	}

	for sym, l := range huffmanCodeLengths {
		codes[sym] = nextCode[l]
		nextCode[l]++
	}
	return codes
}
