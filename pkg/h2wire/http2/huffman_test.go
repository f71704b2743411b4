package http2

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuffmanRoundTripASCII(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"www.example.com",
		"no-cache",
		"custom-key",
		"custom-value",
		"The quick brown fox jumps over the lazy dog.",
	}
	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			encoded := HuffmanEncode(s)
			assert.Equal(t, HuffmanEncodeLen(s), len(encoded))

			decoded, err := HuffmanDecode(encoded)
			require.NoError(t, err)
			assert.Equal(t, s, decoded)
		})
	}
}

// TestHuffmanRFCExampleC41 decodes the literal RFC 7541 Appendix C.4.1
// wire bytes for the Huffman-coded string "www.example.com".
func TestHuffmanRFCExampleC41(t *testing.T) {
	raw, err := hex.DecodeString("f1e3c2e5f23a6ba0ab90f4ff")
	require.NoError(t, err)

	decoded, err := HuffmanDecode(raw)
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", decoded)
}

func TestHuffmanEncodePadsWithOnes(t *testing.T) {
	// "a" has a 5-bit code, so a single-character encode leaves 3 pad
	// bits that must be set to 1.
	encoded := HuffmanEncode("a")
	require.Len(t, encoded, 1)
	assert.Equal(t, byte(0x07), encoded[0]&0x07)
}

func TestHuffmanDecodeRejectsInvalidPadding(t *testing.T) {
	// A single byte whose bits can't possibly resolve to a valid
	// trailing EOS prefix: a short code followed by zero padding bits
	// instead of all-ones.
	_, err := HuffmanDecode([]byte{0x00})
	require.Error(t, err)
	var hpackErr HPACKError
	require.ErrorAs(t, err, &hpackErr)
}

func TestHuffmanDecodeRejectsTooManyTrailingOnes(t *testing.T) {
	// No code is 8 bits of all ones, so 0xff by itself is pure padding,
	// and 8 bits is longer than the 7-bit max valid padding run: it must
	// be rejected.
	_, err := HuffmanDecode([]byte{0xff})
	require.Error(t, err)
}
