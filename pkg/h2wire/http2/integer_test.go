package http2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendIntRFCExamples(t *testing.T) {
	cases := []struct {
		name       string
		value      uint64
		prefixBits uint8
		top        byte
		want       []byte
	}{
		{"C.1.1 10 fits in 5-bit prefix", 10, 5, 0, []byte{10}},
		{"C.1.2 1337 needs continuation", 1337, 5, 0, []byte{31, 154, 10}},
		{"C.1.3 42 fits in 8-bit prefix", 42, 8, 0, []byte{42}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := appendInt(nil, c.value, c.prefixBits, c.top)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestDecodeIntFromRFCExamples(t *testing.T) {
	cases := []struct {
		name       string
		buf        []byte
		prefixBits uint8
		wantValue  uint64
		wantLen    int
	}{
		{"C.1.1", []byte{10}, 5, 10, 1},
		{"C.1.2", []byte{31, 154, 10}, 5, 1337, 3},
		{"C.1.3", []byte{42}, 8, 42, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, n, err := decodeIntFrom(c.buf, c.prefixBits)
			require.NoError(t, err)
			assert.Equal(t, c.wantValue, v)
			assert.Equal(t, c.wantLen, n)
		})
	}
}

func TestDecodeIntFromRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 30, 31, 127, 128, 16383, 16384, 1 << 32} {
		for _, prefix := range []uint8{1, 4, 5, 6, 7, 8} {
			enc := appendInt(nil, v, prefix, 0)
			got, n, err := decodeIntFrom(enc, prefix)
			require.NoError(t, err)
			assert.Equal(t, v, got)
			assert.Equal(t, len(enc), n)
		}
	}
}

func TestDecodeIntFromIncomplete(t *testing.T) {
	_, _, err := decodeIntFrom(nil, 5)
	require.Error(t, err)
	var incomplete IncompleteError
	require.ErrorAs(t, err, &incomplete)
}

func TestDecodeIntFromOverlongContinuation(t *testing.T) {
	buf := append([]byte{31}, make([]byte, maxContinuationBytes+1)...)
	for i := 1; i < len(buf); i++ {
		buf[i] = 0xff
	}
	_, _, err := decodeIntFrom(buf, 5)
	require.Error(t, err)
	var hpackErr HPACKError
	require.ErrorAs(t, err, &hpackErr)
}
