package abi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBytes_RoundTrip checks dynamic bytes at the lengths called out by
// spec.md §8, including the exact expected encoded length
// 64 + ceil(|b|/32)*32 (32 for the pointer, 32 for the length, then the
// padded body).
func TestBytes_RoundTrip(t *testing.T) {
	lengths := []int{0, 1, 31, 32, 33, 63, 64, 1024}
	for _, n := range lengths {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i)
		}

		out := Encode[Bytes, *Bytes](data)
		padded := ((n + WordSize - 1) / WordSize) * WordSize
		require.Len(t, out, 64+padded)

		got, err := Read[Bytes, *Bytes](New(out))
		require.NoError(t, err)
		require.Equal(t, Bytes(data), got)
	}
}

func TestString_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "dave", "this string is longer than one word of thirty-two bytes"} {
		out := Encode[String, *String](String(s))
		got, err := Read[String, *String](New(out))
		require.NoError(t, err)
		require.Equal(t, String(s), got)
	}
}

func TestBytes_AsString(t *testing.T) {
	b := Bytes("hello")
	s, err := b.AsString()
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	invalid := Bytes([]byte{0xff, 0xfe, 0xfd})
	_, err = invalid.AsString()
	require.Error(t, err)
}

// TestBytes_OutOfBoundsTruncation checks that a length-prefixed bytes
// value claiming more data than is actually present yields a bounds
// error, never a truncated value.
func TestBytes_OutOfBoundsTruncation(t *testing.T) {
	for _, k := range []int{1, 31, 32, 33} {
		w := New()
		Write[U256, *U256](w, Uint64U256(uint64(k+1)))
		w.writeRaw(make([]byte, k))
		out := w.Build()

		full := New()
		full.WritePointer(out)
		encoded := full.Build()

		_, err := Read[Bytes, *Bytes](New(encoded))
		require.Error(t, err)
	}
}

// TestEncodeArguments_DaveTuple checks scenario S4: EncodeArguments of a
// 1-tuple wrapping Bytes("dave") strips the outer pointer word a bare
// Encode would emit, leaving exactly the textbook Solidity ABI encoding
// of a single `bytes` argument: [offset=0x20][length=4]["dave", padded].
func TestEncodeArguments_DaveTuple(t *testing.T) {
	tup := Tuple1[Bytes, *Bytes]{VA: Bytes("dave")}
	out := EncodeArguments[Tuple1[Bytes, *Bytes], *Tuple1[Bytes, *Bytes]](tup)

	require.Len(t, out, WordSize*3)

	var offsetWord, lengthWord Word
	offsetWord[WordSize-1] = 0x20
	lengthWord[WordSize-1] = 0x04
	require.Equal(t, offsetWord[:], out[0:32])
	require.Equal(t, lengthWord[:], out[32:64])
	require.Equal(t, []byte("dave"), out[64:68])
	require.Equal(t, make([]byte, 28), out[68:96])
}
