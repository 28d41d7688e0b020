package abi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type demoSelector uint32

const (
	selectorFoo demoSelector = 0x12345678
	selectorBar demoSelector = 0xdeadbeef
)

func demoSelectorFromUint32(v uint32) (demoSelector, bool) {
	switch demoSelector(v) {
	case selectorFoo, selectorBar:
		return demoSelector(v), true
	default:
		return 0, false
	}
}

// TestReadSelector checks scenario S1: the first 4 bytes of input decode
// as a big-endian selector, and an unrecognized selector reverts.
func TestReadSelector(t *testing.T) {
	input := []byte{0x12, 0x34, 0x56, 0x78, 0xaa, 0xbb}
	sel, err := ReadSelector(input, demoSelectorFromUint32)
	require.NoError(t, err)
	require.Equal(t, selectorFoo, sel)

	_, err = ReadSelector([]byte{0x00, 0x00, 0x00, 0x01}, demoSelectorFromUint32)
	require.Error(t, err)

	_, err = ReadSelector([]byte{0x12, 0x34}, demoSelectorFromUint32)
	require.Error(t, err)
}

func TestNewSkipSelector(t *testing.T) {
	input := []byte{0x12, 0x34, 0x56, 0x78}
	out := Encode[U256, *U256](Uint64U256(7))
	r, err := NewSkipSelector(append(input, out...))
	require.NoError(t, err)
	v, err := Read[U256, *U256](r)
	require.NoError(t, err)
	require.Equal(t, uint64(7), v.Int.Uint64())

	_, err = NewSkipSelector([]byte{0x01, 0x02})
	require.Error(t, err)
}

func TestExpectArguments(t *testing.T) {
	out := Encode[U256, *U256](Uint64U256(1))
	r := New(append(out, out...))
	require.NoError(t, r.ExpectArguments(2))
	require.Error(t, r.ExpectArguments(3))
}

// TestReadPointer_OutOfBounds checks the pointer-safety invariant: an
// offset at or beyond the input length reverts rather than following a
// pointer off the end of the buffer.
func TestReadPointer_OutOfBounds(t *testing.T) {
	var word Word
	word[WordSize-1] = 0x20
	r := New(word[:])
	_, err := r.ReadPointer()
	require.Error(t, err)
	require.Contains(t, err.Error(), "pointer points out of bounds")
}

func TestReadPointer_TooLarge(t *testing.T) {
	var word Word
	for i := range word {
		word[i] = 0xff
	}
	r := New(word[:])
	_, err := r.ReadPointer()
	require.Error(t, err)
	require.Contains(t, err.Error(), "array offset is too large")
}

// TestRead_OutOfBoundsTruncation checks that reading a fixed-size word
// type from an input shorter than one word reverts, for the full range
// of "almost a word" short inputs.
func TestRead_OutOfBoundsTruncation(t *testing.T) {
	for _, k := range []int{1, 31, 32, 33} {
		data := make([]byte, k)
		if k < WordSize {
			_, err := Read[U256, *U256](New(data))
			require.Error(t, err)
		} else {
			_, err := Read[U256, *U256](New(data))
			require.NoError(t, err)
		}
	}
}

func TestReadRawBytesAndTillEnd(t *testing.T) {
	r := New([]byte{1, 2, 3, 4, 5})
	raw, err := r.ReadRawBytes(2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, raw)

	rest, err := r.ReadTillEnd()
	require.NoError(t, err)
	require.Equal(t, []byte{3, 4, 5}, rest)

	_, err = r.ReadRawBytes(1)
	require.Error(t, err)
}

// TestWriter_BuildIdempotence checks that building the same writer twice
// yields an identical byte slice (spec.md §8's Build idempotence
// property): resolved pointer data isn't mutated by a second Build call
// reprocessing an already-drained pending list.
func TestWriter_BuildIdempotence(t *testing.T) {
	w := New()
	Write[U256, *U256](w, Uint64U256(3))
	Write[Bytes, *Bytes](w, Bytes("hello"))

	first := w.Build()
	second := w.Build()
	require.Equal(t, first, second)
}

func TestWriter_Selector(t *testing.T) {
	w := NewWithSelector(0x12345678)
	Write[U256, *U256](w, Uint64U256(1))
	out := w.Build()
	require.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, out[:4])
	require.Len(t, out, 4+WordSize)
}
