package abi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTuple2_StaticRoundTrip checks a tuple with only static fields has
// no leading pointer and packs fields back to back.
func TestTuple2_StaticRoundTrip(t *testing.T) {
	tup := Tuple2[U256, *U256, Bool, *Bool]{VA: Uint64U256(9), VB: true}
	require.True(t, HasStaticSize[Tuple2[U256, *U256, Bool, *Bool], *Tuple2[U256, *U256, Bool, *Bool]]())

	out := Encode[Tuple2[U256, *U256, Bool, *Bool], *Tuple2[U256, *U256, Bool, *Bool]](tup)
	require.Len(t, out, WordSize*2)

	got, err := Read[Tuple2[U256, *U256, Bool, *Bool], *Tuple2[U256, *U256, Bool, *Bool]](New(out))
	require.NoError(t, err)
	require.Equal(t, uint64(9), got.VA.Int.Uint64())
	require.True(t, bool(got.VB))
}

// TestEncodeArguments_Uint256Bytes checks scenario S6: EncodeArguments of
// (U256(5), Bytes("ok")) matches the textbook Solidity layout for
// function(uint256,bytes): [5][offset=64][length=2]["ok", padded].
func TestEncodeArguments_Uint256Bytes(t *testing.T) {
	tup := Tuple2[U256, *U256, Bytes, *Bytes]{VA: Uint64U256(5), VB: Bytes("ok")}
	out := EncodeArguments[Tuple2[U256, *U256, Bytes, *Bytes], *Tuple2[U256, *U256, Bytes, *Bytes]](tup)
	require.Len(t, out, WordSize*4)

	var five, offset, length Word
	five[WordSize-1] = 5
	offset[WordSize-1] = 0x40
	length[WordSize-1] = 2
	require.Equal(t, five[:], out[0:32])
	require.Equal(t, offset[:], out[32:64])
	require.Equal(t, length[:], out[64:96])
	require.Equal(t, []byte("ok"), out[96:98])
	require.Equal(t, make([]byte, 30), out[98:128])
}

// TestTuple3_Nested exercises a dynamic tuple whose middle field is bytes
// and whose last field is a dynamic array, mirroring spec.md §8's
// (U256, bytes, U256[]) round-trip case.
func TestTuple3_Nested(t *testing.T) {
	tup := Tuple3[U256, *U256, Bytes, *Bytes, Slice[U256, *U256], *Slice[U256, *U256]]{
		VA: Uint64U256(42),
		VB: Bytes("hello world, this spans more than one word"),
		VC: Slice[U256, *U256]{Uint64U256(1), Uint64U256(2), Uint64U256(3)},
	}

	out := Encode[
		Tuple3[U256, *U256, Bytes, *Bytes, Slice[U256, *U256], *Slice[U256, *U256]],
		*Tuple3[U256, *U256, Bytes, *Bytes, Slice[U256, *U256], *Slice[U256, *U256]],
	](tup)

	got, err := Read[
		Tuple3[U256, *U256, Bytes, *Bytes, Slice[U256, *U256], *Slice[U256, *U256]],
		*Tuple3[U256, *U256, Bytes, *Bytes, Slice[U256, *U256], *Slice[U256, *U256]],
	](New(out))
	require.NoError(t, err)

	require.Equal(t, uint64(42), got.VA.Int.Uint64())
	require.Equal(t, tup.VB, got.VB)
	require.Equal(t, tup.VC, got.VC)
}

// TestTuple18_Arity checks the largest hand-unrolled arity compiles and
// round-trips end to end; it is the Go analogue of the source crate's
// impl_for_tuples(1, 18) upper bound.
func TestTuple18_Arity(t *testing.T) {
	type T = Tuple18[
		Uint8, *Uint8,
		Uint8, *Uint8,
		Uint8, *Uint8,
		Uint8, *Uint8,
		Uint8, *Uint8,
		Uint8, *Uint8,
		Uint8, *Uint8,
		Uint8, *Uint8,
		Uint8, *Uint8,
		Uint8, *Uint8,
		Uint8, *Uint8,
		Uint8, *Uint8,
		Uint8, *Uint8,
		Uint8, *Uint8,
		Uint8, *Uint8,
		Uint8, *Uint8,
		Uint8, *Uint8,
		U256, *U256,
	]

	tup := T{
		VA: 1, VB: 2, VC: 3, VD: 4, VE: 5, VF: 6, VG: 7, VH: 8, VI: 9, VJ: 10,
		VK: 11, VL: 12, VM: 13, VN: 14, VO: 15, VP: 16, VQ: 17,
		VR: Uint64U256(18),
	}

	require.True(t, HasStaticSize[T, *T]())
	out := Encode[T, *T](tup)
	require.Len(t, out, WordSize*18)

	got, err := Read[T, *T](New(out))
	require.NoError(t, err)
	require.Equal(t, tup.VA, got.VA)
	require.Equal(t, uint64(18), got.VR.Int.Uint64())
}
