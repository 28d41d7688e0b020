package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

// TestUint_RoundTrip covers every fixed-width unsigned integer: encode
// then decode must return the original value (spec.md §8 property 1).
func TestUint_RoundTrip(t *testing.T) {
	t.Run("Uint8", func(t *testing.T) {
		for _, v := range []uint8{0, 1, 0xFF} {
			out := Encode[Uint8, *Uint8](Uint8(v))
			require.Len(t, out, WordSize)
			got, err := Read[Uint8, *Uint8](New(out))
			require.NoError(t, err)
			require.Equal(t, Uint8(v), got)
		}
	})
	t.Run("Uint16", func(t *testing.T) {
		for _, v := range []uint16{0, 1, 0xFF, 0xFFFF} {
			out := Encode[Uint16, *Uint16](Uint16(v))
			got, err := Read[Uint16, *Uint16](New(out))
			require.NoError(t, err)
			require.Equal(t, Uint16(v), got)
		}
	})
	t.Run("Uint32", func(t *testing.T) {
		for _, v := range []uint32{0, 1, 0xFFFFFFFF} {
			out := Encode[Uint32, *Uint32](Uint32(v))
			got, err := Read[Uint32, *Uint32](New(out))
			require.NoError(t, err)
			require.Equal(t, Uint32(v), got)
		}
	})
	t.Run("Uint64", func(t *testing.T) {
		for _, v := range []uint64{0, 1, 0xFFFFFFFFFFFFFFFF} {
			out := Encode[Uint64, *Uint64](Uint64(v))
			got, err := Read[Uint64, *Uint64](New(out))
			require.NoError(t, err)
			require.Equal(t, Uint64(v), got)
		}
	})
	t.Run("Uint128", func(t *testing.T) {
		v := Uint128{Hi: 0x0102030405060708, Lo: 0xfffefdfcfbfaf9f8}
		out := Encode[Uint128, *Uint128](v)
		require.Len(t, out, WordSize)
		got, err := Read[Uint128, *Uint128](New(out))
		require.NoError(t, err)
		require.Equal(t, v, got)
	})
}

// TestUint_NonCanonicalUpperPadding verifies the lenient-decode property:
// writing garbage into the upper bytes of a narrow integer's word and
// decoding as uN yields the low-N-bit value, not an error.
func TestUint_NonCanonicalUpperPadding(t *testing.T) {
	var word Word
	for i := range word {
		word[i] = 0xAA
	}
	word[WordSize-1] = 0x07

	got, err := Read[Uint8, *Uint8](New(word[:]))
	require.NoError(t, err)
	require.Equal(t, Uint8(0x07), got)
}

// TestU256_RoundTrip checks scenario S2: encode(U256(1)) is a single
// word 00..01.
func TestU256_RoundTrip(t *testing.T) {
	out := Encode[U256, *U256](Uint64U256(1))
	require.Len(t, out, WordSize)
	var want Word
	want[WordSize-1] = 1
	require.Equal(t, want[:], out)

	got, err := Read[U256, *U256](New(out))
	require.NoError(t, err)
	require.Equal(t, uint64(1), got.Int.Uint64())

	big40 := new(big.Int).Lsh(big.NewInt(1), 200)
	out2 := Encode[U256, *U256](NewU256(big40))
	got2, err := Read[U256, *U256](New(out2))
	require.NoError(t, err)
	require.Equal(t, 0, big40.Cmp(got2.Int))
}

// TestBool_RoundTrip checks scenario S3: true then false each encode to
// their own word, and any non-zero word decodes as true.
func TestBool_RoundTrip(t *testing.T) {
	outTrue := Encode[Bool, *Bool](Bool(true))
	outFalse := Encode[Bool, *Bool](Bool(false))

	var wantTrue, wantFalse Word
	wantTrue[WordSize-1] = 1
	require.Equal(t, wantTrue[:], outTrue)
	require.Equal(t, wantFalse[:], outFalse)

	gotTrue, err := Read[Bool, *Bool](New(outTrue))
	require.NoError(t, err)
	require.True(t, bool(gotTrue))

	gotFalse, err := Read[Bool, *Bool](New(outFalse))
	require.NoError(t, err)
	require.False(t, bool(gotFalse))

	// Non-canonical: any non-zero word is truthy, not just 0x01.
	var weird Word
	weird[0] = 0x80
	weirdVal, err := Read[Bool, *Bool](New(weird[:]))
	require.NoError(t, err)
	require.True(t, bool(weirdVal))
}

// TestAddress_RoundTrip checks the 20-byte-in-32-byte-word layout and
// that the upper 12 bytes are ignored on decode even if non-zero.
func TestAddress_RoundTrip(t *testing.T) {
	addr := common.HexToAddress("0x00000000000000000000000000000000c0ffee")
	out := Encode[Address, *Address](AddressFromCommon(addr))
	require.Len(t, out, WordSize)
	require.Equal(t, make([]byte, 12), out[:12])

	got, err := Read[Address, *Address](New(out))
	require.NoError(t, err)
	require.Equal(t, addr, got.Common())

	garbage := append([]byte{}, out...)
	for i := 0; i < 12; i++ {
		garbage[i] = 0xFF
	}
	got2, err := Read[Address, *Address](New(garbage))
	require.NoError(t, err)
	require.Equal(t, addr, got2.Common())
}

// TestH256_Identity verifies H256 is a plain identity mapping and that
// it round-trips through lachesis-base's hash type.
func TestH256_Identity(t *testing.T) {
	var h H256
	for i := range h {
		h[i] = byte(i)
	}
	out := Encode[H256, *H256](h)
	require.Equal(t, h[:], out)

	got, err := Read[H256, *H256](New(out))
	require.NoError(t, err)
	require.Equal(t, h, got)
	require.Equal(t, h.ToHash(), FromHash(h.ToHash()).ToHash())
}
