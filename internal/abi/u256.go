package abi

import "math/big"

// U256 is the Solidity uint256 type: one big-endian word, decoded with no
// range check (a uint256 always fits exactly) and encoded left-padded.
// The zero value encodes as zero, matching *big.Int's own zero value.
type U256 struct {
	Int *big.Int
}

// NewU256 copies i into a U256.
func NewU256(i *big.Int) U256 {
	return U256{Int: new(big.Int).Set(i)}
}

// Uint64U256 is a convenience constructor for small constants.
func Uint64U256(v uint64) U256 {
	return U256{Int: new(big.Int).SetUint64(v)}
}

func (v *U256) readValue(r *Reader) error {
	raw, err := r.advance(WordSize, "tried to parse U256 out of bounds")
	if err != nil {
		return err
	}
	v.Int = new(big.Int).SetBytes(raw)
	return nil
}

func (v *U256) writeValue(w *Writer) {
	val := v.Int
	if val == nil {
		val = new(big.Int)
	}
	var word Word
	val.FillBytes(word[:])
	w.writeRaw(word[:])
}
func (*U256) hasStaticSize() bool   { return true }
func (*U256) isExplicitTuple() bool { return false }
