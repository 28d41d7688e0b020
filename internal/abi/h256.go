package abi

import (
	lhash "github.com/Fantom-foundation/lachesis-base/hash"
)

// H256 is the codec's opaque 32-byte word type: an identity mapping onto
// the wire word, used for bytes32 values (storage keys, payload hashes,
// signatures split in half, ...). It mirrors the shape of
// lachesis-base's hash.Hash, which is what the rest of an Opera node uses
// for the same concept; FromHash/ToHash convert between the two so a
// precompile can read a word straight into the hash type the consensus
// layer already works with.
type H256 [WordSize]byte

// FromHash converts a lachesis-base hash into an H256.
func FromHash(h lhash.Hash) H256 {
	return H256(h)
}

// ToHash converts an H256 into a lachesis-base hash.
func (v H256) ToHash() lhash.Hash {
	return lhash.Hash(v)
}

func (v *H256) readValue(r *Reader) error {
	raw, err := r.advance(WordSize, "tried to parse H256 out of bounds")
	if err != nil {
		return err
	}
	copy(v[:], raw)
	return nil
}

func (v *H256) writeValue(w *Writer) {
	w.writeRaw(v[:])
}
func (*H256) hasStaticSize() bool   { return true }
func (*H256) isExplicitTuple() bool { return false }
