package abi

import "encoding/binary"

// WordSize is the width in bytes of every ABI head slot.
const WordSize = 32

// Word is a single 32-byte big-endian ABI slot.
type Word [WordSize]byte

// IsZero reports whether every byte of the word is zero, which is how the
// codec decides boolean truthiness (§4.1: zero word is false, anything
// else is true).
func (w Word) IsZero() bool {
	for _, b := range w {
		if b != 0 {
			return false
		}
	}
	return true
}

// putUint writes the low `width` bytes of v, big-endian, into the low
// `width` bytes of the word, zeroing everything above it. width must be
// one of 1, 2, 4, 8.
func putUint(word *Word, v uint64, width int) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	copy(word[WordSize-width:], buf[8-width:])
}

// getUint reads the low `width` bytes of the word as a big-endian
// unsigned integer, ignoring whatever sits in the upper bytes. This is
// what makes non-canonical padding decode leniently: on-chain encoders
// sometimes leave garbage above a narrow integer and the EVM doesn't
// care, so neither do we (spec open question, §9).
func getUint(word Word, width int) uint64 {
	var buf [8]byte
	copy(buf[8-width:], word[WordSize-width:])
	return binary.BigEndian.Uint64(buf[:])
}
