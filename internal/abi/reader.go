package abi

import (
	"math/big"

	"github.com/rony4d/opera-abicodec/utils/fast"
)

// Reader walks an ABI-encoded input word by word. It never mutates or
// copies the input it was given; every slice it hands back shares the
// input's backing array, and every access is bounds-checked before it
// reaches the underlying fast.Reader (whose Read panics on overrun rather
// than erroring, which is fine for trusted internal framing but not for
// attacker-controlled call data).
type Reader struct {
	input []byte
	buf   *fast.Reader
}

// New creates a reader positioned at the start of input.
func New(input []byte) *Reader {
	return &Reader{input: input, buf: fast.NewReader(input)}
}

// ReadSelector decodes the first 4 bytes of input as a big-endian uint32
// function selector and maps it through fromUint32, which stands in for
// the compile-time enum lookup a caller provides (the Go analogue of the
// source's `T: TryFromPrimitive<Primitive = u32>` bound, since Go has no
// built-in enum-from-integer trait).
func ReadSelector[T any](input []byte, fromUint32 func(uint32) (T, bool)) (T, error) {
	var zero T
	if len(input) < 4 {
		return zero, revert("input is too short")
	}
	sel := uint32(input[0])<<24 | uint32(input[1])<<16 | uint32(input[2])<<8 | uint32(input[3])
	v, ok := fromUint32(sel)
	if !ok {
		return zero, revert("unknown selector")
	}
	return v, nil
}

// NewSkipSelector creates a reader starting at byte 4 of input, after the
// function selector.
func NewSkipSelector(input []byte) (*Reader, error) {
	if len(input) < 4 {
		return nil, revert("input is too short")
	}
	return New(input[4:]), nil
}

// ExpectArguments checks that at least n more 32-byte words remain ahead
// of the cursor.
func (r *Reader) ExpectArguments(n int) error {
	if len(r.input) >= r.buf.Position()+n*WordSize {
		return nil
	}
	return revert("input doesn't match expected length")
}

// Position reports the current cursor offset, in bytes, from the start
// of this reader's input.
func (r *Reader) Position() int {
	return r.buf.Position()
}

// tail returns the unread remainder of the input without advancing the
// cursor; used internally to seed the item reader for dynamic sequences.
func (r *Reader) tail() []byte {
	return r.input[r.buf.Position():]
}

// advance bounds-checks and consumes n bytes from the cursor, returning
// them as a slice shared with the input. oob is the reason reported when
// the read would run past the end of input.
func (r *Reader) advance(n int, oob string) ([]byte, error) {
	start := r.buf.Position()
	end := start + n
	if end < start {
		return nil, revert("data reading cursor overflow")
	}
	if end > len(r.input) {
		return nil, revert(oob)
	}
	return r.buf.Read(n), nil
}

// ReadRawBytes reads exactly len bytes with no alignment handling.
func (r *Reader) ReadRawBytes(length int) ([]byte, error) {
	return r.advance(length, "tried to parse raw bytes out of bounds")
}

// ReadTillEnd reads and returns every byte from the cursor to the end of
// the input.
func (r *Reader) ReadTillEnd() ([]byte, error) {
	return r.advance(r.buf.Remaining(), "tried to parse raw bytes out of bounds")
}

// ReadPointer reads a 32-byte offset word and returns a fresh reader
// whose input starts at that offset within the current reader's input.
// Nested pointers rebase at every follow, matching the ABI convention
// that each container's offsets are relative to its own start.
func (r *Reader) ReadPointer() (*Reader, error) {
	raw, err := r.advance(WordSize, "tried to parse array offset out of bounds")
	if err != nil {
		return nil, err
	}
	offset := new(big.Int).SetBytes(raw)
	if !offset.IsUint64() {
		return nil, revert("array offset is too large")
	}
	off := offset.Uint64()
	if off >= uint64(len(r.input)) {
		return nil, revert("pointer points out of bounds")
	}
	return New(r.input[off:]), nil
}

// readLength reads a U256 word as an array/bytes length, bounds-checked
// to fit a machine word, with distinct reasons for the two ways that can
// fail.
func (r *Reader) readLength(boundsReason, tooLargeReason string) (int, error) {
	raw, err := r.advance(WordSize, boundsReason)
	if err != nil {
		return 0, err
	}
	length := new(big.Int).SetBytes(raw)
	if !length.IsUint64() || length.Uint64() > uint64(^uint(0)>>1) {
		return 0, revert(tooLargeReason)
	}
	return int(length.Uint64()), nil
}
