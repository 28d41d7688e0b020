package abi

import (
	"github.com/ethereum/go-ethereum/common"
)

// codec is the capability every supported ABI type implements: read and
// write its wire form, and report whether it has a static size and
// whether it is an explicit (heterogeneous) tuple. It is the Go analogue
// of the source's `EvmData` trait — unexported because callers are
// expected to go through the generic Read/Write/HasStaticSize/
// IsExplicitTuple functions below rather than calling these directly.
type codec interface {
	readValue(r *Reader) error
	writeValue(w *Writer)
	hasStaticSize() bool
	isExplicitTuple() bool
}

// pointerCodec binds a value type T to the codec implemented on *T. Every
// generic function in this package is parameterized over (T, PT) so the
// compiler can prove *T implements codec without reflection — the
// "compile-time trait" property spec.md calls for.
type pointerCodec[T any] interface {
	*T
	codec
}

// Read decodes a value of type T from r using T's codec.
func Read[T any, PT pointerCodec[T]](r *Reader) (T, error) {
	var v T
	if err := PT(&v).readValue(r); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Write encodes value into w using T's codec, returning w so calls chain:
// abi.New() piped through successive Write calls, finished with Build().
func Write[T any, PT pointerCodec[T]](w *Writer, value T) *Writer {
	PT(&value).writeValue(w)
	return w
}

// HasStaticSize reports whether T's encoding has no deferred tail.
func HasStaticSize[T any, PT pointerCodec[T]]() bool {
	var v T
	return PT(&v).hasStaticSize()
}

// IsExplicitTuple reports whether T is a heterogeneous tuple type.
func IsExplicitTuple[T any, PT pointerCodec[T]]() bool {
	var v T
	return PT(&v).isExplicitTuple()
}

// Uint8 is the Solidity uint8 type. Its read/write is specialized (no
// generic width helper) the same way the source hand-rolls u8 "for
// performance reasons".
type Uint8 uint8

func (v *Uint8) readValue(r *Reader) error {
	raw, err := r.advance(WordSize, "tried to parse uint8 out of bounds")
	if err != nil {
		return err
	}
	*v = Uint8(raw[WordSize-1])
	return nil
}

func (v *Uint8) writeValue(w *Writer) {
	var word Word
	word[WordSize-1] = byte(*v)
	w.writeRaw(word[:])
}

func (*Uint8) hasStaticSize() bool   { return true }
func (*Uint8) isExplicitTuple() bool { return false }

// readUintN and writeUintN implement the shared shape of
// Uint16/Uint32/Uint64: one word in,
// low `width` bytes out, big-endian, upper bytes silently ignored.
func readUintN(r *Reader, width int, typeName string) (uint64, error) {
	raw, err := r.advance(WordSize, "tried to parse "+typeName+" out of bounds")
	if err != nil {
		return 0, err
	}
	var word Word
	copy(word[:], raw)
	return getUint(word, width), nil
}

func writeUintN(w *Writer, v uint64, width int) {
	var word Word
	putUint(&word, v, width)
	w.writeRaw(word[:])
}

// Uint16 is the Solidity uint16 type.
type Uint16 uint16

func (v *Uint16) readValue(r *Reader) error {
	u, err := readUintN(r, 2, "uint16")
	if err != nil {
		return err
	}
	*v = Uint16(u)
	return nil
}
func (v *Uint16) writeValue(w *Writer)  { writeUintN(w, uint64(*v), 2) }
func (*Uint16) hasStaticSize() bool     { return true }
func (*Uint16) isExplicitTuple() bool   { return false }

// Uint32 is the Solidity uint32 type.
type Uint32 uint32

func (v *Uint32) readValue(r *Reader) error {
	u, err := readUintN(r, 4, "uint32")
	if err != nil {
		return err
	}
	*v = Uint32(u)
	return nil
}
func (v *Uint32) writeValue(w *Writer) { writeUintN(w, uint64(*v), 4) }
func (*Uint32) hasStaticSize() bool    { return true }
func (*Uint32) isExplicitTuple() bool  { return false }

// Uint64 is the Solidity uint64 type.
type Uint64 uint64

func (v *Uint64) readValue(r *Reader) error {
	u, err := readUintN(r, 8, "uint64")
	if err != nil {
		return err
	}
	*v = Uint64(u)
	return nil
}
func (v *Uint64) writeValue(w *Writer) { writeUintN(w, uint64(*v), 8) }
func (*Uint64) hasStaticSize() bool    { return true }
func (*Uint64) isExplicitTuple() bool  { return false }

// Uint128 is the Solidity uint128 type. Go has no native 128-bit integer,
// so the value is split into big-endian Hi/Lo uint64 halves occupying the
// word's low 16 bytes.
type Uint128 struct {
	Hi, Lo uint64
}

func (v *Uint128) readValue(r *Reader) error {
	raw, err := r.advance(WordSize, "tried to parse uint128 out of bounds")
	if err != nil {
		return err
	}
	var hi, lo [8]byte
	copy(hi[:], raw[16:24])
	copy(lo[:], raw[24:32])
	v.Hi = beUint64(hi)
	v.Lo = beUint64(lo)
	return nil
}

func (v *Uint128) writeValue(w *Writer) {
	var word Word
	putBeUint64(word[16:24], v.Hi)
	putBeUint64(word[24:32], v.Lo)
	w.writeRaw(word[:])
}
func (*Uint128) hasStaticSize() bool   { return true }
func (*Uint128) isExplicitTuple() bool { return false }

func beUint64(b [8]byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

func putBeUint64(dst []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
}

// Bool is the Solidity bool type: the zero word decodes to false, any
// other word (canonical or not) decodes to true.
type Bool bool

func (v *Bool) readValue(r *Reader) error {
	raw, err := r.advance(WordSize, "tried to parse bool out of bounds")
	if err != nil {
		return err
	}
	var word Word
	copy(word[:], raw)
	*v = Bool(!word.IsZero())
	return nil
}

func (v *Bool) writeValue(w *Writer) {
	var word Word
	if *v {
		word[WordSize-1] = 1
	}
	w.writeRaw(word[:])
}
func (*Bool) hasStaticSize() bool   { return true }
func (*Bool) isExplicitTuple() bool { return false }

// Address is the Solidity address type: a 20-byte value stored right of
// center in a word, bytes [0:12] written as zero and ignored on read.
// Kept as its own type rather than a bare common.Address so the codec,
// like the source's own Address newtype, never accidentally encodes a
// bytes20 value as an address or vice versa.
type Address common.Address

func (v *Address) readValue(r *Reader) error {
	raw, err := r.advance(WordSize, "tried to parse address out of bounds")
	if err != nil {
		return err
	}
	*v = Address(common.BytesToAddress(raw[12:32]))
	return nil
}

func (v *Address) writeValue(w *Writer) {
	var word Word
	copy(word[12:32], v[:])
	w.writeRaw(word[:])
}
func (*Address) hasStaticSize() bool   { return true }
func (*Address) isExplicitTuple() bool { return false }

// Common converts to the go-ethereum address type used by the rest of the
// node.
func (v Address) Common() common.Address { return common.Address(v) }

// AddressFromCommon wraps a go-ethereum address as an ABI Address.
func AddressFromCommon(a common.Address) Address { return Address(a) }
