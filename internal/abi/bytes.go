package abi

import "unicode/utf8"

// Bytes is the Solidity dynamic `bytes` type: a pointer to
// [length : U256][data, padded to a multiple of 32]. Only the declared
// length is ever returned to the caller; bytes beyond it within the
// final padded word are ignored on read, same as the rest of the
// codec's lenient-decode stance (spec open question, §9).
type Bytes []byte

func (v *Bytes) readValue(r *Reader) error {
	inner, err := r.ReadPointer()
	if err != nil {
		return err
	}
	length, err := inner.readLength(
		"tried to parse bytes/string length out of bounds",
		"bytes/string length is too large",
	)
	if err != nil {
		return err
	}
	data, err := inner.advance(length, "tried to parse bytes/string out of bounds")
	if err != nil {
		return err
	}
	*v = append(Bytes(nil), data...)
	return nil
}

func (v *Bytes) writeValue(w *Writer) {
	w.WritePointer(encodeBytesPayload(*v))
}
func (*Bytes) hasStaticSize() bool   { return false }
func (*Bytes) isExplicitTuple() bool { return false }

// AsString interprets the bytes as UTF-8, matching the source's
// Bytes::as_str convenience (spec.md is silent on string validation;
// original_source/data.rs validates it as a caller-opt-in, not as part
// of the wire codec itself).
func (v Bytes) AsString() (string, error) {
	if !utf8.Valid(v) {
		return "", revert("bytes is not valid utf8")
	}
	return string(v), nil
}

// String is the Solidity dynamic `string` type. It shares bytes' exact
// wire form (spec.md §4.4): a pointer to a length-prefixed, 32-byte
// padded byte buffer.
type String string

func (v *String) readValue(r *Reader) error {
	var b Bytes
	if err := b.readValue(r); err != nil {
		return err
	}
	*v = String(b)
	return nil
}

func (v *String) writeValue(w *Writer) {
	w.WritePointer(encodeBytesPayload([]byte(*v)))
}
func (*String) hasStaticSize() bool   { return false }
func (*String) isExplicitTuple() bool { return false }

// encodeBytesPayload builds the [length][padded data] tail shared by
// Bytes and String.
func encodeBytesPayload(data []byte) []byte {
	length := len(data)
	padded := ((length + WordSize - 1) / WordSize) * WordSize
	body := make([]byte, padded)
	copy(body, data)

	inner := New()
	Write[U256, *U256](inner, Uint64U256(uint64(length)))
	inner.writeRaw(body)
	return inner.Build()
}
