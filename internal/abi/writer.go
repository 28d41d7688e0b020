package abi

import (
	"math/big"

	"github.com/rony4d/opera-abicodec/utils/fast"
)

// pendingChild is a deferred pointer target: a dynamic value's tail
// bytes, plus where its placeholder offset word lives in data and a
// correction applied when this writer's data is an array/sequence body
// rather than a plain struct body (§4.3).
type pendingChild struct {
	offsetPosition int
	payload        []byte
	offsetShift    int
}

// Writer accumulates the head bytes of one ABI container and a table of
// deferred pointer targets, resolving them only when Build is called.
// This two-pass shape is what lets nested dynamic values be assembled by
// composable, purely local codec code: each type writes a placeholder
// pointer for its dynamic children without needing to know in advance how
// large the rest of the container's head will be.
type Writer struct {
	buf      *fast.Writer
	pending  []pendingChild
	selector *uint32
}

// New creates an empty writer with no selector.
func New() *Writer {
	return &Writer{buf: fast.NewWriter(nil)}
}

// NewWithSelector creates an empty writer that prepends the given 4-byte
// selector once Build resolves every offset (offsets are always measured
// from the selector-less base, matching Solidity's convention).
func NewWithSelector(selector uint32) *Writer {
	return &Writer{buf: fast.NewWriter(nil), selector: &selector}
}

// bytes returns the head accumulated so far, sharing memory with buf; used
// by code that splices one writer's head into another's (see slice.go's
// writeSequence).
func (w *Writer) bytes() []byte {
	return w.buf.Bytes()
}

// writeRaw appends bytes to the head verbatim, with no alignment
// handling; codec implementations use it for bytes already known to be
// word-sized or already padded.
func (w *Writer) writeRaw(b []byte) {
	w.buf.Write(b)
}

// WritePointer writes an all-0xFF placeholder word at the current end of
// data and records payload to be appended, and the placeholder
// overwritten with its real offset, once Build runs. 0xFF is cosmetic:
// any value works since the placeholder is always replaced before Build
// returns, but it makes a stray pre-Build byte slice easy to spot.
func (w *Writer) WritePointer(payload []byte) {
	offsetPosition := len(w.bytes())
	var placeholder Word
	for i := range placeholder {
		placeholder[i] = 0xff
	}
	w.writeRaw(placeholder[:])

	w.pending = append(w.pending, pendingChild{
		offsetPosition: offsetPosition,
		payload:        payload,
	})
}

// Build resolves every deferred pointer in recorded order — computing
// each target's free-space offset, baking it into the placeholder word,
// and appending the payload — then prepends the selector, if any.
func (w *Writer) Build() []byte {
	for _, child := range w.pending {
		free := len(w.bytes()) - child.offsetShift
		var word Word
		new(big.Int).SetUint64(uint64(free)).FillBytes(word[:])
		copy(w.bytes()[child.offsetPosition:child.offsetPosition+WordSize], word[:])
		w.buf.Write(child.payload)
	}
	w.pending = nil

	if w.selector == nil {
		return w.bytes()
	}
	out := make([]byte, 4, 4+len(w.bytes()))
	out[0] = byte(*w.selector >> 24)
	out[1] = byte(*w.selector >> 16)
	out[2] = byte(*w.selector >> 8)
	out[3] = byte(*w.selector)
	return append(out, w.bytes()...)
}
