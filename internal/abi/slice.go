package abi

// Slice is the Solidity dynamic `T[]` type: a pointer to
// [length : U256][encoded(T) * length], with each element's own pointers
// relative to that element's head rather than to the sequence start (see
// writeSequence below for how that relocation is done).
type Slice[T any, PT pointerCodec[T]] []T

func (s *Slice[T, PT]) readValue(r *Reader) error {
	items, err := readSequence[T, PT](r, "tried to parse array length out of bounds", "array length is too large", -1)
	if err != nil {
		return err
	}
	*s = items
	return nil
}

func (s Slice[T, PT]) writeValue(w *Writer) {
	writeSequence[T, PT](w, []T(s))
}
func (*Slice[T, PT]) hasStaticSize() bool   { return false }
func (*Slice[T, PT]) isExplicitTuple() bool { return false }

// readSequence implements the shared read path for Slice and BoundedVec:
// follow the pointer, read the length, optionally enforce max (a
// negative max means unbounded), then read `length` values of T from a
// fresh reader seeded at byte 32 of the pointed-to data (i.e. past the
// length word).
func readSequence[T any, PT pointerCodec[T]](r *Reader, boundsReason, tooLargeReason string, max int) ([]T, error) {
	inner, err := r.ReadPointer()
	if err != nil {
		return nil, err
	}
	length, err := inner.readLength(boundsReason, tooLargeReason)
	if err != nil {
		return nil, err
	}
	if max >= 0 && length > max {
		return nil, revert("value too large : Array has more than max items allowed")
	}

	itemReader := New(inner.tail())
	var items []T
	for i := 0; i < length; i++ {
		v, err := Read[T, PT](itemReader)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// writeSequence implements the shared write path for Slice and
// BoundedVec: build an inner writer holding the length word, then splice
// each element's own writer in — relocating its deferred pointers by the
// byte offset where the element's head was spliced in, plus 32 bytes to
// account for the length word the ABI doesn't count when it measures an
// element's own offsets (§4.3).
func writeSequence[T any, PT pointerCodec[T]](w *Writer, items []T) {
	inner := New()
	Write[U256, *U256](inner, Uint64U256(uint64(len(items))))

	for _, item := range items {
		shift := len(inner.bytes())
		itemWriter := New()
		Write[T, PT](itemWriter, item)

		inner.writeRaw(itemWriter.bytes())
		for _, child := range itemWriter.pending {
			inner.pending = append(inner.pending, pendingChild{
				offsetPosition: child.offsetPosition + shift,
				payload:        child.payload,
				offsetShift:    child.offsetShift + WordSize,
			})
		}
	}

	w.WritePointer(inner.Build())
}
