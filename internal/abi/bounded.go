package abi

// Bound supplies a compile-time maximum element count for BoundedVec. Go
// has no const generics, so a bound is expressed the same way the
// original Rust code expresses it (`S: Get<u32>`): as a zero-sized marker
// type implementing this interface, instantiated as BoundedVec's third
// type parameter. Callers define one marker per distinct limit they need,
// e.g.:
//
//	type Max16 struct{}
//	func (Max16) Max() int { return 16 }
type Bound interface {
	Max() int
}

// BoundedVec is identical to Slice on the wire, with one extra read-side
// precondition: the decoded length must not exceed B's bound. Write does
// not enforce the bound (spec.md §4.4).
type BoundedVec[T any, PT pointerCodec[T], B Bound] []T

func (v *BoundedVec[T, PT, B]) readValue(r *Reader) error {
	var bound B
	items, err := readSequence[T, PT](r, "tried to parse array length out of bounds", "array length is too large", bound.Max())
	if err != nil {
		return err
	}
	*v = items
	return nil
}

func (v BoundedVec[T, PT, B]) writeValue(w *Writer) {
	writeSequence[T, PT](w, []T(v))
}
func (*BoundedVec[T, PT, B]) hasStaticSize() bool   { return false }
func (*BoundedVec[T, PT, B]) isExplicitTuple() bool { return false }
