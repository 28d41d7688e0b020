package abi

// TupleN types are the heterogeneous-tuple composition primitive used for
// function arguments, return values, and event data (spec.md §4.4). Go
// has no variadic generics, so -- per the source's own design note on
// generating "one implementation per arity" -- this file hand-unrolls
// arities 1 through 18, the same range the original crate's
// impl_for_tuples(1, 18) macro covers.
//
// A tuple is static only if every component is; a dynamic tuple is
// itself written/read behind a single pointer, with components in
// declaration order inside it. IsExplicitTuple is always true: it is
// what lets top-level Encode/EncodeArguments tell a bare dynamic value
// apart from a dynamic tuple wrapping one (spec.md §4.5).

// Tuple1 is the 1-element tuple codec.
type Tuple1[TA any, PA pointerCodec[TA]] struct {
	VA TA
}

func (t *Tuple1[TA, PA]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]()
}

func (*Tuple1[TA, PA]) isExplicitTuple() bool { return true }

func (t *Tuple1[TA, PA]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	return nil
}

func (t *Tuple1[TA, PA]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
}

// Tuple2 is the 2-element tuple codec.
type Tuple2[TA any, PA pointerCodec[TA], TB any, PB pointerCodec[TB]] struct {
	VA TA
	VB TB
}

func (t *Tuple2[TA, PA, TB, PB]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]() && HasStaticSize[TB, PB]()
}

func (*Tuple2[TA, PA, TB, PB]) isExplicitTuple() bool { return true }

func (t *Tuple2[TA, PA, TB, PB]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	vB, err := Read[TB, PB](reader)
	if err != nil {
		return err
	}
	t.VB = vB
	return nil
}

func (t *Tuple2[TA, PA, TB, PB]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		Write[TB, PB](inner, t.VB)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
	Write[TB, PB](w, t.VB)
}

// Tuple3 is the 3-element tuple codec.
type Tuple3[TA any, PA pointerCodec[TA], TB any, PB pointerCodec[TB], TC any, PC pointerCodec[TC]] struct {
	VA TA
	VB TB
	VC TC
}

func (t *Tuple3[TA, PA, TB, PB, TC, PC]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]() && HasStaticSize[TB, PB]() && HasStaticSize[TC, PC]()
}

func (*Tuple3[TA, PA, TB, PB, TC, PC]) isExplicitTuple() bool { return true }

func (t *Tuple3[TA, PA, TB, PB, TC, PC]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	vB, err := Read[TB, PB](reader)
	if err != nil {
		return err
	}
	t.VB = vB
	vC, err := Read[TC, PC](reader)
	if err != nil {
		return err
	}
	t.VC = vC
	return nil
}

func (t *Tuple3[TA, PA, TB, PB, TC, PC]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		Write[TB, PB](inner, t.VB)
		Write[TC, PC](inner, t.VC)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
	Write[TB, PB](w, t.VB)
	Write[TC, PC](w, t.VC)
}

// Tuple4 is the 4-element tuple codec.
type Tuple4[TA any, PA pointerCodec[TA], TB any, PB pointerCodec[TB], TC any, PC pointerCodec[TC], TD any, PD pointerCodec[TD]] struct {
	VA TA
	VB TB
	VC TC
	VD TD
}

func (t *Tuple4[TA, PA, TB, PB, TC, PC, TD, PD]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]() && HasStaticSize[TB, PB]() && HasStaticSize[TC, PC]() && HasStaticSize[TD, PD]()
}

func (*Tuple4[TA, PA, TB, PB, TC, PC, TD, PD]) isExplicitTuple() bool { return true }

func (t *Tuple4[TA, PA, TB, PB, TC, PC, TD, PD]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	vB, err := Read[TB, PB](reader)
	if err != nil {
		return err
	}
	t.VB = vB
	vC, err := Read[TC, PC](reader)
	if err != nil {
		return err
	}
	t.VC = vC
	vD, err := Read[TD, PD](reader)
	if err != nil {
		return err
	}
	t.VD = vD
	return nil
}

func (t *Tuple4[TA, PA, TB, PB, TC, PC, TD, PD]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		Write[TB, PB](inner, t.VB)
		Write[TC, PC](inner, t.VC)
		Write[TD, PD](inner, t.VD)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
	Write[TB, PB](w, t.VB)
	Write[TC, PC](w, t.VC)
	Write[TD, PD](w, t.VD)
}

// Tuple5 is the 5-element tuple codec.
type Tuple5[TA any, PA pointerCodec[TA], TB any, PB pointerCodec[TB], TC any, PC pointerCodec[TC], TD any, PD pointerCodec[TD], TE any, PE pointerCodec[TE]] struct {
	VA TA
	VB TB
	VC TC
	VD TD
	VE TE
}

func (t *Tuple5[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]() && HasStaticSize[TB, PB]() && HasStaticSize[TC, PC]() && HasStaticSize[TD, PD]() && HasStaticSize[TE, PE]()
}

func (*Tuple5[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE]) isExplicitTuple() bool { return true }

func (t *Tuple5[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	vB, err := Read[TB, PB](reader)
	if err != nil {
		return err
	}
	t.VB = vB
	vC, err := Read[TC, PC](reader)
	if err != nil {
		return err
	}
	t.VC = vC
	vD, err := Read[TD, PD](reader)
	if err != nil {
		return err
	}
	t.VD = vD
	vE, err := Read[TE, PE](reader)
	if err != nil {
		return err
	}
	t.VE = vE
	return nil
}

func (t *Tuple5[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		Write[TB, PB](inner, t.VB)
		Write[TC, PC](inner, t.VC)
		Write[TD, PD](inner, t.VD)
		Write[TE, PE](inner, t.VE)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
	Write[TB, PB](w, t.VB)
	Write[TC, PC](w, t.VC)
	Write[TD, PD](w, t.VD)
	Write[TE, PE](w, t.VE)
}

// Tuple6 is the 6-element tuple codec.
type Tuple6[TA any, PA pointerCodec[TA], TB any, PB pointerCodec[TB], TC any, PC pointerCodec[TC], TD any, PD pointerCodec[TD], TE any, PE pointerCodec[TE], TF any, PF pointerCodec[TF]] struct {
	VA TA
	VB TB
	VC TC
	VD TD
	VE TE
	VF TF
}

func (t *Tuple6[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]() && HasStaticSize[TB, PB]() && HasStaticSize[TC, PC]() && HasStaticSize[TD, PD]() && HasStaticSize[TE, PE]() && HasStaticSize[TF, PF]()
}

func (*Tuple6[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF]) isExplicitTuple() bool { return true }

func (t *Tuple6[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	vB, err := Read[TB, PB](reader)
	if err != nil {
		return err
	}
	t.VB = vB
	vC, err := Read[TC, PC](reader)
	if err != nil {
		return err
	}
	t.VC = vC
	vD, err := Read[TD, PD](reader)
	if err != nil {
		return err
	}
	t.VD = vD
	vE, err := Read[TE, PE](reader)
	if err != nil {
		return err
	}
	t.VE = vE
	vF, err := Read[TF, PF](reader)
	if err != nil {
		return err
	}
	t.VF = vF
	return nil
}

func (t *Tuple6[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		Write[TB, PB](inner, t.VB)
		Write[TC, PC](inner, t.VC)
		Write[TD, PD](inner, t.VD)
		Write[TE, PE](inner, t.VE)
		Write[TF, PF](inner, t.VF)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
	Write[TB, PB](w, t.VB)
	Write[TC, PC](w, t.VC)
	Write[TD, PD](w, t.VD)
	Write[TE, PE](w, t.VE)
	Write[TF, PF](w, t.VF)
}

// Tuple7 is the 7-element tuple codec.
type Tuple7[TA any, PA pointerCodec[TA], TB any, PB pointerCodec[TB], TC any, PC pointerCodec[TC], TD any, PD pointerCodec[TD], TE any, PE pointerCodec[TE], TF any, PF pointerCodec[TF], TG any, PG pointerCodec[TG]] struct {
	VA TA
	VB TB
	VC TC
	VD TD
	VE TE
	VF TF
	VG TG
}

func (t *Tuple7[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]() && HasStaticSize[TB, PB]() && HasStaticSize[TC, PC]() && HasStaticSize[TD, PD]() && HasStaticSize[TE, PE]() && HasStaticSize[TF, PF]() && HasStaticSize[TG, PG]()
}

func (*Tuple7[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG]) isExplicitTuple() bool { return true }

func (t *Tuple7[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	vB, err := Read[TB, PB](reader)
	if err != nil {
		return err
	}
	t.VB = vB
	vC, err := Read[TC, PC](reader)
	if err != nil {
		return err
	}
	t.VC = vC
	vD, err := Read[TD, PD](reader)
	if err != nil {
		return err
	}
	t.VD = vD
	vE, err := Read[TE, PE](reader)
	if err != nil {
		return err
	}
	t.VE = vE
	vF, err := Read[TF, PF](reader)
	if err != nil {
		return err
	}
	t.VF = vF
	vG, err := Read[TG, PG](reader)
	if err != nil {
		return err
	}
	t.VG = vG
	return nil
}

func (t *Tuple7[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		Write[TB, PB](inner, t.VB)
		Write[TC, PC](inner, t.VC)
		Write[TD, PD](inner, t.VD)
		Write[TE, PE](inner, t.VE)
		Write[TF, PF](inner, t.VF)
		Write[TG, PG](inner, t.VG)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
	Write[TB, PB](w, t.VB)
	Write[TC, PC](w, t.VC)
	Write[TD, PD](w, t.VD)
	Write[TE, PE](w, t.VE)
	Write[TF, PF](w, t.VF)
	Write[TG, PG](w, t.VG)
}

// Tuple8 is the 8-element tuple codec.
type Tuple8[TA any, PA pointerCodec[TA], TB any, PB pointerCodec[TB], TC any, PC pointerCodec[TC], TD any, PD pointerCodec[TD], TE any, PE pointerCodec[TE], TF any, PF pointerCodec[TF], TG any, PG pointerCodec[TG], TH any, PH pointerCodec[TH]] struct {
	VA TA
	VB TB
	VC TC
	VD TD
	VE TE
	VF TF
	VG TG
	VH TH
}

func (t *Tuple8[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]() && HasStaticSize[TB, PB]() && HasStaticSize[TC, PC]() && HasStaticSize[TD, PD]() && HasStaticSize[TE, PE]() && HasStaticSize[TF, PF]() && HasStaticSize[TG, PG]() && HasStaticSize[TH, PH]()
}

func (*Tuple8[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH]) isExplicitTuple() bool { return true }

func (t *Tuple8[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	vB, err := Read[TB, PB](reader)
	if err != nil {
		return err
	}
	t.VB = vB
	vC, err := Read[TC, PC](reader)
	if err != nil {
		return err
	}
	t.VC = vC
	vD, err := Read[TD, PD](reader)
	if err != nil {
		return err
	}
	t.VD = vD
	vE, err := Read[TE, PE](reader)
	if err != nil {
		return err
	}
	t.VE = vE
	vF, err := Read[TF, PF](reader)
	if err != nil {
		return err
	}
	t.VF = vF
	vG, err := Read[TG, PG](reader)
	if err != nil {
		return err
	}
	t.VG = vG
	vH, err := Read[TH, PH](reader)
	if err != nil {
		return err
	}
	t.VH = vH
	return nil
}

func (t *Tuple8[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		Write[TB, PB](inner, t.VB)
		Write[TC, PC](inner, t.VC)
		Write[TD, PD](inner, t.VD)
		Write[TE, PE](inner, t.VE)
		Write[TF, PF](inner, t.VF)
		Write[TG, PG](inner, t.VG)
		Write[TH, PH](inner, t.VH)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
	Write[TB, PB](w, t.VB)
	Write[TC, PC](w, t.VC)
	Write[TD, PD](w, t.VD)
	Write[TE, PE](w, t.VE)
	Write[TF, PF](w, t.VF)
	Write[TG, PG](w, t.VG)
	Write[TH, PH](w, t.VH)
}

// Tuple9 is the 9-element tuple codec.
type Tuple9[TA any, PA pointerCodec[TA], TB any, PB pointerCodec[TB], TC any, PC pointerCodec[TC], TD any, PD pointerCodec[TD], TE any, PE pointerCodec[TE], TF any, PF pointerCodec[TF], TG any, PG pointerCodec[TG], TH any, PH pointerCodec[TH], TI any, PI pointerCodec[TI]] struct {
	VA TA
	VB TB
	VC TC
	VD TD
	VE TE
	VF TF
	VG TG
	VH TH
	VI TI
}

func (t *Tuple9[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]() && HasStaticSize[TB, PB]() && HasStaticSize[TC, PC]() && HasStaticSize[TD, PD]() && HasStaticSize[TE, PE]() && HasStaticSize[TF, PF]() && HasStaticSize[TG, PG]() && HasStaticSize[TH, PH]() && HasStaticSize[TI, PI]()
}

func (*Tuple9[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI]) isExplicitTuple() bool { return true }

func (t *Tuple9[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	vB, err := Read[TB, PB](reader)
	if err != nil {
		return err
	}
	t.VB = vB
	vC, err := Read[TC, PC](reader)
	if err != nil {
		return err
	}
	t.VC = vC
	vD, err := Read[TD, PD](reader)
	if err != nil {
		return err
	}
	t.VD = vD
	vE, err := Read[TE, PE](reader)
	if err != nil {
		return err
	}
	t.VE = vE
	vF, err := Read[TF, PF](reader)
	if err != nil {
		return err
	}
	t.VF = vF
	vG, err := Read[TG, PG](reader)
	if err != nil {
		return err
	}
	t.VG = vG
	vH, err := Read[TH, PH](reader)
	if err != nil {
		return err
	}
	t.VH = vH
	vI, err := Read[TI, PI](reader)
	if err != nil {
		return err
	}
	t.VI = vI
	return nil
}

func (t *Tuple9[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		Write[TB, PB](inner, t.VB)
		Write[TC, PC](inner, t.VC)
		Write[TD, PD](inner, t.VD)
		Write[TE, PE](inner, t.VE)
		Write[TF, PF](inner, t.VF)
		Write[TG, PG](inner, t.VG)
		Write[TH, PH](inner, t.VH)
		Write[TI, PI](inner, t.VI)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
	Write[TB, PB](w, t.VB)
	Write[TC, PC](w, t.VC)
	Write[TD, PD](w, t.VD)
	Write[TE, PE](w, t.VE)
	Write[TF, PF](w, t.VF)
	Write[TG, PG](w, t.VG)
	Write[TH, PH](w, t.VH)
	Write[TI, PI](w, t.VI)
}

// Tuple10 is the 10-element tuple codec.
type Tuple10[TA any, PA pointerCodec[TA], TB any, PB pointerCodec[TB], TC any, PC pointerCodec[TC], TD any, PD pointerCodec[TD], TE any, PE pointerCodec[TE], TF any, PF pointerCodec[TF], TG any, PG pointerCodec[TG], TH any, PH pointerCodec[TH], TI any, PI pointerCodec[TI], TJ any, PJ pointerCodec[TJ]] struct {
	VA TA
	VB TB
	VC TC
	VD TD
	VE TE
	VF TF
	VG TG
	VH TH
	VI TI
	VJ TJ
}

func (t *Tuple10[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]() && HasStaticSize[TB, PB]() && HasStaticSize[TC, PC]() && HasStaticSize[TD, PD]() && HasStaticSize[TE, PE]() && HasStaticSize[TF, PF]() && HasStaticSize[TG, PG]() && HasStaticSize[TH, PH]() && HasStaticSize[TI, PI]() && HasStaticSize[TJ, PJ]()
}

func (*Tuple10[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ]) isExplicitTuple() bool { return true }

func (t *Tuple10[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	vB, err := Read[TB, PB](reader)
	if err != nil {
		return err
	}
	t.VB = vB
	vC, err := Read[TC, PC](reader)
	if err != nil {
		return err
	}
	t.VC = vC
	vD, err := Read[TD, PD](reader)
	if err != nil {
		return err
	}
	t.VD = vD
	vE, err := Read[TE, PE](reader)
	if err != nil {
		return err
	}
	t.VE = vE
	vF, err := Read[TF, PF](reader)
	if err != nil {
		return err
	}
	t.VF = vF
	vG, err := Read[TG, PG](reader)
	if err != nil {
		return err
	}
	t.VG = vG
	vH, err := Read[TH, PH](reader)
	if err != nil {
		return err
	}
	t.VH = vH
	vI, err := Read[TI, PI](reader)
	if err != nil {
		return err
	}
	t.VI = vI
	vJ, err := Read[TJ, PJ](reader)
	if err != nil {
		return err
	}
	t.VJ = vJ
	return nil
}

func (t *Tuple10[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		Write[TB, PB](inner, t.VB)
		Write[TC, PC](inner, t.VC)
		Write[TD, PD](inner, t.VD)
		Write[TE, PE](inner, t.VE)
		Write[TF, PF](inner, t.VF)
		Write[TG, PG](inner, t.VG)
		Write[TH, PH](inner, t.VH)
		Write[TI, PI](inner, t.VI)
		Write[TJ, PJ](inner, t.VJ)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
	Write[TB, PB](w, t.VB)
	Write[TC, PC](w, t.VC)
	Write[TD, PD](w, t.VD)
	Write[TE, PE](w, t.VE)
	Write[TF, PF](w, t.VF)
	Write[TG, PG](w, t.VG)
	Write[TH, PH](w, t.VH)
	Write[TI, PI](w, t.VI)
	Write[TJ, PJ](w, t.VJ)
}

// Tuple11 is the 11-element tuple codec.
type Tuple11[TA any, PA pointerCodec[TA], TB any, PB pointerCodec[TB], TC any, PC pointerCodec[TC], TD any, PD pointerCodec[TD], TE any, PE pointerCodec[TE], TF any, PF pointerCodec[TF], TG any, PG pointerCodec[TG], TH any, PH pointerCodec[TH], TI any, PI pointerCodec[TI], TJ any, PJ pointerCodec[TJ], TK any, PK pointerCodec[TK]] struct {
	VA TA
	VB TB
	VC TC
	VD TD
	VE TE
	VF TF
	VG TG
	VH TH
	VI TI
	VJ TJ
	VK TK
}

func (t *Tuple11[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]() && HasStaticSize[TB, PB]() && HasStaticSize[TC, PC]() && HasStaticSize[TD, PD]() && HasStaticSize[TE, PE]() && HasStaticSize[TF, PF]() && HasStaticSize[TG, PG]() && HasStaticSize[TH, PH]() && HasStaticSize[TI, PI]() && HasStaticSize[TJ, PJ]() && HasStaticSize[TK, PK]()
}

func (*Tuple11[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK]) isExplicitTuple() bool { return true }

func (t *Tuple11[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	vB, err := Read[TB, PB](reader)
	if err != nil {
		return err
	}
	t.VB = vB
	vC, err := Read[TC, PC](reader)
	if err != nil {
		return err
	}
	t.VC = vC
	vD, err := Read[TD, PD](reader)
	if err != nil {
		return err
	}
	t.VD = vD
	vE, err := Read[TE, PE](reader)
	if err != nil {
		return err
	}
	t.VE = vE
	vF, err := Read[TF, PF](reader)
	if err != nil {
		return err
	}
	t.VF = vF
	vG, err := Read[TG, PG](reader)
	if err != nil {
		return err
	}
	t.VG = vG
	vH, err := Read[TH, PH](reader)
	if err != nil {
		return err
	}
	t.VH = vH
	vI, err := Read[TI, PI](reader)
	if err != nil {
		return err
	}
	t.VI = vI
	vJ, err := Read[TJ, PJ](reader)
	if err != nil {
		return err
	}
	t.VJ = vJ
	vK, err := Read[TK, PK](reader)
	if err != nil {
		return err
	}
	t.VK = vK
	return nil
}

func (t *Tuple11[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		Write[TB, PB](inner, t.VB)
		Write[TC, PC](inner, t.VC)
		Write[TD, PD](inner, t.VD)
		Write[TE, PE](inner, t.VE)
		Write[TF, PF](inner, t.VF)
		Write[TG, PG](inner, t.VG)
		Write[TH, PH](inner, t.VH)
		Write[TI, PI](inner, t.VI)
		Write[TJ, PJ](inner, t.VJ)
		Write[TK, PK](inner, t.VK)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
	Write[TB, PB](w, t.VB)
	Write[TC, PC](w, t.VC)
	Write[TD, PD](w, t.VD)
	Write[TE, PE](w, t.VE)
	Write[TF, PF](w, t.VF)
	Write[TG, PG](w, t.VG)
	Write[TH, PH](w, t.VH)
	Write[TI, PI](w, t.VI)
	Write[TJ, PJ](w, t.VJ)
	Write[TK, PK](w, t.VK)
}

// Tuple12 is the 12-element tuple codec.
type Tuple12[TA any, PA pointerCodec[TA], TB any, PB pointerCodec[TB], TC any, PC pointerCodec[TC], TD any, PD pointerCodec[TD], TE any, PE pointerCodec[TE], TF any, PF pointerCodec[TF], TG any, PG pointerCodec[TG], TH any, PH pointerCodec[TH], TI any, PI pointerCodec[TI], TJ any, PJ pointerCodec[TJ], TK any, PK pointerCodec[TK], TL any, PL pointerCodec[TL]] struct {
	VA TA
	VB TB
	VC TC
	VD TD
	VE TE
	VF TF
	VG TG
	VH TH
	VI TI
	VJ TJ
	VK TK
	VL TL
}

func (t *Tuple12[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]() && HasStaticSize[TB, PB]() && HasStaticSize[TC, PC]() && HasStaticSize[TD, PD]() && HasStaticSize[TE, PE]() && HasStaticSize[TF, PF]() && HasStaticSize[TG, PG]() && HasStaticSize[TH, PH]() && HasStaticSize[TI, PI]() && HasStaticSize[TJ, PJ]() && HasStaticSize[TK, PK]() && HasStaticSize[TL, PL]()
}

func (*Tuple12[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL]) isExplicitTuple() bool { return true }

func (t *Tuple12[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	vB, err := Read[TB, PB](reader)
	if err != nil {
		return err
	}
	t.VB = vB
	vC, err := Read[TC, PC](reader)
	if err != nil {
		return err
	}
	t.VC = vC
	vD, err := Read[TD, PD](reader)
	if err != nil {
		return err
	}
	t.VD = vD
	vE, err := Read[TE, PE](reader)
	if err != nil {
		return err
	}
	t.VE = vE
	vF, err := Read[TF, PF](reader)
	if err != nil {
		return err
	}
	t.VF = vF
	vG, err := Read[TG, PG](reader)
	if err != nil {
		return err
	}
	t.VG = vG
	vH, err := Read[TH, PH](reader)
	if err != nil {
		return err
	}
	t.VH = vH
	vI, err := Read[TI, PI](reader)
	if err != nil {
		return err
	}
	t.VI = vI
	vJ, err := Read[TJ, PJ](reader)
	if err != nil {
		return err
	}
	t.VJ = vJ
	vK, err := Read[TK, PK](reader)
	if err != nil {
		return err
	}
	t.VK = vK
	vL, err := Read[TL, PL](reader)
	if err != nil {
		return err
	}
	t.VL = vL
	return nil
}

func (t *Tuple12[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		Write[TB, PB](inner, t.VB)
		Write[TC, PC](inner, t.VC)
		Write[TD, PD](inner, t.VD)
		Write[TE, PE](inner, t.VE)
		Write[TF, PF](inner, t.VF)
		Write[TG, PG](inner, t.VG)
		Write[TH, PH](inner, t.VH)
		Write[TI, PI](inner, t.VI)
		Write[TJ, PJ](inner, t.VJ)
		Write[TK, PK](inner, t.VK)
		Write[TL, PL](inner, t.VL)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
	Write[TB, PB](w, t.VB)
	Write[TC, PC](w, t.VC)
	Write[TD, PD](w, t.VD)
	Write[TE, PE](w, t.VE)
	Write[TF, PF](w, t.VF)
	Write[TG, PG](w, t.VG)
	Write[TH, PH](w, t.VH)
	Write[TI, PI](w, t.VI)
	Write[TJ, PJ](w, t.VJ)
	Write[TK, PK](w, t.VK)
	Write[TL, PL](w, t.VL)
}

// Tuple13 is the 13-element tuple codec.
type Tuple13[TA any, PA pointerCodec[TA], TB any, PB pointerCodec[TB], TC any, PC pointerCodec[TC], TD any, PD pointerCodec[TD], TE any, PE pointerCodec[TE], TF any, PF pointerCodec[TF], TG any, PG pointerCodec[TG], TH any, PH pointerCodec[TH], TI any, PI pointerCodec[TI], TJ any, PJ pointerCodec[TJ], TK any, PK pointerCodec[TK], TL any, PL pointerCodec[TL], TM any, PM pointerCodec[TM]] struct {
	VA TA
	VB TB
	VC TC
	VD TD
	VE TE
	VF TF
	VG TG
	VH TH
	VI TI
	VJ TJ
	VK TK
	VL TL
	VM TM
}

func (t *Tuple13[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]() && HasStaticSize[TB, PB]() && HasStaticSize[TC, PC]() && HasStaticSize[TD, PD]() && HasStaticSize[TE, PE]() && HasStaticSize[TF, PF]() && HasStaticSize[TG, PG]() && HasStaticSize[TH, PH]() && HasStaticSize[TI, PI]() && HasStaticSize[TJ, PJ]() && HasStaticSize[TK, PK]() && HasStaticSize[TL, PL]() && HasStaticSize[TM, PM]()
}

func (*Tuple13[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM]) isExplicitTuple() bool { return true }

func (t *Tuple13[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	vB, err := Read[TB, PB](reader)
	if err != nil {
		return err
	}
	t.VB = vB
	vC, err := Read[TC, PC](reader)
	if err != nil {
		return err
	}
	t.VC = vC
	vD, err := Read[TD, PD](reader)
	if err != nil {
		return err
	}
	t.VD = vD
	vE, err := Read[TE, PE](reader)
	if err != nil {
		return err
	}
	t.VE = vE
	vF, err := Read[TF, PF](reader)
	if err != nil {
		return err
	}
	t.VF = vF
	vG, err := Read[TG, PG](reader)
	if err != nil {
		return err
	}
	t.VG = vG
	vH, err := Read[TH, PH](reader)
	if err != nil {
		return err
	}
	t.VH = vH
	vI, err := Read[TI, PI](reader)
	if err != nil {
		return err
	}
	t.VI = vI
	vJ, err := Read[TJ, PJ](reader)
	if err != nil {
		return err
	}
	t.VJ = vJ
	vK, err := Read[TK, PK](reader)
	if err != nil {
		return err
	}
	t.VK = vK
	vL, err := Read[TL, PL](reader)
	if err != nil {
		return err
	}
	t.VL = vL
	vM, err := Read[TM, PM](reader)
	if err != nil {
		return err
	}
	t.VM = vM
	return nil
}

func (t *Tuple13[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		Write[TB, PB](inner, t.VB)
		Write[TC, PC](inner, t.VC)
		Write[TD, PD](inner, t.VD)
		Write[TE, PE](inner, t.VE)
		Write[TF, PF](inner, t.VF)
		Write[TG, PG](inner, t.VG)
		Write[TH, PH](inner, t.VH)
		Write[TI, PI](inner, t.VI)
		Write[TJ, PJ](inner, t.VJ)
		Write[TK, PK](inner, t.VK)
		Write[TL, PL](inner, t.VL)
		Write[TM, PM](inner, t.VM)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
	Write[TB, PB](w, t.VB)
	Write[TC, PC](w, t.VC)
	Write[TD, PD](w, t.VD)
	Write[TE, PE](w, t.VE)
	Write[TF, PF](w, t.VF)
	Write[TG, PG](w, t.VG)
	Write[TH, PH](w, t.VH)
	Write[TI, PI](w, t.VI)
	Write[TJ, PJ](w, t.VJ)
	Write[TK, PK](w, t.VK)
	Write[TL, PL](w, t.VL)
	Write[TM, PM](w, t.VM)
}

// Tuple14 is the 14-element tuple codec.
type Tuple14[TA any, PA pointerCodec[TA], TB any, PB pointerCodec[TB], TC any, PC pointerCodec[TC], TD any, PD pointerCodec[TD], TE any, PE pointerCodec[TE], TF any, PF pointerCodec[TF], TG any, PG pointerCodec[TG], TH any, PH pointerCodec[TH], TI any, PI pointerCodec[TI], TJ any, PJ pointerCodec[TJ], TK any, PK pointerCodec[TK], TL any, PL pointerCodec[TL], TM any, PM pointerCodec[TM], TN any, PN pointerCodec[TN]] struct {
	VA TA
	VB TB
	VC TC
	VD TD
	VE TE
	VF TF
	VG TG
	VH TH
	VI TI
	VJ TJ
	VK TK
	VL TL
	VM TM
	VN TN
}

func (t *Tuple14[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]() && HasStaticSize[TB, PB]() && HasStaticSize[TC, PC]() && HasStaticSize[TD, PD]() && HasStaticSize[TE, PE]() && HasStaticSize[TF, PF]() && HasStaticSize[TG, PG]() && HasStaticSize[TH, PH]() && HasStaticSize[TI, PI]() && HasStaticSize[TJ, PJ]() && HasStaticSize[TK, PK]() && HasStaticSize[TL, PL]() && HasStaticSize[TM, PM]() && HasStaticSize[TN, PN]()
}

func (*Tuple14[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN]) isExplicitTuple() bool { return true }

func (t *Tuple14[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	vB, err := Read[TB, PB](reader)
	if err != nil {
		return err
	}
	t.VB = vB
	vC, err := Read[TC, PC](reader)
	if err != nil {
		return err
	}
	t.VC = vC
	vD, err := Read[TD, PD](reader)
	if err != nil {
		return err
	}
	t.VD = vD
	vE, err := Read[TE, PE](reader)
	if err != nil {
		return err
	}
	t.VE = vE
	vF, err := Read[TF, PF](reader)
	if err != nil {
		return err
	}
	t.VF = vF
	vG, err := Read[TG, PG](reader)
	if err != nil {
		return err
	}
	t.VG = vG
	vH, err := Read[TH, PH](reader)
	if err != nil {
		return err
	}
	t.VH = vH
	vI, err := Read[TI, PI](reader)
	if err != nil {
		return err
	}
	t.VI = vI
	vJ, err := Read[TJ, PJ](reader)
	if err != nil {
		return err
	}
	t.VJ = vJ
	vK, err := Read[TK, PK](reader)
	if err != nil {
		return err
	}
	t.VK = vK
	vL, err := Read[TL, PL](reader)
	if err != nil {
		return err
	}
	t.VL = vL
	vM, err := Read[TM, PM](reader)
	if err != nil {
		return err
	}
	t.VM = vM
	vN, err := Read[TN, PN](reader)
	if err != nil {
		return err
	}
	t.VN = vN
	return nil
}

func (t *Tuple14[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		Write[TB, PB](inner, t.VB)
		Write[TC, PC](inner, t.VC)
		Write[TD, PD](inner, t.VD)
		Write[TE, PE](inner, t.VE)
		Write[TF, PF](inner, t.VF)
		Write[TG, PG](inner, t.VG)
		Write[TH, PH](inner, t.VH)
		Write[TI, PI](inner, t.VI)
		Write[TJ, PJ](inner, t.VJ)
		Write[TK, PK](inner, t.VK)
		Write[TL, PL](inner, t.VL)
		Write[TM, PM](inner, t.VM)
		Write[TN, PN](inner, t.VN)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
	Write[TB, PB](w, t.VB)
	Write[TC, PC](w, t.VC)
	Write[TD, PD](w, t.VD)
	Write[TE, PE](w, t.VE)
	Write[TF, PF](w, t.VF)
	Write[TG, PG](w, t.VG)
	Write[TH, PH](w, t.VH)
	Write[TI, PI](w, t.VI)
	Write[TJ, PJ](w, t.VJ)
	Write[TK, PK](w, t.VK)
	Write[TL, PL](w, t.VL)
	Write[TM, PM](w, t.VM)
	Write[TN, PN](w, t.VN)
}

// Tuple15 is the 15-element tuple codec.
type Tuple15[TA any, PA pointerCodec[TA], TB any, PB pointerCodec[TB], TC any, PC pointerCodec[TC], TD any, PD pointerCodec[TD], TE any, PE pointerCodec[TE], TF any, PF pointerCodec[TF], TG any, PG pointerCodec[TG], TH any, PH pointerCodec[TH], TI any, PI pointerCodec[TI], TJ any, PJ pointerCodec[TJ], TK any, PK pointerCodec[TK], TL any, PL pointerCodec[TL], TM any, PM pointerCodec[TM], TN any, PN pointerCodec[TN], TO any, PO pointerCodec[TO]] struct {
	VA TA
	VB TB
	VC TC
	VD TD
	VE TE
	VF TF
	VG TG
	VH TH
	VI TI
	VJ TJ
	VK TK
	VL TL
	VM TM
	VN TN
	VO TO
}

func (t *Tuple15[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN, TO, PO]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]() && HasStaticSize[TB, PB]() && HasStaticSize[TC, PC]() && HasStaticSize[TD, PD]() && HasStaticSize[TE, PE]() && HasStaticSize[TF, PF]() && HasStaticSize[TG, PG]() && HasStaticSize[TH, PH]() && HasStaticSize[TI, PI]() && HasStaticSize[TJ, PJ]() && HasStaticSize[TK, PK]() && HasStaticSize[TL, PL]() && HasStaticSize[TM, PM]() && HasStaticSize[TN, PN]() && HasStaticSize[TO, PO]()
}

func (*Tuple15[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN, TO, PO]) isExplicitTuple() bool { return true }

func (t *Tuple15[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN, TO, PO]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	vB, err := Read[TB, PB](reader)
	if err != nil {
		return err
	}
	t.VB = vB
	vC, err := Read[TC, PC](reader)
	if err != nil {
		return err
	}
	t.VC = vC
	vD, err := Read[TD, PD](reader)
	if err != nil {
		return err
	}
	t.VD = vD
	vE, err := Read[TE, PE](reader)
	if err != nil {
		return err
	}
	t.VE = vE
	vF, err := Read[TF, PF](reader)
	if err != nil {
		return err
	}
	t.VF = vF
	vG, err := Read[TG, PG](reader)
	if err != nil {
		return err
	}
	t.VG = vG
	vH, err := Read[TH, PH](reader)
	if err != nil {
		return err
	}
	t.VH = vH
	vI, err := Read[TI, PI](reader)
	if err != nil {
		return err
	}
	t.VI = vI
	vJ, err := Read[TJ, PJ](reader)
	if err != nil {
		return err
	}
	t.VJ = vJ
	vK, err := Read[TK, PK](reader)
	if err != nil {
		return err
	}
	t.VK = vK
	vL, err := Read[TL, PL](reader)
	if err != nil {
		return err
	}
	t.VL = vL
	vM, err := Read[TM, PM](reader)
	if err != nil {
		return err
	}
	t.VM = vM
	vN, err := Read[TN, PN](reader)
	if err != nil {
		return err
	}
	t.VN = vN
	vO, err := Read[TO, PO](reader)
	if err != nil {
		return err
	}
	t.VO = vO
	return nil
}

func (t *Tuple15[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN, TO, PO]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		Write[TB, PB](inner, t.VB)
		Write[TC, PC](inner, t.VC)
		Write[TD, PD](inner, t.VD)
		Write[TE, PE](inner, t.VE)
		Write[TF, PF](inner, t.VF)
		Write[TG, PG](inner, t.VG)
		Write[TH, PH](inner, t.VH)
		Write[TI, PI](inner, t.VI)
		Write[TJ, PJ](inner, t.VJ)
		Write[TK, PK](inner, t.VK)
		Write[TL, PL](inner, t.VL)
		Write[TM, PM](inner, t.VM)
		Write[TN, PN](inner, t.VN)
		Write[TO, PO](inner, t.VO)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
	Write[TB, PB](w, t.VB)
	Write[TC, PC](w, t.VC)
	Write[TD, PD](w, t.VD)
	Write[TE, PE](w, t.VE)
	Write[TF, PF](w, t.VF)
	Write[TG, PG](w, t.VG)
	Write[TH, PH](w, t.VH)
	Write[TI, PI](w, t.VI)
	Write[TJ, PJ](w, t.VJ)
	Write[TK, PK](w, t.VK)
	Write[TL, PL](w, t.VL)
	Write[TM, PM](w, t.VM)
	Write[TN, PN](w, t.VN)
	Write[TO, PO](w, t.VO)
}

// Tuple16 is the 16-element tuple codec.
type Tuple16[TA any, PA pointerCodec[TA], TB any, PB pointerCodec[TB], TC any, PC pointerCodec[TC], TD any, PD pointerCodec[TD], TE any, PE pointerCodec[TE], TF any, PF pointerCodec[TF], TG any, PG pointerCodec[TG], TH any, PH pointerCodec[TH], TI any, PI pointerCodec[TI], TJ any, PJ pointerCodec[TJ], TK any, PK pointerCodec[TK], TL any, PL pointerCodec[TL], TM any, PM pointerCodec[TM], TN any, PN pointerCodec[TN], TO any, PO pointerCodec[TO], TP any, PP pointerCodec[TP]] struct {
	VA TA
	VB TB
	VC TC
	VD TD
	VE TE
	VF TF
	VG TG
	VH TH
	VI TI
	VJ TJ
	VK TK
	VL TL
	VM TM
	VN TN
	VO TO
	VP TP
}

func (t *Tuple16[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN, TO, PO, TP, PP]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]() && HasStaticSize[TB, PB]() && HasStaticSize[TC, PC]() && HasStaticSize[TD, PD]() && HasStaticSize[TE, PE]() && HasStaticSize[TF, PF]() && HasStaticSize[TG, PG]() && HasStaticSize[TH, PH]() && HasStaticSize[TI, PI]() && HasStaticSize[TJ, PJ]() && HasStaticSize[TK, PK]() && HasStaticSize[TL, PL]() && HasStaticSize[TM, PM]() && HasStaticSize[TN, PN]() && HasStaticSize[TO, PO]() && HasStaticSize[TP, PP]()
}

func (*Tuple16[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN, TO, PO, TP, PP]) isExplicitTuple() bool { return true }

func (t *Tuple16[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN, TO, PO, TP, PP]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	vB, err := Read[TB, PB](reader)
	if err != nil {
		return err
	}
	t.VB = vB
	vC, err := Read[TC, PC](reader)
	if err != nil {
		return err
	}
	t.VC = vC
	vD, err := Read[TD, PD](reader)
	if err != nil {
		return err
	}
	t.VD = vD
	vE, err := Read[TE, PE](reader)
	if err != nil {
		return err
	}
	t.VE = vE
	vF, err := Read[TF, PF](reader)
	if err != nil {
		return err
	}
	t.VF = vF
	vG, err := Read[TG, PG](reader)
	if err != nil {
		return err
	}
	t.VG = vG
	vH, err := Read[TH, PH](reader)
	if err != nil {
		return err
	}
	t.VH = vH
	vI, err := Read[TI, PI](reader)
	if err != nil {
		return err
	}
	t.VI = vI
	vJ, err := Read[TJ, PJ](reader)
	if err != nil {
		return err
	}
	t.VJ = vJ
	vK, err := Read[TK, PK](reader)
	if err != nil {
		return err
	}
	t.VK = vK
	vL, err := Read[TL, PL](reader)
	if err != nil {
		return err
	}
	t.VL = vL
	vM, err := Read[TM, PM](reader)
	if err != nil {
		return err
	}
	t.VM = vM
	vN, err := Read[TN, PN](reader)
	if err != nil {
		return err
	}
	t.VN = vN
	vO, err := Read[TO, PO](reader)
	if err != nil {
		return err
	}
	t.VO = vO
	vP, err := Read[TP, PP](reader)
	if err != nil {
		return err
	}
	t.VP = vP
	return nil
}

func (t *Tuple16[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN, TO, PO, TP, PP]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		Write[TB, PB](inner, t.VB)
		Write[TC, PC](inner, t.VC)
		Write[TD, PD](inner, t.VD)
		Write[TE, PE](inner, t.VE)
		Write[TF, PF](inner, t.VF)
		Write[TG, PG](inner, t.VG)
		Write[TH, PH](inner, t.VH)
		Write[TI, PI](inner, t.VI)
		Write[TJ, PJ](inner, t.VJ)
		Write[TK, PK](inner, t.VK)
		Write[TL, PL](inner, t.VL)
		Write[TM, PM](inner, t.VM)
		Write[TN, PN](inner, t.VN)
		Write[TO, PO](inner, t.VO)
		Write[TP, PP](inner, t.VP)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
	Write[TB, PB](w, t.VB)
	Write[TC, PC](w, t.VC)
	Write[TD, PD](w, t.VD)
	Write[TE, PE](w, t.VE)
	Write[TF, PF](w, t.VF)
	Write[TG, PG](w, t.VG)
	Write[TH, PH](w, t.VH)
	Write[TI, PI](w, t.VI)
	Write[TJ, PJ](w, t.VJ)
	Write[TK, PK](w, t.VK)
	Write[TL, PL](w, t.VL)
	Write[TM, PM](w, t.VM)
	Write[TN, PN](w, t.VN)
	Write[TO, PO](w, t.VO)
	Write[TP, PP](w, t.VP)
}

// Tuple17 is the 17-element tuple codec.
type Tuple17[TA any, PA pointerCodec[TA], TB any, PB pointerCodec[TB], TC any, PC pointerCodec[TC], TD any, PD pointerCodec[TD], TE any, PE pointerCodec[TE], TF any, PF pointerCodec[TF], TG any, PG pointerCodec[TG], TH any, PH pointerCodec[TH], TI any, PI pointerCodec[TI], TJ any, PJ pointerCodec[TJ], TK any, PK pointerCodec[TK], TL any, PL pointerCodec[TL], TM any, PM pointerCodec[TM], TN any, PN pointerCodec[TN], TO any, PO pointerCodec[TO], TP any, PP pointerCodec[TP], TQ any, PQ pointerCodec[TQ]] struct {
	VA TA
	VB TB
	VC TC
	VD TD
	VE TE
	VF TF
	VG TG
	VH TH
	VI TI
	VJ TJ
	VK TK
	VL TL
	VM TM
	VN TN
	VO TO
	VP TP
	VQ TQ
}

func (t *Tuple17[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN, TO, PO, TP, PP, TQ, PQ]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]() && HasStaticSize[TB, PB]() && HasStaticSize[TC, PC]() && HasStaticSize[TD, PD]() && HasStaticSize[TE, PE]() && HasStaticSize[TF, PF]() && HasStaticSize[TG, PG]() && HasStaticSize[TH, PH]() && HasStaticSize[TI, PI]() && HasStaticSize[TJ, PJ]() && HasStaticSize[TK, PK]() && HasStaticSize[TL, PL]() && HasStaticSize[TM, PM]() && HasStaticSize[TN, PN]() && HasStaticSize[TO, PO]() && HasStaticSize[TP, PP]() && HasStaticSize[TQ, PQ]()
}

func (*Tuple17[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN, TO, PO, TP, PP, TQ, PQ]) isExplicitTuple() bool { return true }

func (t *Tuple17[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN, TO, PO, TP, PP, TQ, PQ]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	vB, err := Read[TB, PB](reader)
	if err != nil {
		return err
	}
	t.VB = vB
	vC, err := Read[TC, PC](reader)
	if err != nil {
		return err
	}
	t.VC = vC
	vD, err := Read[TD, PD](reader)
	if err != nil {
		return err
	}
	t.VD = vD
	vE, err := Read[TE, PE](reader)
	if err != nil {
		return err
	}
	t.VE = vE
	vF, err := Read[TF, PF](reader)
	if err != nil {
		return err
	}
	t.VF = vF
	vG, err := Read[TG, PG](reader)
	if err != nil {
		return err
	}
	t.VG = vG
	vH, err := Read[TH, PH](reader)
	if err != nil {
		return err
	}
	t.VH = vH
	vI, err := Read[TI, PI](reader)
	if err != nil {
		return err
	}
	t.VI = vI
	vJ, err := Read[TJ, PJ](reader)
	if err != nil {
		return err
	}
	t.VJ = vJ
	vK, err := Read[TK, PK](reader)
	if err != nil {
		return err
	}
	t.VK = vK
	vL, err := Read[TL, PL](reader)
	if err != nil {
		return err
	}
	t.VL = vL
	vM, err := Read[TM, PM](reader)
	if err != nil {
		return err
	}
	t.VM = vM
	vN, err := Read[TN, PN](reader)
	if err != nil {
		return err
	}
	t.VN = vN
	vO, err := Read[TO, PO](reader)
	if err != nil {
		return err
	}
	t.VO = vO
	vP, err := Read[TP, PP](reader)
	if err != nil {
		return err
	}
	t.VP = vP
	vQ, err := Read[TQ, PQ](reader)
	if err != nil {
		return err
	}
	t.VQ = vQ
	return nil
}

func (t *Tuple17[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN, TO, PO, TP, PP, TQ, PQ]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		Write[TB, PB](inner, t.VB)
		Write[TC, PC](inner, t.VC)
		Write[TD, PD](inner, t.VD)
		Write[TE, PE](inner, t.VE)
		Write[TF, PF](inner, t.VF)
		Write[TG, PG](inner, t.VG)
		Write[TH, PH](inner, t.VH)
		Write[TI, PI](inner, t.VI)
		Write[TJ, PJ](inner, t.VJ)
		Write[TK, PK](inner, t.VK)
		Write[TL, PL](inner, t.VL)
		Write[TM, PM](inner, t.VM)
		Write[TN, PN](inner, t.VN)
		Write[TO, PO](inner, t.VO)
		Write[TP, PP](inner, t.VP)
		Write[TQ, PQ](inner, t.VQ)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
	Write[TB, PB](w, t.VB)
	Write[TC, PC](w, t.VC)
	Write[TD, PD](w, t.VD)
	Write[TE, PE](w, t.VE)
	Write[TF, PF](w, t.VF)
	Write[TG, PG](w, t.VG)
	Write[TH, PH](w, t.VH)
	Write[TI, PI](w, t.VI)
	Write[TJ, PJ](w, t.VJ)
	Write[TK, PK](w, t.VK)
	Write[TL, PL](w, t.VL)
	Write[TM, PM](w, t.VM)
	Write[TN, PN](w, t.VN)
	Write[TO, PO](w, t.VO)
	Write[TP, PP](w, t.VP)
	Write[TQ, PQ](w, t.VQ)
}

// Tuple18 is the 18-element tuple codec.
type Tuple18[TA any, PA pointerCodec[TA], TB any, PB pointerCodec[TB], TC any, PC pointerCodec[TC], TD any, PD pointerCodec[TD], TE any, PE pointerCodec[TE], TF any, PF pointerCodec[TF], TG any, PG pointerCodec[TG], TH any, PH pointerCodec[TH], TI any, PI pointerCodec[TI], TJ any, PJ pointerCodec[TJ], TK any, PK pointerCodec[TK], TL any, PL pointerCodec[TL], TM any, PM pointerCodec[TM], TN any, PN pointerCodec[TN], TO any, PO pointerCodec[TO], TP any, PP pointerCodec[TP], TQ any, PQ pointerCodec[TQ], TR any, PR pointerCodec[TR]] struct {
	VA TA
	VB TB
	VC TC
	VD TD
	VE TE
	VF TF
	VG TG
	VH TH
	VI TI
	VJ TJ
	VK TK
	VL TL
	VM TM
	VN TN
	VO TO
	VP TP
	VQ TQ
	VR TR
}

func (t *Tuple18[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN, TO, PO, TP, PP, TQ, PQ, TR, PR]) hasStaticSize() bool {
	return HasStaticSize[TA, PA]() && HasStaticSize[TB, PB]() && HasStaticSize[TC, PC]() && HasStaticSize[TD, PD]() && HasStaticSize[TE, PE]() && HasStaticSize[TF, PF]() && HasStaticSize[TG, PG]() && HasStaticSize[TH, PH]() && HasStaticSize[TI, PI]() && HasStaticSize[TJ, PJ]() && HasStaticSize[TK, PK]() && HasStaticSize[TL, PL]() && HasStaticSize[TM, PM]() && HasStaticSize[TN, PN]() && HasStaticSize[TO, PO]() && HasStaticSize[TP, PP]() && HasStaticSize[TQ, PQ]() && HasStaticSize[TR, PR]()
}

func (*Tuple18[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN, TO, PO, TP, PP, TQ, PQ, TR, PR]) isExplicitTuple() bool { return true }

func (t *Tuple18[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN, TO, PO, TP, PP, TQ, PQ, TR, PR]) readValue(r *Reader) error {
	reader := r
	if !t.hasStaticSize() {
		inner, err := r.ReadPointer()
		if err != nil {
			return err
		}
		reader = inner
	}
	vA, err := Read[TA, PA](reader)
	if err != nil {
		return err
	}
	t.VA = vA
	vB, err := Read[TB, PB](reader)
	if err != nil {
		return err
	}
	t.VB = vB
	vC, err := Read[TC, PC](reader)
	if err != nil {
		return err
	}
	t.VC = vC
	vD, err := Read[TD, PD](reader)
	if err != nil {
		return err
	}
	t.VD = vD
	vE, err := Read[TE, PE](reader)
	if err != nil {
		return err
	}
	t.VE = vE
	vF, err := Read[TF, PF](reader)
	if err != nil {
		return err
	}
	t.VF = vF
	vG, err := Read[TG, PG](reader)
	if err != nil {
		return err
	}
	t.VG = vG
	vH, err := Read[TH, PH](reader)
	if err != nil {
		return err
	}
	t.VH = vH
	vI, err := Read[TI, PI](reader)
	if err != nil {
		return err
	}
	t.VI = vI
	vJ, err := Read[TJ, PJ](reader)
	if err != nil {
		return err
	}
	t.VJ = vJ
	vK, err := Read[TK, PK](reader)
	if err != nil {
		return err
	}
	t.VK = vK
	vL, err := Read[TL, PL](reader)
	if err != nil {
		return err
	}
	t.VL = vL
	vM, err := Read[TM, PM](reader)
	if err != nil {
		return err
	}
	t.VM = vM
	vN, err := Read[TN, PN](reader)
	if err != nil {
		return err
	}
	t.VN = vN
	vO, err := Read[TO, PO](reader)
	if err != nil {
		return err
	}
	t.VO = vO
	vP, err := Read[TP, PP](reader)
	if err != nil {
		return err
	}
	t.VP = vP
	vQ, err := Read[TQ, PQ](reader)
	if err != nil {
		return err
	}
	t.VQ = vQ
	vR, err := Read[TR, PR](reader)
	if err != nil {
		return err
	}
	t.VR = vR
	return nil
}

func (t *Tuple18[TA, PA, TB, PB, TC, PC, TD, PD, TE, PE, TF, PF, TG, PG, TH, PH, TI, PI, TJ, PJ, TK, PK, TL, PL, TM, PM, TN, PN, TO, PO, TP, PP, TQ, PQ, TR, PR]) writeValue(w *Writer) {
	if !t.hasStaticSize() {
		inner := New()
		Write[TA, PA](inner, t.VA)
		Write[TB, PB](inner, t.VB)
		Write[TC, PC](inner, t.VC)
		Write[TD, PD](inner, t.VD)
		Write[TE, PE](inner, t.VE)
		Write[TF, PF](inner, t.VF)
		Write[TG, PG](inner, t.VG)
		Write[TH, PH](inner, t.VH)
		Write[TI, PI](inner, t.VI)
		Write[TJ, PJ](inner, t.VJ)
		Write[TK, PK](inner, t.VK)
		Write[TL, PL](inner, t.VL)
		Write[TM, PM](inner, t.VM)
		Write[TN, PN](inner, t.VN)
		Write[TO, PO](inner, t.VO)
		Write[TP, PP](inner, t.VP)
		Write[TQ, PQ](inner, t.VQ)
		Write[TR, PR](inner, t.VR)
		w.WritePointer(inner.Build())
		return
	}
	Write[TA, PA](w, t.VA)
	Write[TB, PB](w, t.VB)
	Write[TC, PC](w, t.VC)
	Write[TD, PD](w, t.VD)
	Write[TE, PE](w, t.VE)
	Write[TF, PF](w, t.VF)
	Write[TG, PG](w, t.VG)
	Write[TH, PH](w, t.VH)
	Write[TI, PI](w, t.VI)
	Write[TJ, PJ](w, t.VJ)
	Write[TK, PK](w, t.VK)
	Write[TL, PL](w, t.VL)
	Write[TM, PM](w, t.VM)
	Write[TN, PN](w, t.VN)
	Write[TO, PO](w, t.VO)
	Write[TP, PP](w, t.VP)
	Write[TQ, PQ](w, t.VQ)
	Write[TR, PR](w, t.VR)
}
