package sequence

import "math/bits"

// Engine advances a State across a contiguous run of indices.
//
// Advance computes a(from) .. a(to) inclusive. On entry st holds
// (a(from-1), a(from-2)); on return it holds (a(to), a(to-1)). Every index
// whose reduced value is zero is reported to rec, in increasing order.
// Advance does nothing when from > to.
type Engine interface {
	Name() string
	Advance(st *State, from, to uint64, rec *ZeroRecorder)
}

// FastEngine computes the recurrence without division.
//
// Once both terms are reduced, a(n-1) <= n-2 and a(n-2) <= n-3, so their
// sum is at most 2n-5 and a single conditional subtraction of n yields the
// remainder. The loop is unrolled two steps at a time with the two state
// variables taking turns as the leading term, which removes the register
// shuffle of the naive formulation.
//
// Caller-supplied seeds need not be reduced. Until the bound holds the
// engine falls back to exact 128-bit reduction; this takes at most two
// indices, after which the bound is preserved by induction.
type FastEngine struct{}

// Name returns the engine identifier.
func (FastEngine) Name() string { return "Fast (branchless unrolled)" }

// Advance implements Engine.
func (FastEngine) Advance(st *State, from, to uint64, rec *ZeroRecorder) {
	x := from
	for x <= to && !reduced(*st, x) {
		exactStep(st, x, rec)
		x++
	}
	if x > to {
		return
	}

	a, b := st.A, st.B
	for x < to {
		// b becomes the leading term
		b += a
		if b >= x {
			b -= x
		}
		if b == 0 {
			rec.Record(x)
		}
		x++

		// a leads again
		a += b
		if a >= x {
			a -= x
		}
		if a == 0 {
			rec.Record(x)
		}
		x++
	}

	// odd number of indices left
	if x == to {
		a, b = a+b, a
		if a >= x {
			a -= x
		}
		if a == 0 {
			rec.Record(x)
		}
	}

	st.A, st.B = a, b
}

// reduced reports whether st may enter the single-subtraction loop at
// index x, i.e. a(x-1) <= x-2 and a(x-2) <= x-3.
func reduced(st State, x uint64) bool {
	return x >= 3 && st.A <= x-2 && st.B <= x-3
}

// exactStep computes a(x) = (a(x-1) + a(x-2)) mod x for arbitrary 64-bit
// terms. The sum is formed on 128 bits so it cannot wrap.
func exactStep(st *State, x uint64, rec *ZeroRecorder) {
	lo, hi := bits.Add64(st.A, st.B, 0)
	v := bits.Rem64(hi, lo, x)
	st.A, st.B = v, st.A
	rec.Check(v, x)
}

// ReferenceEngine applies the definition literally, one exact modulo per
// index. It is several times slower than FastEngine and exists to
// cross-check it.
type ReferenceEngine struct{}

// Name returns the engine identifier.
func (ReferenceEngine) Name() string { return "Reference (true modulo)" }

// Advance implements Engine.
func (ReferenceEngine) Advance(st *State, from, to uint64, rec *ZeroRecorder) {
	for x := from; x <= to; x++ {
		exactStep(st, x, rec)
	}
}
