package sequence

import "math/big"

// oracle computes a(from) .. a(to) from the definition using math/big, so
// it shares no arithmetic with either engine. It returns the final state and
// the zero indices, seeds included.
func oracle(seeds Seeds, from, to uint64) (State, []uint64) {
	var zeros []uint64
	if seeds.Prev2 == 0 {
		zeros = append(zeros, from-2)
	}
	if seeds.Prev1 == 0 {
		zeros = append(zeros, from-1)
	}
	a := new(big.Int).SetUint64(seeds.Prev1)
	b := new(big.Int).SetUint64(seeds.Prev2)
	n := new(big.Int)
	sum := new(big.Int)
	for x := from; x <= to; x++ {
		n.SetUint64(x)
		sum.Add(a, b).Mod(sum, n)
		b.Set(a)
		a.Set(sum)
		if a.Sign() == 0 {
			zeros = append(zeros, x)
		}
	}
	return State{A: a.Uint64(), B: b.Uint64()}, zeros
}

// advanceAll runs engine over [from, to] with a fresh recorder and returns
// the state and zero indices, seeds included.
func advanceAll(engine Engine, seeds Seeds, from, to uint64) (State, []uint64) {
	var zc ZeroCollector
	rec := NewZeroRecorder(&zc)
	rec.Check(seeds.Prev2, from-2)
	rec.Check(seeds.Prev1, from-1)
	st := seeds.State()
	engine.Advance(&st, from, to, rec)
	return st, zc.Indices()
}

func equalIndices(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
