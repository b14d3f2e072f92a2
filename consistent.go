package ida

import "errors"

// ErrNoConsistency is returned by Consistent when the input is empty or
// no share of the majority length survives its filtering.
var ErrNoConsistency = errors.New("ida: no consistent set of shares found")

// val tracks one observed value for a given parameter (share data length,
// in Consistent's case) and how many shares agreed on it.
type val struct {
	v int
	n int
}

func addval(vals []val, v int) []val {
	for i := range vals {
		if vals[i].v == v {
			vals[i].n++
			return vals
		}
	}
	return append(vals, val{v, 1})
}

func mostly(vals []val) (int, bool) {
	best := val{0, -1}
	for _, lv := range vals {
		if lv.n > best.n {
			best = lv
		}
	}
	if best.n < 0 {
		return 0, false
	}
	return best.v, true
}

// Consistent filters an unvetted slice of shares down to the subset that
// agrees with the majority on share length, discarding shares whose
// Number or Data is implausible for the given FEC. It is meant for
// callers gathering shares from unreliable sources (e.g. many peers)
// before ever calling Correct or Decode: badly-formed shares would
// otherwise make Correct's syndrome check meaningless.
//
// It returns ErrNoConsistency if the input is empty or if no share of the
// majority length has an in-range, not yet seen Number. When every share
// has a different length, the first share's length counts as the
// majority.
func (f *FEC) Consistent(shares []Share) ([]Share, error) {
	lens := []val{}
	for _, s := range shares {
		lens = addval(lens, len(s.Data))
	}
	lenMajority, ok := mostly(lens)
	if !ok {
		return nil, ErrNoConsistency
	}

	out := make([]Share, 0, len(shares))
	seen := make(map[int]bool, len(shares))
	for _, s := range shares {
		if len(s.Data) != lenMajority {
			continue
		}
		if s.Number < 0 || s.Number >= f.n {
			continue
		}
		if seen[s.Number] {
			continue
		}
		seen[s.Number] = true
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, ErrNoConsistency
	}
	return out, nil
}
