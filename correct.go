package ida

import (
	"errors"
	"fmt"
	"sort"

	"github.com/idafec/gf256fec/internal/gf256"
)

// evalPoint maps a share number to the interpolation node the
// Berlekamp-Welch solver evaluates its polynomials at: node 0 is the
// field zero, and node m (m>0) is alpha^(m-1) for generator alpha=2. This
// matches the columns of vandMatrix built in NewFEC.
func evalPoint(num int) byte {
	if num == 0 {
		return 0
	}
	return gf256.Exp(num - 1)
}

// Correct implements the Berlekamp-Welch algorithm, detecting and
// repairing corrupted byte positions across shares in place. It requires
// at least k shares and can repair up to floor((len(shares)-k)/2)
// corrupted byte positions per coordinate; beyond that it fails with
// ErrTooManyErrors.
func (f *FEC) Correct(shares []Share) error {
	if len(shares) < f.k {
		return fmt.Errorf("ida: Correct: have %d shares, need %d: %w", len(shares), f.k, ErrNotEnoughShares)
	}

	sorted := make([]Share, len(shares))
	copy(sorted, shares)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })
	if err := checkDistinctNumbers(sorted); err != nil {
		return err
	}

	synd, err := f.syndromeMatrix(sorted)
	if err != nil {
		return err
	}

	shareLen := len(sorted[0].Data)
	for _, s := range sorted {
		if len(s.Data) != shareLen {
			return fmt.Errorf("ida: Correct: share %d has length %d, want %d: %w", s.Number, len(s.Data), shareLen, ErrInvalidLength)
		}
	}
	buf := make([]byte, shareLen)
	for i := 0; i < synd.Rows(); i++ {
		for b := range buf {
			buf[b] = 0
		}
		for j := 0; j < synd.Cols(); j++ {
			gf256.AddMul(buf, sorted[j].Data, synd.Get(i, j))
		}

		for idx, v := range buf {
			if v == 0 {
				continue
			}
			data, err := f.berlekampWelch(sorted, idx)
			if err != nil {
				return err
			}
			for _, s := range sorted {
				s.Data[idx] = data[s.Number]
			}
		}
	}
	return nil
}

// syndromeMatrix builds the parity-check matrix for the share numbers
// present in shares: the sub-Vandermonde matrix restricted to those
// columns, reduced to standard form and converted to its parity
// complement. A zero result at row i means share set i's linear
// combination of shares agrees with a valid codeword; a nonzero byte
// flags a corrupted position.
func (f *FEC) syndromeMatrix(shares []Share) (gf256.Mat, error) {
	keepers := make([]bool, f.n)
	count := 0
	for _, s := range shares {
		if s.Number < 0 || s.Number >= f.n {
			return gf256.Mat{}, fmt.Errorf("ida: share number %d out of range [0,%d): %w", s.Number, f.n, ErrInvalidShareNum)
		}
		if !keepers[s.Number] {
			keepers[s.Number] = true
			count++
		}
	}

	out := gf256.NewMat(f.k, count)
	for i := 0; i < f.k; i++ {
		skipped := 0
		for j := 0; j < f.n; j++ {
			if !keepers[j] {
				skipped++
				continue
			}
			out.Set(i, j-skipped, f.vandMatrix[i*f.n+j])
		}
	}

	out.Standardize()
	return out.Parity(), nil
}

// berlekampWelch recovers, for share byte position index, the value every
// share number in [0, n) should hold there, by solving for the polynomial
// Q and the monic error locator polynomial E satisfying
// Q(x_i) = received_i * E(x_i) at each share's node x_i, then taking the
// message polynomial P = Q / E.
func (f *FEC) berlekampWelch(shares []Share, index int) ([]byte, error) {
	r := len(shares)
	e := (r - f.k) / 2
	q := e + f.k
	if e <= 0 {
		return nil, fmt.Errorf("ida: berlekampWelch: %d shares insufficient for correction: %w", r, ErrNotEnoughShares)
	}

	dim := q + e
	s := gf256.NewMat(dim, dim)
	a := gf256.Identity(dim)
	fv := make([]byte, dim)

	for i := 0; i < dim; i++ {
		xi := evalPoint(shares[i].Number)
		ri := shares[i].Data[index]
		fv[i] = gf256.Mul(gf256.Pow(xi, e), ri)

		for j := 0; j < q; j++ {
			s.Set(i, j, gf256.Pow(xi, j))
		}
		for t := 0; t < e; t++ {
			j := q + t
			s.Set(i, j, gf256.Mul(gf256.Pow(xi, t), ri))
		}
	}

	s.InvertWith(a)

	u := make([]byte, dim)
	for i := 0; i < dim; i++ {
		row := a.Row(i)
		var dot byte
		for j := 0; j < dim; j++ {
			dot ^= gf256.Mul(row[j], fv[j])
		}
		u[i] = dot
	}
	reverseBytes(u)

	qPoly := gf256.NewPoly(u[e:])
	ePoly := make(gf256.Poly, e+1)
	ePoly[0] = 1
	copy(ePoly[1:], u[:e])

	pPoly, rem, err := qPoly.Div(ePoly)
	if err != nil {
		if errors.Is(err, gf256.ErrDivideByZero) {
			return nil, fmt.Errorf("ida: berlekampWelch: %w", ErrDivideByZero)
		}
		return nil, fmt.Errorf("ida: berlekampWelch: %w", ErrAlgebraError)
	}
	if !rem.IsZero() {
		return nil, fmt.Errorf("ida: berlekampWelch: %w", ErrTooManyErrors)
	}

	out := make([]byte, f.n)
	for i := 0; i < f.n; i++ {
		out[i] = pPoly.Eval(evalPoint(i))
	}
	return out, nil
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
