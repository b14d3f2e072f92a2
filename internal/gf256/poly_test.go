package gf256

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolyEval(t *testing.T) {
	// p(x) = 1 (constant)
	p := NewPoly([]byte{1})
	require.EqualValues(t, 1, p.Eval(0))
	require.EqualValues(t, 1, p.Eval(5))

	// p(x) = x (degree 1, coefficients [1, 0])
	p = NewPoly([]byte{1, 0})
	require.EqualValues(t, 0, p.Eval(0))
	require.EqualValues(t, 7, p.Eval(7))
}

func TestPolyIndex(t *testing.T) {
	// 3x^2 + 5x + 9
	p := NewPoly([]byte{3, 5, 9})
	require.EqualValues(t, 9, p.Index(0))
	require.EqualValues(t, 5, p.Index(1))
	require.EqualValues(t, 3, p.Index(2))
	require.EqualValues(t, 0, p.Index(3))
	require.EqualValues(t, 0, p.Index(-1))
}

func TestPolyAdd(t *testing.T) {
	a := NewPoly([]byte{1, 2, 3})
	b := NewPoly([]byte{9})
	sum := a.Add(b)
	require.Len(t, sum, 3)
	require.EqualValues(t, 1, sum.Index(2))
	require.EqualValues(t, 2, sum.Index(1))
	require.EqualValues(t, Add(3, 9), sum.Index(0))
}

func TestPolyDivExact(t *testing.T) {
	// (x + a) * (x + b) = x^2 + (a+b)x + a*b, divide back out by (x+a).
	a, b := byte(7), byte(13)
	ab := Mul(a, b)
	p := NewPoly([]byte{1, Add(a, b), ab})
	d := NewPoly([]byte{1, a})

	q, r, err := p.Div(d)
	require.NoError(t, err)
	require.True(t, r.IsZero())
	require.EqualValues(t, 1, q.Index(1))
	require.EqualValues(t, b, q.Index(0))
}

func TestPolyDivByZero(t *testing.T) {
	p := NewPoly([]byte{1, 2, 3})
	_, _, err := p.Div(ZeroPoly(1))
	require.ErrorIs(t, err, ErrDivideByZero)
}

// TestPolyDivBoundary covers a division where the dividend's degree
// exactly meets the divisor's on the final long-division step: that
// boundary must not spuriously raise ErrAlgebraError.
func TestPolyDivBoundary(t *testing.T) {
	q := make([]byte, 30)
	q[0] = 0x5e
	q[1] = 0x60
	q[28] = 0x09
	e := make([]byte, 11)
	e[0] = 0x01

	_, _, err := NewPoly(q).Div(NewPoly(e))
	require.NoError(t, err)
}
