package gf256

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// allElems exhaustively applies f to every element of GF(2^8), failing the
// test with the offending value. allPairs below does the same over every
// element pair; GF(2^8) is small enough that both sweeps are cheap.
func allElems(t *testing.T, what string, f func(a byte) bool) {
	t.Helper()
	for a := 0; a < 256; a++ {
		require.Truef(t, f(byte(a)), "%s: %d failed", what, a)
	}
}

func allPairs(t *testing.T, what string, f func(a, b byte) bool) {
	t.Helper()
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			require.Truef(t, f(byte(a), byte(b)), "%s: %d %d failed", what, a, b)
		}
	}
}

func TestAdd(t *testing.T) {
	allPairs(t, "+ commutative", func(a, b byte) bool {
		return Add(a, b) == Add(b, a)
	})
	allElems(t, "+ identity", func(a byte) bool {
		return Add(a, 0) == a
	})
	allElems(t, "+ self-inverse", func(a byte) bool {
		return Add(a, a) == 0
	})
}

func TestMul(t *testing.T) {
	allPairs(t, "* commutative", func(a, b byte) bool {
		return Mul(a, b) == Mul(b, a)
	})
	allElems(t, "* identity", func(a byte) bool {
		return Mul(a, 1) == a
	})
	allElems(t, "* zero", func(a byte) bool {
		return Mul(a, 0) == 0
	})
	allElems(t, "* inverse", func(a byte) bool {
		if a == 0 {
			return true
		}
		inv, err := Inv(a)
		require.NoError(t, err)
		return Mul(a, inv) == 1
	})
}

func TestDivByZero(t *testing.T) {
	_, err := Div(5, 0)
	require.ErrorIs(t, err, ErrDivideByZero)

	_, err = Inv(0)
	require.ErrorIs(t, err, ErrDivideByZero)
}

func TestDivRoundTrip(t *testing.T) {
	allPairs(t, "a/b*b == a", func(a, b byte) bool {
		if b == 0 {
			return true
		}
		q, err := Div(a, b)
		if err != nil {
			return false
		}
		return Mul(q, b) == a
	})
}

func TestPow(t *testing.T) {
	allElems(t, "a^0 == 1", func(a byte) bool {
		return Pow(a, 0) == 1
	})
	require.EqualValues(t, 1, Pow(2, 255), "generator has multiplicative order 255")
	allElems(t, "a^1 == a", func(a byte) bool {
		return Pow(a, 1) == a
	})
}

func TestAddMul(t *testing.T) {
	z := []byte{1, 2, 3, 4}
	x := []byte{5, 6, 7, 8}
	want := make([]byte, len(z))
	for i := range want {
		want[i] = z[i] ^ Mul(x[i], 9)
	}
	AddMul(z, x, 9)
	require.Equal(t, want, z)

	z2 := []byte{1, 2, 3}
	orig := append([]byte(nil), z2...)
	AddMul(z2, []byte{9, 9, 9}, 0)
	require.Equal(t, orig, z2, "multiplying by zero is a no-op")
}
