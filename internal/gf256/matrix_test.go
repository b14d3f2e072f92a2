package gf256

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvertWithIdentity(t *testing.T) {
	m := NewMat(3, 3)
	m.Set(0, 0, 1)
	m.Set(0, 1, 2)
	m.Set(0, 2, 3)
	m.Set(1, 0, 4)
	m.Set(1, 1, 5)
	m.Set(1, 2, 6)
	m.Set(2, 0, 7)
	m.Set(2, 1, 8)
	m.Set(2, 2, 9)

	orig := make([]byte, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			orig[i*3+j] = m.Get(i, j)
		}
	}

	inv := Identity(3)
	m.InvertWith(inv)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := byte(0)
			if i == j {
				want = 1
			}
			require.Equalf(t, want, m.Get(i, j), "m[%d][%d] after invert", i, j)
		}
	}

	// m * inv should reconstruct the identity.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var acc byte
			for k := 0; k < 3; k++ {
				acc ^= Mul(orig[i*3+k], inv.Get(k, j))
			}
			want := byte(0)
			if i == j {
				want = 1
			}
			require.Equalf(t, want, acc, "orig*inv[%d][%d]", i, j)
		}
	}
}

func TestParityRoundTrip(t *testing.T) {
	// [I_2 | P] with P = [[2,3],[4,5]]
	m := NewMat(2, 4)
	m.Set(0, 0, 1)
	m.Set(1, 1, 1)
	m.Set(0, 2, 2)
	m.Set(0, 3, 3)
	m.Set(1, 2, 4)
	m.Set(1, 3, 5)

	out := m.Parity()
	require.Equal(t, 2, out.Rows())
	require.Equal(t, 4, out.Cols())
	// identity block at columns [2,4)
	require.EqualValues(t, 1, out.Get(0, 2))
	require.EqualValues(t, 0, out.Get(0, 3))
	require.EqualValues(t, 0, out.Get(1, 2))
	require.EqualValues(t, 1, out.Get(1, 3))
	// transposed P at columns [0,2)
	require.EqualValues(t, 2, out.Get(0, 0))
	require.EqualValues(t, 4, out.Get(0, 1))
	require.EqualValues(t, 3, out.Get(1, 0))
	require.EqualValues(t, 5, out.Get(1, 1))
}

func TestSwapAndScaleRow(t *testing.T) {
	m := NewMat(2, 2)
	m.Set(0, 0, 1)
	m.Set(0, 1, 2)
	m.Set(1, 0, 3)
	m.Set(1, 1, 4)

	m.SwapRow(0, 1)
	require.EqualValues(t, 3, m.Get(0, 0))
	require.EqualValues(t, 4, m.Get(0, 1))
	require.EqualValues(t, 1, m.Get(1, 0))
	require.EqualValues(t, 2, m.Get(1, 1))

	m.ScaleRow(0, 5)
	require.EqualValues(t, Mul(3, 5), m.Get(0, 0))
	require.EqualValues(t, Mul(4, 5), m.Get(0, 1))
}
