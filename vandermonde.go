package ida

import "github.com/idafec/gf256fec/internal/gf256"

// invertVandermonde returns the inverse of the k x k Vandermonde matrix at
// nodes {alpha^0, ..., alpha^(k-1)} for the field generator alpha=2,
// flattened row-major. It is degenerate (the 1x1 matrix [1]) for k=1.
//
// The derivation builds the coefficients of P(x) = prod(x - p_i) via
// synthetic expansion, then performs synthetic division at each node to
// read off a column of the inverse - the same closed-form construction
// used throughout the zfec/infectious lineage this package generalizes,
// rather than a generic O(k^3) Gauss-Jordan inversion of the forward
// Vandermonde matrix.
func invertVandermonde(k int) []byte {
	vdm := make([]byte, k*k)
	if k == 1 {
		vdm[0] = 1
		return vdm
	}

	b := make([]byte, k)
	c := make([]byte, k)

	for i := 1; i < k; i++ {
		pI := gf256.Exp(i)
		for j := k - 1 - (i - 1); j < k-1; j++ {
			c[j] ^= gf256.Mul(pI, c[j+1])
		}
		c[k-1] ^= pI
	}

	for row := 0; row < k; row++ {
		var pRow byte
		if row != 0 {
			pRow = gf256.Exp(row)
		}

		t := byte(1)
		b[k-1] = 1
		for i := k - 2; i >= 0; i-- {
			b[i] = c[i+1] ^ gf256.Mul(pRow, b[i+1])
			t = b[i] ^ gf256.Mul(pRow, t)
		}

		tInv, _ := gf256.Inv(t) // t != 0 because the nodes are distinct
		for col := 0; col < k; col++ {
			vdm[col*k+row] = gf256.Mul(tInv, b[col])
		}
	}

	return vdm
}
