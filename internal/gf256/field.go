package gf256

import "errors"

// ErrDivideByZero is returned by Div and Inv when the divisor is zero.
// Zero has no multiplicative inverse in GF(2^8).
var ErrDivideByZero = errors.New("gf256: divide by zero")

// Add returns a XOR b, the field's addition (and its own inverse).
func Add(a, b byte) byte {
	return a ^ b
}

// Mul returns a*b via the precomputed multiplication table.
func Mul(a, b byte) byte {
	return mulTable[a][b]
}

// Div returns a/b. It fails with ErrDivideByZero when b is zero.
func Div(a, b byte) (byte, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	if a == 0 {
		return 0, nil
	}
	diff := int(logTable[a]) - int(logTable[b])
	if diff < 0 {
		diff += 255
	}
	return expTable[diff], nil
}

// Inv returns the multiplicative inverse of a. It fails with
// ErrDivideByZero when a is zero.
func Inv(a byte) (byte, error) {
	if a == 0 {
		return 0, ErrDivideByZero
	}
	return invTable[a], nil
}

// Pow returns a^e. Pow(a, 0) is 1 for every a, including 0, matching the
// field convention that x^0 == 1.
func Pow(a byte, e int) byte {
	out := byte(1)
	for i := 0; i < e; i++ {
		out = Mul(out, a)
	}
	return out
}

// AddMul computes z[i] ^= mul(y, x[i]) for every byte index i. This is the
// single performance-critical primitive of the whole codec: every matrix
// row operation and every encode/decode inner loop bottoms out here. A
// vectorized replacement is permitted as long as it is bit-identical to
// this scalar loop.
func AddMul(z, x []byte, y byte) {
	if y == 0 || len(z) == 0 {
		return
	}
	t := &mulTable[y]
	_ = x[len(z)-1] // bounds-check hint; panics here if x is shorter than z
	for i := range z {
		z[i] ^= t[x[i]]
	}
}
