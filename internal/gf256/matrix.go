package gf256

// Mat is a row-major matrix of GF(2^8) elements.
type Mat struct {
	d    []byte
	r, c int
}

// NewMat returns a new r x c matrix of zeros.
func NewMat(r, c int) Mat {
	return Mat{d: make([]byte, r*c), r: r, c: c}
}

// Identity returns the n x n identity matrix.
func Identity(n int) Mat {
	m := NewMat(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Rows returns the matrix's row count.
func (m Mat) Rows() int { return m.r }

// Cols returns the matrix's column count.
func (m Mat) Cols() int { return m.c }

func (m Mat) offset(i, j int) int { return i*m.c + j }

// Get returns the element at (i, j).
func (m Mat) Get(i, j int) byte {
	return m.d[m.offset(i, j)]
}

// Set assigns the element at (i, j).
func (m Mat) Set(i, j int, v byte) {
	m.d[m.offset(i, j)] = v
}

// Row returns a mutable view of row i.
func (m Mat) Row(i int) []byte {
	return m.d[m.offset(i, 0):m.offset(i+1, 0)]
}

// SwapRow exchanges rows i and j in place.
func (m Mat) SwapRow(i, j int) {
	if i == j {
		return
	}
	ri, rj := m.Row(i), m.Row(j)
	for c := range ri {
		ri[c], rj[c] = rj[c], ri[c]
	}
}

// ScaleRow multiplies every element of row i by v.
func (m Mat) ScaleRow(i int, v byte) {
	ri := m.Row(i)
	for c := range ri {
		ri[c] = Mul(ri[c], v)
	}
}

// AddMulRow computes row[dst] ^= v * row[src].
func (m Mat) AddMulRow(src, dst int, v byte) {
	if v == 0 {
		return
	}
	AddMul(m.Row(dst), m.Row(src), v)
}

// InvertWith inverts m in place via Gauss-Jordan elimination, mirroring
// every row operation onto a, which must start out as the r x r identity.
// On return m is the identity and a holds m's original inverse.
//
// If a column has no nonzero pivot below and including the diagonal, that
// elimination step is skipped rather than failing: for this package's
// callers (Reed-Solomon encoding/decoding matrices and Berlekamp-Welch
// constraint matrices) the matrix is always invertible by construction, so
// this situation does not arise in practice. Callers that cannot guarantee
// this should check the result for a non-identity diagonal themselves.
func (m Mat) InvertWith(a Mat) {
	for i := 0; i < m.r; i++ {
		pivotRow := i
		pivotVal := m.Get(i, i)
		for j := i + 1; j < m.r && pivotVal == 0; j++ {
			pivotRow = j
			pivotVal = m.Get(j, i)
		}
		if pivotVal == 0 {
			continue
		}
		if pivotRow != i {
			m.SwapRow(i, pivotRow)
			a.SwapRow(i, pivotRow)
		}

		inv, _ := Inv(pivotVal) // pivotVal != 0 by construction above
		m.ScaleRow(i, inv)
		a.ScaleRow(i, inv)

		for j := i + 1; j < m.r; j++ {
			leading := m.Get(j, i)
			m.AddMulRow(i, j, leading)
			a.AddMulRow(i, j, leading)
		}
	}

	for i := m.r - 1; i > 0; i-- {
		for j := i - 1; j >= 0; j-- {
			trailing := m.Get(j, i)
			m.AddMulRow(i, j, trailing)
			a.AddMulRow(i, j, trailing)
		}
	}
}

// Standardize reduces m in place to [I_r | P] form via the same
// elimination as InvertWith, but without a paired matrix. Its leftmost r x
// r block must be invertible.
func (m Mat) Standardize() {
	for i := 0; i < m.r; i++ {
		pivotRow := i
		pivotVal := m.Get(i, i)
		for j := i + 1; j < m.r && pivotVal == 0; j++ {
			pivotRow = j
			pivotVal = m.Get(j, i)
		}
		if pivotVal == 0 {
			continue
		}
		if pivotRow != i {
			m.SwapRow(i, pivotRow)
		}

		inv, _ := Inv(pivotVal)
		m.ScaleRow(i, inv)

		for j := i + 1; j < m.r; j++ {
			leading := m.Get(j, i)
			m.AddMulRow(i, j, leading)
		}
	}

	for i := m.r - 1; i > 0; i-- {
		for j := i - 1; j >= 0; j-- {
			trailing := m.Get(j, i)
			m.AddMulRow(i, j, trailing)
		}
	}
}

// Parity takes m, assumed already standardized to [I_r | P] shape (r rows,
// c columns, c >= r), and returns the (c-r) x c matrix [P^T | I_(c-r)].
// No negation is applied: the field has characteristic 2.
func (m Mat) Parity() Mat {
	out := NewMat(m.c-m.r, m.c)
	for i := 0; i < out.r; i++ {
		out.Set(i, i+m.r, 1)
	}
	for i := 0; i < out.r; i++ {
		for j := 0; j < m.r; j++ {
			out.Set(i, j, m.Get(j, i+m.r))
		}
	}
	return out
}
