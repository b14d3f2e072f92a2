package ida

import (
	"fmt"
	"sort"

	"github.com/idafec/gf256fec/internal/gf256"
)

// byteMax is the size of GF(2^8) and therefore the largest value either of
// k or n may take.
const byteMax = 256

// Share is one of the n pieces an FEC disperses a buffer into. Shares with
// Number < k are primary: verbatim copies of input blocks. Shares with
// Number >= k are parity: GF(2^8) linear combinations of the primary
// blocks. All shares belonging to one encode/decode operation share the
// same Data length.
type Share struct {
	Number int
	Data   []byte
}

// DeepCopy returns a Share whose Data is an independent copy of s.Data, so
// it can be retained past the lifetime of a borrowed-share callback (see
// FEC.Encode, FEC.Rebuild).
func (s Share) DeepCopy() Share {
	data := make([]byte, len(s.Data))
	copy(data, s.Data)
	return Share{Number: s.Number, Data: data}
}

// FEC holds the encoding and Vandermonde matrices for a fixed (k, n) pair.
// Once constructed it is immutable and safe for concurrent use by
// Encode, EncodeSingle, and Rebuild. Correct and Decode/DecodeTo mutate
// caller-supplied share buffers in place and must not be called
// concurrently over the same share data.
type FEC struct {
	k, n       int
	encMatrix  []byte // n*k, row-major
	vandMatrix []byte // k*n, row-major
}

// NewFEC constructs an FEC requiring k of n shares to reconstruct, with
// 1 <= k <= n <= 256. Encoding with this FEC produces n shares; decoding
// requires k uncorrupted (or correctable) shares.
func NewFEC(k, n int) (*FEC, error) {
	if k <= 0 || n <= 0 || k > byteMax || n > byteMax || k > n {
		return nil, fmt.Errorf("ida: NewFEC(%d, %d): %w", k, n, ErrInvalidParameters)
	}

	vdmInv := invertVandermonde(k) // k*k, row-major

	// temp holds, for rows [0,k), the inverted Vandermonde B, and for
	// rows [k,n), the powers of 2 that are multiplied against B below to
	// build the systematic parity rows.
	temp := make([]byte, n*k)
	copy(temp, vdmInv)
	for row := k; row < n; row++ {
		for col := 0; col < k; col++ {
			temp[row*k+col] = gf256.Exp(row * col)
		}
	}

	encMatrix := make([]byte, n*k)
	for i := 0; i < k; i++ {
		encMatrix[i*k+i] = 1
	}
	for row := k; row < n; row++ {
		for col := 0; col < k; col++ {
			var acc byte
			for i := 0; i < k; i++ {
				acc ^= gf256.Mul(temp[row*k+i], vdmInv[i*k+col])
			}
			encMatrix[row*k+col] = acc
		}
	}

	vandMatrix := make([]byte, k*n)
	if n > 0 {
		vandMatrix[0] = 1
	}
	g := byte(1)
	for row := 0; row < k; row++ {
		a := byte(1)
		for col := 1; col < n; col++ {
			vandMatrix[row*n+col] = a
			a = gf256.Mul(g, a)
		}
		g = gf256.Mul(2, g)
	}

	return &FEC{k: k, n: n, encMatrix: encMatrix, vandMatrix: vandMatrix}, nil
}

// Required returns k, the number of shares needed for reconstruction.
func (f *FEC) Required() int { return f.k }

// Total returns n, the number of shares Encode produces.
func (f *FEC) Total() int { return f.n }

// Encode expands input, whose length must be a multiple of k, into n
// shares, calling output once per share in ascending order of Number. The
// Data slice passed to output for share i < k aliases input directly; for
// shares i >= k it is a scratch buffer reused across calls and must not be
// retained past output's return (copy it with Share.DeepCopy if you need
// to keep it).
func (f *FEC) Encode(input []byte, output func(Share)) error {
	size := len(input)
	if size%f.k != 0 {
		return fmt.Errorf("ida: Encode: input length %d not a multiple of k=%d: %w", size, f.k, ErrInvalidLength)
	}
	blockSize := size / f.k

	for i := 0; i < f.k; i++ {
		output(Share{Number: i, Data: input[i*blockSize : (i+1)*blockSize]})
	}

	scratch := make([]byte, blockSize)
	for i := f.k; i < f.n; i++ {
		for b := range scratch {
			scratch[b] = 0
		}
		for j := 0; j < f.k; j++ {
			gf256.AddMul(scratch, input[j*blockSize:(j+1)*blockSize], f.encMatrix[i*f.k+j])
		}
		output(Share{Number: i, Data: scratch})
	}
	return nil
}

// EncodeSingle computes only share num, writing it to output. input's
// length must be a multiple of k, and output must be exactly
// len(input)/k bytes long.
func (f *FEC) EncodeSingle(num int, input, output []byte) error {
	if num < 0 || num >= f.n {
		return fmt.Errorf("ida: EncodeSingle: num=%d out of range [0,%d): %w", num, f.n, ErrInvalidParameters)
	}
	size := len(input)
	if size%f.k != 0 {
		return fmt.Errorf("ida: EncodeSingle: input length %d not a multiple of k=%d: %w", size, f.k, ErrInvalidLength)
	}
	blockSize := size / f.k
	if len(output) != blockSize {
		return fmt.Errorf("ida: EncodeSingle: output length %d, want %d: %w", len(output), blockSize, ErrInvalidLength)
	}

	if num < f.k {
		copy(output, input[num*blockSize:(num+1)*blockSize])
		return nil
	}

	for b := range output {
		output[b] = 0
	}
	for j := 0; j < f.k; j++ {
		gf256.AddMul(output, input[j*blockSize:(j+1)*blockSize], f.encMatrix[num*f.k+j])
	}
	return nil
}

// Rebuild takes at least k shares and reconstructs the k primary blocks,
// calling output once for each, not necessarily in numeric order.
// Rebuild assumes shares are already correct: call Correct first (or use
// DecodeTo/Decode) unless you already know the shares are uncorrupted.
func (f *FEC) Rebuild(shares []Share, output func(Share)) error {
	if len(shares) < f.k {
		return fmt.Errorf("ida: Rebuild: have %d shares, need %d: %w", len(shares), f.k, ErrNotEnoughShares)
	}

	sorted := make([]Share, len(shares))
	copy(sorted, shares)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })
	if err := checkDistinctNumbers(sorted); err != nil {
		return err
	}

	fastPath := true
	for i := 0; i < f.k; i++ {
		if sorted[i].Number != i {
			fastPath = false
			break
		}
	}
	if fastPath {
		for i := 0; i < f.k; i++ {
			output(sorted[i])
		}
		return nil
	}

	shareLen := len(sorted[0].Data)
	m := gf256.NewMat(f.k, f.k)
	ident := gf256.Identity(f.k)
	selected := make([]Share, f.k)

	head, tail := 0, len(sorted)-1
	for i := 0; i < f.k; i++ {
		var s Share
		if head <= tail && sorted[head].Number == i {
			s = sorted[head]
			head++
		} else {
			s = sorted[tail]
			tail--
		}
		if s.Number < 0 || s.Number >= f.n {
			return fmt.Errorf("ida: Rebuild: share number %d out of range [0,%d): %w", s.Number, f.n, ErrInvalidShareNum)
		}
		if len(s.Data) != shareLen {
			return fmt.Errorf("ida: Rebuild: share %d has length %d, want %d: %w", s.Number, len(s.Data), shareLen, ErrInvalidLength)
		}

		if s.Number < f.k {
			m.Set(i, s.Number, 1)
			output(s)
		} else {
			copy(m.Row(i), f.encMatrix[s.Number*f.k:s.Number*f.k+f.k])
		}
		selected[i] = s
	}

	m.InvertWith(ident)

	buf := make([]byte, shareLen)
	for i := 0; i < f.k; i++ {
		if selected[i].Number < f.k {
			continue
		}
		for b := range buf {
			buf[b] = 0
		}
		for col := 0; col < f.k; col++ {
			gf256.AddMul(buf, selected[col].Data, ident.Get(i, col))
		}
		out := make([]byte, shareLen)
		copy(out, buf)
		output(Share{Number: i, Data: out})
	}
	return nil
}

// DecodeTo corrects shares in place (see Correct) and then rebuilds the
// original k blocks, calling output once per block.
func (f *FEC) DecodeTo(shares []Share, output func(Share)) error {
	if err := f.Correct(shares); err != nil {
		return err
	}
	return f.Rebuild(shares, output)
}

// Decode corrects shares in place and rebuilds the original buffer into
// output, returning the number of bytes written (always B*k). output must
// have at least B*k bytes of capacity, where B is the shares' byte
// length.
func (f *FEC) Decode(output []byte, shares []Share) (int, error) {
	if err := f.Correct(shares); err != nil {
		return 0, err
	}
	if len(shares) == 0 {
		return 0, fmt.Errorf("ida: Decode: no shares given: %w", ErrNotEnoughShares)
	}
	blockSize := len(shares[0].Data)
	need := blockSize * f.k
	if len(output) < need {
		return 0, fmt.Errorf("ida: Decode: output has %d bytes, need %d: %w", len(output), need, ErrInvalidLength)
	}

	err := f.Rebuild(shares, func(s Share) {
		copy(output[s.Number*blockSize:(s.Number+1)*blockSize], s.Data)
	})
	if err != nil {
		return 0, err
	}
	return need, nil
}

// checkDistinctNumbers reports ErrInvalidShareNum if sorted, which must
// already be sorted ascending by Number, contains a duplicate Number.
func checkDistinctNumbers(sorted []Share) error {
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Number == sorted[i-1].Number {
			return fmt.Errorf("ida: duplicate share number %d: %w", sorted[i].Number, ErrInvalidShareNum)
		}
	}
	return nil
}
