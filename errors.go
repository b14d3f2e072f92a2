package ida

import "errors"

// Error taxonomy for this package. Every exported operation returns one of
// these (possibly wrapped with extra context via fmt.Errorf's %w) instead
// of panicking, except for the Divide-by-zero/algebra-error pair, which
// signal that an internal invariant this package relies on was violated -
// a programming error, not a caller mistake.
var (
	// ErrInvalidParameters covers k or n out of range, or an
	// out-of-range share number passed to EncodeSingle. Too few shares
	// are reported as ErrNotEnoughShares.
	ErrInvalidParameters = errors.New("ida: invalid parameters")

	// ErrInvalidLength covers input not a multiple of k, an output
	// buffer too small for its result, or shares whose byte lengths
	// disagree.
	ErrInvalidLength = errors.New("ida: invalid length")

	// ErrInvalidShareNum covers a share whose Number is outside [0, n)
	// or that duplicates another share's Number.
	ErrInvalidShareNum = errors.New("ida: invalid share number")

	// ErrNotEnoughShares covers Rebuild/Correct given fewer than k
	// shares, or the Berlekamp-Welch solver given too few shares to
	// have a positive error-correction degree.
	ErrNotEnoughShares = errors.New("ida: not enough shares")

	// ErrTooManyErrors is returned when Berlekamp-Welch's polynomial
	// division leaves a nonzero remainder: the input is corrupted
	// beyond the correction radius of floor((m-k)/2) per byte position,
	// where m is the number of shares supplied.
	ErrTooManyErrors = errors.New("ida: too many errors to reconstruct")

	// ErrDivideByZero surfaces an internal GF(2^8) division or
	// inversion by zero. It should not occur on well-formed input;
	// it is exported so callers can errors.Is against it if it ever
	// does.
	ErrDivideByZero = errors.New("ida: divide by zero")

	// ErrAlgebraError surfaces an internal polynomial long-division
	// state that is inconsistent with the algorithm's invariants. As
	// with ErrDivideByZero, this should never occur on well-formed
	// input.
	ErrAlgebraError = errors.New("ida: algebra error")
)
