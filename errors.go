package polyroots

import "errors"

// Error taxonomy. The fourth outcome of the taxonomy, the unsupported
// high-degree case, is not an error: it is reported as the Unsupported
// kind of a RootReport, since it is a legitimate solver outcome rather
// than a failure of the inputs.
var (
	// ErrMalformedInput marks non-finite coefficients, unparseable tokens
	// and oversized coefficient sequences.
	ErrMalformedInput = errors.New("polyroots: malformed input")

	// ErrDivisionByZero marks an attempted division by the zero polynomial.
	// Reaching it is a programming error on the caller's side.
	ErrDivisionByZero = errors.New("polyroots: division by zero polynomial")

	// ErrExactnessOverflow marks a coefficient that cannot be represented
	// exactly as a fraction of 32-bit integers.
	ErrExactnessOverflow = errors.New("polyroots: coefficient exceeds exact rational range")
)
