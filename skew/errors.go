package skew

import "errors"

var (
	// ErrDivisionByZero is returned when dividing by the zero polynomial.
	ErrDivisionByZero = errors.New("skew: division by zero polynomial")

	// ErrUndefined is returned when an operation (factorization, divisor
	// search) is requested on the zero polynomial.
	ErrUndefined = errors.New("skew: operation not defined on the zero polynomial")

	// ErrNotIrreducible is returned when a central factor expected to be
	// irreducible is not.
	ErrNotIrreducible = errors.New("skew: central polynomial is not irreducible")

	// ErrNoSuchDivisor is returned when no divisor with the requested
	// reduced norm exists.
	ErrNoSuchDivisor = errors.New("skew: no divisor with the requested reduced norm")

	// ErrInvalidArgument is returned for unsupported parameter values, such
	// as an unknown distribution or a central factor over the wrong ring.
	ErrInvalidArgument = errors.New("skew: invalid argument")

	// ErrSamplingBudget is returned when a rejection-sampling loop exceeds
	// its safety cap. The underlying success probabilities are bounded away
	// from zero, so hitting the cap indicates a defect rather than bad
	// luck.
	ErrSamplingBudget = errors.New("skew: rejection sampling exceeded its iteration budget")
)

// maxSampling bounds every rejection-sampling loop of the package. The
// reference behaviour retries forever; a cap turns a pathological loop into
// ErrSamplingBudget instead.
const maxSampling = 10000
