package cholesky

import "errors"

// ErrOutOfMemory names the out-of-scratch-memory failure. No function in
// this module returns it: a stack.Stack that is too small for a request
// panics instead, and heap allocation failures are not caught.
var ErrOutOfMemory = errors.New("cholesky: out of scratch memory")

// ErrIndexOverflow is returned by FactorizeSupernodalSymbolic (and so by
// FactorizeSymbolic) when a supernode's frontal block size or the total
// supernodal value-buffer size would exceed math.MaxInt32.
var ErrIndexOverflow = errors.New("cholesky: index out of bounds for dimension")

// ErrNotPositiveDefinite is returned by the numeric factorizations, when
// NumericParams.CheckPositiveDefinite is set, as soon as a non-positive or
// non-finite diagonal entry of D is produced. Plain LDLᵀ without pivoting does not
// require this check to run; it's opt-in for callers that need a hard
// failure rather than a well-defined indefinite factorization.
var ErrNotPositiveDefinite = errors.New("cholesky: matrix is not positive definite")
