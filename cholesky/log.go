package cholesky

import (
	"log"

	"github.com/sparsela/sparsechol/amd"
)

// DefaultSupernodalFlopRatioThreshold is used by FactorizeSymbolic when
// SymbolicParams.SupernodalFlopRatioThreshold is zero.
const DefaultSupernodalFlopRatioThreshold = 40.0

// SymbolicParams configures FactorizeSymbolic.
type SymbolicParams struct {
	// Orderer picks the fill-reducing permutation applied before
	// elimination. Nil means amd.ApproximateMinDegree{}.
	Orderer amd.Orderer

	// SupernodalFlopRatioThreshold selects between the simplicial and
	// supernodal numeric kernels: when estimated flops / L nnz exceeds
	// this threshold, the supernodal path is used. Zero means use the
	// default of 40.0.
	SupernodalFlopRatioThreshold float64

	// RelaxationCutoffs overrides the default supernode relaxation
	// policy (see relax.go). Nil means use the default list.
	RelaxationCutoffs []RelaxCutoff

	// Logger, if non-nil, receives one line per stage of symbolic
	// analysis (ordering, etree, algorithm choice); supernode discovery
	// and relaxation log no line of their own. Nil disables logging, which is the default -
	// this library has no observability dependency of its own, the
	// same posture the teacher package takes.
	Logger *log.Logger
}

func (p SymbolicParams) logf(format string, args ...interface{}) {
	if p.Logger == nil {
		return
	}
	p.Logger.Printf(format, args...)
}
