package sparse

// Side identifies which triangle of a symmetric matrix is stored explicitly.
// The cholesky package always operates on the Upper form internally; a
// matrix supplied as Lower is transposed once up front (see
// cholesky.FactorizeSymbolic).
type Side int

const (
	// Upper indicates the upper triangle (including the diagonal) is stored.
	Upper Side = iota
	// Lower indicates the lower triangle (including the diagonal) is stored.
	Lower
)

func (s Side) String() string {
	switch s {
	case Upper:
		return "Upper"
	case Lower:
		return "Lower"
	default:
		return "Side(?)"
	}
}
