// Package field defines the ordered-field constraint the simplex engine is
// written against, so tolerance comparisons and zero/one checks can be
// expressed generically instead of being duplicated per numeric type.
//
// The engine's dense tableau monomorphizes to float64 through gonum/mat as
// its one reference instantiation, but the generic helpers here let any
// component that does not need the matrix backing store share the same
// comparison logic.
package field

import "golang.org/x/exp/constraints"

// Field is a totally ordered field, restricted to the floating-point types
// gonum/mat and the rest of the standard numeric ecosystem support.
type Field interface {
	constraints.Float
}

// Zero returns the additive identity of F.
func Zero[F Field]() F { return F(0) }

// One returns the multiplicative identity of F.
func One[F Field]() F { return F(1) }

// NonNegative reports whether v is not smaller than -eps, i.e. whether v
// should be treated as >= 0 under the given tolerance.
func NonNegative[F Field](v, eps F) bool {
	return v >= -eps
}

// Positive reports whether v should be treated as strictly > 0 under the
// given tolerance.
func Positive[F Field](v, eps F) bool {
	return v > eps
}

// Negative reports whether v should be treated as strictly < 0 under the
// given tolerance.
func Negative[F Field](v, eps F) bool {
	return v < -eps
}
