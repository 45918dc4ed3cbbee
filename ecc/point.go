package ecc

import "github.com/consensys/gnark/frontend"

// Point is an elliptic curve point that may be the identity, represented by
// the sentinel coordinates (0, 0). The sentinel is unambiguous: the curve
// parameter b is non-zero, so (0, 0) never satisfies the curve equation.
type Point struct {
	chip Instructions
	x, y frontend.Variable
}

// NewPoint wraps coordinates obtained directly from an instruction in a
// gadget. It is intended for Instructions implementers; circuit authors
// obtain points through the witnessing instructions instead.
func NewPoint(chip Instructions, x, y frontend.Variable) Point {
	return Point{chip: chip, x: x, y: y}
}

// X returns the in-circuit x-coordinate.
func (p Point) X() frontend.Variable { return p.x }

// Y returns the in-circuit y-coordinate.
func (p Point) Y() frontend.Variable { return p.y }

// ExtractX extracts the x-coordinate of the point.
func (p Point) ExtractX() X { return NewX(p.x) }

// ConstrainEqual constrains this point to be equal in value to other.
func (p Point) ConstrainEqual(other Point) {
	p.chip.ConstrainEqual(p, other)
}

// Add returns p + other using complete addition.
func (p Point) Add(other Point) Point {
	return p.chip.Add(p, other)
}

// NonIdentityPoint is an elliptic curve point with a type-level guarantee
// that it is never the identity. It is constructed only through
// [Instructions.WitnessPointNonID] and through operations whose result
// cannot be the identity.
type NonIdentityPoint struct {
	inner Point
}

// NewNonIdentityPointUnchecked wraps coordinates obtained directly from an
// instruction without adding constraints. The caller must have already
// constrained (x, y) to be a non-identity curve point; it is intended for
// Instructions implementers only.
func NewNonIdentityPointUnchecked(chip Instructions, x, y frontend.Variable) NonIdentityPoint {
	return NonIdentityPoint{inner: NewPoint(chip, x, y)}
}

// Point converts to the maybe-identity point type. The conversion is total
// and lossless; the fallible direction exists only through witnessing.
func (p NonIdentityPoint) Point() Point { return p.inner }

// X returns the in-circuit x-coordinate.
func (p NonIdentityPoint) X() frontend.Variable { return p.inner.x }

// Y returns the in-circuit y-coordinate.
func (p NonIdentityPoint) Y() frontend.Variable { return p.inner.y }

// ExtractX extracts the x-coordinate of the point.
func (p NonIdentityPoint) ExtractX() X { return NewX(p.inner.x) }

// ConstrainEqual constrains this point to be equal in value to other.
func (p NonIdentityPoint) ConstrainEqual(other Point) {
	p.inner.ConstrainEqual(other)
}

// Add returns p + other using complete addition.
func (p NonIdentityPoint) Add(other Point) Point {
	return p.inner.Add(other)
}

// AddIncomplete returns p + other using incomplete addition. The operands
// are type-constrained not to be the identity, and since the exceptional
// cases are excluded by the caller's construction, the result cannot be the
// identity either.
func (p NonIdentityPoint) AddIncomplete(other NonIdentityPoint) NonIdentityPoint {
	return p.inner.chip.AddIncomplete(p, other)
}

// Mul returns [scalar] p together with the scalar record.
func (p NonIdentityPoint) Mul(scalar frontend.Variable) (Point, ScalarVar) {
	return p.inner.chip.Mul(scalar, p)
}

// X is the affine x-coordinate of an elliptic curve point, used when only
// the x-coordinate is needed downstream.
type X struct {
	v frontend.Variable
}

// NewX wraps an x-coordinate obtained directly from an instruction.
func NewX(v frontend.Variable) X { return X{v: v} }

// Var returns the in-circuit coordinate.
func (x X) Var() frontend.Variable { return x.v }
