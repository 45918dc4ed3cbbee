package ecc

import "github.com/consensys/gnark/frontend"

// FixedPoint is a constant elliptic curve point for which per-window tables
// have been precomputed to make scalar multiplication more efficient. Its
// Mul methods are the entry points for fixed-base multiplication; they hide
// the descriptor/engine split.
type FixedPoint struct {
	chip Instructions
	base FixedPoints
}

// NewFixedPoint pairs a chip with a fixed-base descriptor.
func NewFixedPoint(chip Instructions, base FixedPoints) FixedPoint {
	return FixedPoint{chip: chip, base: base}
}

// Base returns the underlying descriptor.
func (f FixedPoint) Base() FixedPoints { return f.base }

// Mul returns [scalar] f for a full-width scalar, together with the scalar
// record for any downstream constraint that needs to relate this scalar to
// another circuit value.
func (f FixedPoint) Mul(scalar *ScalarFixed) (Point, error) {
	return f.chip.MulFixed(scalar, f.base)
}

// MulShort returns [magnitude * sign] f for a signed short scalar.
func (f FixedPoint) MulShort(magnitude, sign frontend.Variable) (Point, *ScalarFixedShort, error) {
	return f.chip.MulFixedShort(magnitude, sign, f.base)
}

// MulBaseField returns [elem] f where elem is a circuit field element
// produced by another gadget.
func (f FixedPoint) MulBaseField(elem frontend.Variable) (Point, error) {
	return f.chip.MulFixedBaseField(elem, f.base)
}
