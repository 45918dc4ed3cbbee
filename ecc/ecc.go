package ecc

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
)

// WindowSize is the bit width of one window in fixed-base scalar
// multiplication.
const WindowSize = 3

// H is the number of distinct values a window can take, 2^WindowSize.
const H = 1 << WindowSize

// Instructions is the set of circuit instructions required to use the ECC
// gadgets. A chip implements it on top of [frontend.API] for a specific
// curve whose base field is the circuit field.
type Instructions interface {
	// WitnessPoint constrains (x, y) to be either a valid curve point or
	// the identity, mapped to (0, 0) in affine coordinates, and returns the
	// wrapped point.
	WitnessPoint(x, y frontend.Variable) Point

	// WitnessPointNonID constrains (x, y) to be a valid non-identity curve
	// point. When both coordinates are circuit constants equal to the
	// identity sentinel it returns ErrIdentityWitness immediately;
	// otherwise witnessing the identity is rejected by the curve membership
	// constraint at proving time.
	WitnessPointNonID(x, y frontend.Variable) (NonIdentityPoint, error)

	// ExtractX extracts the x-coordinate of a point.
	ExtractX(p Point) X

	// ConstrainEqual constrains point a to be equal in value to point b.
	// A value mismatch surfaces as a failing proof, not as an error here.
	ConstrainEqual(a, b Point)

	// Add performs complete point addition, returning a + b. The formula is
	// total: it handles either operand being the identity, the doubling
	// case and mutual negation.
	Add(a, b Point) Point

	// AddIncomplete performs incomplete point addition, returning a + b.
	//
	// The formula is exceptional when a == b or a == -b; callers must
	// guarantee by construction that these cases cannot occur.
	AddIncomplete(a, b NonIdentityPoint) NonIdentityPoint

	// Mul performs variable-base scalar multiplication, returning
	// [scalar] base. The scalar is an element of the circuit field.
	Mul(scalar frontend.Variable, base NonIdentityPoint) (Point, ScalarVar)

	// MulFixed performs fixed-base scalar multiplication using a full-width
	// scalar witnessed as per-window cells, returning [scalar] base.
	MulFixed(scalar *ScalarFixed, base FixedPoints) (Point, error)

	// MulFixedShort performs fixed-base scalar multiplication using a
	// signed short scalar, returning [magnitude * sign] base. The magnitude
	// is constrained to 64 bits and the sign to {+1, -1}.
	MulFixedShort(magnitude, sign frontend.Variable, base FixedPoints) (Point, *ScalarFixedShort, error)

	// MulFixedBaseField performs fixed-base scalar multiplication using a
	// circuit field element as the scalar, typically output from another
	// gadget. The window decomposition is additionally constrained to be
	// canonical, so it cannot encode elem + r for the field modulus r.
	MulFixedBaseField(elem frontend.Variable, base FixedPoints) (Point, error)
}

// FixedPoints describes the public precomputed data of one fixed base,
// generated once per generator and shared read-only across proofs. See the
// fixedbase subpackage for the concrete construction.
type FixedPoints interface {
	// Generator returns the affine coordinates of the base point.
	Generator() (x, y *big.Int)

	// NumWindows returns the number of 3-bit windows a scalar for this base
	// is split into.
	NumWindows() int

	// Z returns the per-window y-recovery offsets.
	Z() []uint64

	// U returns, per window, the H recovery values u with u^2 = y + z.
	U() [][H]*big.Int

	// LagrangeCoeffs returns, per window, the H coefficients of the
	// polynomial interpolating the window x-coordinates as a function of
	// the window value, constant term first.
	LagrangeCoeffs() [][H]*big.Int
}
