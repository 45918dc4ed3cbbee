package grumpkin

import (
	"github.com/consensys/gnark/frontend"

	"github.com/consensys/gnark-ecc-gadgets/ecc"
)

// curveEq returns y^2 - x^3 - b, which is zero iff (x, y) lies on the
// curve. The identity sentinel (0, 0) never satisfies it since b != 0.
func (c *Chip) curveEq(x, y frontend.Variable) frontend.Variable {
	x3 := c.api.Mul(x, x, x)
	return c.api.Sub(c.api.Mul(y, y), c.api.Add(x3, bCurveCoeff))
}

// addIncomplete returns a + b using the affine chord formula with division.
//
// The formula is exceptional when a == b or a == -b: the denominator
// vanishes and the result is unconstrained. Callers must rule those cases
// out by construction.
func (c *Chip) addIncomplete(x1, y1, x2, y2 frontend.Variable) (xr, yr frontend.Variable) {
	api := c.api

	// lambda = (y2-y1)/(x2-x1)
	lambda := api.DivUnchecked(api.Sub(y2, y1), api.Sub(x2, x1))

	// xr = lambda**2-x1-x2
	xr = api.Sub(api.Mul(lambda, lambda), api.Add(x1, x2))

	// yr = lambda(x1-xr) - y1
	yr = api.Sub(api.Mul(lambda, api.Sub(x1, xr)), y1)

	return xr, yr
}

// addComplete returns a + b for any pair of operands. The chord, tangent,
// mutual-negation and identity cases are all selected explicitly, so the
// formula is total: every branch divides by a provably non-zero
// denominator and the unused branches are discarded by selectors.
func (c *Chip) addComplete(x1, y1, x2, y2 frontend.Variable) (xr, yr frontend.Variable) {
	api := c.api

	// selector1 = 1 when a is (0,0) and 0 otherwise
	selector1 := api.And(api.IsZero(x1), api.IsZero(y1))
	// selector2 = 1 when b is (0,0) and 0 otherwise
	selector2 := api.And(api.IsZero(x2), api.IsZero(y2))

	dx := api.Sub(x2, x1)
	sameX := api.IsZero(dx)
	sameY := api.IsZero(api.Sub(y2, y1))

	// chord slope; dummy 1 denominator when x1 == x2
	chord := api.DivUnchecked(api.Sub(y2, y1), api.Select(sameX, 1, dx))

	// tangent slope; y1 == 0 only at the identity sentinel, where the
	// result is discarded, so a dummy 1 denominator is safe. The curve has
	// prime order, hence no point with y = 0.
	tanDen := api.Select(api.IsZero(y1), 1, api.Add(y1, y1))
	tangent := api.DivUnchecked(api.Mul(x1, x1, 3), tanDen)

	isDouble := api.And(sameX, sameY)
	lambda := api.Select(isDouble, tangent, chord)

	xr = api.Sub(api.Mul(lambda, lambda), api.Add(x1, x2))
	yr = api.Sub(api.Mul(lambda, api.Sub(x1, xr)), y1)

	// equal x with distinct y means b == -a, so the sum is the identity
	isOpposite := api.And(sameX, api.Sub(1, sameY))
	xr = api.Select(isOpposite, 0, xr)
	yr = api.Select(isOpposite, 0, yr)

	// if b=(0,0) return a
	xr = api.Select(selector2, x1, xr)
	yr = api.Select(selector2, y1, yr)
	// if a=(0,0) return b
	xr = api.Select(selector1, x2, xr)
	yr = api.Select(selector1, y2, yr)

	return xr, yr
}

// ExtractX implements ecc.Instructions. Pure projection, no constraints.
func (c *Chip) ExtractX(p ecc.Point) ecc.X {
	return ecc.NewX(p.X())
}

// ConstrainEqual implements ecc.Instructions.
func (c *Chip) ConstrainEqual(a, b ecc.Point) {
	c.api.AssertIsEqual(a.X(), b.X())
	c.api.AssertIsEqual(a.Y(), b.Y())
}

// Add implements ecc.Instructions using the complete formula.
func (c *Chip) Add(a, b ecc.Point) ecc.Point {
	x, y := c.addComplete(a.X(), a.Y(), b.X(), b.Y())
	return ecc.NewPoint(c, x, y)
}

// AddIncomplete implements ecc.Instructions. The operands are
// type-constrained not to be the identity, and since exceptional cases are
// excluded by the caller's construction, the result cannot be the identity
// either.
func (c *Chip) AddIncomplete(a, b ecc.NonIdentityPoint) ecc.NonIdentityPoint {
	x, y := c.addIncomplete(a.X(), a.Y(), b.X(), b.Y())
	return ecc.NewNonIdentityPointUnchecked(c, x, y)
}
