package grumpkin

import (
	"github.com/consensys/gnark/frontend"

	"github.com/consensys/gnark-ecc-gadgets/ecc"
)

// WitnessPoint implements ecc.Instructions. The point is constrained to be
// on the curve or the identity sentinel (0, 0).
func (c *Chip) WitnessPoint(x, y frontend.Variable) ecc.Point {
	isId := c.api.And(c.api.IsZero(x), c.api.IsZero(y))
	c.api.AssertIsEqual(c.api.Mul(c.api.Sub(1, isId), c.curveEq(x, y)), 0)
	return ecc.NewPoint(c, x, y)
}

// WitnessPointNonID implements ecc.Instructions. The curve membership
// constraint excludes (0, 0) because b != 0, so a prover cannot slip the
// identity in; a statically-known identity is rejected here with
// ecc.ErrIdentityWitness.
func (c *Chip) WitnessPointNonID(x, y frontend.Variable) (ecc.NonIdentityPoint, error) {
	cx, okx := c.api.Compiler().ConstantValue(x)
	cy, oky := c.api.Compiler().ConstantValue(y)
	if okx && oky && cx.Sign() == 0 && cy.Sign() == 0 {
		return ecc.NonIdentityPoint{}, ecc.ErrIdentityWitness
	}
	c.api.AssertIsEqual(c.curveEq(x, y), 0)
	return ecc.NewNonIdentityPointUnchecked(c, x, y), nil
}
