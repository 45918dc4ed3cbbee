package grumpkin

import (
	"github.com/consensys/gnark/frontend"

	"github.com/consensys/gnark-ecc-gadgets/ecc"
)

// Mul implements ecc.Instructions: variable-base scalar multiplication by
// a circuit field element, with a complete double-and-add ladder.
//
// The bit decomposition is constrained to be canonical: booleanity and the
// recomposition identity alone admit the bits of scalar + r for any scalar
// below 2^254 - r, which would fold to a different multiple since the
// group order differs from r.
//
// Every iteration uses the total addition formula, so the ladder has no
// exceptional witnesses: scalar = 0 yields the identity and intermediate
// collisions with the base are absorbed by the formula. This trades
// constraints for completeness over an incomplete ladder.
func (c *Chip) Mul(scalar frontend.Variable, base ecc.NonIdentityPoint) (ecc.Point, ecc.ScalarVar) {
	api := c.api
	bits := api.ToBinary(scalar, ScalarBits)

	const split = ScalarBits / 2
	lo := api.FromBinary(bits[:split]...)
	hi := api.FromBinary(bits[split:]...)
	c.assertCanonical(lo, hi, split)

	bx, by := base.X(), base.Y()
	accX, accY := frontend.Variable(0), frontend.Variable(0)
	for i := ScalarBits - 1; i >= 0; i-- {
		accX, accY = c.addComplete(accX, accY, accX, accY)
		sumX, sumY := c.addComplete(accX, accY, bx, by)
		accX = api.Select(bits[i], sumX, accX)
		accY = api.Select(bits[i], sumY, accY)
	}

	return ecc.NewPoint(c, accX, accY), ecc.NewScalarVar(scalar)
}
