package grumpkin

import (
	"math/big"

	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
)

// assertCanonical constrains hi*2^loBits + lo <= r - 1 as integers, r
// being the circuit modulus. Scalars recomposed from a decomposition are
// only unique once this bound holds: without it, the decomposition of
// v + r satisfies the same recomposition constraint modulo r and folds to
// a different multiple, since the group order differs from r.
//
// Callers must already have bounded lo below 2^loBits and hi below the
// field size, so neither limb comparison wraps.
func (c *Chip) assertCanonical(lo, hi frontend.Variable, loBits int) {
	api := c.api

	bound := new(big.Int).Sub(fr_bn254.Modulus(), big.NewInt(1))
	mask := new(big.Int).Lsh(big.NewInt(1), uint(loBits))
	boundLo := new(big.Int).And(bound, new(big.Int).Sub(mask, big.NewInt(1)))
	boundHi := new(big.Int).Rsh(bound, uint(loBits))

	cmpHi := api.Cmp(hi, boundHi)
	api.AssertIsDifferent(cmpHi, 1)
	// when the high limbs are equal the low limb decides
	hiEq := api.IsZero(cmpHi)
	cmpLo := api.Cmp(lo, boundLo)
	api.AssertIsDifferent(api.Mul(hiEq, cmpLo), 1)
}
