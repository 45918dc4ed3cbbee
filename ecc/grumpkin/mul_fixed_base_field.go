package grumpkin

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"

	"github.com/consensys/gnark-ecc-gadgets/ecc"
	"github.com/consensys/gnark-ecc-gadgets/ecc/fixedbase"
)

// windowsLow is where the recomposition of a full-width window vector is
// split into halves: 42 windows cover exactly 126 bits, so the low half
// fits the circuit field with room to spare and the high half is bounded
// by 2^129.
const windowsLow = 42

// MulFixedBaseField implements ecc.Instructions: fixed-base multiplication
// by a circuit field element, typically produced by another gadget.
//
// The window vector is bound to elem by a two-half recomposition (a single
// native sum over 85 windows wraps the field modulus, which would let a
// prover encode elem + r instead of elem and reach a different point,
// since the group order differs from r) and constrained canonical, so
// exactly one window vector satisfies the gates for each elem.
func (c *Chip) MulFixedBaseField(elem frontend.Variable, base ecc.FixedPoints) (ecc.Point, error) {
	api := c.api

	n := base.NumWindows()
	if n != fixedbase.NumWindows {
		return ecc.Point{}, fmt.Errorf("base-field scalars need a full-width base, got %d windows", n)
	}

	windows, err := c.decomposeWindows(elem, n)
	if err != nil {
		return ecc.Point{}, err
	}

	// once the engine has range-checked the cells, vLo < 2^126 and
	// vHi < 2^129; neither half can wrap on its own
	vLo := frontend.Variable(0)
	coef := big.NewInt(1)
	for _, w := range windows[:windowsLow] {
		vLo = api.Add(vLo, api.Mul(w, new(big.Int).Set(coef)))
		coef.Lsh(coef, ecc.WindowSize)
	}
	vHi := frontend.Variable(0)
	coef = big.NewInt(1)
	for _, w := range windows[windowsLow:] {
		vHi = api.Add(vHi, api.Mul(w, new(big.Int).Set(coef)))
		coef.Lsh(coef, ecc.WindowSize)
	}

	shift := new(big.Int).Lsh(big.NewInt(1), uint(ecc.WindowSize*windowsLow))
	api.AssertIsEqual(api.Add(vLo, api.Mul(vHi, shift)), elem)

	c.assertCanonical(vLo, vHi, ecc.WindowSize*windowsLow)

	return c.mulFixedWindows(windows, base)
}
