package grumpkin

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"

	"github.com/consensys/gnark-ecc-gadgets/ecc"
)

// MulFixedShort implements ecc.Instructions: fixed-base multiplication by
// a signed short scalar, returning [magnitude * sign] base. The magnitude
// is range-checked to MagnitudeBits bits and the sign constrained to
// exactly +1 or -1.
func (c *Chip) MulFixedShort(magnitude, sign frontend.Variable, base ecc.FixedPoints) (ecc.Point, *ecc.ScalarFixedShort, error) {
	api := c.api

	n := base.NumWindows()
	// n*3 bits must stay well below the field size so the recomposition sum
	// cannot wrap
	if n*ecc.WindowSize >= ScalarBits {
		return ecc.Point{}, nil, fmt.Errorf("short multiplication needs a short base, got %d windows", n)
	}

	c.rc.Check(magnitude, MagnitudeBits)
	api.AssertIsEqual(api.Mul(api.Sub(sign, 1), api.Add(sign, 1)), 0)

	windows, err := c.decomposeWindows(magnitude, n)
	if err != nil {
		return ecc.Point{}, nil, err
	}

	acc := frontend.Variable(0)
	coef := big.NewInt(1)
	for _, w := range windows {
		acc = api.Add(acc, api.Mul(w, new(big.Int).Set(coef)))
		coef.Lsh(coef, ecc.WindowSize)
	}
	api.AssertIsEqual(acc, magnitude)

	p, err := c.mulFixedWindows(windows, base)
	if err != nil {
		return ecc.Point{}, nil, err
	}

	// conditional negation; a zero magnitude yields (0, 0) and -0 = 0, so
	// the identity survives either sign
	res := ecc.NewPoint(c, p.X(), api.Mul(sign, p.Y()))
	return res, ecc.NewScalarFixedShort(magnitude, sign, windows), nil
}
