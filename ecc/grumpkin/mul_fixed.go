package grumpkin

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"

	"github.com/consensys/gnark-ecc-gadgets/ecc"
)

// MulFixed implements ecc.Instructions: full-width fixed-base scalar
// multiplication. The scalar's window cells are range-checked and bound to
// the base's tables here, so callers may build the scalar from unchecked
// witness values.
func (c *Chip) MulFixed(scalar *ecc.ScalarFixed, base ecc.FixedPoints) (ecc.Point, error) {
	return c.mulFixedWindows(scalar.Windows, base)
}

// mulFixedWindows is the accumulation engine shared by the fixed-base
// variants.
//
// Each window cell selects one precomputed table entry. Windows 0..n-2
// fold into the accumulator with incomplete addition: the (k+2) offset in
// the table construction keeps the partial sums strictly below the next
// window's smallest entry as integers, so equal or opposite operands never
// occur for any witness. The last window folds with complete addition,
// which absorbs the zero scalar (the telescoped sum is the identity there)
// and the one canonical window sequence whose final fold is a doubling.
func (c *Chip) mulFixedWindows(windows []frontend.Variable, base ecc.FixedPoints) (ecc.Point, error) {
	n := base.NumWindows()
	if len(windows) != n {
		return ecc.Point{}, fmt.Errorf("%w: scalar has %d windows, base has %d", ecc.ErrWindowCount, len(windows), n)
	}
	if n < 2 {
		return ecc.Point{}, errors.New("fixed base must cover at least two windows")
	}

	gx, gy := base.Generator()
	zs := base.Z()
	us := base.U()
	coeffs := base.LagrangeCoeffs()

	var accX, accY frontend.Variable
	for i, k := range windows {
		c.rc.Check(k, ecc.WindowSize)
		x, y, err := c.windowPoint(k, i, n, gx, gy, zs[i], us[i], coeffs[i])
		if err != nil {
			return ecc.Point{}, err
		}
		switch {
		case i == 0:
			accX, accY = x, y
		case i < n-1:
			accX, accY = c.addIncomplete(accX, accY, x, y)
		default:
			accX, accY = c.addComplete(accX, accY, x, y)
		}
	}

	return ecc.NewPoint(c, accX, accY), nil
}

// windowPoint witnesses the table entry selected by the window value k and
// constrains it against the base's public per-window data. Three gates pin
// the entry: its x-coordinate matches the window's interpolation
// polynomial at k, the point is on the curve, and the sign of y is fixed
// by u^2 = y + z (the offset z makes y + z square and -y + z non-square
// for every entry of the window). The recovery value comes out of the
// descriptor tables through the hint; the sign gate rejects any descriptor
// that disagrees with the curve.
func (c *Chip) windowPoint(k frontend.Variable, window, numWindows int, gx, gy *big.Int, z uint64, us [ecc.H]*big.Int, coeffs [ecc.H]*big.Int) (x, y frontend.Variable, err error) {
	hintIn := make([]frontend.Variable, 0, 5+ecc.H)
	hintIn = append(hintIn, gx, gy, numWindows, window, k)
	for _, u := range us {
		hintIn = append(hintIn, u)
	}
	out, err := c.api.Compiler().NewHint(windowPointHint, 3, hintIn...)
	if err != nil {
		return nil, nil, fmt.Errorf("window point hint: %w", err)
	}
	x, y, u := out[0], out[1], out[2]

	interp := frontend.Variable(coeffs[ecc.H-1])
	for d := ecc.H - 2; d >= 0; d-- {
		interp = c.api.Add(c.api.Mul(interp, k), coeffs[d])
	}
	c.api.AssertIsEqual(x, interp)

	c.api.AssertIsEqual(c.curveEq(x, y), 0)

	c.api.AssertIsEqual(c.api.Mul(u, u), c.api.Add(y, z))

	return x, y, nil
}

// decomposeWindows derives n 3-bit window cells from v. The cells come
// from a hint and are unconstrained until the engine range-checks them and
// the caller binds them back to v with a recomposition identity.
func (c *Chip) decomposeWindows(v frontend.Variable, n int) ([]frontend.Variable, error) {
	windows, err := c.api.Compiler().NewHint(decomposeWindowsHint, n, v)
	if err != nil {
		return nil, fmt.Errorf("decompose windows: %w", err)
	}
	return windows, nil
}
