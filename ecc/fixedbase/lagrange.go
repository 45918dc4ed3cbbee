package fixedbase

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/gnark-ecc-gadgets/ecc"
)

// interpolate returns the coefficients, constant term first, of the unique
// degree-(H-1) polynomial through the points (k, xs[k]) for k in [0, H).
//
// Classic Lagrange interpolation over the tiny domain {0..7}: for each k,
// expand the basis numerator prod_{j != k} (X - j) coefficient by
// coefficient, scale by xs[k] / prod_{j != k} (k - j) and accumulate.
func interpolate(xs [ecc.H]fr.Element) [ecc.H]fr.Element {
	var out [ecc.H]fr.Element

	for k := 0; k < ecc.H; k++ {
		num := make([]fr.Element, 1, ecc.H)
		num[0].SetOne()
		var denom, kEl fr.Element
		denom.SetOne()
		kEl.SetUint64(uint64(k))

		for j := 0; j < ecc.H; j++ {
			if j == k {
				continue
			}
			var jEl, negJ, diff fr.Element
			jEl.SetUint64(uint64(j))
			negJ.Neg(&jEl)
			diff.Sub(&kEl, &jEl)
			denom.Mul(&denom, &diff)

			// multiply the accumulated polynomial by (X - j)
			next := make([]fr.Element, len(num)+1)
			for d := range num {
				var t fr.Element
				t.Mul(&num[d], &negJ)
				next[d].Add(&next[d], &t)
				next[d+1].Add(&next[d+1], &num[d])
			}
			num = next
		}

		var scale fr.Element
		scale.Inverse(&denom).Mul(&scale, &xs[k])
		for d := range num {
			var t fr.Element
			t.Mul(&num[d], &scale)
			out[d].Add(&out[d], &t)
		}
	}

	return out
}

// evalPoly evaluates a coefficient vector, constant term first, at the
// given domain point. Used by tests to cross-check the interpolation.
func evalPoly(coeffs [ecc.H]fr.Element, at uint64) fr.Element {
	var x, acc fr.Element
	x.SetUint64(at)
	acc.Set(&coeffs[ecc.H-1])
	for d := ecc.H - 2; d >= 0; d-- {
		acc.Mul(&acc, &x).Add(&acc, &coeffs[d])
	}
	return acc
}
