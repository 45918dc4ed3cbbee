package fixedbase

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/gnark-ecc-gadgets/ecc"
)

// maxZSearch bounds the offset search. A candidate z works for one window
// with probability ~4^-H, so the expected number of candidates is ~65536;
// the bound leaves three orders of magnitude of headroom.
const maxZSearch = 1 << 26

// findZU searches the smallest offset z such that, for every entry
// y-coordinate of a window, y + z is a square in the base field while
// -y + z is not. Exactly one of the two roots of the curve equation then
// satisfies u^2 = y + z, which is what lets the circuit pin the sign of a
// recovered y-coordinate. Returns z and the recovery values u = sqrt(y+z).
func findZU(ys [ecc.H]fr.Element) (uint64, [ecc.H]fr.Element, error) {
	var us [ecc.H]fr.Element

	for z := uint64(0); z < maxZSearch; z++ {
		var zEl fr.Element
		zEl.SetUint64(z)

		ok := true
		for k := 0; k < ecc.H && ok; k++ {
			var plus, minus fr.Element
			plus.Add(&ys[k], &zEl)
			minus.Sub(&zEl, &ys[k])
			ok = plus.Legendre() == 1 && minus.Legendre() == -1
		}
		if !ok {
			continue
		}

		for k := 0; k < ecc.H; k++ {
			var t fr.Element
			t.Add(&ys[k], &zEl)
			if us[k].Sqrt(&t) == nil {
				return 0, us, errors.New("square root vanished after Legendre check")
			}
		}
		return z, us, nil
	}

	return 0, us, errors.New("no recovery offset found within search bound")
}
