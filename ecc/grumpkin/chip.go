package grumpkin

import (
	"errors"
	"math/big"

	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/rangecheck"

	"github.com/consensys/gnark-ecc-gadgets/ecc"
)

// ScalarBits is the bit size of the Grumpkin scalar field.
const ScalarBits = 254

// MagnitudeBits bounds the magnitude of a signed short scalar.
const MagnitudeBits = 64

// bCurveCoeff is the constant term of the Grumpkin curve equation
// y^2 = x^3 - 17, as an element of the BN254 scalar field.
var bCurveCoeff = new(big.Int).Sub(fr_bn254.Modulus(), big.NewInt(17))

// Chip implements ecc.Instructions on Grumpkin. A chip is bound to one
// circuit builder; independent circuits get independent chips.
type Chip struct {
	api frontend.API
	rc  frontend.Rangechecker
}

var _ ecc.Instructions = (*Chip)(nil)

// New returns a chip bound to the given builder. Window range checks go
// through the backend's range-check primitive (lookup-backed where the
// backend supports it, bit decomposition otherwise).
func New(api frontend.API) (*Chip, error) {
	// this is a 2-cycle, so the base field of Grumpkin is the scalar field
	// of BN254. Error early to avoid any misuse.
	if api.Compiler().Field().Cmp(fr_bn254.Modulus()) != 0 {
		return nil, errors.New("expected BN254 scalar field for Grumpkin curve operations")
	}
	return &Chip{
		api: api,
		rc:  rangecheck.New(api),
	}, nil
}
