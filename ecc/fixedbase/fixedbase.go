// Package fixedbase precomputes the public per-window tables backing
// fixed-base scalar multiplication on Grumpkin.
//
// For a generator G and N windows, the table entry for window i < N-1 at
// window value k is [(k+2)*8^i]G; the last window's entry is
// [k*8^(N-1) - sum_{j<N-1} 2*8^j]G. The per-window +2 offsets cancel
// telescopically, so folding one entry per window yields [sum k_i*8^i]G.
// The offsets keep every non-final entry away from the identity and keep
// every reachable partial sum of the accumulation chain distinct from the
// next entry and its negation, which is the precondition the incomplete
// addition chain in the chip relies on.
//
// Per window the package also derives a degree-7 interpolation polynomial
// for the entry x-coordinates and the y-recovery data (z, u): z is the
// smallest offset such that y + z is a square for every entry while -y + z
// never is, and u = sqrt(y + z). Inside the circuit, u^2 = y + z then pins
// the correct sign of the y-coordinate recovered for a window.
//
// Tables are pure functions of (generator, window count). They are meant to
// be computed once, at startup, per distinct base, and shared read-only
// across concurrent proof constructions.
package fixedbase

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/grumpkin"
	fr_grumpkin "github.com/consensys/gnark-crypto/ecc/grumpkin/fr"

	"github.com/consensys/gnark-ecc-gadgets/ecc"
	"github.com/consensys/gnark-ecc-gadgets/logger"
)

// NumWindows covers a full-width Grumpkin scalar: ceil(254 / 3).
const NumWindows = 85

// NumWindowsShort covers a 64-bit magnitude plus the per-window offsets.
const NumWindowsShort = 22

// FixedBase holds the public precomputed data of one fixed base. It
// implements ecc.FixedPoints and is immutable after construction.
type FixedBase struct {
	generator  grumpkin.G1Affine
	gX, gY     *big.Int
	numWindows int

	z      []uint64
	u      [][ecc.H]*big.Int
	coeffs [][ecc.H]*big.Int
}

var _ ecc.FixedPoints = (*FixedBase)(nil)

// New builds the tables for the given generator over numWindows windows.
// It returns an error if the generator is the identity, if fewer than two
// windows are requested, or if any table entry degenerates.
func New(generator grumpkin.G1Affine, numWindows int) (*FixedBase, error) {
	if generator.IsInfinity() {
		return nil, errors.New("fixedbase: generator is the identity")
	}
	if numWindows < 2 {
		return nil, fmt.Errorf("fixedbase: need at least 2 windows, got %d", numWindows)
	}

	start := time.Now()

	fb := &FixedBase{
		generator:  generator,
		gX:         generator.X.BigInt(new(big.Int)),
		gY:         generator.Y.BigInt(new(big.Int)),
		numWindows: numWindows,
		z:          make([]uint64, numWindows),
		u:          make([][ecc.H]*big.Int, numWindows),
		coeffs:     make([][ecc.H]*big.Int, numWindows),
	}

	for i := 0; i < numWindows; i++ {
		var xs, ys [ecc.H]fr.Element
		for k := 0; k < ecc.H; k++ {
			s := WindowScalar(numWindows, i, big.NewInt(int64(k)))
			var p grumpkin.G1Affine
			p.ScalarMultiplication(&generator, s)
			if p.IsInfinity() {
				return nil, fmt.Errorf("fixedbase: window %d entry %d is the identity", i, k)
			}
			xs[k] = (fr.Element)(p.X)
			ys[k] = (fr.Element)(p.Y)
		}

		cs := interpolate(xs)
		for k := 0; k < ecc.H; k++ {
			fb.coeffs[i][k] = cs[k].BigInt(new(big.Int))
		}

		z, us, err := findZU(ys)
		if err != nil {
			return nil, fmt.Errorf("fixedbase: window %d: %w", i, err)
		}
		fb.z[i] = z
		for k := 0; k < ecc.H; k++ {
			fb.u[i][k] = us[k].BigInt(new(big.Int))
		}
	}

	log := logger.Logger()
	log.Debug().
		Int("windows", numWindows).
		Dur("took", time.Since(start)).
		Msg("fixed-base tables built")

	return fb, nil
}

// WindowScalar returns the scalar multiple of the generator stored in the
// table of the given window at window value k, reduced modulo the Grumpkin
// scalar field order. The chip's window-recovery hint uses the same
// construction, so the two can never disagree.
func WindowScalar(numWindows, window int, k *big.Int) *big.Int {
	s := new(big.Int)
	if window < numWindows-1 {
		// (k + 2) * 8^window
		s.Add(k, big.NewInt(2))
		s.Lsh(s, uint(ecc.WindowSize*window))
	} else {
		// k * 8^window - sum_{j < window} 2*8^j
		s.Lsh(k, uint(ecc.WindowSize*window))
		off := new(big.Int)
		for j := 0; j < window; j++ {
			off.Add(off, new(big.Int).Lsh(big.NewInt(2), uint(ecc.WindowSize*j)))
		}
		s.Sub(s, off)
	}
	return s.Mod(s, fr_grumpkin.Modulus())
}

// GeneratorAffine returns the base point as a curve element.
func (fb *FixedBase) GeneratorAffine() grumpkin.G1Affine { return fb.generator }

// Generator implements ecc.FixedPoints.
func (fb *FixedBase) Generator() (x, y *big.Int) { return fb.gX, fb.gY }

// NumWindows implements ecc.FixedPoints.
func (fb *FixedBase) NumWindows() int { return fb.numWindows }

// Z implements ecc.FixedPoints.
func (fb *FixedBase) Z() []uint64 { return fb.z }

// U implements ecc.FixedPoints.
func (fb *FixedBase) U() [][ecc.H]*big.Int { return fb.u }

// LagrangeCoeffs implements ecc.FixedPoints.
func (fb *FixedBase) LagrangeCoeffs() [][ecc.H]*big.Int { return fb.coeffs }
