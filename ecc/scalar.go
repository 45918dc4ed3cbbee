package ecc

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
)

// ScalarVar is a circuit field element used as the scalar in variable-base
// scalar multiplication.
//
// It is not true in general that a scalar field element fits in the curve's
// base field; a ScalarVar only covers scalars that do.
type ScalarVar struct {
	v frontend.Variable
}

// NewScalarVar wraps a scalar obtained directly from an instruction.
func NewScalarVar(v frontend.Variable) ScalarVar { return ScalarVar{v: v} }

// Var returns the in-circuit scalar.
func (s ScalarVar) Var() frontend.Variable { return s.v }

// ScalarFixed is a full-width scalar for fixed-base multiplication,
// witnessed as an ordered sequence of 3-bit window cells, least-significant
// window first.
//
// The window cells are ordinary witness variables: MulFixed range-checks
// each of them to [0, H) and they become the in-circuit representation of
// the scalar. The decomposition is permitted to be non-canonical with
// respect to the scalar field modulus. The original value, when known, is
// retained for debugging only and is never constrained.
type ScalarFixed struct {
	Windows []frontend.Variable

	value *big.Int // nil when the scalar is unknown (blinding/compile pass)
}

// NewScalarFixed decomposes value into numWindows 3-bit windows and returns
// the assignment-side scalar record.
func NewScalarFixed(value *big.Int, numWindows int) ScalarFixed {
	windows := DecomposeWindows(value, numWindows)
	vars := make([]frontend.Variable, numWindows)
	for i, w := range windows {
		vars[i] = w
	}
	return ScalarFixed{
		Windows: vars,
		value:   new(big.Int).Set(value),
	}
}

// PlaceholderScalarFixed returns a scalar with numWindows unassigned window
// cells. It is used on the compile pass, where the value is unknown.
func PlaceholderScalarFixed(numWindows int) ScalarFixed {
	return ScalarFixed{Windows: make([]frontend.Variable, numWindows)}
}

// Value returns the off-circuit scalar the windows were derived from, or
// nil when the scalar is unknown.
func (s *ScalarFixed) Value() *big.Int { return s.value }

// DecomposeWindows splits value into numWindows 3-bit windows,
// least-significant first. It is a plain base-8 expansion of the given
// integer; windows beyond the value's length are zero and bits beyond
// numWindows*3 are discarded.
func DecomposeWindows(value *big.Int, numWindows int) []uint64 {
	v := new(big.Int).Set(value)
	mask := big.NewInt(H - 1)
	w := new(big.Int)
	out := make([]uint64, numWindows)
	for i := range out {
		out[i] = w.And(v, mask).Uint64()
		v.Rsh(v, WindowSize)
	}
	return out
}

// ScalarFixedShort is a signed short scalar for fixed-base multiplication:
// a magnitude of at most 64 bits and a sign in {+1, -1}. The magnitude's
// window cells are derived in-circuit by MulFixedShort and recorded here.
type ScalarFixedShort struct {
	magnitude frontend.Variable
	sign      frontend.Variable
	windows   []frontend.Variable
}

// NewScalarFixedShort wraps the pieces of a short signed scalar produced by
// an instruction.
func NewScalarFixedShort(magnitude, sign frontend.Variable, windows []frontend.Variable) *ScalarFixedShort {
	return &ScalarFixedShort{magnitude: magnitude, sign: sign, windows: windows}
}

// Magnitude returns the in-circuit magnitude.
func (s *ScalarFixedShort) Magnitude() frontend.Variable { return s.magnitude }

// Sign returns the in-circuit sign, constrained to {+1, -1}.
func (s *ScalarFixedShort) Sign() frontend.Variable { return s.sign }

// Windows returns the magnitude's window cells, least-significant first.
func (s *ScalarFixedShort) Windows() []frontend.Variable { return s.windows }
