package grumpkin

import (
	"errors"
	"fmt"
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/grumpkin"
	"github.com/consensys/gnark/constraint/solver"

	"github.com/consensys/gnark-ecc-gadgets/ecc"
	"github.com/consensys/gnark-ecc-gadgets/ecc/fixedbase"
)

// GetHints returns all hint functions used by the chip.
func GetHints() []solver.Hint {
	return []solver.Hint{windowPointHint, decomposeWindowsHint}
}

func init() {
	solver.RegisterHint(GetHints()...)
}

// windowPointHint recovers the fixed-base table entry selected by one
// window value, together with its y-recovery value.
//
// Inputs: generator x, generator y, window count, window index, window
// value k, then the window's H recovery values from the descriptor.
// Outputs: entry x, entry y, the recovery value at k. The entry is
// recomputed from the same construction the descriptor tables use; the
// gate constraints (interpolation, curve membership, sign recovery) make
// any disagreement unsatisfiable.
func windowPointHint(mod *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != 5+ecc.H {
		return errors.New("expecting thirteen inputs")
	}
	if len(outputs) != 3 {
		return errors.New("expecting three outputs")
	}

	var g curve.G1Affine
	g.X.SetBigInt(inputs[0])
	g.Y.SetBigInt(inputs[1])
	numWindows := int(inputs[2].Int64())
	window := int(inputs[3].Int64())
	k := inputs[4]

	if !k.IsInt64() || k.Int64() < 0 || k.Int64() >= ecc.H {
		return fmt.Errorf("window value %s out of range", k.String())
	}

	var p curve.G1Affine
	p.ScalarMultiplication(&g, fixedbase.WindowScalar(numWindows, window, k))
	if p.IsInfinity() {
		return fmt.Errorf("window %d entry is the identity", window)
	}
	p.X.BigInt(outputs[0])
	p.Y.BigInt(outputs[1])

	outputs[2].Set(inputs[5+int(k.Int64())])

	return nil
}

// decomposeWindowsHint splits the input into len(outputs) 3-bit windows,
// least-significant first.
func decomposeWindowsHint(mod *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != 1 {
		return errors.New("expecting one input")
	}
	v := new(big.Int).Set(inputs[0])
	mask := big.NewInt(ecc.H - 1)
	for i := range outputs {
		outputs[i].And(v, mask)
		v.Rsh(v, ecc.WindowSize)
	}
	return nil
}
