package grumpkin

import (
	"math/big"
	"sync"
	"testing"

	gnarkecc "github.com/consensys/gnark-crypto/ecc"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	curve "github.com/consensys/gnark-crypto/ecc/grumpkin"
	fr_grumpkin "github.com/consensys/gnark-crypto/ecc/grumpkin/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"

	"github.com/consensys/gnark-ecc-gadgets/ecc"
	"github.com/consensys/gnark-ecc-gadgets/ecc/fixedbase"
)

// table construction is expensive, so the test bases are built once and
// shared across tests
var (
	onceFull    sync.Once
	sharedFull  *fixedbase.FixedBase
	onceShort   sync.Once
	sharedShort *fixedbase.FixedBase
)

func testFullBase() *fixedbase.FixedBase {
	onceFull.Do(func() {
		_, g := curve.Generators()
		var err error
		sharedFull, err = fixedbase.New(g, fixedbase.NumWindows)
		if err != nil {
			panic(err)
		}
	})
	return sharedFull
}

// an independent base, so cross-base interference would show up in tests
func testShortBase() *fixedbase.FixedBase {
	onceShort.Do(func() {
		g := pointFromScalar(big.NewInt(0xdeadbeef))
		var err error
		sharedShort, err = fixedbase.New(g, fixedbase.NumWindowsShort)
		if err != nil {
			panic(err)
		}
	})
	return sharedShort
}

type mulFixedCircuit struct {
	Scalar ecc.ScalarFixed
	Res    [2]frontend.Variable `gnark:",public"`
}

func (c *mulFixedCircuit) Define(api frontend.API) error {
	chip, err := New(api)
	if err != nil {
		return err
	}
	res, err := ecc.NewFixedPoint(chip, testFullBase()).Mul(&c.Scalar)
	if err != nil {
		return err
	}
	api.AssertIsEqual(res.X(), c.Res[0])
	api.AssertIsEqual(res.Y(), c.Res[1])
	return nil
}

func TestMulFixed(t *testing.T) {
	assert := test.NewAssert(t)

	base := testFullBase().GeneratorAffine()
	mulG := func(k *big.Int) curve.G1Affine {
		var r curve.G1Affine
		r.ScalarMultiplication(&base, k)
		return r
	}

	var s fr_grumpkin.Element
	s.SetRandom()
	sb := s.BigInt(new(big.Int))

	// the one window sequence whose final fold is a doubling of the running
	// sum: 4, then 81 full windows of 3, then 1 (least-significant first)
	forced := big.NewInt(4)
	for i := 1; i < fixedbase.NumWindows-1; i++ {
		w := new(big.Int).Lsh(big.NewInt(3), uint(ecc.WindowSize*i))
		forced.Add(forced, w)
	}
	forced.Add(forced, new(big.Int).Lsh(big.NewInt(1), uint(ecc.WindowSize*(fixedbase.NumWindows-1))))

	minusOne := new(big.Int).Sub(fr_grumpkin.Modulus(), big.NewInt(1))

	circuits := []struct {
		name  string
		value *big.Int
	}{
		{"random", sb},
		{"zero", big.NewInt(0)},
		{"one", big.NewInt(1)},
		{"minus-one", minusOne},
		{"forced-doubling", forced},
	}

	for _, tc := range circuits {
		tc := tc
		assert.Run(func(assert *test.Assert) {
			witness := mulFixedCircuit{
				Scalar: ecc.NewScalarFixed(tc.value, fixedbase.NumWindows),
				Res:    coords(mulG(tc.value)),
			}
			assert.CheckCircuit(&mulFixedCircuit{Scalar: ecc.PlaceholderScalarFixed(fixedbase.NumWindows)},
				test.WithValidAssignment(&witness),
				test.WithCurves(gnarkecc.BN254))
		}, tc.name)
	}
}

func TestMulFixedInvalid(t *testing.T) {
	assert := test.NewAssert(t)

	base := testFullBase().GeneratorAffine()
	var ten curve.G1Affine
	ten.ScalarMultiplication(&base, big.NewInt(10))

	// window value 8 is out of range even though [10]G is what the table
	// construction would store for it
	overflowing := ecc.PlaceholderScalarFixed(fixedbase.NumWindows)
	for i := range overflowing.Windows {
		overflowing.Windows[i] = 0
	}
	overflowing.Windows[0] = 8
	outOfRange := mulFixedCircuit{Scalar: overflowing, Res: coords(ten)}

	var five curve.G1Affine
	five.ScalarMultiplication(&base, big.NewInt(5))
	wrong := mulFixedCircuit{
		Scalar: ecc.NewScalarFixed(big.NewInt(7), fixedbase.NumWindows),
		Res:    coords(five),
	}

	assert.CheckCircuit(&mulFixedCircuit{Scalar: ecc.PlaceholderScalarFixed(fixedbase.NumWindows)},
		test.WithInvalidAssignment(&outOfRange),
		test.WithInvalidAssignment(&wrong),
		test.WithCurves(gnarkecc.BN254))
}

// a descriptor lying about a recovery value must be unprovable: the sign
// gate checks the value the chip reads from the descriptor tables, not a
// recomputation
type corruptRecoveryBase struct {
	ecc.FixedPoints
}

func (b corruptRecoveryBase) U() [][ecc.H]*big.Int {
	us := b.FixedPoints.U()
	out := make([][ecc.H]*big.Int, len(us))
	copy(out, us)
	out[0][0] = big.NewInt(1)
	return out
}

type corruptRecoveryCircuit struct {
	Magnitude frontend.Variable
	Sign      frontend.Variable
}

func (c *corruptRecoveryCircuit) Define(api frontend.API) error {
	chip, err := New(api)
	if err != nil {
		return err
	}
	_, _, err = chip.MulFixedShort(c.Magnitude, c.Sign, corruptRecoveryBase{testShortBase()})
	return err
}

func TestMulFixedRejectsCorruptedRecoveryValue(t *testing.T) {
	assert := test.NewAssert(t)

	// magnitude 0 selects entry 0 of window 0, the corrupted slot
	witness := corruptRecoveryCircuit{Magnitude: 0, Sign: 1}
	assert.CheckCircuit(&corruptRecoveryCircuit{},
		test.WithInvalidAssignment(&witness),
		test.WithCurves(gnarkecc.BN254))
}

type mulFixedShortCircuit struct {
	Magnitude frontend.Variable
	Sign      frontend.Variable
	Res       [2]frontend.Variable `gnark:",public"`
}

func (c *mulFixedShortCircuit) Define(api frontend.API) error {
	chip, err := New(api)
	if err != nil {
		return err
	}
	res, _, err := ecc.NewFixedPoint(chip, testShortBase()).MulShort(c.Magnitude, c.Sign)
	if err != nil {
		return err
	}
	api.AssertIsEqual(res.X(), c.Res[0])
	api.AssertIsEqual(res.Y(), c.Res[1])
	return nil
}

func TestMulFixedShort(t *testing.T) {
	assert := test.NewAssert(t)

	base := testShortBase().GeneratorAffine()
	mulB := func(k *big.Int) curve.G1Affine {
		var r curve.G1Affine
		r.ScalarMultiplication(&base, k)
		return r
	}

	m := new(big.Int).SetUint64(0xfeed_f00d_dead_beef)
	var pos, neg curve.G1Affine
	pos = mulB(m)
	neg.Neg(&pos)

	positive := mulFixedShortCircuit{Magnitude: m, Sign: 1, Res: coords(pos)}
	negative := mulFixedShortCircuit{Magnitude: m, Sign: -1, Res: coords(neg)}
	zeroNeg := mulFixedShortCircuit{Magnitude: 0, Sign: -1, Res: [2]frontend.Variable{0, 0}}
	maxMag := new(big.Int).SetUint64(^uint64(0))
	boundary := mulFixedShortCircuit{Magnitude: maxMag, Sign: 1, Res: coords(mulB(maxMag))}

	badSign := mulFixedShortCircuit{Magnitude: m, Sign: 2, Res: coords(pos)}
	tooWide := new(big.Int).Lsh(big.NewInt(1), 64)
	badMagnitude := mulFixedShortCircuit{Magnitude: tooWide, Sign: 1, Res: coords(mulB(tooWide))}
	wrong := mulFixedShortCircuit{Magnitude: m, Sign: -1, Res: coords(pos)}

	assert.CheckCircuit(&mulFixedShortCircuit{},
		test.WithValidAssignment(&positive),
		test.WithValidAssignment(&negative),
		test.WithValidAssignment(&zeroNeg),
		test.WithValidAssignment(&boundary),
		test.WithInvalidAssignment(&badSign),
		test.WithInvalidAssignment(&badMagnitude),
		test.WithInvalidAssignment(&wrong),
		test.WithCurves(gnarkecc.BN254))
}

type mulFixedBaseFieldCircuit struct {
	Elem frontend.Variable
	Res  [2]frontend.Variable `gnark:",public"`
}

func (c *mulFixedBaseFieldCircuit) Define(api frontend.API) error {
	chip, err := New(api)
	if err != nil {
		return err
	}
	res, err := ecc.NewFixedPoint(chip, testFullBase()).MulBaseField(c.Elem)
	if err != nil {
		return err
	}
	api.AssertIsEqual(res.X(), c.Res[0])
	api.AssertIsEqual(res.Y(), c.Res[1])
	return nil
}

func TestMulFixedBaseField(t *testing.T) {
	assert := test.NewAssert(t)

	base := testFullBase().GeneratorAffine()
	mulG := func(k *big.Int) curve.G1Affine {
		var r curve.G1Affine
		r.ScalarMultiplication(&base, k)
		return r
	}

	var e fr_bn254.Element
	e.SetRandom()
	eb := e.BigInt(new(big.Int))
	minusOne := new(big.Int).Sub(fr_bn254.Modulus(), big.NewInt(1))

	random := mulFixedBaseFieldCircuit{Elem: eb, Res: coords(mulG(eb))}
	zero := mulFixedBaseFieldCircuit{Elem: 0, Res: [2]frontend.Variable{0, 0}}
	boundary := mulFixedBaseFieldCircuit{Elem: minusOne, Res: coords(mulG(minusOne))}
	wrong := mulFixedBaseFieldCircuit{Elem: eb, Res: coords(mulG(minusOne))}

	assert.CheckCircuit(&mulFixedBaseFieldCircuit{},
		test.WithValidAssignment(&random),
		test.WithValidAssignment(&zero),
		test.WithValidAssignment(&boundary),
		test.WithInvalidAssignment(&wrong),
		test.WithCurves(gnarkecc.BN254))
}

// all three fixed-base paths must agree on a scalar every variant accepts
type fixedVariantsCircuit struct {
	V      frontend.Variable
	Scalar ecc.ScalarFixed
}

func (c *fixedVariantsCircuit) Define(api frontend.API) error {
	chip, err := New(api)
	if err != nil {
		return err
	}
	full := ecc.NewFixedPoint(chip, testFullBase())

	viaWindows, err := full.Mul(&c.Scalar)
	if err != nil {
		return err
	}
	viaBaseField, err := full.MulBaseField(c.V)
	if err != nil {
		return err
	}
	viaWindows.ConstrainEqual(viaBaseField)

	// the short path uses its own base, so compare against a ladder on the
	// same base instead
	short := ecc.NewFixedPoint(chip, testShortBase())
	viaShort, _, err := short.MulShort(c.V, 1)
	if err != nil {
		return err
	}
	sx, sy := testShortBase().Generator()
	sbase, err := chip.WitnessPointNonID(sx, sy)
	if err != nil {
		return err
	}
	viaLadder, _ := sbase.Mul(c.V)
	viaShort.ConstrainEqual(viaLadder)

	return nil
}

func TestFixedVariantsAgree(t *testing.T) {
	assert := test.NewAssert(t)

	v := new(big.Int).SetUint64(0x1234_5678_9abc_def0)
	witness := fixedVariantsCircuit{
		V:      v,
		Scalar: ecc.NewScalarFixed(v, fixedbase.NumWindows),
	}

	assert.CheckCircuit(&fixedVariantsCircuit{Scalar: ecc.PlaceholderScalarFixed(fixedbase.NumWindows)},
		test.WithValidAssignment(&witness),
		test.WithCurves(gnarkecc.BN254))
}
