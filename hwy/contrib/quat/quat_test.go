package quat

import (
	"math"
	"math/rand/v2"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-highway/hwyquat/hwy"
)

func TestMulIntegerExact(t *testing.T) {
	t.Run("float32", func(t *testing.T) {
		a := Quat[float32]{X: -22, Y: 33, Z: -44, W: 11}
		b := Quat[float32]{X: 66, Y: -77, Z: 88, W: -55}
		assert.Equal(t, Quat[float32]{X: 1452, Y: -3630, Z: 2904, W: 7260}, a.Mul(b))
	})

	t.Run("float64", func(t *testing.T) {
		a := Quat[float64]{X: -22, Y: 33, Z: -44, W: 11}
		b := Quat[float64]{X: 66, Y: -77, Z: 88, W: -55}
		assert.Equal(t, Quat[float64]{X: 1452, Y: -3630, Z: 2904, W: 7260}, a.Mul(b))
	})

	t.Run("demo values", func(t *testing.T) {
		a := New[float32](2, 3, 4, 1)
		b := New[float32](6, 7, 8, 5)
		assert.Equal(t, New[float32](12, 30, 24, -60), a.Mul(b))
	})
}

func TestMulDecimal(t *testing.T) {
	a := Quat[float32]{X: 2.2, Y: 3.3, Z: 4.4, W: 1.1}
	b := Quat[float32]{X: 6.6, Y: 7.7, Z: 8.8, W: 5.5}
	got := a.Mul(b)

	assert.InEpsilon(t, 14.52, got.X, 1e-6)
	assert.InEpsilon(t, 36.3, got.Y, 1e-6)
	assert.InEpsilon(t, 29.04, got.Z, 1e-6)
	assert.InEpsilon(t, -72.6, got.W, 1e-6)
}

func TestMulMatchesScalarFormula(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	randQuat := func() Quat[float32] {
		return Quat[float32]{
			X: rng.Float32()*20 - 10,
			Y: rng.Float32()*20 - 10,
			Z: rng.Float32()*20 - 10,
			W: rng.Float32()*20 - 10,
		}
	}
	norm1 := func(q Quat[float32]) float64 {
		return math.Abs(float64(q.X)) + math.Abs(float64(q.Y)) + math.Abs(float64(q.Z)) + math.Abs(float64(q.W))
	}

	for range 1000 {
		a, b := randQuat(), randQuat()
		got := a.Mul(b)
		want := MulScalar(a, b)
		// Cancellation can make the relative error of a single component
		// large, so bound the error by the magnitude of the summed terms.
		tol := 1e-6 * norm1(a) * norm1(b)
		require.InDelta(t, want.X, got.X, tol, "X of %v * %v", a, b)
		require.InDelta(t, want.Y, got.Y, tol, "Y of %v * %v", a, b)
		require.InDelta(t, want.Z, got.Z, tol, "Z of %v * %v", a, b)
		require.InDelta(t, want.W, got.W, tol, "W of %v * %v", a, b)
	}
}

func TestMulNonCommutative(t *testing.T) {
	a := New[float32](2, 3, 4, 1)
	b := New[float32](6, 7, 8, 5)
	assert.NotEqual(t, a.Mul(b), b.Mul(a))
	assert.Equal(t, New[float32](20, 14, 32, -60), b.Mul(a))
}

func TestMulIdentity(t *testing.T) {
	one := Identity[float32]()
	for _, q := range []Quat[float32]{
		New[float32](2.2, 3.3, 4.4, 1.1),
		New[float32](-0.5, 0.5, -0.5, 0.5),
		New[float32](1e-3, -7, 1e6, 0),
	} {
		assert.Equal(t, q, q.Mul(one), "q * identity")
		assert.Equal(t, q, one.Mul(q), "identity * q")
	}
}

func TestMultiplyNoAlias(t *testing.T) {
	bufs := MakeAligned[float32](3)
	bufs[0] = New[float32](2, 3, 4, 1)
	bufs[1] = New[float32](6, 7, 8, 5)
	a0, b0 := bufs[0], bufs[1]

	Multiply(&bufs[2], &bufs[0], &bufs[1])
	assert.Equal(t, a0, bufs[0], "a modified")
	assert.Equal(t, b0, bufs[1], "b modified")
	first := bufs[2]
	assert.Equal(t, a0.Mul(b0), first)

	// Rotate roles: the previous result becomes an input and a former input
	// becomes the output buffer.
	Multiply(&bufs[0], &bufs[2], &bufs[1])
	assert.Equal(t, first.Mul(b0), bufs[0])
	assert.Equal(t, first, bufs[2], "input modified")
}

func TestMultiplyDeterministic(t *testing.T) {
	a := New[float32](0.1, -0.2, 0.3, 0.9)
	b := New[float32](-0.7, 0.11, 0.13, 0.4)

	bits := func(q Quat[float32]) [4]uint32 {
		return [4]uint32{math.Float32bits(q.X), math.Float32bits(q.Y), math.Float32bits(q.Z), math.Float32bits(q.W)}
	}
	want := bits(a.Mul(b))
	for range 100 {
		var r Quat[float32]
		Multiply(&r, &a, &b)
		require.Equal(t, want, bits(r))
	}
}

func TestMulNaNPropagates(t *testing.T) {
	nan := float32(math.NaN())
	a := New[float32](nan, 1, 2, 3)
	b := New[float32](4, 5, 6, 7)

	// x1 contributes to every component.
	for _, got := range []Quat[float32]{a.Mul(b), b.Mul(a)} {
		assert.True(t, math.IsNaN(float64(got.X)), "X = %v", got.X)
		assert.True(t, math.IsNaN(float64(got.Y)), "Y = %v", got.Y)
		assert.True(t, math.IsNaN(float64(got.Z)), "Z = %v", got.Z)
		assert.True(t, math.IsNaN(float64(got.W)), "W = %v", got.W)
	}
}

func TestBaseMul2FusedClose(t *testing.T) {
	q1 := hwy.Make4[float32](2.2, 3.3, 4.4, 1.1)
	q2 := hwy.Make4[float32](6.6, 7.7, 8.8, 5.5)
	unfused := BaseMul2(q1, q2)
	fused := BaseMul2Fused(q1, q2)
	for i := range hwy.NumLanes {
		assert.InEpsilon(t, unfused.Lane(i), fused.Lane(i), 1e-6, "lane %d", i)
	}
}

// TestDispatchedMatchesBase checks the dispatched float32 kernel (archsimd
// when available) against the portable product.
func TestDispatchedMatchesBase(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	base := BaseMul2[float32]
	if FusedMulAdd() {
		base = BaseMul2Fused[float32]
	}
	for range 500 {
		a := New(rng.Float32()-0.5, rng.Float32()-0.5, rng.Float32()-0.5, rng.Float32()-0.5)
		b := New(rng.Float32()-0.5, rng.Float32()-0.5, rng.Float32()-0.5, rng.Float32()-0.5)

		var got, want Quat[float32]
		MultiplyFloat32(&got, &a, &b)
		multiplyWith(&want, &a, &b, base)
		if FusedMulAdd() {
			// Software and hardware FMA may round differently.
			require.InDelta(t, want.X, got.X, 1e-6)
			require.InDelta(t, want.Y, got.Y, 1e-6)
			require.InDelta(t, want.Z, got.Z, 1e-6)
			require.InDelta(t, want.W, got.W, 1e-6)
			continue
		}
		require.Equal(t, want, got, "%v * %v on %s", a, b, hwy.CurrentName())
	}
}

type angle float32

func TestMulNamedFloatType(t *testing.T) {
	a := Quat[angle]{X: -22, Y: 33, Z: -44, W: 11}
	b := Quat[angle]{X: 66, Y: -77, Z: 88, W: -55}
	assert.Equal(t, Quat[angle]{X: 1452, Y: -3630, Z: 2904, W: 7260}, a.Mul(b))
}

func TestLayout(t *testing.T) {
	var q Quat[float32]
	assert.EqualValues(t, 16, unsafe.Sizeof(q))
	assert.EqualValues(t, 4, unsafe.Offsetof(q.Y))
	assert.EqualValues(t, 8, unsafe.Offsetof(q.Z))
	assert.EqualValues(t, 12, unsafe.Offsetof(q.W))

	q = New[float32](1, 2, 3, 4)
	assert.Equal(t, [hwy.NumLanes]float32{1, 2, 3, 4}, *q.lanes())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Quat(X=12, Y=30, Z=24, W=-60)", New[float32](12, 30, 24, -60).String())
}

func TestSignMasksShared(t *testing.T) {
	assert.Same(t, &signMasksFloat32, masksFor[float32]())
	assert.Same(t, &signMasksFloat64, masksFor[float64]())

	named := masksFor[angle]()
	assert.Equal(t, hwy.Make4[angle](1, -1, 1, -1), named.x)
	assert.Equal(t, hwy.Make4[angle](1, 1, -1, -1), named.y)
	assert.Equal(t, hwy.Make4[angle](-1, 1, 1, -1), named.z)
}

var sinkQuat Quat[float32]

func BenchmarkMul(b *testing.B) {
	x := New[float32](0.1, 0.2, 0.3, 0.9)
	y := New[float32](0.4, -0.1, 0.2, 0.8)
	for b.Loop() {
		sinkQuat = x.Mul(y)
	}
}

func BenchmarkMulScalar(b *testing.B) {
	x := New[float32](0.1, 0.2, 0.3, 0.9)
	y := New[float32](0.4, -0.1, 0.2, 0.8)
	for b.Loop() {
		sinkQuat = MulScalar(x, y)
	}
}

var sinkVec hwy.Vec4[float32]

func BenchmarkBaseMul2(b *testing.B) {
	q1 := hwy.Make4[float32](0.1, 0.2, 0.3, 0.9)
	q2 := hwy.Make4[float32](0.4, -0.1, 0.2, 0.8)
	for b.Loop() {
		sinkVec = BaseMul2(q1, q2)
	}
}
