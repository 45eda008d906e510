package matrix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewZeroFilled(t *testing.T) {
	m := New(2, 3)
	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.Zero(t, m.At(i, j))
		}
	}
}

func TestNewEmptyAxes(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 4}, {4, 0}} {
		m := New(dims[0], dims[1])
		require.Equal(t, dims[0], m.Rows())
		require.Equal(t, dims[1], m.Cols())
	}
}

func TestNewNegativePanics(t *testing.T) {
	require.Panics(t, func() { New(-1, 2) })
}

func TestSetAt(t *testing.T) {
	m := New(2, 2)
	m.Set(1, 0, 7.5)
	require.Equal(t, 7.5, m.At(1, 0))
	require.Zero(t, m.At(0, 1))
}

func TestAtOutOfRangePanics(t *testing.T) {
	m := New(2, 2)
	require.Panics(t, func() { m.At(2, 0) })
	require.Panics(t, func() { m.At(0, -1) })
	require.Panics(t, func() { m.Set(0, 2, 1) })
}

func TestNewFromRowsRagged(t *testing.T) {
	require.Panics(t, func() { NewFromRows([][]float64{{1, 2}, {3}}) })
}

func TestMulScenario(t *testing.T) {
	// rows A,B × column C, then row C × columns D,E
	first := NewFromRows([][]float64{{2}, {3}})
	second := NewFromRows([][]float64{{4, 5}})

	got, err := Mul(first, second)
	require.NoError(t, err)
	want := NewFromRows([][]float64{{8, 10}, {12, 15}})
	require.True(t, mat.Equal(want.Mat(), got.Mat()), "got\n%v\nwant\n%v", got, want)
}

func TestMulShapeMismatch(t *testing.T) {
	_, err := Mul(New(2, 3), New(2, 3))
	require.ErrorIs(t, err, ErrShape)
}

func TestMulEmptyInner(t *testing.T) {
	got, err := Mul(New(3, 0), New(0, 2))
	require.NoError(t, err)
	require.Equal(t, 3, got.Rows())
	require.Equal(t, 2, got.Cols())
	got.NonZero(func(i, j int, v float64) {
		t.Errorf("unexpected non-zero cell (%d,%d)=%v", i, j, v)
	})
}

func TestMulEmptyOuter(t *testing.T) {
	got, err := Mul(New(0, 3), New(3, 2))
	require.NoError(t, err)
	require.Equal(t, 0, got.Rows())
	require.Equal(t, 2, got.Cols())
}

func TestMulMatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := randomSparse(rng, 37, 23)
	b := randomSparse(rng, 23, 41)

	got, err := Mul(a, b)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(a.Mat(), b.Mat())
	require.True(t, mat.EqualApprox(&want, got.Mat(), 1e-9))
}

func TestMulSplitsRowsIntoBatches(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	a := randomSparse(rng, 1031, 9)
	b := randomSparse(rng, 9, 5)

	got, err := Mul(a, b)
	require.NoError(t, err)

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			var want float64
			for k := 0; k < a.Cols(); k++ {
				want += a.At(i, k) * b.At(k, j)
			}
			require.InDelta(t, want, got.At(i, j), 1e-9, "cell (%d,%d)", i, j)
		}
	}
}

func TestMulScaling(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := randomSparse(rng, 9, 5)
	b := randomSparse(rng, 5, 6)
	const k = 3.5

	base, err := Mul(a, b)
	require.NoError(t, err)
	scaled, err := Mul(a.Scale(k), b)
	require.NoError(t, err)

	require.True(t, mat.EqualApprox(base.Scale(k).Mat(), scaled.Mat(), 1e-9))
}

func TestMulDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := randomSparse(rng, 64, 32)
	b := randomSparse(rng, 32, 64)

	first, err := Mul(a, b)
	require.NoError(t, err)
	for run := 0; run < 5; run++ {
		again, err := Mul(a, b)
		require.NoError(t, err)
		require.True(t, mat.Equal(first.Mat(), again.Mat()))
	}
}

func TestNonZeroOrder(t *testing.T) {
	m := NewFromRows([][]float64{{0, 1}, {2, 0}})
	var cells [][2]int
	m.NonZero(func(i, j int, _ float64) { cells = append(cells, [2]int{i, j}) })
	require.Equal(t, [][2]int{{0, 1}, {1, 0}}, cells)
}

func TestTranspose(t *testing.T) {
	m := NewFromRows([][]float64{{1, 2, 3}})
	tr := m.Transpose()
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 1, tr.Cols())
	require.Equal(t, 3.0, tr.At(2, 0))
}

func TestCloneIndependent(t *testing.T) {
	m := NewFromRows([][]float64{{1}})
	c := m.Clone()
	c.Set(0, 0, 9)
	require.Equal(t, 1.0, m.At(0, 0))
}

func TestStringEmpty(t *testing.T) {
	require.Equal(t, "[](0×3)", New(0, 3).String())
}

func randomSparse(rng *rand.Rand, rows, cols int) *Dense {
	m := New(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() < 0.3 {
				m.Set(i, j, float64(rng.Intn(9)+1))
			}
		}
	}
	return m
}
