package lightgbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	lgbErrors "github.com/aryehlev/lightgbm-go/pkg/errors"
)

func TestPredictMatrixNormal(t *testing.T) {
	f := newFakeNative()
	b := loadFakeBooster(t, f)

	X := mat.NewDense(3, 4, []float64{
		1, 2, 3, 4,
		4, 3, 2, 1,
		0.5, 0.5, 0.5, 0.5,
	})

	out, err := b.PredictMatrix(X, PredictNormal)
	require.NoError(t, err)

	rows, cols := out.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 1, cols)

	// Matches the flat API on the same data.
	flat, err := b.Predict([]float64{1, 2, 3, 4}, 1, 4, PredictNormal)
	require.NoError(t, err)
	assert.Equal(t, flat[0], out.At(0, 0))
}

func TestPredictMatrixMulticlass(t *testing.T) {
	f := newFakeNative()
	f.numClasses = 3
	b := loadFakeBooster(t, f)

	X := mat.NewDense(2, 4, nil)
	out, err := b.PredictMatrix(X, PredictNormal)
	require.NoError(t, err)

	rows, cols := out.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
}

func TestPredictMatrixContribShape(t *testing.T) {
	f := newFakeNative() // 4 features, 1 class
	b := loadFakeBooster(t, f)

	X := mat.NewDense(2, 4, nil)
	out, err := b.PredictMatrix(X, PredictContrib)
	require.NoError(t, err)

	rows, cols := out.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 5, cols, "features + bias term")
}

func TestPredictMatrixNonDense(t *testing.T) {
	f := newFakeNative()
	b := loadFakeBooster(t, f)

	// A transposed view exercises the generic At-based flatten path.
	base := mat.NewDense(4, 2, []float64{
		1, 4,
		2, 3,
		3, 2,
		4, 1,
	})
	X := base.T() // 2x4

	out, err := b.PredictMatrix(X, PredictNormal)
	require.NoError(t, err)

	direct, err := b.Predict([]float64{1, 2, 3, 4, 4, 3, 2, 1}, 2, 4, PredictNormal)
	require.NoError(t, err)
	assert.Equal(t, direct[0], out.At(0, 0))
	assert.Equal(t, direct[1], out.At(1, 0))
}

func TestPredictMatrixEmpty(t *testing.T) {
	f := newFakeNative()
	b := loadFakeBooster(t, f)

	var empty mat.Dense
	_, err := b.PredictMatrix(&empty, PredictNormal)
	require.Error(t, err)
	assert.True(t, lgbErrors.Is(err, lgbErrors.ErrEmptyData))
}
