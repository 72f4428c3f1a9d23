package lightgbm

import (
	"gonum.org/v1/gonum/mat"

	lgbErrors "github.com/aryehlev/lightgbm-go/pkg/errors"
)

// PredictMatrix runs prediction over a gonum matrix and reshapes the flat
// native output back into a rows x k dense matrix, where k is whatever the
// selector produced per row (classes for Normal/RawScore, trees*classes for
// LeafIndex, (features+1)*classes for Contrib).
func (b *Booster) PredictMatrix(X mat.Matrix, kind PredictionType) (*mat.Dense, error) {
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return nil, lgbErrors.WithStack(lgbErrors.ErrEmptyData)
	}

	out, err := b.Predict(flatten(X, rows, cols), rows, cols, kind)
	if err != nil {
		return nil, err
	}
	if len(out)%rows != 0 {
		return nil, lgbErrors.Newf("lightgbm: PredictMatrix: output length %d is not a multiple of %d rows", len(out), rows)
	}
	return mat.NewDense(rows, len(out)/rows, out), nil
}

// flatten copies a matrix into the row-major layout the native call expects.
func flatten(X mat.Matrix, rows, cols int) []float64 {
	if d, ok := X.(*mat.Dense); ok {
		raw := d.RawMatrix()
		if raw.Stride == cols {
			flat := make([]float64, rows*cols)
			copy(flat, raw.Data[:rows*cols])
			return flat
		}
	}

	flat := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			flat[i*cols+j] = X.At(i, j)
		}
	}
	return flat
}
