package lightgbm

import (
	"fmt"
	"math"

	"github.com/aryehlev/lightgbm-go/internal/capi"
	lgbErrors "github.com/aryehlev/lightgbm-go/pkg/errors"
	"github.com/aryehlev/lightgbm-go/pkg/log"
)

// PredictionType selects which native prediction semantics a predict call
// requests, and with it the shape of the output:
//
//	Normal     rows * classes            probability / value per row per class
//	RawScore   rows * classes            pre-link-function score
//	LeafIndex  rows * trees * classes    leaf assigned per tree per row
//	Contrib    rows * (features+1) * classes   SHAP values plus bias term
//
// The exact output length is always resolved through the native metadata
// query, not these formulas; tree count varies per trained model.
type PredictionType int

const (
	// PredictNormal returns the final prediction, after the objective's
	// link function.
	PredictNormal PredictionType = iota
	// PredictRawScore returns the raw margin score.
	PredictRawScore
	// PredictLeafIndex returns the index of the leaf each tree routes the
	// row to.
	PredictLeafIndex
	// PredictContrib returns SHAP feature contributions plus a bias term.
	PredictContrib
)

// String returns the selector name for diagnostics.
func (t PredictionType) String() string {
	switch t {
	case PredictNormal:
		return "Normal"
	case PredictRawScore:
		return "RawScore"
	case PredictLeafIndex:
		return "LeafIndex"
	case PredictContrib:
		return "Contrib"
	default:
		return fmt.Sprintf("PredictionType(%d)", int(t))
	}
}

// nativeValue maps the selector onto the C API prediction mode. The switch
// is exhaustive over the declared constants; any other value is a
// programming error, not a runtime data error.
func (t PredictionType) nativeValue() int {
	switch t {
	case PredictNormal:
		return capi.PredictNormal
	case PredictRawScore:
		return capi.PredictRawScore
	case PredictLeafIndex:
		return capi.PredictLeafIndex
	case PredictContrib:
		return capi.PredictContrib
	default:
		panic(fmt.Sprintf("lightgbm: invalid PredictionType %d", int(t)))
	}
}

// PredictOptions carries the optional per-call parameters of the native
// predict entry point. The zero value means: all iterations, no extra
// native parameters.
type PredictOptions struct {
	// StartIteration is the first boosting iteration used.
	StartIteration int
	// NumIterations limits how many iterations are used; <= 0 uses all.
	NumIterations int
	// Parameter is an extra native parameter string handed through
	// verbatim, e.g. "num_threads=1".
	Parameter string
}

// numIteration normalizes NumIterations to the native convention.
func (o PredictOptions) numIteration() int {
	if o.NumIterations <= 0 {
		return -1
	}
	return o.NumIterations
}

// Predict runs prediction over a row-major float64 matrix of rows x cols
// values and returns the flat float64 output, with all iterations and
// default native parameters.
func (b *Booster) Predict(data []float64, rows, cols int, kind PredictionType) ([]float64, error) {
	return b.PredictWithOptions(data, rows, cols, kind, PredictOptions{})
}

// PredictFloat32 is the float32-input twin of Predict. The two precisions
// are separate entry points dispatching to the dtype-specific native call;
// no implicit conversion happens, and output is always float64.
func (b *Booster) PredictFloat32(data []float32, rows, cols int, kind PredictionType) ([]float64, error) {
	return b.PredictFloat32WithOptions(data, rows, cols, kind, PredictOptions{})
}

// PredictWithOptions runs prediction with explicit PredictOptions.
func (b *Booster) PredictWithOptions(data []float64, rows, cols int, kind PredictionType, opts PredictOptions) (out []float64, err error) {
	defer lgbErrors.Recover(&err, "Booster.Predict")

	if err := b.checkRequest("Predict", len(data), rows, cols); err != nil {
		return nil, err
	}
	outBuf, err := b.allocOutput("Predict", rows, kind, opts)
	if err != nil {
		return nil, err
	}

	written, status := b.api.PredictForMat64(
		b.handle, data, rows, cols,
		kind.nativeValue(), opts.StartIteration, opts.numIteration(), opts.Parameter,
		outBuf,
	)
	if err := checkStatus(b.api, "Predict", status, predictKind); err != nil {
		return nil, err
	}
	return b.finishOutput("Predict", "float64", rows, cols, kind, outBuf, written), nil
}

// PredictFloat32WithOptions runs float32-input prediction with explicit
// PredictOptions.
func (b *Booster) PredictFloat32WithOptions(data []float32, rows, cols int, kind PredictionType, opts PredictOptions) (out []float64, err error) {
	defer lgbErrors.Recover(&err, "Booster.PredictFloat32")

	if err := b.checkRequest("PredictFloat32", len(data), rows, cols); err != nil {
		return nil, err
	}
	outBuf, err := b.allocOutput("PredictFloat32", rows, kind, opts)
	if err != nil {
		return nil, err
	}

	written, status := b.api.PredictForMat32(
		b.handle, data, rows, cols,
		kind.nativeValue(), opts.StartIteration, opts.numIteration(), opts.Parameter,
		outBuf,
	)
	if err := checkStatus(b.api, "PredictFloat32", status, predictKind); err != nil {
		return nil, err
	}
	return b.finishOutput("PredictFloat32", "float32", rows, cols, kind, outBuf, written), nil
}

// checkRequest enforces the caller-side contract before anything touches
// native code: positive dimensions and a flat slice of exactly rows*cols
// values. A column count differing from the model's feature count only
// raises a warning; the native library is authoritative on shape validity.
func (b *Booster) checkRequest(op string, dataLen, rows, cols int) error {
	if b.closed {
		return lgbErrors.WithStack(lgbErrors.ErrBoosterClosed)
	}
	if rows <= 0 {
		return lgbErrors.NewValueError(op, fmt.Sprintf("rows must be positive, got %d", rows))
	}
	if cols <= 0 {
		return lgbErrors.NewValueError(op, fmt.Sprintf("cols must be positive, got %d", cols))
	}
	if rows > math.MaxInt/cols {
		return lgbErrors.NewValueError(op, fmt.Sprintf("rows*cols overflows: %d * %d", rows, cols))
	}
	if expected := rows * cols; dataLen != expected {
		return lgbErrors.NewShapeMismatchError(op, rows, cols, expected, dataLen)
	}
	if cols != b.numFeatures {
		lgbErrors.Warn(lgbErrors.NewFeatureCountWarning(op, b.numFeatures, cols))
	}
	return nil
}

// allocOutput resolves the exact output length from the native metadata
// query and allocates the buffer the predict call will fill. The length
// depends on model internals (tree count, class count), so it is queried
// fresh for every call rather than derived from a formula.
func (b *Booster) allocOutput(op string, rows int, kind PredictionType, opts PredictOptions) ([]float64, error) {
	outLen, status := b.api.CalcNumPredict(
		b.handle, rows,
		kind.nativeValue(), opts.StartIteration, opts.numIteration(),
	)
	if err := checkStatus(b.api, op, status, predictKind); err != nil {
		return nil, err
	}
	if outLen < 0 {
		return nil, lgbErrors.NewPredictionError(op, fmt.Sprintf("native length query returned %d", outLen))
	}
	return make([]float64, outLen), nil
}

// finishOutput truncates the buffer to what the native call reports written
// and emits the debug record. Under-writes are warned about; the allocation
// itself was sized by the native metadata query, so they indicate native
// bookkeeping disagreement, not corruption.
func (b *Booster) finishOutput(op, dtype string, rows, cols int, kind PredictionType, out []float64, written int64) []float64 {
	if written < int64(len(out)) && written >= 0 {
		lgbErrors.Warn(lgbErrors.NewOutputLengthWarning(op, len(out), int(written)))
		out = out[:written]
	}

	logger := log.GetLoggerWithName("lightgbm.booster")
	logger.Debug("prediction complete",
		log.OperationKey, op,
		log.DataTypeKey, dtype,
		log.RowsKey, rows,
		log.ColsKey, cols,
		log.PredictTypeKey, kind.String(),
		log.OutputLenKey, len(out),
	)
	return out
}
