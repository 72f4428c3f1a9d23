package lightgbm

import (
	"fmt"

	"github.com/aryehlev/lightgbm-go/internal/capi"
	lgbErrors "github.com/aryehlev/lightgbm-go/pkg/errors"
)

// nativeAPI mirrors the raw LightGBM C entry points this package uses.
// The production implementation delegates to internal/capi; tests substitute
// a counting fake so lifecycle and dispatch logic can be verified without
// the native library.
type nativeAPI interface {
	CreateFromFile(path string) (handle capi.BoosterHandle, numIterations, status int)
	CreateFromString(model string) (handle capi.BoosterHandle, numIterations, status int)
	Free(handle capi.BoosterHandle) (status int)
	NumFeature(handle capi.BoosterHandle) (n, status int)
	NumClasses(handle capi.BoosterHandle) (n, status int)
	CalcNumPredict(handle capi.BoosterHandle, numRow, predictType, startIteration, numIteration int) (outLen int64, status int)
	PredictForMat64(handle capi.BoosterHandle, data []float64, nrow, ncol, predictType, startIteration, numIteration int, parameter string, out []float64) (written int64, status int)
	PredictForMat32(handle capi.BoosterHandle, data []float32, nrow, ncol, predictType, startIteration, numIteration int, parameter string, out []float64) (written int64, status int)
	SaveModelToString(handle capi.BoosterHandle, startIteration, numIteration, featureImportanceType int) (model string, status int)
	LastError() string
}

// capiSurface is the production nativeAPI backed by internal/capi.
type capiSurface struct{}

func (capiSurface) CreateFromFile(path string) (capi.BoosterHandle, int, int) {
	return capi.BoosterCreateFromModelfile(path)
}

func (capiSurface) CreateFromString(model string) (capi.BoosterHandle, int, int) {
	return capi.BoosterLoadModelFromString(model)
}

func (capiSurface) Free(handle capi.BoosterHandle) int {
	return capi.BoosterFree(handle)
}

func (capiSurface) NumFeature(handle capi.BoosterHandle) (int, int) {
	return capi.BoosterGetNumFeature(handle)
}

func (capiSurface) NumClasses(handle capi.BoosterHandle) (int, int) {
	return capi.BoosterGetNumClasses(handle)
}

func (capiSurface) CalcNumPredict(handle capi.BoosterHandle, numRow, predictType, startIteration, numIteration int) (int64, int) {
	return capi.BoosterCalcNumPredict(handle, numRow, predictType, startIteration, numIteration)
}

func (capiSurface) PredictForMat64(handle capi.BoosterHandle, data []float64, nrow, ncol, predictType, startIteration, numIteration int, parameter string, out []float64) (int64, int) {
	return capi.BoosterPredictForMat64(handle, data, nrow, ncol, predictType, startIteration, numIteration, parameter, out)
}

func (capiSurface) PredictForMat32(handle capi.BoosterHandle, data []float32, nrow, ncol, predictType, startIteration, numIteration int, parameter string, out []float64) (int64, int) {
	return capi.BoosterPredictForMat32(handle, data, nrow, ncol, predictType, startIteration, numIteration, parameter, out)
}

func (capiSurface) SaveModelToString(handle capi.BoosterHandle, startIteration, numIteration, featureImportanceType int) (string, int) {
	return capi.BoosterSaveModelToString(handle, startIteration, numIteration, featureImportanceType)
}

func (capiSurface) LastError() string {
	return capi.GetLastError()
}

// defaultNative is shared by all Boosters built through the public
// constructors.
var defaultNative nativeAPI = capiSurface{}

// errKind selects the typed error checkStatus produces on failure.
type errKind int

const (
	loadKind errKind = iota
	predictKind
	releaseKind
)

// checkStatus translates the raw status of a native call into a typed
// error, fetching the native last-error message on failure. Status 0 is
// success. Every native call in this package goes through checkStatus; raw
// status codes never reach callers.
func checkStatus(api nativeAPI, op string, status int, kind errKind) error {
	if status == 0 {
		return nil
	}
	msg := api.LastError()
	switch kind {
	case loadKind:
		return lgbErrors.NewLoadError(op, msg)
	case predictKind:
		return lgbErrors.NewPredictionError(op, msg)
	case releaseKind:
		return lgbErrors.Newf("lightgbm: %s: %s", op, msg)
	default:
		panic(fmt.Sprintf("lightgbm: unknown error kind %d", int(kind)))
	}
}
