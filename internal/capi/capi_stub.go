//go:build !capi

package capi

// Without the capi build tag nothing links against the native library.
// Every call reports this status so the public layer surfaces a typed error
// instead of a link failure.
const statusUnavailable = -1

const unavailableMessage = "LightGBM native library not linked; rebuild with -tags capi and liblightgbm installed"

// GetLastError returns the message for the most recent failing call.
func GetLastError() string {
	return unavailableMessage
}

// BoosterCreateFromModelfile reports the native library as unavailable.
func BoosterCreateFromModelfile(filename string) (BoosterHandle, int, int) {
	return 0, 0, statusUnavailable
}

// BoosterLoadModelFromString reports the native library as unavailable.
func BoosterLoadModelFromString(model string) (BoosterHandle, int, int) {
	return 0, 0, statusUnavailable
}

// BoosterFree reports the native library as unavailable.
func BoosterFree(h BoosterHandle) int {
	return statusUnavailable
}

// BoosterGetNumFeature reports the native library as unavailable.
func BoosterGetNumFeature(h BoosterHandle) (int, int) {
	return 0, statusUnavailable
}

// BoosterGetNumClasses reports the native library as unavailable.
func BoosterGetNumClasses(h BoosterHandle) (int, int) {
	return 0, statusUnavailable
}

// BoosterCalcNumPredict reports the native library as unavailable.
func BoosterCalcNumPredict(h BoosterHandle, numRow, predictType, startIteration, numIteration int) (int64, int) {
	return 0, statusUnavailable
}

// BoosterPredictForMat64 reports the native library as unavailable.
func BoosterPredictForMat64(h BoosterHandle, data []float64, nrow, ncol, predictType, startIteration, numIteration int, parameter string, out []float64) (int64, int) {
	return 0, statusUnavailable
}

// BoosterPredictForMat32 reports the native library as unavailable.
func BoosterPredictForMat32(h BoosterHandle, data []float32, nrow, ncol, predictType, startIteration, numIteration int, parameter string, out []float64) (int64, int) {
	return 0, statusUnavailable
}

// BoosterSaveModelToString reports the native library as unavailable.
func BoosterSaveModelToString(h BoosterHandle, startIteration, numIteration, featureImportanceType int) (string, int) {
	return "", statusUnavailable
}
