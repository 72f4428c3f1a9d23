//go:build capi

package capi

/*
#cgo LDFLAGS: -llightgbm -lstdc++
#cgo CFLAGS: -I/usr/local/include

#include <stdlib.h>
#include <LightGBM/c_api.h>
*/
import "C"
import "unsafe"

func cHandle(h BoosterHandle) C.BoosterHandle {
	return C.BoosterHandle(unsafe.Pointer(h))
}

// GetLastError returns the message recorded by the native library for the
// most recent failing call on this thread.
func GetLastError() string {
	return C.GoString(C.LGBM_GetLastError())
}

// BoosterCreateFromModelfile loads a model from a file path. The path is
// handed to the native library as-is; no pre-reading happens on the Go side.
func BoosterCreateFromModelfile(filename string) (BoosterHandle, int, int) {
	cFilename := C.CString(filename)
	defer C.free(unsafe.Pointer(cFilename))

	var handle C.BoosterHandle
	var numIterations C.int
	ret := C.LGBM_BoosterCreateFromModelfile(cFilename, &numIterations, &handle)
	return BoosterHandle(uintptr(unsafe.Pointer(handle))), int(numIterations), int(ret)
}

// BoosterLoadModelFromString loads a model from its textual serialization.
func BoosterLoadModelFromString(model string) (BoosterHandle, int, int) {
	cModel := C.CString(model)
	defer C.free(unsafe.Pointer(cModel))

	var handle C.BoosterHandle
	var numIterations C.int
	ret := C.LGBM_BoosterLoadModelFromString(cModel, &numIterations, &handle)
	return BoosterHandle(uintptr(unsafe.Pointer(handle))), int(numIterations), int(ret)
}

// BoosterFree releases the native booster.
func BoosterFree(h BoosterHandle) int {
	return int(C.LGBM_BoosterFree(cHandle(h)))
}

// BoosterGetNumFeature returns the feature count of the model.
func BoosterGetNumFeature(h BoosterHandle) (int, int) {
	var numFeature C.int
	ret := C.LGBM_BoosterGetNumFeature(cHandle(h), &numFeature)
	return int(numFeature), int(ret)
}

// BoosterGetNumClasses returns the class count of the model.
func BoosterGetNumClasses(h BoosterHandle) (int, int) {
	var numClasses C.int
	ret := C.LGBM_BoosterGetNumClasses(cHandle(h), &numClasses)
	return int(numClasses), int(ret)
}

// BoosterCalcNumPredict returns the exact output length the native predict
// call will produce for the given row count, prediction mode and iteration
// range. Tree count and per-iteration shape vary per trained model, so the
// length must come from this query, never from a hardcoded formula.
func BoosterCalcNumPredict(h BoosterHandle, numRow, predictType, startIteration, numIteration int) (int64, int) {
	var outLen C.int64_t
	ret := C.LGBM_BoosterCalcNumPredict(
		cHandle(h),
		C.int(numRow),
		C.int(predictType),
		C.int(startIteration),
		C.int(numIteration),
		&outLen,
	)
	return int64(outLen), int(ret)
}

// BoosterPredictForMat64 runs prediction over a row-major float64 matrix.
// out must already hold the length reported by BoosterCalcNumPredict; the
// native call asserts agreement and writes into it. Returns the number of
// values actually written.
func BoosterPredictForMat64(h BoosterHandle, data []float64, nrow, ncol, predictType, startIteration, numIteration int, parameter string, out []float64) (int64, int) {
	cParameter := C.CString(parameter)
	defer C.free(unsafe.Pointer(cParameter))

	var outPtr *C.double
	if len(out) > 0 {
		outPtr = (*C.double)(unsafe.Pointer(&out[0]))
	}

	var outLen C.int64_t
	ret := C.LGBM_BoosterPredictForMat(
		cHandle(h),
		unsafe.Pointer(&data[0]),
		C.C_API_DTYPE_FLOAT64,
		C.int32_t(nrow),
		C.int32_t(ncol),
		C.int(1), // is_row_major
		C.int(predictType),
		C.int(startIteration),
		C.int(numIteration),
		cParameter,
		&outLen,
		outPtr,
	)
	return int64(outLen), int(ret)
}

// BoosterPredictForMat32 is the float32 twin of BoosterPredictForMat64,
// dispatching to the FLOAT32 dtype entry of the same native call. Output is
// always float64.
func BoosterPredictForMat32(h BoosterHandle, data []float32, nrow, ncol, predictType, startIteration, numIteration int, parameter string, out []float64) (int64, int) {
	cParameter := C.CString(parameter)
	defer C.free(unsafe.Pointer(cParameter))

	var outPtr *C.double
	if len(out) > 0 {
		outPtr = (*C.double)(unsafe.Pointer(&out[0]))
	}

	var outLen C.int64_t
	ret := C.LGBM_BoosterPredictForMat(
		cHandle(h),
		unsafe.Pointer(&data[0]),
		C.C_API_DTYPE_FLOAT32,
		C.int32_t(nrow),
		C.int32_t(ncol),
		C.int(1), // is_row_major
		C.int(predictType),
		C.int(startIteration),
		C.int(numIteration),
		cParameter,
		&outLen,
		outPtr,
	)
	return int64(outLen), int(ret)
}

// BoosterSaveModelToString serializes the model back to its text form using
// the query-then-fill protocol: a first call with a 1-byte buffer yields the
// required length, the second call fills an exactly-sized buffer.
func BoosterSaveModelToString(h BoosterHandle, startIteration, numIteration, featureImportanceType int) (string, int) {
	var outLen C.int64_t
	probe := make([]byte, 1)
	ret := C.LGBM_BoosterSaveModelToString(
		cHandle(h),
		C.int(startIteration),
		C.int(numIteration),
		C.int(featureImportanceType),
		C.int64_t(len(probe)),
		&outLen,
		(*C.char)(unsafe.Pointer(&probe[0])),
	)
	if ret != 0 {
		return "", int(ret)
	}

	buf := make([]byte, int64(outLen))
	ret = C.LGBM_BoosterSaveModelToString(
		cHandle(h),
		C.int(startIteration),
		C.int(numIteration),
		C.int(featureImportanceType),
		C.int64_t(len(buf)),
		&outLen,
		(*C.char)(unsafe.Pointer(&buf[0])),
	)
	if ret != 0 {
		return "", int(ret)
	}

	n := int64(outLen)
	if n > int64(len(buf)) {
		n = int64(len(buf))
	}
	// out_len counts the terminating NUL
	if n > 0 && buf[n-1] == 0 {
		n--
	}
	return string(buf[:n]), 0
}
