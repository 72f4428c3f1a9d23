// Package capi holds the raw bindings to the LightGBM C API.
//
// Every function mirrors one native entry point and returns the raw integer
// status code (0 = success) together with its out-values. No error
// translation happens here; the public package fetches the last-error
// message and builds typed errors. The real bindings require cgo and the
// native library, and are gated behind the capi build tag; without the tag
// a stub reports every call as unavailable.
package capi

// BoosterHandle is an opaque reference to a booster owned by the native
// library. The zero value means no handle.
type BoosterHandle uintptr

// Native prediction modes, mirroring the C_API_PREDICT_* constants.
const (
	PredictNormal    = 0
	PredictRawScore  = 1
	PredictLeafIndex = 2
	PredictContrib   = 3
)

// Feature importance kinds for model serialization, mirroring
// C_API_FEATURE_IMPORTANCE_*.
const (
	FeatureImportanceSplit = 0
	FeatureImportanceGain  = 1
)
