// Package lightgbm is a safe Go layer over the native LightGBM inference
// library. It loads pre-trained tree-ensemble models and produces
// predictions (scores, raw margins, leaf indices, or SHAP feature
// contributions) while guarding the cgo boundary: output buffers are sized
// by the native metadata query, every native status code is translated into
// a typed error, and the native handle is released exactly once on every
// path.
//
// # Quick start
//
//	booster, err := lightgbm.LoadFromFile("model.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer booster.Close()
//
//	preds, err := booster.Predict(
//	    []float64{1.0, 2.0, 3.0, 4.0}, // one row, four features
//	    1, 4,
//	    lightgbm.PredictNormal,
//	)
//
// Models can equally be loaded from an in-memory string (LoadFromString) or
// raw file contents (LoadFromBuffer), and float32 feature data goes through
// PredictFloat32 without being widened. gonum users can predict straight
// from a mat.Matrix via PredictMatrix.
//
// # Building
//
// The native bindings are gated behind the capi build tag:
//
//	go build -tags capi
//
// requires liblightgbm and its C headers to be installed. Without the tag
// the package compiles everywhere and every operation returns a typed error
// explaining that the native library is not linked.
//
// # Concurrency
//
// A Booster is not safe for concurrent use; see the Booster documentation
// for the one-per-goroutine and shared-with-mutex patterns.
package lightgbm
