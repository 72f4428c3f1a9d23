package lightgbm

import (
	"strings"
	"unicode/utf8"

	"github.com/aryehlev/lightgbm-go/internal/capi"
	lgbErrors "github.com/aryehlev/lightgbm-go/pkg/errors"
	"github.com/aryehlev/lightgbm-go/pkg/log"
)

// Booster owns exactly one native LightGBM model handle and exposes
// prediction over it. Construct it with LoadFromFile, LoadFromString or
// LoadFromBuffer and release it with Close.
//
// # Thread safety
//
// A Booster is NOT safe for concurrent use. The LightGBM C API gives no
// thread-safety guarantee for concurrent predictions on one handle, and the
// Booster carries no internal lock. For multi-goroutine use either:
//
//  1. Load one Booster per goroutine. Handles are cheap to reconstruct
//     from a shared model string with LoadFromBuffer.
//  2. Guard a shared Booster with a sync.Mutex held for the full duration
//     of every call.
type Booster struct {
	api    nativeAPI
	handle capi.BoosterHandle
	closed bool

	numFeatures   int
	numClasses    int
	numIterations int
}

// LoadFromFile loads a model from a filesystem path. The path is passed
// through to the native library, which does the reading and parsing itself.
func LoadFromFile(path string) (*Booster, error) {
	return loadFromFile(defaultNative, path)
}

func loadFromFile(api nativeAPI, path string) (b *Booster, err error) {
	defer lgbErrors.Recover(&err, "lightgbm.LoadFromFile")

	if path == "" {
		return nil, lgbErrors.NewLoadError("LoadFromFile", "empty model path")
	}
	if strings.ContainsRune(path, 0) {
		// C string marshalling would silently truncate at the NUL.
		return nil, lgbErrors.NewLoadError("LoadFromFile", "path contains NUL byte")
	}

	handle, numIterations, status := api.CreateFromFile(path)
	if err := checkStatus(api, "LoadFromFile", status, loadKind); err != nil {
		return nil, err
	}
	return newBooster(api, handle, numIterations, "file", path)
}

// LoadFromString loads a model from its textual serialization, the format
// produced by save_model / model_to_string on the training side.
func LoadFromString(model string) (*Booster, error) {
	return loadFromString(defaultNative, model)
}

func loadFromString(api nativeAPI, model string) (b *Booster, err error) {
	defer lgbErrors.Recover(&err, "lightgbm.LoadFromString")
	return loadModelString(api, "LoadFromString", "string", model)
}

// LoadFromBuffer loads a model from raw bytes holding the same textual
// serialization, for callers that read the model file themselves.
func LoadFromBuffer(buf []byte) (*Booster, error) {
	return loadFromBuffer(defaultNative, buf)
}

func loadFromBuffer(api nativeAPI, buf []byte) (b *Booster, err error) {
	defer lgbErrors.Recover(&err, "lightgbm.LoadFromBuffer")

	if len(buf) == 0 {
		return nil, lgbErrors.WithStack(lgbErrors.ErrEmptyData)
	}
	// LightGBM models are text; reject binary garbage before it reaches the
	// native parser as a mangled string.
	if !utf8.Valid(buf) {
		return nil, lgbErrors.NewLoadError("LoadFromBuffer", "model buffer is not valid UTF-8")
	}
	return loadModelString(api, "LoadFromBuffer", "buffer", string(buf))
}

// loadModelString is the shared core of LoadFromString and LoadFromBuffer.
// Errors carry the op of the entry point the caller actually used.
func loadModelString(api nativeAPI, op, source, model string) (*Booster, error) {
	if model == "" {
		return nil, lgbErrors.WithStack(lgbErrors.ErrEmptyData)
	}
	if strings.ContainsRune(model, 0) {
		return nil, lgbErrors.NewLoadError(op, "model string contains NUL byte")
	}

	handle, numIterations, status := api.CreateFromString(model)
	if err := checkStatus(api, op, status, loadKind); err != nil {
		return nil, err
	}
	return newBooster(api, handle, numIterations, source, "")
}

// newBooster caches the model metadata eagerly. If any query fails the
// already-acquired native handle is freed before the error returns, so a
// partially constructed Booster never leaks the native resource.
func newBooster(api nativeAPI, handle capi.BoosterHandle, numIterations int, source, path string) (*Booster, error) {
	numFeatures, status := api.NumFeature(handle)
	if err := checkStatus(api, "NumFeatures", status, loadKind); err != nil {
		api.Free(handle)
		return nil, err
	}

	numClasses, status := api.NumClasses(handle)
	if err := checkStatus(api, "NumClasses", status, loadKind); err != nil {
		api.Free(handle)
		return nil, err
	}

	b := &Booster{
		api:           api,
		handle:        handle,
		numFeatures:   numFeatures,
		numClasses:    numClasses,
		numIterations: numIterations,
	}

	logger := log.GetLoggerWithName("lightgbm.booster")
	logger.Debug("model loaded",
		log.ModelSourceKey, source,
		log.ModelPathKey, path,
		log.FeaturesKey, numFeatures,
		log.ClassesKey, numClasses,
		log.IterationsKey, numIterations,
	)
	return b, nil
}

// NumFeatures returns the feature count the model was trained with.
func (b *Booster) NumFeatures() (int, error) {
	if b.closed {
		return 0, lgbErrors.WithStack(lgbErrors.ErrBoosterClosed)
	}
	return b.numFeatures, nil
}

// NumClasses returns the class count of the model: 1 for regression and
// binary classification, >1 for multiclass.
func (b *Booster) NumClasses() (int, error) {
	if b.closed {
		return 0, lgbErrors.WithStack(lgbErrors.ErrBoosterClosed)
	}
	return b.numClasses, nil
}

// NumIterations returns the boosting iteration count reported by the native
// library at load time.
func (b *Booster) NumIterations() (int, error) {
	if b.closed {
		return 0, lgbErrors.WithStack(lgbErrors.ErrBoosterClosed)
	}
	return b.numIterations, nil
}

// SaveToString serializes the model back into the textual format accepted
// by LoadFromString, allowing a loaded model to be shipped to other workers
// without touching the filesystem.
func (b *Booster) SaveToString() (string, error) {
	if b.closed {
		return "", lgbErrors.WithStack(lgbErrors.ErrBoosterClosed)
	}
	// num_iteration <= 0 keeps all iterations.
	model, status := b.api.SaveModelToString(b.handle, 0, -1, capi.FeatureImportanceSplit)
	if err := checkStatus(b.api, "SaveToString", status, loadKind); err != nil {
		return "", err
	}
	return model, nil
}

// Close releases the native handle. The first call frees the resource;
// subsequent calls are no-ops returning nil. Any other operation on a
// closed Booster fails with ErrBoosterClosed; the freed handle is never
// handed back to native code.
func (b *Booster) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	status := b.api.Free(b.handle)
	b.handle = 0
	return checkStatus(b.api, "Close", status, releaseKind)
}
