package lightgbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lgbErrors "github.com/aryehlev/lightgbm-go/pkg/errors"
)

func TestLoadFromFileCachesMetadata(t *testing.T) {
	f := newFakeNative()
	f.numFeatures = 7
	f.numClasses = 3
	f.numIterations = 42

	b, err := loadFromFile(f, "model.txt")
	require.NoError(t, err)
	defer b.Close()

	nf, err := b.NumFeatures()
	require.NoError(t, err)
	assert.Equal(t, 7, nf)

	nc, err := b.NumClasses()
	require.NoError(t, err)
	assert.Equal(t, 3, nc)

	ni, err := b.NumIterations()
	require.NoError(t, err)
	assert.Equal(t, 42, ni)

	// Metadata was fetched once at construction; introspection calls hit
	// the cache, not the native library.
	assert.Equal(t, 1, f.calls.numFeature)
	assert.Equal(t, 1, f.calls.numClasses)
}

func TestLoadFromFileNativeFailure(t *testing.T) {
	f := newFakeNative()
	f.failCreate = true
	f.lastErr = "Could not open model.txt"

	b, err := loadFromFile(f, "model.txt")
	require.Error(t, err)
	assert.Nil(t, b)

	var loadErr *lgbErrors.LoadError
	require.True(t, lgbErrors.As(err, &loadErr))
	assert.Contains(t, loadErr.Message, "Could not open model.txt")
	// Nothing to free: the create call never produced a handle.
	assert.Equal(t, 0, f.calls.free)
}

func TestLoadFromFileEmptyPath(t *testing.T) {
	f := newFakeNative()
	_, err := loadFromFile(f, "")
	require.Error(t, err)
	assert.Equal(t, 0, f.calls.total(), "no native call for an empty path")
}

func TestLoadFromFileNULByte(t *testing.T) {
	f := newFakeNative()
	_, err := loadFromFile(f, "model\x00.txt")
	require.Error(t, err)

	var loadErr *lgbErrors.LoadError
	require.True(t, lgbErrors.As(err, &loadErr))
	assert.Contains(t, loadErr.Message, "NUL")
	assert.Equal(t, 0, f.calls.total())
}

func TestLoadFromStringEmpty(t *testing.T) {
	f := newFakeNative()
	_, err := loadFromString(f, "")
	require.Error(t, err)
	assert.True(t, lgbErrors.Is(err, lgbErrors.ErrEmptyData))
	assert.Equal(t, 0, f.calls.total())
}

func TestLoadFromBufferInvalidUTF8(t *testing.T) {
	f := newFakeNative()
	_, err := loadFromBuffer(f, []byte{0xff, 0xfe, 0xfd})
	require.Error(t, err)

	var loadErr *lgbErrors.LoadError
	require.True(t, lgbErrors.As(err, &loadErr))
	assert.Contains(t, loadErr.Message, "UTF-8")
	assert.Equal(t, 0, f.calls.total())
}

func TestLoadFromBufferNULByte(t *testing.T) {
	f := newFakeNative()
	// Valid UTF-8, so it passes the encoding check and must be caught by the
	// NUL check with the buffer entry point named in the error.
	_, err := loadFromBuffer(f, []byte("tree\x00version=v3"))
	require.Error(t, err)

	var loadErr *lgbErrors.LoadError
	require.True(t, lgbErrors.As(err, &loadErr))
	assert.Equal(t, "LoadFromBuffer", loadErr.Op)
	assert.Contains(t, loadErr.Message, "NUL")
	assert.Equal(t, 0, f.calls.total())
}

func TestLoadFromBufferDelegatesToString(t *testing.T) {
	f := newFakeNative()
	b, err := loadFromBuffer(f, []byte(f.model))
	require.NoError(t, err)
	defer b.Close()
	assert.Equal(t, 1, f.calls.createString)
}

func TestPartialConstructionFreesHandle(t *testing.T) {
	f := newFakeNative()
	f.failNumClasses = true

	b, err := loadFromFile(f, "model.txt")
	require.Error(t, err)
	assert.Nil(t, b)

	// The create call acquired a native handle; the failing metadata query
	// must not leak it.
	assert.Equal(t, 1, f.calls.create)
	assert.Equal(t, 1, f.calls.free)
}

func TestPartialConstructionFreesHandleOnFeatureQuery(t *testing.T) {
	f := newFakeNative()
	f.failNumFeature = true

	_, err := loadFromFile(f, "model.txt")
	require.Error(t, err)
	assert.Equal(t, 1, f.calls.free)
	assert.Equal(t, 0, f.calls.numClasses, "construction stops at the first failing query")
}

func TestCloseFreesExactlyOnce(t *testing.T) {
	f := newFakeNative()
	b := loadFakeBooster(t, f)

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	assert.Equal(t, 1, f.calls.free)
}

func TestOperationsAfterClose(t *testing.T) {
	f := newFakeNative()
	b := loadFakeBooster(t, f)
	require.NoError(t, b.Close())
	f.resetCalls()

	_, err := b.NumFeatures()
	assert.True(t, lgbErrors.Is(err, lgbErrors.ErrBoosterClosed))

	_, err = b.NumClasses()
	assert.True(t, lgbErrors.Is(err, lgbErrors.ErrBoosterClosed))

	_, err = b.Predict([]float64{1, 2, 3, 4}, 1, 4, PredictNormal)
	assert.True(t, lgbErrors.Is(err, lgbErrors.ErrBoosterClosed))

	_, err = b.SaveToString()
	assert.True(t, lgbErrors.Is(err, lgbErrors.ErrBoosterClosed))

	// The freed handle never reaches native code again.
	assert.Equal(t, 0, f.calls.total())
}

func TestSaveToStringRoundTrip(t *testing.T) {
	f := newFakeNative()
	b := loadFakeBooster(t, f)

	model, err := b.SaveToString()
	require.NoError(t, err)
	assert.Equal(t, f.model, model)

	reloaded, err := loadFromString(f, model)
	require.NoError(t, err)
	defer reloaded.Close()

	input := []float64{1.0, 2.0, 3.0, 4.0}
	orig, err := b.Predict(input, 1, 4, PredictNormal)
	require.NoError(t, err)
	again, err := reloaded.Predict(input, 1, 4, PredictNormal)
	require.NoError(t, err)
	assert.Equal(t, orig, again, "reloaded model predicts identically")

	// Same round trip through the raw-bytes entry point.
	fromBytes, err := loadFromBuffer(f, []byte(model))
	require.NoError(t, err)
	defer fromBytes.Close()
	viaBuffer, err := fromBytes.Predict(input, 1, 4, PredictNormal)
	require.NoError(t, err)
	assert.Equal(t, orig, viaBuffer, "buffer-reloaded model predicts identically")
}

func TestSaveToStringNativeFailure(t *testing.T) {
	f := newFakeNative()
	f.failSave = true
	b := loadFakeBooster(t, f)

	_, err := b.SaveToString()
	require.Error(t, err)

	var loadErr *lgbErrors.LoadError
	assert.True(t, lgbErrors.As(err, &loadErr))
}
