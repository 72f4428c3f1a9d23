// Package errors provides the error and warning types used across
// lightgbm-go. Errors carry the message reported by the native LightGBM
// library together with the wrapper operation that triggered them, and are
// stack-annotated via cockroachdb/errors.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("lightgbm-warning: %v\n", w)
	}
	// zerolog warn hook, injected lazily to avoid an import cycle with callers
	// that configure logging.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the handler invoked for every warning emitted by
// the library, e.g. a FeatureCountWarning on a column-count mismatch.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // drop warnings entirely
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc routes warnings through a zerolog-backed function
// instead of the plain handler.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning through the configured handler. Warnings never stop
// the operation that raised them.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// FeatureCountWarning is raised when the column count of a prediction
// request differs from the feature count the model was trained with. The
// native library remains authoritative on whether the shape is acceptable,
// so prediction proceeds after the warning.
type FeatureCountWarning struct {
	Op            string
	ModelFeatures int
	GotColumns    int
}

func (w *FeatureCountWarning) Error() string {
	return fmt.Sprintf("lightgbm: %s: input has %d columns but the model was trained with %d features",
		w.Op, w.GotColumns, w.ModelFeatures)
}

// MarshalZerologObject adds structured warning fields to a zerolog event.
func (w *FeatureCountWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Int("model_features", w.ModelFeatures).
		Int("got_columns", w.GotColumns).
		Str("type", "FeatureCountWarning")
}

// NewFeatureCountWarning creates a new FeatureCountWarning.
func NewFeatureCountWarning(op string, modelFeatures, gotColumns int) *FeatureCountWarning {
	return &FeatureCountWarning{Op: op, ModelFeatures: modelFeatures, GotColumns: gotColumns}
}

// OutputLengthWarning is raised when the native prediction call reports
// fewer output values than the metadata query promised. The result is
// truncated to the reported length; over-allocation is safe, the warning
// only flags the disagreement.
type OutputLengthWarning struct {
	Op        string
	Allocated int
	Written   int
}

func (w *OutputLengthWarning) Error() string {
	return fmt.Sprintf("lightgbm: %s: allocated %d output values but the native call wrote %d",
		w.Op, w.Allocated, w.Written)
}

// MarshalZerologObject adds structured warning fields to a zerolog event.
func (w *OutputLengthWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Int("allocated", w.Allocated).
		Int("written", w.Written).
		Str("type", "OutputLengthWarning")
}

// NewOutputLengthWarning creates a new OutputLengthWarning.
func NewOutputLengthWarning(op string, allocated, written int) *OutputLengthWarning {
	return &OutputLengthWarning{Op: op, Allocated: allocated, Written: written}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// LoadError indicates that native model construction failed: a bad path, a
// corrupt or incompatible serialization, or an invalid model string. Message
// is the text reported by LGBM_GetLastError, or a wrapper-side reason when
// the input was rejected before reaching the native library.
type LoadError struct {
	Op      string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("lightgbm: %s: %s", e.Op, e.Message)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *LoadError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("message", e.Message).
		Str("type", "LoadError")
}

// NewLoadError creates a new LoadError with a stack trace attached.
func NewLoadError(op, message string) error {
	err := &LoadError{Op: op, Message: message}
	return errors.WithStack(err)
}

// PredictionError indicates that the native prediction call failed, e.g.
// the model rejected the input shape or the selector is unsupported for this
// model type. Message is the text reported by LGBM_GetLastError.
type PredictionError struct {
	Op      string
	Message string
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("lightgbm: %s: %s", e.Op, e.Message)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *PredictionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("message", e.Message).
		Str("type", "PredictionError")
}

// NewPredictionError creates a new PredictionError with a stack trace attached.
func NewPredictionError(op, message string) error {
	err := &PredictionError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ShapeMismatchError indicates a caller-side contract violation: the flat
// input slice does not hold rows*cols values. It is produced before any
// native call executes.
type ShapeMismatchError struct {
	Op       string
	Rows     int
	Cols     int
	Expected int
	Got      int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("lightgbm: %s: data length mismatch: expected %d values (%d rows x %d cols), got %d",
		e.Op, e.Expected, e.Rows, e.Cols, e.Got)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *ShapeMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("rows", e.Rows).
		Int("cols", e.Cols).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "ShapeMismatchError")
}

// NewShapeMismatchError creates a new ShapeMismatchError with a stack trace attached.
func NewShapeMismatchError(op string, rows, cols, expected, got int) error {
	err := &ShapeMismatchError{Op: op, Rows: rows, Cols: cols, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// ValueError indicates an invalid argument value, e.g. a non-positive row
// or column count.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("lightgbm: %s: %s", e.Op, e.Message)
}

// MarshalZerologObject adds structured error fields to a zerolog event.
func (e *ValueError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("message", e.Message).
		Str("type", "ValueError")
}

// NewValueError creates a new ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrBoosterClosed is returned when an operation is attempted on a
	// Booster whose native handle has already been released.
	ErrBoosterClosed = New("booster already closed")

	// ErrEmptyData is returned when empty input data or an empty model
	// serialization is supplied.
	ErrEmptyData = New("empty data")
)
