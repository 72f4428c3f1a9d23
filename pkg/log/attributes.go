// Package log defines standard attribute keys for model loading and
// prediction events. Using these keys keeps log output consistent and
// filterable across the library.

package log

// Model context
const (
	// ModelPathKey is the filesystem path a model was loaded from.
	ModelPathKey = "model.path"

	// ModelSourceKey identifies the load source: "file", "string", "buffer".
	ModelSourceKey = "model.source"

	// FeaturesKey is the feature count reported by the model.
	FeaturesKey = "model.features"

	// ClassesKey is the class count reported by the model (1 for
	// regression and binary classification).
	ClassesKey = "model.classes"

	// IterationsKey is the boosting iteration count reported at load time.
	IterationsKey = "model.iterations"
)

// Prediction context
const (
	// OperationKey is the wrapper operation being performed, e.g.
	// "Predict", "SaveToString".
	OperationKey = "lgbm.operation"

	// ComponentKey identifies the component emitting the record.
	ComponentKey = "component"

	// RowsKey is the number of input rows in a prediction request.
	RowsKey = "data.rows"

	// ColsKey is the number of input columns in a prediction request.
	ColsKey = "data.cols"

	// DataTypeKey is the input precision: "float32" or "float64".
	DataTypeKey = "data.type"

	// PredictTypeKey is the prediction selector: "Normal", "RawScore",
	// "LeafIndex" or "Contrib".
	PredictTypeKey = "predict.type"

	// OutputLenKey is the output length resolved from the native
	// metadata query.
	OutputLenKey = "predict.output_len"
)
