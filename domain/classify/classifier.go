// Package classify turns small feature vectors into class ids.
package classify

// Classifier maps a feature vector to a class id and its confidence.
// Implementations are deterministic for a given input.
type Classifier interface {
	Classify(features []float32) (id int, confidence float32)
}

// Constant always answers with the same id. It stands in for a model
// whose weight file is not available.
type Constant struct {
	ID int
}

func (c Constant) Classify([]float32) (int, float32) { return c.ID, 0 }

// Func adapts a plain function, mostly for tests.
type Func func(features []float32) (int, float32)

func (f Func) Classify(features []float32) (int, float32) { return f(features) }
