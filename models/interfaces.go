package models

// OutcomePredictor produces a prediction from the last HistoryLength labels.
// A nil seed means an unseeded, non-reproducible run.
type OutcomePredictor interface {
	Predict(history []string, seed *int64) (*Prediction, error)
}
