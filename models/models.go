package models

// HistoryLength is the number of recent outcomes a prediction looks at
const HistoryLength = 10

// Size is the Big/Small category of an outcome
type Size string

const (
	SizeBig   Size = "Big"
	SizeSmall Size = "Small"
)

// Color is the colour attached to an outcome
type Color string

const (
	ColorRed   Color = "Red"
	ColorGreen Color = "Green"
)

// Colors lists the colours in draw order
var Colors = [...]Color{ColorRed, ColorGreen}

// Prediction is the result of a single predictor run
type Prediction struct {
	BigCount        int     `json:"big_count_last_10"`
	SmallCount      int     `json:"small_count_last_10"`
	ProbBig         float64 `json:"prob_big"`
	RandomDraw      float64 `json:"random_draw"`
	PredictedSize   Size    `json:"predicted_size"`
	PredictedNumber int     `json:"predicted_number"`
	PredictedColor  Color   `json:"predicted_color"`
}
