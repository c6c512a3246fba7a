package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Alias1177/bigsmall/models"
)

const header = "Analysis & Prediction:"

// Formats accepted by Write
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Write prints p in the given format
func Write(w io.Writer, format string, p *models.Prediction) error {
	switch format {
	case FormatText:
		return WriteText(w, p)
	case FormatJSON:
		return WriteJSON(w, p)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteText prints a header followed by one "key: value" line per field
func WriteText(w io.Writer, p *models.Prediction) error {
	lines := []struct {
		key   string
		value string
	}{
		{"big_count_last_10", strconv.Itoa(p.BigCount)},
		{"small_count_last_10", strconv.Itoa(p.SmallCount)},
		{"prob_big", formatFloat(p.ProbBig)},
		{"random_draw", formatFloat(p.RandomDraw)},
		{"predicted_size", string(p.PredictedSize)},
		{"predicted_number", strconv.Itoa(p.PredictedNumber)},
		{"predicted_color", string(p.PredictedColor)},
	}

	if _, err := fmt.Fprintln(w, header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %s\n", l.key, l.value); err != nil {
			return fmt.Errorf("writing %s: %w", l.key, err)
		}
	}
	return nil
}

// WriteJSON prints p as indented JSON
func WriteJSON(w io.Writer, p *models.Prediction) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding prediction: %w", err)
	}
	return nil
}

// formatFloat uses the shortest representation, so 0.7 stays "0.7"
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
