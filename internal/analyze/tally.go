package analyze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Alias1177/bigsmall/models"
)

// ErrInvalidInput is returned when a history can't be tallied
var ErrInvalidInput = errors.New("invalid input")

// ParseLabel maps "B"/"S" (any case) to a size
func ParseLabel(label string) (models.Size, error) {
	switch strings.ToUpper(label) {
	case "B":
		return models.SizeBig, nil
	case "S":
		return models.SizeSmall, nil
	default:
		return "", fmt.Errorf("%w: results must only contain 'B' or 'S', got %q", ErrInvalidInput, label)
	}
}

// Tally counts Big and Small labels in the last HistoryLength outcomes
func Tally(history []string) (int, int, error) {
	if len(history) != models.HistoryLength {
		return 0, 0, fmt.Errorf("%w: must provide exactly %d results, got %d",
			ErrInvalidInput, models.HistoryLength, len(history))
	}

	bigCount, smallCount := 0, 0
	for _, label := range history {
		size, err := ParseLabel(label)
		if err != nil {
			return 0, 0, err
		}
		if size == models.SizeBig {
			bigCount++
		} else {
			smallCount++
		}
	}

	return bigCount, smallCount, nil
}
