package models

import "strings"

// ParseHistory splits a comma separated list of labels ("S,S,B,...").
// Labels are kept as given apart from surrounding spaces; validation is left to the tally.
func ParseHistory(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	history := make([]string, 0, len(parts))
	for _, p := range parts {
		history = append(history, strings.TrimSpace(p))
	}
	return history
}
