package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Alias1177/bigsmall/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = &models.Prediction{
	BigCount:        3,
	SmallCount:      7,
	ProbBig:         0.7,
	RandomDraw:      0.053,
	PredictedSize:   models.SizeBig,
	PredictedNumber: 8,
	PredictedColor:  models.ColorGreen,
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sample))

	expected := "Analysis & Prediction:\n" +
		"big_count_last_10: 3\n" +
		"small_count_last_10: 7\n" +
		"prob_big: 0.7\n" +
		"random_draw: 0.053\n" +
		"predicted_size: Big\n" +
		"predicted_number: 8\n" +
		"predicted_color: Green\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sample))

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))

	assert.Len(t, payload, 7)
	assert.Equal(t, 3.0, payload["big_count_last_10"])
	assert.Equal(t, 7.0, payload["small_count_last_10"])
	assert.Equal(t, 0.7, payload["prob_big"])
	assert.Equal(t, 0.053, payload["random_draw"])
	assert.Equal(t, "Big", payload["predicted_size"])
	assert.Equal(t, 8.0, payload["predicted_number"])
	assert.Equal(t, "Green", payload["predicted_color"])
}

func TestWrite(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatText, sample))
		assert.Contains(t, buf.String(), "predicted_color: Green")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatJSON, sample))
		assert.Contains(t, buf.String(), `"predicted_color": "Green"`)
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, Write(&buf, "xml", sample))
		assert.Empty(t, buf.String())
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteText_PropagatesWriterError(t *testing.T) {
	err := WriteText(failingWriter{}, sample)
	assert.ErrorContains(t, err, "writing header")
}
