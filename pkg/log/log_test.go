package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/resample/pkg/errors"
)

func TestErrFmtHandlerExtractsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Error("fit failed", ErrAttr(errors.New("singular matrix")))

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "fit failed", record["msg"])
	assert.Contains(t, record[ErrAttrKey], "singular matrix")
	assert.NotEmpty(t, record[StacktraceAttrKey])
}

func TestErrorPromotesLeadingError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// A bare error as the first field lands under the error attribute.
	logger.Error("split failed", errors.New("boom"), SplitKey, "Fold01")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Contains(t, record[ErrAttrKey], "boom")
	assert.Equal(t, "Fold01", record[SplitKey])
}

func TestTestLogger(t *testing.T) {
	logger, buffer := NewTestLogger(LevelInfo)

	logger.Debug("hidden")
	logger.Info("run started", StrategyKey, "kfold", SplitsKey, 10)
	logger.With(ComponentKey, "eval").Warn("slow split")

	lines := logger.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, buffer.String(), "run started")

	var first map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "INFO", first["level"])
	assert.Equal(t, "kfold", first[StrategyKey])
	assert.Equal(t, float64(10), first[SplitsKey])

	var second map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "eval", second[ComponentKey])

	assert.True(t, logger.Enabled(context.Background(), LevelError))
	assert.False(t, logger.Enabled(context.Background(), LevelDebug))
}

func TestSetLogger(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	replacement, _ := NewTestLogger(LevelDebug)
	SetLogger(replacement)
	assert.Same(t, replacement, GetLogger())
}
