package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/config"
	"github.com/tuanvumaihuynh/product-catalog/internal/log"
	"github.com/tuanvumaihuynh/product-catalog/pkg/correlationid"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, config.Log{Format: config.LogFormatJSON, Level: slog.LevelInfo})

	ctx := correlationid.NewContext(context.Background(), "abc-123")
	logger.DebugContext(ctx, "hidden")
	logger.InfoContext(ctx, "product created", slog.Int64("product_id", 7))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "product created", rec["msg"])
	assert.Equal(t, "abc-123", rec["correlation_id"])
	assert.EqualValues(t, 7, rec["product_id"])
	assert.NotContains(t, rec, "trace_id")
}

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, config.Log{Format: config.LogFormatText, Level: slog.LevelDebug, NoColor: true})

	logger.With(slog.String("service", "http")).Debug("listening")

	assert.Contains(t, buf.String(), "listening")
	assert.Contains(t, buf.String(), "service=http")
	assert.NotContains(t, buf.String(), "\x1b[")
}
