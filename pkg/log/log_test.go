package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/cvgen/pkg/log"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err  error
		want slog.Level
	}{
		"error":   {want: slog.LevelError},
		"WARN":    {want: slog.LevelWarn},
		"warning": {want: slog.LevelWarn},
		"info":    {want: slog.LevelInfo},
		"Debug":   {want: slog.LevelDebug},
		"trace":   {err: log.ErrUnknownLogLevel},
	}

	for input, tc := range tcs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			got, err := log.GetLevel(input)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCreateHandlerWithStrings(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level  string
		format string
		err    error
	}{
		"json":           {level: "info", format: "json"},
		"logfmt":         {level: "debug", format: "logfmt"},
		"text":           {level: "warn", format: "TEXT"},
		"unknown level":  {level: "loud", format: "json", err: log.ErrInvalidArgument},
		"unknown format": {level: "info", format: "xml", err: log.ErrInvalidArgument},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h, err := log.CreateHandlerWithStrings(&bytes.Buffer{}, tc.level, tc.format)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, h)
		})
	}
}

func TestCreateHandler_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(log.CreateHandler(&buf, slog.LevelInfo, log.FormatJSON))
	logger.Debug("hidden")
	logger.Info("generated document", slog.String("output", "cv.docx"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "generated document", entry["msg"])
	assert.Equal(t, "cv.docx", entry["output"])
	assert.NotContains(t, entry, slog.SourceKey)
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Default(), log.FromContext(context.Background()))

	logger := slog.New(slog.DiscardHandler)
	ctx := log.NewContext(t.Context(), logger)
	assert.Same(t, logger, log.FromContext(ctx))
}
