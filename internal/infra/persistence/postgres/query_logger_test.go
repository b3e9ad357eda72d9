package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"sweets/config"
	deliverycontext "sweets/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var traceStart = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newCapturingLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newQueryLoggerForTest(t *testing.T, buf *bytes.Buffer, cfg *config.Config, elapsed time.Duration) *queryLogger {
	t.Helper()
	l, ok := newQueryLogger(newCapturingLogger(buf), cfg).(*queryLogger)
	require.True(t, ok)
	l.now = func() time.Time { return traceStart.Add(elapsed) }

	return l
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}

	return lines
}

func statement(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestNewQueryLogger_Settings(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.Config
		level     logger.LogLevel
		threshold time.Duration
	}{
		{name: "no config", cfg: nil, level: logger.Warn, threshold: 200 * time.Millisecond},
		{name: "no database section", cfg: &config.Config{}, level: logger.Warn, threshold: 200 * time.Millisecond},
		{
			name:      "configured threshold",
			cfg:       &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: time.Second}},
			level:     logger.Warn,
			threshold: time.Second,
		},
		{
			name: "debug",
			cfg: func() *config.Config {
				cfg := &config.Config{}
				cfg.Env.Debug = true

				return cfg
			}(),
			level:     logger.Info,
			threshold: 200 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := newQueryLogger(slog.Default(), tt.cfg).(*queryLogger)
			require.True(t, ok)
			assert.Equal(t, tt.level, l.level)
			assert.Equal(t, tt.threshold, l.slowThreshold)
		})
	}
}

func TestQueryLogger_Trace(t *testing.T) {
	t.Run("fast query is quiet outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := newQueryLoggerForTest(t, &buf, nil, 5*time.Millisecond)

		l.Trace(context.Background(), traceStart, statement(`SELECT * FROM "products"`, 3), nil)

		assert.Empty(t, buf.String())
	})

	t.Run("slow query", func(t *testing.T) {
		var buf bytes.Buffer
		l := newQueryLoggerForTest(t, &buf, nil, 350*time.Millisecond)

		l.Trace(context.Background(), traceStart, statement(`SELECT * FROM "orders"`, 12), nil)

		lines := logLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "WARN", lines[0]["level"])
		assert.Equal(t, "Slow query", lines[0]["msg"])
		assert.EqualValues(t, 12, lines[0]["rows"])
		assert.NotContains(t, lines[0], "rowLock")
	})

	t.Run("failed query", func(t *testing.T) {
		var buf bytes.Buffer
		l := newQueryLoggerForTest(t, &buf, nil, time.Millisecond)

		l.Trace(context.Background(), traceStart, statement(`INSERT INTO "orders"`, 0), errors.New("connection reset"))

		lines := logLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "ERROR", lines[0]["level"])
		assert.Equal(t, "connection reset", lines[0]["error"])
	})

	t.Run("missing row is not an error", func(t *testing.T) {
		var buf bytes.Buffer
		l := newQueryLoggerForTest(t, &buf, nil, time.Millisecond)

		l.Trace(context.Background(), traceStart, statement(`SELECT * FROM "secure_links"`, 0),
			errors.Wrap(gorm.ErrRecordNotFound, "find link"))

		assert.Empty(t, buf.String())
	})

	t.Run("debug logs every statement and marks row locks", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = true
		l := newQueryLoggerForTest(t, &buf, cfg, time.Millisecond)

		l.Trace(context.Background(), traceStart, statement(`SELECT * FROM "carts" WHERE id = $1 FOR UPDATE`, 1), nil)

		lines := logLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "INFO", lines[0]["level"])
		assert.Equal(t, true, lines[0]["rowLock"])
	})

	t.Run("silent mode", func(t *testing.T) {
		var buf bytes.Buffer
		l := newQueryLoggerForTest(t, &buf, nil, time.Second)

		l.LogMode(logger.Silent).Trace(context.Background(), traceStart, statement(`SELECT 1`, 1), errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newQueryLoggerForTest(t, &base, nil, time.Second)
	ctx := deliverycontext.WithLogger(context.Background(), newCapturingLogger(&scoped).With(slog.String("request_id", "req-42")))

	l.Trace(ctx, traceStart, statement(`UPDATE "orders" SET status = $1`, 1), nil)

	assert.Empty(t, base.String())
	lines := logLines(t, &scoped)
	require.Len(t, lines, 1)
	assert.Equal(t, "req-42", lines[0]["request_id"])
}

func TestQueryLogger_Messages(t *testing.T) {
	var buf bytes.Buffer
	l := newQueryLoggerForTest(t, &buf, nil, 0)

	l.Info(context.Background(), "migrated %d tables", 14)
	l.Warn(context.Background(), "pool at %d%%", 90)

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.Equal(t, "pool at 90%", lines[0]["message"])
}
