package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sweets/config"
	deliverycontext "sweets/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// queryLogger routes gorm output through slog. Statements run during a request
// are written with that request's logger, so they carry its request_id.
type queryLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
	now           func() time.Time
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &queryLogger{
		base:          base,
		level:         logger.Warn,
		slowThreshold: defaultSlowQueryThreshold,
		now:           time.Now,
	}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Database != nil && cfg.Database.SlowQueryThreshold > 0 {
		l.slowThreshold = cfg.Database.SlowQueryThreshold
	}

	return l
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args []any) {
	out := l.output(ctx)
	if out == nil || l.level < min {
		return
	}
	out.LogAttrs(ctx, level, "Database message", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements at ERROR, slow ones at WARN and, in debug mode,
// every statement at INFO. A missing row is an expected outcome and is not logged.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	out := l.output(ctx)
	if out == nil || l.level == logger.Silent {
		return
	}
	elapsed := l.now().Sub(begin)

	var (
		level slog.Level
		msg   string
		extra []slog.Attr
	)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		level, msg = slog.LevelError, "Query failed"
		extra = append(extra, slog.String("error", err.Error()))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		level, msg = slog.LevelWarn, "Slow query"
		extra = append(extra, slog.Duration("threshold", l.slowThreshold))
	case l.level >= logger.Info:
		level, msg = slog.LevelInfo, "Query"
	default:
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if isLockingStatement(sql) {
		attrs = append(attrs, slog.Bool("rowLock", true))
	}
	out.LogAttrs(ctx, level, msg, append(attrs, extra...)...)
}

func (l *queryLogger) output(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}

// isLockingStatement reports SELECT ... FOR UPDATE, which checkout, cart and
// proof decisions use to serialise on a row.
func isLockingStatement(sql string) bool {
	return strings.Contains(strings.ToUpper(sql), "FOR UPDATE")
}
