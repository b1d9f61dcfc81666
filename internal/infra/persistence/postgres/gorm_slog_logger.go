package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hostelbites/config"
	deliverycontext "hostelbites/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// sqlLogger routes GORM output to slog, through the request logger when the context carries one.
type sqlLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newSQLLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &sqlLogger{
		base:          base,
		level:         level,
		slowThreshold: defaultSlowQueryThreshold,
	}
}

func (l *sqlLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *sqlLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}

func (l *sqlLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold || l.base == nil {
		return
	}

	l.log(ctx).LogAttrs(ctx, level, "SQL "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *sqlLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *sqlLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *sqlLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

// Trace logs failed and slow statements, and every statement at info level.
// Missing rows and unique violations are expected outcomes and only logged at debug.
func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	statement := func() []slog.Attr {
		sql, rows := fc()

		return []slog.Attr{
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		}
	}

	switch {
	case err != nil && (errors.Is(err, gorm.ErrRecordNotFound) || isUniqueConstraintViolation(err)):
		l.log(ctx).LogAttrs(ctx, slog.LevelDebug, "SQL expected failure", append(statement(), slog.String("error", err.Error()))...)
	case err != nil && l.level >= logger.Error:
		l.log(ctx).LogAttrs(ctx, slog.LevelError, "SQL statement failed", append(statement(), slog.String("error", err.Error()))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.log(ctx).LogAttrs(ctx, slog.LevelWarn, "SQL slow statement", append(statement(), slog.Duration("threshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		l.log(ctx).LogAttrs(ctx, slog.LevelInfo, "SQL statement", statement()...)
	}
}
