package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// logger writes gorm logs to zerolog.
type logger struct {
	Logger zerolog.Logger
}

func (l *logger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *logger) Info(_ context.Context, s string, args ...any) {
	l.Logger.Info().Msgf(s, args...)
}

func (l *logger) Warn(_ context.Context, s string, args ...any) {
	l.Logger.Warn().Msgf(s, args...)
}

func (l *logger) Error(_ context.Context, s string, args ...any) {
	l.Logger.Error().Msgf(s, args...)
}

// Trace logs every SQL statement at debug level. Failed statements are logged
// at error level unless the error is expected during normal operation.
func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := map[string]any{
		"sql":      sql,
		"rows":     rows,
		"duration": elapsed,
	}

	if err != nil && !expected(err) {
		l.Logger.Error().Err(err).Fields(fields).Msg("[GORM] query error")
		return
	}

	l.Logger.Debug().Fields(fields).Msgf("[GORM] query")
}

// expected returns true for errors that are reported to the client
// and do not indicate a problem with the backend.
func expected(err error) bool {
	for _, e := range []error{ErrResourceNotFound, ErrValidation, ErrCategoryNameNotUnique, ErrCategoryInUse, ErrCategoryDoesNotExist} {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
