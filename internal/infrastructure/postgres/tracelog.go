package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/sirupsen/logrus"
)

type logrusAdapter struct {
	logger logrus.FieldLogger
}

func (a *logrusAdapter) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	entry := a.logger.WithFields(logrus.Fields(data)).WithField("component", "pgx")
	switch level {
	case tracelog.LogLevelError:
		entry.Error(msg)
	case tracelog.LogLevelWarn:
		entry.Warn(msg)
	case tracelog.LogLevelInfo:
		entry.Info(msg)
	default:
		entry.Debug(msg)
	}
}

// NewQueryTracer logs every statement with its bound arguments through logger.
func NewQueryTracer(logger logrus.FieldLogger) *tracelog.TraceLog {
	return &tracelog.TraceLog{
		Logger:   &logrusAdapter{logger: logger},
		LogLevel: tracelog.LogLevelDebug,
	}
}
