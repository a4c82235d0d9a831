package audit

import (
	"go.uber.org/zap"
)

// Logger emits audit records as structured log lines. Nothing in this
// system is persisted, so the audit trail is observability output only.
type Logger struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Logger {
	return &Logger{log: log.Named("audit")}
}

func (l *Logger) Log(ev Event) {
	fields := []zap.Field{
		zap.String("session_id", ev.SessionID),
		zap.String("action", ev.Action),
		zap.String("entity", ev.Entity),
	}
	if ev.Metadata != nil {
		fields = append(fields, zap.Any("metadata", ev.Metadata))
	}

	l.log.Info(ev.Action, fields...)
}
