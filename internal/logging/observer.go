package logging

import (
	"log/slog"

	"github.com/leengari/memtable/internal/domain/schema"
)

// LoggingObserver logs every database lifecycle event using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer. A nil logger means slog.Default().
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the schema.Observer interface
func (lo *LoggingObserver) OnEvent(event schema.Event) {
	attrs := []any{
		"event", event.Type,
		"table", event.Table,
		"op_id", event.OpID,
		"duration", event.Duration,
	}

	switch d := event.Data.(type) {
	case nil:
	case error:
		lo.logger.Warn("db_lifecycle", append(attrs, "error", d)...)
		return
	case schema.ScanStats:
		attrs = append(attrs, "scanned", d.Scanned, "matched", d.Matched, "limit", d.Limit)
	case schema.Field:
		attrs = append(attrs, "field", d.Name, "type", d.Type)
	default:
		attrs = append(attrs, "data", d)
	}

	lo.logger.Debug("db_lifecycle", attrs...)
}
