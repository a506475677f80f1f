package mongodb

import (
	"context"
	"log/slog"
	"time"

	"charity/config"
	deliverycontext "charity/internal/delivery/context"

	"go.mongodb.org/mongo-driver/event"
)

const defaultSlowCommandThreshold = 200 * time.Millisecond

// commandLogger turns driver command events into structured log records.
// Commands issued while serving a request are logged with that request's logger.
type commandLogger struct {
	logger        *slog.Logger
	slowThreshold time.Duration
	debug         bool
}

func newCommandLogger(baseLogger *slog.Logger, cfg *config.Config) *commandLogger {
	l := &commandLogger{
		logger:        baseLogger,
		slowThreshold: defaultSlowCommandThreshold,
	}

	if cfg != nil {
		l.debug = cfg.Env.Debug
		if cfg.Mongo != nil && cfg.Mongo.SlowQueryThreshold != 0 {
			l.slowThreshold = cfg.Mongo.SlowQueryThreshold
		}
	}

	return l
}

func newCommandMonitor(baseLogger *slog.Logger, cfg *config.Config) *event.CommandMonitor {
	l := newCommandLogger(baseLogger, cfg)

	return &event.CommandMonitor{
		Succeeded: l.succeeded,
		Failed:    l.failed,
	}
}

func (l *commandLogger) succeeded(ctx context.Context, evt *event.CommandSucceededEvent) {
	if l.logger == nil {
		return
	}

	if l.shouldLogSlow(evt.Duration) {
		attrs := l.buildCommandAttrs(&evt.CommandFinishedEvent)
		attrs = append(attrs, slog.Duration("slowThreshold", l.slowThreshold))
		deliverycontext.LoggerFrom(ctx, l.logger).LogAttrs(ctx, slog.LevelWarn, "Mongo slow command", attrs...)

		return
	}

	if l.debug {
		deliverycontext.LoggerFrom(ctx, l.logger).LogAttrs(ctx, slog.LevelInfo, "Mongo command", l.buildCommandAttrs(&evt.CommandFinishedEvent)...)
	}
}

func (l *commandLogger) failed(ctx context.Context, evt *event.CommandFailedEvent) {
	if l.logger == nil {
		return
	}

	attrs := l.buildCommandAttrs(&evt.CommandFinishedEvent)
	attrs = append(attrs, slog.String("error", evt.Failure))
	deliverycontext.LoggerFrom(ctx, l.logger).LogAttrs(ctx, slog.LevelError, "Mongo command failed", attrs...)
}

func (l *commandLogger) buildCommandAttrs(evt *event.CommandFinishedEvent) []slog.Attr {
	return []slog.Attr{
		slog.String("command", evt.CommandName),
		slog.String("database", evt.DatabaseName),
		slog.Duration("elapsed", evt.Duration),
		slog.Int64("requestId", evt.RequestID),
	}
}

func (l *commandLogger) shouldLogSlow(elapsed time.Duration) bool {
	return l.slowThreshold > 0 && elapsed > l.slowThreshold
}

// newPoolMonitor reports connection checkout failures and pool clears.
func newPoolMonitor(logger *slog.Logger) *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			if logger == nil {
				return
			}

			switch evt.Type {
			case event.GetFailed:
				logger.Warn("Mongo connection checkout failed",
					slog.String("address", evt.Address),
					slog.String("reason", evt.Reason),
				)
			case event.PoolCleared:
				logger.Warn("Mongo connection pool cleared",
					slog.String("address", evt.Address),
				)
			}
		},
	}
}
