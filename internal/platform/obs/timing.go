package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// RequestID extracts the request id placed in the context by the HTTP
// middleware, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// WithRequestID attaches a request id to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Time logs the duration of a named operation on return. Usage:
//
//	defer obs.Time(ctx, log, "build_week_view")(&err)
func Time(ctx context.Context, log *zap.Logger, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		fields := []zap.Field{
			zap.String("req_id", reqID),
			zap.String("op", name),
			zap.Duration("dur", time.Since(start)),
		}

		if errp != nil && *errp != nil {
			log.Warn("op failed", append(fields, zap.Error(*errp))...)
			return
		}
		log.Info("op complete", fields...)
	}
}
