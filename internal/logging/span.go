package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Span times one stage of request handling, such as short link resolution
// or the upstream API call.
type Span struct {
	name   string
	logger *slog.Logger
	start  time.Time
}

// StartSpan derives a child span from ctx. The request id, when present,
// doubles as the trace id so spans line up with the access log.
func StartSpan(ctx context.Context, name string, attrs ...slog.Attr) (context.Context, *Span) {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := FromContext(ctx)

	if TraceIDFromContext(ctx) == "" {
		traceID := RequestIDFromContext(ctx)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		ctx = withString(ctx, traceIDKey, traceID)
		logger = logger.With(slog.String("trace_id", traceID))
	}

	spanID := uuid.NewString()
	args := []any{slog.String("span_id", spanID), slog.String("span_name", name)}
	if parent := SpanIDFromContext(ctx); parent != "" {
		args = append(args, slog.String("parent_span_id", parent))
	}
	for _, a := range attrs {
		args = append(args, a)
	}
	logger = logger.With(args...)

	ctx = WithLogger(ctx, logger)
	ctx = withString(ctx, spanIDKey, spanID)

	return ctx, &Span{name: name, logger: logger, start: time.Now()}
}

// End emits the completion entry. A non-nil err is logged at warn level;
// callers decide elsewhere whether the failure is fatal to the request.
func (s *Span) End(err error, attrs ...slog.Attr) {
	if s == nil {
		return
	}
	args := []any{slog.Duration("duration", time.Since(s.start))}
	for _, a := range attrs {
		args = append(args, a)
	}
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
		s.logger.Warn("span failed", args...)
		return
	}
	s.logger.Info("span completed", args...)
}
