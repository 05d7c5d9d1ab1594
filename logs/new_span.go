package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a named span under the span carried by ctx, if any.
type NewSpan func(ctx context.Context, what string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, what string) (context.Context, Span) {
		parent, _ := ctx.Value(SpanKey).(Span)
		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)
		args := []any{"what", what}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.InfoContext(ctx, "new span", args...)
		return ctx, span
	}
}
