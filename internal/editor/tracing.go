package editor

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/arjunvelu/vimcore/internal/keymap"
)

const spanNameDispatch = "editor.dispatch"

// KeyHandler is the shape of State.Handle, so it can be wrapped by
// middleware without the middleware depending on *State directly.
type KeyHandler func(k keymap.Key) (HostAction, bool)

// TracingConfig configures the dispatch tracing middleware.
type TracingConfig struct {
	// Tracer is the OpenTelemetry tracer used to start spans. If nil,
	// NewTracingMiddleware returns a pass-through with no tracing
	// overhead.
	Tracer trace.Tracer
}

// NewTracingMiddleware wraps a KeyHandler so every dispatched key opens
// one span, tagged with the key and the instance ID, and records
// whether the dispatch produced a host action.
func NewTracingMiddleware(id string, cfg TracingConfig) func(next KeyHandler) KeyHandler {
	if cfg.Tracer == nil {
		return func(next KeyHandler) KeyHandler {
			return next
		}
	}
	return func(next KeyHandler) KeyHandler {
		return func(k keymap.Key) (HostAction, bool) {
			_, span := cfg.Tracer.Start(context.Background(), spanNameDispatch,
				trace.WithSpanKind(trace.SpanKindInternal),
			)
			defer span.End()

			span.SetAttributes(
				attribute.String("editor.instance_id", id),
				attribute.String("editor.key", k.String()),
			)

			result, ok := next(k)

			span.SetAttributes(attribute.Bool("editor.host_action_produced", ok))
			span.SetStatus(codes.Ok, "")
			return result, ok
		}
	}
}

// Traced returns a KeyHandler bound to s.Handle, wrapped by mw. Typical
// use: dispatcher := state.Traced(NewTracingMiddleware(state.ID.String(), cfg)).
func (s *State) Traced(mw func(next KeyHandler) KeyHandler) KeyHandler {
	return mw(s.Handle)
}
