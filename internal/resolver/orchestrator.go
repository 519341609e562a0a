package resolver

import (
	"context"
	"time"

	"gems-assistant/internal/resolver/dynamic"
	"gems-assistant/pkg/log"
)

// Orchestrator is the single entry point for resolving a chat message.
// Any non-empty dynamic catalog supersedes the static engine for every
// message, not only the ones that match a dynamic intent.
type Orchestrator struct {
	dynamic *dynamic.Resolver
	static  Responder
	mode    Mode
	metrics *Metrics
	l       log.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithMetrics records resolutions in m.
func WithMetrics(m *Metrics) Option {
	return func(o *Orchestrator) { o.metrics = m }
}

// New wires an Orchestrator around an already built static engine.
func New(dyn *dynamic.Resolver, static Responder, mode Mode, l log.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		dynamic: dyn,
		static:  static,
		mode:    mode,
		l:       l,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Mode reports the static engine in use.
func (o *Orchestrator) Mode() Mode {
	return o.mode
}

// Respond resolves message to a response string.
func (o *Orchestrator) Respond(ctx context.Context, message string) string {
	return o.Resolve(ctx, message).Response
}

// Resolve reads the dynamic catalog once; a non-empty catalog answers the
// message, otherwise (empty or unreadable) the static engine does.
func (o *Orchestrator) Resolve(ctx context.Context, message string) Result {
	started := time.Now()

	intents, err := o.dynamic.ListIntents(ctx)
	switch {
	case err != nil:
		o.l.Warnf(ctx, "%s: dynamic store unavailable, using %s: %v", LogPrefixResolve, o.mode, err)
		o.metrics.storeError()
	case len(intents) > 0:
		res := Result{Response: o.dynamic.RespondFrom(ctx, intents, message), Path: PathDynamic}
		o.metrics.observe(res.Path, started)
		return res
	}

	res := Result{Response: o.static.Respond(ctx, message), Path: o.staticPath()}
	o.metrics.observe(res.Path, started)
	return res
}

func (o *Orchestrator) staticPath() Path {
	if o.mode == ModeStaticNeural {
		return PathNeural
	}
	return PathRules
}
