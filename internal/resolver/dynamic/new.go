package dynamic

import (
	"context"

	"gems-assistant/internal/model"
	"gems-assistant/pkg/log"
	"gems-assistant/pkg/random"
)

const LogPrefixRespond = "internal.resolver.dynamic.Respond"

// Lister is the read side of the administrator-editable intent store.
// Implementations return intents ordered by tag.
type Lister interface {
	ListIntents(ctx context.Context) ([]model.Intent, error)
}

// Resolver scores messages against the live dynamic catalog. It holds no copy
// of the catalog: every call reads the store again.
type Resolver struct {
	store  Lister
	picker random.Picker
	l      log.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithPicker sets the response selection source.
func WithPicker(p random.Picker) Option {
	return func(r *Resolver) { r.picker = p }
}

// New creates a Resolver reading from store.
func New(store Lister, l log.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		store:  store,
		picker: random.New(),
		l:      l,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
