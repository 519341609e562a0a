package dynamic

import (
	"context"

	"gems-assistant/internal/model"
	"gems-assistant/internal/resolver/reply"
	"gems-assistant/pkg/lexical"
	"gems-assistant/pkg/random"
)

// ListIntents reads the current catalog from the store.
func (r *Resolver) ListIntents(ctx context.Context) ([]model.Intent, error) {
	return r.store.ListIntents(ctx)
}

// Respond reads the catalog and resolves message against it. Store failures
// are logged and answered with the apology literal.
func (r *Resolver) Respond(ctx context.Context, message string) string {
	if reply.IsBlank(message) {
		return reply.EmptyMessagePrompt
	}

	intents, err := r.store.ListIntents(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: ListIntents: %v", LogPrefixRespond, err)
		return reply.Apology
	}
	return r.RespondFrom(ctx, intents, message)
}

// RespondFrom resolves message against an already fetched catalog snapshot.
func (r *Resolver) RespondFrom(ctx context.Context, intents []model.Intent, message string) string {
	if reply.IsBlank(message) {
		return reply.EmptyMessagePrompt
	}
	if len(intents) == 0 {
		return reply.NoIntents
	}

	candidates := make([]lexical.TokenSet, len(intents))
	for i, it := range intents {
		candidates[i] = lexical.Union(it.Patterns)
	}

	m := lexical.BestMatch(lexical.Tokenize(message), candidates)
	if m.Accepted() {
		if resp, ok := random.Choose(r.picker, intents[m.Index].Responses); ok {
			r.l.Debugf(ctx, "%s: resolved via overlap:%s (score %.3f)", LogPrefixRespond, intents[m.Index].Tag, m.Score)
			return resp
		}
	}

	r.l.Debugf(ctx, "%s: resolved via fallback", LogPrefixRespond)
	return reply.Fallback(intents, r.picker, reply.Apology)
}
