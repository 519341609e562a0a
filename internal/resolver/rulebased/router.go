package rulebased

import (
	"context"
	"strings"

	"gems-assistant/internal/model"
	"gems-assistant/internal/resolver/reply"
	"gems-assistant/pkg/lexical"
	"gems-assistant/pkg/random"
)

// Respond resolves message to a response. It never fails.
func (r *Router) Respond(ctx context.Context, message string) string {
	resp, via := r.resolve(message)
	r.l.Debugf(ctx, "%s: resolved via %s", LogPrefixRespond, via)
	return resp
}

func (r *Router) resolve(message string) (string, string) {
	if reply.IsBlank(message) {
		return reply.EmptyMessagePrompt, viaFallback
	}

	lowered := strings.ToLower(strings.TrimSpace(message))

	// Rules are not scored against each other: the first one that fires and
	// has an answerable intent wins.
	for _, rule := range r.rules {
		if !rule.re.MatchString(lowered) {
			continue
		}
		it, ok := model.FindIntent(r.intents, rule.tag)
		if !ok {
			continue
		}
		if resp, ok := random.Choose(r.picker, it.Responses); ok {
			return resp, viaRule + ":" + rule.tag
		}
	}

	m := lexical.BestMatch(lexical.Tokenize(message), r.tokens)
	if m.Accepted() {
		if resp, ok := random.Choose(r.picker, r.intents[m.Index].Responses); ok {
			return resp, viaOverlap + ":" + r.intents[m.Index].Tag
		}
	}

	return reply.Fallback(r.intents, r.picker, reply.Apology), viaFallback
}
