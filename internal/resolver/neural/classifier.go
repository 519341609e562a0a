package neural

import (
	"context"

	"gems-assistant/internal/resolver/reply"
	"gems-assistant/pkg/lexical"
	"gems-assistant/pkg/nn"
	"gems-assistant/pkg/random"
)

// Encode returns the presence vector of message over the vocabulary. Its
// length is always len(Vocabulary()).
func (c *Classifier) Encode(message string) []float64 {
	vec := make([]float64, len(c.vocab))
	for tok := range lexical.Tokenize(message) {
		if i, ok := c.index[tok]; ok {
			vec[i] = 1
		}
	}
	return vec
}

// Predict returns the arg-max output index for message. It may fall outside
// the catalog; callers must bound-check.
func (c *Classifier) Predict(message string) (int, error) {
	out, err := c.net.Forward(c.Encode(message))
	if err != nil {
		return -1, err
	}
	return nn.ArgMax(out), nil
}

// Respond resolves message to a response. It never fails.
func (c *Classifier) Respond(ctx context.Context, message string) string {
	if reply.IsBlank(message) {
		return reply.EmptyMessagePrompt
	}

	idx, err := c.Predict(message)
	if err != nil {
		c.l.Errorf(ctx, "%s: forward pass: %v", LogPrefixRespond, err)
		return reply.Fallback(c.intents, c.picker, reply.NotSure)
	}

	if idx < 0 || idx >= len(c.intents) {
		c.l.Warnf(ctx, "%s: predicted index %d outside %d intents", LogPrefixRespond, idx, len(c.intents))
		return reply.Fallback(c.intents, c.picker, reply.NotSure)
	}

	it := c.intents[idx]
	resp, ok := random.Choose(c.picker, it.Responses)
	if !ok {
		c.l.Debugf(ctx, "%s: intent %q has no responses", LogPrefixRespond, it.Tag)
		return reply.Fallback(c.intents, c.picker, reply.NotSure)
	}

	c.l.Debugf(ctx, "%s: resolved via neural:%s", LogPrefixRespond, it.Tag)
	return resp
}
