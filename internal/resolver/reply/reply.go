// Package reply holds the user-facing literals and fallback selection shared by
// every resolution strategy.
package reply

import (
	"strings"

	"gems-assistant/internal/model"
	"gems-assistant/pkg/random"
)

const (
	EmptyMessagePrompt = "Please type a message."
	Apology            = "I'm sorry, I didn't catch that. Could you rephrase?"
	NotSure            = "I'm not sure."
	NoIntents          = "No intents are configured yet."
	NoPreview          = "No responses configured for this intent."
)

// IsBlank reports whether message has nothing but whitespace.
func IsBlank(message string) bool {
	return strings.TrimSpace(message) == ""
}

// Fallback answers from the fallback-tagged intent, or def when the catalog has
// no such intent or it has no responses.
func Fallback(intents []model.Intent, p random.Picker, def string) string {
	if it, ok := model.FindIntent(intents, model.FallbackTag); ok {
		if resp, ok := random.Choose(p, it.Responses); ok {
			return resp
		}
	}
	return def
}
