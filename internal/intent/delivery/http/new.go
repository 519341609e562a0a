package http

import (
	"gems-assistant/internal/intent"
	"gems-assistant/pkg/log"
)

type handler struct {
	l           log.Logger
	uc          intent.UseCase
	intentsPath string
}

// New creates the admin HTTP handler for intents. intentsPath is the
// definition source read by the sync endpoint.
func New(l log.Logger, uc intent.UseCase, intentsPath string) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		intentsPath: intentsPath,
	}
}
