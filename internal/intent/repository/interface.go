package repository

import (
	"context"

	"gems-assistant/internal/model"
)

// Repository is the composed interface for the intent data store.
type Repository interface {
	IntentRepository
}

// IntentRepository defines all data access methods for intents.
type IntentRepository interface {
	CreateIntent(ctx context.Context, opt CreateIntentOptions) (model.Intent, error)
	GetOneIntent(ctx context.Context, opt GetOneIntentOptions) (model.Intent, error)
	// ListIntents returns every intent ordered by tag.
	ListIntents(ctx context.Context) ([]model.Intent, error)
	UpdateIntent(ctx context.Context, opt UpdateIntentOptions) (model.Intent, error)
	DeleteIntent(ctx context.Context, id string) error
}
