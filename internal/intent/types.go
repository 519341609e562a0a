package intent

import "gems-assistant/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Tag       string
	Patterns  []string
	Responses []string
}

// ListInput filters intents by a fuzzy match on the tag when Query is set.
type ListInput struct {
	Query string
}

// UpdateInput replaces every field of the intent with ID.
type UpdateInput struct {
	ID        string
	Tag       string
	Patterns  []string
	Responses []string
}

// SmartInput describes an intent by topic. Details is a comma or newline
// separated list of keywords. ID is only used by UpdateSmart.
type SmartInput struct {
	ID        string
	Topic     string
	Details   string
	Responses []string
}

// SyncInput carries intents read from a definition source.
type SyncInput struct {
	Intents        []model.Intent
	UpdateExisting bool
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Intent model.Intent
}

type ListOutput struct {
	Intents []model.Intent
	Total   int
}

type DetailOutput struct {
	Intent model.Intent
}

type UpdateOutput struct {
	Intent model.Intent
}

// SmartOutput reports the stored intent and what was generated for it.
type SmartOutput struct {
	Intent   model.Intent
	Tag      string
	Patterns []string
}

type PreviewOutput struct {
	Preview string
}

type SyncOutput struct {
	Added   int
	Updated int
	Skipped int
}
