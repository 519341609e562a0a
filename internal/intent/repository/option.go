package repository

// CreateIntentOptions holds parameters for inserting a new intent.
type CreateIntentOptions struct {
	Tag       string
	Patterns  []string
	Responses []string
}

// GetOneIntentOptions holds filter parameters for fetching a single intent.
// All non-empty fields are applied as AND conditions.
type GetOneIntentOptions struct {
	ID  string
	Tag string
	// ExcludeID skips the intent with this ID, for uniqueness checks on update.
	ExcludeID string
}

// UpdateIntentOptions holds parameters for replacing an existing intent.
type UpdateIntentOptions struct {
	ID        string
	Tag       string
	Patterns  []string
	Responses []string
}
