package model

import "time"

// FallbackTag is the tag consulted when nothing else matches. It is a naming
// convention only; catalogs without it degrade to a literal apology.
const FallbackTag = "fallback"

// Intent is a named category of user request with example patterns and
// candidate replies.
type Intent struct {
	ID        string    `json:"id,omitempty" yaml:"-"`
	Tag       string    `json:"tag" yaml:"tag"`
	Patterns  []string  `json:"patterns" yaml:"patterns"`
	Responses []string  `json:"responses" yaml:"responses"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"-"`
}

// FindIntent returns the first intent carrying tag.
func FindIntent(intents []Intent, tag string) (Intent, bool) {
	for _, it := range intents {
		if it.Tag == tag {
			return it, true
		}
	}
	return Intent{}, false
}
