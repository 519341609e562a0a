package usecase

import (
	"context"
	"strings"

	"github.com/sahilm/fuzzy"

	"gems-assistant/internal/intent"
	"gems-assistant/internal/model"
)

// List returns every intent ordered by tag. With a query, only intents whose
// tag fuzzy-matches it are returned, best match first.
func (uc *implUseCase) List(ctx context.Context, input intent.ListInput) (intent.ListOutput, error) {
	intents, err := uc.repo.ListIntents(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListIntents: %v", err)
		return intent.ListOutput{}, err
	}

	if q := strings.TrimSpace(input.Query); q != "" {
		matches := fuzzy.FindFrom(q, tagSource(intents))
		filtered := make([]model.Intent, 0, len(matches))
		for _, m := range matches {
			filtered = append(filtered, intents[m.Index])
		}
		intents = filtered
	}

	if intents == nil {
		intents = []model.Intent{}
	}
	return intent.ListOutput{
		Intents: intents,
		Total:   len(intents),
	}, nil
}

// tagSource exposes intent tags to the fuzzy matcher.
type tagSource []model.Intent

func (s tagSource) String(i int) string { return s[i].Tag }
func (s tagSource) Len() int            { return len(s) }
