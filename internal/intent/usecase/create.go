package usecase

import (
	"context"

	"gems-assistant/internal/intent"
	repo "gems-assistant/internal/intent/repository"
)

// Create stores a new intent after checking for tag uniqueness.
func (uc *implUseCase) Create(ctx context.Context, input intent.CreateInput) (intent.CreateOutput, error) {
	p, err := validatePayload(input.Tag, input.Patterns, input.Responses)
	if err != nil {
		return intent.CreateOutput{}, err
	}

	if err := uc.ensureTagFree(ctx, p.tag, ""); err != nil {
		if err != intent.ErrDuplicateTag {
			uc.l.Errorf(ctx, "uc.Create GetOneIntent: %v", err)
		}
		return intent.CreateOutput{}, err
	}

	it, err := uc.repo.CreateIntent(ctx, repo.CreateIntentOptions{
		Tag:       p.tag,
		Patterns:  p.patterns,
		Responses: p.responses,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateIntent: %v", err)
		return intent.CreateOutput{}, mapRepoError(err)
	}

	return intent.CreateOutput{Intent: it}, nil
}
