package usecase

import (
	"context"

	"gems-assistant/internal/intent"
	repo "gems-assistant/internal/intent/repository"
)

// CreateSmart stores an intent whose tag and patterns are generated from a
// topic and its detail keywords.
func (uc *implUseCase) CreateSmart(ctx context.Context, input intent.SmartInput) (intent.SmartOutput, error) {
	p, err := validateSmart(input)
	if err != nil {
		return intent.SmartOutput{}, err
	}

	tag, err := uc.uniqueTag(ctx, slugify(p.topic), "")
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateSmart uniqueTag: %v", err)
		return intent.SmartOutput{}, err
	}
	patterns := generatePatterns(p.topic, p.details)

	it, err := uc.repo.CreateIntent(ctx, repo.CreateIntentOptions{
		Tag:       tag,
		Patterns:  patterns,
		Responses: p.responses,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateSmart CreateIntent: %v", err)
		return intent.SmartOutput{}, mapRepoError(err)
	}

	return intent.SmartOutput{Intent: it, Tag: tag, Patterns: patterns}, nil
}

// UpdateSmart regenerates the tag and patterns of an existing intent. The
// intent may keep its own tag.
func (uc *implUseCase) UpdateSmart(ctx context.Context, input intent.SmartInput) (intent.SmartOutput, error) {
	p, err := validateSmart(input)
	if err != nil {
		return intent.SmartOutput{}, err
	}

	if _, err := uc.get(ctx, input.ID); err != nil {
		return intent.SmartOutput{}, err
	}

	tag, err := uc.uniqueTag(ctx, slugify(p.topic), input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateSmart uniqueTag: %v", err)
		return intent.SmartOutput{}, err
	}
	patterns := generatePatterns(p.topic, p.details)

	it, err := uc.repo.UpdateIntent(ctx, repo.UpdateIntentOptions{
		ID:        input.ID,
		Tag:       tag,
		Patterns:  patterns,
		Responses: p.responses,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateSmart UpdateIntent: %v", err)
		return intent.SmartOutput{}, mapRepoError(err)
	}
	if it.ID == "" {
		return intent.SmartOutput{}, intent.ErrIntentNotFound
	}

	return intent.SmartOutput{Intent: it, Tag: tag, Patterns: patterns}, nil
}
