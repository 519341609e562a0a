package usecase

import (
	"context"

	"gems-assistant/internal/intent"
	repo "gems-assistant/internal/intent/repository"
	"gems-assistant/internal/model"
)

// Detail retrieves a single intent by ID. Returns ErrIntentNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (intent.DetailOutput, error) {
	it, err := uc.get(ctx, id)
	if err != nil {
		return intent.DetailOutput{}, err
	}
	return intent.DetailOutput{Intent: it}, nil
}

// Update replaces an existing intent. Returns ErrIntentNotFound when not found
// and ErrDuplicateTag when another intent already carries the new tag.
func (uc *implUseCase) Update(ctx context.Context, input intent.UpdateInput) (intent.UpdateOutput, error) {
	p, err := validatePayload(input.Tag, input.Patterns, input.Responses)
	if err != nil {
		return intent.UpdateOutput{}, err
	}

	if _, err := uc.get(ctx, input.ID); err != nil {
		return intent.UpdateOutput{}, err
	}

	if err := uc.ensureTagFree(ctx, p.tag, input.ID); err != nil {
		if err != intent.ErrDuplicateTag {
			uc.l.Errorf(ctx, "uc.Update GetOneIntent: %v", err)
		}
		return intent.UpdateOutput{}, err
	}

	it, err := uc.repo.UpdateIntent(ctx, repo.UpdateIntentOptions{
		ID:        input.ID,
		Tag:       p.tag,
		Patterns:  p.patterns,
		Responses: p.responses,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateIntent: %v", err)
		return intent.UpdateOutput{}, mapRepoError(err)
	}
	if it.ID == "" {
		return intent.UpdateOutput{}, intent.ErrIntentNotFound
	}
	return intent.UpdateOutput{Intent: it}, nil
}

// Delete removes an intent by ID. Returns ErrIntentNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteIntent(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteIntent: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) get(ctx context.Context, id string) (model.Intent, error) {
	it, err := uc.repo.GetOneIntent(ctx, repo.GetOneIntentOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.get GetOneIntent: %v", err)
		return model.Intent{}, err
	}
	if it.ID == "" {
		return model.Intent{}, intent.ErrIntentNotFound
	}
	return it, nil
}
