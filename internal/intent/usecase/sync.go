package usecase

import (
	"context"
	"strings"

	"gems-assistant/internal/intent"
	repo "gems-assistant/internal/intent/repository"
)

// Sync copies intents from a definition source into the store. Tags already
// stored are left alone unless UpdateExisting is set. Intents with a blank tag
// or without a usable response are skipped, whether new or existing.
func (uc *implUseCase) Sync(ctx context.Context, input intent.SyncInput) (intent.SyncOutput, error) {
	var out intent.SyncOutput

	for _, src := range input.Intents {
		tag := strings.TrimSpace(src.Tag)
		if tag == "" {
			out.Skipped++
			continue
		}
		responses := cleanList(src.Responses)
		if len(responses) == 0 {
			uc.l.Warnf(ctx, "uc.Sync: skipping %s: %v", tag, intent.ErrNoResponses)
			out.Skipped++
			continue
		}

		existing, err := uc.repo.GetOneIntent(ctx, repo.GetOneIntentOptions{Tag: tag})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Sync GetOneIntent %s: %v", tag, err)
			return out, err
		}

		if existing.ID != "" {
			if !input.UpdateExisting {
				out.Skipped++
				continue
			}
			if _, err := uc.repo.UpdateIntent(ctx, repo.UpdateIntentOptions{
				ID:        existing.ID,
				Tag:       tag,
				Patterns:  cleanList(src.Patterns),
				Responses: responses,
			}); err != nil {
				uc.l.Errorf(ctx, "uc.Sync UpdateIntent %s: %v", tag, err)
				return out, err
			}
			out.Updated++
			continue
		}

		if _, err := uc.repo.CreateIntent(ctx, repo.CreateIntentOptions{
			Tag:       tag,
			Patterns:  cleanList(src.Patterns),
			Responses: responses,
		}); err != nil {
			uc.l.Errorf(ctx, "uc.Sync CreateIntent %s: %v", tag, err)
			return out, mapRepoError(err)
		}
		out.Added++
	}

	uc.l.Infof(ctx, "uc.Sync: added=%d updated=%d skipped=%d", out.Added, out.Updated, out.Skipped)
	return out, nil
}
