package usecase

import (
	"context"

	"gems-assistant/internal/intent"
	"gems-assistant/internal/resolver/reply"
	"gems-assistant/pkg/random"
)

// Preview returns one response the intent could give.
func (uc *implUseCase) Preview(ctx context.Context, id string) (intent.PreviewOutput, error) {
	it, err := uc.get(ctx, id)
	if err != nil {
		return intent.PreviewOutput{}, err
	}

	text, ok := random.Choose(uc.picker, it.Responses)
	if !ok {
		text = reply.NoPreview
	}
	return intent.PreviewOutput{Preview: text}, nil
}
