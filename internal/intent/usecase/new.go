package usecase

import (
	"gems-assistant/internal/intent/repository"
	"gems-assistant/pkg/log"
	"gems-assistant/pkg/random"
)

// implUseCase is the private implementation of intent.UseCase.
type implUseCase struct {
	repo   repository.Repository
	l      log.Logger
	picker random.Picker
}

// New creates a new intent UseCase implementation. A nil picker uses the
// process-wide random source.
func New(repo repository.Repository, l log.Logger, picker random.Picker) *implUseCase {
	if picker == nil {
		picker = random.New()
	}
	return &implUseCase{
		repo:   repo,
		l:      l,
		picker: picker,
	}
}
