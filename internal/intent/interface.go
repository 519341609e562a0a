package intent

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Intent CRUD
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id string) error

	// Topic-driven authoring
	CreateSmart(ctx context.Context, input SmartInput) (SmartOutput, error)
	UpdateSmart(ctx context.Context, input SmartInput) (SmartOutput, error)

	Preview(ctx context.Context, id string) (PreviewOutput, error)
	Sync(ctx context.Context, input SyncInput) (SyncOutput, error)
}
