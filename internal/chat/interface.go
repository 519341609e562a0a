package chat

import (
	"context"

	"gems-assistant/internal/resolver"
)

// Resolver answers one chat message. It never fails; every outcome is a
// response text.
type Resolver interface {
	Resolve(ctx context.Context, message string) resolver.Result
}
