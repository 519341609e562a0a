package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "gems-assistant/internal/intent/repository"
	"gems-assistant/internal/testutil"
	"gems-assistant/pkg/log"
)

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	return New(testutil.NewTestDB(t), log.NewNop())
}

func TestIntentRepo_CreateAndGet(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateIntent(ctx, repo.CreateIntentOptions{
		Tag:       "greeting",
		Patterns:  []string{"hi", "hello"},
		Responses: []string{"Hello!"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byID, err := r.GetOneIntent(ctx, repo.GetOneIntentOptions{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "greeting", byID.Tag)
	assert.Equal(t, []string{"hi", "hello"}, byID.Patterns)
	assert.Equal(t, []string{"Hello!"}, byID.Responses)
	assert.True(t, created.CreatedAt.Equal(byID.CreatedAt))

	byTag, err := r.GetOneIntent(ctx, repo.GetOneIntentOptions{Tag: "greeting"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, byTag.ID)
}

func TestIntentRepo_GetOne_NotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	it, err := r.GetOneIntent(ctx, repo.GetOneIntentOptions{ID: "missing"})
	require.NoError(t, err)
	assert.Empty(t, it.ID)
}

func TestIntentRepo_GetOne_ExcludeID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateIntent(ctx, repo.CreateIntentOptions{Tag: "fees", Responses: []string{"x"}})
	require.NoError(t, err)

	it, err := r.GetOneIntent(ctx, repo.GetOneIntentOptions{Tag: "fees", ExcludeID: created.ID})
	require.NoError(t, err)
	assert.Empty(t, it.ID)
}

func TestIntentRepo_CreateDuplicateTag(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.CreateIntent(ctx, repo.CreateIntentOptions{Tag: "fees"})
	require.NoError(t, err)

	_, err = r.CreateIntent(ctx, repo.CreateIntentOptions{Tag: "fees"})
	assert.ErrorIs(t, err, repo.ErrTagTaken)
}

func TestIntentRepo_ListOrderedByTag(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	empty, err := r.ListIntents(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, tag := range []string{"hostel", "admission", "fees"} {
		_, err := r.CreateIntent(ctx, repo.CreateIntentOptions{Tag: tag})
		require.NoError(t, err)
	}

	intents, err := r.ListIntents(ctx)
	require.NoError(t, err)
	require.Len(t, intents, 3)
	assert.Equal(t, "admission", intents[0].Tag)
	assert.Equal(t, "fees", intents[1].Tag)
	assert.Equal(t, "hostel", intents[2].Tag)
	assert.NotNil(t, intents[0].Patterns)
	assert.NotNil(t, intents[0].Responses)
}

func TestIntentRepo_Update(t *testing.T) {
	r := newTestRepo(t).(*implRepository)
	ctx := context.Background()

	created, err := r.CreateIntent(ctx, repo.CreateIntentOptions{Tag: "fees", Responses: []string{"old"}})
	require.NoError(t, err)

	later := created.CreatedAt.Add(time.Minute)
	r.now = func() time.Time { return later }

	updated, err := r.UpdateIntent(ctx, repo.UpdateIntentOptions{
		ID:        created.ID,
		Tag:       "tuition_fees",
		Patterns:  []string{"tuition"},
		Responses: []string{"new"},
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "tuition_fees", updated.Tag)
	assert.Equal(t, []string{"tuition"}, updated.Patterns)
	assert.Equal(t, []string{"new"}, updated.Responses)
	assert.True(t, updated.UpdatedAt.Equal(later))
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))

	missing, err := r.UpdateIntent(ctx, repo.UpdateIntentOptions{ID: "missing", Tag: "x"})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestIntentRepo_UpdateDuplicateTag(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.CreateIntent(ctx, repo.CreateIntentOptions{Tag: "fees"})
	require.NoError(t, err)
	other, err := r.CreateIntent(ctx, repo.CreateIntentOptions{Tag: "hostel"})
	require.NoError(t, err)

	_, err = r.UpdateIntent(ctx, repo.UpdateIntentOptions{ID: other.ID, Tag: "fees"})
	assert.ErrorIs(t, err, repo.ErrTagTaken)
}

func TestIntentRepo_Delete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateIntent(ctx, repo.CreateIntentOptions{Tag: "fees"})
	require.NoError(t, err)

	require.NoError(t, r.DeleteIntent(ctx, created.ID))
	require.NoError(t, r.DeleteIntent(ctx, created.ID))

	it, err := r.GetOneIntent(ctx, repo.GetOneIntentOptions{ID: created.ID})
	require.NoError(t, err)
	assert.Empty(t, it.ID)
}
