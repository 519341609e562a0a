package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	repo "gems-assistant/internal/intent/repository"
	"gems-assistant/internal/model"
)

const intentColumns = `id, tag, patterns, responses, created_at, updated_at`

// CreateIntent inserts a new intent row and returns the created entity.
func (r *implRepository) CreateIntent(ctx context.Context, opt repo.CreateIntentOptions) (model.Intent, error) {
	patterns, responses, err := encodeLists(opt.Patterns, opt.Responses)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("CreateIntent"), err)
		return model.Intent{}, repo.ErrFailedToInsert
	}

	now := r.now()
	it := model.Intent{
		ID:        uuid.NewString(),
		Tag:       opt.Tag,
		Patterns:  nonNil(opt.Patterns),
		Responses: nonNil(opt.Responses),
		CreatedAt: now,
		UpdatedAt: now,
	}

	const query = `
		INSERT INTO intents (id, tag, patterns, responses, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		it.ID, it.Tag, patterns, responses, formatTime(now), formatTime(now),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Intent{}, repo.ErrTagTaken
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateIntent"), err)
		return model.Intent{}, repo.ErrFailedToInsert
	}
	return it, nil
}

// GetOneIntent retrieves a single intent by the provided filters (AND condition).
// Returns a zero-value Intent (ID == "") when not found.
func (r *implRepository) GetOneIntent(ctx context.Context, opt repo.GetOneIntentOptions) (model.Intent, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM intents WHERE %s LIMIT 1", intentColumns, mods)

	it, err := scanIntent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Intent{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneIntent"), err)
		return model.Intent{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListIntents returns every intent ordered by tag.
func (r *implRepository) ListIntents(ctx context.Context) ([]model.Intent, error) {
	query := fmt.Sprintf("SELECT %s FROM intents ORDER BY tag ASC", intentColumns)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListIntents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var intents []model.Intent
	for rows.Next() {
		it, err := scanIntent(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListIntents"), err)
			return nil, repo.ErrFailedToList
		}
		intents = append(intents, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListIntents"), err)
		return nil, repo.ErrFailedToList
	}
	return intents, nil
}

// UpdateIntent replaces an intent by ID and returns the updated entity.
// Returns a zero-value Intent when the ID does not exist.
func (r *implRepository) UpdateIntent(ctx context.Context, opt repo.UpdateIntentOptions) (model.Intent, error) {
	patterns, responses, err := encodeLists(opt.Patterns, opt.Responses)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("UpdateIntent"), err)
		return model.Intent{}, repo.ErrFailedToUpdate
	}

	query := fmt.Sprintf(`
		UPDATE intents
		SET tag = ?, patterns = ?, responses = ?, updated_at = ?
		WHERE id = ?
		RETURNING %s`, intentColumns)

	it, err := scanIntent(r.db.QueryRowContext(ctx, query,
		opt.Tag, patterns, responses, formatTime(r.now()), opt.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Intent{}, nil
	}
	if err != nil {
		if isUniqueViolation(err) {
			return model.Intent{}, repo.ErrTagTaken
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateIntent"), err)
		return model.Intent{}, repo.ErrFailedToUpdate
	}
	return it, nil
}

// DeleteIntent removes an intent by ID.
func (r *implRepository) DeleteIntent(ctx context.Context, id string) error {
	const query = `DELETE FROM intents WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteIntent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
