package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	repo "gems-assistant/internal/intent/repository"
	"gems-assistant/internal/model"
)

// buildGetOneQuery builds WHERE clause + args for GetOneIntent.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneIntentOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Tag != "" {
		conditions = append(conditions, "tag = ?")
		args = append(args, opt.Tag)
	}
	if opt.ExcludeID != "" {
		conditions = append(conditions, "id <> ?")
		args = append(args, opt.ExcludeID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanIntent(s scanner) (model.Intent, error) {
	var (
		it                   model.Intent
		patterns, responses  string
		createdAt, updatedAt string
	)
	if err := s.Scan(&it.ID, &it.Tag, &patterns, &responses, &createdAt, &updatedAt); err != nil {
		return model.Intent{}, err
	}

	if err := json.Unmarshal([]byte(patterns), &it.Patterns); err != nil {
		return model.Intent{}, fmt.Errorf("decoding patterns of %s: %w", it.Tag, err)
	}
	if err := json.Unmarshal([]byte(responses), &it.Responses); err != nil {
		return model.Intent{}, fmt.Errorf("decoding responses of %s: %w", it.Tag, err)
	}
	it.Patterns = nonNil(it.Patterns)
	it.Responses = nonNil(it.Responses)

	var err error
	if it.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Intent{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if it.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Intent{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return it, nil
}

func encodeLists(patterns, responses []string) (string, string, error) {
	p, err := json.Marshal(nonNil(patterns))
	if err != nil {
		return "", "", err
	}
	rs, err := json.Marshal(nonNil(responses))
	if err != nil {
		return "", "", err
	}
	return string(p), string(rs), nil
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
