package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gems-assistant/internal/intent"
	repo "gems-assistant/internal/intent/repository"
)

const (
	// defaultSlug is used when a topic has no letters or digits.
	defaultSlug = "intent"
	// maxDetailKeywords caps how many detail keywords feed pattern generation.
	maxDetailKeywords = 8
)

var (
	nonSlugRunes   = regexp.MustCompile(`[^a-z0-9]+`)
	detailSplitter = regexp.MustCompile(`[,\n]`)
)

// cleanList trims every entry and drops the empty ones.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// slugify lower-cases value and collapses every run of non-alphanumerics
// into one underscore.
func slugify(value string) string {
	slug := nonSlugRunes.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		return defaultSlug
	}
	return slug
}

// generatePatterns derives example phrasings from a topic and its detail
// keywords, de-duplicated case-insensitively in generation order.
func generatePatterns(topic, details string) []string {
	topic = strings.TrimSpace(topic)

	candidates := []string{
		topic,
		"tell me about " + topic,
		"what is " + topic,
		"details about " + topic,
		"information about " + topic,
	}

	keywords := dedupeFold(cleanList(detailSplitter.Split(details, -1)))
	if len(keywords) > maxDetailKeywords {
		keywords = keywords[:maxDetailKeywords]
	}
	for _, kw := range keywords {
		candidates = append(candidates, kw, "tell me about "+kw, topic+" "+kw)
	}

	return dedupeFold(cleanList(candidates))
}

// dedupeFold keeps the first occurrence of every case-insensitively equal item.
func dedupeFold(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// uniqueTag returns base, or base_2, base_3... whichever is first unused by
// any intent other than excludeID.
func (uc *implUseCase) uniqueTag(ctx context.Context, base, excludeID string) (string, error) {
	candidate := base
	for i := 2; ; i++ {
		existing, err := uc.repo.GetOneIntent(ctx, repo.GetOneIntentOptions{Tag: candidate, ExcludeID: excludeID})
		if err != nil {
			return "", err
		}
		if existing.ID == "" {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s_%d", base, i)
	}
}

// ensureTagFree fails with ErrDuplicateTag when another intent carries tag.
func (uc *implUseCase) ensureTagFree(ctx context.Context, tag, excludeID string) error {
	existing, err := uc.repo.GetOneIntent(ctx, repo.GetOneIntentOptions{Tag: tag, ExcludeID: excludeID})
	if err != nil {
		return err
	}
	if existing.ID != "" {
		return intent.ErrDuplicateTag
	}
	return nil
}

// mapRepoError turns a lost race on the unique tag into ErrDuplicateTag.
func mapRepoError(err error) error {
	if errors.Is(err, repo.ErrTagTaken) {
		return intent.ErrDuplicateTag
	}
	return err
}

type payload struct {
	tag       string
	patterns  []string
	responses []string
}

// validatePayload trims every field and checks the tag and responses rules.
func validatePayload(tag string, patterns, responses []string) (payload, error) {
	p := payload{
		tag:       strings.TrimSpace(tag),
		patterns:  cleanList(patterns),
		responses: cleanList(responses),
	}
	if p.tag == "" {
		return p, intent.ErrTagRequired
	}
	if len(p.responses) == 0 {
		return p, intent.ErrNoResponses
	}
	return p, nil
}

type smartPayload struct {
	topic     string
	details   string
	responses []string
}

func validateSmart(input intent.SmartInput) (smartPayload, error) {
	p := smartPayload{
		topic:     strings.TrimSpace(input.Topic),
		details:   strings.TrimSpace(input.Details),
		responses: cleanList(input.Responses),
	}
	if p.topic == "" {
		return p, intent.ErrTopicRequired
	}
	if p.details == "" {
		return p, intent.ErrDetailsRequired
	}
	if len(p.responses) == 0 {
		return p, intent.ErrNoResponses
	}
	return p, nil
}
