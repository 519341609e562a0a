package rulebased

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gems-assistant/internal/catalog"
	"gems-assistant/internal/model"
	"gems-assistant/pkg/lexical"
	"gems-assistant/pkg/log"
	"gems-assistant/pkg/random"
)

var ErrInvalidRule = errors.New("invalid routing rule")

// Router answers from a static catalog: keyword rules first, then lexical
// overlap against each intent's patterns, then the fallback intent.
// Immutable after construction and safe for concurrent use.
type Router struct {
	intents []model.Intent
	tokens  []lexical.TokenSet
	rules   []compiledRule
	picker  random.Picker
	l       log.Logger
}

// Option configures a Router.
type Option func(*options)

type options struct {
	rules  []Rule
	picker random.Picker
}

// WithRules replaces DefaultRules.
func WithRules(rules []Rule) Option {
	return func(o *options) { o.rules = rules }
}

// WithPicker sets the response selection source.
func WithPicker(p random.Picker) Option {
	return func(o *options) { o.picker = p }
}

// New builds a Router over intents.
func New(intents []model.Intent, l log.Logger, opts ...Option) (*Router, error) {
	o := options{rules: DefaultRules, picker: random.New()}
	for _, opt := range opts {
		opt(&o)
	}

	rules, err := compileRules(o.rules)
	if err != nil {
		return nil, err
	}

	tokens := make([]lexical.TokenSet, len(intents))
	for i, it := range intents {
		tokens[i] = lexical.Union(it.Patterns)
	}

	return &Router{
		intents: intents,
		tokens:  tokens,
		rules:   rules,
		picker:  o.picker,
		l:       l,
	}, nil
}

// NewFromFile loads the intent definition source at path and builds a Router.
// A missing or malformed source is a construction error.
func NewFromFile(path string, l log.Logger, opts ...Option) (*Router, error) {
	intents, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rulebased.NewFromFile: %w", err)
	}
	return New(intents, l, opts...)
}

// Intents returns the static catalog in definition order.
func (r *Router) Intents() []model.Intent {
	return r.intents
}

// nonWord matches one rune the tokenizer would not keep inside a token. RE2's
// \b is ASCII-only, so a keyword next to an accented letter would still fire.
const nonWord = `[^\p{L}\p{Nd}_]`

func compileRules(rules []Rule) ([]compiledRule, error) {
	out := make([]compiledRule, 0, len(rules))
	for i, rule := range rules {
		if strings.TrimSpace(rule.Tag) == "" {
			return nil, fmt.Errorf("%w: rule %d has no tag", ErrInvalidRule, i)
		}

		alts := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			kw = strings.TrimSpace(strings.ToLower(kw))
			if kw != "" {
				alts = append(alts, regexp.QuoteMeta(kw))
			}
		}
		if len(alts) == 0 {
			return nil, fmt.Errorf("%w: rule %q has no keywords", ErrInvalidRule, rule.Tag)
		}

		re, err := regexp.Compile(`(?i)(?:^|` + nonWord + `)(?:` + strings.Join(alts, "|") + `)(?:$|` + nonWord + `)`)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %q: %v", ErrInvalidRule, rule.Tag, err)
		}
		out = append(out, compiledRule{tag: rule.Tag, re: re})
	}
	return out, nil
}
