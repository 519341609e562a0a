package neural

import (
	"context"
	"errors"
	"fmt"

	"gems-assistant/internal/catalog"
	"gems-assistant/internal/model"
	"gems-assistant/pkg/lexical"
	"gems-assistant/pkg/log"
	"gems-assistant/pkg/nn"
	"gems-assistant/pkg/random"
)

var ErrVocabularyMismatch = errors.New("vocabulary does not match network input width")

// Config points at the three artifacts the classifier is built from.
type Config struct {
	ModelPath      string
	DimensionsPath string
	IntentsPath    string
}

// Classifier answers by running the bag-of-words network and picking a
// response from the predicted intent. Everything it holds is frozen at
// construction.
type Classifier struct {
	net     *nn.Network
	vocab   []string
	index   map[string]int
	intents []model.Intent
	picker  random.Picker
	l       log.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithPicker sets the response selection source.
func WithPicker(p random.Picker) Option {
	return func(c *Classifier) { c.picker = p }
}

// New loads every artifact named by cfg. Any missing, unreadable or
// inconsistent artifact is returned as an error; the caller decides whether to
// fall back to another engine.
func New(cfg Config, l log.Logger, opts ...Option) (*Classifier, error) {
	intents, err := catalog.LoadFile(cfg.IntentsPath)
	if err != nil {
		return nil, fmt.Errorf("neural.New: %w", err)
	}

	net, err := nn.Load(cfg.ModelPath, cfg.DimensionsPath)
	if err != nil {
		return nil, fmt.Errorf("neural.New: %w", err)
	}

	return NewWithNetwork(net, intents, l, opts...)
}

// NewWithNetwork builds a Classifier from an already loaded network.
func NewWithNetwork(net *nn.Network, intents []model.Intent, l log.Logger, opts ...Option) (*Classifier, error) {
	vocab := BuildVocabulary(intents)
	dims := net.Dimensions()
	if len(vocab) != dims.InputSize {
		return nil, fmt.Errorf("%w: vocabulary has %d tokens, network expects %d",
			ErrVocabularyMismatch, len(vocab), dims.InputSize)
	}
	if dims.OutputSize != len(intents) {
		l.Warnf(context.Background(), "%s: network has %d outputs for %d intents, out-of-range predictions will use the fallback intent",
			LogPrefixNew, dims.OutputSize, len(intents))
	}

	index := make(map[string]int, len(vocab))
	for i, tok := range vocab {
		index[tok] = i
	}

	c := &Classifier{
		net:     net,
		vocab:   vocab,
		index:   index,
		intents: intents,
		picker:  random.New(),
		l:       l,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BuildVocabulary returns the sorted distinct tokens of every pattern.
func BuildVocabulary(intents []model.Intent) []string {
	all := make(lexical.TokenSet)
	for _, it := range intents {
		all.Add(lexical.Union(it.Patterns))
	}
	return all.Sorted()
}

// Vocabulary returns the encoder's feature order.
func (c *Classifier) Vocabulary() []string {
	return c.vocab
}
