package resolver

import (
	"context"
	"fmt"

	"gems-assistant/internal/resolver/dynamic"
	"gems-assistant/internal/resolver/neural"
	"gems-assistant/internal/resolver/rulebased"
	"gems-assistant/pkg/log"
	"gems-assistant/pkg/random"
)

// BuildConfig selects and locates the static engine.
type BuildConfig struct {
	IntentsPath string
	UseNeural   bool
	Neural      neural.Config
	// Rules overrides rulebased.DefaultRules when non-nil.
	Rules  []rulebased.Rule
	Picker random.Picker
}

// Build constructs the static engine and the Orchestrator. The neural engine
// is attempted once; if it cannot be built the rule router is used for the
// rest of the process. Failing to build the rule router is fatal.
func Build(ctx context.Context, cfg BuildConfig, store dynamic.Lister, l log.Logger, opts ...Option) (*Orchestrator, error) {
	picker := cfg.Picker
	if picker == nil {
		picker = random.New()
	}

	dyn := dynamic.New(store, l, dynamic.WithPicker(picker))

	if cfg.UseNeural {
		ncfg := cfg.Neural
		if ncfg.IntentsPath == "" {
			ncfg.IntentsPath = cfg.IntentsPath
		}
		clf, err := neural.New(ncfg, l, neural.WithPicker(picker))
		if err == nil {
			l.Infof(ctx, "%s: using neural engine (%d vocabulary tokens)", LogPrefixBuild, len(clf.Vocabulary()))
			return New(dyn, clf, ModeStaticNeural, l, opts...), nil
		}
		l.Warnf(ctx, "%s: neural engine unavailable, falling back to rules: %v", LogPrefixBuild, err)
	}

	ropts := []rulebased.Option{rulebased.WithPicker(picker)}
	if cfg.Rules != nil {
		ropts = append(ropts, rulebased.WithRules(cfg.Rules))
	}
	router, err := rulebased.NewFromFile(cfg.IntentsPath, l, ropts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixBuild, err)
	}

	l.Infof(ctx, "%s: using rule-based engine (%d intents)", LogPrefixBuild, len(router.Intents()))
	return New(dyn, router, ModeStaticRules, l, opts...), nil
}
