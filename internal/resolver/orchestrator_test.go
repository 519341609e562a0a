package resolver_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gems-assistant/internal/catalog"
	"gems-assistant/internal/model"
	"gems-assistant/internal/resolver"
	"gems-assistant/internal/resolver/neural"
	"gems-assistant/internal/resolver/reply"
	"gems-assistant/pkg/log"
	"gems-assistant/pkg/nn"
	"gems-assistant/pkg/nn/nntest"
	"gems-assistant/pkg/random"
)

type fakeStore struct {
	intents []model.Intent
	err     error
}

func (f *fakeStore) ListIntents(ctx context.Context) ([]model.Intent, error) {
	return f.intents, f.err
}

var staticIntents = []model.Intent{
	{Tag: "greeting", Patterns: []string{"hi", "hello"}, Responses: []string{"Hello from static"}},
	{Tag: "goodbye", Patterns: []string{"bye", "see you"}, Responses: []string{"Bye from static"}},
	{Tag: "fallback", Responses: []string{"Static fallback"}},
}

func writeIntents(t *testing.T, dir string, intents []model.Intent) string {
	t.Helper()
	data, err := json.Marshal(catalog.Document{Intents: intents})
	require.NoError(t, err)
	path := filepath.Join(dir, "intents.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func buildRules(t *testing.T, store *fakeStore, opts ...resolver.Option) *resolver.Orchestrator {
	t.Helper()
	path := writeIntents(t, t.TempDir(), staticIntents)
	o, err := resolver.Build(context.Background(), resolver.BuildConfig{
		IntentsPath: path,
		Picker:      random.Fixed(0),
	}, store, log.NewNop(), opts...)
	require.NoError(t, err)
	return o
}

func TestResolve_EmptyCatalogUsesStatic(t *testing.T) {
	ctx := context.Background()
	o := buildRules(t, &fakeStore{})

	require.Equal(t, resolver.ModeStaticRules, o.Mode())

	res := o.Resolve(ctx, "hello there")
	assert.Equal(t, "Hello from static", res.Response)
	assert.Equal(t, resolver.PathRules, res.Path)

	assert.Equal(t, "Bye from static", o.Respond(ctx, "ok bye"))
	assert.Equal(t, reply.EmptyMessagePrompt, o.Respond(ctx, "  "))
}

func TestResolve_DynamicCatalogSupersedesStatic(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{intents: []model.Intent{
		{Tag: "fees", Patterns: []string{"tuition fees"}, Responses: []string{"Fees are 1000."}},
	}}
	o := buildRules(t, store)

	res := o.Resolve(ctx, "tuition fees please")
	assert.Equal(t, "Fees are 1000.", res.Response)
	assert.Equal(t, resolver.PathDynamic, res.Path)

	// "hello" would match a static rule, but a non-empty dynamic catalog
	// answers every message.
	res = o.Resolve(ctx, "hello")
	assert.Equal(t, reply.Apology, res.Response)
	assert.Equal(t, resolver.PathDynamic, res.Path)
}

func TestResolve_StoreErrorUsesStatic(t *testing.T) {
	ctx := context.Background()
	o := buildRules(t, &fakeStore{err: errors.New("database is locked")})

	res := o.Resolve(ctx, "hi")
	assert.Equal(t, "Hello from static", res.Response)
	assert.Equal(t, resolver.PathRules, res.Path)
}

func TestResolve_Metrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m, err := resolver.NewMetrics(reg)
	require.NoError(t, err)

	store := &fakeStore{err: errors.New("boom")}
	o := buildRules(t, store, resolver.WithMetrics(m))

	o.Respond(ctx, "hi")
	o.Respond(ctx, "bye")

	store.err = nil
	store.intents = []model.Intent{{Tag: "x", Patterns: []string{"x"}, Responses: []string{"y"}}}
	o.Respond(ctx, "x")

	count, err := testutil.GatherAndCount(reg, "gems_resolver_resolutions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = resolver.NewMetrics(reg)
	assert.Error(t, err, "registering twice should fail")
}

func TestBuild_MissingIntentsFileIsFatal(t *testing.T) {
	_, err := resolver.Build(context.Background(), resolver.BuildConfig{
		IntentsPath: filepath.Join(t.TempDir(), "missing.json"),
	}, &fakeStore{}, log.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrSourceMissing)
}

func TestBuild_NeuralDegradesToRules(t *testing.T) {
	dir := t.TempDir()
	path := writeIntents(t, dir, staticIntents)

	o, err := resolver.Build(context.Background(), resolver.BuildConfig{
		IntentsPath: path,
		UseNeural:   true,
		Neural: neural.Config{
			ModelPath:      filepath.Join(dir, "missing_model.json"),
			DimensionsPath: filepath.Join(dir, "missing_dims.json"),
		},
		Picker: random.Fixed(0),
	}, &fakeStore{}, log.NewNop())
	require.NoError(t, err)

	assert.Equal(t, resolver.ModeStaticRules, o.Mode())
	assert.Equal(t, "Hello from static", o.Respond(context.Background(), "hello"))
}

func TestBuild_Neural(t *testing.T) {
	dir := t.TempDir()
	path := writeIntents(t, dir, staticIntents)

	// vocabulary: bye(0) hello(1) hi(2) see(3) you(4)
	dims := nn.Dimensions{InputSize: 5, OutputSize: 3}
	state := nntest.Routing(5, 3, map[int]int{0: 1, 1: 0, 2: 0, 3: 1, 4: 1}, []float64{0, 0, 0.5})
	weights, dimsPath := nntest.WriteArtifacts(t, dir, dims, state)

	o, err := resolver.Build(context.Background(), resolver.BuildConfig{
		IntentsPath: path,
		UseNeural:   true,
		Neural:      neural.Config{ModelPath: weights, DimensionsPath: dimsPath},
		Picker:      random.Fixed(0),
	}, &fakeStore{}, log.NewNop())
	require.NoError(t, err)
	require.Equal(t, resolver.ModeStaticNeural, o.Mode())

	res := o.Resolve(context.Background(), "see you")
	assert.Equal(t, "Bye from static", res.Response)
	assert.Equal(t, resolver.PathNeural, res.Path)

	assert.Equal(t, "Static fallback", o.Respond(context.Background(), "xyzzy"))
}
