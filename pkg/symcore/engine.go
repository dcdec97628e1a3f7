package symcore

import (
	"math/rand"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Engine is the configured façade over the free functions in this package
// (§4–§5): it owns the default step budget, the skipPrims policy, and the
// impure collaborators (logger, metrics sink, FreshId/Random sources) so
// callers don't have to thread them through every call. The zero value is
// not usable; construct with NewEngine.
type Engine struct {
	maxSteps  int
	skipPrims bool
	logger    hclog.Logger
	metrics   *metricsSink
	ctx       *foldCtx
}

// Option configures an Engine. Engines are built with functional options,
// following this package's constructor convention.
type Option func(*Engine)

// WithMaxSteps sets the rewrite step budget Normalize enforces (P9).
func WithMaxSteps(n int) Option {
	return func(e *Engine) { e.maxSteps = n }
}

// WithSkipPrims sets whether Normalize folds primitives between rewrite
// steps. Engines built for ordinary program execution want this false (the
// default); the meta-rule pass wants it true.
func WithSkipPrims(skip bool) Option {
	return func(e *Engine) { e.skipPrims = skip }
}

// WithLogger sets the structured logger Debug and Dispatch log through.
func WithLogger(l hclog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics sets the counters sink rewrite steps, fold attempts, and
// non-termination events report through.
func WithMetrics(m *metricsSink) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithFreshIDSeed fixes FreshId's monotonic prefix, making fold output
// reproducible in tests.
func WithFreshIDSeed(mono int64) Option {
	return func(e *Engine) { e.ctx.fresh = &freshIDSource{mono: mono} }
}

// WithRandSeed fixes Random's source, making fold output reproducible in
// tests.
func WithRandSeed(seed int64) Option {
	return func(e *Engine) { e.ctx.rnd = rand.New(rand.NewSource(seed)) }
}

// NewEngine builds an Engine with sane defaults: a 10,000-step budget,
// interleaved primitive folding, a null logger, and no metrics sink, each
// overridable via Option.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		maxSteps:  10000,
		skipPrims: false,
		logger:    defaultLogger(),
		ctx: &foldCtx{
			fresh: newFreshIDSource(),
			rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.ctx.logger = e.logger
	e.ctx.metrics = e.metrics
	return e
}

// Fold runs the primitive folder over t using this Engine's collaborators.
func (e *Engine) Fold(t *Term, skipNames ...string) *Term {
	return foldTerm(t, toSkipSet(skipNames), e.ctx)
}

// ApplyOnce performs a single outermost-first rewrite step against rules.
func (e *Engine) ApplyOnce(t *Term, rules []*Rule) (*Term, string, []int, bool, error) {
	return applyOnce(t, rules, e.ctx)
}

// Normalize rewrites t to a fixed point using this Engine's step budget
// and skipPrims policy.
func (e *Engine) Normalize(t *Term, rules []*Rule) (*Term, error) {
	result, _, err := normalizeWith(t, rules, e.maxSteps, e.skipPrims, e.ctx, false)
	return result, err
}

// NormalizeWithTrace is Normalize with a recorded trace of every step.
func (e *Engine) NormalizeWithTrace(t *Term, rules []*Rule) (*Term, []TraceStep, error) {
	return normalizeWith(t, rules, e.maxSteps, e.skipPrims, e.ctx, true)
}

// NormalizeProgram normalizes a Program[...] section's own arguments
// against rules using this Engine's step budget and skipPrims policy.
func (e *Engine) NormalizeProgram(program *Term, rules []*Rule) (*Term, error) {
	return NormalizeProgram(program, rules, e.maxSteps, e.skipPrims)
}

// NormalizeProgramWithTrace is NormalizeProgram with a recorded trace of
// every step taken across all of program's arguments.
func (e *Engine) NormalizeProgramWithTrace(program *Term, rules []*Rule) (*Term, []TraceStep, error) {
	return NormalizeProgramWithTrace(program, rules, e.maxSteps, e.skipPrims)
}

// ApplyRuleRules performs the meta-rule pass (C7) against universe using
// this Engine's step budget.
func (e *Engine) ApplyRuleRules(universe *Term) (*Term, error) {
	return ApplyRuleRules(universe, e.maxSteps)
}

// Dispatch performs one external-action dispatch (C8) against universe
// using this Engine's step budget, skipPrims policy, and logger.
func (e *Engine) Dispatch(universe, action *Term) (*Term, error) {
	return Dispatch(universe, action, e.maxSteps, e.skipPrims, e.logger)
}

// Logger returns the Engine's configured logger.
func (e *Engine) Logger() hclog.Logger { return e.logger }
