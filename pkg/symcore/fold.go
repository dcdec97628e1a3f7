package symcore

import (
	"math/rand"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-hclog"
)

// builtinFn is the shape every primitive in the folder's builtin table
// implements: given the already-folded, already-flattened argument vector
// of an application, it either returns the folded literal and true, or
// returns (nil, false) to mean "cannot fold" (§4.4) — never an error.
type builtinFn func(ctx *foldCtx, args []*Term) (*Term, bool)

// builtinTable maps every builtin name and alias to its implementation.
// Each fold_*.go file populates it from its own init().
var builtinTable = map[string]builtinFn{}

func registerBuiltin(fn builtinFn, names ...string) {
	for _, n := range names {
		builtinTable[n] = fn
	}
}

// freshIDSource is the injected monotonic source behind the FreshId
// primitive (§4.4, §9): a fixed per-instance monotonic prefix captured once
// at construction plus an atomically incrementing counter, producing names
// of the form "id_<mono>_<counter>" that are unique for the lifetime of the
// source.
type freshIDSource struct {
	mono    int64
	counter int64
}

func newFreshIDSource() *freshIDSource {
	return &freshIDSource{mono: time.Now().UnixNano()}
}

func (f *freshIDSource) next() string {
	n := atomic.AddInt64(&f.counter, 1)
	return "id_" + strconv.FormatInt(f.mono, 10) + "_" + strconv.FormatInt(n, 10)
}

// foldCtx carries the primitive folder's impure collaborators: the
// FreshId/Random sources (injectable so tests can make folding
// deterministic, per the teacher's convention of constructor-supplied
// randomness rather than package-level globals) and the logger/metrics
// sinks Debug and the engine's instrumentation report through.
type foldCtx struct {
	fresh   *freshIDSource
	rnd     *rand.Rand
	logger  hclog.Logger
	metrics *metricsSink
}

var (
	defaultFreshSource = newFreshIDSource()
	defaultRandSource  = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func defaultFoldCtx() *foldCtx {
	return &foldCtx{
		fresh:  defaultFreshSource,
		rnd:    defaultRandSource,
		logger: defaultLogger(),
	}
}

// Fold pre-order-folds t: it recursively folds the head and each argument,
// flattens any Splice produced along the way, and then attempts to fold the
// resulting application if its head names a builtin not present in
// skipNames (§4.4). skipNames is the folder's single policy parameter. The
// meta-rule pass does not pass skipNames; it turns folding off entirely
// with skipPrims=true.
func Fold(t *Term, skipNames ...string) *Term {
	return foldTerm(t, toSkipSet(skipNames), defaultFoldCtx())
}

func toSkipSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// foldTerm is Fold's entry point once a skip set and collaborators are
// resolved (shared by the free function and by Engine.Fold).
func foldTerm(t *Term, skip map[string]bool, ctx *foldCtx) *Term {
	frag := foldFrag(t, skip, ctx)
	if term, ok := frag.(*Term); ok {
		return term
	}
	// frag is a *Splice: Splat/"...!" was folded with nothing above it to
	// flatten into. There is no argument vector at the root to receive it,
	// so the fold is left undone at this node (consistent with "no failure
	// modes beyond out-of-memory": this is simply a no-op, not an error).
	return t
}

// foldFrag folds t and returns a Frag so that a Splat application folds to
// a Splice the immediately enclosing MakeApp call can flatten, exactly the
// way substFrag handles VarRest substitution.
func foldFrag(t *Term, skip map[string]bool, ctx *foldCtx) Frag {
	if t == nil {
		return t
	}

	switch t.Kind {
	case KindNumber, KindString, KindSymbol:
		return t

	case KindApp:
		headFrag := foldFrag(t.Head, skip, ctx)
		headTerm, ok := headFrag.(*Term)
		if !ok {
			// A Splice folded in head position has nothing to flatten into;
			// keep the original head so the application still type-checks
			// as a Term, and let a later pass retry.
			headTerm = t.Head
		}

		argFrags := make([]Frag, 0, len(t.Args))
		for _, a := range t.Args {
			argFrags = append(argFrags, foldFrag(a, skip, ctx))
		}
		rebuilt := MakeApp(headTerm, argFrags...)

		if !rebuilt.Head.IsSymbol() {
			return rebuilt
		}
		name := rebuilt.Head.Str

		if name == "Splat" || name == "...!" {
			return NewSplice(rebuilt.Args...)
		}

		if skip[name] {
			return rebuilt
		}
		fn, ok := builtinTable[name]
		if !ok {
			return rebuilt
		}

		if ctx.metrics != nil {
			ctx.metrics.foldAttempt(name)
		}
		folded, ok := fn(ctx, rebuilt.Args)
		if !ok {
			return rebuilt
		}
		if ctx.metrics != nil {
			ctx.metrics.foldSuccess(name)
		}
		return folded

	default:
		return t
	}
}
