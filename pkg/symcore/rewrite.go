package symcore

// TraceStep records one rewrite step for NormalizeWithTrace (§4.5.4): the
// step index, the rule that fired, the path to the rewritten node (head is
// -1, argument i is i), and the term immediately before and after the
// rewrite.
type TraceStep struct {
	Step   int
	Rule   string
	Path   []int
	Before *Term
	After  *Term
}

func isTruthy(t *Term) bool {
	return t != nil && t.IsSym("True")
}

// tryNode attempts every rule in rules, in priority order, against node
// itself (not its subterms). It returns the first rule whose pattern
// matches, whose guard (if any) folds to True, and whose output differs
// from node unless the rule is an identity rewrite (see below). A guard or right-hand
// side substitution failure is a hard error (§7): it is never treated as
// "this rule doesn't apply".
func tryNode(node *Term, rules []*Rule, ctx *foldCtx) (rhs *Term, name string, matched bool, err error) {
	for _, r := range rules {
		env, ok := Match(r.LHS, node, NewEnv())
		if !ok {
			continue
		}

		if r.Guard != nil {
			gInst, serr := Subst(r.Guard, env)
			if serr != nil {
				return nil, "", false, serr
			}
			gVal := foldTerm(gInst, nil, ctx)
			if !isTruthy(gVal) {
				if ctx.metrics != nil {
					ctx.metrics.guardSkipped(r.Name)
				}
				continue
			}
		}

		out, serr := Subst(r.RHS, env)
		if serr != nil {
			return nil, "", false, serr
		}

		// A rule whose left- and right-hand sides are the same template
		// (P9's R("loop", X, X)) is a deliberate identity rewrite: it must
		// keep firing and counting steps forever even though it never
		// changes the term, so Normalize still raises NonTermination
		// rather than quietly converging. Any other rule is only making
		// progress if its instantiated output actually differs from the
		// node it matched; once such a rule re-matches output it has
		// already stabilized (a meta-rule whose pattern variable happens
		// to also match its own literal right-hand side, for instance),
		// treating that as a counted step would burn the whole step
		// budget on a fixed point instead of recognizing one.
		if !DeepEq(r.LHS, r.RHS) && DeepEq(out, node) {
			continue
		}

		if ctx.metrics != nil {
			ctx.metrics.stepApplied(r.Name)
		}
		return out, r.Name, true, nil
	}
	return nil, "", false, nil
}

// applyOnce is ApplyOnce's worker, threading a shared foldCtx through the
// recursion so a traced or engine-scoped Normalize call observes one
// consistent set of collaborators.
func applyOnce(t *Term, rules []*Rule, ctx *foldCtx) (result *Term, name string, path []int, applied bool, err error) {
	rhs, name, matched, err := tryNode(t, rules, ctx)
	if err != nil {
		return nil, "", nil, false, err
	}
	if matched {
		return rhs, name, nil, true, nil
	}

	if !t.IsApp() {
		return t, "", nil, false, nil
	}

	newHead, hname, hpath, happlied, err := applyOnce(t.Head, rules, ctx)
	if err != nil {
		return nil, "", nil, false, err
	}
	if happlied {
		rebuilt := App(newHead, t.Args...)
		return rebuilt, hname, append([]int{-1}, hpath...), true, nil
	}

	for i, a := range t.Args {
		newArg, aname, apath, aapplied, err := applyOnce(a, rules, ctx)
		if err != nil {
			return nil, "", nil, false, err
		}
		if aapplied {
			newArgs := make([]*Term, len(t.Args))
			copy(newArgs, t.Args)
			newArgs[i] = newArg
			rebuilt := App(t.Head, newArgs...)
			return rebuilt, aname, append([]int{i}, apath...), true, nil
		}
	}

	return t, "", nil, false, nil
}

// ApplyOnce performs a single outermost-first rewrite step (§4.5.2, P6): it
// tries rules at the root before descending into the head, then into each
// argument left to right. It returns the unchanged term and applied=false
// once no rule fires anywhere in t.
func ApplyOnce(t *Term, rules []*Rule) (result *Term, ruleName string, path []int, applied bool, err error) {
	return applyOnce(t, rules, defaultFoldCtx())
}

// Normalize rewrites t to a fixed point (§4.5.3): it interleaves ApplyOnce
// with a full primitive fold after every step (unless skipPrims suppresses
// folding entirely, the policy the meta-rule pass uses so that guard and
// right-hand-side expressions sitting as inert rule data are never
// evaluated), stopping when neither a rule nor a primitive changes the
// term. Exceeding maxSteps rewrite steps raises a *NonTerminationError
// (P9) carrying the term as last observed.
func Normalize(t *Term, rules []*Rule, maxSteps int, skipPrims bool) (*Term, error) {
	result, _, err := normalizeWith(t, rules, maxSteps, skipPrims, defaultFoldCtx(), false)
	return result, err
}

// NormalizeWithTrace is Normalize augmented with a per-step trace of every
// rewrite performed (§4.5.4), for the CLI's trace rendering and for tests
// that assert on rewrite order.
func NormalizeWithTrace(t *Term, rules []*Rule, maxSteps int, skipPrims bool) (*Term, []TraceStep, error) {
	return normalizeWith(t, rules, maxSteps, skipPrims, defaultFoldCtx(), true)
}

func normalizeWith(t *Term, rules []*Rule, maxSteps int, skipPrims bool, ctx *foldCtx, trace bool) (*Term, []TraceStep, error) {
	var steps []TraceStep
	cur := t
	n := 0

	for {
		if !skipPrims {
			cur = foldTerm(cur, nil, ctx)
		}

		rhs, name, path, applied, err := applyOnce(cur, rules, ctx)
		if err != nil {
			return nil, steps, err
		}
		if !applied {
			break
		}

		if n >= maxSteps {
			if ctx.metrics != nil {
				ctx.metrics.nonTermination()
			}
			return cur, steps, &NonTerminationError{MaxSteps: maxSteps, Last: cur}
		}

		n++
		if trace {
			steps = append(steps, TraceStep{Step: n, Rule: name, Path: path, Before: cur, After: rhs})
		}
		cur = rhs
	}

	if !skipPrims {
		cur = foldTerm(cur, nil, ctx)
	}

	return cur, steps, nil
}
