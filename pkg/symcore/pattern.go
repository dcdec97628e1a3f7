package symcore

// Match decides whether pattern matches subject under env, returning an
// updated environment on success. The input environment is never mutated;
// on failure the original env is returned unchanged together with false
// (§4.2).
func Match(pattern, subject *Term, env Env) (Env, bool) {
	if pattern == nil || subject == nil {
		return env, false
	}

	if isVarPattern(pattern) {
		name := pattern.Args[0].Str
		if name == "_" {
			return env, true
		}
		if b, ok := env.Lookup(name); ok {
			if b.IsSeq {
				// name was already captured as a rest variable elsewhere in
				// the same pattern; using it as a single variable here is
				// inconsistent, so the match fails.
				return env, false
			}
			return env, DeepEq(b.One, subject)
		}
		return env.BindOne(name, subject), true
	}

	switch pattern.Kind {
	case KindNumber, KindString, KindSymbol:
		return env, DeepEq(pattern, subject)
	case KindApp:
		if !subject.IsApp() {
			return env, false
		}
		afterHead, ok := Match(pattern.Head, subject.Head, env)
		if !ok {
			return env, false
		}
		result, ok := matchArgs(pattern.Args, subject.Args, afterHead)
		if !ok {
			return env, false
		}
		return result, true
	default:
		return env, false
	}
}

// isVarPattern reports whether t is exactly Var[Str "name"].
func isVarPattern(t *Term) bool {
	return t.IsApp() && t.Head.IsSym("Var") && len(t.Args) == 1 && t.Args[0].IsString()
}

// isVarRestPattern reports whether t is exactly VarRest[Str "name"].
func isVarRestPattern(t *Term) bool {
	return t.IsApp() && t.Head.IsSym("VarRest") && len(t.Args) == 1 && t.Args[0].IsString()
}

// matchArgs matches a pattern argument vector against a subject argument
// vector, implementing the fast (no rest-variable) path and the
// backtracking rest-variable path described in §4.2.1.
func matchArgs(p, s []*Term, env Env) (Env, bool) {
	restIdx := -1
	for i, pt := range p {
		if isVarRestPattern(pt) {
			restIdx = i
			break
		}
	}

	if restIdx < 0 {
		if len(p) != len(s) {
			return env, false
		}
		cur := env
		for i := range p {
			next, ok := Match(p[i], s[i], cur)
			if !ok {
				return env, false
			}
			cur = next
		}
		return cur, true
	}

	prefix := p[:restIdx]
	restPat := p[restIdx]
	suffix := p[restIdx+1:]

	minTail := countNonRest(suffix)
	lenPrefix := len(prefix)
	if len(s) < lenPrefix+minTail {
		return env, false
	}

	cur := env
	for i := range prefix {
		next, ok := Match(prefix[i], s[i], cur)
		if !ok {
			return env, false
		}
		cur = next
	}

	name := restPat.Args[0].Str
	maxTake := len(s) - lenPrefix - minTail

	// Smallest-first: this iteration order is part of the contract (P7),
	// the tie-break for ambiguous matches.
	for take := 0; take <= maxTake; take++ {
		candidate := s[lenPrefix : lenPrefix+take]

		tryEnv := cur
		consistent := true

		if name == "_" {
			// wildcard rest variable: never bound, never checked.
		} else if b, bound := cur.Lookup(name); bound {
			if !b.IsSeq || !seqEq(b.Seq, candidate) {
				consistent = false
			}
		} else {
			tryEnv = cur.BindSeq(name, candidate)
		}

		if !consistent {
			continue
		}

		remainder := s[lenPrefix+take:]
		if result, ok := matchArgs(suffix, remainder, tryEnv); ok {
			return result, true
		}
	}

	return env, false
}

// countNonRest counts the elements of ts that are not themselves rest
// variables. Any nested rest variable in ts can consume zero elements, so
// this count is the correct minimum length ts can demand from a subject
// tail.
func countNonRest(ts []*Term) int {
	n := 0
	for _, t := range ts {
		if !isVarRestPattern(t) {
			n++
		}
	}
	return n
}
