package symcore

import "sort"

// Rule is an extracted rule record: R[name, lhs, rhs, ...rest] with rest's
// optional :guard/:prio metadata (or its legacy positional encoding)
// already parsed out (§3.4, §4.5.1).
type Rule struct {
	Name   string
	LHS    *Term
	RHS    *Term
	Guard  *Term // nil when the rule has no guard
	Prio   float64
	Source *Term // the original R[...] term, kept for tracing/round-tripping
}

// ExtractRules parses a Rules[...] or RuleRules[...] section into an
// ordered, priority-sorted rule list (§4.5.1). Rules are sorted stably by
// descending priority: a higher-priority rule is tried first; rules of
// equal priority keep their source order, exactly the tie-break the
// specification requires (P5).
func ExtractRules(section *Term) ([]*Rule, error) {
	if section == nil || !section.IsApp() {
		return nil, newShapeError("Rules", "section is not an application")
	}

	errs := &shapeErrors{}
	rules := make([]*Rule, 0, len(section.Args))

	for i, entry := range section.Args {
		r, err := parseRule(entry)
		if err != nil {
			errs.add(newShapeError("R[...]", "entry %d: %s", i, err.Error()))
			continue
		}
		rules = append(rules, r)
	}

	if err := errs.errorOrNil(); err != nil {
		return nil, err
	}

	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Prio > rules[j].Prio
	})

	return rules, nil
}

func parseRule(entry *Term) (*Rule, error) {
	if entry == nil || !entry.IsApp() || !entry.Head.IsSym("R") {
		return nil, newShapeError("R[...]", "entry is not an R[...] application")
	}
	if len(entry.Args) < 3 {
		return nil, newShapeError("R[...]", "missing rhs (need at least name, lhs, rhs)")
	}

	name := entry.Args[0]
	if !name.IsString() {
		return nil, newShapeError("R[...]", "rule name must be a String")
	}
	if name.Str == "_" {
		return nil, newShapeError("R[...]", "rule name must not be \"_\"")
	}

	lhs := entry.Args[1]
	rhs := entry.Args[2]
	rest := entry.Args[3:]

	guard, prio := parseRuleMeta(rest)

	return &Rule{
		Name:   name.Str,
		LHS:    lhs,
		RHS:    rhs,
		Guard:  guard,
		Prio:   prio,
		Source: entry,
	}, nil
}

// parseRuleMeta parses rest's optional metadata (§3.4): the named-keyword
// encoding (":guard" term, ":prio" Number, in any order) if any keyword is
// present, otherwise the legacy positional encoding (a trailing Number is
// priority; a trailing non-Number is guard, optionally followed by a
// priority Number). Mixing the two encodings within one rule is undefined
// by the specification; this parser prefers the keyword encoding whenever
// any keyword token appears.
func parseRuleMeta(rest []*Term) (guard *Term, prio float64) {
	hasKeyword := false
	for _, t := range rest {
		if t.IsSym(":guard") || t.IsSym(":prio") {
			hasKeyword = true
			break
		}
	}

	if hasKeyword {
		for i := 0; i < len(rest); i++ {
			switch {
			case rest[i].IsSym(":guard") && i+1 < len(rest):
				guard = rest[i+1]
				i++
			case rest[i].IsSym(":prio") && i+1 < len(rest) && rest[i+1].IsNumber():
				prio = rest[i+1].Num
				i++
			}
		}
		return guard, prio
	}

	switch len(rest) {
	case 0:
		return nil, 0
	case 1:
		if rest[0].IsNumber() {
			return nil, rest[0].Num
		}
		return rest[0], 0
	default:
		if rest[0].IsNumber() {
			return nil, rest[0].Num
		}
		guard = rest[0]
		if rest[1].IsNumber() {
			prio = rest[1].Num
		}
		return guard, prio
	}
}
