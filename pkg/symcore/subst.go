package symcore

import (
	"fmt"
	"strings"
)

// isShieldPattern reports whether t is exactly /![X]: the one-argument
// application whose head is the reserved symbol "/!".
func isShieldPattern(t *Term) bool {
	return t.IsApp() && t.Head.IsSym("/!") && len(t.Args) == 1
}

// isUnboundPattern reports whether t is exactly Unbound[Str "name"].
func isUnboundPattern(t *Term) bool {
	return t.IsApp() && t.Head.IsSym("Unbound") && len(t.Args) == 1 && t.Args[0].IsString()
}

// Subst instantiates template under env, producing a ground term (§4.3).
// Failure (an unbound variable, a wildcard on the right-hand side, a rest
// variable bound to the wrong shape, or an unrecognized node) is a hard
// *SubstError, never a silent miss — per §7, a substitution failure always
// indicates a bug in the rule set.
func Subst(template *Term, env Env) (*Term, error) {
	frag, err := substFrag(template, env)
	if err != nil {
		return nil, err
	}
	result, ok := frag.(*Term)
	if !ok {
		return nil, newSubstError(template, "template substituted to a rest-variable sequence at the top level, not a single term")
	}
	return result, nil
}

// substFrag is the recursive worker behind Subst. It returns a Frag because
// a VarRest substitutes to a Splice that only its immediate enclosing
// MakeApp call is meant to flatten.
func substFrag(t *Term, env Env) (Frag, error) {
	if t == nil {
		return nil, newSubstError(t, "nil template node")
	}

	switch {
	case isShieldPattern(t):
		// /![X] is a transparent shield: X is returned exactly as written,
		// with no further substitution of its contents.
		return t.Args[0], nil

	case isUnboundPattern(t):
		name := t.Args[0].Str
		if name == "_" {
			return nil, newSubstError(t, "Unbound name must not be \"_\"")
		}
		if strings.HasSuffix(name, "...") {
			stripped := strings.TrimSuffix(name, "...")
			return App(Sym("VarRest"), Str(stripped)), nil
		}
		return App(Sym("Var"), Str(name)), nil

	case isVarPattern(t):
		name := t.Args[0].Str
		if name == "_" {
			return nil, newSubstError(t, "wildcard \"_\" cannot be substituted on the right-hand side")
		}
		b, ok := env.Lookup(name)
		if !ok {
			return nil, newSubstError(t, fmt.Sprintf("unbound variable %q", name))
		}
		if b.IsSeq {
			return nil, newSubstError(t, fmt.Sprintf("variable %q is bound to a sequence, not a single term", name))
		}
		return b.One, nil

	case isVarRestPattern(t):
		name := t.Args[0].Str
		if name == "_" {
			return nil, newSubstError(t, "wildcard \"_\" cannot be substituted on the right-hand side")
		}
		b, ok := env.Lookup(name)
		if !ok || !b.IsSeq {
			return nil, newSubstError(t, fmt.Sprintf("rest variable %q is not bound to a sequence", name))
		}
		return NewSplice(b.Seq...), nil
	}

	switch t.Kind {
	case KindNumber, KindString, KindSymbol:
		return t, nil

	case KindApp:
		headFrag, err := substFrag(t.Head, env)
		if err != nil {
			return nil, err
		}
		headTerm, ok := headFrag.(*Term)
		if !ok {
			return nil, newSubstError(t, "a rest variable cannot substitute into head position")
		}

		argFrags := make([]Frag, 0, len(t.Args))
		for _, a := range t.Args {
			af, err := substFrag(a, env)
			if err != nil {
				return nil, err
			}
			argFrags = append(argFrags, af)
		}
		return MakeApp(headTerm, argFrags...), nil

	default:
		return nil, newSubstError(t, "unknown node variant")
	}
}
