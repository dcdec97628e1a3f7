package symcore

import "testing"

func varP(name string) *Term     { return App(Sym("Var"), Str(name)) }
func varRestP(name string) *Term { return App(Sym("VarRest"), Str(name)) }

func TestMatchLiterals(t *testing.T) {
	tests := []struct {
		name    string
		pattern *Term
		subject *Term
		want    bool
	}{
		{"equal numbers", Num(1), Num(1), true},
		{"different numbers", Num(1), Num(2), false},
		{"equal symbols", Sym("X"), Sym("X"), true},
		{"equal apps", App(Sym("F"), Num(1)), App(Sym("F"), Num(1)), true},
		{"mismatched arity", App(Sym("F"), Num(1)), App(Sym("F"), Num(1), Num(2)), false},
		{"mismatched head", App(Sym("F"), Num(1)), App(Sym("G"), Num(1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Match(tt.pattern, tt.subject, NewEnv())
			if ok != tt.want {
				t.Errorf("Match(%s, %s) ok = %v, want %v", tt.pattern, tt.subject, ok, tt.want)
			}
		})
	}
}

func TestMatchVarBindsAndRechecks(t *testing.T) {
	env, ok := Match(App(Sym("F"), varP("x"), varP("x")), App(Sym("F"), Num(1), Num(1)), NewEnv())
	if !ok {
		t.Fatalf("expected a consistent repeated-variable match to succeed")
	}
	bound, ok := env.LookupOne("x")
	if !ok || !DeepEq(bound, Num(1)) {
		t.Errorf("expected x bound to 1, got %v (ok=%v)", bound, ok)
	}

	_, ok = Match(App(Sym("F"), varP("x"), varP("x")), App(Sym("F"), Num(1), Num(2)), NewEnv())
	if ok {
		t.Errorf("expected inconsistent repeated-variable match to fail")
	}
}

func TestMatchWildcardNeverBinds(t *testing.T) {
	env, ok := Match(varP("_"), Num(42), NewEnv())
	if !ok {
		t.Fatalf("expected wildcard to match anything")
	}
	if env.Len() != 0 {
		t.Errorf("expected wildcard not to bind, env has %d bindings", env.Len())
	}
}

func TestMatchVarRestSmallestFirst(t *testing.T) {
	// F[VarRest["xs"], Var["last"]] against F[1,2,3]: the smallest
	// consistent split binds xs to [] only if last can match 3 with xs=[]
	// and the suffix [] matches nothing else — here the suffix is a single
	// Var, so xs must take everything except the final element.
	pattern := App(Sym("F"), varRestP("xs"), varP("last"))
	subject := App(Sym("F"), Num(1), Num(2), Num(3))

	env, ok := Match(pattern, subject, NewEnv())
	if !ok {
		t.Fatalf("expected match to succeed")
	}
	xs, ok := env.LookupSeq("xs")
	if !ok {
		t.Fatalf("expected xs to be bound to a sequence")
	}
	want := []*Term{Num(1), Num(2)}
	if !seqEq(xs, want) {
		t.Errorf("xs = %v, want %v", xs, want)
	}
	last, ok := env.LookupOne("last")
	if !ok || !DeepEq(last, Num(3)) {
		t.Errorf("last = %v, want 3", last)
	}
}

func TestMatchVarRestPrefersSmallestTake(t *testing.T) {
	// F[VarRest["xs"], VarRest["ys"]] against F[1,2,3]: both rest variables
	// could legally consume different amounts, but the smallest-first
	// tie-break means xs takes 0 elements before it takes any (P7).
	pattern := App(Sym("F"), varRestP("xs"), varRestP("ys"))
	subject := App(Sym("F"), Num(1), Num(2), Num(3))

	env, ok := Match(pattern, subject, NewEnv())
	if !ok {
		t.Fatalf("expected match to succeed")
	}
	xs, _ := env.LookupSeq("xs")
	ys, _ := env.LookupSeq("ys")
	if len(xs) != 0 {
		t.Errorf("expected xs to take 0 elements first, got %v", xs)
	}
	want := []*Term{Num(1), Num(2), Num(3)}
	if !seqEq(ys, want) {
		t.Errorf("ys = %v, want %v", ys, want)
	}
}

func TestMatchVarRestWildcardNeverBinds(t *testing.T) {
	env, ok := Match(App(Sym("F"), varRestP("_"), varP("last")), App(Sym("F"), Num(1), Num(2), Num(3)), NewEnv())
	if !ok {
		t.Fatalf("expected match to succeed")
	}
	if env.Len() != 1 {
		t.Errorf("expected only 'last' bound, env has %d bindings", env.Len())
	}
}

func TestMatchVarRestAgainstRepeatedOccurrence(t *testing.T) {
	pattern := App(Sym("F"), varRestP("xs"), varRestP("xs"))
	ok2 := func(subject *Term) bool {
		_, ok := Match(pattern, subject, NewEnv())
		return ok
	}
	if !ok2(App(Sym("F"), Num(1), Num(2), Num(1), Num(2))) {
		t.Errorf("expected repeated rest-variable to match its own value twice")
	}
	if ok2(App(Sym("F"), Num(1), Num(2), Num(3))) {
		t.Errorf("expected repeated rest-variable to reject an inconsistent split")
	}
}
