package symcore

import "testing"

func TestEnvBindOneAndLookup(t *testing.T) {
	env := NewEnv().BindOne("x", Num(1))
	got, ok := env.LookupOne("x")
	if !ok || !DeepEq(got, Num(1)) {
		t.Errorf("LookupOne(x) = %v, %v; want 1, true", got, ok)
	}
	if _, ok := env.LookupOne("y"); ok {
		t.Errorf("expected y to be unbound")
	}
}

func TestEnvBindSeqAndLookup(t *testing.T) {
	env := NewEnv().BindSeq("xs", []*Term{Num(1), Num(2)})
	got, ok := env.LookupSeq("xs")
	if !ok || !seqEq(got, []*Term{Num(1), Num(2)}) {
		t.Errorf("LookupSeq(xs) = %v, %v", got, ok)
	}
	if _, ok := env.LookupOne("xs"); ok {
		t.Errorf("expected LookupOne to reject a sequence binding")
	}
}

func TestEnvIsPersistent(t *testing.T) {
	base := NewEnv().BindOne("x", Num(1))
	extended := base.BindOne("y", Num(2))

	if base.Len() != 1 {
		t.Errorf("expected the base environment unaffected by extending it, len=%d", base.Len())
	}
	if extended.Len() != 2 {
		t.Errorf("expected the extended environment to have 2 bindings, got %d", extended.Len())
	}
	if _, ok := base.LookupOne("y"); ok {
		t.Errorf("expected base environment not to see y")
	}
}

func TestEnvBindSeqCopiesInput(t *testing.T) {
	seq := []*Term{Num(1), Num(2)}
	env := NewEnv().BindSeq("xs", seq)
	seq[0] = Num(999)

	got, _ := env.LookupSeq("xs")
	if !DeepEq(got[0], Num(1)) {
		t.Errorf("expected BindSeq to copy its input, got %s", got[0])
	}
}
