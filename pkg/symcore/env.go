package symcore

import (
	iradix "github.com/hashicorp/go-immutable-radix/v2"
)

// Binding is the value an Env maps a variable name to: either a single term
// (for a Var) or a term sequence (for a VarRest). Exactly one of the two
// forms is meaningful, discriminated by IsSeq.
type Binding struct {
	IsSeq bool
	One   *Term
	Seq   []*Term
}

// Env is the pattern matcher's binding environment (§4.2): a mapping from
// variable names to either a term or a term-vector. Env is a persistent,
// structurally-shared value built on a hashicorp/go-immutable-radix tree —
// every Bind* method returns a new Env, and the receiver is left untouched,
// satisfying the matcher's "the input environment is not mutated" contract
// without a defensive copy on every call.
type Env struct {
	tree *iradix.Tree[Binding]
}

// NewEnv returns the empty environment, written ∅ in the specification.
func NewEnv() Env {
	return Env{tree: iradix.New[Binding]()}
}

func (e Env) treeOrEmpty() *iradix.Tree[Binding] {
	if e.tree == nil {
		return iradix.New[Binding]()
	}
	return e.tree
}

// Lookup returns the binding for name, if any.
func (e Env) Lookup(name string) (Binding, bool) {
	if e.tree == nil {
		return Binding{}, false
	}
	return e.tree.Get([]byte(name))
}

// LookupOne returns the single-term binding for name, if name is bound and
// bound to a single term (not a sequence).
func (e Env) LookupOne(name string) (*Term, bool) {
	b, ok := e.Lookup(name)
	if !ok || b.IsSeq {
		return nil, false
	}
	return b.One, true
}

// LookupSeq returns the sequence binding for name, if name is bound and
// bound to a sequence (not a single term).
func (e Env) LookupSeq(name string) ([]*Term, bool) {
	b, ok := e.Lookup(name)
	if !ok || !b.IsSeq {
		return nil, false
	}
	return b.Seq, true
}

// BindOne returns a new environment with name bound to term.
func (e Env) BindOne(name string, term *Term) Env {
	newTree, _, _ := e.treeOrEmpty().Insert([]byte(name), Binding{One: term})
	return Env{tree: newTree}
}

// BindSeq returns a new environment with name bound to the term sequence
// seq (used for a VarRest's captured slice).
func (e Env) BindSeq(name string, seq []*Term) Env {
	cp := make([]*Term, len(seq))
	copy(cp, seq)
	newTree, _, _ := e.treeOrEmpty().Insert([]byte(name), Binding{IsSeq: true, Seq: cp})
	return Env{tree: newTree}
}

// Len reports the number of bound names.
func (e Env) Len() int {
	if e.tree == nil {
		return 0
	}
	return e.tree.Len()
}
