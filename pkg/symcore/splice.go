package symcore

// Splice is the internal flattening marker described by C2. It is never a
// Term and must never appear in a normal form. It is produced by the
// Splat/"...!" primitive (fold.go), by substituting a rest variable
// (subst.go), and by decoding a nested "Splice" node (codec.go); each
// producer hands its Splice directly to MakeApp, which flattens it into
// the surrounding argument vector at construction time.
type Splice struct {
	Items []*Term
}

// NewSplice wraps a term vector as a Splice.
func NewSplice(items ...*Term) *Splice {
	cp := make([]*Term, len(items))
	copy(cp, items)
	return &Splice{Items: cp}
}

// containsSplice reports whether frags (destined for MakeApp) includes at
// least one Splice, which lets a caller skip MakeApp's flattening pass
// when there is nothing to flatten. No code in this package calls it.
func containsSplice(frags []Frag) bool {
	for _, f := range frags {
		if _, ok := f.(*Splice); ok {
			return true
		}
	}
	return false
}
