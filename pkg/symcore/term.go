package symcore

import (
	"strconv"
	"strings"
)

// Kind discriminates the four Term variants described by the expression
// algebra. Every Term carries exactly one Kind for its lifetime.
type Kind uint8

const (
	// KindNumber is a finite double-precision real.
	KindNumber Kind = iota
	// KindString is a sequence of Unicode scalar values.
	KindString
	// KindSymbol is an interned identifier, compared by value.
	KindSymbol
	// KindApp is a pair of a head term and an ordered argument vector.
	KindApp
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindSymbol:
		return "Symbol"
	case KindApp:
		return "Application"
	default:
		return "Unknown"
	}
}

// Term is a node of the expression algebra. Terms are semantically
// immutable: nothing in this package mutates a Term's fields after
// construction. The fields are exported so that callers and the
// copystructure-based Clone can traverse them directly, but constructing a
// Term by hand instead of via Num/Str/Sym/App/MakeApp is discouraged outside
// this package.
type Term struct {
	Kind Kind

	// Num holds the value when Kind == KindNumber.
	Num float64

	// Str holds the value when Kind == KindString or Kind == KindSymbol.
	Str string

	// Head and Args hold the value when Kind == KindApp. Head is itself a
	// Term (arbitrary terms, including other applications, may appear as a
	// head). Args is never nil for an application, though it may be empty.
	Head *Term
	Args []*Term
}

// Num constructs a Number term.
func Num(v float64) *Term {
	return &Term{Kind: KindNumber, Num: v}
}

// Str constructs a String term.
func Str(s string) *Term {
	return &Term{Kind: KindString, Str: s}
}

// Sym constructs a Symbol term.
func Sym(name string) *Term {
	return &Term{Kind: KindSymbol, Str: name}
}

// Frag is either a *Term or a *Splice: the unit of construction accepted by
// MakeApp. Splices passed to MakeApp are flattened into the surrounding
// argument vector at the position they occupy.
type Frag interface {
	fragMarker()
}

func (*Term) fragMarker()   {}
func (*Splice) fragMarker() {}

// MakeApp builds an application whose argument vector is frags with every
// Splice expanded in place at its position, per the expression-algebra
// contract (C1). Splices are flattened one level: substitution, the
// primitive folder, and Deserialize are the only producers of Splice, and each flattens
// immediately at the construction site where the Splice was consumed, so a
// single pass here is sufficient.
func MakeApp(head *Term, frags ...Frag) *Term {
	args := make([]*Term, 0, len(frags))
	for _, f := range frags {
		switch v := f.(type) {
		case *Term:
			args = append(args, v)
		case *Splice:
			args = append(args, v.Items...)
		}
	}
	return &Term{Kind: KindApp, Head: head, Args: args}
}

// App builds an application from a already-flat argument vector (no
// Splices present). It is the ordinary literal constructor used by rule
// authors and tests; MakeApp is reserved for call sites — substitution and
// folding — where a Splice might need flattening.
func App(head *Term, args ...*Term) *Term {
	cp := make([]*Term, len(args))
	copy(cp, args)
	return &Term{Kind: KindApp, Head: head, Args: cp}
}

// IsNumber, IsString, IsSymbol, IsApp report this term's variant.
func (t *Term) IsNumber() bool { return t.Kind == KindNumber }
func (t *Term) IsString() bool { return t.Kind == KindString }
func (t *Term) IsSymbol() bool { return t.Kind == KindSymbol }
func (t *Term) IsApp() bool    { return t.Kind == KindApp }

// IsSym reports whether t is the Symbol with the given name. It is a
// convenience used throughout the matcher and folder for head dispatch.
func (t *Term) IsSym(name string) bool {
	return t.Kind == KindSymbol && t.Str == name
}

// DeepEq is the structural congruence used everywhere in the matcher and
// folder: two atoms are equal iff their variant and value match; two
// applications are equal iff their heads are equal and their argument
// vectors are pairwise equal. It is reflexive, symmetric, and transitive,
// and returns false across variants.
func DeepEq(a, b *Term) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNumber:
		return a.Num == b.Num
	case KindString, KindSymbol:
		return a.Str == b.Str
	case KindApp:
		if len(a.Args) != len(b.Args) {
			return false
		}
		if !DeepEq(a.Head, b.Head) {
			return false
		}
		for i := range a.Args {
			if !DeepEq(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// seqEq compares two term vectors pairwise with DeepEq; used when matching
// and re-checking rest-variable bindings against a candidate slice.
func seqEq(a, b []*Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !DeepEq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// String renders t using the same canonical form as the ToString
// primitive (fold_string.go), so that error messages, logs, and %v
// formatting agree with what rule authors see from ToString.
func (t *Term) String() string {
	var b strings.Builder
	renderCanonical(t, &b)
	return b.String()
}

// renderCanonical writes t's canonical {Head arg, arg, ...} rendering to b.
// Atoms render by their literal text; strings are quote-escaped with the
// same escape set as the Escape/Unescape primitives.
func renderCanonical(t *Term, b *strings.Builder) {
	if t == nil {
		b.WriteString("<nil>")
		return
	}
	switch t.Kind {
	case KindNumber:
		b.WriteString(formatNumber(t.Num))
	case KindSymbol:
		b.WriteString(t.Str)
	case KindString:
		b.WriteByte('"')
		b.WriteString(escapeString(t.Str))
		b.WriteByte('"')
	case KindApp:
		b.WriteByte('{')
		renderCanonical(t.Head, b)
		for i, a := range t.Args {
			if i == 0 {
				b.WriteByte(' ')
			} else {
				b.WriteString(", ")
			}
			renderCanonical(a, b)
		}
		b.WriteByte('}')
	}
}

// formatNumber renders a float64 the way ToNumber-facing code expects:
// integral values print without a trailing ".0", everything else uses the
// shortest round-trippable decimal form.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
