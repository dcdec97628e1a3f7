package symcore

import (
	"github.com/mitchellh/copystructure"
)

// Clone returns a term deep-equal to t that shares no mutable state with
// it, per C1's contract: "independent for all mutations the rewriter may
// perform." The rewriter itself never mutates a subject node in place, but
// callers that embed Terms in their own mutable structures (for example a
// Universe held across dispatch calls, §3.6) rely on Clone to take an
// independent snapshot before doing so.
//
// Cloning is delegated to mitchellh/copystructure, the same deep-copy
// library the teacher's wider example pack (hashicorp/nomad) uses for its
// own immutable-by-convention job and task structures; Term's fields are
// exported specifically so that a reflection-based copier can walk them
// without special-casing.
func Clone(t *Term) *Term {
	if t == nil {
		return nil
	}
	out, err := copystructure.Copy(t)
	if err != nil {
		// copystructure only fails on unsupported field types, and Term's
		// fields (Kind, float64, string, *Term, []*Term) are all supported;
		// a failure here indicates a programming error, not a runtime
		// condition callers can usefully recover from.
		panic(&internalError{op: "Clone", err: err})
	}
	return out.(*Term)
}

// internalError wraps an unexpected failure from a third-party dependency
// that this package's own contracts guarantee cannot occur in practice.
type internalError struct {
	op  string
	err error
}

func (e *internalError) Error() string {
	return "symcore: internal error in " + e.op + ": " + e.err.Error()
}

func (e *internalError) Unwrap() error { return e.err }
