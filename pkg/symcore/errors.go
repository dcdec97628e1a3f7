package symcore

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ShapeError reports a malformed Universe, a missing Program/Rules section,
// or an ill-formed R[...] rule (§7). Shape errors are fatal for the call
// that raised them; the Universe is left unmutated.
type ShapeError struct {
	Where string // e.g. "Universe", "Rules", "R[...]"
	Msg   string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("symcore: shape error in %s: %s", e.Where, e.Msg)
}

func newShapeError(where, format string, args ...interface{}) *ShapeError {
	return &ShapeError{Where: where, Msg: fmt.Sprintf(format, args...)}
}

// shapeErrors aggregates zero or more shape problems found during a single
// ingestion or extraction pass, using hashicorp/go-multierror so a caller
// sees every problem at once instead of fixing them one at a time.
type shapeErrors struct {
	merr *multierror.Error
}

func (s *shapeErrors) add(err *ShapeError) {
	s.merr = multierror.Append(s.merr, err)
}

func (s *shapeErrors) errorOrNil() error {
	if s.merr == nil {
		return nil
	}
	return s.merr.ErrorOrNil()
}

// SubstError reports a substitution-time hard error: an unbound variable, a
// wildcard used on a template's right-hand side, a rest variable bound to a
// non-sequence, or an unrecognized node shape (§4.3, §7). Substitution
// errors always indicate a bug in the rule set, never a rewrite miss.
type SubstError struct {
	Node   *Term
	Reason string
}

func (e *SubstError) Error() string {
	return fmt.Sprintf("symcore: substitution error: %s (at %s)", e.Reason, e.Node)
}

func newSubstError(node *Term, reason string) *SubstError {
	return &SubstError{Node: node, Reason: reason}
}

// NonTerminationError is raised by Normalize when maxSteps is exhausted
// (§4.5.3, §7, P9). It carries the configured budget and the term as last
// observed so a caller can retry with a higher budget or inspect the
// partial result.
type NonTerminationError struct {
	MaxSteps int
	Last     *Term
}

func (e *NonTerminationError) Error() string {
	return fmt.Sprintf("symcore: non-termination: exceeded step budget of %d", e.MaxSteps)
}
