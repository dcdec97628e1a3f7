// Package symcore implements the core of a symbolic term-rewriting engine.
//
// A symcore program and its rewrite rules are both values of the same
// expression algebra (Term): an atom is a Number, a String, or a Symbol;
// everything else is an Application of a head term to an ordered vector of
// argument terms. Rewriting repeatedly applies a priority-ordered set of
// pattern/template rules to a Program term until no rule matches, folding
// host-evaluated primitives (arithmetic, strings, comparisons, ...) along
// the way.
//
// The package is organized around the pipeline described in the project's
// specification:
//
//   - term.go / splice.go      the expression algebra and its internal
//     flattening marker
//   - env.go                   the persistent variable-binding environment
//   - pattern.go                the pattern matcher, including backtracking
//     over rest-variable splits
//   - subst.go                 template substitution
//   - fold.go and fold_*.go    the primitive folder and its builtin groups
//   - rule.go                  rule records and extraction
//   - rewrite.go               the rewrite driver (ApplyOnce / Normalize)
//   - metarules.go             the meta-rule pass
//   - universe.go              the Universe container and its invariants
//   - dispatch.go              the external-action dispatch boundary
//   - engine.go                a configured façade over the above
//
// Callers that only need a one-shot normalization can use Engine; callers
// building their own driver loop can use the free functions directly.
package symcore
