package symcore

import "github.com/hashicorp/go-hclog"

// Dispatch performs one external-action dispatch (C8, §5.5): it wraps
// action and the Universe's current Program as Apply[action, Program],
// normalizes that term against the Universe's Rules, and installs the
// result as the new Program section.
//
// A well-behaved rule set normalizes Apply[action, Program] down to a new
// Program[...] application. Two degenerate outcomes are handled rather
// than treated as errors (§7 — a rewrite outcome is never fatal on its
// own): if normalization lands on an application whose head is not
// "Program", the result is rescue-wrapped as the sole argument of a fresh
// Program[...] section; if it lands on a non-application term entirely
// (a bare Number/String/Symbol), that value is substituted verbatim into
// a fresh Program[...] the same way. Both cases log a warning so the
// degenerate rule set that produced them is visible.
func Dispatch(universe, action *Term, maxSteps int, skipPrims bool, logger hclog.Logger) (*Term, error) {
	if logger == nil {
		logger = defaultLogger()
	}

	prog, err := ProgramOf(universe)
	if err != nil {
		return nil, err
	}

	rules, err := ExtractRules(RulesOf(universe))
	if err != nil {
		return nil, err
	}

	wrapped := App(Sym("Apply"), action, prog)
	result, err := Normalize(wrapped, rules, maxSteps, skipPrims)
	if err != nil {
		return nil, err
	}

	return withSection(universe, "Program", RescueAsProgram(result, logger)), nil
}

// RescueAsProgram accepts a Normalize result meant to become the new
// Program section. A well-behaved rule set produces a Program[...]
// application directly. Two degenerate outcomes are handled rather than
// treated as errors (§7 — a rewrite outcome is never fatal on its own):
// an application whose head is not "Program" is rescue-wrapped as the
// sole argument of a fresh Program[...]; a non-application term (a bare
// Number/String/Symbol) is substituted verbatim into a fresh Program[...]
// the same way. Both cases log a warning so the degenerate rule set that
// produced them is visible.
func RescueAsProgram(result *Term, logger hclog.Logger) *Term {
	if result.IsApp() && result.Head.IsSym("Program") {
		return result
	}
	if result.IsApp() {
		logger.Warn("normalize: result is an application but not a Program section; rescue-wrapping", "head", result.Head.String())
	} else {
		logger.Warn("normalize: result is not an application; substituting verbatim", "result", result.String())
	}
	return App(Sym("Program"), result)
}
