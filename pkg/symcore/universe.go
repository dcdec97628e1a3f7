package symcore

// A Universe is Universe[Program[...], Rules[...], RuleRules[...]]: an
// application whose arguments are named sections, each itself an
// application whose head names the section (§5). Section order within a
// Universe is not significant; sections are found by head symbol.

func sectionByName(universe *Term, name string) (*Term, bool) {
	if universe == nil || !universe.IsApp() {
		return nil, false
	}
	for _, a := range universe.Args {
		if a.IsApp() && a.Head.IsSym(name) {
			return a, true
		}
	}
	return nil, false
}

// ProgramOf returns universe's Program[...] section. A Universe with no
// Program section is a shape error: Program is the one section every
// operation requires.
func ProgramOf(universe *Term) (*Term, error) {
	p, ok := sectionByName(universe, "Program")
	if !ok {
		return nil, newShapeError("Universe", "missing Program section")
	}
	return p, nil
}

// RulesOf returns universe's Rules[...] section, or an empty Rules[] if
// the Universe carries none: a rule-free universe is well-formed, it
// simply never rewrites.
func RulesOf(universe *Term) *Term {
	r, ok := sectionByName(universe, "Rules")
	if !ok {
		return App(Sym("Rules"))
	}
	return r
}

// RuleRulesOf returns universe's RuleRules[...] section, if present.
func RuleRulesOf(universe *Term) (*Term, bool) {
	return sectionByName(universe, "RuleRules")
}

// ReplaceSection returns a copy of universe with its name section replaced
// by newSection (appending it if no such section exists yet). Callers that
// normalize a section's contents outside of Dispatch (the CLI's normalize
// and trace subcommands, for instance) use this to rebuild the Universe.
func ReplaceSection(universe *Term, name string, newSection *Term) *Term {
	return withSection(universe, name, newSection)
}

// withSection returns a copy of universe with its name section replaced by
// newSection (appending it if no such section exists yet).
func withSection(universe *Term, name string, newSection *Term) *Term {
	args := make([]*Term, 0, len(universe.Args)+1)
	replaced := false
	for _, a := range universe.Args {
		if a.IsApp() && a.Head.IsSym(name) {
			args = append(args, newSection)
			replaced = true
			continue
		}
		args = append(args, a)
	}
	if !replaced {
		args = append(args, newSection)
	}
	return App(universe.Head, args...)
}

// NormalizeProgram normalizes program's own arguments against rules and
// rewraps the results under the same head. Program is one of the core's
// reserved structural symbols (§6.1, alongside Universe/Rules/RuleRules),
// never an ordinary rewrite target in its own right: a rule whose
// left-hand side is a bare pattern variable is meant to match the
// expression a Program carries, not the Program wrapper itself, so
// normalization descends into program.Args before handing anything to
// Rules rather than offering the whole Program[...] term as the root.
func NormalizeProgram(program *Term, rules []*Rule, maxSteps int, skipPrims bool) (*Term, error) {
	if program == nil || !program.IsApp() || !program.Head.IsSym("Program") {
		return nil, newShapeError("Program", "not a Program[...] application")
	}
	newArgs := make([]*Term, len(program.Args))
	for i, a := range program.Args {
		result, err := Normalize(a, rules, maxSteps, skipPrims)
		if err != nil {
			return nil, err
		}
		newArgs[i] = result
	}
	return App(program.Head, newArgs...), nil
}

// NormalizeProgramWithTrace is NormalizeProgram, additionally recording
// every rewrite step taken across all of program's arguments in order.
func NormalizeProgramWithTrace(program *Term, rules []*Rule, maxSteps int, skipPrims bool) (*Term, []TraceStep, error) {
	if program == nil || !program.IsApp() || !program.Head.IsSym("Program") {
		return nil, nil, newShapeError("Program", "not a Program[...] application")
	}
	var allSteps []TraceStep
	newArgs := make([]*Term, len(program.Args))
	for i, a := range program.Args {
		result, steps, err := NormalizeWithTrace(a, rules, maxSteps, skipPrims)
		if err != nil {
			return nil, allSteps, err
		}
		allSteps = append(allSteps, steps...)
		newArgs[i] = result
	}
	return App(program.Head, newArgs...), allSteps, nil
}

// EnrichProgramWithEffects idempotently ensures program carries an
// Effects[Pending[], Inbox[]] section (§5.3): if program already has an
// Effects argument, it is returned unchanged; otherwise one is appended
// with both queues empty.
func EnrichProgramWithEffects(program *Term) *Term {
	for _, a := range program.Args {
		if a.IsApp() && a.Head.IsSym("Effects") {
			return program
		}
	}
	effects := App(Sym("Effects"), App(Sym("Pending")), App(Sym("Inbox")))
	args := make([]*Term, 0, len(program.Args)+1)
	args = append(args, program.Args...)
	args = append(args, effects)
	return App(program.Head, args...)
}
