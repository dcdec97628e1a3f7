package symcore

// ApplyRuleRules performs the meta-rule pass (C7, §5.4): it extracts meta
// rules from universe's RuleRules section and normalizes the Rules section
// against them, treating the Rules section as ordinary rewritable data.
// skipPrims is forced to true for this pass — the rule bodies sitting
// inside Rules (guards, right-hand sides) are inert data at this point,
// never expressions to be evaluated, so no primitive fold may touch them.
// A Universe with no RuleRules section is returned unchanged.
func ApplyRuleRules(universe *Term, maxSteps int) (*Term, error) {
	metaSection, ok := RuleRulesOf(universe)
	if !ok {
		return universe, nil
	}

	metaRules, err := ExtractRules(metaSection)
	if err != nil {
		return nil, err
	}
	if len(metaRules) == 0 {
		return universe, nil
	}

	rulesSection := RulesOf(universe)
	rewritten, err := Normalize(rulesSection, metaRules, maxSteps, true)
	if err != nil {
		return nil, err
	}

	return withSection(universe, "Rules", rewritten), nil
}
