package symcore_test

import (
	"fmt"

	. "github.com/SymaLang/symacore/pkg/symcore"
)

// ExampleFold_arithmeticFolds is scenario S1: with no rules at all, Fold
// alone reduces a purely arithmetic term to its value.
func ExampleFold_arithmeticFolds() {
	term := App(Sym("Add"), App(Sym("Mul"), Num(2), Num(3)), Num(4))
	fmt.Println(Fold(term))
	// Output: 10
}

// ExampleNormalize_ruleBeatsPrimitiveOrder is scenario S2: a higher-priority
// rule fires inside Add before Add itself folds.
func ExampleNormalize_ruleBeatsPrimitiveOrder() {
	rules, err := ExtractRules(App(Sym("Rules"),
		App(Sym("R"), Str("double"), App(Sym("D"), App(Sym("Var"), Str("x"))),
			App(Sym("Mul"), Num(2), App(Sym("Var"), Str("x"))),
			Sym(":prio"), Num(10)),
	))
	if err != nil {
		panic(err)
	}

	term := App(Sym("Add"), App(Sym("D"), Num(3)), Num(1))
	result, err := Normalize(term, rules, 100, false)
	if err != nil {
		panic(err)
	}
	fmt.Println(result)
	// Output: 7
}

// ExampleApplyOnce_restVariableBacktracking is scenario S3: in a single
// rewrite step, the rest variable before the first literal Mark consumes
// the smallest possible prefix, so the first Mark in the subject is the
// one that splits it.
func ExampleApplyOnce_restVariableBacktracking() {
	rules, err := ExtractRules(App(Sym("Rules"),
		App(Sym("R"), Str("pair"),
			App(Sym("L"), App(Sym("VarRest"), Str("a")), Sym("Mark"), App(Sym("VarRest"), Str("b"))),
			App(Sym("Split"),
				App(Sym("L"), App(Sym("VarRest"), Str("a"))),
				App(Sym("L"), App(Sym("VarRest"), Str("b"))),
			),
		),
	))
	if err != nil {
		panic(err)
	}

	term := App(Sym("L"), Num(1), Num(2), Sym("Mark"), Num(3), Sym("Mark"), Num(4))
	result, _, _, _, err := ApplyOnce(term, rules)
	if err != nil {
		panic(err)
	}
	fmt.Println(result)
	// Output: {Split {L 1, 2}, {L 3, Mark, 4}}
}

// ExampleNormalize_guardedRule is scenario S4: the guard is false for a
// negative input, so the rule is skipped and the input is already in
// normal form.
func ExampleNormalize_guardedRule() {
	rules, err := ExtractRules(App(Sym("Rules"),
		App(Sym("R"), Str("pos"), App(Sym("Var"), Str("x")), Str("positive"),
			Sym(":guard"), App(Sym("Gt"), App(Sym("Var"), Str("x")), Num(0))),
	))
	if err != nil {
		panic(err)
	}

	result, err := Normalize(Num(-3), rules, 100, false)
	if err != nil {
		panic(err)
	}
	fmt.Println(result)
	// Output: -3
}

// ExampleApplyRuleRules_metaRuleRewritesARule is scenario S5: a meta-rule
// zeroes out the right-hand side of the "id" rule before the Program is
// normalized against the rewritten Rules section.
func ExampleApplyRuleRules_metaRuleRewritesARule() {
	universe := App(Sym("Universe"),
		App(Sym("Program"), Num(42)),
		App(Sym("Rules"), App(Sym("R"), Str("id"), App(Sym("Var"), Str("x")), App(Sym("Var"), Str("x")))),
		App(Sym("RuleRules"),
			App(Sym("R"), Str("kill"),
				App(Sym("R"), Str("id"), App(Sym("Var"), Str("l")), App(Sym("Var"), Str("r"))),
				App(Sym("R"), Str("id"), App(Sym("Var"), Str("l")), Num(0)),
			),
		),
	)

	updated, err := ApplyRuleRules(universe, 100)
	if err != nil {
		panic(err)
	}

	program, err := ProgramOf(updated)
	if err != nil {
		panic(err)
	}
	rules, err := ExtractRules(RulesOf(updated))
	if err != nil {
		panic(err)
	}
	result, err := NormalizeProgram(program, rules, 100, false)
	if err != nil {
		panic(err)
	}
	fmt.Println(result)
	// Output: {Program 0}
}

// ExampleDispatch_liftsApplyToState is scenario S6: dispatching Inc lifts
// Apply through Program, App, and State wrappers down to the Counter,
// incrementing it.
func ExampleDispatch_liftsApplyToState() {
	universe := App(Sym("Universe"),
		App(Sym("Program"), App(Sym("App"), App(Sym("State"), App(Sym("Counter"), Num(5))))),
		App(Sym("Rules"),
			App(Sym("R"), Str("lift-app"),
				App(Sym("Apply"), App(Sym("Var"), Str("a")), App(Sym("Program"), App(Sym("Var"), Str("p")))),
				App(Sym("Program"), App(Sym("Apply"), App(Sym("Var"), Str("a")), App(Sym("Var"), Str("p")))),
			),
			App(Sym("R"), Str("lift-st"),
				App(Sym("Apply"), App(Sym("Var"), Str("a")), App(Sym("App"), App(Sym("Var"), Str("s")))),
				App(Sym("App"), App(Sym("Apply"), App(Sym("Var"), Str("a")), App(Sym("Var"), Str("s")))),
			),
			App(Sym("R"), Str("lift-state"),
				App(Sym("Apply"), App(Sym("Var"), Str("a")), App(Sym("State"), App(Sym("Var"), Str("s")))),
				App(Sym("State"), App(Sym("Apply"), App(Sym("Var"), Str("a")), App(Sym("Var"), Str("s")))),
			),
			App(Sym("R"), Str("inc"),
				App(Sym("Apply"), Sym("Inc"), App(Sym("Counter"), App(Sym("Var"), Str("n")))),
				App(Sym("Counter"), App(Sym("Add"), App(Sym("Var"), Str("n")), Num(1))),
			),
		),
		App(Sym("RuleRules")),
	)

	updated, err := Dispatch(universe, Sym("Inc"), 100, false, nil)
	if err != nil {
		panic(err)
	}
	program, err := ProgramOf(updated)
	if err != nil {
		panic(err)
	}
	fmt.Println(program)
	// Output: {Program {App {State {Counter 6}}}}
}
