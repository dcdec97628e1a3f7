package symcore

func init() {
	registerBuiltin(foldAnd, "And")
	registerBuiltin(foldOr, "Or")
	registerBuiltin(foldNot, "Not")
	registerBuiltin(foldIsNum, "IsNum")
	registerBuiltin(foldIsStr, "IsStr")
	registerBuiltin(foldIsSym, "IsSym")
	registerBuiltin(foldIsTrue, "IsTrue")
	registerBuiltin(foldIsFalse, "IsFalse")
	registerBuiltin(foldAreNums, "AreNums")
	registerBuiltin(foldAreStrings, "AreStrings")
	registerBuiltin(foldAreSyms, "AreSyms")
}

func isTrueSym(t *Term) bool  { return t.IsSym("True") }
func isFalseSym(t *Term) bool { return t.IsSym("False") }

func foldAnd(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) < 1 {
		return nil, false
	}
	for _, a := range args {
		if !isTrueSym(a) && !isFalseSym(a) {
			return nil, false
		}
	}
	for _, a := range args {
		if isFalseSym(a) {
			return boolTerm(false), true
		}
	}
	return boolTerm(true), true
}

func foldOr(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) < 1 {
		return nil, false
	}
	for _, a := range args {
		if !isTrueSym(a) && !isFalseSym(a) {
			return nil, false
		}
	}
	for _, a := range args {
		if isTrueSym(a) {
			return boolTerm(true), true
		}
	}
	return boolTerm(false), true
}

func foldNot(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 {
		return nil, false
	}
	if isTrueSym(args[0]) {
		return boolTerm(false), true
	}
	if isFalseSym(args[0]) {
		return boolTerm(true), true
	}
	return nil, false
}

func foldIsNum(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 {
		return nil, false
	}
	return boolTerm(args[0].IsNumber()), true
}

func foldIsStr(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 {
		return nil, false
	}
	return boolTerm(args[0].IsString()), true
}

func foldIsSym(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 {
		return nil, false
	}
	return boolTerm(args[0].IsSymbol()), true
}

func foldIsTrue(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 {
		return nil, false
	}
	return boolTerm(isTrueSym(args[0])), true
}

func foldIsFalse(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 {
		return nil, false
	}
	return boolTerm(isFalseSym(args[0])), true
}

// sequenceArgs normalizes the "Are..." family's flexible argument shape
// (§4.4): a single sequence argument, a single scalar, or n direct
// arguments all mean the same thing, with an empty sequence vacuously true.
func sequenceArgs(args []*Term) []*Term {
	if len(args) == 1 && args[0].IsApp() {
		return args[0].Args
	}
	return args
}

func foldAreNums(_ *foldCtx, args []*Term) (*Term, bool) {
	items := sequenceArgs(args)
	for _, a := range items {
		if !a.IsNumber() {
			return boolTerm(false), true
		}
	}
	return boolTerm(true), true
}

func foldAreStrings(_ *foldCtx, args []*Term) (*Term, bool) {
	items := sequenceArgs(args)
	for _, a := range items {
		if !a.IsString() {
			return boolTerm(false), true
		}
	}
	return boolTerm(true), true
}

func foldAreSyms(_ *foldCtx, args []*Term) (*Term, bool) {
	items := sequenceArgs(args)
	for _, a := range items {
		if !a.IsSymbol() {
			return boolTerm(false), true
		}
	}
	return boolTerm(true), true
}
