package symcore

func init() {
	registerBuiltin(foldEq, "Eq", "==")
	registerBuiltin(foldNeq, "Neq", "!=")
	registerBuiltin(foldLt, "Lt", "<")
	registerBuiltin(foldGt, "Gt", ">")
	registerBuiltin(foldLte, "Lte", "<=")
	registerBuiltin(foldGte, "Gte", ">=")
}

func boolTerm(v bool) *Term {
	if v {
		return Sym("True")
	}
	return Sym("False")
}

// foldEq and foldNeq are deep-structural across all variants (§4.4): they
// never refuse to fold, and fall to False across a variant mismatch.
func foldEq(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 2 {
		return nil, false
	}
	return boolTerm(DeepEq(args[0], args[1])), true
}

func foldNeq(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 2 {
		return nil, false
	}
	return boolTerm(!DeepEq(args[0], args[1])), true
}

func foldLt(_ *foldCtx, args []*Term) (*Term, bool) {
	vs, ok := numArgs(args, 2)
	if !ok {
		return nil, false
	}
	return boolTerm(vs[0] < vs[1]), true
}

func foldGt(_ *foldCtx, args []*Term) (*Term, bool) {
	vs, ok := numArgs(args, 2)
	if !ok {
		return nil, false
	}
	return boolTerm(vs[0] > vs[1]), true
}

func foldLte(_ *foldCtx, args []*Term) (*Term, bool) {
	vs, ok := numArgs(args, 2)
	if !ok {
		return nil, false
	}
	return boolTerm(vs[0] <= vs[1]), true
}

func foldGte(_ *foldCtx, args []*Term) (*Term, bool) {
	vs, ok := numArgs(args, 2)
	if !ok {
		return nil, false
	}
	return boolTerm(vs[0] >= vs[1]), true
}
