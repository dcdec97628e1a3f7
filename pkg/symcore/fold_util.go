package symcore

import "strconv"

func init() {
	registerBuiltin(foldFreshId, "FreshId")
	registerBuiltin(foldRandom, "Random")
	registerBuiltin(foldParseNum, "ParseNum")
	registerBuiltin(foldDebug, "Debug")
}

// foldFreshId is the folder's sole observable impurity (§4.4, §9): each
// call draws the next value from ctx's monotonic source. Every Engine has
// its own source (seedable with WithFreshIDSeed, so two engines given the
// same seed produce the same ids); the free Fold function shares one
// package-level source.
func foldFreshId(ctx *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 0 {
		return nil, false
	}
	return Str(ctx.fresh.next()), true
}

func foldRandom(ctx *foldCtx, args []*Term) (*Term, bool) {
	switch len(args) {
	case 0:
		return Num(ctx.rnd.Float64()), true
	case 2:
		if !args[0].IsNumber() || !args[1].IsNumber() {
			return nil, false
		}
		lo, hi := args[0].Num, args[1].Num
		if hi < lo {
			return nil, false
		}
		return Num(lo + ctx.rnd.Float64()*(hi-lo)), true
	default:
		return nil, false
	}
}

func foldParseNum(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 || !args[0].IsString() {
		return nil, false
	}
	v, err := strconv.ParseFloat(args[0].Str, 64)
	if err != nil {
		return nil, false
	}
	return Num(v), true
}

// foldDebug returns its value argument unchanged, logging it as a side
// effect — the only builtin whose "fold" is observed outside the returned
// term. Debug[value] logs with no label; Debug[label, value] logs with a
// label rendered via ToString's text form.
func foldDebug(ctx *foldCtx, args []*Term) (*Term, bool) {
	switch len(args) {
	case 1:
		if ctx.logger != nil {
			ctx.logger.Debug("Debug", "value", args[0].String())
		}
		return args[0], true
	case 2:
		if ctx.logger != nil {
			ctx.logger.Debug("Debug", "label", toStringText(args[0]), "value", args[1].String())
		}
		return args[1], true
	default:
		return nil, false
	}
}
