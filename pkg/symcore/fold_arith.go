package symcore

import "math"

func init() {
	registerBuiltin(foldAdd, "Add", "+")
	registerBuiltin(foldSub, "Sub", "-")
	registerBuiltin(foldMul, "Mul", "*")
	registerBuiltin(foldDiv, "Div", "/")
	registerBuiltin(foldMod, "Mod", "%")
	registerBuiltin(foldPow, "Pow", "^")
	registerBuiltin(foldSqrt, "Sqrt")
	registerBuiltin(foldAbs, "Abs")
	registerBuiltin(foldMin, "Min")
	registerBuiltin(foldMax, "Max")
	registerBuiltin(foldFloor, "Floor")
	registerBuiltin(foldCeil, "Ceil")
	registerBuiltin(foldRound, "Round")
}

// numArgs extracts n Number arguments, reporting false if the arity or
// types do not match. A failed precondition here is never an error (§4.4):
// the caller returns "cannot fold" and the application is left symbolic.
func numArgs(args []*Term, n int) ([]float64, bool) {
	if len(args) != n {
		return nil, false
	}
	out := make([]float64, n)
	for i, a := range args {
		if !a.IsNumber() {
			return nil, false
		}
		out[i] = a.Num
	}
	return out, true
}

func foldAdd(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) < 1 {
		return nil, false
	}
	sum := 0.0
	for _, a := range args {
		if !a.IsNumber() {
			return nil, false
		}
		sum += a.Num
	}
	return Num(sum), true
}

func foldSub(_ *foldCtx, args []*Term) (*Term, bool) {
	vs, ok := numArgs(args, 2)
	if !ok {
		return nil, false
	}
	return Num(vs[0] - vs[1]), true
}

func foldMul(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) < 1 {
		return nil, false
	}
	prod := 1.0
	for _, a := range args {
		if !a.IsNumber() {
			return nil, false
		}
		prod *= a.Num
	}
	return Num(prod), true
}

func foldDiv(_ *foldCtx, args []*Term) (*Term, bool) {
	vs, ok := numArgs(args, 2)
	if !ok || vs[1] == 0 {
		return nil, false
	}
	return Num(vs[0] / vs[1]), true
}

func foldMod(_ *foldCtx, args []*Term) (*Term, bool) {
	vs, ok := numArgs(args, 2)
	if !ok || vs[1] == 0 {
		return nil, false
	}
	return Num(math.Mod(vs[0], vs[1])), true
}

func foldPow(_ *foldCtx, args []*Term) (*Term, bool) {
	vs, ok := numArgs(args, 2)
	if !ok {
		return nil, false
	}
	return Num(math.Pow(vs[0], vs[1])), true
}

func foldSqrt(_ *foldCtx, args []*Term) (*Term, bool) {
	vs, ok := numArgs(args, 1)
	if !ok || vs[0] < 0 {
		return nil, false
	}
	return Num(math.Sqrt(vs[0])), true
}

func foldAbs(_ *foldCtx, args []*Term) (*Term, bool) {
	vs, ok := numArgs(args, 1)
	if !ok {
		return nil, false
	}
	return Num(math.Abs(vs[0])), true
}

func foldMin(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) < 1 {
		return nil, false
	}
	best := math.Inf(1)
	for _, a := range args {
		if !a.IsNumber() {
			return nil, false
		}
		if a.Num < best {
			best = a.Num
		}
	}
	return Num(best), true
}

func foldMax(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) < 1 {
		return nil, false
	}
	best := math.Inf(-1)
	for _, a := range args {
		if !a.IsNumber() {
			return nil, false
		}
		if a.Num > best {
			best = a.Num
		}
	}
	return Num(best), true
}

func foldFloor(_ *foldCtx, args []*Term) (*Term, bool) {
	vs, ok := numArgs(args, 1)
	if !ok {
		return nil, false
	}
	return Num(math.Floor(vs[0])), true
}

func foldCeil(_ *foldCtx, args []*Term) (*Term, bool) {
	vs, ok := numArgs(args, 1)
	if !ok {
		return nil, false
	}
	return Num(math.Ceil(vs[0])), true
}

func foldRound(_ *foldCtx, args []*Term) (*Term, bool) {
	vs, ok := numArgs(args, 1)
	if !ok {
		return nil, false
	}
	return Num(math.Round(vs[0])), true
}
