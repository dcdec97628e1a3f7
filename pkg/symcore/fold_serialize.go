package symcore

func init() {
	registerBuiltin(foldSerialize, "Serialize")
	registerBuiltin(foldDeserialize, "Deserialize")
}

func foldSerialize(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 {
		return nil, false
	}
	s, err := Serialize(args[0])
	if err != nil {
		return nil, false
	}
	return Str(s), true
}

func foldDeserialize(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 || !args[0].IsString() {
		return nil, false
	}
	t, err := Deserialize(args[0].Str)
	if err != nil {
		return nil, false
	}
	return t, true
}
