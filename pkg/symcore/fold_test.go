package symcore

import "testing"

func TestFoldArithmetic(t *testing.T) {
	tests := []struct {
		name string
		term *Term
		want *Term
	}{
		{"add", App(Sym("Add"), Num(1), Num(2)), Num(3)},
		{"sub", App(Sym("Sub"), Num(5), Num(3)), Num(2)},
		{"mul", App(Sym("Mul"), Num(3), Num(4)), Num(12)},
		{"div", App(Sym("Div"), Num(10), Num(4)), Num(2.5)},
		{"nested", App(Sym("Add"), App(Sym("Mul"), Num(2), Num(3)), Num(1)), Num(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fold(tt.term)
			if !DeepEq(got, tt.want) {
				t.Errorf("Fold(%s) = %s, want %s", tt.term, got, tt.want)
			}
		})
	}
}

func TestFoldDivByZeroDoesNotFold(t *testing.T) {
	term := App(Sym("Div"), Num(1), Num(0))
	got := Fold(term)
	if !DeepEq(got, term) {
		t.Errorf("expected Div by zero to be left unfolded, got %s", got)
	}
}

func TestFoldUnknownHeadLeftAlone(t *testing.T) {
	term := App(Sym("NotABuiltin"), Num(1), Num(2))
	got := Fold(term)
	if !DeepEq(got, term) {
		t.Errorf("expected unknown builtin to be a no-op, got %s", got)
	}
}

func TestFoldCompare(t *testing.T) {
	tests := []struct {
		name string
		term *Term
		want *Term
	}{
		{"eq true", App(Sym("Eq"), Num(1), Num(1)), Sym("True")},
		{"eq false", App(Sym("Eq"), Num(1), Num(2)), Sym("False")},
		{"eq cross-variant", App(Sym("Eq"), Num(1), Str("1")), Sym("False")},
		{"lt true", App(Sym("Lt"), Num(1), Num(2)), Sym("True")},
		{"gte false", App(Sym("Gte"), Num(1), Num(2)), Sym("False")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fold(tt.term)
			if !DeepEq(got, tt.want) {
				t.Errorf("Fold(%s) = %s, want %s", tt.term, got, tt.want)
			}
		})
	}
}

func TestFoldBool(t *testing.T) {
	if got := Fold(App(Sym("And"), Sym("True"), Sym("False"))); !DeepEq(got, Sym("False")) {
		t.Errorf("And[True, False] = %s, want False", got)
	}
	if got := Fold(App(Sym("Not"), Sym("True"))); !DeepEq(got, Sym("False")) {
		t.Errorf("Not[True] = %s, want False", got)
	}
	if got := Fold(App(Sym("IsNum"), Num(1))); !DeepEq(got, Sym("True")) {
		t.Errorf("IsNum[1] = %s, want True", got)
	}
}

func TestFoldString(t *testing.T) {
	tests := []struct {
		name string
		term *Term
		want *Term
	}{
		{"concat", App(Sym("Concat"), Str("a"), Str("b")), Str("ab")},
		{"upper", App(Sym("ToUpper"), Str("ab")), Str("AB")},
		{"strlen", App(Sym("StrLen"), Str("héllo")), Num(5)},
		{"substring", App(Sym("Substring"), Str("hello"), Num(1), Num(3)), Str("el")},
		{"toString of atom", App(Sym("ToString"), Num(1)), Str("1")},
		{"toString of app", App(Sym("ToString"), App(Sym("F"), Num(1))), Str("{F 1}")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fold(tt.term)
			if !DeepEq(got, tt.want) {
				t.Errorf("Fold(%s) = %s, want %s", tt.term, got, tt.want)
			}
		})
	}
}

func TestFoldToNormalStringNeverFoldsAnApplication(t *testing.T) {
	term := App(Sym("ToNormalString"), App(Sym("F"), Num(1)))
	got := Fold(term)
	if !DeepEq(got, term) {
		t.Errorf("expected ToNormalString to leave an application unfolded, got %s", got)
	}

	literal := App(Sym("ToNormalString"), Num(1))
	got = Fold(literal)
	if !DeepEq(got, Str("1")) {
		t.Errorf("expected ToNormalString of a literal to fold, got %s", got)
	}
}

func TestFoldEscapeUnescapeRoundTrip(t *testing.T) {
	original := "line1\nline2\t\"quoted\""
	escaped := Fold(App(Sym("Escape"), Str(original)))
	if !escaped.IsString() {
		t.Fatalf("Escape did not fold to a string: %s", escaped)
	}
	unescaped := Fold(App(Sym("Unescape"), escaped))
	if !DeepEq(unescaped, Str(original)) {
		t.Errorf("round trip mismatch: got %s, want %q", unescaped, original)
	}
}

func TestFoldFreshIdIsUnique(t *testing.T) {
	a := Fold(App(Sym("FreshId")))
	b := Fold(App(Sym("FreshId")))
	if !a.IsString() || !b.IsString() {
		t.Fatalf("expected FreshId to fold to strings, got %s and %s", a, b)
	}
	if a.Str == b.Str {
		t.Errorf("expected two FreshId calls to differ, both produced %q", a.Str)
	}
}

func TestFoldSplatFlattensIntoEnclosingApp(t *testing.T) {
	// Splat[X] is unwrapped in place: the enclosing application receives X
	// itself spliced at that argument position, removing the Splat marker.
	splat := App(Sym("Splat"), App(Sym("List"), Num(1), Num(2)))
	got := Fold(App(Sym("F"), Num(0), splat, Num(3)))
	want := App(Sym("F"), Num(0), App(Sym("List"), Num(1), Num(2)), Num(3))
	if !DeepEq(got, want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestFoldSerializeDeserializeRoundTrip(t *testing.T) {
	term := App(Sym("F"), Num(1), Str("x"), App(Sym("G"), Sym("Y")))
	encoded := Fold(App(Sym("Serialize"), term))
	if !encoded.IsString() {
		t.Fatalf("Serialize did not fold to a string: %s", encoded)
	}
	decoded := Fold(App(Sym("Deserialize"), encoded))
	if !DeepEq(decoded, term) {
		t.Errorf("round trip mismatch: got %s, want %s", decoded, term)
	}
}
