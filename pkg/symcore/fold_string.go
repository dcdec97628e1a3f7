package symcore

import (
	"strings"
	"unicode/utf8"
)

func init() {
	registerBuiltin(foldConcat, "Concat")
	registerBuiltin(foldToString, "ToString")
	registerBuiltin(foldToNormalString, "ToNormalString")
	registerBuiltin(foldToUpper, "ToUpper")
	registerBuiltin(foldToLower, "ToLower")
	registerBuiltin(foldTrim, "Trim")
	registerBuiltin(foldStrLen, "StrLen")
	registerBuiltin(foldSubstring, "Substring")
	registerBuiltin(foldIndexOf, "IndexOf")
	registerBuiltin(foldReplace, "Replace")
	registerBuiltin(foldReplaceAll, "ReplaceAll")
	registerBuiltin(foldSplitToChars, "SplitToChars")
	registerBuiltin(foldSplitBy, "SplitBy")
	registerBuiltin(foldEscape, "Escape")
	registerBuiltin(foldUnescape, "Unescape")
	registerBuiltin(foldCharFromCode, "CharFromCode")
}

// escapeString applies the folder's fixed escape set {\\, \", \n, \r, \t,
// \f} to s, used both by the canonical ToString rendering of embedded
// strings and by the Escape primitive.
func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// unescapeString is Escape's inverse. It fails (returns ok=false) on a
// trailing lone backslash or an escape sequence outside the fixed set.
func unescapeString(s string) (string, bool) {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' {
			b.WriteRune(r)
			continue
		}
		i++
		if i >= len(runes) {
			return "", false
		}
		switch runes[i] {
		case '\\':
			b.WriteRune('\\')
		case '"':
			b.WriteRune('"')
		case 'n':
			b.WriteRune('\n')
		case 'r':
			b.WriteRune('\r')
		case 't':
			b.WriteRune('\t')
		case 'f':
			b.WriteRune('\f')
		default:
			return "", false
		}
	}
	return b.String(), true
}

// toStringText renders t the way the ToString primitive does: atoms by
// their literal text (a String atom's own content, unquoted), applications
// by the canonical {Head arg, ...} form with embedded strings quote
// escaped.
func toStringText(t *Term) string {
	switch t.Kind {
	case KindNumber:
		return formatNumber(t.Num)
	case KindSymbol:
		return t.Str
	case KindString:
		return t.Str
	case KindApp:
		var b strings.Builder
		renderCanonical(t, &b)
		return b.String()
	default:
		return ""
	}
}

func foldConcat(_ *foldCtx, args []*Term) (*Term, bool) {
	var b strings.Builder
	for _, a := range args {
		if !a.IsString() {
			return nil, false
		}
		b.WriteString(a.Str)
	}
	return Str(b.String()), true
}

func foldToString(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 {
		return nil, false
	}
	return Str(toStringText(args[0])), true
}

// foldToNormalString deliberately never folds an application (§4.4, §9):
// it exists so the rewriter keeps retrying until its argument is already a
// literal, at which point it behaves like ToString.
func foldToNormalString(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 {
		return nil, false
	}
	if args[0].IsApp() {
		return nil, false
	}
	return Str(toStringText(args[0])), true
}

func foldToUpper(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 || !args[0].IsString() {
		return nil, false
	}
	return Str(strings.ToUpper(args[0].Str)), true
}

func foldToLower(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 || !args[0].IsString() {
		return nil, false
	}
	return Str(strings.ToLower(args[0].Str)), true
}

func foldTrim(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 || !args[0].IsString() {
		return nil, false
	}
	return Str(strings.TrimSpace(args[0].Str)), true
}

func foldStrLen(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 || !args[0].IsString() {
		return nil, false
	}
	return Num(float64(utf8.RuneCountInString(args[0].Str))), true
}

// runeSlice helps implement Substring/IndexOf over Unicode scalar
// values rather than bytes, matching "a sequence of Unicode scalar values"
// (§3.1).
func runeSlice(s string) []rune { return []rune(s) }

func foldSubstring(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) < 2 || len(args) > 3 {
		return nil, false
	}
	if !args[0].IsString() || !args[1].IsNumber() {
		return nil, false
	}
	rs := runeSlice(args[0].Str)
	begin := int(args[1].Num)
	end := len(rs)
	if len(args) == 3 {
		if !args[2].IsNumber() {
			return nil, false
		}
		end = int(args[2].Num)
	}
	if begin < 0 || end < begin || end > len(rs) {
		return nil, false
	}
	return Str(string(rs[begin:end])), true
}

func foldIndexOf(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 2 || !args[0].IsString() || !args[1].IsString() {
		return nil, false
	}
	haystack := runeSlice(args[0].Str)
	needle := args[1].Str
	byteIdx := strings.Index(args[0].Str, needle)
	if byteIdx < 0 {
		return Num(-1), true
	}
	// convert byte index to rune index
	runeIdx := utf8.RuneCountInString(args[0].Str[:byteIdx])
	_ = haystack
	return Num(float64(runeIdx)), true
}

func foldReplace(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 3 {
		return nil, false
	}
	s, old, repl := args[0], args[1], args[2]
	if !s.IsString() || !old.IsString() || !repl.IsString() {
		return nil, false
	}
	return Str(strings.Replace(s.Str, old.Str, repl.Str, 1)), true
}

func foldReplaceAll(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 3 {
		return nil, false
	}
	s, old, repl := args[0], args[1], args[2]
	if !s.IsString() || !old.IsString() || !repl.IsString() {
		return nil, false
	}
	return Str(strings.ReplaceAll(s.Str, old.Str, repl.Str)), true
}

func foldSplitToChars(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 || !args[0].IsString() {
		return nil, false
	}
	rs := runeSlice(args[0].Str)
	out := make([]*Term, len(rs))
	for i, r := range rs {
		out[i] = Str(string(r))
	}
	return App(Sym("Chars"), out...), true
}

func foldSplitBy(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 2 || !args[0].IsString() || !args[1].IsString() {
		return nil, false
	}
	sep, s := args[0].Str, args[1].Str
	var parts []string
	if sep == "" {
		for _, r := range runeSlice(s) {
			parts = append(parts, string(r))
		}
	} else {
		parts = strings.Split(s, sep)
	}
	out := make([]*Term, len(parts))
	for i, p := range parts {
		out[i] = Str(p)
	}
	return App(Sym("Strings"), out...), true
}

func foldEscape(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 || !args[0].IsString() {
		return nil, false
	}
	return Str(escapeString(args[0].Str)), true
}

func foldUnescape(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 || !args[0].IsString() {
		return nil, false
	}
	out, ok := unescapeString(args[0].Str)
	if !ok {
		return nil, false
	}
	return Str(out), true
}

func foldCharFromCode(_ *foldCtx, args []*Term) (*Term, bool) {
	if len(args) != 1 || !args[0].IsNumber() {
		return nil, false
	}
	code := args[0].Num
	if code != float64(int64(code)) {
		return nil, false
	}
	cp := int64(code)
	if cp < 0 || cp > 0x10FFFF {
		return nil, false
	}
	return Str(string(rune(cp))), true
}
