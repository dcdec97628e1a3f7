package symcore

import (
	"encoding/json"
	"fmt"
)

// wireNode is the tagged-object JSON shape described in §6.2:
// {"k":"Num","v":...} | {"k":"Str","v":...} | {"k":"Sym","v":...} |
// {"k":"Call","h":...,"a":[...]} | {"k":"Splice","items":[...]}.
type wireNode struct {
	K     string            `json:"k"`
	V     json.RawMessage   `json:"v,omitempty"`
	H     json.RawMessage   `json:"h,omitempty"`
	A     []json.RawMessage `json:"a,omitempty"`
	Items []json.RawMessage `json:"items,omitempty"`
}

// encodeValue builds the JSON-marshalable tree for t. Encode never needs to
// handle a Splice: a well-formed Term (one produced by this package) never
// contains one (§6.2).
func encodeValue(t *Term) (interface{}, error) {
	switch t.Kind {
	case KindNumber:
		return map[string]interface{}{"k": "Num", "v": t.Num}, nil
	case KindString:
		return map[string]interface{}{"k": "Str", "v": t.Str}, nil
	case KindSymbol:
		return map[string]interface{}{"k": "Sym", "v": t.Str}, nil
	case KindApp:
		h, err := encodeValue(t.Head)
		if err != nil {
			return nil, err
		}
		args := make([]interface{}, len(t.Args))
		for i, a := range t.Args {
			v, err := encodeValue(a)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return map[string]interface{}{"k": "Call", "h": h, "a": args}, nil
	default:
		return nil, fmt.Errorf("symcore: serialize: unknown node variant %v", t.Kind)
	}
}

// Serialize encodes t as the canonical tagged-object JSON string (§6.2,
// §4.4's Serialize primitive).
func Serialize(t *Term) (string, error) {
	v, err := encodeValue(t)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeFrag decodes one wire node, returning a Frag because a Splice node
// can legally occur nested inside a Call's "a" array — a malformed-by-Fold
// shape that is nonetheless legal input to Deserialize (§6.2) and is
// flattened by the enclosing MakeApp exactly as substitution flattens a
// VarRest binding.
func decodeFrag(raw json.RawMessage) (Frag, error) {
	var w wireNode
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}

	switch w.K {
	case "Num":
		var v float64
		if err := json.Unmarshal(w.V, &v); err != nil {
			return nil, err
		}
		return Num(v), nil

	case "Str":
		var v string
		if err := json.Unmarshal(w.V, &v); err != nil {
			return nil, err
		}
		return Str(v), nil

	case "Sym":
		var v string
		if err := json.Unmarshal(w.V, &v); err != nil {
			return nil, err
		}
		return Sym(v), nil

	case "Call":
		headFrag, err := decodeFrag(w.H)
		if err != nil {
			return nil, err
		}
		headTerm, ok := headFrag.(*Term)
		if !ok {
			return nil, fmt.Errorf("symcore: deserialize: head position cannot be a splice")
		}
		argFrags := make([]Frag, len(w.A))
		for i, raw := range w.A {
			f, err := decodeFrag(raw)
			if err != nil {
				return nil, err
			}
			argFrags[i] = f
		}
		return MakeApp(headTerm, argFrags...), nil

	case "Splice":
		items := make([]*Term, len(w.Items))
		for i, raw := range w.Items {
			f, err := decodeFrag(raw)
			if err != nil {
				return nil, err
			}
			term, ok := f.(*Term)
			if !ok {
				return nil, fmt.Errorf("symcore: deserialize: a splice cannot contain a nested splice")
			}
			items[i] = term
		}
		return NewSplice(items...), nil

	default:
		return nil, fmt.Errorf("symcore: deserialize: unknown tag %q", w.K)
	}
}

// Deserialize decodes s, the canonical tagged-object JSON encoding of a
// term, back into a Term (§6.2, §4.4's Deserialize primitive). Malformed
// JSON, an unknown tag, or a top-level Splice all fail — Deserialize never
// returns a partially-decoded result.
func Deserialize(s string) (*Term, error) {
	frag, err := decodeFrag(json.RawMessage(s))
	if err != nil {
		return nil, err
	}
	t, ok := frag.(*Term)
	if !ok {
		return nil, fmt.Errorf("symcore: deserialize: top-level value is a splice, not a term")
	}
	return t, nil
}
