package value

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON renders v as JSON text, preserving object key order (per
// PreserveInsertionOrder) instead of routing through map[string]interface{},
// which encoding/json would re-sort alphabetically on Marshal. An Expression
// value — never itself meaningful JSON — renders as its source text, so a
// caller encoding a transformed document never silently drops an `&expr`
// that leaked into the result.
func MarshalJSON(v Value) string {
	var b bytes.Buffer

	writeJSON(&b, v)

	return b.String()
}

// MarshalJSONIndent is MarshalJSON with indentation applied, for
// human-facing output (the query CLI's result printer).
func MarshalJSONIndent(v Value, prefix, indent string) (string, error) {
	var out bytes.Buffer

	if err := json.Indent(&out, []byte(MarshalJSON(v)), prefix, indent); err != nil {
		return "", err
	}

	return out.String(), nil
}

func writeJSON(w *bytes.Buffer, v Value) {
	switch v.Kind() {
	case KindNull:
		w.WriteString("null")
	case KindBoolean:
		if v.Bool() {
			w.WriteString("true")
		} else {
			w.WriteString("false")
		}
	case KindNumber:
		b, _ := json.Marshal(v.Num())
		w.Write(b)
	case KindString:
		b, _ := json.Marshal(v.Str())
		w.Write(b)
	case KindArray:
		w.WriteByte('[')

		for i, e := range v.Items() {
			if i > 0 {
				w.WriteByte(',')
			}

			writeJSON(w, e)
		}

		w.WriteByte(']')
	case KindObject:
		w.WriteByte('{')

		for i, p := range v.Object().Pairs() {
			if i > 0 {
				w.WriteByte(',')
			}

			kb, _ := json.Marshal(p.Key)
			w.Write(kb)
			w.WriteByte(':')
			writeJSON(w, p.Value)
		}

		w.WriteByte('}')
	case KindExpression:
		b, _ := json.Marshal(v.Expr().String())
		w.Write(b)
	}
}
