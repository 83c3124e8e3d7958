package eval

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmespath-go/jmespath/internal/jmerr"
	"github.com/jmespath-go/jmespath/internal/pos"
	"github.com/jmespath-go/jmespath/internal/value"
)

// DecodeJSON reads exactly one JSON value from r and converts it to a
// value.Value, preserving object key order (last-value-wins on a duplicate
// key, first-seen position retained, per internal/value's Obj). A plain
// json.Unmarshal into map[string]interface{} cannot do this: Go maps are
// unordered, so the only way to observe an object's declared key order is
// to walk the token stream by hand.
//
// A JSON number that is not representable as a finite float64 (this can
// only happen for numbers of extreme magnitude; encoding/json already
// rejects malformed syntax before DecodeJSON ever sees a Token) produces a
// NotANumber error rather than silently becoming Infinity, per spec §6.
func DecodeJSON(r io.Reader) (value.Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return value.Value{}, err
	}

	return v, nil
}

// decodeJSONText parses the already-extracted text of a backtick JSON
// literal (spec §4.4's JSONLiteral.Raw), reporting a Syntax error at pos on
// malformed input, per spec §4.5's evaluation rule for that node.
func decodeJSONText(raw string, at pos.Position) (value.Value, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return value.Value{}, jmerr.NewSyntax().
			ForReason(fmt.Sprintf("invalid JSON literal: %v", err)).
			At(at).
			Build()
	}

	return v, nil
}

func decodeValue(dec *json.Decoder) (value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return value.Value{}, err
	}

	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (value.Value, error) {
	switch t := tok.(type) {
	case nil:
		return value.Null, nil
	case bool:
		return value.Bool(t), nil
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return value.Value{}, err
		}

		n, ok := value.NumChecked(f)
		if !ok {
			return value.Value{}, jmerr.NewNotANumber().
				ForReason(fmt.Sprintf("JSON number %q is not representable as a finite number", t.String())).
				Build()
		}

		return n, nil
	case string:
		return value.Str(t), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		default:
			return value.Value{}, fmt.Errorf("unexpected JSON delimiter %q", t)
		}
	default:
		return value.Value{}, fmt.Errorf("unexpected JSON token %T", tok)
	}
}

func decodeArray(dec *json.Decoder) (value.Value, error) {
	var items []value.Value

	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return value.Value{}, err
		}

		items = append(items, v)
	}

	if _, err := dec.Token(); err != nil { // consume ']'
		return value.Value{}, err
	}

	return value.Arr(items), nil
}

func decodeObject(dec *json.Decoder) (value.Value, error) {
	var pairs []value.Pair

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return value.Value{}, err
		}

		key, ok := keyTok.(string)
		if !ok {
			return value.Value{}, fmt.Errorf("expected JSON object key, got %T", keyTok)
		}

		v, err := decodeValue(dec)
		if err != nil {
			return value.Value{}, err
		}

		pairs = append(pairs, value.Pair{Key: key, Value: v})
	}

	if _, err := dec.Token(); err != nil { // consume '}'
		return value.Value{}, err
	}

	return value.ObjFromPairs(pairs), nil
}
