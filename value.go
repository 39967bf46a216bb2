package ndjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Value is one JSON value shape. The set of implementations is closed:
// Null, Bool, Number, String, Array and Object.
type Value interface {
	isValue()
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number carries the canonical text of a JSON number as produced by
// canonicalNumber.
type Number string

// String is a decoded JSON string.
type String string

// Array is an ordered sequence of values.
type Array []Value

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered list of members. Member order follows the input
// document; duplicate keys keep their first position with the last value.
type Object []Member

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

var errTrailingData = errors.New("json: trailing data after document")

// Parse decodes one whole line as a single JSON document. Any bytes left
// over after the document make the line invalid.
func Parse(line []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()
	v, err := parseValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return nil, fmt.Errorf("json: unexpected delimiter %q", t.String())
	case string:
		return String(t), nil
	case json.Number:
		return Number(canonicalNumber(t)), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	default:
		return nil, fmt.Errorf("json: unexpected token %v", tok)
	}
}

func parseObject(dec *json.Decoder) (Value, error) {
	obj := Object{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("json: expected object key, got %v", tok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		obj = obj.set(key, val)
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, err
	}
	return obj, nil
}

func parseArray(dec *json.Decoder) (Value, error) {
	arr := Array{}
	for dec.More() {
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, err
	}
	return arr, nil
}

func (o Object) set(key string, val Value) Object {
	for i := range o {
		if o[i].Key == key {
			o[i].Value = val
			return o
		}
	}
	return append(o, Member{Key: key, Value: val})
}

// canonicalNumber reduces a number literal to the form the renderer shows:
// integer literals stay verbatim, anything with a fraction or exponent is
// reparsed as float64 and reformatted with at least one fractional digit,
// so "1e2" becomes "100.0" and "0.00" becomes "0.0".
func canonicalNumber(n json.Number) string {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		return s
	}
	f, err := n.Float64()
	if err != nil {
		return s
	}
	out := strconv.FormatFloat(f, 'g', -1, 64)
	if i := strings.IndexAny(out, "eE"); i >= 0 {
		return out[:i+1] + trimExponent(out[i+1:])
	}
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

// trimExponent drops the explicit plus sign and leading zeros Go puts in
// exponents ("+08" -> "8") while keeping a lone zero or minus sign intact.
func trimExponent(exp string) string {
	neg := false
	switch {
	case strings.HasPrefix(exp, "+"):
		exp = exp[1:]
	case strings.HasPrefix(exp, "-"):
		neg = true
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	if neg {
		return "-" + exp
	}
	return exp
}
