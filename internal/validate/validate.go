// Package validate checks request fields against declarative per-endpoint
// rules and reports every failure as a structured field error.
package validate

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Locations a field value can come from.
const (
	LocationParams = "params"
	LocationBody   = "body"
)

// FieldError is a single validation failure as returned to clients.
type FieldError struct {
	Type     string `json:"type"` // always "field"
	Value    any    `json:"value"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

// Validation failure messages.
const (
	msgNotEmpty = "Value must be not empty"
	msgNumber   = "Value should be a number"
	msgString   = "value must be a string"
	msgBoolean  = "value must be a boolean"
)

type kind int

const (
	kindString kind = iota
	kindNumber
	kindBoolean
)

// Rule names a field and the type it must validate as.
// Every rule also requires the trimmed value to be non-empty.
type Rule struct {
	field string
	kind  kind
}

// String requires a non-empty string field.
func String(field string) Rule { return Rule{field: field, kind: kindString} }

// Number requires a non-empty numeric field (numbers may arrive as strings).
func Number(field string) Rule { return Rule{field: field, kind: kindNumber} }

// Boolean requires a non-empty true/false field.
func Boolean(field string) Rule { return Rule{field: field, kind: kindBoolean} }

// Values holds raw request values: path parameters and the decoded JSON body.
// Path parameters shadow body fields of the same name.
type Values struct {
	params map[string]string
	body   map[string]any
}

// NewValues constructs Values from path params and a decoded JSON body.
// Either map may be nil.
func NewValues(params map[string]string, body map[string]any) *Values {
	return &Values{params: params, body: body}
}

// Check evaluates all rules eagerly and returns every failure; an empty
// slice means the request passed.
func Check(v *Values, rules ...Rule) []FieldError {
	var out []FieldError
	for _, r := range rules {
		raw, loc, found := v.lookup(r.field)
		str := strings.TrimSpace(stringify(raw))

		fail := func(msg string) {
			var val any
			if found {
				val = raw
				if s, ok := raw.(string); ok {
					val = strings.TrimSpace(s)
				}
			}
			out = append(out, FieldError{Type: "field", Value: val, Msg: msg, Path: r.field, Location: loc})
		}

		if !found || str == "" {
			fail(msgNotEmpty)
			continue
		}
		switch r.kind {
		case kindNumber:
			if _, err := strconv.ParseFloat(str, 64); err != nil {
				fail(msgNumber)
			}
		case kindString:
			if _, ok := raw.(string); !ok {
				fail(msgString)
			}
		case kindBoolean:
			if str != "true" && str != "false" {
				fail(msgBoolean)
			}
		}
	}
	return out
}

// Int64 returns the field parsed as int64; zero when absent or malformed.
// Intended for use after Check has passed.
func (v *Values) Int64(field string) int64 {
	raw, _, _ := v.lookup(field)
	n, _ := strconv.ParseInt(strings.TrimSpace(stringify(raw)), 10, 64)
	return n
}

// Int returns the field parsed as int; zero when absent or malformed.
func (v *Values) Int(field string) int {
	return int(v.Int64(field))
}

// String returns the trimmed string form of the field.
func (v *Values) String(field string) string {
	raw, _, _ := v.lookup(field)
	return strings.TrimSpace(stringify(raw))
}

// Bool reports whether the field equals true (boolean or "true" string).
func (v *Values) Bool(field string) bool {
	return v.String(field) == "true"
}

func (v *Values) lookup(field string) (raw any, location string, found bool) {
	if s, ok := v.params[field]; ok {
		return s, LocationParams, true
	}
	if val, ok := v.body[field]; ok && val != nil {
		return val, LocationBody, true
	}
	return nil, LocationBody, false
}

func stringify(raw any) string {
	switch t := raw.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
