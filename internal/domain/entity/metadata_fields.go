package entity

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// The field types below decode client payloads on a best-effort basis:
// malformed input never fails decoding, it degrades to the field's default.

var (
	truthyWords = map[string]bool{"true": true, "1": true, "yes": true, "oui": true}
	falsyWords  = map[string]bool{"false": true, "0": true, "no": true, "non": true}
)

// decodeLoose decodes any JSON value, keeping numbers as json.Number.
func decodeLoose(data []byte) (any, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	return v, true
}

func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	}
	return ""
}

// Text is a string field that also accepts numbers and booleans.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	v, _ := decodeLoose(data)
	*t = Text(scalarString(v))
	return nil
}

func (t Text) String() string {
	return string(t)
}

func (t Text) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *Text) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
	case string:
		*t = Text(v)
	case []byte:
		*t = Text(v)
	default:
		return errors.New("entity: unsupported Text scan source")
	}
	return nil
}

// StringList accepts a JSON array or a single string split on commas and newlines.
type StringList []string

// SplitList trims every item and drops empties.
func SplitList(raw string) StringList {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	out := StringList{}
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	v, _ := decodeLoose(data)
	switch val := v.(type) {
	case []any:
		out := StringList{}
		for _, item := range val {
			if s := scalarString(item); s != "" {
				out = append(out, s)
			}
		}
		*l = out
	case string:
		*l = SplitList(val)
	case nil:
		*l = StringList{}
	default:
		if s := scalarString(val); s != "" {
			*l = StringList{s}
		} else {
			*l = StringList{}
		}
	}
	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return pq.StringArray(l).Value()
}

func (l *StringList) Scan(value interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(value); err != nil {
		return err
	}
	if arr == nil {
		arr = pq.StringArray{}
	}
	*l = StringList(arr)
	return nil
}

// ParseFlag interprets booleans, numbers (0 is false) and a small yes/no vocabulary.
// ok is false when v carries no recognizable truth value.
func ParseFlag(v any) (value bool, ok bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return false, false
		}
		return f != 0, true
	case float64:
		return val != 0, true
	case int:
		return val != 0, true
	case string:
		word := strings.ToLower(strings.TrimSpace(val))
		if truthyWords[word] {
			return true, true
		}
		if falsyWords[word] {
			return false, true
		}
	}
	return false, false
}

// Flag is a boolean field. Unrecognized input leaves the current value untouched,
// so a pre-seeded default survives.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	v, _ := decodeLoose(data)
	if b, ok := ParseFlag(v); ok {
		*f = Flag(b)
	}
	return nil
}

func (f Flag) Value() (driver.Value, error) {
	return bool(f), nil
}

func (f *Flag) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(v)
	case int64:
		*f = v != 0
	case []byte:
		b, err := strconv.ParseBool(string(v))
		if err != nil {
			return err
		}
		*f = Flag(b)
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*f = Flag(b)
	default:
		return errors.New("entity: unsupported Flag scan source")
	}
	return nil
}

// Number is a nullable numeric field. Non-numeric input yields null.
type Number struct {
	decimal.NullDecimal
}

// NewNumber returns a valid Number holding d.
func NewNumber(d decimal.Decimal) Number {
	return Number{decimal.NewNullDecimal(canonicalDecimal(d))}
}

// canonicalDecimal strips trailing zeros so equal values share one representation.
func canonicalDecimal(d decimal.Decimal) decimal.Decimal {
	c, err := decimal.NewFromString(d.String())
	if err != nil {
		return d
	}
	return c
}

func (n *Number) UnmarshalJSON(data []byte) error {
	n.NullDecimal = decimal.NullDecimal{}
	v, _ := decodeLoose(data)
	var raw string
	switch val := v.(type) {
	case json.Number:
		raw = val.String()
	case string:
		raw = strings.TrimSpace(val)
	default:
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	*n = NewNumber(d)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(n.Decimal.String()), nil
}

// Object is a free-form JSON object. A JSON-encoded string is parsed; when that fails
// the raw text is kept under "description".
type Object map[string]any

func (o *Object) UnmarshalJSON(data []byte) error {
	v, _ := decodeLoose(data)
	switch val := v.(type) {
	case map[string]any:
		*o = Object(val)
	case string:
		raw := strings.TrimSpace(val)
		if raw == "" {
			*o = Object{}
			return nil
		}
		parsed, ok := decodeLoose([]byte(raw))
		if m, isMap := parsed.(map[string]any); ok && isMap {
			*o = Object(m)
			return nil
		}
		*o = Object{"description": val}
	default:
		*o = Object{}
	}
	return nil
}

func (o Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]any(o))
}

func (o Object) Value() (driver.Value, error) {
	return o.MarshalJSON()
}

func (o *Object) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*o = Object{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("entity: unsupported Object scan source")
	}
	parsed, ok := decodeLoose(data)
	m, isMap := parsed.(map[string]any)
	if !ok || !isMap {
		*o = Object{}
		return nil
	}
	*o = Object(m)
	return nil
}
