package omenu

import (
	"bytes"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// ValueKind tags the closed set of shapes a customization default or
// selection can take.
type ValueKind int

const (
	KindAbsent     ValueKind = iota // zero Value; no default/selection given
	KindString                      // single option ID or free text
	KindStringList                  // set of option IDs (multi_select)
	KindNumber                      // quantity/range value
	KindBool                        // boolean toggle
)

// Value is the tagged union used for customization defaults and selections.
// The resolver dispatches on Kind, never on raw JSON shape; the only place
// JSON shape is sniffed is UnmarshalJSON, which converts immediately into
// this closed form.
type Value struct {
	kind ValueKind
	str  string
	list []string
	num  float64
	b    bool
}

// StringValue wraps a single option ID or free-text string.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// StringListValue wraps a set of option IDs.
func StringListValue(ids ...string) Value {
	return Value{kind: KindStringList, list: append([]string(nil), ids...)}
}

// NumberValue wraps a numeric quantity or range value.
func NumberValue(n float64) Value { return Value{kind: KindNumber, num: n} }

// BoolValue wraps a boolean toggle.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the shape tag of v.
func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent reports whether v is the zero (absent) value.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// String returns the string payload; ok is false for other kinds.
func (v Value) String() (string, bool) { return v.str, v.kind == KindString }

// StringList returns the string-list payload; ok is false for other kinds.
func (v Value) StringList() ([]string, bool) {
	if v.kind != KindStringList {
		return nil, false
	}
	return append([]string(nil), v.list...), true
}

// Number returns the numeric payload; ok is false for other kinds.
func (v Value) Number() (float64, bool) { return v.num, v.kind == KindNumber }

// Bool returns the boolean payload; ok is false for other kinds.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Equal reports structural equality of two values.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindStringList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
		return true
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	}
	return true
}

// GoString renders the payload for error messages.
func (v Value) GoString() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindStringList:
		return fmt.Sprintf("%q", v.list)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return "<absent>"
}

// MarshalJSON emits the payload in its natural JSON shape.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindStringList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	}
	return []byte("null"), nil
}

// UnmarshalJSON sniffs the JSON type once and converts into the closed
// variant form. Objects are rejected; null maps to the absent value.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*v = Value{}
		return nil
	}
	switch data[0] {
	case 'n':
		*v = Value{}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	case '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("omenu: selection array must contain strings: %w", err)
		}
		*v = Value{kind: KindStringList, list: list}
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = BoolValue(b)
		return nil
	case '{':
		return fmt.Errorf("omenu: selection value cannot be an object")
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = NumberValue(n)
		return nil
	}
}
