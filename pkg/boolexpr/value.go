package boolexpr

// ValueKind tags the runtime value variant.
type ValueKind int

const (
	ValueBool ValueKind = iota
	ValueNumber
	ValueString
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case ValueBool:
		return "bool"
	case ValueNumber:
		return "number"
	case ValueString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is the closed runtime value variant produced by evaluation:
// a boolean, a float64 number, or a string. The zero Value is the
// boolean false.
type Value struct {
	kind ValueKind
	num  float64
	str  string
	b    bool
}

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{kind: ValueBool, b: b} }

// NumberValue wraps a number.
func NumberValue(f float64) Value { return Value{kind: ValueNumber, num: f} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: ValueString, str: s} }

// Kind returns the variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// Bool returns the boolean payload. Zero for other kinds.
func (v Value) Bool() bool { return v.b }

// Number returns the numeric payload. Zero for other kinds.
func (v Value) Number() float64 { return v.num }

// Str returns the string payload. Empty for other kinds.
func (v Value) Str() string { return v.str }

// Any returns the underlying Go value: bool, float64, or string.
func (v Value) Any() any {
	switch v.kind {
	case ValueNumber:
		return v.num
	case ValueString:
		return v.str
	default:
		return v.b
	}
}

// Truthy returns the boolean interpretation of the value: booleans are
// themselves, numbers are true when nonzero, strings when non-empty.
func (v Value) Truthy() bool {
	switch v.kind {
	case ValueNumber:
		return v.num != 0
	case ValueString:
		return v.str != ""
	default:
		return v.b
	}
}

// Equal reports structural equality. Values of different kinds are
// never equal; no coercion between numbers and strings takes place.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ValueNumber:
		return v.num == o.num
	case ValueString:
		return v.str == o.str
	default:
		return v.b == o.b
	}
}

// valueOf converts a binding value to a Value. nil reads as false,
// matching the treatment of missing variables. The second result is
// false for Go types outside the closed variant.
func valueOf(raw any) (Value, bool) {
	switch x := raw.(type) {
	case nil:
		return BoolValue(false), true
	case bool:
		return BoolValue(x), true
	case string:
		return StringValue(x), true
	case float64:
		return NumberValue(x), true
	case float32:
		return NumberValue(float64(x)), true
	case int:
		return NumberValue(float64(x)), true
	case int64:
		return NumberValue(float64(x)), true
	case int32:
		return NumberValue(float64(x)), true
	case int16:
		return NumberValue(float64(x)), true
	case int8:
		return NumberValue(float64(x)), true
	case uint:
		return NumberValue(float64(x)), true
	case uint64:
		return NumberValue(float64(x)), true
	case uint32:
		return NumberValue(float64(x)), true
	case uint16:
		return NumberValue(float64(x)), true
	case uint8:
		return NumberValue(float64(x)), true
	default:
		return Value{}, false
	}
}
