// Package bindings wraps the variable maps consulted during expression
// evaluation with type-safe accessors and file loaders.
package bindings

// Bindings wraps a map[string]any for type-safe value extraction.
// All accessor methods return default values if the key is missing
// or the value cannot be converted to the requested type.
type Bindings struct {
	data map[string]any
}

// New creates Bindings from the given map.
// If data is nil, empty Bindings are returned.
func New(data map[string]any) Bindings {
	if data == nil {
		data = make(map[string]any)
	}
	return Bindings{data: data}
}

// Raw returns the underlying map, suitable for Expression.Evaluate.
func (b Bindings) Raw() map[string]any {
	return b.data
}

// Has returns true if the key is bound.
func (b Bindings) Has(key string) bool {
	_, ok := b.data[key]
	return ok
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (b Bindings) String(key, defaultVal string) string {
	v, ok := b.data[key]
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or not a bool.
func (b Bindings) Bool(key string, defaultVal bool) bool {
	v, ok := b.data[key]
	if !ok {
		return defaultVal
	}
	if val, ok := v.(bool); ok {
		return val
	}
	return defaultVal
}

// Int returns the integer value for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - int: used directly
//   - int64: converted to int
//   - float64: converted to int (only if no fractional part)
func (b Bindings) Int(key string, defaultVal int) int {
	v, ok := b.data[key]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		// Only convert if there's no fractional part
		if val == float64(int(val)) {
			return int(val)
		}
	}
	return defaultVal
}

// Float returns the float64 value for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - float64: used directly
//   - int: converted to float64
//   - int64: converted to float64
func (b Bindings) Float(key string, defaultVal float64) float64 {
	v, ok := b.data[key]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	}
	return defaultVal
}

// With returns a copy of the bindings with one additional binding.
// The receiver is not modified.
func (b Bindings) With(key string, value any) Bindings {
	merged := make(map[string]any, len(b.data)+1)
	for k, v := range b.data {
		merged[k] = v
	}
	merged[key] = value
	return Bindings{data: merged}
}
