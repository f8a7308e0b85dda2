package bindings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/boolexpr/pkg/boolexpr"
	"github.com/randalmurphal/boolexpr/pkg/boolexpr/bindings"
)

// TestNew verifies Bindings creation from maps.
func TestNew(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{"nil map", nil},
		{"empty map", map[string]any{}},
		{"with values", map[string]any{"key": "value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bindings.New(tt.data)
			assert.NotNil(t, b.Raw())
		})
	}
}

// TestString verifies string extraction with defaults.
func TestString(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal string
		want       string
	}{
		{"key exists", map[string]any{"name": "alice"}, "name", "default", "alice"},
		{"key missing", map[string]any{"other": "value"}, "name", "default", "default"},
		{"empty string", map[string]any{"name": ""}, "name", "default", ""},
		{"wrong type int", map[string]any{"name": 123}, "name", "default", "default"},
		{"wrong type bool", map[string]any{"name": true}, "name", "default", "default"},
		{"nil map", nil, "name", "default", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bindings.New(tt.data)
			assert.Equal(t, tt.want, b.String(tt.key, tt.defaultVal))
		})
	}
}

// TestBool verifies boolean extraction with defaults.
func TestBool(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal bool
		want       bool
	}{
		{"true value", map[string]any{"flag": true}, "flag", false, true},
		{"false value", map[string]any{"flag": false}, "flag", true, false},
		{"missing", map[string]any{}, "flag", true, true},
		{"wrong type", map[string]any{"flag": "yes"}, "flag", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bindings.New(tt.data)
			assert.Equal(t, tt.want, b.Bool(tt.key, tt.defaultVal))
		})
	}
}

// TestInt verifies integer extraction with type conversions.
func TestInt(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal int
		want       int
	}{
		{"int", map[string]any{"n": 42}, "n", 0, 42},
		{"int64", map[string]any{"n": int64(42)}, "n", 0, 42},
		{"whole float64", map[string]any{"n": 42.0}, "n", 0, 42},
		{"fractional float64 falls back", map[string]any{"n": 42.5}, "n", 7, 7},
		{"missing", map[string]any{}, "n", 7, 7},
		{"wrong type", map[string]any{"n": "42"}, "n", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bindings.New(tt.data)
			assert.Equal(t, tt.want, b.Int(tt.key, tt.defaultVal))
		})
	}
}

// TestFloat verifies float extraction with type conversions.
func TestFloat(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		key        string
		defaultVal float64
		want       float64
	}{
		{"float64", map[string]any{"n": 3.14}, "n", 0, 3.14},
		{"int", map[string]any{"n": 3}, "n", 0, 3.0},
		{"int64", map[string]any{"n": int64(3)}, "n", 0, 3.0},
		{"missing", map[string]any{}, "n", 1.5, 1.5},
		{"wrong type", map[string]any{"n": "3.14"}, "n", 1.5, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bindings.New(tt.data)
			assert.Equal(t, tt.want, b.Float(tt.key, tt.defaultVal))
		})
	}
}

func TestHas(t *testing.T) {
	b := bindings.New(map[string]any{"present": nil})
	assert.True(t, b.Has("present"))
	assert.False(t, b.Has("absent"))
}

func TestWith(t *testing.T) {
	base := bindings.New(map[string]any{"a": 1})
	extended := base.With("b", 2)

	assert.True(t, extended.Has("a"))
	assert.True(t, extended.Has("b"))
	assert.False(t, base.Has("b"), "With must not modify the receiver")
}

func TestFromYAML(t *testing.T) {
	b, err := bindings.FromYAML([]byte("age: 21\ncountry: SE\nis_active: true\n"))
	require.NoError(t, err)

	assert.Equal(t, 21, b.Int("age", 0))
	assert.Equal(t, "SE", b.String("country", ""))
	assert.True(t, b.Bool("is_active", false))
}

func TestFromYAML_Invalid(t *testing.T) {
	_, err := bindings.FromYAML([]byte("{invalid"))
	assert.Error(t, err)
}

func TestFromJSON(t *testing.T) {
	b, err := bindings.FromJSON([]byte(`{"age": 21, "country": "SE"}`))
	require.NoError(t, err)

	assert.Equal(t, 21.0, b.Float("age", 0))
	assert.Equal(t, "SE", b.String("country", ""))
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "vars.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("age: 30\n"), 0o644))

	b, err := bindings.FromFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 30, b.Int("age", 0))

	_, err = bindings.FromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	txtPath := filepath.Join(dir, "vars.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("age: 30\n"), 0o644))
	_, err = bindings.FromFile(txtPath)
	assert.Error(t, err)
}

// TestRawFeedsEvaluation verifies the loader output plugs into
// expression evaluation.
func TestRawFeedsEvaluation(t *testing.T) {
	b, err := bindings.FromYAML([]byte("age: 21\ncountry: SE\n"))
	require.NoError(t, err)

	got, err := boolexpr.Eval(`age >= 18 and country == "SE"`, b.Raw())
	require.NoError(t, err)
	assert.True(t, got)
}
