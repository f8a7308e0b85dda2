package ruleset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/boolexpr/pkg/boolexpr/ruleset"
)

func TestAdd_CompilesEagerly(t *testing.T) {
	set := ruleset.New()

	rule, err := set.Add("adult", "age >= 18")
	require.NoError(t, err)
	assert.NotEmpty(t, rule.ID)
	assert.Equal(t, "adult", rule.Name)
	assert.Equal(t, "age >= 18", rule.Source)

	// Malformed expression fails at Add, not at evaluation, and leaves
	// the set unchanged.
	_, err = set.Add("broken", "age >=")
	require.Error(t, err)
	assert.Equal(t, 1, set.Len())
}

func TestAdd_Validation(t *testing.T) {
	set := ruleset.New()

	_, err := set.Add("", "a == 1")
	assert.ErrorIs(t, err, ruleset.ErrEmptyRule)

	_, err = set.Add("empty", "")
	assert.ErrorIs(t, err, ruleset.ErrEmptyRule)

	_, err = set.Add("dup", "a == 1")
	require.NoError(t, err)
	_, err = set.Add("dup", "a == 2")
	assert.ErrorIs(t, err, ruleset.ErrDuplicateRule)
}

func TestEval(t *testing.T) {
	set := ruleset.New()
	_, err := set.Add("adult", "age >= 18")
	require.NoError(t, err)

	got, err := set.Eval("adult", map[string]any{"age": 21})
	require.NoError(t, err)
	assert.True(t, got)

	got, err = set.Eval("adult", map[string]any{"age": 17})
	require.NoError(t, err)
	assert.False(t, got)

	_, err = set.Eval("unknown", map[string]any{})
	assert.ErrorIs(t, err, ruleset.ErrRuleNotFound)
}

func TestEvalAll(t *testing.T) {
	set := ruleset.New()
	_, err := set.Add("adult", "age >= 18")
	require.NoError(t, err)
	_, err = set.Add("local", `country == "SE"`)
	require.NoError(t, err)

	results, err := set.EvalAll(map[string]any{"age": 21, "country": "NO"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"adult": true, "local": false}, results)
}

func TestEvalAll_StopsOnError(t *testing.T) {
	set := ruleset.New()
	_, err := set.Add("mixed", "age < name")
	require.NoError(t, err)

	_, err = set.EvalAll(map[string]any{"age": 21, "name": "alice"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `rule "mixed"`)
}

func TestRules_PreservesDeclarationOrder(t *testing.T) {
	set := ruleset.New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := set.Add(name, "x > 0")
		require.NoError(t, err)
	}

	var names []string
	for _, r := range set.Rules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)
}

func TestFromYAML(t *testing.T) {
	doc := []byte(`
rules:
  - name: adult
    expr: age >= 18
  - name: swedish_adult
    expr: age >= 18 and country == "SE"
`)
	set, err := ruleset.FromYAML(doc)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())

	got, err := set.Eval("swedish_adult", map[string]any{"age": 20, "country": "SE"})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestFromYAML_MalformedRuleFailsLoad(t *testing.T) {
	doc := []byte(`
rules:
  - name: broken
    expr: "(age >= 18"
`)
	_, err := ruleset.FromYAML(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestFromJSON(t *testing.T) {
	doc := []byte(`{"rules": [{"name": "adult", "expr": "age >= 18"}]}`)
	set, err := ruleset.FromJSON(doc)
	require.NoError(t, err)

	got, err := set.Eval("adult", map[string]any{"age": 18})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - name: r\n    expr: x > 0\n"), 0o644))

	set, err := ruleset.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())

	_, err = ruleset.FromFile(filepath.Join(dir, "rules.txt"))
	assert.Error(t, err)
}
