package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/frostal/pkg/validator"
)

func TestParseRules(t *testing.T) {
	t.Parallel()

	v := validator.New()

	t.Run("list with bare names and parameters", func(t *testing.T) {
		rules, err := v.ParseRules(validator.RuleSpec{
			"foo": []any{"required", map[string]any{"minLength": 3}},
		})
		require.NoError(t, err)

		assert.Equal(t, validator.Rules{
			"foo": {
				{Name: "required", Params: []any{}},
				{Name: "minLength", Params: []any{3}},
			},
		}, rules)
	})

	t.Run("string list", func(t *testing.T) {
		rules, err := v.ParseRules(validator.RuleSpec{"email": []string{"required", "email"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"required", "email"}, rules["email"].Names())
	})

	t.Run("map declaration is read in sorted order", func(t *testing.T) {
		rules, err := v.ParseRules(validator.RuleSpec{
			"foo": map[string]any{"required": nil, "minLength": 3},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"minLength", "required"}, rules["foo"].Names())

		required, ok := rules["foo"].Get("required")
		require.True(t, ok)
		assert.NotNil(t, required.Params)
		assert.Empty(t, required.Params)
	})

	t.Run("positional list declaration", func(t *testing.T) {
		rules, err := v.ParseRules(validator.RuleSpec{
			"foo": map[string]any{"0": "required", "1": map[string]any{"max": 5}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"required", "max"}, rules["foo"].Names())
	})

	t.Run("mixed index and named keys", func(t *testing.T) {
		rules, err := v.ParseRules(validator.RuleSpec{
			"foo": map[string]any{"0": "required", "minLength": 3},
		})
		require.NoError(t, err)
		assert.Equal(t, validator.Rules{
			"foo": {
				{Name: "required", Params: []any{}},
				{Name: "minLength", Params: []any{3}},
			},
		}, rules)
	})

	t.Run("index keys are ordered by number", func(t *testing.T) {
		rules, err := v.ParseRules(validator.RuleSpec{
			"foo": map[string]any{"10": "email", "2": map[string]any{"maxLength": 64}, "0": "required", "alpha": nil},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"required", "maxLength", "email", "alpha"}, rules["foo"].Names())
	})

	t.Run("parameter shapes normalize to the same list", func(t *testing.T) {
		fromList, err := v.ParseRules(validator.RuleSpec{
			"age": []any{map[string]any{"between": []any{1, 2}}, "required"},
		})
		require.NoError(t, err)

		fromPositionalMap, err := v.ParseRules(validator.RuleSpec{
			"age": map[string]any{"between": map[string]any{"0": 1, "1": 2}, "required": nil},
		})
		require.NoError(t, err)

		fromIntMap, err := v.ParseRules(validator.RuleSpec{
			"age": map[string]any{"between": map[int]any{0: 1, 1: 2}, "required": []any{}},
		})
		require.NoError(t, err)

		assert.Equal(t, fromList, fromPositionalMap)
		assert.Equal(t, fromList, fromIntMap)

		between, _ := fromList["age"].Get("between")
		assert.Equal(t, []any{1, 2}, between.Params)
	})

	t.Run("variadic parameters", func(t *testing.T) {
		rules, err := v.ParseRules(validator.RuleSpec{
			"tags": []any{map[string]any{"inArray": []string{"a", "b", "c"}}},
		})
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b", "c"}, rules["tags"][0].Params)
	})

	t.Run("redeclared rule keeps its first position", func(t *testing.T) {
		rules, err := v.ParseRules(validator.RuleSpec{
			"n": []any{map[string]any{"min": 1}, "required", map[string]any{"min": 5}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"min", "required"}, rules["n"].Names())
		assert.Equal(t, []any{5}, rules["n"][0].Params)
	})

	t.Run("nested spec on array", func(t *testing.T) {
		rules, err := v.ParseRules(validator.RuleSpec{
			"foo": map[string]any{
				"required": nil,
				"array": map[string]any{
					"bar": []string{"required"},
					"baz": map[string]any{"required": []any{}},
				},
			},
		})
		require.NoError(t, err)

		array, ok := rules["foo"].Get("array")
		require.True(t, ok)
		assert.Empty(t, array.Params)
		assert.Equal(t, validator.Rules{
			"bar": {{Name: "required", Params: []any{}}},
			"baz": {{Name: "required", Params: []any{}}},
		}, array.Nested)
	})
}

func TestParseRulesErrors(t *testing.T) {
	t.Parallel()

	v := validator.New()

	tests := []struct {
		name string
		spec validator.RuleSpec
		want error
	}{
		{"scalar declaration", validator.RuleSpec{"foo": "required"}, validator.ErrRuleParsing},
		{"number declaration", validator.RuleSpec{"foo": 42}, validator.ErrRuleParsing},
		{"nil declaration", validator.RuleSpec{"foo": nil}, validator.ErrRuleParsing},
		{"invalid list entry", validator.RuleSpec{"foo": []any{5}}, validator.ErrRuleParsing},
		{"invalid indexed entry", validator.RuleSpec{"foo": map[string]any{"0": 5}}, validator.ErrRuleParsing},
		{"padded index key", validator.RuleSpec{"foo": map[string]any{"01": "required"}}, validator.ErrRuleNotFound},
		{"empty rule name", validator.RuleSpec{"foo": []any{""}}, validator.ErrRuleParsing},
		{"unknown rule", validator.RuleSpec{"foo": []any{"impossible"}}, validator.ErrRuleNotFound},
		{"unknown nested rule", validator.RuleSpec{"foo": map[string]any{"array": map[string]any{"bar": []any{"impossible"}}}}, validator.ErrRuleNotFound},
		{"nested spec on non-array rule", validator.RuleSpec{"foo": map[string]any{"required": map[string]any{"bar": []any{"required"}}}}, validator.ErrRuleParsing},
		{"missing parameter", validator.RuleSpec{"foo": []any{"length"}}, validator.ErrRuleParsing},
		{"surplus parameter", validator.RuleSpec{"foo": map[string]any{"required": 5}}, validator.ErrRuleParsing},
		{"sparse int keys", validator.RuleSpec{"foo": map[string]any{"between": map[int]any{0: 1, 2: 3}}}, validator.ErrRuleParsing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := v.ParseRules(tt.spec)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, rules)
		})
	}
}

func TestParseRulesMaxDepth(t *testing.T) {
	t.Parallel()

	oneLevel := validator.RuleSpec{
		"a": map[string]any{"array": map[string]any{"b": []any{"required"}}},
	}
	twoLevels := validator.RuleSpec{
		"a": map[string]any{"array": map[string]any{
			"b": map[string]any{"array": map[string]any{"c": []any{"required"}}},
		}},
	}

	v := validator.New(validator.WithMaxDepth(1))

	_, err := v.ParseRules(oneLevel)
	require.NoError(t, err)

	_, err = v.ParseRules(twoLevels)
	require.ErrorIs(t, err, validator.ErrMaxDepthExceeded)
	assert.ErrorIs(t, err, validator.ErrRuleParsing)

	_, err = validator.New().ParseRules(twoLevels)
	assert.NoError(t, err)
}
