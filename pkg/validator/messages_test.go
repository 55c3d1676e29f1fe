package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/frostal/pkg/validator"
)

func TestFormatMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		field    string
		params   []any
		want     string
	}{
		{"field then params", "Hello %s the %s", "to", []any{"World"}, "Hello to the World"},
		{"any verb letter", "%s is %d years", "age", []any{18}, "age is 18 years"},
		{"missing params render empty", "%s between %s and %s", "n", []any{1}, "n between 1 and "},
		{"surplus params ignored", "%s is required", "email", []any{"x", "y"}, "email is required"},
		{"escaped percent", "100%% of %s", "quota", nil, "100% of quota"},
		{"explicit positions", "%2$s then %1$s", "f", []any{"x"}, "x then f"},
		{"trailing percent", "%s at 50%", "load", nil, "load at 50%"},
		{"float param", "%s max %s", "n", []any{2.5}, "n max 2.5"},
		{"list param", "%s in %s", "tag", []any{[]any{"a", "b"}}, "tag in [a b]"},
		{"nil param", "%s <%s>", "f", []any{nil}, "f <>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.FormatMessage(tt.template, tt.field, tt.params))
		})
	}

	t.Run("time param", func(t *testing.T) {
		ts := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
		assert.Equal(t, "d before 2024-01-15 10:30:00", validator.FormatMessage("%s before %s", "d", []any{ts}))
	})
}

func TestFormatErrorMessage(t *testing.T) {
	t.Parallel()

	v := validator.New(validator.WithMessages(map[string]string{"foo": "Hello %s the %s"}))

	assert.Equal(t, "Hello to the World", v.FormatErrorMessage("foo", "to", "World"))
	assert.Equal(t, "The email field is required", v.FormatErrorMessage(validator.RuleRequired, "email"))
	assert.Equal(t, "The name field must be between 2 and 64 characters long",
		v.FormatErrorMessage(validator.RuleBetweenLength, "name", 2, 64))
	assert.Equal(t, "The x field is invalid", v.FormatErrorMessage("unknown", "x"))
}
