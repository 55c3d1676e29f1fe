package validator

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrValidationFailed is matched by Errors values with errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrRuleParsing is returned when a rule spec is structurally malformed.
	ErrRuleParsing = errors.New("invalid rule specification")

	// ErrRuleNotFound is returned when a spec references a rule missing from the catalog.
	ErrRuleNotFound = errors.New("validation rule not found")

	// ErrMaxDepthExceeded is returned when nested array rules go deeper than the
	// configured limit. It also matches ErrRuleParsing.
	ErrMaxDepthExceeded = fmt.Errorf("%w: maximum nesting depth exceeded", ErrRuleParsing)
)

// RuleError names the field and rule behind a structural failure such as
// ErrRuleNotFound.
type RuleError struct {
	Field string
	Rule  string
	Err   error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%v: %q on field %q", e.Err, e.Rule, e.Field)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// Errors maps a field path to its failure messages in rule order.
// Nested fields use dotted paths such as "address.city".
type Errors map[string][]string

// Error implements the error interface. Fields are listed in sorted order.
func (e Errors) Error() string {
	if len(e) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		for _, msg := range e[field] {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
		}
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) detect validation failures.
func (e Errors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Add appends a message for a field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Get returns the first message for a field, or "".
func (e Errors) Get(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Has reports whether the field has at least one message.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// Fields returns the failing field paths in sorted order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// Clone returns a deep copy of e. A nil Errors stays nil.
func (e Errors) Clone() Errors {
	if e == nil {
		return nil
	}
	out := make(Errors, len(e))
	for field, msgs := range e {
		out[field] = slices.Clone(msgs)
	}
	return out
}

// ExtractErrors returns the Errors carried by err, or nil.
func ExtractErrors(err error) Errors {
	if err == nil {
		return nil
	}
	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

// IsValidationError reports whether err carries validation Errors.
func IsValidationError(err error) bool {
	return ExtractErrors(err) != nil
}
