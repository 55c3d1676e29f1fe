// Package validator implements a declarative validation engine for loosely
// typed data such as decoded JSON bodies, form values or YAML documents.
//
// A RuleSpec declares, per field, the named rules the field must satisfy.
// A RuleSpec is normalized into Rules by ParseRules and then applied to a data
// map by Check, ValidateData or Validate. Every declared field ends up either
// in the validated data or in the Errors map, never in both.
//
// # Declaring rules
//
//	spec := validator.RuleSpec{
//	    "email": []any{"required", "email"},
//	    "name":  []any{"required", map[string]any{"betweenLength": []any{2, 64}}},
//	    "tags":  map[string]any{"inArray": []any{"go", "web"}},
//	    "address": map[string]any{
//	        "array": map[string]any{
//	            "city": []string{"required"},
//	            "zip":  []any{map[string]any{"regex": `/^\d{5}$/`}},
//	        },
//	    },
//	}
//
// List declarations keep their order. Map declarations are evaluated in
// sorted rule name order. A parameter map whose keys are exactly "0".."n-1"
// is a positional parameter list; any other map is a nested spec, which only
// the "array" rule accepts.
//
// # Validating
//
//	v := validator.New(validator.WithMessages(map[string]string{
//	    "required": "%s is mandatory",
//	}))
//
//	data, err := v.Validate(input, spec)
//	if errs := validator.ExtractErrors(err); errs != nil {
//	    // errs["address.city"] -> ["address.city is mandatory"]
//	}
//
// Validate returns the Errors value as its error unless the validator was
// created WithSilentFailures. Structural problems surface as ErrRuleParsing,
// ErrRuleNotFound or ErrMaxDepthExceeded and abort the call before any rule
// runs.
//
// # Messages
//
// Templates are keyed by rule name. The first placeholder receives the field
// path and the following ones the rule parameters in order; see FormatMessage.
//
// # Concurrency
//
// A Validator is safe for concurrent use. Check returns a per-call Result;
// Errors() only reflects whichever call finished last.
package validator
