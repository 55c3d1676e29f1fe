package handler

import "github.com/dmitrymomot/frostal/pkg/validator"

// ValidateRequest checks the bound request map against rules before the
// handler runs. The handler receives only the validated subset; failures
// become an Error response carrying validator.Errors (422).
//
// Example:
//
//	http.HandleFunc("/signup", handler.Wrap(signup,
//		handler.WithBinders[handler.Context, map[string]any](binder.Body()),
//		handler.WithDecorators(handler.ValidateRequest[handler.Context](v, rules)),
//	))
func ValidateRequest[C Context](v *validator.Validator, rules validator.Rules) Decorator[C, map[string]any] {
	return func(next HandlerFunc[C, map[string]any]) HandlerFunc[C, map[string]any] {
		return func(ctx C, req map[string]any) Response {
			result, err := v.Check(req, rules)
			if err != nil {
				return Error(err)
			}
			if !result.Valid() {
				return Error(result.Errors)
			}
			return next(ctx, result.Data)
		}
	}
}
