// Package binder extracts request data for validation.
//
// Every binder has the handler.Bind signature and fills a *map[string]any,
// merging into whatever an earlier binder already put there:
//
//	handler.Wrap(createUser,
//	    handler.WithBinders[handler.Context, map[string]any](binder.Query(), binder.Body()),
//	)
//
// JSON also accepts any other json.Unmarshal target.
package binder
