// Package pipeline orders HTTP middlewares by priority before chaining them
// with chi:
//
//	p := pipeline.New().
//	    Pipe(requestid.Middleware(), -75).
//	    Pipe(handler.Recoverer(errorHandler), -100)
//	http.ListenAndServe(":8080", p.Handler(router))
//
// The recoverer runs first because -100 sorts before -75.
package pipeline
