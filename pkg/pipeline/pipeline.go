package pipeline

import (
	"cmp"
	"net/http"
	"slices"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Middleware is the standard net/http middleware shape.
type Middleware = func(http.Handler) http.Handler

// Pipeline is a priority ordered middleware queue. Lower priorities wrap
// higher ones, so the lowest priority sees the request first. Middlewares
// with equal priority keep the order they were piped in.
type Pipeline struct {
	mu      sync.RWMutex
	entries []entry
}

type entry struct {
	mw       Middleware
	priority int
}

func New() *Pipeline {
	return &Pipeline{}
}

// Pipe queues mw at priority and returns the pipeline for chaining.
// Nil middlewares are ignored.
func (p *Pipeline) Pipe(mw Middleware, priority int) *Pipeline {
	if mw == nil {
		return p
	}
	p.mu.Lock()
	p.entries = append(p.entries, entry{mw: mw, priority: priority})
	p.mu.Unlock()
	return p
}

// Len returns the number of queued middlewares.
func (p *Pipeline) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.entries)
}

// Middlewares returns the queue in execution order.
func (p *Pipeline) Middlewares() chi.Middlewares {
	p.mu.RLock()
	sorted := slices.Clone(p.entries)
	p.mu.RUnlock()

	slices.SortStableFunc(sorted, func(a, b entry) int {
		return cmp.Compare(a.priority, b.priority)
	})

	mws := make(chi.Middlewares, len(sorted))
	for i, e := range sorted {
		mws[i] = e.mw
	}
	return mws
}

// Handler wraps final with the queued middlewares.
func (p *Pipeline) Handler(final http.Handler) http.Handler {
	if final == nil {
		final = http.NotFoundHandler()
	}
	return chi.Chain(p.Middlewares()...).Handler(final)
}

// Then is Handler for plain handler functions.
func (p *Pipeline) Then(final http.HandlerFunc) http.Handler {
	if final == nil {
		return p.Handler(nil)
	}
	return p.Handler(final)
}
