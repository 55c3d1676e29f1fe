package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/frostal/pkg/logger"
)

var (
	ErrStart    = errors.New("failed to start HTTP server")
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
)

// Server runs an http.Server until its context is cancelled or the process
// receives SIGINT/SIGTERM, then shuts it down gracefully.
type Server struct {
	opts *options
	log  *slog.Logger

	mu       sync.Mutex
	srv      *http.Server
	shutdown sync.Once
	started  chan struct{}
}

func New(opts ...Option) *Server {
	o := &options{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(o)
	}

	log := o.logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{opts: o, log: log.With(logger.Component("httpserver")), started: make(chan struct{})}
}

// Started is closed once the server listens.
func (s *Server) Started() <-chan struct{} {
	return s.started
}

// Run serves handler and blocks until shutdown.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already running"))
	}
	srv := &http.Server{
		Addr:         s.opts.addr,
		Handler:      handler,
		ReadTimeout:  s.opts.readTimeout,
		WriteTimeout: s.opts.writeTimeout,
		IdleTimeout:  s.opts.idleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.srv = srv
	s.mu.Unlock()

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	s.log.InfoContext(ctx, "http server started", logger.Event("server_started"), slog.String("addr", ln.Addr().String()))
	close(s.started)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-ctx.Done():
	case <-stop:
	case runErr = <-errCh:
	}

	if runErr == nil {
		if err := s.Shutdown(context.WithoutCancel(ctx)); err != nil {
			return err
		}
		runErr = <-errCh
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

// Shutdown stops the server gracefully. Repeated calls are no-ops.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdown.Do(func() {
		s.mu.Lock()
		srv := s.srv
		s.mu.Unlock()
		if srv == nil {
			return
		}

		ctx, cancel := context.WithTimeout(ctx, s.opts.shutdownTimeout)
		defer cancel()

		start := time.Now()
		err = srv.Shutdown(ctx)
		s.log.InfoContext(ctx, "http server stopped", logger.Event("server_stopped"), logger.Duration(time.Since(start)), logger.Error(err))
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
