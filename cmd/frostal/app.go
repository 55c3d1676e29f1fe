package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/frostal/binder"
	"github.com/dmitrymomot/frostal/handler"
	"github.com/dmitrymomot/frostal/pkg/clientip"
	"github.com/dmitrymomot/frostal/pkg/environment"
	"github.com/dmitrymomot/frostal/pkg/httpserver"
	"github.com/dmitrymomot/frostal/pkg/logger"
	"github.com/dmitrymomot/frostal/pkg/pipeline"
	"github.com/dmitrymomot/frostal/pkg/requestid"
	"github.com/dmitrymomot/frostal/pkg/template"
	"github.com/dmitrymomot/frostal/pkg/trailingslash"
	"github.com/dmitrymomot/frostal/pkg/validator"
)

// ErrDuplicateScheme is returned when two scheme files share a base name.
var ErrDuplicateScheme = errors.New("duplicate validation scheme")

// Config is the application configuration read from the environment.
type Config struct {
	Name          string `env:"APP_NAME" envDefault:"frostal"`
	Env           string `env:"APP_ENV" envDefault:"development"`
	Debug         bool   `env:"APP_DEBUG" envDefault:"false"`
	TrailingSlash bool   `env:"APP_TRAILING_SLASH" envDefault:"false"`
	TemplatesPath string `env:"TEMPLATES_PATH"`
	PagesIndex    string `env:"PAGES_INDEX" envDefault:"home"`
	SchemesPath   string `env:"SCHEMES_PATH"`
	MessagesFile  string `env:"VALIDATION_MESSAGES_FILE"`

	HTTP httpserver.Config
}

// Middleware priorities, lower runs first.
const (
	priorityRecoverer     = -100
	priorityRequestID     = -75
	priorityClientIP      = -70
	priorityEnvironment   = -60
	priorityTrailingSlash = -50
)

type mapHandler = handler.HandlerFunc[handler.Context, map[string]any]

// App wires the validator, the page renderer and the HTTP routes.
type App struct {
	cfg          Config
	env          environment.Environment
	log          *slog.Logger
	validator    *validator.Validator
	schemes      map[string]validator.Rules
	pages        *template.Template
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewApp loads message overrides, schemes and templates from cfg.
func NewApp(cfg Config, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if cfg.PagesIndex == "" {
		cfg.PagesIndex = "home"
	}

	var opts []validator.Option
	if cfg.MessagesFile != "" {
		messages, err := validator.LoadMessagesFile(cfg.MessagesFile)
		if err != nil {
			return nil, fmt.Errorf("load validation messages: %w", err)
		}
		opts = append(opts, validator.WithMessages(messages))
	}
	v := validator.New(opts...)

	schemes := map[string]validator.Rules{}
	if cfg.SchemesPath != "" {
		var err error
		if schemes, err = loadSchemes(os.DirFS(cfg.SchemesPath), v); err != nil {
			return nil, fmt.Errorf("load schemes from %s: %w", cfg.SchemesPath, err)
		}
	}

	var renderer template.Renderer
	if cfg.TemplatesPath != "" {
		html, err := template.NewHTML(os.DirFS(cfg.TemplatesPath), "*.html", "*.gohtml", "*.tmpl")
		if err != nil {
			return nil, fmt.Errorf("load templates from %s: %w", cfg.TemplatesPath, err)
		}
		renderer = html
	}

	log.Info("application initialized",
		logger.Component("app"),
		slog.Int("schemes", len(schemes)),
		slog.Bool("templates", renderer != nil),
	)

	return &App{
		cfg:       cfg,
		env:       environment.Parse(cfg.Env),
		log:       log,
		validator: v,
		schemes:   schemes,
		pages:     template.New(renderer),
		errorHandler: handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
			Debug: cfg.Debug,
		}),
	}, nil
}

// loadSchemes parses every YAML or JSON file at the root of fsys into Rules
// keyed by the file name without extension.
func loadSchemes(fsys fs.FS, v *validator.Validator) (map[string]validator.Rules, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	schemes := make(map[string]validator.Rules, len(entries))
	for _, entry := range entries {
		ext := path.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml" && ext != ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if _, ok := schemes[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateScheme, name)
		}

		content, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, err
		}
		spec, err := validator.ParseSpecYAML(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		rules, err := v.ParseRules(spec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		schemes[name] = rules
	}
	return schemes, nil
}

// Handler builds the middleware pipeline around the router.
func (a *App) Handler() http.Handler {
	p := pipeline.New().
		Pipe(handler.Recoverer(a.errorHandler), priorityRecoverer).
		Pipe(requestid.Middleware(), priorityRequestID).
		Pipe(clientip.Middleware(), priorityClientIP).
		Pipe(environment.Middleware(a.env), priorityEnvironment).
		Pipe(trailingslash.Middleware(trailingslash.WithTrailingSlash(a.cfg.TrailingSlash)), priorityTrailingSlash)

	return p.Handler(a.router())
}

func (a *App) router() chi.Router {
	r := chi.NewRouter()

	r.NotFound(a.fail(handler.ErrNotFound))
	r.MethodNotAllowed(a.fail(handler.ErrMethodNotAllowed))

	r.Get(a.route("/"), a.wrap(a.page(func(*http.Request) string { return a.cfg.PagesIndex })))
	r.Get(a.route("/pages/{page}"), a.wrap(a.page(func(r *http.Request) string { return chi.URLParam(r, "page") })))
	r.Post(a.route("/schemes/{name}"), a.validateScheme())
	r.Get(a.route("/health"), httpserver.HealthCheckHandler(a.log))

	return r
}

// route spells a pattern in the canonical trailing slash form.
func (a *App) route(pattern string) string {
	return trailingslash.Normalize(pattern, a.cfg.TrailingSlash)
}

func (a *App) wrap(h mapHandler, opts ...handler.WrapOption[handler.Context, map[string]any]) http.HandlerFunc {
	opts = append([]handler.WrapOption[handler.Context, map[string]any]{
		handler.WithErrorHandler[handler.Context, map[string]any](a.errorHandler),
	}, opts...)
	return handler.Wrap(h, opts...)
}

func (a *App) fail(err error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.errorHandler(handler.NewContext(w, r), err)
	}
}

// page renders the template named by the request. Query parameters are
// passed to the template as .Query.
func (a *App) page(name func(*http.Request) string) mapHandler {
	return func(ctx handler.Context, _ map[string]any) handler.Response {
		r := ctx.Request()
		return a.pages.Response(name(r), map[string]any{
			"App":   a.cfg.Name,
			"Path":  r.URL.Path,
			"Query": binder.Values(r.URL.Query()),
		})
	}
}

// validateScheme answers {"data": validated} for a body that passes the
// named scheme. Each scheme gets its own wrapped handler at startup.
func (a *App) validateScheme() http.HandlerFunc {
	echo := mapHandler(func(ctx handler.Context, req map[string]any) handler.Response {
		return handler.JSON(req)
	})

	handlers := make(map[string]http.HandlerFunc, len(a.schemes))
	for name, rules := range a.schemes {
		handlers[name] = a.wrap(echo,
			handler.WithBinders[handler.Context, map[string]any](binder.Body()),
			handler.WithDecorators(handler.ValidateRequest[handler.Context](a.validator, rules)),
		)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[chi.URLParam(r, "name")]
		if !ok {
			a.fail(handler.ErrNotFound)(w, r)
			return
		}
		h(w, r)
	}
}
