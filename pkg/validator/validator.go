package validator

import (
	"maps"
	"slices"
	"sync"
)

const defaultMaxDepth = 32

// Validator parses rule specs and validates data maps against them.
// Its configuration is fixed at construction, so a single instance can be
// shared between goroutines. Only the errors of the latest call are kept.
type Validator struct {
	catalog  Catalog
	messages map[string]string
	maxDepth int
	silent   bool

	mu   sync.RWMutex
	last Errors
}

// Result is the outcome of a single validation call.
type Result struct {
	// Data holds the fields that passed all of their rules.
	Data map[string]any
	// Errors holds messages per failing field path, nil when nothing failed.
	Errors Errors
}

// Valid reports whether no field failed.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Option configures a Validator.
type Option func(*config)

type config struct {
	catalog   Catalog
	overrides map[string]string
	maxDepth  int
	silent    bool
}

// WithMessages overrides message templates per rule name.
func WithMessages(messages map[string]string) Option {
	return func(c *config) {
		maps.Copy(c.overrides, messages)
	}
}

// WithRule registers a rule or replaces a built-in one.
// Its Message becomes the default template unless WithMessages overrides it.
func WithRule(name string, def Definition) Option {
	return func(c *config) {
		if name == "" || def.Check == nil {
			return
		}
		c.catalog[name] = def
	}
}

// WithMaxDepth bounds the nesting of array rules. Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithSilentFailures makes Validate report failed fields only through
// Errors() instead of returning them as an error.
func WithSilentFailures() Option {
	return func(c *config) {
		c.silent = true
	}
}

// New creates a Validator with the built-in catalog and message templates.
func New(opts ...Option) *Validator {
	cfg := &config{
		catalog:   DefaultCatalog(),
		overrides: make(map[string]string),
		maxDepth:  defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	messages := make(map[string]string, len(cfg.catalog)+len(cfg.overrides))
	for name, def := range cfg.catalog {
		if def.Message != "" {
			messages[name] = def.Message
		}
	}
	maps.Copy(messages, cfg.overrides)

	return &Validator{
		catalog:  cfg.catalog,
		messages: messages,
		maxDepth: cfg.maxDepth,
		silent:   cfg.silent,
	}
}

// Validate parses spec and validates data against it. It returns the fields
// that passed all their rules. When any field failed, the returned error is
// the Errors value, unless the validator was built WithSilentFailures.
func (v *Validator) Validate(data map[string]any, spec RuleSpec) (map[string]any, error) {
	rules, err := v.ParseRules(spec)
	if err != nil {
		v.remember(nil)
		return nil, err
	}

	res, err := v.Check(data, rules)
	if err != nil {
		return nil, err
	}
	if !res.Valid() && !v.silent {
		return res.Data, res.Errors
	}
	return res.Data, nil
}

// ValidateData validates data against already parsed rules and returns the
// fields that passed. Failed fields are reported by Errors(); the returned
// error is only set for unknown rules or excessive nesting.
func (v *Validator) ValidateData(data map[string]any, rules Rules) (map[string]any, error) {
	res, err := v.Check(data, rules)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// Check validates data against rules and returns the per-call result.
// Rules are evaluated in declaration order and all of them run, even after
// a failure. An unknown rule anywhere in the tree aborts the call.
func (v *Validator) Check(data map[string]any, rules Rules) (Result, error) {
	if err := v.verify(rules, "", 0); err != nil {
		v.remember(nil)
		return Result{}, err
	}

	res := Result{
		Data:   make(map[string]any, len(rules)),
		Errors: make(Errors),
	}
	v.walk(data, rules, "", res.Data, res.Errors)

	if res.Errors.IsEmpty() {
		res.Errors = nil
	}
	v.remember(res.Errors)
	return res, nil
}

// Errors returns the failures of the most recent call, or nil when that
// call had none.
func (v *Validator) Errors() Errors {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.last.Clone()
}

// remember keeps its own copy so callers may change the Errors they got.
func (v *Validator) remember(errs Errors) {
	errs = errs.Clone()
	v.mu.Lock()
	v.last = errs
	v.mu.Unlock()
}

// verify checks rule names and nesting depth before any predicate runs, so
// a structural problem never yields a partial result.
func (v *Validator) verify(rules Rules, prefix string, depth int) error {
	if depth > v.maxDepth {
		return ErrMaxDepthExceeded
	}
	for field, fieldRules := range rules {
		path := joinPath(prefix, field)
		for _, rule := range fieldRules {
			if _, ok := v.catalog[rule.Name]; !ok {
				return &RuleError{Field: path, Rule: rule.Name, Err: ErrRuleNotFound}
			}
			if len(rule.Nested) > 0 {
				if err := v.verify(rule.Nested, path, depth+1); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// walk evaluates rules against container and reports whether every field
// passed. Passing fields are copied into validated when it is not nil.
func (v *Validator) walk(container any, rules Rules, prefix string, validated map[string]any, errs Errors) bool {
	allPassed := true
	for _, field := range slices.Sorted(maps.Keys(rules)) {
		value, _ := lookup(container, field)
		path := joinPath(prefix, field)

		failed := false
		for _, rule := range rules[field] {
			passed := v.catalog[rule.Name].Check(value, rule.Params...)
			if !passed {
				failed = true
				errs.Add(path, v.FormatErrorMessage(rule.Name, path, rule.Params...))
				continue
			}
			if len(rule.Nested) > 0 && !v.walk(value, rule.Nested, path, nil, errs) {
				failed = true
			}
		}

		if failed {
			allPassed = false
			continue
		}
		if validated != nil {
			validated[field] = value
		}
	}
	return allPassed
}

func joinPath(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}
