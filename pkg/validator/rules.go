package validator

import (
	"cmp"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// RuleSpec is a declarative rule set keyed by field name.
//
// A field declaration is either a list of entries or a map of rule name to
// parameters. A list entry is a bare rule name or a map of rule name to
// parameters, so ["required", {"minLength": 3}] keeps declaration order.
// Map declarations are read in sorted key order. Integer keys in a map
// declaration hold list entries and come first, so {"0": "required",
// "minLength": 3} reads as ["required", {"minLength": 3}].
//
// Parameters may be a scalar, a list, nil (no parameters) or, for the
// "array" rule only, a nested RuleSpec. A map whose keys are exactly
// "0".."n-1" is read as a positional list and never as a nested spec.
type RuleSpec map[string]any

// Rule is one normalized rule of a field.
type Rule struct {
	Name   string
	Params []any
	Nested Rules
}

// FieldRules holds a field's rules in declaration order.
type FieldRules []Rule

// Get returns the rule with the given name.
func (f FieldRules) Get(name string) (Rule, bool) {
	for _, r := range f {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// Names returns the rule names in declaration order.
func (f FieldRules) Names() []string {
	names := make([]string, len(f))
	for i, r := range f {
		names[i] = r.Name
	}
	return names
}

// set replaces a rule already declared under the same name in place, or
// appends it.
func (f *FieldRules) set(rule Rule) {
	for i := range *f {
		if (*f)[i].Name == rule.Name {
			(*f)[i] = rule
			return
		}
	}
	*f = append(*f, rule)
}

// Rules is the normalized form of a RuleSpec: field -> ordered rules.
type Rules map[string]FieldRules

// ParseRules normalizes spec against the validator's catalog.
func (v *Validator) ParseRules(spec RuleSpec) (Rules, error) {
	return v.parseSpec(spec, 0)
}

func (v *Validator) parseSpec(spec map[string]any, depth int) (Rules, error) {
	if depth > v.maxDepth {
		return nil, ErrMaxDepthExceeded
	}

	rules := make(Rules, len(spec))
	for _, field := range slices.Sorted(maps.Keys(spec)) {
		fieldRules, err := v.parseField(field, spec[field], depth)
		if err != nil {
			return nil, err
		}
		rules[field] = fieldRules
	}
	return rules, nil
}

func (v *Validator) parseField(field string, decl any, depth int) (FieldRules, error) {
	fieldRules := FieldRules{}

	if m, ok := asSpecMap(decl); ok {
		for _, key := range declKeys(m) {
			var err error
			if isIndexKey(key) {
				err = v.addEntry(&fieldRules, field, m[key], depth)
			} else {
				err = v.addRule(&fieldRules, field, key, m[key], depth)
			}
			if err != nil {
				return nil, err
			}
		}
		return fieldRules, nil
	}

	entries, ok := asList(decl)
	if !ok {
		return nil, fmt.Errorf("%w: field %q: rules must be a list or a map, got %T", ErrRuleParsing, field, decl)
	}

	for _, entry := range entries {
		if err := v.addEntry(&fieldRules, field, entry, depth); err != nil {
			return nil, err
		}
	}
	return fieldRules, nil
}

// addEntry adds a list entry: a bare rule name or a map of rule name to
// parameters.
func (v *Validator) addEntry(fieldRules *FieldRules, field string, entry any, depth int) error {
	if name, ok := entry.(string); ok {
		return v.addRule(fieldRules, field, name, nil, depth)
	}
	m, ok := asSpecMap(entry)
	if !ok {
		return fmt.Errorf("%w: field %q: unexpected rule entry of type %T", ErrRuleParsing, field, entry)
	}
	for _, name := range slices.Sorted(maps.Keys(m)) {
		if err := v.addRule(fieldRules, field, name, m[name], depth); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) addRule(fieldRules *FieldRules, field, name string, raw any, depth int) error {
	if name == "" {
		return fmt.Errorf("%w: field %q: empty rule name", ErrRuleParsing, field)
	}

	params, nested, err := v.parseParams(raw, depth)
	if err != nil {
		return err
	}

	def, ok := v.catalog[name]
	if !ok {
		return &RuleError{Field: field, Rule: name, Err: ErrRuleNotFound}
	}
	if nested != nil && name != RuleArray {
		return fmt.Errorf("%w: field %q: rule %q does not accept nested rules", ErrRuleParsing, field, name)
	}
	if !def.acceptsParams(len(params)) {
		return fmt.Errorf("%w: field %q: rule %q does not accept %d parameter(s)", ErrRuleParsing, field, name, len(params))
	}

	fieldRules.set(Rule{Name: name, Params: params, Nested: nested})
	return nil
}

// parseParams normalizes a rule's raw parameters into a list, or into nested
// rules when raw is a non-positional map.
func (v *Validator) parseParams(raw any, depth int) ([]any, Rules, error) {
	if raw == nil {
		return []any{}, nil, nil
	}

	if m, ok := asSpecMap(raw); ok {
		if len(m) == 0 {
			return []any{}, nil, nil
		}
		if values, ok := positional(m); ok {
			return values, nil, nil
		}
		nested, err := v.parseSpec(m, depth+1)
		if err != nil {
			return nil, nil, err
		}
		return []any{}, nested, nil
	}

	if m, ok := raw.(map[int]any); ok {
		values := make([]any, len(m))
		for i := range values {
			val, found := m[i]
			if !found {
				return nil, nil, fmt.Errorf("%w: parameter keys must be 0..%d", ErrRuleParsing, len(m)-1)
			}
			values[i] = val
		}
		return values, nil, nil
	}

	if list, ok := asList(raw); ok {
		return list, nil, nil
	}
	return []any{raw}, nil, nil
}

func asSpecMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case RuleSpec:
		return m, true
	}
	return nil, false
}

// asList copies any non-byte slice or array into []any.
func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return slices.Clone(l), true
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}
	if k := rv.Kind(); (k != reflect.Slice && k != reflect.Array) || rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// isIndexKey reports whether a declaration key is a list index, as "0" in
// {"0": "required", "minLength": 3}.
func isIndexKey(key string) bool {
	_, ok := indexOf(key)
	return ok
}

// declKeys orders a map declaration: index keys by number first, then rule
// names sorted.
func declKeys(m map[string]any) []string {
	return slices.SortedFunc(maps.Keys(m), func(a, b string) int {
		ai, aIdx := indexOf(a)
		bi, bIdx := indexOf(b)
		switch {
		case aIdx && bIdx:
			return cmp.Compare(ai, bi)
		case aIdx:
			return -1
		case bIdx:
			return 1
		}
		return strings.Compare(a, b)
	})
}

func indexOf(key string) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || strconv.Itoa(i) != key {
		return 0, false
	}
	return i, true
}

// positional returns the map's values ordered by index when its keys are
// exactly "0".."n-1".
func positional(m map[string]any) ([]any, bool) {
	if len(m) == 0 {
		return nil, false
	}
	values := make([]any, len(m))
	for i := range values {
		val, ok := m[strconv.Itoa(i)]
		if !ok {
			return nil, false
		}
		values[i] = val
	}
	return values, true
}
