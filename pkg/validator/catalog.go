package validator

import "maps"

// Predicate is a named rule check over a loosely typed value.
// Params are the rule's normalized parameters in declaration order.
type Predicate func(value any, params ...any) bool

// Definition describes a catalog rule: its check, accepted parameter count
// and default message template. MaxParams < 0 accepts any number of params.
type Definition struct {
	Check     Predicate
	MinParams int
	MaxParams int
	Message   string
}

// acceptsParams reports whether n parameters fit the definition's arity.
func (d Definition) acceptsParams(n int) bool {
	return n >= d.MinParams && (d.MaxParams < 0 || n <= d.MaxParams)
}

// Catalog maps rule names to their definitions.
type Catalog map[string]Definition

// Rule names of the built-in catalog.
const (
	RuleRequired      = "required"
	RuleEquals        = "equals"
	RuleDifferent     = "different"
	RuleNumeric       = "numeric"
	RuleInteger       = "integer"
	RuleBoolean       = "boolean"
	RuleArray         = "array"
	RuleLength        = "length"
	RuleBetweenLength = "betweenLength"
	RuleMinLength     = "minLength"
	RuleMaxLength     = "maxLength"
	RuleSize          = "size"
	RuleBetween       = "between"
	RuleMin           = "min"
	RuleMax           = "max"
	RuleInArray       = "inArray"
	RuleNotInArray    = "notInArray"
	RuleEmail         = "email"
	RuleURL           = "url"
	RuleRegex         = "regex"
	RuleDate          = "date"
	RuleDateBefore    = "dateBefore"
	RuleDateAfter     = "dateAfter"
	RuleUUID          = "uuid"
	RuleAlpha         = "alpha"
	RuleAlphanumeric  = "alphanumeric"
)

var builtinCatalog = Catalog{
	RuleRequired:      {Check: unary(Required), Message: "The %s field is required"},
	RuleEquals:        {Check: binary(Equals), MinParams: 1, MaxParams: 1, Message: "The %s field must be equal to %s"},
	RuleDifferent:     {Check: binary(Different), MinParams: 1, MaxParams: 1, Message: "The %s field must be different from %s"},
	RuleNumeric:       {Check: unary(Numeric), Message: "The %s field must be a number"},
	RuleInteger:       {Check: unary(Integer), Message: "The %s field must be an integer"},
	RuleBoolean:       {Check: unary(Boolean), Message: "The %s field must be a boolean"},
	RuleArray:         {Check: unary(Array), Message: "The %s field must be an array"},
	RuleLength:        {Check: intArgs1(Length), MinParams: 1, MaxParams: 1, Message: "The %s field must be exactly %s characters long"},
	RuleBetweenLength: {Check: intArgs2(BetweenLength), MinParams: 2, MaxParams: 2, Message: "The %s field must be between %s and %s characters long"},
	RuleMinLength:     {Check: intArgs1(MinLength), MinParams: 1, MaxParams: 1, Message: "The %s field must be at least %s characters long"},
	RuleMaxLength:     {Check: intArgs1(MaxLength), MinParams: 1, MaxParams: 1, Message: "The %s field must be at most %s characters long"},
	RuleSize:          {Check: floatArgs1(Size), MinParams: 1, MaxParams: 1, Message: "The %s field must have a size of %s"},
	RuleBetween:       {Check: floatArgs2(Between), MinParams: 2, MaxParams: 2, Message: "The %s field must be between %s and %s"},
	RuleMin:           {Check: floatArgs1(Min), MinParams: 1, MaxParams: 1, Message: "The %s field must be at least %s"},
	RuleMax:           {Check: floatArgs1(Max), MinParams: 1, MaxParams: 1, Message: "The %s field must be at most %s"},
	RuleInArray:       {Check: InArray, MaxParams: -1, Message: "The %s field must contain %s"},
	RuleNotInArray:    {Check: NotInArray, MaxParams: -1, Message: "The %s field must not contain %s"},
	RuleEmail:         {Check: unary(Email), Message: "The %s field must be a valid email address"},
	RuleURL:           {Check: unary(URL), Message: "The %s field must be a valid URL"},
	RuleRegex:         {Check: stringArg(Regex), MinParams: 1, MaxParams: 1, Message: "The %s field format is invalid"},
	RuleDate:          {Check: unary(Date), Message: "The %s field must be a valid date"},
	RuleDateBefore:    {Check: binary(DateBefore), MinParams: 1, MaxParams: 1, Message: "The %s field must be a date before %s"},
	RuleDateAfter:     {Check: binary(DateAfter), MinParams: 1, MaxParams: 1, Message: "The %s field must be a date after %s"},
	RuleUUID:          {Check: unary(UUID), Message: "The %s field must be a valid UUID"},
	RuleAlpha:         {Check: unary(Alpha), Message: "The %s field must contain only letters"},
	RuleAlphanumeric:  {Check: unary(Alphanumeric), Message: "The %s field must contain only letters and numbers"},
}

// DefaultCatalog returns a fresh copy of the built-in rules.
func DefaultCatalog() Catalog {
	return maps.Clone(builtinCatalog)
}

// DefaultMessages returns the built-in message template for every rule.
func DefaultMessages() map[string]string {
	messages := make(map[string]string, len(builtinCatalog))
	for name, def := range builtinCatalog {
		messages[name] = def.Message
	}
	return messages
}

func unary(fn func(any) bool) Predicate {
	return func(value any, _ ...any) bool {
		return fn(value)
	}
}

func binary(fn func(any, any) bool) Predicate {
	return func(value any, params ...any) bool {
		if len(params) < 1 {
			return false
		}
		return fn(value, params[0])
	}
}

func stringArg(fn func(any, string) bool) Predicate {
	return func(value any, params ...any) bool {
		if len(params) < 1 {
			return false
		}
		s, ok := asString(params[0])
		return ok && fn(value, s)
	}
}

func intArgs1(fn func(any, int) bool) Predicate {
	return func(value any, params ...any) bool {
		if len(params) < 1 {
			return false
		}
		n, ok := toInt(params[0])
		return ok && fn(value, n)
	}
}

func intArgs2(fn func(any, int, int) bool) Predicate {
	return func(value any, params ...any) bool {
		if len(params) < 2 {
			return false
		}
		a, okA := toInt(params[0])
		b, okB := toInt(params[1])
		return okA && okB && fn(value, a, b)
	}
}

func floatArgs1(fn func(any, float64) bool) Predicate {
	return func(value any, params ...any) bool {
		if len(params) < 1 {
			return false
		}
		n, ok := toFloat(params[0])
		return ok && fn(value, n)
	}
}

func floatArgs2(fn func(any, float64, float64) bool) Predicate {
	return func(value any, params ...any) bool {
		if len(params) < 2 {
			return false
		}
		a, okA := toFloat(params[0])
		b, okB := toFloat(params[1])
		return okA && okB && fn(value, a, b)
	}
}
