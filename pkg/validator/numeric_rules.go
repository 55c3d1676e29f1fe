package validator

import (
	"math"
	"reflect"
	"regexp"
	"strconv"

	"golang.org/x/text/cases"
)

var integerStringRegex = regexp.MustCompile(`^[+-]?(0|[1-9][0-9]*)$`)

// booleanTokens holds case-folded boolean-like strings. A blank string reads
// as false.
var booleanTokens = map[string]struct{}{
	"true": {}, "false": {}, "": {},
	"1": {}, "0": {},
	"yes": {}, "no": {},
	"on": {}, "off": {},
}

// Numeric passes for numbers and numeric strings with optional sign,
// decimals and exponent.
func Numeric(value any) bool {
	_, ok := toFloat(value)
	return ok
}

// Integer passes for integer kinds, floats without a fractional part and
// strings holding a base-10 int64 without leading zeros.
func Integer(value any) bool {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == math.Trunc(f) && f >= math.MinInt64 && f <= math.MaxInt64
	case reflect.String:
		s := trim(rv.String())
		if !integerStringRegex.MatchString(s) {
			return false
		}
		_, err := strconv.ParseInt(s, 10, 64)
		return err == nil
	}
	return false
}

// Boolean passes for bools, the integers 0 and 1, blank strings and the
// tokens true/false, 1/0, yes/no and on/off in any case.
func Boolean(value any) bool {
	if _, ok := value.(bool); ok {
		return true
	}
	if s, ok := asString(value); ok {
		_, found := booleanTokens[cases.Fold().String(trim(s))]
		return found
	}
	if Integer(value) && isNumber(value) {
		f, _ := toFloat(value)
		return f == 0 || f == 1
	}
	return false
}

// Size checks the numeric value of a number, or the element count of a
// collection, against an exact size.
func Size(value any, size float64) bool {
	m, ok := magnitude(value)
	return ok && m == size
}

// Min checks that the magnitude of value is at least min.
func Min(value any, min float64) bool {
	m, ok := magnitude(value)
	return ok && m >= min
}

// Max checks that the magnitude of value is at most max.
func Max(value any, max float64) bool {
	m, ok := magnitude(value)
	return ok && m <= max
}

// Between checks that the magnitude of value is within [min, max].
func Between(value any, min, max float64) bool {
	m, ok := magnitude(value)
	return ok && m >= min && m <= max
}
