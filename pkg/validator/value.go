package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// phpSpace is the set trimmed from string values before emptiness and
// length checks.
const phpSpace = " \t\n\r\x00\x0B"

var numericStringRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

func trim(s string) string {
	return strings.Trim(s, phpSpace)
}

// asString reports the value as a string when it is one (including named
// string types).
func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// isCollection reports whether v is a mapping or a sequence.
// Byte slices and strings are not collections.
func isCollection(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Map:
		return true
	case reflect.Slice, reflect.Array:
		return rv.Type().Elem().Kind() != reflect.Uint8
	}
	return false
}

func collectionLen(v any) int {
	return reflect.ValueOf(v).Len()
}

// collectionValues returns the element values of a map or sequence.
func collectionValues(v any) []any {
	rv := reflect.ValueOf(v)
	values := make([]any, 0, rv.Len())
	switch rv.Kind() {
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			values = append(values, iter.Value().Interface())
		}
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			values = append(values, rv.Index(i).Interface())
		}
	}
	return values
}

// lookup returns container[key] for string-keyed maps and for sequences
// addressed by decimal index.
func lookup(container any, key string) (any, bool) {
	if m, ok := container.(map[string]any); ok {
		v, ok := m[key]
		return v, ok
	}
	rv := reflect.ValueOf(container)
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	}
	return nil, false
}

// toFloat converts numbers and numeric strings to float64.
func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if !numericStringRegex.MatchString(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func isNumber(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// magnitude is the numeric value of a number or the element count of a
// collection.
func magnitude(v any) (float64, bool) {
	if isCollection(v) {
		return float64(collectionLen(v)), true
	}
	return toFloat(v)
}

// toInt coerces rule parameters such as lengths and bounds.
func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// looseEqual compares a collection element with a needle: deep equality, or
// equal numeric values across number kinds and numeric strings.
func looseEqual(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	if !isNumber(a) && !isNumber(b) {
		return false
	}
	fa, okA := toFloat(a)
	fb, okB := toFloat(b)
	return okA && okB && fa == fb
}

// stringify renders a rule parameter for message substitution.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(time.DateTime)
	case *time.Time:
		if val == nil {
			return ""
		}
		return val.Format(time.DateTime)
	case fmt.Stringer:
		return val.String()
	}
	return fmt.Sprint(v)
}
