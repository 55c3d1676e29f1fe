package validator

import "unicode/utf8"

// Required fails for nil, false, numeric zero, blank strings, "0" and empty
// collections. Strings are trimmed first.
func Required(value any) bool {
	if value == nil {
		return false
	}
	if s, ok := asString(value); ok {
		s = trim(s)
		return s != "" && s != "0"
	}
	if b, ok := value.(bool); ok {
		return b
	}
	if isNumber(value) {
		f, _ := toFloat(value)
		return f != 0
	}
	if isCollection(value) {
		return collectionLen(value) > 0
	}
	return true
}

// Length checks the exact character count of a trimmed string.
func Length(value any, length int) bool {
	n, ok := trimmedLen(value)
	return ok && n == length
}

// MinLength checks that a trimmed string has at least min characters.
func MinLength(value any, min int) bool {
	n, ok := trimmedLen(value)
	return ok && n >= min
}

// MaxLength checks that a trimmed string has at most max characters.
func MaxLength(value any, max int) bool {
	n, ok := trimmedLen(value)
	return ok && n <= max
}

// BetweenLength checks that a trimmed string length is within [min, max].
func BetweenLength(value any, min, max int) bool {
	n, ok := trimmedLen(value)
	return ok && n >= min && n <= max
}

func trimmedLen(value any) (int, bool) {
	s, ok := asString(value)
	if !ok {
		return 0, false
	}
	return utf8.RuneCountInString(trim(s)), true
}
