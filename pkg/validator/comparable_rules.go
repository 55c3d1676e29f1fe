package validator

import "reflect"

// Equals reports whether value and expected have the same type and value.
func Equals(value, expected any) bool {
	return reflect.DeepEqual(value, expected)
}

// Different is the negation of Equals.
func Different(value, expected any) bool {
	return !reflect.DeepEqual(value, expected)
}
