package validator

// Array passes for mappings and sequences.
func Array(value any) bool {
	return isCollection(value)
}

// InArray requires value to be a collection containing every needle.
func InArray(value any, needles ...any) bool {
	if !isCollection(value) {
		return false
	}
	values := collectionValues(value)
	for _, needle := range needles {
		if !containsLoose(values, needle) {
			return false
		}
	}
	return true
}

// NotInArray requires value to be a collection containing none of the needles.
func NotInArray(value any, needles ...any) bool {
	if !isCollection(value) {
		return false
	}
	values := collectionValues(value)
	for _, needle := range needles {
		if containsLoose(values, needle) {
			return false
		}
	}
	return true
}

func containsLoose(values []any, needle any) bool {
	for _, v := range values {
		if looseEqual(v, needle) {
			return true
		}
	}
	return false
}
