package validator

import (
	"strings"

	"github.com/google/uuid"
)

// UUID validates the canonical 36 character UUID form.
func UUID(value any) bool {
	s, ok := asString(value)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	// Fast rejection before parsing: uuid.Parse also accepts urn and braced forms
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	_, err := uuid.Parse(s)
	return err == nil
}
