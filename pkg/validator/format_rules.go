package validator

import (
	"regexp"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

var (
	formatValidate = playground.New()

	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	patternCache sync.Map // pattern -> *regexp.Regexp
)

// Email validates an email address string.
func Email(value any) bool {
	return checkFormat(value, "email")
}

// URL validates an absolute URL string.
func URL(value any) bool {
	return checkFormat(value, "url")
}

func checkFormat(value any, tag string) bool {
	s, ok := asString(value)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	return formatValidate.Var(s, tag) == nil
}

// Regex requires the whole string to match pattern. The pattern may be a
// bare RE2 expression or one delimited by any of / # ~ ! @ % | with
// optional i m s u D modifiers, such as "/^[a-z]+$/i".
// An invalid pattern never matches.
func Regex(value any, pattern string) bool {
	s, ok := asString(value)
	if !ok {
		return false
	}
	re, err := compilePattern(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

// Alpha passes for non-empty ASCII letter strings.
func Alpha(value any) bool {
	s, ok := asString(value)
	return ok && alphaRegex.MatchString(s)
}

// Alphanumeric passes for non-empty ASCII letter and digit strings.
func Alphanumeric(value any) bool {
	s, ok := asString(value)
	return ok && alphanumericRegex.MatchString(s)
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if cached, ok := patternCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}

	expr, flags := splitDelimited(pattern)
	re, err := regexp.Compile(flags + `\A(?:` + expr + `)\z`)
	if err != nil {
		return nil, err
	}
	patternCache.Store(pattern, re)
	return re, nil
}

// regexDelimiters lists the characters accepted around a delimited pattern.
// Brackets are left out so a bare "[a-z]" or "(a|b)" stays an expression.
const regexDelimiters = "/#~!@%|"

// splitDelimited strips delimiters and modifiers from patterns like
// "/expr/im". Patterns that are not delimited are returned unchanged.
func splitDelimited(pattern string) (expr, flags string) {
	if len(pattern) < 2 || !strings.ContainsRune(regexDelimiters, rune(pattern[0])) {
		return pattern, ""
	}
	end := strings.LastIndexByte(pattern, pattern[0])
	if end <= 0 {
		return pattern, ""
	}

	var goFlags strings.Builder
	for _, m := range pattern[end+1:] {
		switch m {
		case 'i', 'm', 's':
			goFlags.WriteRune(m)
		case 'u', 'D':
			// UTF-8 is the default and \z already anchors at the very end
		default:
			return pattern, ""
		}
	}
	if goFlags.Len() > 0 {
		flags = "(?" + goFlags.String() + ")"
	}
	return pattern[1:end], flags
}
