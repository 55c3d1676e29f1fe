package validator

import "strings"

const fallbackMessage = "The %s field is invalid"

// FormatMessage substitutes the field name and then the params, in order,
// into the template's placeholders. Any verb letter (%s, %d, %v, ...) takes
// the next argument rendered as text; %N$s picks argument N explicitly and
// %% is a literal percent sign. Placeholders without an argument render empty
// and surplus arguments are ignored.
func FormatMessage(template, field string, params []any) string {
	args := make([]string, 0, len(params)+1)
	args = append(args, field)
	for _, p := range params {
		args = append(args, stringify(p))
	}

	var b strings.Builder
	b.Grow(len(template) + len(field))
	next := 0
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 >= len(template) {
			b.WriteByte(c)
			continue
		}
		if template[i+1] == '%' {
			b.WriteByte('%')
			i++
			continue
		}

		// explicit position: %2$s
		j := i + 1
		for j < len(template) && template[j] >= '0' && template[j] <= '9' {
			j++
		}
		if j > i+1 && j+1 < len(template) && template[j] == '$' && isLetter(template[j+1]) {
			pos := atoiDigits(template[i+1:j]) - 1
			if pos >= 0 && pos < len(args) {
				b.WriteString(args[pos])
			}
			i = j + 1
			continue
		}

		if isLetter(template[i+1]) {
			if next < len(args) {
				b.WriteString(args[next])
			}
			next++
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// FormatErrorMessage renders the configured template for rule.
// Rules without a template fall back to a generic message.
func (v *Validator) FormatErrorMessage(rule, field string, params ...any) string {
	template, ok := v.messages[rule]
	if !ok {
		template = fallbackMessage
	}
	return FormatMessage(template, field, params)
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func atoiDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
		if n > 1<<16 {
			return n
		}
	}
	return n
}
