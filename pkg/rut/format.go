package rut

import "strings"

// Format renders a valid RUT in the canonical punctuated form: the digit
// sequence grouped with "." every three digits from the right and the
// verification digit attached with a hyphen, e.g. "12.345.678-5". The
// boolean is false when the input does not clean up to a valid RUT, in
// which case the string is empty.
func Format(v any) (string, bool) {
	token := Clean(v)
	if token == "" || !IsValid(token) {
		return "", false
	}

	number, dv := token[:len(token)-1], token[len(token)-1:]

	var b strings.Builder
	b.Grow(len(number) + len(number)/3 + 2)

	for i := 0; i < len(number); i++ {
		if i > 0 && (len(number)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(number[i])
	}
	b.WriteByte('-')
	b.WriteString(dv)

	return b.String(), true
}
