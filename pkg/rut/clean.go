package rut

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// MaxLength caps the size of the cleaned token (and of the digit sequence
// fed to VerificationDigit). It is an input-size guard that keeps worst-case
// work small regardless of what callers pass in, not a statement about real
// RUT lengths.
const MaxLength = 20

// Clean converts an arbitrary value to its canonical RUT token: the textual
// representation with periods, hyphens and whitespace removed and letters
// uppercased. Values without a usable textual form yield the empty string.
// Clean is idempotent and never fails.
func Clean(v any) string {
	s := stringify(v)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if r == '.' || r == '-' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}

	return b.String()
}

// stringify is the total any→string conversion behind every entry point.
// Kinds without a meaningful textual form collapse to the empty string so
// that the exported helpers never propagate a failure to the caller.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case int:
		return strconv.Itoa(t)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return safeString(t)
	default:
		return ""
	}
}

// safeString shields the conversion from Stringer implementations that panic.
func safeString(s fmt.Stringer) (out string) {
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()
	return s.String()
}
