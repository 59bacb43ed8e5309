package rut

// Module 11 weight cycle, applied to the digit sequence from right to left.
var weights = [6]int{2, 3, 4, 5, 6, 7}

// VerificationDigit computes the Module 11 check character for a digit
// sequence given as a string or number. The result is a single character
// "0"–"9" or "K". It returns the empty string when the input is not made up
// exclusively of decimal digits or exceeds MaxLength characters.
func VerificationDigit(v any) string {
	digits := stringify(v)
	if len(digits) == 0 || len(digits) > MaxLength {
		return ""
	}

	sum := 0
	for i := 0; i < len(digits); i++ {
		c := digits[len(digits)-1-i]
		if c < '0' || c > '9' {
			return ""
		}
		sum += int(c-'0') * weights[i%len(weights)]
	}

	switch c := 11 - sum%11; c {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return string(rune('0' + c))
	}
}
