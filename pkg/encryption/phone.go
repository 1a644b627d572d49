package encryption

import (
	"fmt"
	"strings"
	"unicode"
)

// FormatPhoneNumber normalizes a 10-digit phone number to the
// "(XXX) XXX-XXXX" display format. Anything else is returned unchanged.
func FormatPhoneNumber(phone string) string {
	if phone == "" {
		return ""
	}

	digits := digitsOnly(phone)
	if len(digits) != 10 {
		return phone
	}

	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}

// UnformatPhoneNumber strips everything but digits
func UnformatPhoneNumber(phone string) string {
	return digitsOnly(phone)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
