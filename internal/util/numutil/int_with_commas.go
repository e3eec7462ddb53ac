package numutil

import (
	"strconv"
	"strings"
)

// IntWithCommas returns i in decimal with a comma every three digits.
//
// Example:
//
//	1000100 -> "1,000,100"
func IntWithCommas(i int) string {
	digits := strconv.Itoa(i)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for idx, r := range digits {
		if idx > 0 && (len(digits)-idx)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return b.String()
}
