package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericToken matches a standalone amount: digits with an optional 1–2 digit
// decimal fraction, e.g. "12345" or "12345.00".
var numericToken = regexp.MustCompile(`\b\d+(?:\.\d{1,2})?\b`)

// LastAmount returns the last numeric token on a line, which in hospital bills
// is the amount column. Returns nil when the line carries no number.
func LastAmount(line string) *float64 {
	tokens := numericToken.FindAllString(line, -1)
	if len(tokens) == 0 {
		return nil
	}
	v, err := strconv.ParseFloat(tokens[len(tokens)-1], 64)
	if err != nil {
		return nil
	}
	return &v
}

// Round2 rounds to 2 decimal places (currency subunits). The engine keeps full
// float precision internally and rounds only at comparison and output time.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatINR renders an amount with exactly two decimals and Indian digit
// grouping: 12,345.00 and 5,00,000.00.
func FormatINR(v float64) string {
	neg := v < 0
	s := strconv.FormatFloat(math.Abs(Round2(v)), 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]

	grouped := intPart
	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		grouped = strings.Join(parts, ",") + "," + tail
	}

	if neg {
		return "-" + grouped + frac
	}
	return grouped + frac
}
