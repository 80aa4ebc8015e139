package finance

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Magnitude thresholds for the Indian numbering system.
const (
	croreValue = 10_000_000
	lakhValue  = 100_000
)

// FormatMagnitude renders an amount in the Indian convention used across the
// dashboards: crores above 1e7, lakhs above 1e5, and en-IN digit grouping
// below that. A zero amount renders as an empty string; callers show their
// own placeholder. Amounts are treated as non-negative by all callers.
func FormatMagnitude(amount float64) string {
	switch {
	case amount == 0:
		return ""
	case amount >= croreValue:
		return fmt.Sprintf("%.2f Cr", amount/croreValue)
	case amount >= lakhValue:
		return fmt.Sprintf("%.2f L", amount/lakhValue)
	default:
		return groupIndian(strconv.FormatFloat(amount, 'f', -1, 64))
	}
}

// groupIndian applies en-IN thousands grouping to a plain decimal string:
// the last three integer digits form one group, every two digits before
// that form another.
func groupIndian(s string) string {
	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx:]
	}
	if len(intPart) <= 3 {
		return intPart + fracPart
	}
	lastThree := intPart[len(intPart)-3:]
	rest := intPart[:len(intPart)-3]
	var groups []string
	for len(rest) > 2 {
		groups = append([]string{rest[len(rest)-2:]}, groups...)
		rest = rest[:len(rest)-2]
	}
	if rest != "" {
		groups = append([]string{rest}, groups...)
	}
	return strings.Join(groups, ",") + "," + lastThree + fracPart
}

var wordOnes = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var wordTens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

// wordsUnderHundred spells out 0-99; anything larger yields an empty string,
// which keeps malformed segments out of the joined result.
func wordsUnderHundred(n int64) string {
	if n < 20 {
		return wordOnes[n]
	}
	if n < 100 {
		if n%10 != 0 {
			return wordTens[n/10] + " " + wordOnes[n%10]
		}
		return wordTens[n/10]
	}
	return ""
}

// NumberToWords converts an integer to English words using Indian place
// values (crore, lakh, thousand, hundred). It returns an empty string for
// NaN or non-integer input, and for zero: callers guard the zero case
// themselves before display.
func NumberToWords(n float64) string {
	if math.IsNaN(n) || n != math.Trunc(n) || n < 0 || n > math.MaxInt64 {
		return ""
	}
	v := int64(n)

	crore := v / croreValue
	lakh := (v % croreValue) / lakhValue
	thousand := (v % lakhValue) / 1000
	hundred := (v % 1000) / 100
	rest := v % 100

	var b strings.Builder
	if crore != 0 {
		b.WriteString(wordsUnderHundred(crore) + " crore ")
	}
	if lakh != 0 {
		b.WriteString(wordsUnderHundred(lakh) + " lakh ")
	}
	if thousand != 0 {
		b.WriteString(wordsUnderHundred(thousand) + " thousand ")
	}
	if hundred != 0 {
		b.WriteString(wordsUnderHundred(hundred) + " hundred ")
	}
	if rest != 0 {
		if b.Len() > 0 {
			b.WriteString("and ")
		}
		b.WriteString(wordsUnderHundred(rest))
	}
	return strings.TrimSpace(b.String())
}
