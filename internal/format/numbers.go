package format

import (
	"math"
	"strconv"
	"strings"
)

// groupThousands inserts comma separators into a plain digit string.
func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	start := len(s) % 3
	if start > 0 {
		b.WriteString(s[:start])
	}
	for i := start; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// comma2 formats v with comma thousands separators and fixed two-decimal
// precision, e.g. -1234.5 -> "-1,234.50". Display only; the value itself is
// never rounded in place.
func comma2(v float64) string {
	s := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	out := groupThousands(s[:dot]) + s[dot:]
	if v < 0 {
		return "-" + out
	}
	return out
}

// commaNumber formats an arbitrary numeric value with comma thousands
// separators, keeping whatever fractional digits the value carries.
func commaNumber(v float64) string {
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	intPart, frac, hasFrac := strings.Cut(s, ".")
	out := groupThousands(intPart)
	if hasFrac {
		out += "." + frac
	}
	if v < 0 {
		return "-" + out
	}
	return out
}

// formatQty renders a quantity without a forced decimal point: whole values
// print as integers, fractional ones keep their digits.
func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// firstN truncates s to at most n leading bytes.
func firstN(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// lastN keeps at most the n trailing bytes of s.
func lastN(s string, n int) string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}

// timeOfDay extracts the clock portion of an ISO-8601 timestamp: the text
// after the 'T' separator, truncated to 8 characters (HH:MM:SS). Returns the
// placeholder when no 'T' is present.
func timeOfDay(ts string) string {
	i := strings.IndexByte(ts, 'T')
	if i < 0 {
		return placeholder
	}
	return firstN(ts[i+1:], 8)
}
