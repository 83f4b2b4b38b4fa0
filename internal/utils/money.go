package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatDollar renders a whole-dollar amount, e.g. "$2000".
func FormatDollar(amount int64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%d", -amount)
	}
	return fmt.Sprintf("$%d", amount)
}

// FormatDollarGrouped renders the amount with thousand separators for printed
// documents, e.g. "$12,000".
func FormatDollarGrouped(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "$" + formatThousand(amount)
}

// ParseDollarToInt parses "$1,000" or "1000" into an integer dollar amount.
func ParseDollarToInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	replacer := strings.NewReplacer(",", "", " ", "")
	s = replacer.Replace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid dollar amount")
	}
	return strconv.ParseInt(s, 10, 64)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
