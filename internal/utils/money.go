package utils

import (
	"fmt"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatHryvnia renders an amount with thousand separators, e.g. "1 250.00 UAH".
func FormatHryvnia(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := FormatMoney(amount)
	whole, frac, _ := strings.Cut(s, ".")
	return fmt.Sprintf("%s%s.%s UAH", sign, formatThousand(whole), frac)
}

func formatThousand(digits string) string {
	var out strings.Builder
	for i, c := range digits {
		if i != 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte(' ')
		}
		out.WriteRune(c)
	}
	return out.String()
}
