package service

import (
	"fmt"
	"strings"
)

// formatMoney renders integer minor units as "<CODE> <units>.<cents>".
// Amounts never pass through floating point.
func formatMoney(amount int64, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "USD"
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s %s%d.%02d", currency, sign, amount/100, amount%100)
}
