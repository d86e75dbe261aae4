// Package money formats monetary amounts for display.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Format renders an amount as a currency string with thousands grouping
// and two decimal places, e.g. "$1,234.50".
func Format(amount decimal.Decimal) string {
	value, _ := amount.Float64()
	return printer.Sprintf("$%v", number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
