// Package currency renders monetary amounts the way the public pages and
// confirmation emails display them: whole units, locale-correct grouping.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	idPrinter = message.NewPrinter(language.Indonesian)
	enPrinter = message.NewPrinter(language.AmericanEnglish)
)

// Format renders amount for the given ISO currency code. Fractions are
// dropped; donation amounts are displayed in whole units everywhere.
func Format(code string, amount decimal.Decimal) string {
	whole := amount.Round(0).IntPart()
	switch strings.ToUpper(code) {
	case "USD":
		return enPrinter.Sprintf("$%v", number.Decimal(whole))
	default:
		return idPrinter.Sprintf("Rp %v", number.Decimal(whole))
	}
}

// Symbol returns the display prefix for a currency code.
func Symbol(code string) string {
	if strings.ToUpper(code) == "USD" {
		return "$"
	}
	return "Rp "
}
