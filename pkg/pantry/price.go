package pantry

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	clpPrinter = message.NewPrinter(language.MustParse("es-CL"))
	clp        = currency.MustParseISO("CLP")
)

// FormatPrice renders an amount using Chilean-peso conventions: currency
// symbol, thousands grouping, no decimal places (CLP has none in CLDR).
func FormatPrice(amount float64) string {
	return clpPrinter.Sprintf("%v", currency.Symbol(clp.Amount(amount)))
}
