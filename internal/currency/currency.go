// Package currency renders canonical MXN amounts in the shopper's chosen
// display currency at a fixed exchange rate.
package currency

import (
	"fmt"

	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Code names a supported display currency.
type Code string

const (
	MXN Code = "MXN"
	USD Code = "USD"
)

// RateMXNPerUSD is the fixed conversion rate. Prices are stored in MXN and
// only converted for display.
const RateMXNPerUSD = 18.50

var (
	mxnPrinter = message.NewPrinter(language.MustParse("es-MX"))
	usdPrinter = message.NewPrinter(language.MustParse("en-US"))
)

// Parse validates a display currency code.
func Parse(s string) (Code, error) {
	switch Code(s) {
	case MXN:
		return MXN, nil
	case USD:
		return USD, nil
	default:
		return "", fmt.Errorf("unsupported currency %q", s)
	}
}

// Convert returns the amount in the display currency's unit.
func Convert(amountMXN float64, code Code) float64 {
	if code == USD {
		return amountMXN / RateMXNPerUSD
	}
	return amountMXN
}

// Format renders a canonical MXN amount as a display string in the selected
// currency, using that currency's locale conventions.
func Format(amountMXN float64, code Code) string {
	if code == USD {
		return usdPrinter.Sprintf("%v", xcurrency.Symbol(xcurrency.USD.Amount(Convert(amountMXN, USD))))
	}
	return mxnPrinter.Sprintf("%v", xcurrency.Symbol(xcurrency.MXN.Amount(amountMXN)))
}
