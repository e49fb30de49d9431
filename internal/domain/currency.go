package domain

import (
	"math"
	"strconv"
)

// Currency is one of the fixed set of supported display currencies. The
// values double as the keys of the CMS pricing maps.
type Currency string

const (
	CurrencyUSD Currency = "usd"
	CurrencyEUR Currency = "eur"
)

// DefaultCurrency is used when no selection has been persisted yet.
const DefaultCurrency = CurrencyUSD

// currencyFormat holds the static display configuration for one currency.
type currencyFormat struct {
	Symbol       string
	ThousandsSep string
}

var currencyFormats = map[Currency]currencyFormat{
	CurrencyUSD: {Symbol: "$", ThousandsSep: ","},
	CurrencyEUR: {Symbol: "€", ThousandsSep: "."},
}

// ParseCurrency validates a currency code against the supported set.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(code)
	if _, ok := currencyFormats[c]; !ok {
		return "", ErrUnknownCurrency
	}
	return c, nil
}

// FormatPrice renders an amount as a zero-decimal display string in the
// given currency's locale convention, e.g. "$1,234" or "€1.234".
// Unknown currencies fall back to USD formatting.
func FormatPrice(c Currency, amount float64) string {
	format, ok := currencyFormats[c]
	if !ok {
		format = currencyFormats[CurrencyUSD]
	}

	negative := amount < 0
	rounded := int64(math.Round(math.Abs(amount)))
	grouped := groupDigits(strconv.FormatInt(rounded, 10), format.ThousandsSep)

	s := format.Symbol + grouped
	if negative {
		s = "-" + s
	}
	return s
}

// groupDigits inserts the thousands separator into a plain digit string.
func groupDigits(digits, sep string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var out []byte
	lead := n % 3
	if lead > 0 {
		out = append(out, digits[:lead]...)
	}
	for i := lead; i < n; i += 3 {
		if len(out) > 0 {
			out = append(out, sep...)
		}
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}
