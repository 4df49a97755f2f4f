package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	scale  = 2
	symbol = "S/"
)

var printer = message.NewPrinter(language.English)

func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// String renders an amount for the wire: two decimals, no grouping.
func String(d decimal.Decimal) string {
	return d.StringFixed(scale)
}

func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// Format renders an amount for people, e.g. "S/ 1,234.50". Display only.
// Digits come from the exact decimal; whole parts past int64 stay ungrouped.
func Format(d decimal.Decimal) string {
	fixed := d.StringFixed(scale)
	sign := ""
	if rest, ok := strings.CutPrefix(fixed, "-"); ok {
		sign, fixed = "-", rest
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		whole = printer.Sprintf("%d", n)
	}
	return symbol + " " + sign + whole + "." + frac
}
