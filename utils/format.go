package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// dateLayout renders month/day/year, matching the catalog's display format.
const dateLayout = "01/02/2006"

var currencyPrinter = message.NewPrinter(language.English)

// FormatDate formats an optional date as MM/dd/yyyy, or "" when absent.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// FormatDateValue formats a date as MM/dd/yyyy.
func FormatDateValue(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatCurrency formats a decimal amount as a grouped dollar string with two
// decimal places, e.g. "$1,234,567.89". The value never rides through a
// float: a decimal(18,2) column holds more digits than float64 carries.
func FormatCurrency(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	dot := strings.LastIndexByte(fixed, '.')
	units, _ := strconv.ParseInt(fixed[:dot], 10, 64)
	cents := fixed[dot+1:]

	formatted := currencyPrinter.Sprintf("$%d.%s", units, cents)
	if negative {
		return "-" + formatted
	}
	return formatted
}
