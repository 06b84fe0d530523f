package format

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Prices on the site are written the English way ("R5,500"), not with the
// CLDR en-ZA space separator.
var printer = message.NewPrinter(language.English)

// Rand formats a whole-rand amount. Fractions are rounded half away from zero.
// Example: Rand(15000) => "R15,000"
func Rand(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "R0"
	}
	n := int64(math.Round(amount))
	if n < 0 {
		return "-R" + printer.Sprintf("%d", -n)
	}
	return "R" + printer.Sprintf("%d", n)
}

// Number groups digits: 10000 => "10,000".
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Decimal prints v with exactly digits fraction digits and grouping.
func Decimal(v float64, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return printer.Sprint(number.Decimal(v, number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
}

// Percent formats v (already in percent units) with the given precision.
// Example: Percent(1.21, 2) => "1.21%"
func Percent(v float64, digits int) string {
	return Decimal(v, digits) + "%"
}

// Date formats t in the long form used on articles: "30 October 2025".
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2 January 2006")
}

// ISODate is the machine readable form for <time datetime> and sitemaps.
func ISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
