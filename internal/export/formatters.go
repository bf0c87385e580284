package export

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var gbPrinter = message.NewPrinter(language.BritishEnglish)

// FormatCurrency renders an amount the way the dashboard did:
// pound sign, two decimals, en-GB digit grouping.
func FormatCurrency(amount float64) string {
	return gbPrinter.Sprintf("£%v", number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatDate renders a short en-GB date, e.g. "14 Mar 2025".
func FormatDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}

// FormatTime renders a 12-hour clock time, e.g. "02:30 pm".
func FormatTime(t time.Time) string {
	return t.Format("03:04 pm")
}
