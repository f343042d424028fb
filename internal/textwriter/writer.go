// =============================================================================
// Theatre Statements - Text Writer
// =============================================================================
//
// Renders a statement as plain text:
//
//   Statement for BigCo
//     Hamlet: $650.00 (55 seats)
//     As You Like It: $547.00 (35 seats)
//   Amount owed is $1,197.00
//   You earned 37 credits
//
// Amounts are always formatted as en-US currency: dollar sign, comma
// grouping, two decimals. The locale is fixed and not taken from the host.
//
// =============================================================================

package textwriter

import (
	"fmt"
	"math"
	"strings"

	"github.com/ginjaninja78/theatre-statements/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

var (
	thousand = decimal.NewFromInt(1000)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// Render builds the text statement for customer.
func Render(customer string, details []types.PerformanceDetail, totals types.StatementTotals) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Statement for %s\n", customer)
	for _, d := range details {
		fmt.Fprintf(&b, "  %s: %s (%d seats)\n", d.PlayName, FormatCurrency(d.AmountOwed), d.Seats)
	}
	fmt.Fprintf(&b, "Amount owed is %s\n", FormatCurrency(totals.TotalAmount))
	fmt.Fprintf(&b, "You earned %d credits\n", totals.TotalCredits)

	return b.String()
}

// FormatCurrency renders amount as en-US dollars, e.g. $1,653.00.
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := "$"
	if rounded.IsNegative() {
		sign = "-$"
		rounded = rounded.Neg()
	}
	fixed := rounded.StringFixed(2)
	return sign + groupThousands(rounded.Truncate(0)) + fixed[len(fixed)-3:]
}

// groupThousands writes a non-negative whole amount with comma grouping.
// Values past int64 are split into thousands until the head fits.
func groupThousands(whole decimal.Decimal) string {
	if whole.LessThanOrEqual(maxInt64) {
		return printer.Sprintf("%d", whole.IntPart())
	}
	head, tail := whole.QuoRem(thousand, 0)
	return groupThousands(head) + "," + fmt.Sprintf("%03d", tail.IntPart())
}
