package textwriter_test

import (
	"testing"

	"github.com/ginjaninja78/theatre-statements/internal/textwriter"
	"github.com/ginjaninja78/theatre-statements/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRender_BigCoStatement(t *testing.T) {
	details := []types.PerformanceDetail{
		{PlayName: "Hamlet", AmountOwed: decimal.NewFromInt(650), EarnedCredits: 25, Seats: 55},
		{PlayName: "As You Like It", AmountOwed: decimal.NewFromInt(547), EarnedCredits: 12, Seats: 35},
		{PlayName: "Othello", AmountOwed: decimal.NewFromInt(456), EarnedCredits: 10, Seats: 40},
	}
	totals := types.StatementTotals{TotalAmount: decimal.NewFromInt(1653), TotalCredits: 47}

	got := textwriter.Render("BigCo", details, totals)

	want := "Statement for BigCo\n" +
		"  Hamlet: $650.00 (55 seats)\n" +
		"  As You Like It: $547.00 (35 seats)\n" +
		"  Othello: $456.00 (40 seats)\n" +
		"Amount owed is $1,653.00\n" +
		"You earned 47 credits\n"
	assert.Equal(t, want, got)
}

func TestRender_EmptyInvoiceKeepsHeaderAndFooter(t *testing.T) {
	got := textwriter.Render("Nobody", nil, types.StatementTotals{TotalAmount: decimal.Zero})

	assert.Equal(t, "Statement for Nobody\nAmount owed is $0.00\nYou earned 0 credits\n", got)
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"30.5", "$30.50"},
		{"547", "$547.00"},
		{"1234567.891", "$1,234,567.89"},
		{"-1653", "-$1,653.00"},
		{"0.005", "$0.01"},
		{"90071992547409.93", "$90,071,992,547,409.93"},
		{"1000000000000000.01", "$1,000,000,000,000,000.01"},
		{"9223372036854775807.99", "$9,223,372,036,854,775,807.99"},
		{"46116860184273878940.5", "$46,116,860,184,273,878,940.50"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, textwriter.FormatCurrency(decimal.RequireFromString(tt.in)))
		})
	}
}
