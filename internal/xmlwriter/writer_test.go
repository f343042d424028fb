package xmlwriter_test

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/ginjaninja78/theatre-statements/internal/types"
	"github.com/ginjaninja78/theatre-statements/internal/xmlwriter"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_SinglePerformance(t *testing.T) {
	details := []types.PerformanceDetail{
		{PlayName: "Hamlet", AmountOwed: decimal.NewFromInt(650), EarnedCredits: 25, Seats: 55},
	}
	totals := types.StatementTotals{TotalAmount: decimal.NewFromInt(650), TotalCredits: 25}

	got, err := xmlwriter.Render("BigCo", details, totals)
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="utf-8"?>
<Statement xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <Customer>BigCo</Customer>
  <Items>
    <Item>
      <AmountOwed>650</AmountOwed>
      <EarnedCredits>25</EarnedCredits>
      <Seats>55</Seats>
    </Item>
  </Items>
  <AmountOwed>650</AmountOwed>
  <EarnedCredits>25</EarnedCredits>
</Statement>`
	assert.Equal(t, want, got)
}

func TestRender_EmptyInvoiceIsWellFormed(t *testing.T) {
	got, err := xmlwriter.Render("Nobody", nil, types.StatementTotals{TotalAmount: decimal.Zero})
	require.NoError(t, err)

	assert.Contains(t, got, "<Customer>Nobody</Customer>")
	assert.Contains(t, got, "  <Items />\n")
	assert.NotContains(t, got, "<Items></Items>")
	assert.Contains(t, got, "<AmountOwed>0</AmountOwed>")
	assert.Contains(t, got, "<EarnedCredits>0</EarnedCredits>")
	assertWellFormed(t, got)
}

func TestRender_EscapesCustomer(t *testing.T) {
	got, err := xmlwriter.Render("Smith & <Sons>", nil, types.StatementTotals{TotalAmount: decimal.Zero})
	require.NoError(t, err)

	assert.Contains(t, got, "<Customer>Smith &amp; &lt;Sons&gt;</Customer>")
	assertWellFormed(t, got)
}

func TestRender_KeepsQuotesAndNewlinesLiteral(t *testing.T) {
	got, err := xmlwriter.Render("O'Brien \"Theatre\"\nCompany", nil, types.StatementTotals{TotalAmount: decimal.Zero})
	require.NoError(t, err)

	assert.Contains(t, got, "<Customer>O'Brien \"Theatre\"\nCompany</Customer>")
	assert.NotContains(t, got, "&#39;")
	assert.NotContains(t, got, "&#34;")
	assert.NotContains(t, got, "&#xA;")
	assertWellFormed(t, got)
}

func TestRender_CustomerLookingLikeEmptyItems(t *testing.T) {
	got, err := xmlwriter.Render("<Items></Items>", nil, types.StatementTotals{TotalAmount: decimal.Zero})
	require.NoError(t, err)

	assert.Contains(t, got, "<Customer>&lt;Items&gt;&lt;/Items&gt;</Customer>")
	assert.Contains(t, got, "<Items />")
	assertWellFormed(t, got)
}

func TestRender_Deterministic(t *testing.T) {
	details := []types.PerformanceDetail{
		{PlayName: "Hamlet", AmountOwed: decimal.RequireFromString("30.5"), EarnedCredits: 1, Seats: 31},
		{PlayName: "Othello", AmountOwed: decimal.NewFromInt(20), EarnedCredits: 0, Seats: 10},
	}
	totals := types.StatementTotals{TotalAmount: decimal.RequireFromString("50.5"), TotalCredits: 1}

	first, err := xmlwriter.Render("BigCo", details, totals)
	require.NoError(t, err)
	second, err := xmlwriter.Render("BigCo", details, totals)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "<AmountOwed>30.5</AmountOwed>")
	assert.Contains(t, first, "<AmountOwed>20</AmountOwed>")
	assert.Contains(t, first, "<AmountOwed>50.5</AmountOwed>")
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"20", "20"},
		{"20.00", "20"},
		{"0", "0"},
		{"30.5", "30.5"},
		{"30.25", "30.3"},
		{"1653", "1653"},
		{"0.04", "0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, xmlwriter.FormatAmount(decimal.RequireFromString(tt.in)))
		})
	}
}

func assertWellFormed(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err != nil {
			assert.Equal(t, "EOF", err.Error())
			return
		}
	}
}
