// =============================================================================
// Theatre Statements - Performance Aggregator
// =============================================================================
//
// Walks the performances of an invoice in order, prices each one and builds
// the detail records and totals both renderers consume.
//
// FAILURE MODEL:
//   The first performance that cannot be resolved or priced aborts the whole
//   run. The caller gets an AggregationError wrapping the cause and no
//   partial result.
//
// =============================================================================

package aggregator

import (
	"github.com/ginjaninja78/theatre-statements/internal/pricing"
	"github.com/ginjaninja78/theatre-statements/internal/types"
	"github.com/shopspring/decimal"
)

// Result is the outcome of aggregating one invoice.
type Result struct {
	Totals  types.StatementTotals
	Details []types.PerformanceDetail
}

// Aggregator prices invoices through a pricing engine.
type Aggregator struct {
	engine *pricing.Engine
}

// New creates an Aggregator. A nil engine falls back to the default clamp.
func New(engine *pricing.Engine) *Aggregator {
	if engine == nil {
		engine = pricing.NewDefault()
	}
	return &Aggregator{engine: engine}
}

// Aggregate computes the statement data for invoice using the plays registry.
func (a *Aggregator) Aggregate(invoice types.Invoice, plays types.Plays) (Result, error) {
	details := make([]types.PerformanceDetail, 0, len(invoice.Performances))
	totalAmount := decimal.Zero
	totalCredits := 0

	for i, perf := range invoice.Performances {
		play, ok := plays[perf.PlayID]
		if !ok {
			return Result{}, &types.AggregationError{
				Index:  i,
				PlayID: perf.PlayID,
				Err:    types.NewUnknownPlayError(perf.PlayID),
			}
		}

		amount, credits, err := a.engine.Price(play, perf)
		if err != nil {
			return Result{}, &types.AggregationError{Index: i, PlayID: perf.PlayID, Err: err}
		}

		details = append(details, types.PerformanceDetail{
			PlayName:      play.Name,
			AmountOwed:    amount,
			EarnedCredits: credits,
			Seats:         perf.Audience,
		})
		totalAmount = totalAmount.Add(amount)
		totalCredits += credits
	}

	return Result{
		Totals: types.StatementTotals{
			TotalAmount:  totalAmount,
			TotalCredits: totalCredits,
		},
		Details: details,
	}, nil
}
