package aggregator_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/ginjaninja78/theatre-statements/internal/aggregator"
	"github.com/ginjaninja78/theatre-statements/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func katPlays() types.Plays {
	return types.Plays{
		"hamlet":  {Name: "Hamlet", Genre: types.Tragedy, Lines: 4024},
		"as-like": {Name: "As You Like It", Genre: types.Comedy, Lines: 2670},
		"othello": {Name: "Othello", Genre: types.Tragedy, Lines: 3560},
	}
}

func TestAggregate_BigCoInvoice(t *testing.T) {
	invoice := types.Invoice{
		Customer: "BigCo",
		Performances: []types.Performance{
			{PlayID: "hamlet", Audience: 55},
			{PlayID: "as-like", Audience: 35},
			{PlayID: "othello", Audience: 40},
		},
	}

	result, err := aggregator.New(nil).Aggregate(invoice, katPlays())
	require.NoError(t, err)

	require.Len(t, result.Details, 3)
	assert.Equal(t, "Hamlet", result.Details[0].PlayName)
	assert.Equal(t, "As You Like It", result.Details[1].PlayName)
	assert.Equal(t, "Othello", result.Details[2].PlayName)

	assert.Equal(t, "650", result.Details[0].AmountOwed.String())
	assert.Equal(t, 25, result.Details[0].EarnedCredits)
	assert.Equal(t, 55, result.Details[0].Seats)
	assert.Equal(t, 12, result.Details[1].EarnedCredits)

	assert.Equal(t, "1653", result.Totals.TotalAmount.String())
	assert.Equal(t, 47, result.Totals.TotalCredits)
}

func TestAggregate_EmptyInvoice(t *testing.T) {
	result, err := aggregator.New(nil).Aggregate(types.Invoice{Customer: "Nobody"}, katPlays())
	require.NoError(t, err)

	assert.Empty(t, result.Details)
	assert.True(t, result.Totals.TotalAmount.IsZero())
	assert.Zero(t, result.Totals.TotalCredits)
}

func TestAggregate_UnknownPlayAborts(t *testing.T) {
	invoice := types.Invoice{
		Customer: "BigCo",
		Performances: []types.Performance{
			{PlayID: "hamlet", Audience: 55},
			{PlayID: "macbeth", Audience: 10},
		},
	}

	result, err := aggregator.New(nil).Aggregate(invoice, katPlays())
	require.Error(t, err)
	assert.Empty(t, result.Details)

	var aggErr *types.AggregationError
	require.True(t, errors.As(err, &aggErr))
	assert.Equal(t, 1, aggErr.Index)
	assert.Equal(t, "macbeth", aggErr.PlayID)
	assert.True(t, types.IsUnknownPlay(err))
}

func TestAggregate_UnsupportedGenreAborts(t *testing.T) {
	plays := katPlays()
	plays["masque"] = types.Play{Name: "Masque", Genre: types.Genre("masque"), Lines: 1200}

	_, err := aggregator.New(nil).Aggregate(types.Invoice{
		Customer:     "BigCo",
		Performances: []types.Performance{{PlayID: "masque", Audience: 10}},
	}, plays)

	require.Error(t, err)
	assert.True(t, types.IsAggregation(err))
	assert.True(t, types.IsUnsupportedGenre(err))
}
