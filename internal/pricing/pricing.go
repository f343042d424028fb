// =============================================================================
// Theatre Statements - Pricing Engine
// =============================================================================
//
// Maps (genre, audience, script length) to the amount owed and the credits
// earned for one performance. All arithmetic is done in cents and converted to
// currency units at the end.
//
// PRICING CURVES (cents):
//   base     = normalize(lines) * 10
//   tragedy  = base + 1000 * (audience - 30)              when audience > 30
//   comedy   = base + 10000 + 500 * (audience - 20)       when audience > 20
//                   + 300 * audience
//   history  = tragedy + comedy
//
// CREDITS:
//   max(audience - 30, 0), plus floor(audience / 5) for comedies.
//
// =============================================================================

package pricing

import (
	"github.com/ginjaninja78/theatre-statements/internal/types"
	"github.com/shopspring/decimal"
)

const (
	creditAudienceThreshold = 30
	comedyCreditDivisor     = 5
)

// Curve constants, in cents. Multiplication happens in decimal so a large
// audience cannot wrap around.
var (
	hundred      = decimal.NewFromInt(100)
	centsPerLine = decimal.NewFromInt(10)

	tragedyAudienceThreshold = decimal.NewFromInt(30)
	tragedyPerExtraSeat      = decimal.NewFromInt(1000)

	comedyAudienceThreshold = decimal.NewFromInt(20)
	comedyFlatSurcharge     = decimal.NewFromInt(10000)
	comedyPerExtraSeat      = decimal.NewFromInt(500)
	comedyPerSeat           = decimal.NewFromInt(300)
)

// Engine prices performances. The zero value is not usable; build it with
// New or NewDefault.
type Engine struct {
	normalizer LineNormalizer
}

// New creates an Engine using the given line normalizer.
func New(normalizer LineNormalizer) *Engine {
	if normalizer == nil {
		normalizer = DefaultClamp()
	}
	return &Engine{normalizer: normalizer}
}

// NewDefault creates an Engine with the standard 1000..4000 line clamp.
func NewDefault() *Engine {
	return New(DefaultClamp())
}

// BasePrice returns the baseline amount in cents for a script length.
func (e *Engine) BasePrice(lines int) decimal.Decimal {
	return decimal.NewFromInt(int64(e.normalizer.Normalize(lines))).Mul(centsPerLine)
}

// AmountOwed applies the genre's pricing curve on top of base (in cents) and
// returns the result in currency units.
func (e *Engine) AmountOwed(genre types.Genre, audience int, base decimal.Decimal) (decimal.Decimal, error) {
	var cents decimal.Decimal
	switch genre {
	case types.Tragedy:
		cents = tragedyCents(audience, base)
	case types.Comedy:
		cents = comedyCents(audience, base)
	case types.History:
		cents = tragedyCents(audience, base).Add(comedyCents(audience, base))
	default:
		return decimal.Zero, types.NewUnsupportedGenreError(genre)
	}
	return cents.Div(hundred), nil
}

// EarnedCredits returns the loyalty credits for one performance.
func (e *Engine) EarnedCredits(genre types.Genre, audience int) int {
	credits := max(audience-creditAudienceThreshold, 0)
	if genre == types.Comedy {
		credits += audience / comedyCreditDivisor
	}
	return credits
}

// Price computes amount and credits for a performance of play.
func (e *Engine) Price(play types.Play, perf types.Performance) (decimal.Decimal, int, error) {
	amount, err := e.AmountOwed(play.Genre, perf.Audience, e.BasePrice(play.Lines))
	if err != nil {
		return decimal.Zero, 0, err
	}
	return amount, e.EarnedCredits(play.Genre, perf.Audience), nil
}

func tragedyCents(audience int, base decimal.Decimal) decimal.Decimal {
	seats := decimal.NewFromInt(int64(audience))
	cents := base
	if seats.GreaterThan(tragedyAudienceThreshold) {
		cents = cents.Add(seats.Sub(tragedyAudienceThreshold).Mul(tragedyPerExtraSeat))
	}
	return cents
}

func comedyCents(audience int, base decimal.Decimal) decimal.Decimal {
	seats := decimal.NewFromInt(int64(audience))
	cents := base
	if seats.GreaterThan(comedyAudienceThreshold) {
		cents = cents.Add(comedyFlatSurcharge).
			Add(seats.Sub(comedyAudienceThreshold).Mul(comedyPerExtraSeat))
	}
	return cents.Add(seats.Mul(comedyPerSeat))
}
