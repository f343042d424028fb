// =============================================================================
// Theatre Statements - Shared Types
// =============================================================================
//
// This package contains the domain types shared by every stage of statement
// production. Keeping them here avoids import cycles between:
//   - pricing
//   - aggregator
//   - textwriter / xmlwriter
//   - statement
//   - source / validation
//
// =============================================================================

package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// REFERENCE DATA
// =============================================================================

// Genre is the category of a play. It selects the pricing curve.
type Genre string

const (
	Tragedy Genre = "tragedy"
	Comedy  Genre = "comedy"
	History Genre = "history"
)

// ParseGenre normalizes a genre name read from an input file.
// Unknown names are kept verbatim so the pricing engine can reject them
// with an UnsupportedGenreError naming the offending value.
func ParseGenre(s string) Genre {
	return Genre(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether the genre has a pricing curve.
func (g Genre) Known() bool {
	switch g {
	case Tragedy, Comedy, History:
		return true
	}
	return false
}

// Play is immutable reference data looked up by play id.
type Play struct {
	// Name is the display name used in statements.
	Name string `json:"name" yaml:"name" validate:"required"`

	// Genre drives the pricing curve.
	Genre Genre `json:"type" yaml:"type" validate:"required"`

	// Lines is the script length. It feeds the base price.
	Lines int `json:"lines" yaml:"lines" validate:"gte=0"`
}

// Plays is the play registry keyed by play id.
type Plays map[string]Play

// =============================================================================
// INVOICE
// =============================================================================

// Performance is one invoice line.
type Performance struct {
	PlayID   string `json:"playId" yaml:"playId" validate:"required"`
	Audience int    `json:"audience" yaml:"audience" validate:"gte=0"`
}

// Invoice is created by an invoice provider and is read-only to the core.
// The order of Performances is preserved in every statement.
type Invoice struct {
	Customer     string        `json:"customer" yaml:"customer" validate:"required"`
	Performances []Performance `json:"performances" yaml:"performances" validate:"dive"`
}

// =============================================================================
// DERIVED VALUES
// =============================================================================

// PerformanceDetail is the per-performance record feeding both renderers.
type PerformanceDetail struct {
	PlayName      string
	AmountOwed    decimal.Decimal
	EarnedCredits int
	Seats         int
}

// StatementTotals are the invoice-level sums.
type StatementTotals struct {
	TotalAmount  decimal.Decimal
	TotalCredits int
}
