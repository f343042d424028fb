package types

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// =============================================================================
// ERROR TAXONOMY
// =============================================================================
//
// Every failure a statement can hit is one of the tagged types below. Callers
// match them with errors.As (or the Is* helpers); wrappers keep the cause
// reachable through Unwrap.
//
//   UnsupportedFormatError  - format is neither txt nor xml
//   UnknownPlayError        - invoice references a play missing from the registry
//   UnsupportedGenreError   - play genre has no pricing curve
//   AggregationError        - wraps any failure inside the per-performance loop
//   PersistenceError        - the statement file could not be written
//   InputError              - an input file could not be read, decoded or validated
//
// =============================================================================

// UnsupportedFormatError is returned for a format outside txt/xml.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported statement format %q", e.Format)
}

// NewUnsupportedFormatError builds an UnsupportedFormatError with a stack.
func NewUnsupportedFormatError(format string) error {
	return errors.WithStack(&UnsupportedFormatError{Format: format})
}

// UnknownPlayError is returned when a performance names a play that the
// registry does not contain.
type UnknownPlayError struct {
	PlayID string
}

func (e *UnknownPlayError) Error() string {
	return fmt.Sprintf("unknown play %q", e.PlayID)
}

// NewUnknownPlayError builds an UnknownPlayError with a stack.
func NewUnknownPlayError(playID string) error {
	return errors.WithStack(&UnknownPlayError{PlayID: playID})
}

// UnsupportedGenreError is returned by the pricing engine for a genre it has
// no curve for.
type UnsupportedGenreError struct {
	Genre Genre
}

func (e *UnsupportedGenreError) Error() string {
	return fmt.Sprintf("unsupported genre %q", string(e.Genre))
}

// NewUnsupportedGenreError builds an UnsupportedGenreError with a stack.
func NewUnsupportedGenreError(genre Genre) error {
	return errors.WithStack(&UnsupportedGenreError{Genre: genre})
}

// AggregationError wraps the failure of a single performance. The whole
// aggregation is aborted when one is returned.
type AggregationError struct {
	// Index is the 0-based position of the performance in the invoice.
	Index int

	// PlayID is the play the failing performance referenced.
	PlayID string

	Err error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregating performance #%d (play %q): %v", e.Index+1, e.PlayID, e.Err)
}

func (e *AggregationError) Unwrap() error { return e.Err }

// PersistenceError is returned when a rendered statement could not be
// stored. The statement call fails as a whole when this happens.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("persisting statement: %v", e.Err)
	}
	return fmt.Sprintf("persisting statement to %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// InputError is returned when an invoice or play registry cannot be loaded.
type InputError struct {
	Source string
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input %s: %v", e.Source, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// =============================================================================
// MATCHING HELPERS
// =============================================================================

func IsUnsupportedFormat(err error) bool {
	var target *UnsupportedFormatError
	return errors.As(err, &target)
}

func IsUnknownPlay(err error) bool {
	var target *UnknownPlayError
	return errors.As(err, &target)
}

func IsUnsupportedGenre(err error) bool {
	var target *UnsupportedGenreError
	return errors.As(err, &target)
}

func IsAggregation(err error) bool {
	var target *AggregationError
	return errors.As(err, &target)
}

func IsPersistence(err error) bool {
	var target *PersistenceError
	return errors.As(err, &target)
}

func IsInput(err error) bool {
	var target *InputError
	return errors.As(err, &target)
}
