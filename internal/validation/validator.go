// =============================================================================
// Theatre Statements - Validation Module
// =============================================================================
//
// This module checks loaded input before it reaches the statement service.
//
// VALIDATION RULES:
//   Plays:
//     - id must not be empty
//     - name is required
//     - type (genre) is required
//     - lines >= 0
//   Invoice:
//     - customer is required
//     - every performance has a playId and audience >= 0
//   Cross-checks (validate command only):
//     - every playId resolves in the play registry
//     - every referenced play has a priceable genre
//
// Structural rules come from the `validate` struct tags on the types
// package and are evaluated by go-playground/validator. Unknown genres are
// not rejected at load time: the pricing engine owns that decision.
//
// =============================================================================

package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ginjaninja78/theatre-statements/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

var validate = validator.New()

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ValidationError represents a single validation error.
type ValidationError struct {
	// Severity indicates the severity of the error.
	// "error" = the input cannot produce a statement
	// "warning" = the input is usable but suspicious
	Severity string

	// Field is the path of the field that failed validation,
	// e.g. "plays[hamlet].Lines" or "Invoice.Performances[0].Audience".
	Field string

	// Value is the actual value that failed validation.
	Value string

	// Rule is the validation rule that was violated.
	Rule string

	// Message is a human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s (value: '%s')",
		strings.ToUpper(e.Severity),
		e.Field,
		e.Message,
		e.Value,
	)
}

// =============================================================================
// STRUCTURAL VALIDATION
// =============================================================================

// ValidatePlays checks every play in the registry, in id order.
func ValidatePlays(plays types.Plays) []*ValidationError {
	var result []*ValidationError

	ids := lo.Keys(plays)
	sort.Strings(ids)

	for _, id := range ids {
		prefix := fmt.Sprintf("plays[%s]", id)
		if strings.TrimSpace(id) == "" {
			result = append(result, &ValidationError{
				Severity: SeverityError,
				Field:    prefix,
				Rule:     "required",
				Message:  "play id must not be empty",
			})
		}
		result = append(result, structErrors(prefix, validate.Struct(plays[id]))...)
	}

	return result
}

// ValidateInvoice checks the invoice and each of its performances.
func ValidateInvoice(invoice types.Invoice) []*ValidationError {
	result := structErrors("", validate.Struct(invoice))
	if len(invoice.Performances) == 0 {
		result = append(result, &ValidationError{
			Severity: SeverityWarning,
			Field:    "Invoice.Performances",
			Rule:     "min",
			Message:  "invoice has no performances",
		})
	}
	return result
}

// =============================================================================
// CROSS-CHECKS
// =============================================================================

// CheckInvoiceAgainstPlays reports performances whose play is missing from
// the registry or whose genre cannot be priced.
func CheckInvoiceAgainstPlays(invoice types.Invoice, plays types.Plays) []*ValidationError {
	var result []*ValidationError

	for i, perf := range invoice.Performances {
		field := fmt.Sprintf("Invoice.Performances[%d].PlayID", i)
		play, ok := plays[perf.PlayID]
		if !ok {
			result = append(result, &ValidationError{
				Severity: SeverityError,
				Field:    field,
				Value:    perf.PlayID,
				Rule:     "known_play",
				Message:  "play is not in the registry",
			})
			continue
		}
		if !play.Genre.Known() {
			result = append(result, &ValidationError{
				Severity: SeverityError,
				Field:    fmt.Sprintf("plays[%s].Genre", perf.PlayID),
				Value:    string(play.Genre),
				Rule:     "known_genre",
				Message:  "genre has no pricing curve",
			})
		}
	}

	return result
}

// =============================================================================
// REPORTING
// =============================================================================

// HasErrors reports whether any entry has error severity.
func HasErrors(errs []*ValidationError) bool {
	return lo.ContainsBy(errs, func(e *ValidationError) bool {
		return e.Severity == SeverityError
	})
}

// AsInputError turns error-severity entries into an InputError for source.
// It returns nil when there are none.
func AsInputError(source string, errs []*ValidationError) error {
	fatal := lo.Filter(errs, func(e *ValidationError, _ int) bool {
		return e.Severity == SeverityError
	})
	if len(fatal) == 0 {
		return nil
	}
	return &types.InputError{Source: source, Err: errors.New(FormatErrors(fatal))}
}

// FormatErrors formats validation errors for display or logging.
func FormatErrors(errs []*ValidationError) string {
	if len(errs) == 0 {
		return "No validation errors."
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Validation completed with %d problem(s):\n", len(errs)))
	for i, err := range errs {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, err.Error()))
	}

	return builder.String()
}

// structErrors converts validator output into ValidationErrors.
func structErrors(prefix string, err error) []*ValidationError {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []*ValidationError{{
			Severity: SeverityError,
			Field:    prefix,
			Message:  err.Error(),
		}}
	}

	return lo.Map(fieldErrs, func(fe validator.FieldError, _ int) *ValidationError {
		field := fe.Namespace()
		if prefix != "" {
			field = prefix + "." + fe.Field()
		}
		return &ValidationError{
			Severity: SeverityError,
			Field:    field,
			Value:    fmt.Sprintf("%v", fe.Value()),
			Rule:     fe.Tag(),
			Message:  ruleMessage(fe),
		}
	})
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be >= " + fe.Param()
	default:
		return fmt.Sprintf("failed rule %q", fe.Tag())
	}
}
