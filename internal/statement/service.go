// =============================================================================
// Theatre Statements - Statement Service
// =============================================================================
//
// The single entry point for producing a statement. It orchestrates the
// whole pipeline for one invoice.
//
// PROCESSING PIPELINE:
//   1. Check the requested format (fails before any other work)
//   2. Aggregate the invoice's performances through the pricing engine
//   3. Render the statement as text or XML
//   4. XML only: persist the rendered document through the Store
//   5. Return the rendered statement
//
// PERSISTENCE POLICY:
//   A failed XML write fails the whole call with a PersistenceError and no
//   statement is returned. Text statements are never persisted.
//
// =============================================================================

package statement

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/ginjaninja78/theatre-statements/internal/aggregator"
	"github.com/ginjaninja78/theatre-statements/internal/pricing"
	"github.com/ginjaninja78/theatre-statements/internal/textwriter"
	"github.com/ginjaninja78/theatre-statements/internal/types"
	"github.com/ginjaninja78/theatre-statements/internal/xmlwriter"
	"github.com/google/uuid"
)

// Store persists a rendered statement and returns where it went.
type Store interface {
	Save(ctx context.Context, content, ext string) (string, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// errNoStore is wrapped in a PersistenceError when an XML statement is
// requested from a service built without a Store.
var errNoStore = errors.New("no statement store configured")

// Service produces statements.
type Service struct {
	aggregator *aggregator.Aggregator
	store      Store
	logger     Logger
}

// Option configures a Service.
type Option func(*Service)

// WithEngine prices performances with engine.
func WithEngine(engine *pricing.Engine) Option {
	return func(s *Service) { s.aggregator = aggregator.New(engine) }
}

// WithStore persists XML statements through store.
func WithStore(store Store) Option {
	return func(s *Service) { s.store = store }
}

// WithLogger sets the service logger.
func WithLogger(logger Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// New creates a Service. Without options it prices with the default line
// clamp, logs nothing and has no store.
func New(opts ...Option) *Service {
	s := &Service{
		aggregator: aggregator.New(nil),
		logger:     nopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProduceStatement renders the statement for invoice in format.
func (s *Service) ProduceStatement(ctx context.Context, invoice types.Invoice, plays types.Plays, format types.Format) (string, error) {
	if !format.Valid() {
		return "", types.NewUnsupportedFormatError(string(format))
	}

	id := uuid.New().String()
	s.logger.Debug("producing statement",
		"statement_id", id,
		"customer", invoice.Customer,
		"format", string(format),
		"performances", len(invoice.Performances),
	)

	result, err := s.aggregator.Aggregate(invoice, plays)
	if err != nil {
		s.logger.Error("statement aggregation failed", "statement_id", id, "error", err.Error())
		return "", err
	}

	var rendered string
	switch format {
	case types.FormatTXT:
		rendered = textwriter.Render(invoice.Customer, result.Details, result.Totals)
	case types.FormatXML:
		rendered, err = xmlwriter.Render(invoice.Customer, result.Details, result.Totals)
		if err != nil {
			return "", errors.Wrap(err, "rendering XML statement")
		}
		path, err := s.persist(ctx, rendered, format)
		if err != nil {
			s.logger.Error("statement persistence failed", "statement_id", id, "path", path, "error", err.Error())
			return "", err
		}
		s.logger.Info("statement persisted", "statement_id", id, "path", path)
	}

	s.logger.Info("statement produced",
		"statement_id", id,
		"customer", invoice.Customer,
		"format", string(format),
		"items", len(result.Details),
		"total_amount", result.Totals.TotalAmount.String(),
		"total_credits", result.Totals.TotalCredits,
	)

	return rendered, nil
}

func (s *Service) persist(ctx context.Context, content string, format types.Format) (string, error) {
	if s.store == nil {
		return "", &types.PersistenceError{Err: errNoStore}
	}
	path, err := s.store.Save(ctx, content, format.Extension())
	if err != nil {
		return path, &types.PersistenceError{Path: path, Err: err}
	}
	return path, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
