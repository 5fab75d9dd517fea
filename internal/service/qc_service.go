// Package service orchestrates the QC pipeline: documents in, extracted
// invoices through the rule engine, report out.
package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"invoiceqc/internal/domain"
	"invoiceqc/internal/extractor"
	"invoiceqc/internal/loader"
	"invoiceqc/internal/logger"
	"invoiceqc/internal/validator"
)

// batchSchema is the structural contract for a transport-supplied batch:
// a JSON array of record-like objects. Anything else is a hard failure
// before any invoice-level rule runs.
const batchSchema = `{
	"type": "array",
	"items": {"type": "object"}
}`

// QCService wires the loader, the extraction engine and the validation
// engine together. All methods are safe for concurrent use.
type QCService struct {
	loader    *loader.DirLoader
	extractor *extractor.Engine
	validator *validator.Engine
	schema    *jsonschema.Schema
	log       zerolog.Logger
}

// NewQCService creates a QCService.
func NewQCService(l *loader.DirLoader, e *extractor.Engine, v *validator.Engine) *QCService {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("batch.json", strings.NewReader(batchSchema)); err != nil {
		panic(fmt.Sprintf("adding batch schema: %v", err))
	}
	schema := compiler.MustCompile("batch.json")

	return &QCService{
		loader:    l,
		extractor: e,
		validator: v,
		schema:    schema,
		log:       logger.WithComponent("service"),
	}
}

// ExtractDir loads every document in dir and extracts invoices from each,
// concatenated in loader order.
func (s *QCService) ExtractDir(dir string) ([]domain.Invoice, error) {
	docs, err := s.loader.Load(dir)
	if err != nil {
		return nil, err
	}
	return s.ExtractDocuments(docs), nil
}

// ExtractDocuments runs the extraction engine over loader-supplied
// documents. An unreadable document still contributes one placeholder
// invoice so validation reports it instead of the batch dropping it.
func (s *QCService) ExtractDocuments(docs []loader.Document) []domain.Invoice {
	invoices := make([]domain.Invoice, 0, len(docs))
	for _, doc := range docs {
		if doc.Err != nil {
			s.log.Warn().Str("document", doc.ID).Err(doc.Err).Msg("document unreadable, emitting placeholder")
			invoices = append(invoices, s.extractor.Placeholder(doc.ID))
			continue
		}
		extracted := s.extractor.ExtractDocument(doc.ID, doc.Text)
		if len(extracted) == 0 {
			s.log.Debug().Str("document", doc.ID).Msg("no recognizable invoice content")
		}
		invoices = append(invoices, extracted...)
	}
	return invoices
}

// ValidateBatch runs the rule pipeline over an in-memory batch.
func (s *QCService) ValidateBatch(batch []domain.Invoice) domain.Report {
	runID := uuid.New()
	summary, results := s.validator.ValidateBatch(batch)
	s.log.Info().
		Str("run_id", runID.String()).
		Int("total", summary.Total).
		Int("valid", summary.Valid).
		Int("invalid", summary.Invalid).
		Msg("batch validated")
	return domain.Report{Summary: summary, Results: results}
}

// DecodeBatch interprets raw JSON as an invoice batch. The shape is
// checked against the batch schema first; a payload that is not an array
// of objects fails the whole call with domain.ErrInvalidBatch and no
// partial results.
func (s *QCService) DecodeBatch(data []byte) ([]domain.Invoice, error) {
	var shape any
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBatch, err)
	}
	if err := s.schema.Validate(shape); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBatch, err)
	}

	var batch []domain.Invoice
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&batch); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBatch, err)
	}
	return batch, nil
}

// ValidateJSON decodes and validates a transport-supplied batch.
func (s *QCService) ValidateJSON(data []byte) (domain.Report, error) {
	batch, err := s.DecodeBatch(data)
	if err != nil {
		return domain.Report{}, err
	}
	return s.ValidateBatch(batch), nil
}

// FullRun extracts from a directory and validates the resulting batch.
func (s *QCService) FullRun(dir string) ([]domain.Invoice, domain.Report, error) {
	invoices, err := s.ExtractDir(dir)
	if err != nil {
		return nil, domain.Report{}, err
	}
	return invoices, s.ValidateBatch(invoices), nil
}
