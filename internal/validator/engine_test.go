package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoiceqc/internal/domain"
	"invoiceqc/internal/validator"
)

func TestEngine_ValidInvoice(t *testing.T) {
	engine := validator.NewDefaultEngine()

	summary, results := engine.ValidateBatch([]domain.Invoice{validInvoice()})

	assert.Equal(t, domain.Summary{Total: 1, Valid: 1, Invalid: 0}, summary)
	require.Len(t, results, 1)
	assert.Equal(t, "INV-001", results[0].InvoiceID)
	assert.True(t, results[0].IsValid)
	assert.Empty(t, results[0].Errors)
	assert.NotNil(t, results[0].Errors)
}

func TestEngine_EmptyBatch(t *testing.T) {
	engine := validator.NewDefaultEngine()

	summary, results := engine.ValidateBatch(nil)

	assert.Equal(t, domain.Summary{}, summary)
	assert.Empty(t, results)
}

func TestEngine_EmptyInvoice_CodesInRuleOrder(t *testing.T) {
	engine := validator.NewDefaultEngine()

	summary, results := engine.ValidateBatch([]domain.Invoice{{}})

	assert.Equal(t, domain.Summary{Total: 1, Valid: 0, Invalid: 1}, summary)
	require.Len(t, results, 1)
	assert.False(t, results[0].IsValid)
	assert.Equal(t, []string{
		"missing:invoice_number",
		"missing:invoice_date",
		"missing:seller_name",
		"missing:buyer_name",
		"missing:currency",
		"missing:gross_total",
	}, results[0].Errors)
}

func TestEngine_ResultsAlignWithBatchOrder(t *testing.T) {
	engine := validator.NewDefaultEngine()

	first := validInvoice()
	second := validInvoice()
	second.InvoiceNumber = "INV-002"
	third := validInvoice()
	third.InvoiceNumber = ""
	third.SourceFile = "third.txt"

	_, results := engine.ValidateBatch([]domain.Invoice{first, second, third})
	require.Len(t, results, 3)
	assert.Equal(t, "INV-001", results[0].InvoiceID)
	assert.Equal(t, "INV-002", results[1].InvoiceID)
	assert.Equal(t, "third.txt", results[2].InvoiceID)
}

func TestEngine_InvoiceIDPositionalFallback(t *testing.T) {
	engine := validator.NewDefaultEngine()

	_, results := engine.ValidateBatch([]domain.Invoice{{}, {}})
	require.Len(t, results, 2)
	assert.Equal(t, "invoice[0]", results[0].InvoiceID)
	assert.Equal(t, "invoice[1]", results[1].InvoiceID)
}

func TestEngine_Deterministic(t *testing.T) {
	engine := validator.NewDefaultEngine()

	batch := []domain.Invoice{validInvoice(), {}, validInvoice()}
	summary1, results1 := engine.ValidateBatch(batch)
	summary2, results2 := engine.ValidateBatch(batch)

	assert.Equal(t, summary1, summary2)
	assert.Equal(t, results1, results2)
}

func TestEngine_NegativeTotalsStayValid(t *testing.T) {
	engine := validator.NewDefaultEngine()

	// A consistent credit note: negative amounts that still add up.
	inv := validInvoice()
	inv.NetTotal = domain.FloatPtr(-100)
	inv.TaxAmount = domain.FloatPtr(-19)
	inv.GrossTotal = domain.FloatPtr(-119)
	inv.LineItems = []domain.LineItem{{Description: "Refund", LineTotal: domain.FloatPtr(-100)}}

	summary, results := engine.ValidateBatch([]domain.Invoice{inv})

	assert.Equal(t, domain.Summary{Total: 1, Valid: 1, Invalid: 0}, summary)
	require.Len(t, results, 1)
	assert.True(t, results[0].IsValid)
	assert.Equal(t, []string{
		"anomaly:negative_net_total",
		"anomaly:negative_tax_amount",
		"anomaly:negative_gross_total",
	}, results[0].Errors)
}

func TestEngine_DuplicatesStayValid(t *testing.T) {
	engine := validator.NewDefaultEngine()

	summary, results := engine.ValidateBatch([]domain.Invoice{validInvoice(), validInvoice()})

	assert.Equal(t, domain.Summary{Total: 2, Valid: 2, Invalid: 0}, summary)
	for i := range results {
		assert.True(t, results[i].IsValid)
		assert.Equal(t, []string{"anomaly:duplicate_invoice"}, results[i].Errors)
	}
}

func TestEngine_DisqualifyingAndAdvisoryMix(t *testing.T) {
	engine := validator.NewDefaultEngine()

	inv := validInvoice()
	inv.BuyerName = ""
	inv.GrossTotal = domain.FloatPtr(-119)
	inv.NetTotal = domain.FloatPtr(-100)
	inv.TaxAmount = domain.FloatPtr(-19)
	inv.LineItems = nil

	summary, results := engine.ValidateBatch([]domain.Invoice{inv})

	assert.Equal(t, domain.Summary{Total: 1, Valid: 0, Invalid: 1}, summary)
	require.Len(t, results, 1)
	assert.False(t, results[0].IsValid)
	assert.Contains(t, results[0].Errors, "missing:buyer_name")
	assert.Contains(t, results[0].Errors, "anomaly:negative_gross_total")
}

func TestEngine_BatchMembershipChangesDuplicateVerdict(t *testing.T) {
	engine := validator.NewDefaultEngine()

	_, alone := engine.ValidateBatch([]domain.Invoice{validInvoice()})
	assert.Empty(t, alone[0].Errors)

	_, together := engine.ValidateBatch([]domain.Invoice{validInvoice(), validInvoice()})
	assert.Equal(t, []string{"anomaly:duplicate_invoice"}, together[0].Errors)
}

func TestEngine_SummaryAddsUp(t *testing.T) {
	engine := validator.NewDefaultEngine()

	batch := []domain.Invoice{validInvoice(), {}, {}, validInvoice()}
	summary, results := engine.ValidateBatch(batch)

	assert.Equal(t, len(batch), summary.Total)
	assert.Equal(t, summary.Total, summary.Valid+summary.Invalid)

	valid := 0
	for i := range results {
		if results[i].IsValid {
			valid++
		}
	}
	assert.Equal(t, summary.Valid, valid)
}
