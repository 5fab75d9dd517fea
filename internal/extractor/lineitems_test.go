package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLineItems(t *testing.T) {
	text := `Invoice Number: INV-100
Description    Qty    Price    Amount
Widget         2      50.00    100.00
Gadget         1      25.50    25.50
Subtotal: 125.50
`

	items := extractLineItems(text)
	require.Len(t, items, 2)

	assert.Equal(t, "Widget", items[0].Description)
	require.NotNil(t, items[0].Quantity)
	assert.InDelta(t, 2, *items[0].Quantity, 1e-9)
	require.NotNil(t, items[0].UnitPrice)
	assert.InDelta(t, 50, *items[0].UnitPrice, 1e-9)
	require.NotNil(t, items[0].LineTotal)
	assert.InDelta(t, 100, *items[0].LineTotal, 1e-9)

	assert.Equal(t, "Gadget", items[1].Description)
	assert.InDelta(t, 25.5, *items[1].LineTotal, 1e-9)
}

func TestExtractLineItems_NoHeader(t *testing.T) {
	assert.Nil(t, extractLineItems("just some invoice text\nwith no table at all"))
}

func TestExtractLineItems_StopsAtTotalRow(t *testing.T) {
	text := `Description  Quantity  Rate  Amount
Consulting   10        80    800.00
Total: 800.00
Footer note 42
`
	items := extractLineItems(text)
	require.Len(t, items, 1)
	assert.Equal(t, "Consulting", items[0].Description)
}

func TestExtractLineItems_SkipsUnparseableRows(t *testing.T) {
	text := `Description  Qty  Price  Amount
Widget       2    50.00  100.00
continued on next page
Total: 100.00
`
	items := extractLineItems(text)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Description)
}

func TestParseLineItemRow(t *testing.T) {
	t.Run("quantity_then_price", func(t *testing.T) {
		item, ok := parseLineItemRow("Blue Widget 3 19.99 59.97")
		require.True(t, ok)
		assert.Equal(t, "Blue Widget", item.Description)
		assert.InDelta(t, 3, *item.Quantity, 1e-9)
		assert.InDelta(t, 19.99, *item.UnitPrice, 1e-9)
		assert.InDelta(t, 59.97, *item.LineTotal, 1e-9)
	})

	t.Run("amount_only", func(t *testing.T) {
		item, ok := parseLineItemRow("Delivery charge 25.00")
		require.True(t, ok)
		assert.Equal(t, "Delivery charge", item.Description)
		assert.Nil(t, item.Quantity)
		assert.Nil(t, item.UnitPrice)
		assert.InDelta(t, 25, *item.LineTotal, 1e-9)
	})

	t.Run("default_description", func(t *testing.T) {
		item, ok := parseLineItemRow("1 10.00 10.00")
		require.True(t, ok)
		assert.Equal(t, "Item", item.Description)
	})

	t.Run("non_numeric_trailing_token", func(t *testing.T) {
		_, ok := parseLineItemRow("continued on next page")
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := parseLineItemRow("   ")
		assert.False(t, ok)
	})
}
