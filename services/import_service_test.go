package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBatch(t *testing.T) {
	data := []byte(`{
		"invoices": [
			{
				"invoice_number": 1491,
				"invoice_date": "2025-04-01",
				"total_amount": 10000,
				"days_to_due": 30,
				"payment_due_date": "2025-05-01",
				"invoice_detail": [
					{"product_name": "Widget", "unit_price": 5000, "quantity": 2, "subtotal": 10000}
				],
				"invoice_payment": {"payment_method": "transfer", "payment_date": "2025-04-20"},
				"invoice_credit_note": [
					{"credit_note_number": 10000, "credit_note_date": "2025-04-25", "credit_note_amount": 1000}
				],
				"customer": {"customer_run": "76.123.456-7", "customer_name": "ACME Ltda", "customer_email": "billing@acme.example"}
			},
			{
				"invoice_number": 1492,
				"invoice_date": "2025-04-02",
				"total_amount": 5000,
				"days_to_due": 30,
				"payment_due_date": "2025-05-02",
				"invoice_detail": [
					{"product_name": "Gadget", "unit_price": 2400, "quantity": 2, "subtotal": 4800}
				]
			}
		]
	}`)

	invoices, err := parseBatch(data)
	require.NoError(t, err)
	require.Len(t, invoices, 2)

	first := invoices[0]
	assert.Equal(t, 1491, first.InvoiceNumber)
	assert.Equal(t, date(2025, time.April, 1), first.InvoiceDate)
	assert.Equal(t, int64(10000), first.TotalAmount)
	assert.True(t, first.IsConsistent)
	assert.Equal(t, int64(10000), first.ProductsSubtotalSum)
	assert.Equal(t, int64(0), first.DiscrepancyAmount)
	assert.Equal(t, "ACME Ltda", first.CustomerName)

	require.NotNil(t, first.PaymentMethod)
	assert.Equal(t, "transfer", *first.PaymentMethod)
	require.NotNil(t, first.PaymentDate)
	assert.Equal(t, date(2025, time.April, 20), *first.PaymentDate)

	require.Len(t, first.CreditNotes, 1)
	assert.Equal(t, 10000, first.CreditNotes[0].CreditNoteNumber)
	assert.Equal(t, int64(1000), first.CreditNotes[0].Amount)
	assert.Equal(t, 1491, first.CreditNotes[0].InvoiceNumber)

	// Second invoice: declared 5000 vs line items 4800.
	second := invoices[1]
	assert.False(t, second.IsConsistent)
	assert.Equal(t, int64(4800), second.ProductsSubtotalSum)
	assert.Equal(t, int64(200), second.DiscrepancyAmount)
	assert.Nil(t, second.PaymentDate)
	assert.Empty(t, second.CreditNotes)
}

func TestParseBatchRejectsDuplicateInvoiceNumbers(t *testing.T) {
	data := []byte(`{
		"invoices": [
			{"invoice_number": 7, "invoice_date": "2025-01-01", "total_amount": 100, "days_to_due": 10, "payment_due_date": "2025-01-11"},
			{"invoice_number": 7, "invoice_date": "2025-01-02", "total_amount": 200, "days_to_due": 10, "payment_due_date": "2025-01-12"}
		]
	}`)

	_, err := parseBatch(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate invoice_number")
}

func TestParseBatchRejectsMalformedDates(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			"bad invoice_date",
			`{"invoices": [{"invoice_number": 1, "invoice_date": "01/04/2025", "total_amount": 100, "days_to_due": 10, "payment_due_date": "2025-01-11"}]}`,
		},
		{
			"bad payment_due_date",
			`{"invoices": [{"invoice_number": 1, "invoice_date": "2025-04-01", "total_amount": 100, "days_to_due": 10, "payment_due_date": "not-a-date"}]}`,
		},
		{
			"bad payment_date",
			`{"invoices": [{"invoice_number": 1, "invoice_date": "2025-04-01", "total_amount": 100, "days_to_due": 10, "payment_due_date": "2025-01-11", "invoice_payment": {"payment_date": "soon"}}]}`,
		},
		{
			"bad credit_note_date",
			`{"invoices": [{"invoice_number": 1, "invoice_date": "2025-04-01", "total_amount": 100, "days_to_due": 10, "payment_due_date": "2025-01-11", "invoice_credit_note": [{"credit_note_number": 10000, "credit_note_date": "yesterday", "credit_note_amount": 10}]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseBatch([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParseBatchEmptyPaymentDateIsUnpaid(t *testing.T) {
	data := []byte(`{
		"invoices": [
			{"invoice_number": 1, "invoice_date": "2025-04-01", "total_amount": 0, "days_to_due": 10, "payment_due_date": "2025-01-11", "invoice_payment": {"payment_method": "transfer", "payment_date": ""}}
		]
	}`)

	invoices, err := parseBatch(data)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Nil(t, invoices[0].PaymentDate)
}

func TestParseBatchEmptyFile(t *testing.T) {
	invoices, err := parseBatch([]byte(`{"invoices": []}`))
	require.NoError(t, err)
	assert.Empty(t, invoices)
}
