package services

import (
	"testing"
	"time"

	"invoice-manager-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchRow(t *testing.T) {
	today := date(2025, time.June, 1)

	invoice := models.Invoice{
		InvoiceNumber:  1491,
		InvoiceDate:    date(2025, time.April, 1),
		TotalAmount:    10000,
		PaymentDueDate: today.AddDate(0, 0, -40),
		IsConsistent:   true,
		CustomerName:   "ACME Ltda",
		CustomerRun:    "76.123.456-7",
		CustomerEmail:  "billing@acme.example",
	}

	row := buildSearchRow(invoice, today)

	assert.Equal(t, 1491, row.InvoiceNumber)
	assert.Equal(t, "2025-04-01", row.InvoiceDate)
	assert.Equal(t, InvoiceStatusIssued, row.InvoiceStatus)
	assert.Equal(t, PaymentStatusOverdue, row.PaymentStatus)
	assert.Equal(t, int64(0), row.CreditNoteTotal)
	assert.Equal(t, int64(10000), row.RemainingBalance)

	// Fully credited: cancelled, zero remaining.
	invoice.CreditNotes = []models.CreditNote{{CreditNoteNumber: 10000, Amount: 10000}}
	row = buildSearchRow(invoice, today)

	assert.Equal(t, InvoiceStatusCancelled, row.InvoiceStatus)
	assert.Equal(t, int64(10000), row.CreditNoteTotal)
	assert.Equal(t, int64(0), row.RemainingBalance)
}

func TestMatchesStatusFilters(t *testing.T) {
	row := InvoiceListItem{InvoiceStatus: InvoiceStatusPartial, PaymentStatus: PaymentStatusPending}

	assert.True(t, matchesStatusFilters(row, "", ""))
	assert.True(t, matchesStatusFilters(row, InvoiceStatusPartial, ""))
	assert.True(t, matchesStatusFilters(row, "", PaymentStatusPending))
	assert.True(t, matchesStatusFilters(row, InvoiceStatusPartial, PaymentStatusPending))

	assert.False(t, matchesStatusFilters(row, InvoiceStatusIssued, ""))
	assert.False(t, matchesStatusFilters(row, "", PaymentStatusPaid))
	assert.False(t, matchesStatusFilters(row, InvoiceStatusPartial, PaymentStatusOverdue))
}

func TestBuildInvoiceDetail(t *testing.T) {
	today := date(2025, time.June, 1)
	method := "transfer"
	paid := date(2025, time.May, 20)

	invoice := models.Invoice{
		InvoiceNumber:       42,
		InvoiceDate:         date(2025, time.May, 1),
		TotalAmount:         5000,
		DaysToDue:           30,
		PaymentDueDate:      date(2025, time.May, 31),
		ProductsSubtotalSum: 5000,
		IsConsistent:        true,
		PaymentMethod:       &method,
		PaymentDate:         &paid,
		LineItems: []models.InvoiceLineItem{
			{ProductName: "Widget", UnitPrice: 2500, Quantity: 2, Subtotal: 5000},
		},
		CreditNotes: []models.CreditNote{
			{CreditNoteNumber: 10000, CreditNoteDate: date(2025, time.May, 25), Amount: 1000},
		},
	}

	detail := buildInvoiceDetail(invoice, today)

	assert.Equal(t, 42, detail.InvoiceNumber)
	assert.Equal(t, InvoiceStatusPartial, detail.InvoiceStatus)
	assert.Equal(t, PaymentStatusPaid, detail.PaymentStatus)
	assert.Equal(t, int64(1000), detail.CreditNoteTotal)
	assert.Equal(t, int64(4000), detail.RemainingBalance)

	if assert.NotNil(t, detail.PaymentDate) {
		assert.Equal(t, "2025-05-20", *detail.PaymentDate)
	}

	if assert.Len(t, detail.LineItems, 1) {
		assert.Equal(t, "Widget", detail.LineItems[0].ProductName)
		assert.Equal(t, int64(5000), detail.LineItems[0].Subtotal)
	}

	if assert.Len(t, detail.CreditNotes, 1) {
		assert.Equal(t, 10000, detail.CreditNotes[0].CreditNoteNumber)
		assert.Equal(t, "2025-05-25", detail.CreditNotes[0].CreditNoteDate)
	}
}
