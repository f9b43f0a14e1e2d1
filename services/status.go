package services

import (
	"fmt"
	"strings"
	"time"

	"invoice-manager-backend/models"
	"invoice-manager-backend/utils"
)

const (
	InvoiceStatusIssued    = "Issued"
	InvoiceStatusPartial   = "Partial"
	InvoiceStatusCancelled = "Cancelled"
)

const (
	PaymentStatusPending = "Pending"
	PaymentStatusOverdue = "Overdue"
	PaymentStatusPaid    = "Paid"
)

// InvoiceStatusOf derives the invoice status from the declared total and the
// credit-note total. The Cancelled branch is checked first so that a
// zero-total invoice with zero credits resolves to Cancelled.
func InvoiceStatusOf(totalAmount, creditTotal int64) string {
	switch {
	case creditTotal >= totalAmount:
		return InvoiceStatusCancelled
	case creditTotal <= 0:
		return InvoiceStatusIssued
	default:
		return InvoiceStatusPartial
	}
}

// PaymentStatusOf derives the payment status. A recorded payment date means
// Paid no matter how it compares to the due date. The due-date comparison is
// a strict calendar-date ordering.
func PaymentStatusOf(paymentDate *time.Time, dueDate, today time.Time) string {
	if paymentDate != nil {
		return PaymentStatusPaid
	}
	if utils.DateAfter(today, dueDate) {
		return PaymentStatusOverdue
	}
	return PaymentStatusPending
}

// CreditNoteTotal sums the amounts of an invoice's credit notes.
func CreditNoteTotal(notes []models.CreditNote) int64 {
	var total int64
	for _, cn := range notes {
		total += cn.Amount
	}
	return total
}

// ParseInvoiceStatus normalizes a filter value against the invoice status
// vocabulary, case-insensitively. An empty value means no filter.
func ParseInvoiceStatus(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return "", nil
	case "issued":
		return InvoiceStatusIssued, nil
	case "partial":
		return InvoiceStatusPartial, nil
	case "cancelled":
		return InvoiceStatusCancelled, nil
	default:
		return "", fmt.Errorf("%w: invalid invoiceStatus %q, allowed: Issued, Partial, Cancelled", ErrInvalidStatus, raw)
	}
}

// ParsePaymentStatus is the payment-status counterpart of ParseInvoiceStatus.
func ParsePaymentStatus(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return "", nil
	case "pending":
		return PaymentStatusPending, nil
	case "overdue":
		return PaymentStatusOverdue, nil
	case "paid":
		return PaymentStatusPaid, nil
	default:
		return "", fmt.Errorf("%w: invalid paymentStatus %q, allowed: Pending, Overdue, Paid", ErrInvalidStatus, raw)
	}
}
