package services

import "invoice-manager-backend/models"

// FirstCreditNoteNumber is the starting point of the per-invoice sequence.
const FirstCreditNoteNumber = 10000

// NextCreditNoteNumber allocates the next number in an invoice's sequence:
// max(existing)+1, or 10000 for a virgin invoice.
func NextCreditNoteNumber(notes []models.CreditNote) int {
	next := FirstCreditNoteNumber
	for _, cn := range notes {
		if cn.CreditNoteNumber >= next {
			next = cn.CreditNoteNumber + 1
		}
	}
	return next
}

// RemainingBalance is the declared total minus the credit-note total. It must
// never go negative for any invoice.
func RemainingBalance(totalAmount int64, notes []models.CreditNote) int64 {
	return totalAmount - CreditNoteTotal(notes)
}

// ValidateIssuance enforces the running-balance invariant for a candidate
// credit note amount.
func ValidateIssuance(amount, remaining int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if remaining <= 0 {
		return ErrNoRemainingBalance
	}
	if amount > remaining {
		return ErrAmountExceedsBalance
	}
	return nil
}
