package services

import "errors"

var (
	// ErrInvalidStatus marks a search filter value outside the fixed
	// status vocabularies.
	ErrInvalidStatus = errors.New("invalid status value")

	// ErrInvalidAmount marks a non-positive credit note amount.
	ErrInvalidAmount = errors.New("amount must be greater than 0")

	// ErrInvoiceNotFound covers both unknown invoice numbers and invoices
	// excluded for being inconsistent.
	ErrInvoiceNotFound = errors.New("invoice not found or is inconsistent")

	ErrNoRemainingBalance   = errors.New("invoice has no remaining balance")
	ErrAmountExceedsBalance = errors.New("credit note amount cannot exceed remaining balance")
)
