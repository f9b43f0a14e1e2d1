package services

import "invoice-manager-backend/models"

// ConsistencyResult holds the fields persisted on the invoice at import time.
type ConsistencyResult struct {
	ProductsSubtotalSum int64
	DiscrepancyAmount   int64
	IsConsistent        bool
}

// CheckConsistency recomputes the invoice-level product total from the
// supplied line-item subtotals. It never re-verifies unit price times
// quantity against a subtotal.
func CheckConsistency(declaredTotal int64, lineItems []models.InvoiceLineItem) ConsistencyResult {
	var sum int64
	for _, item := range lineItems {
		sum += item.Subtotal
	}

	discrepancy := declaredTotal - sum

	return ConsistencyResult{
		ProductsSubtotalSum: sum,
		DiscrepancyAmount:   discrepancy,
		IsConsistent:        discrepancy == 0,
	}
}
