// services/report_service.go
package services

import (
	"sort"
	"time"

	"invoice-manager-backend/models"
	"invoice-manager-backend/utils"

	"github.com/shopspring/decimal"
)

// overdueNoActionThresholdDays: an invoice only shows up in the report once it
// is strictly more than this many days past due.
const overdueNoActionThresholdDays = 30

// OverdueNoAction lists consistent, unpaid invoices with zero credit notes
// that are more than 30 days past due, ordered by days overdue descending.
func (s *InvoiceService) OverdueNoAction() ([]OverdueNoActionRow, error) {
	var invoices []models.Invoice
	err := s.db.Preload("CreditNotes").
		Where("is_consistent = ? AND payment_date IS NULL", true).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}

	return overdueNoActionRows(invoices, s.clock.Today()), nil
}

// PaymentStatusSummary reports count and percentage per payment-status bucket
// over consistent invoices.
func (s *InvoiceService) PaymentStatusSummary() (*PaymentStatusSummary, error) {
	var invoices []models.Invoice
	if err := s.db.Where("is_consistent = ?", true).Find(&invoices).Error; err != nil {
		return nil, err
	}

	summary := summarizePaymentStatuses(invoices, s.clock.Today())
	return &summary, nil
}

// Inconsistent lists invoices whose declared total does not match the sum of
// their line-item subtotals, ordered by discrepancy descending.
func (s *InvoiceService) Inconsistent() ([]InconsistentInvoiceRow, error) {
	var invoices []models.Invoice
	err := s.db.Where("is_consistent = ?", false).
		Order("discrepancy_amount DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}

	rows := make([]InconsistentInvoiceRow, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, InconsistentInvoiceRow{
			InvoiceNumber:         inv.InvoiceNumber,
			InvoiceDate:           utils.FormatDate(inv.InvoiceDate),
			DeclaredTotalAmount:   inv.TotalAmount,
			ComputedProductsTotal: inv.ProductsSubtotalSum,
			DiscrepancyAmount:     inv.DiscrepancyAmount,
			CustomerName:          inv.CustomerName,
			CustomerRun:           inv.CustomerRun,
			CustomerEmail:         inv.CustomerEmail,
		})
	}

	return rows, nil
}

func overdueNoActionRows(invoices []models.Invoice, today time.Time) []OverdueNoActionRow {
	rows := make([]OverdueNoActionRow, 0)

	for _, inv := range invoices {
		if inv.PaymentDate != nil || len(inv.CreditNotes) > 0 {
			continue
		}

		daysOverdue := utils.DaysBetween(inv.PaymentDueDate, today)
		if daysOverdue <= overdueNoActionThresholdDays {
			continue
		}

		rows = append(rows, OverdueNoActionRow{
			InvoiceNumber:  inv.InvoiceNumber,
			InvoiceDate:    utils.FormatDate(inv.InvoiceDate),
			TotalAmount:    inv.TotalAmount,
			PaymentDueDate: utils.FormatDate(inv.PaymentDueDate),
			DaysOverdue:    daysOverdue,
			CustomerName:   inv.CustomerName,
			CustomerRun:    inv.CustomerRun,
			CustomerEmail:  inv.CustomerEmail,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DaysOverdue > rows[j].DaysOverdue
	})

	return rows
}

func summarizePaymentStatuses(invoices []models.Invoice, today time.Time) PaymentStatusSummary {
	counts := make(map[string]int)
	for _, inv := range invoices {
		counts[PaymentStatusOf(inv.PaymentDate, inv.PaymentDueDate, today)]++
	}

	total := len(invoices)
	rows := make([]PaymentStatusSummaryRow, 0, len(counts))

	// Alphabetical bucket order keeps the output stable.
	for _, status := range []string{PaymentStatusOverdue, PaymentStatusPaid, PaymentStatusPending} {
		count, ok := counts[status]
		if !ok {
			continue
		}

		percentage := decimal.NewFromInt(int64(count) * 100).
			Div(decimal.NewFromInt(int64(total))).
			Round(2)

		rows = append(rows, PaymentStatusSummaryRow{
			PaymentStatus: status,
			Count:         count,
			Percentage:    percentage.InexactFloat64(),
		})
	}

	return PaymentStatusSummary{TotalInvoices: total, Rows: rows}
}
