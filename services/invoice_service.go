// services/invoice_service.go
package services

import (
	"errors"
	"time"

	"invoice-manager-backend/models"
	"invoice-manager-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvoiceService implements the business-rule layer over a dumb store:
// statuses and balances are derived here, never in SQL.
type InvoiceService struct {
	db    *gorm.DB
	clock Clock
}

func NewInvoiceService(db *gorm.DB, clock Clock) *InvoiceService {
	return &InvoiceService{db: db, clock: clock}
}

// Search filters consistent invoices by optional exact number and optional
// case-insensitive status values, ordered by invoice date descending.
func (s *InvoiceService) Search(invoiceNumber *int, invoiceStatusRaw, paymentStatusRaw string) ([]InvoiceListItem, error) {
	invoiceStatus, err := ParseInvoiceStatus(invoiceStatusRaw)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := ParsePaymentStatus(paymentStatusRaw)
	if err != nil {
		return nil, err
	}

	query := s.db.Preload("CreditNotes").
		Where("is_consistent = ?", true)

	if invoiceNumber != nil {
		query = query.Where("invoice_number = ?", *invoiceNumber)
	}

	var invoices []models.Invoice
	if err := query.Order("invoice_date DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}

	today := s.clock.Today()

	rows := make([]InvoiceListItem, 0, len(invoices))
	for _, inv := range invoices {
		row := buildSearchRow(inv, today)
		if matchesStatusFilters(row, invoiceStatus, paymentStatus) {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// GetByNumber returns the full detail of a consistent invoice.
func (s *InvoiceService) GetByNumber(invoiceNumber int) (*InvoiceDetail, error) {
	var invoice models.Invoice
	err := s.db.Preload("LineItems").
		Preload("CreditNotes", func(db *gorm.DB) *gorm.DB {
			return db.Order("credit_note_number ASC")
		}).
		Where("invoice_number = ? AND is_consistent = ?", invoiceNumber, true).
		First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	detail := buildInvoiceDetail(invoice, s.clock.Today())
	return &detail, nil
}

// IssueCreditNote appends a credit note to a consistent invoice. The invoice
// row is locked for the duration of the transaction so concurrent issuances
// against the same invoice serialize and cannot overdraw the balance.
func (s *InvoiceService) IssueCreditNote(invoiceNumber int, amount int64) (*CreditNoteRow, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var invoice models.Invoice
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("invoice_number = ? AND is_consistent = ?", invoiceNumber, true).
		First(&invoice).Error
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	var notes []models.CreditNote
	if err := tx.Where("invoice_number = ?", invoiceNumber).Find(&notes).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	remaining := RemainingBalance(invoice.TotalAmount, notes)
	if err := ValidateIssuance(amount, remaining); err != nil {
		tx.Rollback()
		return nil, err
	}

	note := models.CreditNote{
		ID:               uuid.New(),
		InvoiceNumber:    invoiceNumber,
		CreditNoteNumber: NextCreditNoteNumber(notes),
		CreditNoteDate:   utils.BeginningOfDay(s.clock.Today()),
		Amount:           amount,
	}

	if err := tx.Create(&note).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &CreditNoteRow{
		CreditNoteNumber: note.CreditNoteNumber,
		CreditNoteDate:   utils.FormatDate(note.CreditNoteDate),
		Amount:           note.Amount,
	}, nil
}

func buildSearchRow(invoice models.Invoice, today time.Time) InvoiceListItem {
	creditTotal := CreditNoteTotal(invoice.CreditNotes)

	return InvoiceListItem{
		InvoiceNumber:    invoice.InvoiceNumber,
		InvoiceDate:      utils.FormatDate(invoice.InvoiceDate),
		TotalAmount:      invoice.TotalAmount,
		PaymentDueDate:   utils.FormatDate(invoice.PaymentDueDate),
		InvoiceStatus:    InvoiceStatusOf(invoice.TotalAmount, creditTotal),
		PaymentStatus:    PaymentStatusOf(invoice.PaymentDate, invoice.PaymentDueDate, today),
		CustomerName:     invoice.CustomerName,
		CustomerRun:      invoice.CustomerRun,
		CustomerEmail:    invoice.CustomerEmail,
		CreditNoteTotal:  creditTotal,
		RemainingBalance: invoice.TotalAmount - creditTotal,
	}
}

func matchesStatusFilters(row InvoiceListItem, invoiceStatus, paymentStatus string) bool {
	if invoiceStatus != "" && row.InvoiceStatus != invoiceStatus {
		return false
	}
	if paymentStatus != "" && row.PaymentStatus != paymentStatus {
		return false
	}
	return true
}

func buildInvoiceDetail(invoice models.Invoice, today time.Time) InvoiceDetail {
	creditTotal := CreditNoteTotal(invoice.CreditNotes)

	lineItems := make([]LineItemRow, 0, len(invoice.LineItems))
	for _, item := range invoice.LineItems {
		lineItems = append(lineItems, LineItemRow{
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}

	creditNotes := make([]CreditNoteRow, 0, len(invoice.CreditNotes))
	for _, cn := range invoice.CreditNotes {
		creditNotes = append(creditNotes, CreditNoteRow{
			CreditNoteNumber: cn.CreditNoteNumber,
			CreditNoteDate:   utils.FormatDate(cn.CreditNoteDate),
			Amount:           cn.Amount,
		})
	}

	var paymentDate *string
	if invoice.PaymentDate != nil {
		formatted := utils.FormatDate(*invoice.PaymentDate)
		paymentDate = &formatted
	}

	return InvoiceDetail{
		InvoiceNumber:       invoice.InvoiceNumber,
		InvoiceDate:         utils.FormatDate(invoice.InvoiceDate),
		TotalAmount:         invoice.TotalAmount,
		PaymentDueDate:      utils.FormatDate(invoice.PaymentDueDate),
		DaysToDue:           invoice.DaysToDue,
		InvoiceStatus:       InvoiceStatusOf(invoice.TotalAmount, creditTotal),
		PaymentStatus:       PaymentStatusOf(invoice.PaymentDate, invoice.PaymentDueDate, today),
		PaymentMethod:       invoice.PaymentMethod,
		PaymentDate:         paymentDate,
		CustomerName:        invoice.CustomerName,
		CustomerRun:         invoice.CustomerRun,
		CustomerEmail:       invoice.CustomerEmail,
		IsConsistent:        invoice.IsConsistent,
		ProductsSubtotalSum: invoice.ProductsSubtotalSum,
		DiscrepancyAmount:   invoice.DiscrepancyAmount,
		CreditNoteTotal:     creditTotal,
		RemainingBalance:    invoice.TotalAmount - creditTotal,
		LineItems:           lineItems,
		CreditNotes:         creditNotes,
	}
}
