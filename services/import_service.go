// services/import_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"invoice-manager-backend/config"
	"invoice-manager-backend/models"
	"invoice-manager-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ImportService ingests whole-invoice batches from a JSON file. A batch is
// applied in a single transaction: duplicate invoice numbers or malformed
// dates abort the whole run with nothing persisted.
type ImportService struct {
	db *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{db: db}
}

type importRoot struct {
	Invoices []importInvoice `json:"invoices"`
}

type importInvoice struct {
	InvoiceNumber  int                `json:"invoice_number"`
	InvoiceDate    string             `json:"invoice_date"`
	TotalAmount    int64              `json:"total_amount"`
	DaysToDue      int                `json:"days_to_due"`
	PaymentDueDate string             `json:"payment_due_date"`
	InvoiceDetail  []importLineItem   `json:"invoice_detail"`
	InvoicePayment *importPayment     `json:"invoice_payment"`
	CreditNotes    []importCreditNote `json:"invoice_credit_note"`
	Customer       *importCustomer    `json:"customer"`
}

type importLineItem struct {
	ProductName string `json:"product_name"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Subtotal    int64  `json:"subtotal"`
}

type importPayment struct {
	PaymentMethod *string `json:"payment_method"`
	PaymentDate   *string `json:"payment_date"`
}

type importCreditNote struct {
	CreditNoteNumber int    `json:"credit_note_number"`
	CreditNoteDate   string `json:"credit_note_date"`
	CreditNoteAmount int64  `json:"credit_note_amount"`
}

type importCustomer struct {
	CustomerRun   string `json:"customer_run"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

// RunFromFile imports the batch at path. Errors are fatal for the run; no
// partial state is left behind.
func (s *ImportService) RunFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import file %s: %w", path, err)
	}

	invoices, err := parseBatch(data)
	if err != nil {
		return fmt.Errorf("parse import file %s: %w", path, err)
	}

	if len(invoices) == 0 {
		config.Logger.WithField("path", path).Info("import file contains no invoices")
		return nil
	}

	inconsistent := 0
	for _, inv := range invoices {
		if !inv.IsConsistent {
			inconsistent++
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, inv := range invoices {
			if err := upsertInvoice(tx, inv); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("apply import batch: %w", err)
	}

	config.Logger.WithFields(logrus.Fields{
		"path":         path,
		"imported":     len(invoices),
		"inconsistent": inconsistent,
	}).Info("invoice import completed")

	return nil
}

// StartScheduler rescans the import file on the given cron spec.
func (s *ImportService) StartScheduler(spec, path string) error {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		if err := s.RunFromFile(path); err != nil {
			config.Logger.WithError(err).Error("scheduled invoice import failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid import cron spec %q: %w", spec, err)
	}

	c.Start()
	config.Logger.WithField("spec", spec).Info("import scheduler started")
	return nil
}

// parseBatch decodes and validates a raw batch, mapping it to invoice records
// with consistency fields computed. Duplicate invoice numbers fail the batch.
func parseBatch(data []byte) ([]models.Invoice, error) {
	var root importRoot
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(root.Invoices))
	invoices := make([]models.Invoice, 0, len(root.Invoices))

	for _, raw := range root.Invoices {
		if seen[raw.InvoiceNumber] {
			return nil, fmt.Errorf("duplicate invoice_number in batch: %d", raw.InvoiceNumber)
		}
		seen[raw.InvoiceNumber] = true

		invoice, err := mapImportInvoice(raw)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, invoice)
	}

	return invoices, nil
}

func mapImportInvoice(raw importInvoice) (models.Invoice, error) {
	invoiceDate, err := utils.ParseDate(raw.InvoiceDate)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("invoice %d: bad invoice_date %q", raw.InvoiceNumber, raw.InvoiceDate)
	}

	dueDate, err := utils.ParseDate(raw.PaymentDueDate)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("invoice %d: bad payment_due_date %q", raw.InvoiceNumber, raw.PaymentDueDate)
	}

	var paymentMethod *string
	var paymentDate *time.Time
	if raw.InvoicePayment != nil {
		paymentMethod = raw.InvoicePayment.PaymentMethod
		if raw.InvoicePayment.PaymentDate != nil && *raw.InvoicePayment.PaymentDate != "" {
			parsed, err := utils.ParseDate(*raw.InvoicePayment.PaymentDate)
			if err != nil {
				return models.Invoice{}, fmt.Errorf("invoice %d: bad payment_date %q", raw.InvoiceNumber, *raw.InvoicePayment.PaymentDate)
			}
			paymentDate = &parsed
		}
	}

	lineItems := make([]models.InvoiceLineItem, 0, len(raw.InvoiceDetail))
	for _, item := range raw.InvoiceDetail {
		lineItems = append(lineItems, models.InvoiceLineItem{
			ID:            uuid.New(),
			InvoiceNumber: raw.InvoiceNumber,
			ProductName:   item.ProductName,
			UnitPrice:     item.UnitPrice,
			Quantity:      item.Quantity,
			Subtotal:      item.Subtotal,
		})
	}

	creditNotes := make([]models.CreditNote, 0, len(raw.CreditNotes))
	for _, cn := range raw.CreditNotes {
		noteDate, err := utils.ParseDate(cn.CreditNoteDate)
		if err != nil {
			return models.Invoice{}, fmt.Errorf("invoice %d: bad credit_note_date %q", raw.InvoiceNumber, cn.CreditNoteDate)
		}

		creditNotes = append(creditNotes, models.CreditNote{
			ID:               uuid.New(),
			InvoiceNumber:    raw.InvoiceNumber,
			CreditNoteNumber: cn.CreditNoteNumber,
			CreditNoteDate:   noteDate,
			Amount:           cn.CreditNoteAmount,
		})
	}

	consistency := CheckConsistency(raw.TotalAmount, lineItems)

	invoice := models.Invoice{
		InvoiceNumber:       raw.InvoiceNumber,
		InvoiceDate:         invoiceDate,
		TotalAmount:         raw.TotalAmount,
		DaysToDue:           raw.DaysToDue,
		PaymentDueDate:      dueDate,
		ProductsSubtotalSum: consistency.ProductsSubtotalSum,
		DiscrepancyAmount:   consistency.DiscrepancyAmount,
		IsConsistent:        consistency.IsConsistent,
		PaymentMethod:       paymentMethod,
		PaymentDate:         paymentDate,
		LineItems:           lineItems,
		CreditNotes:         creditNotes,
	}

	if raw.Customer != nil {
		invoice.CustomerRun = raw.Customer.CustomerRun
		invoice.CustomerName = raw.Customer.CustomerName
		invoice.CustomerEmail = raw.Customer.CustomerEmail
	}

	return invoice, nil
}

// upsertInvoice applies one imported invoice: scalar fields updated, line
// items replaced wholesale, credit notes merged by number and never deleted.
func upsertInvoice(tx *gorm.DB, invoice models.Invoice) error {
	var existing models.Invoice
	err := tx.Preload("CreditNotes").
		Where("invoice_number = ?", invoice.InvoiceNumber).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&invoice).Error
	}
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"invoice_date":          invoice.InvoiceDate,
		"total_amount":          invoice.TotalAmount,
		"days_to_due":           invoice.DaysToDue,
		"payment_due_date":      invoice.PaymentDueDate,
		"products_subtotal_sum": invoice.ProductsSubtotalSum,
		"discrepancy_amount":    invoice.DiscrepancyAmount,
		"is_consistent":         invoice.IsConsistent,
		"payment_method":        invoice.PaymentMethod,
		"payment_date":          invoice.PaymentDate,
		"customer_run":          invoice.CustomerRun,
		"customer_name":         invoice.CustomerName,
		"customer_email":        invoice.CustomerEmail,
	}
	if err := tx.Model(&models.Invoice{}).
		Where("invoice_number = ?", invoice.InvoiceNumber).
		Updates(updates).Error; err != nil {
		return err
	}

	// The import is the source of truth for line items.
	if err := tx.Where("invoice_number = ?", invoice.InvoiceNumber).
		Delete(&models.InvoiceLineItem{}).Error; err != nil {
		return err
	}
	if len(invoice.LineItems) > 0 {
		if err := tx.Create(&invoice.LineItems).Error; err != nil {
			return err
		}
	}

	// Merge credit notes by number; user-issued notes stay untouched.
	existingByNumber := make(map[int]models.CreditNote, len(existing.CreditNotes))
	for _, cn := range existing.CreditNotes {
		existingByNumber[cn.CreditNoteNumber] = cn
	}

	for _, incoming := range invoice.CreditNotes {
		match, ok := existingByNumber[incoming.CreditNoteNumber]
		if !ok {
			if err := tx.Create(&incoming).Error; err != nil {
				return err
			}
			continue
		}

		err := tx.Model(&models.CreditNote{}).
			Where("id = ?", match.ID).
			Updates(map[string]interface{}{
				"credit_note_date": incoming.CreditNoteDate,
				"amount":           incoming.Amount,
			}).Error
		if err != nil {
			return err
		}
	}

	return nil
}
