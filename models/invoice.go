package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice is keyed by its externally assigned invoice number. Amounts are
// whole currency units. The consistency fields are computed once at import
// time and persisted so reports and search filtering stay cheap.
type Invoice struct {
	InvoiceNumber int `gorm:"primaryKey" json:"invoiceNumber"`

	InvoiceDate    time.Time `gorm:"type:date;index;not null" json:"invoiceDate"`
	TotalAmount    int64     `gorm:"not null" json:"totalAmount"`
	DaysToDue      int       `gorm:"not null" json:"daysToDue"`
	PaymentDueDate time.Time `gorm:"type:date;not null" json:"paymentDueDate"`

	ProductsSubtotalSum int64 `json:"productsSubtotalSum"`
	DiscrepancyAmount   int64 `json:"discrepancyAmount"`
	IsConsistent        bool  `gorm:"index" json:"isConsistent"`

	// Payment: a recorded payment date means Paid.
	PaymentMethod *string    `json:"paymentMethod"`
	PaymentDate   *time.Time `gorm:"type:date" json:"paymentDate"`

	CustomerRun   string `json:"customerRun"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`

	LineItems   []InvoiceLineItem `gorm:"foreignKey:InvoiceNumber;constraint:OnDelete:CASCADE" json:"lineItems,omitempty"`
	CreditNotes []CreditNote      `gorm:"foreignKey:InvoiceNumber;constraint:OnDelete:CASCADE" json:"creditNotes,omitempty"`
}

// InvoiceLineItem belongs to exactly one invoice. Subtotal is supplied by the
// data source, not derived from unit price and quantity.
type InvoiceLineItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"-"`
	InvoiceNumber int       `gorm:"index;not null" json:"invoiceNumber"`

	ProductName string `gorm:"not null" json:"productName"`
	UnitPrice   int64  `gorm:"not null" json:"unitPrice"`
	Quantity    int    `gorm:"not null" json:"quantity"`
	Subtotal    int64  `gorm:"not null" json:"subtotal"`
}

// CreditNote numbers are unique per invoice, not globally.
type CreditNote struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"-"`
	InvoiceNumber int       `gorm:"not null;uniqueIndex:idx_credit_notes_invoice_note_number" json:"invoiceNumber"`

	CreditNoteNumber int       `gorm:"not null;uniqueIndex:idx_credit_notes_invoice_note_number" json:"creditNoteNumber"`
	CreditNoteDate   time.Time `gorm:"type:date;not null" json:"creditNoteDate"`
	Amount           int64     `gorm:"not null" json:"amount"`
}
