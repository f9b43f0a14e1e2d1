package services

// Response shapes returned by the service layer. Dates are rendered as
// yyyy-mm-dd strings; amounts are whole currency units.

type InvoiceListItem struct {
	InvoiceNumber    int    `json:"invoiceNumber"`
	InvoiceDate      string `json:"invoiceDate"`
	TotalAmount      int64  `json:"totalAmount"`
	PaymentDueDate   string `json:"paymentDueDate"`
	InvoiceStatus    string `json:"invoiceStatus"`
	PaymentStatus    string `json:"paymentStatus"`
	CustomerName     string `json:"customerName"`
	CustomerRun      string `json:"customerRun"`
	CustomerEmail    string `json:"customerEmail"`
	CreditNoteTotal  int64  `json:"creditNoteTotal"`
	RemainingBalance int64  `json:"remainingBalance"`
}

type LineItemRow struct {
	ProductName string `json:"productName"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	Subtotal    int64  `json:"subtotal"`
}

type CreditNoteRow struct {
	CreditNoteNumber int    `json:"creditNoteNumber"`
	CreditNoteDate   string `json:"creditNoteDate"`
	Amount           int64  `json:"amount"`
}

type InvoiceDetail struct {
	InvoiceNumber       int             `json:"invoiceNumber"`
	InvoiceDate         string          `json:"invoiceDate"`
	TotalAmount         int64           `json:"totalAmount"`
	PaymentDueDate      string          `json:"paymentDueDate"`
	DaysToDue           int             `json:"daysToDue"`
	InvoiceStatus       string          `json:"invoiceStatus"`
	PaymentStatus       string          `json:"paymentStatus"`
	PaymentMethod       *string         `json:"paymentMethod"`
	PaymentDate         *string         `json:"paymentDate"`
	CustomerName        string          `json:"customerName"`
	CustomerRun         string          `json:"customerRun"`
	CustomerEmail       string          `json:"customerEmail"`
	IsConsistent        bool            `json:"isConsistent"`
	ProductsSubtotalSum int64           `json:"productsSubtotalSum"`
	DiscrepancyAmount   int64           `json:"discrepancyAmount"`
	CreditNoteTotal     int64           `json:"creditNoteTotal"`
	RemainingBalance    int64           `json:"remainingBalance"`
	LineItems           []LineItemRow   `json:"lineItems"`
	CreditNotes         []CreditNoteRow `json:"creditNotes"`
}

type OverdueNoActionRow struct {
	InvoiceNumber  int    `json:"invoiceNumber"`
	InvoiceDate    string `json:"invoiceDate"`
	TotalAmount    int64  `json:"totalAmount"`
	PaymentDueDate string `json:"paymentDueDate"`
	DaysOverdue    int    `json:"daysOverdue"`
	CustomerName   string `json:"customerName"`
	CustomerRun    string `json:"customerRun"`
	CustomerEmail  string `json:"customerEmail"`
}

type PaymentStatusSummaryRow struct {
	PaymentStatus string  `json:"paymentStatus"`
	Count         int     `json:"count"`
	Percentage    float64 `json:"percentage"`
}

type PaymentStatusSummary struct {
	TotalInvoices int                       `json:"totalInvoices"`
	Rows          []PaymentStatusSummaryRow `json:"rows"`
}

type InconsistentInvoiceRow struct {
	InvoiceNumber         int    `json:"invoiceNumber"`
	InvoiceDate           string `json:"invoiceDate"`
	DeclaredTotalAmount   int64  `json:"declaredTotalAmount"`
	ComputedProductsTotal int64  `json:"computedProductsTotal"`
	DiscrepancyAmount     int64  `json:"discrepancyAmount"`
	CustomerName          string `json:"customerName"`
	CustomerRun           string `json:"customerRun"`
	CustomerEmail         string `json:"customerEmail"`
}
