// controllers/invoice.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"invoice-manager-backend/config"
	"invoice-manager-backend/services"
	"invoice-manager-backend/utils"

	"github.com/gin-gonic/gin"
)

// AddCreditNoteInput defines the expected JSON structure for issuing a credit note
type AddCreditNoteInput struct {
	Amount int64 `json:"amount"`
}

func invoiceService() *services.InvoiceService {
	return services.NewInvoiceService(config.DB, services.SystemClock{})
}

// SearchInvoices filters consistent invoices by number and status values
func SearchInvoices(c *gin.Context) {
	var invoiceNumber *int
	if raw := c.Query("invoiceNumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "invoiceNumber must be an integer")
			return
		}
		invoiceNumber = &n
	}

	rows, err := invoiceService().Search(invoiceNumber, c.Query("invoiceStatus"), c.Query("paymentStatus"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetInvoice retrieves a consistent invoice by its number
func GetInvoice(c *gin.Context) {
	invoiceNumber, err := strconv.Atoi(c.Param("invoiceNumber"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "invoiceNumber must be an integer")
		return
	}

	detail, err := invoiceService().GetByNumber(invoiceNumber)
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, detail)
}

// AddCreditNote issues a credit note against an invoice's remaining balance
func AddCreditNote(c *gin.Context) {
	invoiceNumber, err := strconv.Atoi(c.Param("invoiceNumber"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "invoiceNumber must be an integer")
		return
	}

	var input AddCreditNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	note, err := invoiceService().IssueCreditNote(invoiceNumber, input.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrInvoiceNotFound):
			utils.RespondWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrNoRemainingBalance), errors.Is(err, services.ErrAmountExceedsBalance):
			utils.RespondWithError(c, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, note)
}
