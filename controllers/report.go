// controllers/report.go
package controllers

import (
	"net/http"

	"invoice-manager-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReportController handles all reporting functions
type ReportController struct{}

// OverdueNoAction lists consistent invoices more than 30 days past due with
// no payment and no credit notes.
func (rc *ReportController) OverdueNoAction(c *gin.Context) {
	rows, err := invoiceService().OverdueNoAction()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build overdue report")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// PaymentStatusSummary reports count and percentage per payment status over
// consistent invoices.
func (rc *ReportController) PaymentStatusSummary(c *gin.Context) {
	summary, err := invoiceService().PaymentStatusSummary()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build payment status summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Inconsistent lists invoices whose declared total doesn't match the sum of
// their line-item subtotals.
func (rc *ReportController) Inconsistent(c *gin.Context) {
	rows, err := invoiceService().Inconsistent()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build inconsistency report")
		return
	}

	c.JSON(http.StatusOK, rows)
}
