package routes

import (
	"os"

	"invoice-manager-backend/config"
	"invoice-manager-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontendOrigin == "" {
		frontendOrigin = "http://localhost:3000"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	{
		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.GET("", controllers.SearchInvoices)
			invoices.GET("/:invoiceNumber", controllers.GetInvoice)
			invoices.POST("/:invoiceNumber/credit-notes", controllers.AddCreditNote)
		}

		// Reports routes
		reportController := controllers.ReportController{}
		reports := api.Group("/reports")
		{
			reports.GET("/overdue-30-no-action", reportController.OverdueNoAction)
			reports.GET("/payment-status-summary", reportController.PaymentStatusSummary)
			reports.GET("/inconsistent", reportController.Inconsistent)
		}
	}

	return r
}
