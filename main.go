package main

import (
	"fmt"
	"os"

	"invoice-manager-backend/config"
	"invoice-manager-backend/models"
	"invoice-manager-backend/routes"
	"invoice-manager-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		config.Logger.Info("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Invoice{},
		&models.InvoiceLineItem{},
		&models.CreditNote{},
	)
}

func main() {
	importer := services.NewImportService(config.DB)

	importPath := os.Getenv("IMPORT_JSON_PATH")
	if importPath == "" {
		importPath = "data/invoices.json"
	}

	if os.Getenv("IMPORT_RUN_ON_STARTUP") != "false" {
		if err := importer.RunFromFile(importPath); err != nil {
			config.Logger.WithError(err).Error("startup invoice import failed")
		}
	}

	if spec := os.Getenv("IMPORT_RESCAN_CRON"); spec != "" {
		if err := importer.StartScheduler(spec, importPath); err != nil {
			config.Logger.WithError(err).Error("failed to start import scheduler")
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
