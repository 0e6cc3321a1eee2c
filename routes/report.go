package routes

import (
	"github.com/gin-gonic/gin"

	reportControllers "github.com/dammyprolific/shopWithDammy/controllers/report"
	"github.com/dammyprolific/shopWithDammy/middleware"
	"github.com/dammyprolific/shopWithDammy/store"
)

// SetupReportRoutes registers the API-key-protected internal reports.
func SetupReportRoutes(r *gin.Engine, stores *store.Stores) {
	reports := r.Group("/reports", middleware.ValidateAPIKey)
	{
		reports.GET("/products.xlsx", reportControllers.ExportProducts(stores.Products))
		reports.GET("/transactions.xlsx", reportControllers.ExportTransactions(stores.Transactions))
	}
}
