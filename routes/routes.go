package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dammyprolific/shopWithDammy/cache"
	"github.com/dammyprolific/shopWithDammy/middleware"
	"github.com/dammyprolific/shopWithDammy/payment"
	"github.com/dammyprolific/shopWithDammy/store"
)

// SetupRoutes is the single entry point that wires every endpoint group onto
// the engine.
func SetupRoutes(r *gin.Engine, stores *store.Stores, productCache *cache.ProductCache) {
	// Token parsing runs everywhere; individual routes decide whether a
	// missing caller is an error.
	r.Use(middleware.Authenticate())

	checkout := &payment.Checkout{
		Carts:        stores.Carts,
		Transactions: stores.Transactions,
		Users:        stores.Users,
	}

	SetupCatalogRoutes(r, stores, productCache)
	SetupCartRoutes(r, stores)
	SetupUserRoutes(r, stores)
	SetupPaymentRoutes(r, checkout, payment.NewFlutterwave(), payment.NewPayPal())
	SetupReportRoutes(r, stores)
}
