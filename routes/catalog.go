package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dammyprolific/shopWithDammy/cache"
	productControllers "github.com/dammyprolific/shopWithDammy/controllers/product"
	"github.com/dammyprolific/shopWithDammy/store"
)

// SetupCatalogRoutes registers the public catalog endpoints.
func SetupCatalogRoutes(r *gin.Engine, stores *store.Stores, productCache *cache.ProductCache) {
	r.GET("/products/", productControllers.GetProducts(stores.Products, productCache))
	r.GET("/product-detail/:slug/", productControllers.GetProductDetail(stores.Products))
}
