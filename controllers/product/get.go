package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dammyprolific/shopWithDammy/cache"
	"github.com/dammyprolific/shopWithDammy/serializers"
	"github.com/dammyprolific/shopWithDammy/store"
)

// GetProducts lists the catalog, paginated and optionally filtered by a
// search term matched against name, description and category.
func GetProducts(products store.ProductStore, productCache *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(store.DefaultPageSize)))
		if err != nil || pageSize < 1 {
			pageSize = store.DefaultPageSize
		}
		if pageSize > store.MaxPageSize {
			pageSize = store.MaxPageSize
		}

		// Only unfiltered pages are cached; search results are too sparse
		// to be worth the keys.
		if search == "" {
			if raw, ok := productCache.Get(c.Request.Context(), page, pageSize); ok {
				c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
				return
			}
		}

		list, err := products.List(search, page, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		payload := gin.H{
			"count":     list.Total,
			"page":      list.Page,
			"page_size": list.PageSize,
			"results":   serializers.NewProducts(list.Products),
		}
		if search == "" {
			productCache.Set(c.Request.Context(), list.Page, list.PageSize, payload)
		}
		c.JSON(http.StatusOK, payload)
	}
}

// GetProductDetail returns one product by slug together with up to 5
// category-mates. The similar list carries no ordering guarantee beyond
// whatever the database returns.
func GetProductDetail(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		product, err := products.GetBySlug(slug)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}

		similar, err := products.Similar(product.Category, product.ID, 5)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve similar products"})
			return
		}

		c.JSON(http.StatusOK, serializers.NewProductDetail(product, similar))
	}
}
