package productControllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dammyprolific/shopWithDammy/models"
	"github.com/dammyprolific/shopWithDammy/routes"
	"github.com/dammyprolific/shopWithDammy/store"
)

func newCatalogRouter(t *testing.T) (*gin.Engine, *store.Stores) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Transaction{},
		&models.User{},
	))

	stores := store.New(db)
	r := gin.New()
	routes.SetupCatalogRoutes(r, stores, nil)
	return r, stores
}

func seedCatalog(t *testing.T, stores *store.Stores, names []string, category string) {
	t.Helper()
	for _, name := range names {
		product := &models.Product{
			Name:     name,
			Category: category,
			Price:    decimal.RequireFromString("100.00"),
		}
		require.NoError(t, stores.Products.Create(product))
	}
}

func get(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	decoded := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestGetProductsPaginates(t *testing.T) {
	r, stores := newCatalogRouter(t)
	names := make([]string, 12)
	for i := range names {
		names[i] = fmt.Sprintf("Gadget %02d", i+1)
	}
	seedCatalog(t, stores, names, "ELECTRONICS")

	w, body := get(t, r, "/products/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(12), body["count"])
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(10), body["page_size"])
	assert.Len(t, body["results"], 10)

	w, body = get(t, r, "/products/?page=2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["results"], 2)

	// Oversized pages clamp instead of erroring.
	w, body = get(t, r, "/products/?page_size=5000")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(100), body["page_size"])
}

func TestGetProductsSearch(t *testing.T) {
	r, stores := newCatalogRouter(t)
	seedCatalog(t, stores, []string{"Gaming Mouse", "Office Chair"}, "ELECTRONICS")

	w, body := get(t, r, "/products/?search=mouse")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["count"])
	results := body["results"].([]interface{})
	assert.Equal(t, "Gaming Mouse", results[0].(map[string]interface{})["name"])
}

func TestGetProductsResultShape(t *testing.T) {
	r, stores := newCatalogRouter(t)
	seedCatalog(t, stores, []string{"Gaming Mouse"}, "ELECTRONICS")

	w, body := get(t, r, "/products/")
	require.Equal(t, http.StatusOK, w.Code)

	product := body["results"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "gaming-mouse", product["slug"])
	assert.Equal(t, "ELECTRONICS", product["category"])
	assert.Equal(t, "Electronics", product["category_display"])
	assert.Equal(t, "100", product["price"])
	assert.Equal(t, "100.00", product["formatted_price"])
	assert.NotEmpty(t, product["image"])
}

func TestGetProductDetail(t *testing.T) {
	r, stores := newCatalogRouter(t)
	seedCatalog(t, stores, []string{
		"Gaming Mouse", "Gaming Keyboard", "Webcam", "Monitor",
		"Headset", "Speaker", "Microphone",
	}, "ELECTRONICS")
	seedCatalog(t, stores, []string{"Office Chair"}, "OTHERS")

	w, body := get(t, r, "/product-detail/gaming-mouse/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Gaming Mouse", body["name"])

	similar := body["similar_products"].([]interface{})
	assert.Len(t, similar, 5)
	for _, s := range similar {
		p := s.(map[string]interface{})
		assert.NotEqual(t, "gaming-mouse", p["slug"])
		assert.Equal(t, "ELECTRONICS", p["category"])
	}
}

func TestGetProductDetailNotFound(t *testing.T) {
	r, _ := newCatalogRouter(t)

	w, body := get(t, r, "/product-detail/no-such-slug/")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", body["error"])
}
