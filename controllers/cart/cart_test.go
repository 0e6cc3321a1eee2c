package cartControllers_test

import (
	"bytes"
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

func newTestRouter(t *testing.T) (*gin.Engine, *store.Stores) {
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
	routes.SetupRoutes(r, stores, nil)
	return r, stores
}

func seedProduct(t *testing.T, stores *store.Stores, name, priceStr string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Category: "ELECTRONICS",
		Price:    decimal.RequireFromString(priceStr),
	}
	require.NoError(t, stores.Products.Create(product))
	return product
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	decoded := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	r, stores := newTestRouter(t)
	product := seedProduct(t, stores, "Headset", "1000.00")

	w, body := doJSON(t, r, http.MethodPost, "/add_item/", gin.H{
		"cart_code":  "cart-abc",
		"product_id": product.ID,
		"quantity":   3,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Item added to cart.", body["message"])

	w, body = doJSON(t, r, http.MethodPost, "/add_item/", gin.H{
		"cart_code":  "cart-abc",
		"product_id": product.ID,
		"quantity":   4,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	cart := body["cart"].(map[string]interface{})
	items := cart["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, float64(7), items[0].(map[string]interface{})["quantity"])
	assert.Equal(t, "7000", cart["sum_total"])
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	r, stores := newTestRouter(t)
	product := seedProduct(t, stores, "Headset", "1000.00")

	w, body := doJSON(t, r, http.MethodPost, "/add_item/", gin.H{
		"cart_code":  "cart-abc",
		"product_id": product.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	cart := body["cart"].(map[string]interface{})
	assert.Equal(t, float64(1), cart["num_of_items"])
}

func TestAddItemUnknownProduct(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/add_item/", gin.H{
		"cart_code":  "cart-abc",
		"product_id": 9999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product does not exist", body["error"])
}

func TestAddItemRejectsZeroQuantity(t *testing.T) {
	r, stores := newTestRouter(t)
	product := seedProduct(t, stores, "Headset", "1000.00")

	w, _ := doJSON(t, r, http.MethodPost, "/add_item/", gin.H{
		"cart_code":  "cart-abc",
		"product_id": product.ID,
		"quantity":   0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckProductInCart(t *testing.T) {
	r, stores := newTestRouter(t)
	product := seedProduct(t, stores, "Headset", "1000.00")
	_, err := stores.Carts.AddItem("cart-abc", product.ID, 1, nil)
	require.NoError(t, err)

	w, body := doJSON(t, r, http.MethodGet,
		fmt.Sprintf("/check_product_in_cart/?cart_code=cart-abc&product_id=%d", product.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["exists"])

	// An unknown cart, a foreign product and even a malformed product id all
	// answer exists=false rather than an error.
	w, body = doJSON(t, r, http.MethodGet,
		"/check_product_in_cart/?cart_code=no-such-cart&product_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["exists"])

	w, body = doJSON(t, r, http.MethodGet,
		"/check_product_in_cart/?cart_code=cart-abc&product_id=banana", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["exists"])

	w, _ = doJSON(t, r, http.MethodGet, "/check_product_in_cart/?cart_code=cart-abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCartStat(t *testing.T) {
	r, stores := newTestRouter(t)
	product := seedProduct(t, stores, "Headset", "1000.00")
	_, err := stores.Carts.AddItem("cart-abc", product.ID, 2, nil)
	require.NoError(t, err)

	w, body := doJSON(t, r, http.MethodGet, "/get_cart_stat/?cart_code=cart-abc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cart-abc", body["cart_code"])
	assert.Equal(t, float64(2), body["num_of_items"])

	w, body = doJSON(t, r, http.MethodGet, "/get_cart_stat/?cart_code=missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Cart not found or already paid.", body["error"])
}

func TestGetCartSumsMixedItems(t *testing.T) {
	r, stores := newTestRouter(t)
	headset := seedProduct(t, stores, "Headset", "1000.00")
	mouse := seedProduct(t, stores, "Mouse", "499.99")

	_, err := stores.Carts.AddItem("cart-abc", headset.ID, 2, nil)
	require.NoError(t, err)
	_, err = stores.Carts.AddItem("cart-abc", mouse.ID, 1, nil)
	require.NoError(t, err)

	w, body := doJSON(t, r, http.MethodGet, "/get_cart/?cart_code=cart-abc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2499.99", body["sum_total"])
	assert.Equal(t, float64(3), body["num_of_items"])
	assert.Len(t, body["items"], 2)
}

func TestUpdateQuantity(t *testing.T) {
	r, stores := newTestRouter(t)
	product := seedProduct(t, stores, "Headset", "1000.00")
	cart, err := stores.Carts.AddItem("cart-abc", product.ID, 1, nil)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	w, body := doJSON(t, r, http.MethodPatch, "/update_quantity/", gin.H{
		"item_id":  itemID,
		"quantity": 5,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cart item updated successfully", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["quantity"])
	assert.Equal(t, "5000", data["total"])

	w, _ = doJSON(t, r, http.MethodPatch, "/update_quantity/", gin.H{
		"item_id":  9999,
		"quantity": 5,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCartItem(t *testing.T) {
	r, stores := newTestRouter(t)
	product := seedProduct(t, stores, "Headset", "1000.00")
	cart, err := stores.Carts.AddItem("cart-abc", product.ID, 1, nil)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	w, _ := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/delete_cartitem/%d/", itemID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())

	w, body := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/delete_cartitem/%d/", itemID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Item not found", body["error"])
}
