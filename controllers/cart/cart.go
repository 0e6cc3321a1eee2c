package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dammyprolific/shopWithDammy/serializers"
	"github.com/dammyprolific/shopWithDammy/store"
)

type addItemInput struct {
	CartCode  string `json:"cart_code" binding:"required"`
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity"`
}

// AddItem creates the cart on first use and upserts the product line. An
// authenticated caller is attached to the cart if nobody owns it yet.
func AddItem(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input addItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart_code and product_id are required."})
			return
		}

		quantity := 1
		if input.Quantity != nil {
			quantity = *input.Quantity
		}
		if quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1."})
			return
		}

		var userID *uint
		if v, exists := c.Get("user_id"); exists {
			id := v.(uint)
			userID = &id
		}

		cart, err := carts.AddItem(input.CartCode, input.ProductID, quantity, userID)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product does not exist"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Item added to cart.",
			"cart":    serializers.NewCart(cart),
		})
	}
}

// CheckProductInCart reports whether the unpaid cart holds the product. Any
// failure on the way to the answer degrades to exists=false rather than an
// error: the storefront treats this endpoint as a pure boolean probe.
func CheckProductInCart(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartCode := c.Query("cart_code")
		productIDParam := c.Query("product_id")
		if cartCode == "" || productIDParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing cart_code or product_id"})
			return
		}

		productID, err := strconv.ParseUint(productIDParam, 10, 64)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"exists": false})
			return
		}

		exists, err := carts.ItemExists(cartCode, uint(productID))
		if err != nil {
			exists = false
		}
		c.JSON(http.StatusOK, gin.H{"exists": exists})
	}
}

// GetCartStat returns the lightweight badge view of the unpaid cart.
func GetCartStat(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartCode := c.Query("cart_code")
		if cartCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart_code is required."})
			return
		}

		cart, err := carts.GetByCode(cartCode)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found or already paid."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, serializers.NewSimpleCart(cart))
	}
}

// GetCart returns the full view of the unpaid cart.
func GetCart(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartCode := c.Query("cart_code")
		if cartCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart_code is required."})
			return
		}

		cart, err := carts.GetByCode(cartCode)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, serializers.NewCart(cart))
	}
}

type updateQuantityInput struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity *int `json:"quantity"`
}

// UpdateQuantity sets an item's quantity directly by item id.
func UpdateQuantity(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input updateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item_id is required."})
			return
		}

		quantity := 1
		if input.Quantity != nil {
			quantity = *input.Quantity
		}
		if quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1."})
			return
		}

		item, err := carts.UpdateItemQuantity(input.ItemID, quantity)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data":    serializers.NewCartItem(item),
			"message": "Cart item updated successfully",
		})
	}
}

// DeleteCartItem removes an item by id. The product the item referenced is
// untouched.
func DeleteCartItem(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}

		err = carts.DeleteItem(uint(itemID))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
