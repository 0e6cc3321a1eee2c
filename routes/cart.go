package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/dammyprolific/shopWithDammy/controllers/cart"
	"github.com/dammyprolific/shopWithDammy/store"
)

// SetupCartRoutes registers the cart endpoints. All of them are public: the
// cart code is the only credential a cart needs.
func SetupCartRoutes(r *gin.Engine, stores *store.Stores) {
	r.POST("/add_item/", cartControllers.AddItem(stores.Carts))
	r.GET("/check_product_in_cart/", cartControllers.CheckProductInCart(stores.Carts))
	r.GET("/get_cart_stat/", cartControllers.GetCartStat(stores.Carts))
	r.GET("/get_cart/", cartControllers.GetCart(stores.Carts))
	r.PATCH("/update_quantity/", cartControllers.UpdateQuantity(stores.Carts))
	r.DELETE("/delete_cartitem/:item_id/", cartControllers.DeleteCartItem(stores.Carts))
}
