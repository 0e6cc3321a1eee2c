package serializers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dammyprolific/shopWithDammy/models"
)

type CartItem struct {
	ID       uint            `json:"id"`
	Quantity int             `json:"quantity"`
	Product  Product         `json:"product"`
	Total    decimal.Decimal `json:"total"`
}

type Cart struct {
	ID         uint            `json:"id"`
	CartCode   string          `json:"cart_code"`
	Items      []CartItem      `json:"items"`
	SumTotal   decimal.Decimal `json:"sum_total"`
	NumOfItems int             `json:"num_of_items"`
	CreatedAt  time.Time       `json:"created_at"`
	ModifiedAt time.Time       `json:"modified_at"`
}

// SimpleCart is the lightweight badge view: just enough for the storefront
// header.
type SimpleCart struct {
	ID         uint   `json:"id"`
	CartCode   string `json:"cart_code"`
	NumOfItems int    `json:"num_of_items"`
}

func NewCartItem(item *models.CartItem) CartItem {
	return CartItem{
		ID:       item.ID,
		Quantity: item.Quantity,
		Product:  NewProduct(&item.Product),
		Total:    item.Total(),
	}
}

func NewCart(cart *models.Cart) Cart {
	items := make([]CartItem, 0, len(cart.Items))
	for i := range cart.Items {
		items = append(items, NewCartItem(&cart.Items[i]))
	}
	return Cart{
		ID:         cart.ID,
		CartCode:   cart.CartCode,
		Items:      items,
		SumTotal:   cart.SumTotal(),
		NumOfItems: cart.NumOfItems(),
		CreatedAt:  cart.CreatedAt,
		ModifiedAt: cart.ModifiedAt,
	}
}

func NewSimpleCart(cart *models.Cart) SimpleCart {
	return SimpleCart{
		ID:         cart.ID,
		CartCode:   cart.CartCode,
		NumOfItems: cart.NumOfItems(),
	}
}
