package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is identified by a client-supplied opaque code so the storefront can
// keep a cart across sessions without logging in. Once paid it becomes
// read-only order history.
type Cart struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	CartCode   string     `gorm:"size:11;uniqueIndex;not null" json:"cart_code"`
	UserID     *uint      `gorm:"index" json:"user_id,omitempty"`
	Paid       bool       `gorm:"default:false" json:"paid"`
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time  `json:"created_at"`
	ModifiedAt time.Time  `gorm:"autoUpdateTime" json:"modified_at"`
}

type CartItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    uint    `gorm:"index;uniqueIndex:idx_cart_product" json:"-"`
	Cart      Cart    `gorm:"foreignKey:CartID" json:"-"`
	ProductID uint    `gorm:"uniqueIndex:idx_cart_product;not null" json:"-"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
}

// Total is the line total: product price times quantity. The item's Product
// must be loaded.
func (ci *CartItem) Total() decimal.Decimal {
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// SumTotal sums line totals across the cart's loaded items.
func (c *Cart) SumTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].Total())
	}
	return total
}

// NumOfItems sums quantities across the cart's loaded items.
func (c *Cart) NumOfItems() int {
	n := 0
	for i := range c.Items {
		n += c.Items[i].Quantity
	}
	return n
}
