package serializers

import (
	"time"

	"github.com/dammyprolific/shopWithDammy/models"
)

// PurchasedItem is one order-history line: the item plus the paid cart it
// came from, exposed as order id/date.
type PurchasedItem struct {
	ID        uint      `json:"id"`
	Product   Product   `json:"product"`
	Quantity  int       `json:"quantity"`
	OrderID   string    `json:"order_id"`
	OrderDate time.Time `json:"order_date"`
}

type User struct {
	ID        uint            `json:"id"`
	Username  string          `json:"username"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	City      string          `json:"city"`
	State     string          `json:"state"`
	Address   string          `json:"address"`
	Phone     string          `json:"phone"`
	Items     []PurchasedItem `json:"items"`
}

// RegisteredUser echoes back the profile submitted at registration. The
// password is never part of any response shape.
type RegisteredUser struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	City      string `json:"city"`
	State     string `json:"state"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

func NewPurchasedItem(item *models.CartItem) PurchasedItem {
	return PurchasedItem{
		ID:        item.ID,
		Product:   NewProduct(&item.Product),
		Quantity:  item.Quantity,
		OrderID:   item.Cart.CartCode,
		OrderDate: item.Cart.ModifiedAt,
	}
}

func NewUser(user *models.User, purchased []models.CartItem) User {
	items := make([]PurchasedItem, 0, len(purchased))
	for i := range purchased {
		items = append(items, NewPurchasedItem(&purchased[i]))
	}
	return User{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		City:      user.City,
		State:     user.State,
		Address:   user.Address,
		Phone:     user.Phone,
		Items:     items,
	}
}

func NewRegisteredUser(user *models.User) RegisteredUser {
	return RegisteredUser{
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		City:      user.City,
		State:     user.State,
		Address:   user.Address,
		Phone:     user.Phone,
	}
}
