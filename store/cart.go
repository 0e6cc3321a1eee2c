package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dammyprolific/shopWithDammy/models"
)

type CartStore interface {
	AddItem(cartCode string, productID uint, quantity int, userID *uint) (*models.Cart, error)
	GetByCode(cartCode string) (*models.Cart, error)
	ItemExists(cartCode string, productID uint) (bool, error)
	UpdateItemQuantity(itemID uint, quantity int) (*models.CartItem, error)
	DeleteItem(itemID uint) error
}

type cartStore struct {
	db *gorm.DB
}

// AddItem creates the cart on first use, attaches an authenticated caller to
// an unowned cart, and upserts the (cart, product) line: a repeated add
// increments the existing quantity instead of duplicating the row. The whole
// read-then-write sequence runs in one database transaction so concurrent
// adds cannot interleave.
func (s *cartStore) AddItem(cartCode string, productID uint, quantity int, userID *uint) (*models.Cart, error) {
	var cartID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var cart models.Cart
		err := tx.Where("cart_code = ?", cartCode).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = models.Cart{CartCode: cartCode}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if userID != nil && cart.UserID == nil {
			if err := tx.Model(&cart).Update("user_id", *userID).Error; err != nil {
				return err
			}
		}

		var item models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			item.Quantity += quantity
			if err := tx.Model(&item).Update("quantity", item.Quantity).Error; err != nil {
				return err
			}
		}

		cartID = cart.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.loadCart(cartID)
}

func (s *cartStore) loadCart(id uint) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Preload("Items.Product.ExtraImages").First(&cart, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetByCode returns the unpaid cart matching the code. Paid carts are order
// history and never come back from here.
func (s *cartStore) GetByCode(cartCode string) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Preload("Items.Product.ExtraImages").
		Where("cart_code = ? AND paid = ?", cartCode, false).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// ItemExists reports whether the unpaid cart with the code holds the product.
func (s *cartStore) ItemExists(cartCode string, productID uint) (bool, error) {
	var cart models.Cart
	err := s.db.Where("cart_code = ? AND paid = ?", cartCode, false).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}

	var count int64
	err = s.db.Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cart.ID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *cartStore) UpdateItemQuantity(itemID uint, quantity int) (*models.CartItem, error) {
	result := s.db.Model(&models.CartItem{}).Where("id = ?", itemID).Update("quantity", quantity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var item models.CartItem
	if err := s.db.Preload("Product.ExtraImages").First(&item, itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *cartStore) DeleteItem(itemID uint) error {
	result := s.db.Delete(&models.CartItem{}, itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
