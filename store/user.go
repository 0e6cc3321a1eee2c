package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dammyprolific/shopWithDammy/models"
)

type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	PurchasedItems(userID uint, limit int) ([]models.CartItem, error)
}

type userStore struct {
	db *gorm.DB
}

func (s *userStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *userStore) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userStore) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// PurchasedItems is the user's order history: items of paid carts owned by
// the user, newest cart first.
func (s *userStore) PurchasedItems(userID uint, limit int) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("carts.user_id = ? AND carts.paid = ?", userID, true).
		Order("carts.modified_at DESC").
		Limit(limit).
		Preload("Product.ExtraImages").
		Preload("Cart").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
