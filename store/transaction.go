package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dammyprolific/shopWithDammy/models"
)

type TransactionStore interface {
	Create(trx *models.Transaction) error
	GetByRef(ref string) (*models.Transaction, error)
	Complete(ref string) (*models.Transaction, error)
	All() ([]models.Transaction, error)
}

type transactionStore struct {
	db *gorm.DB
}

func (s *transactionStore) Create(trx *models.Transaction) error {
	return s.db.Create(trx).Error
}

func (s *transactionStore) GetByRef(ref string) (*models.Transaction, error) {
	var trx models.Transaction
	err := s.db.Where("ref = ?", ref).First(&trx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &trx, nil
}

// Complete flips the transaction to completed and marks its cart paid, both
// in a single database transaction. A transaction that is already completed
// is left untouched and returned as-is: providers are free to deliver the
// same callback twice.
func (s *transactionStore) Complete(ref string) (*models.Transaction, error) {
	var trx models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ref = ?", ref).First(&trx).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if trx.Status == models.TransactionCompleted {
			return nil
		}
		if err := tx.Model(&trx).Update("status", models.TransactionCompleted).Error; err != nil {
			return err
		}
		return tx.Model(&models.Cart{}).Where("id = ?", trx.CartID).Update("paid", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &trx, nil
}

func (s *transactionStore) All() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Order("created_at DESC").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}
