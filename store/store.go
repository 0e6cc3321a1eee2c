// Package store is the data-access layer. Each entity gets one interface
// backed by GORM so handlers never touch the database directly.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("record not found")

// Stores bundles one store per entity over a shared connection.
type Stores struct {
	Products     ProductStore
	Carts        CartStore
	Transactions TransactionStore
	Users        UserStore
}

func New(db *gorm.DB) *Stores {
	return &Stores{
		Products:     &productStore{db: db},
		Carts:        &cartStore{db: db},
		Transactions: &transactionStore{db: db},
		Users:        &userStore{db: db},
	}
}
