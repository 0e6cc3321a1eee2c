package store

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dammyprolific/shopWithDammy/models"
)

// newTestDB opens a fresh in-memory database per test. Naming the database
// after the test keeps connections in the pool pointed at the same store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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
	return db
}

func newTestStores(t *testing.T) *Stores {
	t.Helper()
	return New(newTestDB(t))
}

func price(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func createProduct(t *testing.T, stores *Stores, name, category, priceStr string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Category: category,
		Price:    price(t, priceStr),
	}
	require.NoError(t, stores.Products.Create(product))
	return product
}
