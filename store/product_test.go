package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "go-mug", Slugify("Go Mug"))
	assert.Equal(t, "50-off-deal", Slugify("  50% Off / Deal!  "))
	assert.Equal(t, "tv", Slugify("TV"))
}

func TestCreateAssignsUniqueSlugs(t *testing.T) {
	stores := newTestStores(t)

	first := createProduct(t, stores, "Go Mug", "OTHERS", "10.00")
	second := createProduct(t, stores, "Go Mug", "OTHERS", "12.00")
	third := createProduct(t, stores, "Go Mug", "OTHERS", "14.00")

	assert.Equal(t, "go-mug", first.Slug)
	assert.Equal(t, "go-mug-1", second.Slug)
	assert.Equal(t, "go-mug-2", third.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
}

func TestGetBySlug(t *testing.T) {
	stores := newTestStores(t)
	created := createProduct(t, stores, "Leather Wallet", "ACCESSORY", "45.50")

	product, err := stores.Products.GetBySlug(created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, product.ID)
	assert.Equal(t, "Leather Wallet", product.Name)

	_, err = stores.Products.GetBySlug("no-such-product")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPaginationAndSearch(t *testing.T) {
	stores := newTestStores(t)
	for i := 0; i < 15; i++ {
		createProduct(t, stores, fmt.Sprintf("Phone %d", i), "PHONES", "199.99")
	}
	createProduct(t, stores, "Toaster", "ELECTRONICS", "25.00")

	list, err := stores.Products.List("", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(16), list.Total)
	assert.Equal(t, DefaultPageSize, list.PageSize)
	assert.Len(t, list.Products, DefaultPageSize)

	second, err := stores.Products.List("", 2, 10)
	require.NoError(t, err)
	assert.Len(t, second.Products, 6)

	// Caller-supplied page sizes are capped.
	capped, err := stores.Products.List("", 1, 5000)
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, capped.PageSize)

	// Search matches name, description and category, case-insensitively.
	phones, err := stores.Products.List("phone", 1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(15), phones.Total)

	toasters, err := stores.Products.List("ELECTRONICS", 1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(1), toasters.Total)
}

func TestSimilarExcludesSelfAndLimits(t *testing.T) {
	stores := newTestStores(t)

	subject := createProduct(t, stores, "Sedan", "CARS", "9000.00")
	for i := 0; i < 7; i++ {
		createProduct(t, stores, fmt.Sprintf("Car %d", i), "CARS", "8000.00")
	}
	createProduct(t, stores, "Banana", "GROCERIES", "1.00")

	similar, err := stores.Products.Similar(subject.Category, subject.ID, 5)
	require.NoError(t, err)
	assert.Len(t, similar, 5)
	for _, p := range similar {
		assert.NotEqual(t, subject.ID, p.ID)
		assert.Equal(t, "CARS", p.Category)
	}
}
