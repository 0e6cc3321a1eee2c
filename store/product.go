package store

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/dammyprolific/shopWithDammy/models"
)

const (
	// DefaultPageSize is used when the caller does not ask for a page size.
	DefaultPageSize = 10
	// MaxPageSize caps caller-supplied page sizes.
	MaxPageSize = 100
)

type ProductStore interface {
	Create(product *models.Product) error
	List(query string, page, pageSize int) (*ProductList, error)
	GetBySlug(slug string) (*models.Product, error)
	Similar(category string, excludeID uint, limit int) ([]models.Product, error)
	All() ([]models.Product, error)
}

// ProductList is one page of catalog results.
type ProductList struct {
	Products []models.Product
	Total    int64
	Page     int
	PageSize int
}

type productStore struct {
	db *gorm.DB
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the name and collapses runs of non-alphanumerics into
// single hyphens.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugInvalid.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Create inserts the product, assigning a unique slug derived from its name.
// The slug is generated once at creation and never rewritten. Name collisions
// get a numeric suffix: go-mug, go-mug-1, go-mug-2.
func (s *productStore) Create(product *models.Product) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if product.Slug == "" {
			slug, err := uniqueSlug(tx, product.Name)
			if err != nil {
				return err
			}
			product.Slug = slug
		}
		return tx.Create(product).Error
	})
}

func uniqueSlug(tx *gorm.DB, name string) (string, error) {
	base := Slugify(name)
	slug := base
	for counter := 1; ; counter++ {
		var count int64
		if err := tx.Model(&models.Product{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

// List returns one page of products, optionally filtered by a substring match
// against name, description and category.
func (s *productStore) List(query string, page, pageSize int) (*ProductList, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	q := s.db.Model(&models.Product{})
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"lower(name) LIKE ? OR lower(description) LIKE ? OR lower(category) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var products []models.Product
	if err := q.Preload("ExtraImages").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&products).Error; err != nil {
		return nil, err
	}

	return &ProductList{Products: products, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *productStore) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	err := s.db.Preload("ExtraImages").Where("slug = ?", slug).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Similar returns up to limit products sharing the category, excluding the
// product itself. No ordering clause: rows come back in whatever order the
// database hands them over.
func (s *productStore) Similar(category string, excludeID uint, limit int) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Preload("ExtraImages").
		Where("category = ? AND id <> ?", category, excludeID).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *productStore) All() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Preload("ExtraImages").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
