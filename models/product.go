package models

import (
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// Product categories. The storefront works off a fixed taxonomy, so these are
// plain string labels rather than a table of their own.
const (
	CategoryElectronics = "ELECTRONICS"
	CategoryGroceries   = "GROCERIES"
	CategoryClothings   = "CLOTHINGS"
	CategoryCars        = "CARS"
	CategoryAccessory   = "ACCESSORY"
	CategoryPhones      = "PHONES"
	CategoryOthers      = "OTHERS"
)

var categoryDisplay = map[string]string{
	CategoryElectronics: "Electronics",
	CategoryGroceries:   "Groceries",
	CategoryClothings:   "Clothings",
	CategoryCars:        "Cars",
	CategoryAccessory:   "Accessory",
	CategoryPhones:      "Phones",
	CategoryOthers:      "Others",
}

// CategoryDisplay returns the human-readable label for a category value.
// Unknown values come back unchanged.
func CategoryDisplay(category string) string {
	if display, ok := categoryDisplay[category]; ok {
		return display
	}
	return category
}

// FallbackImageURL is served whenever a product or extra image has no stored
// reference.
const FallbackImageURL = "https://res.cloudinary.com/shopwithdammy/image/upload/placeholder.png"

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Slug        string          `gorm:"size:120;uniqueIndex" json:"slug"`
	Image       string          `json:"-"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string          `gorm:"size:15" json:"category"`
	ExtraImages []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"extra_images"`
}

// ProductImage is an additional image owned by a single product and removed
// with it.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"-"`
	Image     string `json:"-"`
}

// ImageURL resolves the product's stored image reference to a fetchable URL.
func (p *Product) ImageURL() string {
	return ResolveImageURL(p.Image)
}

// ImageURL resolves the extra image's stored reference to a fetchable URL.
func (pi *ProductImage) ImageURL() string {
	return ResolveImageURL(pi.Image)
}

// FormattedPrice renders the price with thousands separators, e.g. 67,000,000.00.
func (p *Product) FormattedPrice() string {
	return formatAmount(p.Price)
}

// ResolveImageURL turns an opaque stored image reference into a URL the
// storefront can fetch. Absolute references pass through untouched, relative
// ones are joined onto CDN_BASE_URL, and an empty reference falls back to the
// fixed placeholder.
func ResolveImageURL(ref string) string {
	if ref == "" {
		return FallbackImageURL
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	base := os.Getenv("CDN_BASE_URL")
	if base == "" {
		return ref
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
}
