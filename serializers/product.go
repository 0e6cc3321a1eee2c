// Package serializers builds the JSON response shapes the storefront expects.
// Computed presentation fields (resolved image URLs, category labels,
// formatted prices, cart totals) live here so models stay plain records.
package serializers

import (
	"github.com/shopspring/decimal"

	"github.com/dammyprolific/shopWithDammy/models"
)

type ProductImage struct {
	ID    uint   `json:"id"`
	Image string `json:"image"`
}

type Product struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Image           string          `json:"image"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	CategoryDisplay string          `json:"category_display"`
	FormattedPrice  string          `json:"formatted_price"`
	ExtraImages     []ProductImage  `json:"extra_images"`
}

type ProductDetail struct {
	Product
	SimilarProducts []Product `json:"similar_products"`
}

func NewProduct(p *models.Product) Product {
	images := make([]ProductImage, 0, len(p.ExtraImages))
	for i := range p.ExtraImages {
		images = append(images, ProductImage{
			ID:    p.ExtraImages[i].ID,
			Image: p.ExtraImages[i].ImageURL(),
		})
	}
	return Product{
		ID:              p.ID,
		Name:            p.Name,
		Slug:            p.Slug,
		Image:           p.ImageURL(),
		Description:     p.Description,
		Price:           p.Price,
		Category:        p.Category,
		CategoryDisplay: models.CategoryDisplay(p.Category),
		FormattedPrice:  p.FormattedPrice(),
		ExtraImages:     images,
	}
}

func NewProducts(products []models.Product) []Product {
	out := make([]Product, 0, len(products))
	for i := range products {
		out = append(out, NewProduct(&products[i]))
	}
	return out
}

func NewProductDetail(p *models.Product, similar []models.Product) ProductDetail {
	return ProductDetail{
		Product:         NewProduct(p),
		SimilarProducts: NewProducts(similar),
	}
}
