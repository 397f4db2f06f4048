package woocommerce

import (
	"encoding/json"
	"strconv"
	"strings"

	"luxestore/internal/domain/entity"
)

const (
	PlaceholderImage = "https://via.placeholder.com/300"
	DefaultCategory  = "Uncategorized"
)

// Product is the subset of a WooCommerce product record the store reads.
type Product struct {
	ID            json.Number `json:"id"`
	Name          string      `json:"name"`
	Price         Price       `json:"price"`
	Description   string      `json:"description"`
	StockQuantity *int        `json:"stock_quantity"`
	Images        []struct {
		Src string `json:"src"`
	} `json:"images"`
	Categories []struct {
		Name string `json:"name"`
	} `json:"categories"`
}

// ToProduct maps a WooCommerce record onto the storefront product shape.
func ToProduct(p Product) entity.Product {
	product := entity.Product{
		ID:          p.ID.String(),
		Name:        p.Name,
		Price:       float64(p.Price),
		Image:       PlaceholderImage,
		Category:    DefaultCategory,
		Description: p.Description,
		Stock:       p.StockQuantity,
	}
	if len(p.Images) > 0 && p.Images[0].Src != "" {
		product.Image = p.Images[0].Src
	}
	if len(p.Categories) > 0 && p.Categories[0].Name != "" {
		product.Category = p.Categories[0].Name
	}
	return product
}

// Price accepts the string prices WooCommerce sends as well as bare numbers.
// Anything unparsable, including "", becomes 0.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		*p = 0
		return nil
	}
	*p = Price(value)
	return nil
}
