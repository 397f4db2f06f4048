package service

import (
	"context"
	"sort"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/repository"
	"luxestore/pkg/logger"
)

// CatalogSource is where the storefront reads products from. Implementations
// never fail: a list failure is an empty catalog and a lookup failure is a
// missing product.
type CatalogSource interface {
	ListProducts(ctx context.Context) []entity.Product
	GetProduct(ctx context.Context, id string) *entity.Product
}

// DocumentCatalog serves admin-entered products from the document store.
type DocumentCatalog struct {
	products repository.ProductRepository
}

func NewDocumentCatalog(products repository.ProductRepository) *DocumentCatalog {
	return &DocumentCatalog{products: products}
}

func (c *DocumentCatalog) ListProducts(ctx context.Context) []entity.Product {
	products, err := c.products.List(ctx)
	if err != nil {
		logger.Error("Error fetching products: %v", err)
		return []entity.Product{}
	}

	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p != nil {
			out = append(out, *p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (c *DocumentCatalog) GetProduct(ctx context.Context, id string) *entity.Product {
	product, err := c.products.GetByID(ctx, id)
	if err != nil {
		logger.Error("Error fetching product %s: %v", id, err)
		return nil
	}
	return product
}
