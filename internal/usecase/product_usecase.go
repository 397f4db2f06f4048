package usecase

import (
	"context"
	"io"
	"net/http"
	"time"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/repository"
	"luxestore/pkg/errors"
	"luxestore/pkg/logger"
)

// ProductUseCase manages admin-entered products in the document store.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	images      ImageStore
}

func NewProductUseCase(productRepo repository.ProductRepository, images ImageStore) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		images:      images,
	}
}

type CreateProductInput struct {
	Name        string
	Price       float64
	Category    string
	Image       string
	Description string
	Stock       *int
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        input.Name,
		Price:       input.Price,
		Image:       input.Image,
		Category:    input.Category,
		Description: input.Description,
		Stock:       input.Stock,
		CreatedAt:   time.Now(),
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		logger.Error("Error adding product %q: %v", input.Name, err)
		return nil, errors.Internal("Failed to create product", err)
	}
	return product, nil
}

// UploadFolders are the image destinations the admin console may target.
var UploadFolders = map[string]bool{
	"hero":       true,
	"banners":    true,
	"categories": true,
	"products":   true,
}

type UploadImageInput struct {
	File        io.Reader
	ContentType string
	Folder      string
}

// UploadImage stores an image and returns its public URL.
func (uc *ProductUseCase) UploadImage(ctx context.Context, input UploadImageInput) (string, error) {
	if uc.images == nil {
		return "", errors.New(errors.CodeInternal, "Image uploads are not configured", http.StatusServiceUnavailable, nil)
	}
	if !UploadFolders[input.Folder] {
		return "", errors.BadRequest("Unknown upload folder", nil)
	}

	url, err := uc.images.UploadImage(ctx, input.File, input.ContentType, input.Folder)
	if err != nil {
		logger.Error("Error uploading image to %s: %v", input.Folder, err)
		return "", errors.BadRequest("Failed to upload image", err)
	}
	return url, nil
}
