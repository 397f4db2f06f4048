package handler

import (
	"github.com/labstack/echo/v4"

	"luxestore/internal/usecase"
	"luxestore/pkg/errors"
	"luxestore/pkg/response"
	"luxestore/pkg/utils"
)

const maxUploadSize = 10 << 20

type AdminHandler struct {
	adminUseCase   *usecase.AdminUseCase
	productUseCase *usecase.ProductUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase, productUseCase *usecase.ProductUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase:   adminUseCase,
		productUseCase: productUseCase,
	}
}

type createProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gt=0"`
	Category    string  `json:"category" validate:"required"`
	Image       string  `json:"image" validate:"required,url"`
	Description string  `json:"description"`
	Stock       *int    `json:"stock" validate:"omitempty,min=0"`
}

func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
		Stock:       req.Stock,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

// UploadImage accepts a multipart "file" field and a "folder" form value.
func (h *AdminHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("No file uploaded", err))
	}
	if fileHeader.Size > maxUploadSize {
		return response.Error(c, errors.BadRequest("File too large (max 10MB)", nil))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to read uploaded file", err))
	}
	defer file.Close()

	url, err := h.productUseCase.UploadImage(c.Request().Context(), usecase.UploadImageInput{
		File:        file,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Folder:      c.FormValue("folder"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{"url": url})
}

func (h *AdminHandler) ListOrders(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	orders, total, err := h.adminUseCase.ListOrders(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, orders, total, params.Page, params.PageSize)
}

func (h *AdminHandler) ListCustomers(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	customers, total, err := h.adminUseCase.ListCustomers(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, customers, total, params.Page, params.PageSize)
}

func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminUseCase.Stats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, stats)
}
