package handler

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"luxestore/internal/adapter/api/middleware"
	"luxestore/internal/domain/entity"
	"luxestore/internal/usecase"
	"luxestore/pkg/errors"
	"luxestore/pkg/response"
)

type SettingsHandler struct {
	settingsUseCase *usecase.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
	}
}

// GetPublic serves the storefront configuration without payment secrets.
func (h *SettingsHandler) GetPublic(c echo.Context) error {
	return response.Success(c, h.settingsUseCase.Public(c.Request().Context()))
}

func (h *SettingsHandler) PaymentProviders(c echo.Context) error {
	return response.Success(c, h.settingsUseCase.PaymentProviders(c.Request().Context()))
}

func (h *SettingsHandler) Get(c echo.Context) error {
	cfg, err := h.settingsUseCase.Get(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, cfg)
}

// Put replaces the whole configuration.
func (h *SettingsHandler) Put(c echo.Context) error {
	var cfg entity.SiteConfig
	if err := c.Bind(&cfg); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	saved, err := h.settingsUseCase.Save(c.Request().Context(), cfg)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, saved)
}

func (h *SettingsHandler) GetDraft(c echo.Context) error {
	view, err := h.settingsUseCase.GetDraft(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

// PatchDraft takes a partial configuration document, e.g.
// {"saleBanner1": {"title": "Final Sale"}}, and merges it into the draft.
func (h *SettingsHandler) PatchDraft(c echo.Context) error {
	var patch map[string]interface{}
	if err := json.NewDecoder(c.Request().Body).Decode(&patch); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if len(patch) == 0 {
		return response.Error(c, errors.BadRequest("No changes supplied", nil))
	}

	view, err := h.settingsUseCase.EditDraft(c.Request().Context(), middleware.UID(c), patch)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *SettingsHandler) SaveDraft(c echo.Context) error {
	view, err := h.settingsUseCase.SaveDraft(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *SettingsHandler) DiscardDraft(c echo.Context) error {
	h.settingsUseCase.DiscardDraft(middleware.UID(c))
	return response.Success(c, map[string]bool{"discarded": true})
}
