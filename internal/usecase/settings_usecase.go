package usecase

import (
	"context"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/repository"
	"luxestore/internal/domain/settings"
	"luxestore/internal/infrastructure/metrics"
	"luxestore/pkg/errors"
	"luxestore/pkg/logger"
)

type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	drafts       *draftStore
	metrics      *metrics.Metrics
}

func NewSettingsUseCase(settingsRepo repository.SettingsRepository, m *metrics.Metrics) *SettingsUseCase {
	return &SettingsUseCase{
		settingsRepo: settingsRepo,
		drafts:       newDraftStore(),
		metrics:      m,
	}
}

// ProviderView is a payment provider as shown to shoppers, with only its
// browser-safe keys.
type ProviderView struct {
	entity.PaymentProvider
	Keys map[string]string `json:"keys"`
}

// Get returns the stored configuration layered over the defaults. A missing
// document is not an error; a failed read is.
func (uc *SettingsUseCase) Get(ctx context.Context) (entity.SiteConfig, error) {
	doc, _, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		logger.Error("Error fetching settings: %v", err)
		return entity.SiteConfig{}, errors.Internal("Failed to load settings", err)
	}
	return settings.Merge(settings.Defaults(), doc), nil
}

// Load is Get for storefront reads: any failure falls back to the defaults.
func (uc *SettingsUseCase) Load(ctx context.Context) entity.SiteConfig {
	cfg, err := uc.Get(ctx)
	if err != nil {
		return settings.Defaults()
	}
	return cfg
}

// Public is the configuration with payment secrets removed.
func (uc *SettingsUseCase) Public(ctx context.Context) entity.SiteConfig {
	return settings.Public(uc.Load(ctx))
}

// Visibility reports which providers shoppers may see. A failed read hides
// every provider rather than guessing.
func (uc *SettingsUseCase) Visibility(ctx context.Context) map[string]bool {
	doc, exists, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		logger.Error("Error fetching settings for provider visibility: %v", err)
		hidden := make(map[string]bool, len(entity.KnownProviders))
		for _, p := range entity.KnownProviders {
			hidden[p.ID] = false
		}
		return hidden
	}
	return settings.Visibility(doc, exists)
}

// PaymentProviders lists the visible providers in display order.
func (uc *SettingsUseCase) PaymentProviders(ctx context.Context) []ProviderView {
	doc, exists, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		logger.Error("Error fetching payment providers: %v", err)
		return []ProviderView{}
	}

	visible := settings.Visibility(doc, exists)
	cfg := settings.Merge(settings.Defaults(), doc)

	views := []ProviderView{}
	for _, p := range entity.KnownProviders {
		if visible[p.ID] {
			views = append(views, ProviderView{
				PaymentProvider: p,
				Keys:            settings.PublicKeys(cfg, p.ID),
			})
		}
	}
	return views
}

// Save writes the whole configuration with merge semantics.
func (uc *SettingsUseCase) Save(ctx context.Context, cfg entity.SiteConfig) (entity.SiteConfig, error) {
	if err := uc.settingsRepo.Save(ctx, settings.ToDocument(cfg)); err != nil {
		logger.Error("Error saving settings: %v", err)
		uc.metrics.SettingsSaved(false)
		return entity.SiteConfig{}, errors.Internal("Failed to save settings", err)
	}
	uc.metrics.SettingsSaved(true)
	return uc.Get(ctx)
}

// GetDraft returns the admin's working copy, starting one from the stored
// configuration on first use.
func (uc *SettingsUseCase) GetDraft(ctx context.Context, adminID string) (DraftView, error) {
	if view, ok := uc.drafts.view(adminID); ok {
		return view, nil
	}

	cfg, err := uc.Get(ctx)
	if err != nil {
		return DraftView{}, err
	}
	return uc.drafts.init(adminID, cfg), nil
}

// EditDraft applies a partial document to the draft and marks it dirty.
func (uc *SettingsUseCase) EditDraft(ctx context.Context, adminID string, patch map[string]interface{}) (DraftView, error) {
	if _, err := uc.GetDraft(ctx, adminID); err != nil {
		return DraftView{}, err
	}
	return uc.drafts.edit(adminID, patch)
}

// SaveDraft persists the draft. It is rejected when there is nothing to save
// or a save for the same admin is still running. The draft stays dirty if the
// write fails or if it was edited while the write was in flight.
func (uc *SettingsUseCase) SaveDraft(ctx context.Context, adminID string) (DraftView, error) {
	cfg, revision, err := uc.drafts.beginSave(adminID)
	if err != nil {
		return DraftView{}, err
	}

	saveErr := uc.settingsRepo.Save(ctx, settings.ToDocument(cfg))
	view := uc.drafts.finishSave(adminID, revision, saveErr == nil)
	if saveErr != nil {
		logger.Error("Error saving settings draft for %s: %v", adminID, saveErr)
		uc.metrics.SettingsSaved(false)
		return view, errors.Internal("Error saving settings", saveErr)
	}

	uc.metrics.SettingsSaved(true)
	return view, nil
}

// DiscardDraft drops the admin's working copy.
func (uc *SettingsUseCase) DiscardDraft(adminID string) {
	uc.drafts.discard(adminID)
}
