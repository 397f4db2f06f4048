package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/repository"
	"luxestore/internal/domain/service"
	"luxestore/internal/domain/shop"
	"luxestore/internal/infrastructure/metrics"
	"luxestore/pkg/errors"
	"luxestore/pkg/logger"
)

type ShopUseCase struct {
	catalog     service.CatalogSource
	catalogName string
	carts       repository.CartRepository
	users       repository.UserRepository
	settings    *SettingsUseCase
	metrics     *metrics.Metrics
}

func NewShopUseCase(
	catalog service.CatalogSource,
	catalogName string,
	carts repository.CartRepository,
	users repository.UserRepository,
	settings *SettingsUseCase,
	m *metrics.Metrics,
) *ShopUseCase {
	return &ShopUseCase{
		catalog:     catalog,
		catalogName: catalogName,
		carts:       carts,
		users:       users,
		settings:    settings,
		metrics:     m,
	}
}

// ListProducts reads the whole catalog; failures surface as an empty list.
func (uc *ShopUseCase) ListProducts(ctx context.Context) []entity.Product {
	start := time.Now()
	products := uc.catalog.ListProducts(ctx)
	uc.metrics.ObserveCatalogFetch(uc.catalogName, time.Since(start))
	return products
}

func (uc *ShopUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product := uc.catalog.GetProduct(ctx, id)
	if product == nil {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

// LoadState assembles a session's storefront state. The four reads run
// concurrently. Only an unreadable cart mirror fails the whole load; the
// other sources degrade to empty, absent or default values.
func (uc *ShopUseCase) LoadState(ctx context.Context, cartID, uid string) (shop.State, error) {
	var (
		products []entity.Product
		cart     = entity.NewCart()
		user     *entity.User
		cfg      entity.SiteConfig
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		products = uc.ListProducts(gctx)
		return nil
	})

	g.Go(func() error {
		if cartID == "" {
			return nil
		}
		loaded, err := uc.carts.Load(gctx, cartID)
		if err != nil {
			return err
		}
		cart = loaded
		return nil
	})

	g.Go(func() error {
		if uid == "" {
			return nil
		}
		profile, err := uc.users.GetByID(gctx, uid)
		if err != nil {
			logger.Error("Error loading profile %s: %v", uid, err)
			return nil
		}
		user = profile
		return nil
	})

	g.Go(func() error {
		cfg = uc.settings.Load(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Error loading cart %s: %v", cartID, err)
		return shop.State{}, errors.Internal("Failed to load cart", err)
	}

	return shop.State{}.
		WithProducts(products).
		WithCart(cart).
		WithUser(user).
		WithConfig(cfg), nil
}
