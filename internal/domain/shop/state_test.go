package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/settings"
)

func TestStateSnapshots(t *testing.T) {
	base := State{}.
		WithProducts([]entity.Product{{ID: "p1", Name: "Tote", Price: 100}}).
		WithConfig(settings.Defaults())

	t.Run("AddToCart leaves the previous snapshot intact", func(t *testing.T) {
		p, ok := base.FindProduct("p1")
		require.True(t, ok)

		next := base.AddToCart(p, "M", "Black")

		assert.True(t, base.Cart.IsEmpty())
		assert.Equal(t, 100.0, next.CartTotal())
	})

	t.Run("WithProducts copies the slice", func(t *testing.T) {
		products := []entity.Product{{ID: "p2"}}
		s := base.WithProducts(products)
		products[0].ID = "changed"

		_, ok := s.FindProduct("p2")
		assert.True(t, ok)
	})

	t.Run("WithUser copies the profile", func(t *testing.T) {
		user := &entity.User{UID: "u1", Role: entity.RoleCustomer}
		s := base.WithUser(user)
		user.Role = entity.RoleAdmin

		require.True(t, s.IsAuthenticated())
		assert.Equal(t, entity.RoleCustomer, s.User.Role)
		assert.False(t, base.IsAuthenticated())
		assert.False(t, s.WithUser(nil).IsAuthenticated())
	})

	t.Run("WithConfig isolates map fields", func(t *testing.T) {
		cfg := settings.Defaults()
		s := base.WithConfig(cfg)
		cfg.PaymentMethods["stripe"] = true

		assert.False(t, s.Config.PaymentMethods["stripe"])
	})

	t.Run("unknown product is reported absent", func(t *testing.T) {
		_, ok := base.FindProduct("missing")
		assert.False(t, ok)
	})
}
