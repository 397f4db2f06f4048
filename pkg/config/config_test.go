package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults to the WooCommerce catalog and Firestore orders", func(t *testing.T) {
		t.Setenv("FIREBASE_PROJECT_ID", "luxe-test")
		t.Setenv("WORDPRESS_URL", "https://shop.example.com/")
		t.Setenv("WC_CONSUMER_KEY", "ck")
		t.Setenv("WC_CONSUMER_SECRET", "cs")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, CatalogSourceWooCommerce, cfg.CatalogSource)
		assert.Equal(t, OrderBackendFirestore, cfg.OrderBackend)
		assert.Equal(t, "https://shop.example.com", cfg.WordPressURL)
		assert.Equal(t, int64(720), cfg.CartTTLHours)
		assert.Empty(t, cfg.AllowedOrigins)
	})

	t.Run("parses the origin list", func(t *testing.T) {
		t.Setenv("FIREBASE_PROJECT_ID", "luxe-test")
		t.Setenv("CATALOG_SOURCE", "firestore")
		t.Setenv("ALLOWED_ORIGINS", "https://luxe.example.com, http://localhost:5173,")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"https://luxe.example.com", "http://localhost:5173"}, cfg.AllowedOrigins)
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			FirebaseProject: "luxe-test",
			CatalogSource:   CatalogSourceFirestore,
			OrderBackend:    OrderBackendFirestore,
		}
	}

	t.Run("document store only needs no WooCommerce credentials", func(t *testing.T) {
		cfg := valid()
		assert.NoError(t, cfg.Validate())
		assert.False(t, cfg.UsesWooCommerce())
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := valid()
		cfg.OrderBackend = "both"
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown catalog source", func(t *testing.T) {
		cfg := valid()
		cfg.CatalogSource = "shopify"
		assert.Error(t, cfg.Validate())
	})

	t.Run("WooCommerce orders require credentials", func(t *testing.T) {
		cfg := valid()
		cfg.OrderBackend = OrderBackendWooCommerce
		assert.Error(t, cfg.Validate())

		cfg.WordPressURL = "https://shop.example.com"
		cfg.WCConsumerKey = "ck"
		cfg.WCConsumerSecret = "cs"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("project id is required", func(t *testing.T) {
		cfg := valid()
		cfg.FirebaseProject = ""
		assert.Error(t, cfg.Validate())
	})
}
