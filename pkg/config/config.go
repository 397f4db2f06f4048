package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	CatalogSourceWooCommerce = "woocommerce"
	CatalogSourceFirestore   = "firestore"

	OrderBackendFirestore   = "firestore"
	OrderBackendWooCommerce = "woocommerce"
)

type Config struct {
	ServerPort  string
	Environment string

	FirebaseProject            string
	FirebaseApiKey             string
	FirebaseServiceAccountJSON string
	FirebaseServiceAccountPath string
	StorageBucket              string

	// WooCommerce REST API, consumed with query-string credentials.
	WordPressURL     string
	WCConsumerKey    string
	WCConsumerSecret string
	CatalogSource    string
	OrderBackend     string

	// Empty RedisURL keeps the cart mirror in process memory.
	RedisURL     string
	CartTTLHours int64

	// Browser origins allowed by CORS and the admin WebSocket; empty allows any.
	AllowedOrigins []string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		FirebaseProject:            getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:             getEnv("FIREBASE_API_KEY", ""),
		FirebaseServiceAccountJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		FirebaseServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", "./firebase-service-account.json"),
		StorageBucket:              getEnv("STORAGE_BUCKET", ""),

		WordPressURL:     strings.TrimRight(getEnv("WORDPRESS_URL", ""), "/"),
		WCConsumerKey:    getEnv("WC_CONSUMER_KEY", ""),
		WCConsumerSecret: getEnv("WC_CONSUMER_SECRET", ""),
		CatalogSource:    strings.ToLower(getEnv("CATALOG_SOURCE", CatalogSourceWooCommerce)),
		OrderBackend:     strings.ToLower(getEnv("ORDER_BACKEND", OrderBackendFirestore)),

		RedisURL:     getEnv("REDIS_URL", ""),
		CartTTLHours: getEnvAsInt64("CART_TTL_HOURS", 24*30), // 30 days

		AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects unknown backends and WooCommerce modes without credentials.
func (c *Config) Validate() error {
	switch c.CatalogSource {
	case CatalogSourceWooCommerce, CatalogSourceFirestore:
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource)
	}

	switch c.OrderBackend {
	case OrderBackendFirestore, OrderBackendWooCommerce:
	default:
		return fmt.Errorf("unknown ORDER_BACKEND %q", c.OrderBackend)
	}

	if c.UsesWooCommerce() && (c.WordPressURL == "" || c.WCConsumerKey == "" || c.WCConsumerSecret == "") {
		return fmt.Errorf("WORDPRESS_URL, WC_CONSUMER_KEY and WC_CONSUMER_SECRET are required when WooCommerce is enabled")
	}

	if c.FirebaseProject == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}

	return nil
}

func (c *Config) UsesWooCommerce() bool {
	return c.CatalogSource == CatalogSourceWooCommerce || c.OrderBackend == OrderBackendWooCommerce
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
