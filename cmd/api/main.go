package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"luxestore/internal/adapter/api"
	"luxestore/internal/adapter/api/handler"
	apimiddleware "luxestore/internal/adapter/api/middleware"
	"luxestore/internal/adapter/api/router"
	"luxestore/internal/adapter/repository"
	domainrepo "luxestore/internal/domain/repository"
	"luxestore/internal/domain/service"
	"luxestore/internal/infrastructure/firebase"
	"luxestore/internal/infrastructure/metrics"
	"luxestore/internal/infrastructure/ratelimit"
	"luxestore/internal/infrastructure/redis"
	"luxestore/internal/infrastructure/storage"
	"luxestore/internal/infrastructure/websocket"
	"luxestore/internal/infrastructure/woocommerce"
	"luxestore/internal/usecase"
	"luxestore/pkg/config"
	"luxestore/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opt option.ClientOption
	if cfg.FirebaseServiceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(cfg.FirebaseServiceAccountJSON))
	} else {
		if _, err := os.Stat(cfg.FirebaseServiceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", cfg.FirebaseServiceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", cfg.FirebaseServiceAccountPath)
		opt = option.WithCredentialsFile(cfg.FirebaseServiceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	// Uploads are optional; without a bucket the upload route answers 503.
	var images usecase.ImageStore
	if cfg.StorageBucket != "" {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opt)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
		images = storageClient
	} else {
		logger.Warn("STORAGE_BUCKET not set, image uploads disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	healthChecks := map[string]handler.HealthChecker{}

	var carts domainrepo.CartRepository
	redisClient, err := redis.New(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		carts = repository.NewRedisCartRepository(redisClient, time.Duration(cfg.CartTTLHours)*time.Hour)
		healthChecks["redis"] = redisClient
		log.Printf("Cart mirror stored in Redis")
	} else {
		carts = repository.NewMemoryCartRepository()
		logger.Warn("REDIS_URL not set, carts are kept in memory and lost on restart")
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	settingsRepo := repository.NewFirestoreSettingsRepository(firestoreClient)

	var wcClient *woocommerce.Client
	if cfg.UsesWooCommerce() {
		wcClient = woocommerce.NewClient(cfg.WordPressURL, cfg.WCConsumerKey, cfg.WCConsumerSecret)
	}

	var catalog service.CatalogSource
	switch cfg.CatalogSource {
	case config.CatalogSourceWooCommerce:
		catalog = wcClient
	default:
		catalog = service.NewDocumentCatalog(productRepo)
	}

	var gateway service.OrderGateway
	switch cfg.OrderBackend {
	case config.OrderBackendWooCommerce:
		gateway = woocommerce.NewOrderGateway(wcClient)
	default:
		gateway = service.NewDocumentOrderGateway(orderRepo)
	}
	log.Printf("Catalog source: %s, order backend: %s", cfg.CatalogSource, gateway.Name())

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine(ctx.Done())

	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo, m)
	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	shopUseCase := usecase.NewShopUseCase(catalog, cfg.CatalogSource, carts, userRepo, settingsUseCase, m)
	cartLocks := usecase.NewCartLocks()
	cartUseCase := usecase.NewCartUseCase(catalog, carts, cartLocks, m)
	checkoutUseCase := usecase.NewCheckoutUseCase(carts, cartLocks, userRepo, gateway, wsManager, m)
	accountUseCase := usecase.NewAccountUseCase(userRepo, orderRepo, settingsUseCase)
	productUseCase := usecase.NewProductUseCase(productRepo, images)
	adminUseCase := usecase.NewAdminUseCase(orderRepo, userRepo)

	handler.Setup(
		authUseCase,
		shopUseCase,
		cartUseCase,
		checkoutUseCase,
		accountUseCase,
		settingsUseCase,
		productUseCase,
		adminUseCase,
	)

	healthChecks["firestore"] = handler.HealthCheckFunc(func(ctx context.Context) error {
		_, err := settingsUseCase.Get(ctx)
		return err
	})
	handler.SetupHealthHandler(healthChecks)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	if len(cfg.AllowedOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.AllowedOrigins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, handler.CartHeader},
		}))
	} else {
		e.Use(middleware.CORS())
	}

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware, limiter, router.Options{
		OrdersInStore: cfg.OrderBackend == config.OrderBackendFirestore,
	})
	router.SetupMetricsRouter(e, reg)

	wsHandler := handler.NewWebSocketHandler(wsManager, cfg.AllowedOrigins)
	router.SetupWebSocketRouter(e, wsHandler, authMiddleware, adminMiddleware)

	go func() {
		log.Printf("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Info("Server stopped: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}
