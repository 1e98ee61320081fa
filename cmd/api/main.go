package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	httptransport "github.com/ec-shop/storefront-api/internal/api/http"
	"github.com/ec-shop/storefront-api/internal/api/http/handlers"
	"github.com/ec-shop/storefront-api/internal/auth"
	"github.com/ec-shop/storefront-api/internal/config"
	"github.com/ec-shop/storefront-api/internal/events"
	"github.com/ec-shop/storefront-api/internal/observability"
	"github.com/ec-shop/storefront-api/internal/persistence"
	"github.com/ec-shop/storefront-api/internal/repository"
	"github.com/ec-shop/storefront-api/internal/service"
	"github.com/ec-shop/storefront-api/internal/worker"
)

func main() {
	// Money fields serialize as JSON numbers, matching the storefront client.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger, cfg.Notify))

	tokenMgr := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL())
	sessionMiddleware := auth.NewMiddleware(tokenMgr, cfg.Auth.SecureCookies)

	authService := service.NewAuthService(userRepo, tokenMgr, cfg.Auth.BcryptCost)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(productRepo, categoryRepo, orderRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, userRepo, dispatcher)
	financialService := service.NewFinancialService(orderRepo, redis.Client, logger)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:       handlers.NewAuthHandler(authService, sessionMiddleware),
		Users:      handlers.NewUsersHandler(userService),
		Products:   handlers.NewProductsHandler(catalogService),
		Categories: handlers.NewCategoriesHandler(catalogService),
		Orders:     handlers.NewOrdersHandler(orderService),
		Financial:  handlers.NewFinancialHandler(financialService),
		Pages:      handlers.NewPagesHandler(),
		Session:    sessionMiddleware,
		Gate:       auth.NewGate(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
