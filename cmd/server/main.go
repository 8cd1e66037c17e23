package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"storefront-service/internal/config"
	handlers "storefront-service/internal/controllers/http"
	"storefront-service/internal/infra/logging"
	mmysql "storefront-service/internal/infra/mysql"
	"storefront-service/internal/infra/rabbitmq"
	rcache "storefront-service/internal/infra/redis"
	"storefront-service/internal/repository"
	"storefront-service/internal/repository/memory"
	mysqlrepo "storefront-service/internal/repository/mysql"
	"storefront-service/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type repositories struct {
	products  repository.ProductRepository
	orders    repository.OrderRepository
	inventory repository.InventoryRepository
}

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	repos, err := newRepositories(cfg, logger)
	if err != nil {
		logger.Fatal("failed to init store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}

	var publisher rabbitmq.PublisherInterface = rabbitmq.NopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, logger)
		if err != nil {
			logger.Fatal("failed to init publisher", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	} else {
		logger.Info("RABBITMQ_URL not set, events are dropped")
	}

	events := services.NewEventDispatcher(publisher, logger)
	productService := services.NewProductService(repos.products, events, logger)
	orderService := services.NewOrderService(repos.orders, events, logger)
	inventoryService := services.NewInventoryService(repos.inventory, events, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Redis.Addr != "" {
		redisClient := rcache.NewClient(cfg.Redis)
		defer redisClient.Close()
		productService.SetCache(rcache.NewProductCache(redisClient, cfg.Redis.ProductCacheTTL))

		if len(cfg.Redis.WarmupIDs) > 0 {
			go func() {
				if err := productService.WarmupCache(ctx, cfg.Redis.WarmupIDs); err != nil {
					logger.Warn("failed to warm up cache", zap.Error(err))
					return
				}
				logger.Info("cache warmed up", zap.Int("products", len(cfg.Redis.WarmupIDs)))
			}()
		}
	}

	handler := handlers.NewHandler(productService, orderService, inventoryService, logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.CorrelationID(), handlers.RequestLogger(logger), handlers.CORS(cfg.AllowedOrigins))

	handler.RegisterRoutes(r, cfg.APIBasePath)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting storefront service", zap.String("port", cfg.Port), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server run", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}

	events.Wait()
}

func newRepositories(cfg config.Config, logger *zap.Logger) (repositories, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return repositories{
			products:  memory.NewProductRepository(),
			orders:    memory.NewOrderRepository(),
			inventory: memory.NewInventoryRepository(),
		}, nil
	default:
		db, err := mmysql.NewMySQL(cfg.MySQL)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			products:  mysqlrepo.NewProductRepository(db, logger),
			orders:    mysqlrepo.NewOrderRepository(db, logger),
			inventory: mysqlrepo.NewInventoryRepository(db, logger),
		}, nil
	}
}
