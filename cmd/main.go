package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	geoapp "github.com/muhammadheryan/hub-fulfillment/application/geo"
	hubapp "github.com/muhammadheryan/hub-fulfillment/application/hub"
	inventoryapp "github.com/muhammadheryan/hub-fulfillment/application/inventory"
	notificationapp "github.com/muhammadheryan/hub-fulfillment/application/notification"
	orderapp "github.com/muhammadheryan/hub-fulfillment/application/order"
	productapp "github.com/muhammadheryan/hub-fulfillment/application/product"
	restockapp "github.com/muhammadheryan/hub-fulfillment/application/restock"
	routeapp "github.com/muhammadheryan/hub-fulfillment/application/route"
	userapp "github.com/muhammadheryan/hub-fulfillment/application/user"
	"github.com/muhammadheryan/hub-fulfillment/cmd/config"
	redisclient "github.com/muhammadheryan/hub-fulfillment/cmd/redis"
	_ "github.com/muhammadheryan/hub-fulfillment/docs"
	hubRepo "github.com/muhammadheryan/hub-fulfillment/repository/hub"
	inventoryRepo "github.com/muhammadheryan/hub-fulfillment/repository/inventory"
	orderRepo "github.com/muhammadheryan/hub-fulfillment/repository/order"
	productRepo "github.com/muhammadheryan/hub-fulfillment/repository/product"
	redisRepo "github.com/muhammadheryan/hub-fulfillment/repository/redis"
	restockRepo "github.com/muhammadheryan/hub-fulfillment/repository/restock"
	txRepo "github.com/muhammadheryan/hub-fulfillment/repository/tx"
	userRepo "github.com/muhammadheryan/hub-fulfillment/repository/user"
	"github.com/muhammadheryan/hub-fulfillment/thirdparty/rabbitmq"
	"github.com/muhammadheryan/hub-fulfillment/transport"
	"github.com/muhammadheryan/hub-fulfillment/utils/logger"
	"go.uber.org/zap"
)

// @title HUB FULFILLMENT API
// @version 1.0
// @description Hub-routed order fulfillment: ledger, restocks, routing and hand-off
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Without a broker the service still runs: notifications are only logged and
	// pending orders are picked up by the periodic sweep.
	var (
		notificationPublisher notificationapp.Publisher
		restockPublisher      restockapp.EventPublisher
	)
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq publisher unavailable", zap.Error(err))
	} else {
		notificationPublisher, restockPublisher = publisher, publisher
		defer publisher.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()
	HubRepo := hubRepo.NewHubRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	RestockRepo := restockRepo.NewRestockRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ProductApp := productapp.NewProductApp(ProductRepo)
	HubApp := hubapp.NewHubApp(cfg, HubRepo, InventoryRepo, RedisRepo)
	GeoApp := geoapp.NewGeoApp(HubRepo)
	RouteApp := routeapp.NewRouteApp(HubApp, GeoApp)
	InventoryApp := inventoryapp.NewInventoryApp(cfg, TxRepo, InventoryRepo)
	NotificationApp := notificationapp.NewNotificationApp(notificationPublisher)
	RestockApp := restockapp.NewRestockApp(cfg, TxRepo, RestockRepo, InventoryApp, HubApp, restockPublisher)
	OrderApp := orderapp.NewOrderApp(cfg, TxRepo, OrderRepo, ProductRepo, InventoryApp, RestockApp, RouteApp, HubApp, NotificationApp)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		orderapp.OnRestockFulfilled(OrderApp))
	if err != nil {
		logger.Warn("rabbitmq consumer unavailable", zap.Error(err))
	} else {
		defer consumer.Close()
		if err := consumer.Start(ctx); err != nil {
			logger.Warn("rabbitmq consumer start failed", zap.Error(err))
		}
	}

	go orderapp.NewSweeper(OrderApp, cfg.Fulfillment.SweepInterval).Run(ctx)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		UserApp:      UserApp,
		ProductApp:   ProductApp,
		OrderApp:     OrderApp,
		HubApp:       HubApp,
		InventoryApp: InventoryApp,
		RestockApp:   RestockApp,
	}, cfg.Auth.InternalAPIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("Server stopped")
}
