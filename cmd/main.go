package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	ledgerapp "github.com/muhammadheryan/inventory-tracker/application/ledger"
	orchestratorapp "github.com/muhammadheryan/inventory-tracker/application/orchestrator"
	productapp "github.com/muhammadheryan/inventory-tracker/application/product"
	requestapp "github.com/muhammadheryan/inventory-tracker/application/request"
	saleapp "github.com/muhammadheryan/inventory-tracker/application/sale"
	transferapp "github.com/muhammadheryan/inventory-tracker/application/transfer"
	"github.com/muhammadheryan/inventory-tracker/cmd/config"
	redisclient "github.com/muhammadheryan/inventory-tracker/cmd/redis"
	_ "github.com/muhammadheryan/inventory-tracker/docs"
	"github.com/muhammadheryan/inventory-tracker/model"
	ledgerRepo "github.com/muhammadheryan/inventory-tracker/repository/ledger"
	locationRepo "github.com/muhammadheryan/inventory-tracker/repository/location"
	productRepo "github.com/muhammadheryan/inventory-tracker/repository/product"
	redisRepo "github.com/muhammadheryan/inventory-tracker/repository/redis"
	requestRepo "github.com/muhammadheryan/inventory-tracker/repository/request"
	saleRepo "github.com/muhammadheryan/inventory-tracker/repository/sale"
	transferRepo "github.com/muhammadheryan/inventory-tracker/repository/transfer"
	txRepo "github.com/muhammadheryan/inventory-tracker/repository/tx"
	"github.com/muhammadheryan/inventory-tracker/thirdparty/rabbitmq"
	"github.com/muhammadheryan/inventory-tracker/transport"
	"github.com/muhammadheryan/inventory-tracker/utils/logger"
	"go.uber.org/zap"
)

// @title INVENTORY TRACKER API
// @version 1.0
// @description Multi-location retail inventory ledger and workflow API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
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

	// Snapshot cache is optional infrastructure, the database stays
	// authoritative when Redis is down.
	if err := redisclient.New(cfg); err != nil {
		logger.Error("err connect redis, snapshot cache disabled", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	LedgerRepo := ledgerRepo.NewLedgerRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	LocationRepo := locationRepo.NewLocationRepository(db)
	RequestRepo := requestRepo.NewRequestRepository(db)
	TransferRepo := transferRepo.NewTransferRepository(db)
	SaleRepo := saleRepo.NewSaleRepository(db)
	SnapshotCache := redisRepo.NewSnapshotCache()

	// Initialize application layers
	LedgerApp := ledgerapp.NewLedgerApp(cfg, TxRepo, LedgerRepo, SnapshotCache)
	ProductApp := productapp.NewProductApp(ProductRepo, LedgerRepo)
	RequestApp := requestapp.NewRequestApp(TxRepo, RequestRepo, ProductRepo)
	TransferApp := transferapp.NewTransferApp(TxRepo, TransferRepo, RequestRepo, LocationRepo, LedgerRepo, LedgerApp, SnapshotCache)
	SaleApp := saleapp.NewSaleApp(TxRepo, SaleRepo, LedgerRepo, SnapshotCache)

	// Event publisher is optional infrastructure: a broker outage must not
	// take the ledger down with it.
	var publisher orchestratorapp.EventPublisher
	rmq, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Error("err connect rabbitmq, events disabled", zap.Error(err))
	} else {
		publisher = rmq
		defer rmq.Close()
	}

	Orchestrator := orchestratorapp.New(cfg, LedgerApp, RequestApp, TransferApp, SaleApp, publisher)

	// Notification consumer drains the event queue and logs each event.
	// Real notification fan-out (email, push) hangs off this handler.
	if rmq != nil {
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
			func(event *model.Event) error {
				logger.Info("inventory event",
					zap.String("type", string(event.Type)),
					zap.Uint64("location_id", event.LocationID),
					zap.Uint64("product_id", event.ProductID),
					zap.Int64("available", event.Available))
				return nil
			})
		if err != nil {
			logger.Error("err start consumer", zap.Error(err))
		} else {
			defer consumer.Close()
			if err := consumer.Start(context.Background()); err != nil {
				logger.Error("err consume events", zap.Error(err))
			}
		}
	}

	httpTransport := transport.NewTransport(Orchestrator, ProductApp, cfg.JWT.Secret, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
