package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	invoiceapp "github.com/hanifmaulana/quotedesk/application/invoice"
	orderapp "github.com/hanifmaulana/quotedesk/application/order"
	productapp "github.com/hanifmaulana/quotedesk/application/product"
	quoteapp "github.com/hanifmaulana/quotedesk/application/quote"
	userapp "github.com/hanifmaulana/quotedesk/application/user"
	"github.com/hanifmaulana/quotedesk/cmd/config"
	redisclient "github.com/hanifmaulana/quotedesk/cmd/redis"
	_ "github.com/hanifmaulana/quotedesk/docs"
	invoiceRepo "github.com/hanifmaulana/quotedesk/repository/invoice"
	orderRepo "github.com/hanifmaulana/quotedesk/repository/order"
	productRepo "github.com/hanifmaulana/quotedesk/repository/product"
	quoteRepo "github.com/hanifmaulana/quotedesk/repository/quote"
	redisRepo "github.com/hanifmaulana/quotedesk/repository/redis"
	stockRepo "github.com/hanifmaulana/quotedesk/repository/stock"
	txRepo "github.com/hanifmaulana/quotedesk/repository/tx"
	userRepo "github.com/hanifmaulana/quotedesk/repository/user"
	"github.com/hanifmaulana/quotedesk/thirdparty/rabbitmq"
	"github.com/hanifmaulana/quotedesk/transport"
	"github.com/hanifmaulana/quotedesk/utils/logger"
)

// @title QUOTEDESK API
// @version 1.0
// @description Quote editing and shortage reconciliation API
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
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// RabbitMQ publisher for delayed order expiration and quote events
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	QuoteRepo := quoteRepo.NewQuoteRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	StockRepo := stockRepo.NewStockRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	InvoiceRepo := invoiceRepo.NewInvoiceRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	QuoteApp := quoteapp.NewQuoteApp(cfg, TxRepo, QuoteRepo, ProductRepo, StockRepo, RedisRepo, publisher)
	OrderApp := orderapp.NewOrderApp(cfg, TxRepo, QuoteRepo, OrderRepo, StockRepo, publisher)
	ProductApp := productapp.NewProductApp(ProductRepo)
	InvoiceApp := invoiceapp.NewInvoiceApp(TxRepo, QuoteRepo, InvoiceRepo, publisher)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		UserApp:    UserApp,
		QuoteApp:   QuoteApp,
		OrderApp:   OrderApp,
		ProductApp: ProductApp,
		InvoiceApp: InvoiceApp,
	}, cfg.Internal.APIKey)

	// Expiration consumer loops until the process exits
	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		"http://localhost:"+cfg.Server.Port, cfg.Internal.APIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()
	go func() {
		if err := consumer.Start(context.Background()); err != nil {
			logger.Error("expiration consumer stopped", zap.Error(err))
		}
	}()

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
