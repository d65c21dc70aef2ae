package main

import (
	"net/http"

	checkoutapp "github.com/codefanw/mall-backend/application/checkout"
	commentapp "github.com/codefanw/mall-backend/application/comment"
	orderapp "github.com/codefanw/mall-backend/application/order"
	productapp "github.com/codefanw/mall-backend/application/product"
	promotionapp "github.com/codefanw/mall-backend/application/promotion"
	userapp "github.com/codefanw/mall-backend/application/user"
	"github.com/codefanw/mall-backend/cmd/config"
	redisclient "github.com/codefanw/mall-backend/cmd/redis"
	_ "github.com/codefanw/mall-backend/docs"
	campaignRepo "github.com/codefanw/mall-backend/repository/campaign"
	commentRepo "github.com/codefanw/mall-backend/repository/comment"
	orderRepo "github.com/codefanw/mall-backend/repository/order"
	productRepo "github.com/codefanw/mall-backend/repository/product"
	redisRepo "github.com/codefanw/mall-backend/repository/redis"
	txRepo "github.com/codefanw/mall-backend/repository/tx"
	userRepo "github.com/codefanw/mall-backend/repository/user"
	"github.com/codefanw/mall-backend/thirdparty/rabbitmq"
	"github.com/codefanw/mall-backend/transport"
	"github.com/codefanw/mall-backend/utils/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title MALL BACKEND API
// @version 1.0
// @description Storefront and promotion engine API Documentation
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

	// Connect to RabbitMQ
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()
	TxRepo := txRepo.NewTxRepository(db)
	CampaignRepo := campaignRepo.NewCampaignRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	CommentRepo := commentRepo.NewCommentRepository(db)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ProductApp := productapp.NewProductApp(ProductRepo)
	PromotionApp := promotionapp.NewPromotionApp(cfg, TxRepo, CampaignRepo, RedisRepo)
	CheckoutApp := checkoutapp.NewCheckoutApp(PromotionApp, TxRepo, OrderRepo, publisher)
	OrderApp := orderapp.NewOrderApp(OrderRepo, UserRepo)
	CommentApp := commentapp.NewCommentApp(CommentRepo, UserRepo, ProductRepo)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		UserApp:      UserApp,
		ProductApp:   ProductApp,
		PromotionApp: PromotionApp,
		CheckoutApp:  CheckoutApp,
		OrderApp:     OrderApp,
		CommentApp:   CommentApp,
	}, cfg.Auth.InternalAPIKey)

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
