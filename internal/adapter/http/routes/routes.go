package routes

import (
	"context"
	"log"

	_ "omis_backend/docs" // generated by swag
	"omis_backend/internal/adapter/events"
	"omis_backend/internal/adapter/http/handlers"
	"omis_backend/internal/adapter/persistence/repository"
	"omis_backend/internal/infrastructure/config"
	"omis_backend/internal/infrastructure/database"
	"omis_backend/internal/infrastructure/payments"
	"omis_backend/internal/usecase"
	"omis_backend/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

// Run wires the engine together and starts the server.
func Run() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, logger)

	if err := router.Run(cfg.RunAddress); err != nil {
		logger.Fatal("failed to start the server", zap.Error(err))
	}
}

func getRoutes(cfg config.Config, logger *zap.Logger) {
	ddb, err := database.NewDynamoDBClient(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to create dynamodb client", zap.Error(err))
	}

	store := repository.NewOrderDynamoStore(ddb)
	rates := repository.NewHourlyRateDynamoRepository(ddb)
	companies := repository.NewCompanyDynamoDirectory(ddb)

	orderUseCase := usecase.NewOrderUseCase(store, rates, logger)
	assigneeUseCase := usecase.NewAssigneeUseCase(store, rates, logger)
	transitionUseCase := usecase.NewTransitionUseCase(store, rates, companies, logger)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, logger)
	if err != nil {
		logger.Warn("payment gateway not configured; card reconciliation disabled", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	dispatcher := events.NewZapDispatcher(logger)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	assigneeHandler := handlers.NewAssigneeHandler(assigneeUseCase)
	transitionHandler := handlers.NewTransitionHandler(transitionUseCase, dispatcher, paymentGateway, logger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, assigneeHandler, transitionHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
