package routes

import (
	"context"
	"time"

	"travel_budget/internal/adapter/http/handlers"
	"travel_budget/internal/adapter/http/middleware"
	"travel_budget/internal/adapter/persistence/repository"
	"travel_budget/internal/config"
	"travel_budget/internal/infrastructure/database"
	"travel_budget/internal/infrastructure/exchangerates"
	"travel_budget/internal/infrastructure/messaging"
	"travel_budget/internal/infrastructure/monitoring"
	"travel_budget/internal/usecase"
	"travel_budget/internal/usecase/interfaces"
	"travel_budget/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const bootstrapTimeout = 10 * time.Second

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.Load()
	log := logger.L()
	defer logger.Sync()

	sentryEnabled, err := monitoring.InitSentry(cfg)
	if err != nil {
		log.Warn("[boot] sentry not configured", zap.Error(err))
	}
	if sentryEnabled {
		defer monitoring.Flush()
	}

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	closeFn := getRoutes(cfg, log)
	defer closeFn()

	log.Info("[boot] listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func getRoutes(cfg *config.Config, log *zap.Logger) (closeFn func()) {
	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	defer cancel()

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		log.Fatal("failed to create dynamodb client", zap.Error(err))
	}

	budgetRepo := repository.NewBudgetDynamoRepository(ddb, cfg.BudgetsTable, cfg.BudgetsEmailIndex, cfg.AreaBudgetsTable)
	areaRepo := repository.NewAreaBudgetDynamoRepository(ddb, cfg.AreaBudgetsTable)
	rateConfigRepo := repository.NewExchangeRateConfigDynamoRepository(ddb, cfg.RateConfigsTable)
	userRepo := repository.NewUserDynamoRepository(ddb, cfg.UserProfilesTable)

	closeFn = func() {}
	var events interfaces.IBudgetEventPublisher
	if cfg.AMQPURL != "" {
		publisher, err := messaging.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, log)
		if err != nil {
			log.Warn("[boot] budget events disabled", zap.Error(err))
		} else {
			events = publisher
			closeFn = func() { _ = publisher.Close() }
		}
	}

	rateClient := exchangerates.NewClient(cfg.RatesHTTPTimeout, cfg.RatesHTTPRetries, log)

	exchangeRateUseCase := usecase.NewExchangeRateUseCase(rateConfigRepo, rateClient, log)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, areaRepo, exchangeRateUseCase, events, log)
	areaUseCase := usecase.NewAreaUseCase(areaRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(budgetRepo, areaRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, log)

	if cfg.BootstrapAdminID != "" {
		if _, err := userUseCase.EnsureAdmin(ctx, cfg.BootstrapAdminID, cfg.BootstrapAdminEmail); err != nil {
			log.Error("[boot] bootstrap admin not provisioned", zap.String("user_id", cfg.BootstrapAdminID), zap.Error(err))
		}
	}

	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	areaHandler := handlers.NewAreaHandler(areaUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	exchangeRateHandler := handlers.NewExchangeRateHandler(exchangeRateUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Everything else requires an identity asserted by the auth proxy.
	authed := v1.Group("", middleware.Authenticate(userUseCase))
	addBudgetRoutes(authed, budgetHandler, dashboardHandler)
	addAdminRoutes(authed, areaHandler, exchangeRateHandler, userHandler)
	return closeFn
}

func setMiddlewares(log *zap.Logger) {
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
}
