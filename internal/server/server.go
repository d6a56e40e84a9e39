package server

import (
	"context"
	"os"

	_ "github.com/cyphera/marketplace-api/docs"
	awsclient "github.com/cyphera/marketplace-api/internal/client/aws"
	"github.com/cyphera/marketplace-api/internal/client/chain"
	httpclient "github.com/cyphera/marketplace-api/internal/client/http"
	"github.com/cyphera/marketplace-api/internal/config"
	"github.com/cyphera/marketplace-api/internal/constants"
	"github.com/cyphera/marketplace-api/internal/handlers"
	"github.com/cyphera/marketplace-api/internal/helpers"
	"github.com/cyphera/marketplace-api/internal/interfaces"
	"github.com/cyphera/marketplace-api/internal/logger"
	"github.com/cyphera/marketplace-api/internal/middleware"
	"github.com/cyphera/marketplace-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var _ interfaces.ChainGateway = (*chain.Gateway)(nil)

var (
	cfg                *config.Config
	gateway            *chain.Gateway
	marketplaceService *services.MarketplaceService
	marketplaceHandler *handlers.MarketplaceHandler
	healthHandler      *handlers.HealthHandler
	rateLimiter        *middleware.RateLimiter
	rpcStats           *httpclient.RPCStats
)

// Default per-client request budget.
const (
	requestsPerSecond = 20
	requestBurst      = 40
)

// InitializeHandlers loads configuration, connects to the chain and wires the
// services and handlers. Any failure is fatal.
func InitializeHandlers() {
	stage := os.Getenv(constants.EnvStage)
	if stage == "" {
		stage = helpers.StageLocal
	}
	logger.InitLogger(stage)

	ctx := context.Background()

	var secrets config.SecretGetter = config.EnvSecrets{}
	if os.Getenv(constants.EnvPrivateKeyARN) != "" {
		smClient, err := awsclient.NewSecretsManagerClient(ctx)
		if err != nil {
			logger.Fatal("Unable to create Secrets Manager client", zap.Error(err))
		}
		secrets = smClient
	}

	var err error
	cfg, err = config.Load(ctx, secrets)
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	rpcStats = httpclient.NewRPCStats()
	rpcHTTP := httpclient.NewHTTPClient(
		httpclient.WithTimeout(cfg.RPCTimeout),
		httpclient.WithDefaultHeader("User-Agent", logger.ServiceName),
		httpclient.WithMetricsCollector(rpcStats),
		httpclient.WithMiddleware(httpclient.LoggingMiddleware()),
	)

	dialCtx, cancel := context.WithTimeout(ctx, cfg.RPCTimeout)
	defer cancel()
	gateway, err = chain.Dial(dialCtx, cfg.RPCURL, rpcHTTP.Client(), chain.Config{
		MarketplaceAddress: cfg.ContractAddress,
		PrivateKey:         cfg.PrivateKey,
		ReceiptTimeout:     cfg.ReceiptTimeout,
	})
	if err != nil {
		logger.Fatal("Unable to connect to chain", zap.Error(err))
	}

	marketplaceService = services.NewMarketplaceService(gateway)
	marketplaceHandler = handlers.NewMarketplaceHandler(marketplaceService)
	healthHandler = handlers.NewHealthHandler(marketplaceService, gateway.ChainID().String())
}

// InitializeRoutes registers middleware and routes on router.
func InitializeRoutes(router *gin.Engine) {
	rateLimiter = middleware.NewRateLimiter(requestsPerSecond, requestBurst)

	router.Use(configureCORS(cfg.CORS))
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())
	router.Use(rateLimiter.Middleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		marketplace := v1.Group("/marketplace")
		{
			marketplace.GET("/items", marketplaceHandler.GetItems)
			marketplace.POST("/list", marketplaceHandler.ListItem)
			marketplace.POST("/listBehalf", marketplaceHandler.ListItemBehalf)
			marketplace.POST("/purchase", marketplaceHandler.PurchaseItem)
			marketplace.POST("/withdraw", marketplaceHandler.WithdrawFunds)
			marketplace.POST("/transfer", marketplaceHandler.Transfer)
			marketplace.GET("/earnings/:address", marketplaceHandler.GetEarnings)
		}
	}
}

// Shutdown releases the chain connection and background workers.
func Shutdown() {
	if rateLimiter != nil {
		rateLimiter.Stop()
	}
	if gateway != nil {
		gateway.Close()
	}
	if rpcStats != nil {
		rpcStats.LogSummary()
	}
	_ = logger.Sync()
}

func configureCORS(c config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = c.AllowedOrigins
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}

	corsConfig.AllowMethods = c.AllowedMethods
	if len(corsConfig.AllowMethods) == 0 {
		corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	}

	corsConfig.AllowHeaders = c.AllowedHeaders
	if len(corsConfig.AllowHeaders) == 0 {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.CorrelationIDHeader}
	}

	corsConfig.ExposeHeaders = append([]string{middleware.CorrelationIDHeader}, c.ExposedHeaders...)
	corsConfig.AllowCredentials = c.AllowCredentials

	return cors.New(corsConfig)
}

// Port is the configured listen port. Valid after InitializeHandlers.
func Port() string {
	return cfg.Port
}
