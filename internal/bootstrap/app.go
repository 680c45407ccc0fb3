package bootstrap

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/linksheet/internal/config"
	"github.com/linksheet/internal/handler"
	"github.com/linksheet/internal/logger"
	"github.com/linksheet/internal/service"
)

type App struct {
	Echo *echo.Echo
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// Initialize dependencies
	linkSvc, err := service.NewExcelLinkService()
	if err != nil {
		return fmt.Errorf("failed to initialize excel link service: %w", err)
	}
	excelHandler := handler.NewExcelHandler(linkSvc, config.DefaultEnvConfig.ProcessingOptions())
	healthHandler := handler.NewHealthHandler()

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	a.RegisterRoutes(excelHandler, healthHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
	a.Echo.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(
		rate.Limit(config.DefaultEnvConfig.RATE_LIMIT_PER_SECOND))))
}

func (a *App) RegisterRoutes(excelHandler *handler.ExcelHandler, healthHandler *handler.HealthHandler) {
	a.Echo.GET("/health", healthHandler.HealthCheckHandler)

	excelGroup := a.Echo.Group("/api/excel")
	excelGroup.POST("/extract", excelHandler.ExtractHandler)
	excelGroup.POST("/merge", excelHandler.MergeHandler)
	excelGroup.GET("/template/extraction", excelHandler.ExtractionTemplateHandler)
	excelGroup.GET("/template/merge", excelHandler.MergeTemplateHandler)
}

func (a *App) Run() error {
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
