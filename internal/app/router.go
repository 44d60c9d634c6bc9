// Package app provides router configuration.
package app

import (
	"context"

	"github.com/raitocraft/craft-service/config"
	"github.com/raitocraft/craft-service/internal/assistant"
	"github.com/raitocraft/craft-service/internal/http"
	"github.com/raitocraft/craft-service/internal/middleware"
	"github.com/raitocraft/craft-service/internal/repository"
	"github.com/raitocraft/craft-service/internal/service"
)

// mongoChecker adapts the MongoDB ping to the readiness probe.
type mongoChecker struct {
	db *repository.MongoDB
}

func (c mongoChecker) Check() error {
	return c.db.HealthCheck(context.Background())
}

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	var recipeService service.RecipeService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		recipeService = service.NewRecipeService(dbComponents.RecipesRepo)
		middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())
	} else {
		recipeService = service.NewRecipeService(nil)
	}

	handler := http.NewHandler(services.Calculation, recipeService)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.Mongo != nil {
			healthHandler.RegisterChecker("mongodb", mongoChecker{db: dbComponents.Mongo})
		}
		if dbComponents.RecipesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_recipes", dbComponents.RecipesCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	// Initialize authentication service
	var authService service.AuthService
	if dbComponents != nil && dbComponents.UserRepo != nil {
		authService = service.NewAuthService(
			dbComponents.UserRepo,
			dbComponents.TokenRepo,
			cfg.Auth,
		)
	}

	// Initialize the assistant: capabilities are always queryable, the
	// chat loop needs a configured provider.
	registry := assistant.NewRegistry()
	assistant.RegisterRecipeCapabilities(registry, recipeService)

	var provider assistant.Provider
	if cfg.Assistant.Enabled && cfg.Assistant.APIKey != "" {
		provider = assistant.NewGeminiProvider(
			cfg.Assistant.APIKey,
			assistant.WithGeminiBaseURL(cfg.Assistant.BaseURL),
			assistant.WithGeminiModel(cfg.Assistant.Model),
		)
	}
	chatService := assistant.NewChatService(
		provider,
		registry,
		assistant.WithMaxFunctionCalls(cfg.Assistant.MaxFunctionCalls),
		assistant.WithSessionTTL(cfg.Assistant.SessionTTL),
	)

	routerCfg := http.RouterConfig{
		RateLimit:          cfg.Server.RateLimit,
		RateWindow:         cfg.Server.RateWindow,
		RequestTimeout:     cfg.Server.RequestTimeout,
		EnableAuth:         cfg.Auth.Enabled,
		APIKeys:            cfg.Auth.APIKeys,
		CORSOrigins:        cfg.Server.CORSOrigins,
		SwaggerUser:        cfg.Server.SwaggerUser,
		SwaggerPass:        cfg.Server.SwaggerPass,
		LoggingService:     loggingService,
		RecipeService:      recipeService,
		CalculationService: services.Calculation,
		AuthService:        authService,
		ChatService:        chatService,
		CapabilityRegistry: registry,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
