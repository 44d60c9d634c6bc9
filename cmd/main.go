// Package main is the entry point for the craft-service application.
//
// @title           Craft Service API
// @version         1.0.0
// @description     API for a game-economy crafting profit calculator.
//
//	Users register item recipes, browse and search them, and run cost/profit
//	projections against market prices. An optional LLM-backed assistant answers
//	recipe questions through a fixed set of query capabilities.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/raitocraft/craft-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Recipes
// @tag.description Recipe registry operations
//
// @tag.name        Calculations
// @tag.description Cost and profit calculation operations
//
// @tag.name        Assistant
// @tag.description LLM-backed crafting assistant
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/raitocraft/craft-service/config"
	"github.com/raitocraft/craft-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
