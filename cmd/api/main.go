package main

import (
	"log"

	"github.com/johnscottcothill/help-hub-order-api/internal/core/config"
	"github.com/johnscottcothill/help-hub-order-api/internal/core/logger"
	"github.com/johnscottcothill/help-hub-order-api/internal/core/server"
	lookupadapter "github.com/johnscottcothill/help-hub-order-api/internal/features/lookup/adapters"
	lookuphandler "github.com/johnscottcothill/help-hub-order-api/internal/features/lookup/handler"
	"github.com/johnscottcothill/help-hub-order-api/internal/features/lookup/ports"
	lookupservice "github.com/johnscottcothill/help-hub-order-api/internal/features/lookup/service"

	"go.uber.org/zap"
)

// @title Help Hub Order API
// @version 1.0
// @description Order lookup backend for the storefront help widget. Verifies a customer's postcode and discloses tracking and purchased items without exposing the Admin token.
// @contact.name API Support
// @contact.email support@johnscottcothill.dev
// @license.name MIT
// @host localhost:3000
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("upstream_protocol", cfg.Shopify.Protocol),
		zap.String("match_mode", cfg.Lookup.MatchMode),
	)

	// Initialize the Admin API source for the configured protocol
	var source ports.OrderSource
	switch cfg.Shopify.Protocol {
	case config.ProtocolGraphQL:
		source = lookupadapter.NewShopifyGraphQLAdapter(cfg.Shopify)
	default:
		source = lookupadapter.NewShopifyRESTAdapter(cfg.Shopify)
	}

	// The proxy boots without credentials and answers "server not configured"
	// per request, so upstream trouble at startup only warns.
	if !cfg.Shopify.Configured() {
		l.Warn("SHOP or ADMIN_TOKEN not set, lookups will answer 'server not configured'")
	} else if checker, ok := source.(ports.HealthChecker); ok {
		if err := checker.HealthCheck(); err != nil {
			l.Warn("Admin API health check failed", zap.Error(err))
		} else {
			l.Info("Admin API connection verified")
		}
	}

	if len(cfg.Origins()) == 0 {
		l.Warn("ALLOWED_ORIGIN is empty, any origin may call this API")
	}

	// Initialize Lookup Service & Handler
	lookupSvc := lookupservice.NewLookupService(source, cfg)
	lookupHdl := lookuphandler.NewLookupHandler(lookupSvc, cfg)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/order-lookup", lookupHdl.Lookup)
	if cfg.Environment != "production" {
		srv.App.Get("/debug/origins", lookupHdl.DebugOrigins)
	}

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
