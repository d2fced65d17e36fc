// Package main provides the blueblazer HTTP server that serves generated
// drink recipes as plain text.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cnelsonsic/blueblazer/internal/bar/shelf"
	"github.com/cnelsonsic/blueblazer/internal/config"
	"github.com/cnelsonsic/blueblazer/internal/httpd"
	"github.com/cnelsonsic/blueblazer/internal/observability"
	"github.com/cnelsonsic/blueblazer/internal/server"
)

func main() {
	start := time.Now()

	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to configuration file (optional)")
	ingredientsPath := flag.String("ingredients", "", "path to ingredients YAML (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting blueblazer http server",
		zap.String("http_addr", cfg.HTTP.Addr()),
	)

	if *ingredientsPath != "" {
		cfg.Bar.IngredientsPath = *ingredientsPath
	}

	var sh *shelf.Shelf
	if cfg.Bar.IngredientsPath != "" {
		sh, err = shelf.LoadFromFile(cfg.Bar.IngredientsPath)
	} else {
		sh, err = shelf.LoadDefault()
	}
	if err != nil {
		logger.Fatal("loading ingredients", zap.Error(err))
	}
	logger.Info("shelf stocked", zap.Int("ingredients", sh.Len()))

	// Build services
	handler := httpd.NewRecipeHandler(cfg.Bar, sh, logger)
	router := httpd.NewRouter(handler, logger)
	httpServer := httpd.NewServer(cfg.HTTP, router, logger)

	// Wire lifecycle
	lifecycle := server.NewLifecycle(logger)

	lifecycle.Add("http", &server.FuncService{
		StartFn: func() error {
			return httpServer.ListenAndServe()
		},
		StopFn: func() {
			httpServer.Stop()
		},
	})

	logger.Info("http server initialized",
		zap.Duration("startup", time.Since(start)),
		zap.String("http_addr", cfg.HTTP.Addr()),
	)

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
