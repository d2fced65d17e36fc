// Package main provides the blueblazer command line tool that prints
// randomly generated mixed drink recipes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cnelsonsic/blueblazer/internal/bar/mix"
	"github.com/cnelsonsic/blueblazer/internal/bar/recipe"
	"github.com/cnelsonsic/blueblazer/internal/bar/shelf"
	"github.com/cnelsonsic/blueblazer/internal/config"
	"github.com/cnelsonsic/blueblazer/internal/observability"
)

func main() {
	// A .env file is optional; flags and real environment variables win.
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to configuration file (optional)")
	ingredientsPath := flag.String("ingredients", "", "path to ingredients YAML (overrides config)")
	glassName := flag.String("glass", "", "glass to pour: cocktail, highball, old-fashioned, or random (overrides config)")
	seed := flag.String("seed", "", "integer seed for reproducible drinks (default: unpredictable)")
	count := flag.Int("count", 1, "number of drinks to mix")
	flag.Parse()

	if *count < 1 {
		fmt.Fprintln(os.Stderr, "usage: blueblazer [-config <file>] [-ingredients <file>] [-glass <name>] [-seed <n>] [-count <n>]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if *ingredientsPath != "" {
		cfg.Bar.IngredientsPath = *ingredientsPath
	}
	if *glassName != "" {
		cfg.Bar.DefaultGlass = *glassName
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
	logger.Debug("shelf stocked", zap.Int("ingredients", sh.Len()))

	var src mix.Source
	if *seed != "" {
		n, err := strconv.ParseInt(*seed, 10, 64)
		if err != nil {
			logger.Fatal("invalid seed: want an integer", zap.String("seed", *seed))
		}
		src = mix.NewSeededSource(n)
	} else {
		src = mix.NewBarSource()
	}

	mixer := mix.NewMixer(sh, src, cfg.Bar.RatioPrecision, logger)

	for i := 0; i < *count; i++ {
		glass, err := mix.ResolveGlass(cfg.Bar.DefaultGlass, src)
		if err != nil {
			logger.Fatal("choosing a glass", zap.Error(err))
		}

		drink, total, err := mixer.Mix(glass)
		if err != nil {
			logger.Fatal("mixing drink", zap.Error(err))
		}

		if i > 0 {
			fmt.Println()
		}
		fmt.Print(recipe.Render(drink, glass, total))
	}
}
