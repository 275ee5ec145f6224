package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/shelfchef/backend/config"
	httpDelivery "github.com/shelfchef/backend/internal/delivery/http"
	"github.com/shelfchef/backend/internal/domain"
	"github.com/shelfchef/backend/internal/infrastructure/cache"
	"github.com/shelfchef/backend/internal/infrastructure/inventory"
	"github.com/shelfchef/backend/internal/infrastructure/mealdb"
	"github.com/shelfchef/backend/internal/usecase"
)

func main() {
	// Load .env before viper reads the environment
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShelfChef Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	// Initialize infrastructure dependencies
	var cacheRepo domain.CacheRepository
	if cfg.Cache.Type == "redis" {
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		cacheRepo = redisCache
	} else {
		cacheRepo = cache.NewMemoryCache()
	}
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	inventoryStore, err := inventory.NewStore(cfg.Inventory.DataDir)
	if err != nil {
		log.Fatalf("Failed to open inventory store: %v", err)
	}
	defer inventoryStore.Close()
	log.Printf("Inventory store: %s", cfg.Inventory.DataDir)

	catalogClient := mealdb.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		catalogClient.SetDebug(true)
		log.Printf("Catalog client debug mode enabled")
	}
	log.Printf("Recipe catalog: %s", cfg.Catalog.BaseURL)

	// Initialize usecase layer
	matcher := usecase.NewMatcherService(usecase.MatchConfig{
		SimilarityThreshold: cfg.Matching.SimilarityThreshold,
		MinFuzzyLength:      cfg.Matching.MinFuzzyLength,
		EnableDebugLogging:  cfg.Matching.EnableDebugLogging,
	})

	suggestionService := usecase.NewSuggestionService(
		cacheRepo,
		catalogClient,
		matcher,
		usecase.SuggestionConfig{CacheTTL: cfg.Cache.TTL},
	)

	reconcileService := usecase.NewReconcileService(inventoryStore, matcher)

	log.Printf("Matching: threshold=%.2f, min_fuzzy_len=%d, debug=%v",
		cfg.Matching.SimilarityThreshold,
		cfg.Matching.MinFuzzyLength,
		cfg.Matching.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(suggestionService, reconcileService, matcher, inventoryStore)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
