package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"shipping-quote-service/internal/adapters/cache"
	"shipping-quote-service/internal/adapters/calculator"
	"shipping-quote-service/internal/adapters/geocode"
	"shipping-quote-service/internal/adapters/repositories"
	"shipping-quote-service/internal/api"
	"shipping-quote-service/internal/config"
	"shipping-quote-service/internal/platform/db"
	"shipping-quote-service/internal/ports"
	"shipping-quote-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, geocoder, calculator)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8080")
	seedPath := config.Get("SEED_PATH", "data/seeds/companies.json")
	geocoderURL := config.Get("GEOCODER_URL", "https://nominatim.openstreetmap.org")
	geocoderKey := os.Getenv("GEOCODER_API_KEY")
	redisAddr := os.Getenv("REDIS_ADDR")
	geoTTL := config.GetDuration("GEO_CACHE_TTL_SECONDS", 24*60*60)

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	// Initialize schema and seed company data on startup for local runs.
	if err := repositories.InitSchema(pg); err != nil {
		log.Fatal(err)
	}
	if _, err := os.Stat(seedPath); err == nil {
		if err := repositories.SeedFromJSON(pg, seedPath); err != nil {
			log.Fatal(err)
		}
	}

	// Redis is optional: without it the geo chain runs memory->sql and
	// the response cache falls back to in-process.
	var redisClient *redis.Client
	if strings.TrimSpace(redisAddr) != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		defer redisClient.Close()
	}

	var redisGeoTier *cache.RedisGeoCache
	var responseCache ports.ResponseCache = cache.NewMemoryResponseCache()
	if redisClient != nil {
		redisGeoTier = cache.NewRedisGeoCache(redisClient, geoTTL)
		responseCache = cache.NewRedisResponseCache(redisClient)
	}

	geoCache := cache.NewTieredGeoCache(
		cache.NewMemoryGeoCache(),
		redisGeoTier,
		cache.NewSQLGeoStore(pg),
	)

	geocoder, err := geocode.NewHTTPGeocoder(geocoderURL, geocoderKey, 10*time.Second)
	if err != nil {
		log.Fatal(err)
	}

	resolver := services.NewDistanceResolver(geoCache, geocoder)
	calcClient := calculator.NewHTTPCalculatorClient(15 * time.Second)
	orchestrator := services.NewQuoteOrchestrator(
		resolver,
		services.NewFormulaStrategy(),
		services.NewDelegatedCalculatorStrategy(calcClient, responseCache),
	)

	repo := repositories.NewSQLCompanyRepository(pg)
	router := api.NewRouter(repo, orchestrator)

	// Timeouts are tuned for cold-cache quoting (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
