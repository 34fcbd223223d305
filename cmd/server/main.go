package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dreamtrip/internal/config"
	"dreamtrip/internal/handler"
	"dreamtrip/internal/service"

	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("Dream Trip Backend")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	ctx := context.Background()

	cat, err := loadCatalog(&cfg.Catalog)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	journal, err := openJournal(cfg)
	if err != nil {
		log.Fatalf("Failed to open journal: %v", err)
	}
	defer journal.Close()

	cache, closeCache := openCache(ctx, &cfg.Cache)
	defer closeCache()

	narrator, err := service.NewGeminiNarrator(ctx, &cfg.Gemini)
	if err != nil {
		log.Printf("Warning: %v, falling back to template explanations", err)
		narrator = &service.GeminiNarrator{}
	}
	defer narrator.Close()

	if narrator.IsEnabled() {
		log.Printf("✅ Gemini narrator initialized")
		log.Printf("   - Model: %s", cfg.Gemini.Model)
		log.Printf("   - Timeout: %ds", cfg.Gemini.Timeout)
	} else {
		log.Println("⚠️  Gemini is disabled - explanations use the catalog templates")
		log.Println("   Set GEMINI_API_KEY environment variable to enable narrated explanations")
	}

	// Initialize services
	policy := service.DealPolicy{
		UpsellThreshold:     cfg.Deal.UpsellThreshold,
		UpsellCap:           cfg.Deal.UpsellCap,
		DownsellThreshold:   cfg.Deal.DownsellThreshold,
		DownsellCap:         cfg.Deal.DownsellCap,
		ReferenceTermMonths: cfg.Deal.ReferenceTermMonths,
	}
	recommendationService := service.NewRecommendationService(cat, narrator, journal, cache)
	dealService := service.NewDealService(service.NewDealCalculator(policy, cat), journal)

	log.Println("✅ Services initialized")

	router := handler.NewRouter(handler.Dependencies{
		Catalog:         cat,
		Recommendations: recommendationService,
		Deals:           dealService,
		Financing:       service.NewFinancingCalculator(),
		Customization:   service.NewCustomizationService(cat),
		Build:           handler.BuildInfo{Version: Version, BuildTime: BuildTime, GitCommit: GitCommit},
		AllowedOrigins:  cfg.Server.AllowedOrigins,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 API: http://localhost:%d/api", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Failed to start server: %v", err)
		return
	case <-quit:
		log.Println("🛑 Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("✅ Server stopped")
}
