package handler

import (
	"strings"

	"dreamtrip/internal/catalog"
	"dreamtrip/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Dependencies are the services the HTTP surface is built on
type Dependencies struct {
	Catalog         *catalog.Catalog
	Recommendations *service.RecommendationService
	Deals           *service.DealService
	Financing       *service.FinancingCalculator
	Customization   *service.CustomizationService
	Build           BuildInfo
	AllowedOrigins  string
}

// NewRouter builds the gin engine with every route registered
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.Default()
	router.Use(RequestID())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = splitOrigins(deps.AllowedOrigins)
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", RequestIDHeader}
	corsConfig.ExposeHeaders = []string{RequestIDHeader}
	router.Use(cors.New(corsConfig))

	healthHandler := NewHealthHandler(deps.Build)
	recommendHandler := NewRecommendHandler(deps.Recommendations)
	dealHandler := NewDealHandler(deps.Deals)
	financingHandler := NewFinancingHandler(deps.Financing)
	customizationHandler := NewCustomizationHandler(deps.Customization)
	catalogHandler := NewCatalogHandler(deps.Catalog)

	router.GET("/health", healthHandler.Health)
	router.GET("/version", healthHandler.Version)

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.APIHealth)

		api.POST("/recommend-model", RecoverJSON(RecommendFailedMessage), recommendHandler.RecommendModel)
		api.POST("/recommendations", RecoverJSON(DealFailedMessage), dealHandler.Recommendations)

		api.POST("/financing/quote", RecoverJSON("Failed to compute financing quote"), financingHandler.Quote)
		api.POST("/customization/price", RecoverJSON("Failed to price customization"), customizationHandler.Price)

		api.GET("/models", catalogHandler.ListModels)
		api.GET("/models/:id", catalogHandler.GetModel)
	}

	router.NoRoute(NotFound)

	return router
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
