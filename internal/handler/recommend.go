package handler

import (
	"log"
	"net/http"

	"dreamtrip/internal/model"
	"dreamtrip/internal/service"

	"github.com/gin-gonic/gin"
)

// RecommendFailedMessage is the static body of a failed recommendation
const RecommendFailedMessage = "Failed to get recommendation"

// RecommendHandler handles model recommendation requests
type RecommendHandler struct {
	service *service.RecommendationService
}

// NewRecommendHandler creates a new recommend handler
func NewRecommendHandler(svc *service.RecommendationService) *RecommendHandler {
	return &RecommendHandler{service: svc}
}

// RecommendModel handles POST /api/recommend-model
func (h *RecommendHandler) RecommendModel(c *gin.Context) {
	var req model.RecommendRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.service.Recommend(c.Request.Context(), req.Preferences)
	if err != nil {
		log.Printf("Error getting recommendation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": RecommendFailedMessage})
		return
	}

	c.JSON(http.StatusOK, resp)
}
