package handler

import (
	"log"
	"net/http"

	"dreamtrip/internal/model"
	"dreamtrip/internal/service"

	"github.com/gin-gonic/gin"
)

// DealFailedMessage is the static body of a failed deal computation
const DealFailedMessage = "Failed to get recommendations"

// DealHandler handles upsell/downsell requests
type DealHandler struct {
	service *service.DealService
}

// NewDealHandler creates a new deal handler
func NewDealHandler(svc *service.DealService) *DealHandler {
	return &DealHandler{service: svc}
}

// Recommendations handles POST /api/recommendations
func (h *DealHandler) Recommendations(c *gin.Context) {
	var req model.DealRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.service.Recommendations(c.Request.Context(), req.JourneyData)
	if err != nil {
		log.Printf("Error getting deal recommendations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": DealFailedMessage})
		return
	}

	c.JSON(http.StatusOK, resp)
}
