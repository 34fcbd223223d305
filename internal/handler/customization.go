package handler

import (
	"errors"
	"net/http"

	"dreamtrip/internal/model"
	"dreamtrip/internal/service"

	"github.com/gin-gonic/gin"
)

// CustomizationHandler handles configuration pricing
type CustomizationHandler struct {
	service *service.CustomizationService
}

// NewCustomizationHandler creates a new customization handler
func NewCustomizationHandler(svc *service.CustomizationService) *CustomizationHandler {
	return &CustomizationHandler{service: svc}
}

// Price handles POST /api/customization/price
func (h *CustomizationHandler) Price(c *gin.Context) {
	var req model.CustomizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	quote, err := h.service.Price(req)
	switch {
	case errors.Is(err, service.ErrUnknownModel):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, quote)
}
