package handler

import (
	"net/http"

	"dreamtrip/internal/model"
	"dreamtrip/internal/service"

	"github.com/gin-gonic/gin"
)

// FinancingHandler handles payment quotes
type FinancingHandler struct {
	calculator *service.FinancingCalculator
}

// NewFinancingHandler creates a new financing handler
func NewFinancingHandler(calc *service.FinancingCalculator) *FinancingHandler {
	return &FinancingHandler{calculator: calc}
}

// Quote handles POST /api/financing/quote
func (h *FinancingHandler) Quote(c *gin.Context) {
	var req model.FinancingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	quote, err := h.calculator.Quote(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, quote)
}
