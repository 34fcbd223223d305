package handler

import (
	"net/http"

	"dreamtrip/internal/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the vehicle catalog
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ListModels handles GET /api/models
func (h *CatalogHandler) ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"models":   h.catalog.Models(),
		"packages": h.catalog.Packages(),
		"extras":   h.catalog.Extras(),
		"colors":   h.catalog.Colors(),
	})
}

// GetModel handles GET /api/models/:id. The id may also be a display name.
func (h *CatalogHandler) GetModel(c *gin.Context) {
	m, ok := h.catalog.Resolve(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Model not found"})
		return
	}
	c.JSON(http.StatusOK, m)
}
