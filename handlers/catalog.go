package handlers

import (
	"net/http"

	"clearbook/services/analytics"
	"clearbook/services/coverage"
	"clearbook/services/pricing"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the pricing catalogue, item quotes, and postcode
// coverage checks.
type CatalogHandler struct {
	analytics analytics.Emitter
}

func NewCatalogHandler(emitter analytics.Emitter) *CatalogHandler {
	return &CatalogHandler{analytics: emitter}
}

// ListServices returns the volume-based tiers.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"services":      pricing.Services,
		"minimumCharge": pricing.MinimumCharge,
	})
}

// ListItems returns the per-item catalogue grouped by category.
func (h *CatalogHandler) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories":    pricing.ItemPricing,
		"minimumCharge": pricing.MinimumCharge,
	})
}

// Quote prices an item selection, applying the minimum charge.
func (h *CatalogHandler) Quote(c *gin.Context) {
	var input struct {
		SelectedItems pricing.Selection `json:"selectedItems" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	total := input.SelectedItems.Total()
	h.analytics.TrackCalculatorConversion(map[string]int(input.SelectedItems), total)

	c.JSON(http.StatusOK, gin.H{
		"total":          total,
		"itemCount":      input.SelectedItems.Count(),
		"minimumApplied": input.SelectedItems.MinimumApplied(),
	})
}

// CheckCoverage validates a postcode against the instant-booking areas.
func (h *CatalogHandler) CheckCoverage(c *gin.Context) {
	var input struct {
		Postcode string `json:"postcode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result := coverage.ValidatePostcode(input.Postcode)
	h.analytics.TrackCalculatorInteraction("postcode_check", map[string]any{
		"in_coverage": result.IsValid,
		"area":        result.Area,
	})
	c.JSON(http.StatusOK, result)
}
