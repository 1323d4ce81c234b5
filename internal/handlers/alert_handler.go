package handlers

import (
	"net/http"

	"almacen-pos/internal/alerts"
	"almacen-pos/internal/models"

	"github.com/gin-gonic/gin"
)

// LowMarginAlert pairs a product with its margin and a repaired price.
type LowMarginAlert struct {
	Product        models.Product `json:"product"`
	Margin         float64        `json:"margin"`
	SuggestedPrice float64        `json:"suggested_price"`
}

// AlertsResponse is the alerts screen payload. Count is additive: a product
// that is both low-stock and low-margin counts twice, matching the badge.
type AlertsResponse struct {
	LowStock  []models.Product `json:"low_stock"`
	LowMargin []LowMarginAlert `json:"low_margin"`
	Count     int              `json:"count"`
}

// --- GET: Low-stock and low-margin alerts ---
func (h *Handler) GetAlerts(c *gin.Context) {
	lowStock := h.Alerts.LowStock()
	lowMargin := h.Alerts.LowMargin()

	resp := AlertsResponse{
		LowStock:  lowStock,
		LowMargin: make([]LowMarginAlert, 0, len(lowMargin)),
		Count:     len(lowStock) + len(lowMargin),
	}
	for _, p := range lowMargin {
		margin, _ := p.Margin()
		resp.LowMargin = append(resp.LowMargin, LowMarginAlert{
			Product:        p,
			Margin:         margin,
			SuggestedPrice: alerts.SuggestedPrice(p),
		})
	}

	c.JSON(http.StatusOK, resp)
}
