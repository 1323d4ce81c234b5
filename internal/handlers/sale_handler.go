package handlers

import (
	"errors"
	"net/http"

	"almacen-pos/internal/ledger"
	"almacen-pos/internal/models"

	"github.com/gin-gonic/gin"
)

// SaleRequest defines what the frontend sends at checkout.
type SaleRequest struct {
	Items []models.SaleLine `json:"items"`
}

// --- POST: Record a sale ---
// Unknown product ids are dropped; a request where every line is unknown is
// rejected whole and nothing changes.
func (h *Handler) ProcessSale(c *gin.Context) {
	var req SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	sale, err := h.Ledger.RecordSale(req.Items)
	if err != nil {
		var verr *ledger.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		case errors.Is(err, ledger.ErrEmptySale):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No sale items could be resolved"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		}
		return
	}

	c.JSON(http.StatusCreated, sale)
}

// --- GET: Sale history, newest first ---
func (h *Handler) GetSales(c *gin.Context) {
	sales := h.Ledger.All()
	for i, j := 0, len(sales)-1; i < j; i, j = i+1, j-1 {
		sales[i], sales[j] = sales[j], sales[i]
	}
	c.JSON(http.StatusOK, sales)
}
