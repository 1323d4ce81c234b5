package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// --- GET: /api/reports/daily ---
// Today's revenue, profit and sale count, plus best sellers and the latest
// transactions for the dashboard.
func (h *Handler) GetDailyReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ledger.DailyReport(time.Now()))
}
