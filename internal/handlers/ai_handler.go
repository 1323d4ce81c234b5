package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) requireGateway(c *gin.Context) bool {
	if h.Gateway == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI assistant is not configured"})
		return false
	}
	return true
}

type parseSaleRequest struct {
	Message string `json:"message" binding:"required"`
}

// --- POST: Parse a free-text sale description into line items ---
func (h *Handler) ParseSale(c *gin.Context) {
	if !h.requireGateway(c) {
		return
	}

	var req parseSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	items := h.Gateway.ParseSaleText(c.Request.Context(), req.Message, h.Catalog.All())
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type parseSaleImageRequest struct {
	Image    string `json:"image" binding:"required"` // base64
	MimeType string `json:"mime_type"`
}

// --- POST: Parse a photo of the sale into line items ---
func (h *Handler) ParseSaleImage(c *gin.Context) {
	if !h.requireGateway(c) {
		return
	}

	var req parseSaleImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
		return
	}
	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image must be base64 encoded"})
		return
	}

	items := h.Gateway.ParseSaleImage(c.Request.Context(), image, req.MimeType, h.Catalog.All())
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --- GET: Short advisory strings for the dashboard ---
func (h *Handler) GetInsights(c *gin.Context) {
	if !h.requireGateway(c) {
		return
	}

	insights := h.Gateway.Insights(c.Request.Context(), h.Ledger.All(), h.Catalog.All())
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// --- GET: Merchandising strategies ---
func (h *Handler) GetStrategies(c *gin.Context) {
	if !h.requireGateway(c) {
		return
	}

	strategies := h.Gateway.Strategies(c.Request.Context(), h.Catalog.All(), h.Ledger.All())
	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}
