package handlers

import (
	"errors"
	"net/http"

	"almacen-pos/internal/catalog"

	"github.com/gin-gonic/gin"
)

// --- GET: List all products ---
func (h *Handler) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.All())
}

// --- POST: Add a new product ---
func (h *Handler) AddProduct(c *gin.Context) {
	var input catalog.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product, err := h.Catalog.Add(input)
	if err != nil {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// --- PUT: Partial product update ---
// Only the fields present in the body change; a stock below zero is clamped.
func (h *Handler) UpdateProduct(c *gin.Context) {
	var patch catalog.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product, err := h.Catalog.Update(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

type restockRequest struct {
	Quantity int `json:"quantity"`
}

// --- POST: Quick restock ---
// The alerts screen's one-tap replenishment. Defaults to +12 units.
func (h *Handler) RestockProduct(c *gin.Context) {
	req := restockRequest{Quantity: 12}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}
	}
	if req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive"})
		return
	}

	product, err := h.Catalog.AdjustStock(c.Param("id"), req.Quantity)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restock product"})
		return
	}

	c.JSON(http.StatusOK, product)
}
