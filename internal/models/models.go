package models

import (
	"time"
)

// Product - The Inventory
type Product struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	CostPrice     float64    `json:"cost_price"`
	SellingPrice  float64    `json:"selling_price"`
	Stock         int        `json:"stock"`
	MinStockAlert int        `json:"min_stock_alert"`
	Supplier      string     `json:"supplier,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`
	LastSoldAt    *time.Time `json:"last_sold_at,omitempty"`
}

// Margin returns the relative margin of the product. The second return is
// false when the selling price is zero and the margin is undefined.
func (p Product) Margin() (float64, bool) {
	if p.SellingPrice <= 0 {
		return 0, false
	}
	return (p.SellingPrice - p.CostPrice) / p.SellingPrice, true
}

// SaleLine - what the frontend (or the AI parser) requests: a product
// reference plus a quantity, before any price is attached.
type SaleLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SaleItem - a line inside a committed sale. Prices are snapshots taken at
// commit time and never change afterwards, even if the product is re-priced.
type SaleItem struct {
	ProductID   string  `json:"product_id"`
	Quantity    int     `json:"quantity"`
	PriceAtSale float64 `json:"price_at_sale"`
	CostAtSale  float64 `json:"cost_at_sale"`
}

// Sale - The Transaction Header
type Sale struct {
	ID          string     `json:"id"`
	Timestamp   time.Time  `json:"timestamp"`
	Items       []SaleItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	TotalProfit float64    `json:"total_profit"`
}

// Strategy types and impact levels returned by the AI advisor.
const (
	StrategyOffer       = "offer"
	StrategyLiquidation = "liquidation"
	StrategyBundle      = "bundle"

	ImpactHigh   = "high"
	ImpactMedium = "medium"
)

// Strategy - one merchandising suggestion from the AI advisor.
type Strategy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Impact      string `json:"impact"`
}
