package ledger

import (
	"sort"
	"time"

	"almacen-pos/internal/models"
)

// TopSeller is one row of the best-sellers ranking.
type TopSeller struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Sold        int     `json:"sold"`
	Revenue     float64 `json:"revenue"`
}

// DailyReport is the dashboard payload: today's figures plus all-time
// best sellers and the latest transactions.
type DailyReport struct {
	Revenue     float64       `json:"revenue"`
	Profit      float64       `json:"profit"`
	SalesCount  int           `json:"sales_count"`
	TopSelling  []TopSeller   `json:"top_selling"`
	RecentSales []models.Sale `json:"recent_sales"`
}

// DailyReport computes the report as of now. "Today" starts at local
// midnight of now.
func (l *Ledger) DailyReport(now time.Time) DailyReport {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	names := make(map[string]string)
	for _, p := range l.catalog.All() {
		names[p.ID] = p.Name
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	var report DailyReport
	sold := make(map[string]*TopSeller)
	for _, sale := range l.sales {
		if !sale.Timestamp.Before(startOfDay) {
			report.Revenue += sale.TotalAmount
			report.Profit += sale.TotalProfit
			report.SalesCount++
		}
		for _, item := range sale.Items {
			row, ok := sold[item.ProductID]
			if !ok {
				name := names[item.ProductID]
				if name == "" {
					name = item.ProductID
				}
				row = &TopSeller{ProductID: item.ProductID, ProductName: name}
				sold[item.ProductID] = row
			}
			row.Sold += item.Quantity
			row.Revenue += item.PriceAtSale * float64(item.Quantity)
		}
	}

	top := make([]TopSeller, 0, len(sold))
	for _, row := range sold {
		top = append(top, *row)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Sold != top[j].Sold {
			return top[i].Sold > top[j].Sold
		}
		return top[i].ProductID < top[j].ProductID
	})
	if len(top) > 5 {
		top = top[:5]
	}
	report.TopSelling = top

	n := 10
	if n > len(l.sales) {
		n = len(l.sales)
	}
	report.RecentSales = make([]models.Sale, 0, n)
	for i := len(l.sales) - 1; i >= len(l.sales)-n; i-- {
		report.RecentSales = append(report.RecentSales, l.sales[i])
	}

	return report
}
