package ledger

import (
	"testing"
	"time"

	"almacen-pos/internal/models"
)

func TestDailyReport(t *testing.T) {
	led, _, _ := newLedger(t)

	if _, err := led.RecordSale([]models.SaleLine{{ProductID: "1", Quantity: 3}}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := led.RecordSale([]models.SaleLine{{ProductID: "2", Quantity: 1}}); err != nil {
		t.Fatalf("record: %v", err)
	}

	report := led.DailyReport(time.Now())

	if report.SalesCount != 2 {
		t.Fatalf("expected 2 sales today, got %d", report.SalesCount)
	}
	if report.Revenue != 3*135+225 {
		t.Fatalf("unexpected revenue %v", report.Revenue)
	}
	if report.Profit != 3*45+45 {
		t.Fatalf("unexpected profit %v", report.Profit)
	}
	if len(report.TopSelling) != 2 {
		t.Fatalf("expected 2 top-seller rows, got %d", len(report.TopSelling))
	}
	if report.TopSelling[0].ProductID != "1" || report.TopSelling[0].Sold != 3 {
		t.Fatalf("unexpected best seller: %+v", report.TopSelling[0])
	}
	if report.TopSelling[0].ProductName != "Coca Cola 2L" {
		t.Fatalf("top seller missing catalog name: %+v", report.TopSelling[0])
	}
	if len(report.RecentSales) != 2 {
		t.Fatalf("expected 2 recent sales, got %d", len(report.RecentSales))
	}
	if !report.RecentSales[0].Timestamp.After(report.RecentSales[1].Timestamp.Add(-time.Second)) {
		t.Fatalf("recent sales not newest first")
	}
}

func TestDailyReportExcludesOlderDays(t *testing.T) {
	led, _, _ := newLedger(t)

	if _, err := led.RecordSale([]models.SaleLine{{ProductID: "1", Quantity: 1}}); err != nil {
		t.Fatalf("record: %v", err)
	}

	// As of tomorrow, today's sale is history: daily figures drop to zero
	// while the all-time rankings keep it.
	tomorrow := time.Now().Add(24 * time.Hour)
	report := led.DailyReport(tomorrow)

	if report.SalesCount != 0 || report.Revenue != 0 || report.Profit != 0 {
		t.Fatalf("yesterday's sale leaked into today's figures: %+v", report)
	}
	if len(report.TopSelling) != 1 {
		t.Fatalf("all-time top sellers should keep older sales")
	}
}

func TestDailyReportEmptyLedger(t *testing.T) {
	led, _, _ := newLedger(t)
	report := led.DailyReport(time.Now())
	if report.SalesCount != 0 || report.Revenue != 0 || len(report.TopSelling) != 0 || len(report.RecentSales) != 0 {
		t.Fatalf("expected zeroed report, got %+v", report)
	}
}
