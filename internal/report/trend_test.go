package report

import (
	"testing"
	"time"
)

func TestSalesTrendSumsPerDate(t *testing.T) {
	d := day(2025, time.June, 10)
	orders := []Order{
		{OrderDate: d, Total: 100},
		{OrderDate: d, Total: 250},
	}

	points := SalesTrend(orders)
	if len(points) != 1 {
		t.Fatalf("expected a single point, got %d", len(points))
	}
	if !points[0].Date.Equal(d) || points[0].TotalSales != 350 {
		t.Fatalf("expected (2025-06-10, 350), got (%v, %v)", points[0].Date, points[0].TotalSales)
	}
}

func TestSalesTrendAscendingNoGapFill(t *testing.T) {
	orders := []Order{
		{OrderDate: day(2025, time.June, 15), Total: 500},
		{OrderDate: day(2025, time.June, 1), Total: 100},
		{OrderDate: day(2025, time.June, 8), Total: 200},
	}

	points := SalesTrend(orders)
	if len(points) != 3 {
		t.Fatalf("expected 3 points with no gap-filling, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if !points[i-1].Date.Before(points[i].Date) {
			t.Fatalf("points not ascending: %v before %v", points[i-1].Date, points[i].Date)
		}
	}
}

func TestSalesTrendEmpty(t *testing.T) {
	if points := SalesTrend(nil); len(points) != 0 {
		t.Fatalf("expected empty series, got %d points", len(points))
	}
}
