package report

import (
	"sort"
	"time"
)

// TrendPoint is one day of summed sales for the trend chart.
type TrendPoint struct {
	Date       time.Time
	TotalSales float64
}

// SalesTrend sums Total per distinct order date, ascending. Dates with no
// orders in the snapshot do not appear; there is no gap-filling.
func SalesTrend(orders []Order) []TrendPoint {
	sums := make(map[time.Time]float64)
	for _, o := range orders {
		sums[o.OrderDate] += o.Total
	}
	points := make([]TrendPoint, 0, len(sums))
	for date, total := range sums {
		points = append(points, TrendPoint{Date: date, TotalSales: total})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}
