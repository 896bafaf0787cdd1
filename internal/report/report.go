package report

import "time"

const dateLayout = "2006-01-02"

// Params controls one report computation.
type Params struct {
	Start          time.Time
	End            time.Time
	Today          time.Time
	StaleAfterDays int
	PDFAvailable   bool
}

// Report is the full dashboard view computed from one uploaded table.
// Monetary fields arrive pre-formatted for display.
type Report struct {
	DateRange    DateRange          `json:"dateRange"`
	Payments     PaymentSummaryView `json:"payments"`
	Fulfillment  FulfillmentCounts  `json:"fulfillment"`
	Salespeople  SalespersonTables  `json:"salespeople"`
	Customers    CustomerTables     `json:"customers"`
	StaleOrders  []StaleOrder       `json:"staleOrders"`
	PDFAvailable bool               `json:"pdfAvailable"`
	Trend        []TrendPointView   `json:"trend"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type PaymentSummaryView struct {
	TotalSales   string `json:"totalSales"`
	TotalPaid    string `json:"totalPaid"`
	PendingToPay string `json:"pendingToPay"`
}

type SalespersonRow struct {
	FirstName string `json:"firstName"`
	Total     string `json:"total"`
	Paid      string `json:"paid"`
}

type OutstandingRow struct {
	FirstName        string `json:"firstName"`
	Total            string `json:"total"`
	PaymentToCollect string `json:"paymentToCollect"`
}

type SalespersonTables struct {
	TopByTotal       []SalespersonRow `json:"topByTotal"`
	BottomByTotal    []SalespersonRow `json:"bottomByTotal"`
	TopByOutstanding []OutstandingRow `json:"topByOutstanding"`
}

type CustomerValueRow struct {
	Customer   string `json:"customer"`
	SalesValue string `json:"salesValue"`
}

type CustomerCountRow struct {
	Customer   string `json:"customer"`
	OrderCount int    `json:"orderCount"`
}

type CustomerTables struct {
	TopByValue      []CustomerValueRow `json:"topByValue"`
	TopByOrderCount []CustomerCountRow `json:"topByOrderCount"`
}

type TrendPointView struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"totalSales"`
}

// Build filters the table once and runs every aggregator over the same
// immutable snapshot. An empty filtered set degrades to zero totals and empty
// tables everywhere. The export is only offered when the capability is on and
// the stale list is non-empty.
func Build(orders []Order, p Params) Report {
	filtered := FilterByDate(orders, p.Start, p.End)

	payments := SummarizePayments(filtered)
	stale := FindStaleOrders(filtered, p.Today, p.StaleAfterDays)

	return Report{
		DateRange: DateRange{
			Start: p.Start.Format(dateLayout),
			End:   p.End.Format(dateLayout),
		},
		Payments: PaymentSummaryView{
			TotalSales:   FormatINR(payments.TotalSales),
			TotalPaid:    FormatINR(payments.TotalPaid),
			PendingToPay: FormatINR(payments.PendingToPay),
		},
		Fulfillment:  CountFulfillment(filtered),
		Salespeople:  salespersonTables(RankSalespeople(filtered)),
		Customers:    customerTables(RankCustomers(filtered)),
		StaleOrders:  stale,
		PDFAvailable: p.PDFAvailable && len(stale) > 0,
		Trend:        trendView(SalesTrend(filtered)),
	}
}

func salespersonTables(r SalespersonRankings) SalespersonTables {
	tables := SalespersonTables{
		TopByTotal:       make([]SalespersonRow, 0, len(r.TopByTotal)),
		BottomByTotal:    make([]SalespersonRow, 0, len(r.BottomByTotal)),
		TopByOutstanding: make([]OutstandingRow, 0, len(r.TopByOutstanding)),
	}
	for _, g := range r.TopByTotal {
		tables.TopByTotal = append(tables.TopByTotal, SalespersonRow{
			FirstName: g.Name,
			Total:     FormatINR(g.Total),
			Paid:      FormatINR(g.Paid),
		})
	}
	for _, g := range r.BottomByTotal {
		tables.BottomByTotal = append(tables.BottomByTotal, SalespersonRow{
			FirstName: g.Name,
			Total:     FormatINR(g.Total),
			Paid:      FormatINR(g.Paid),
		})
	}
	for _, g := range r.TopByOutstanding {
		tables.TopByOutstanding = append(tables.TopByOutstanding, OutstandingRow{
			FirstName:        g.Name,
			Total:            FormatINR(g.Total),
			PaymentToCollect: FormatINR(g.PaymentToCollect),
		})
	}
	return tables
}

func customerTables(r CustomerRankings) CustomerTables {
	tables := CustomerTables{
		TopByValue:      make([]CustomerValueRow, 0, len(r.TopByValue)),
		TopByOrderCount: make([]CustomerCountRow, 0, len(r.TopByOrderCount)),
	}
	for _, g := range r.TopByValue {
		tables.TopByValue = append(tables.TopByValue, CustomerValueRow{
			Customer:   g.Name,
			SalesValue: FormatINR(g.Total),
		})
	}
	for _, g := range r.TopByOrderCount {
		tables.TopByOrderCount = append(tables.TopByOrderCount, CustomerCountRow{
			Customer:   g.Name,
			OrderCount: g.OrderCount,
		})
	}
	return tables
}

func trendView(points []TrendPoint) []TrendPointView {
	out := make([]TrendPointView, 0, len(points))
	for _, p := range points {
		out = append(out, TrendPointView{
			Date:       p.Date.Format(dateLayout),
			TotalSales: p.TotalSales,
		})
	}
	return out
}
