package report

import (
	"strings"
	"time"
)

// Recognized delivery statuses. The column is an open string enum: a row with
// any other value still counts as an order and still shows up in the stale
// dispatch check, it just falls outside the three dispatch tallies.
const (
	StatusFullyDispatched     = "Fully Dispatched"
	StatusPartiallyDispatched = "Partially Dispatched"
	StatusNotDispatched       = "Not Dispatched"
)

// Order is one row of the uploaded sales-order table. A zero OrderDate marks
// a blank or unparseable date cell; such rows are excluded from every
// date-scoped view.
type Order struct {
	Reference      string
	OrderDate      time.Time
	Customer       string
	Salesperson    string
	Total          float64
	Paid           float64
	DeliveryStatus string
}

// PaymentToCollect is the amount still owed on the order. It goes negative on
// an overpaid order; the engine does not clamp it.
func (o Order) PaymentToCollect() float64 {
	return o.Total - o.Paid
}

// FirstName derives the salesperson grouping key: the first
// whitespace-delimited token of the full name. Distinct salespeople sharing a
// first name collapse into one group. Known limitation, kept from the source
// data's display convention.
func (o Order) FirstName() string {
	fields := strings.Fields(o.Salesperson)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
