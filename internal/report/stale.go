package report

import (
	"sort"
	"time"
)

// staleDateLayout is the display format for stale-order dates, e.g. 04-Jun-25.
const staleDateLayout = "02-Jan-06"

// StaleOrder is the projection shown in the dispatch-check table and exported
// to PDF. OrderDate is already display-formatted.
type StaleOrder struct {
	Reference      string `json:"orderReference"`
	OrderDate      string `json:"orderDate"`
	Customer       string `json:"customer"`
	Salesperson    string `json:"salesperson"`
	DeliveryStatus string `json:"deliveryStatus"`
}

// FindStaleOrders selects orders at least staleAfterDays old that are not
// fully dispatched, oldest first. Only exact equality to "Fully Dispatched"
// excludes a row; unrecognized statuses stay in.
func FindStaleOrders(orders []Order, today time.Time, staleAfterDays int) []StaleOrder {
	cutoff := today.AddDate(0, 0, -staleAfterDays)

	stale := make([]Order, 0)
	for _, o := range orders {
		if o.OrderDate.After(cutoff) {
			continue
		}
		if o.DeliveryStatus == StatusFullyDispatched {
			continue
		}
		stale = append(stale, o)
	}
	sort.SliceStable(stale, func(i, j int) bool {
		return stale[i].OrderDate.Before(stale[j].OrderDate)
	})

	out := make([]StaleOrder, 0, len(stale))
	for _, o := range stale {
		out = append(out, StaleOrder{
			Reference:      o.Reference,
			OrderDate:      o.OrderDate.Format(staleDateLayout),
			Customer:       o.Customer,
			Salesperson:    o.Salesperson,
			DeliveryStatus: o.DeliveryStatus,
		})
	}
	return out
}
