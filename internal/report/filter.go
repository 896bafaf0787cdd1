package report

import "time"

// DefaultRange returns the month-to-date window ending at today.
func DefaultRange(today time.Time) (start, end time.Time) {
	start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	return start, today
}

// FilterByDate returns the orders whose date is known and falls inside the
// inclusive [start, end] window. An inverted window matches nothing; rows
// with a missing date are dropped rather than kept as unknown.
func FilterByDate(orders []Order, start, end time.Time) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.OrderDate.IsZero() {
			continue
		}
		if o.OrderDate.Before(start) || o.OrderDate.After(end) {
			continue
		}
		out = append(out, o)
	}
	return out
}
