package report

// FulfillmentCounts tallies orders by dispatch state. Unrecognized status
// strings count only toward TotalOrders, so the three dispatch buckets can
// sum to less than the total.
type FulfillmentCounts struct {
	TotalOrders         int `json:"totalOrders"`
	FullyDispatched     int `json:"fullyDispatched"`
	PartiallyDispatched int `json:"partiallyDispatched"`
	PendingDispatch     int `json:"pendingDispatch"`
}

// CountFulfillment tallies the snapshot by delivery status.
func CountFulfillment(orders []Order) FulfillmentCounts {
	var c FulfillmentCounts
	for _, o := range orders {
		c.TotalOrders++
		switch o.DeliveryStatus {
		case StatusFullyDispatched:
			c.FullyDispatched++
		case StatusPartiallyDispatched:
			c.PartiallyDispatched++
		case StatusNotDispatched:
			c.PendingDispatch++
		}
	}
	return c
}
