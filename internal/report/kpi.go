package report

// PaymentSummary holds the scalar payment KPIs over one filtered snapshot.
type PaymentSummary struct {
	TotalSales   float64
	TotalPaid    float64
	PendingToPay float64
}

// SummarizePayments sums Total and Paid over the snapshot. PendingToPay is
// derived from the two sums, never accumulated independently, so the identity
// PendingToPay == TotalSales - TotalPaid holds exactly.
func SummarizePayments(orders []Order) PaymentSummary {
	var s PaymentSummary
	for _, o := range orders {
		s.TotalSales += o.Total
		s.TotalPaid += o.Paid
	}
	s.PendingToPay = s.TotalSales - s.TotalPaid
	return s
}
