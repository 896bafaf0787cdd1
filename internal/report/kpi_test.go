package report

import "testing"

func TestSummarizePayments(t *testing.T) {
	orders := []Order{
		{Total: 1000, Paid: 1000},
		{Total: 2000, Paid: 0},
		{Total: 500, Paid: 500},
	}

	s := SummarizePayments(orders)
	if s.TotalSales != 3500 {
		t.Fatalf("expected total sales 3500, got %v", s.TotalSales)
	}
	if s.TotalPaid != 1500 {
		t.Fatalf("expected total paid 1500, got %v", s.TotalPaid)
	}
	if s.PendingToPay != s.TotalSales-s.TotalPaid {
		t.Fatalf("pending %v does not match sales %v minus paid %v", s.PendingToPay, s.TotalSales, s.TotalPaid)
	}
}

func TestSummarizePaymentsOverpayment(t *testing.T) {
	s := SummarizePayments([]Order{{Total: 100, Paid: 250}})
	if s.PendingToPay != -150 {
		t.Fatalf("expected pending -150 on overpayment, got %v", s.PendingToPay)
	}
}

func TestSummarizePaymentsEmpty(t *testing.T) {
	s := SummarizePayments(nil)
	if s.TotalSales != 0 || s.TotalPaid != 0 || s.PendingToPay != 0 {
		t.Fatalf("expected zeroed summary, got %+v", s)
	}
}
