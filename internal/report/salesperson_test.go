package report

import (
	"fmt"
	"testing"
)

func TestRankSalespeopleGroupsByFirstName(t *testing.T) {
	orders := []Order{
		{Salesperson: "Ravi Kumar", Total: 1000, Paid: 400},
		{Salesperson: "Ravi Sharma", Total: 500, Paid: 500},
		{Salesperson: "Anita Desai", Total: 300, Paid: 100},
	}

	r := RankSalespeople(orders)
	if len(r.TopByTotal) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(r.TopByTotal))
	}
	top := r.TopByTotal[0]
	if top.Name != "Ravi" {
		t.Fatalf("expected Ravi first, got %s", top.Name)
	}
	if top.Total != 1500 || top.Paid != 900 || top.PaymentToCollect != 600 {
		t.Fatalf("unexpected Ravi aggregates: %+v", top)
	}
}

func TestRankSalespeopleSkipsBlankNames(t *testing.T) {
	orders := []Order{
		{Salesperson: "  ", Total: 100},
		{Salesperson: "", Total: 200},
		{Salesperson: "Priya Nair", Total: 50},
	}

	r := RankSalespeople(orders)
	if len(r.TopByTotal) != 1 || r.TopByTotal[0].Name != "Priya" {
		t.Fatalf("expected only Priya, got %+v", r.TopByTotal)
	}
}

func TestRankSalespeopleTopBottomDisjoint(t *testing.T) {
	orders := make([]Order, 0, 12)
	for i := 0; i < 12; i++ {
		orders = append(orders, Order{
			Salesperson: fmt.Sprintf("Person%02d Surname", i),
			Total:       float64((i + 1) * 100),
		})
	}

	r := RankSalespeople(orders)
	if len(r.TopByTotal) != 5 || len(r.BottomByTotal) != 5 {
		t.Fatalf("expected 5+5 rows, got %d and %d", len(r.TopByTotal), len(r.BottomByTotal))
	}
	seen := make(map[string]bool)
	for _, g := range r.TopByTotal {
		seen[g.Name] = true
	}
	for _, g := range r.BottomByTotal {
		if seen[g.Name] {
			t.Fatalf("%s appears in both top and bottom with 12 groups", g.Name)
		}
	}
	if r.TopByTotal[0].Total != 1200 {
		t.Fatalf("expected highest total first, got %v", r.TopByTotal[0].Total)
	}
	if r.BottomByTotal[len(r.BottomByTotal)-1].Total != 100 {
		t.Fatalf("expected lowest total last, got %v", r.BottomByTotal[len(r.BottomByTotal)-1].Total)
	}
}

func TestRankSalespeopleFewGroupsOverlap(t *testing.T) {
	orders := []Order{
		{Salesperson: "Amit S", Total: 300},
		{Salesperson: "Bina T", Total: 200},
		{Salesperson: "Chand U", Total: 100},
	}

	r := RankSalespeople(orders)
	if len(r.TopByTotal) != 3 || len(r.BottomByTotal) != 3 {
		t.Fatalf("expected full overlap with 3 groups, got %d and %d", len(r.TopByTotal), len(r.BottomByTotal))
	}
}

func TestRankSalespeopleOutstandingIndependent(t *testing.T) {
	orders := []Order{
		{Salesperson: "Amit S", Total: 1000, Paid: 1000},
		{Salesperson: "Bina T", Total: 500, Paid: 0},
		{Salesperson: "Chand U", Total: 800, Paid: 700},
	}

	r := RankSalespeople(orders)
	if r.TopByTotal[0].Name != "Amit" {
		t.Fatalf("expected Amit top by total, got %s", r.TopByTotal[0].Name)
	}
	if r.TopByOutstanding[0].Name != "Bina" {
		t.Fatalf("expected Bina top by outstanding, got %s", r.TopByOutstanding[0].Name)
	}
}

func TestRankSalespeopleTieBreaksByName(t *testing.T) {
	orders := []Order{
		{Salesperson: "Zara K", Total: 100},
		{Salesperson: "Amit S", Total: 100},
	}

	r := RankSalespeople(orders)
	if r.TopByTotal[0].Name != "Amit" || r.TopByTotal[1].Name != "Zara" {
		t.Fatalf("expected name-ascending tie-break, got %+v", r.TopByTotal)
	}
}

func TestRankSalespeopleEmpty(t *testing.T) {
	r := RankSalespeople(nil)
	if len(r.TopByTotal) != 0 || len(r.BottomByTotal) != 0 || len(r.TopByOutstanding) != 0 {
		t.Fatalf("expected empty rankings, got %+v", r)
	}
}
