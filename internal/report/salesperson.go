package report

import "sort"

// SalespersonTotals aggregates one first-name group.
type SalespersonTotals struct {
	Name             string
	Total            float64
	Paid             float64
	PaymentToCollect float64
}

// SalespersonRankings holds the three ranked views over the same grouping.
// With fewer than ten groups the top and bottom lists overlap; expected,
// not an error.
type SalespersonRankings struct {
	TopByTotal       []SalespersonTotals
	BottomByTotal    []SalespersonTotals
	TopByOutstanding []SalespersonTotals
}

// RankSalespeople groups the snapshot by salesperson first name and ranks the
// groups by total sales (top and bottom) and by outstanding payment. Rows
// whose Salesperson field has no token contribute to no group. Equal amounts
// order by name ascending.
func RankSalespeople(orders []Order) SalespersonRankings {
	byTotal := groupBySalesperson(orders)
	sort.SliceStable(byTotal, func(i, j int) bool {
		if byTotal[i].Total != byTotal[j].Total {
			return byTotal[i].Total > byTotal[j].Total
		}
		return byTotal[i].Name < byTotal[j].Name
	})

	byOutstanding := append([]SalespersonTotals(nil), byTotal...)
	sort.SliceStable(byOutstanding, func(i, j int) bool {
		if byOutstanding[i].PaymentToCollect != byOutstanding[j].PaymentToCollect {
			return byOutstanding[i].PaymentToCollect > byOutstanding[j].PaymentToCollect
		}
		return byOutstanding[i].Name < byOutstanding[j].Name
	})

	return SalespersonRankings{
		TopByTotal:       headN(byTotal, rankSize),
		BottomByTotal:    tailN(byTotal, rankSize),
		TopByOutstanding: headN(byOutstanding, rankSize),
	}
}

func groupBySalesperson(orders []Order) []SalespersonTotals {
	index := make(map[string]int)
	groups := make([]SalespersonTotals, 0)
	for _, o := range orders {
		name := o.FirstName()
		if name == "" {
			continue
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, SalespersonTotals{Name: name})
		}
		groups[i].Total += o.Total
		groups[i].Paid += o.Paid
		groups[i].PaymentToCollect += o.PaymentToCollect()
	}
	return groups
}
