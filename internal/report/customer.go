package report

import "sort"

// CustomerTotals aggregates one customer group.
type CustomerTotals struct {
	Name       string
	Total      float64
	OrderCount int
}

// CustomerRankings holds the two independent rankings over the customer
// grouping. A customer can appear in both, one, or neither list.
type CustomerRankings struct {
	TopByValue      []CustomerTotals
	TopByOrderCount []CustomerTotals
}

// RankCustomers groups the snapshot by customer name and ranks the groups by
// sales value and by order count. Equal amounts order by name ascending.
func RankCustomers(orders []Order) CustomerRankings {
	byValue := groupByCustomer(orders)
	sort.SliceStable(byValue, func(i, j int) bool {
		if byValue[i].Total != byValue[j].Total {
			return byValue[i].Total > byValue[j].Total
		}
		return byValue[i].Name < byValue[j].Name
	})

	byCount := append([]CustomerTotals(nil), byValue...)
	sort.SliceStable(byCount, func(i, j int) bool {
		if byCount[i].OrderCount != byCount[j].OrderCount {
			return byCount[i].OrderCount > byCount[j].OrderCount
		}
		return byCount[i].Name < byCount[j].Name
	})

	return CustomerRankings{
		TopByValue:      headN(byValue, rankSize),
		TopByOrderCount: headN(byCount, rankSize),
	}
}

func groupByCustomer(orders []Order) []CustomerTotals {
	index := make(map[string]int)
	groups := make([]CustomerTotals, 0)
	for _, o := range orders {
		i, ok := index[o.Customer]
		if !ok {
			i = len(groups)
			index[o.Customer] = i
			groups = append(groups, CustomerTotals{Name: o.Customer})
		}
		groups[i].Total += o.Total
		groups[i].OrderCount++
	}
	return groups
}
