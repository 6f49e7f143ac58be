package restock

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/restock/pkg/application/dto"
	"github.com/vsinha/restock/pkg/domain/entities"
)

// Aggregate sums line costs overall and per supplier and picks out every
// supplier tied for the highest total. With no lines all totals are zero and
// there are no top suppliers.
func Aggregate(lines []entities.OrderLine) dto.CostSummary {
	summary := dto.CostSummary{
		GrandTotal:  decimal.Zero,
		HighestCost: decimal.Zero,
	}

	index := make(map[entities.Phone]int)
	for _, line := range lines {
		summary.GrandTotal = summary.GrandTotal.Add(line.LineCost)

		i, seen := index[line.SupplierPhone]
		if !seen {
			i = len(summary.SupplierTotals)
			index[line.SupplierPhone] = i
			summary.SupplierTotals = append(summary.SupplierTotals, entities.SupplierTotal{
				Phone: line.SupplierPhone,
				Total: decimal.Zero,
			})
		}
		summary.SupplierTotals[i].Total = summary.SupplierTotals[i].Total.Add(line.LineCost)
	}

	if len(summary.SupplierTotals) == 0 {
		return summary
	}

	summary.HighestCost = summary.SupplierTotals[0].Total
	for _, st := range summary.SupplierTotals[1:] {
		if st.Total.GreaterThan(summary.HighestCost) {
			summary.HighestCost = st.Total
		}
	}

	for _, st := range summary.SupplierTotals {
		if st.Total.Equal(summary.HighestCost) {
			summary.TopSuppliers = append(summary.TopSuppliers, st.Phone)
		}
	}

	return summary
}
