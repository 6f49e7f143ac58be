package restock

import "github.com/vsinha/restock/pkg/domain/entities"

// Policy controls when a product is reordered and how much is ordered
type Policy struct {
	// Threshold is the shelf quantity below which a product is reordered
	Threshold entities.Quantity
	// TargetLevel is the shelf quantity a reorder restores
	TargetLevel entities.Quantity
}

// DefaultPolicy reorders anything under 20 units back up to 50
func DefaultPolicy() Policy {
	return Policy{
		Threshold:   20,
		TargetLevel: 50,
	}
}

// ReorderRequest is a product that needs restocking and how many units to order
type ReorderRequest struct {
	ProductCode    entities.ProductCode
	QuantityNeeded entities.Quantity
}

// SelectReorders returns a request for every product whose shelf quantity is
// strictly below the policy threshold, in stock order.
func SelectReorders(stock []*entities.StockRecord, policy Policy) []ReorderRequest {
	var requests []ReorderRequest

	for _, record := range stock {
		if record.QuantityRemaining >= policy.Threshold {
			continue
		}
		requests = append(requests, ReorderRequest{
			ProductCode:    record.ProductCode,
			QuantityNeeded: policy.TargetLevel - record.QuantityRemaining,
		})
	}

	return requests
}
