package restock

import (
	"fmt"

	"github.com/vsinha/restock/pkg/domain/entities"
	"github.com/vsinha/restock/pkg/domain/repositories"
)

// BuildOrderLines attaches catalog names to priced requests, producing the
// final order lines in the same order.
func BuildOrderLines(priced []PricedRequest, products repositories.ProductRepository) ([]entities.OrderLine, error) {
	lines := make([]entities.OrderLine, 0, len(priced))

	for _, p := range priced {
		product, err := products.GetProduct(p.ProductCode)
		if err != nil {
			return nil, fmt.Errorf("failed to name %s: %w", p.ProductCode, err)
		}

		line, err := entities.NewOrderLine(p.ProductCode, product.Name, p.QuantityNeeded, p.SupplierPhone, p.LineCost)
		if err != nil {
			return nil, fmt.Errorf("invalid order line for %s: %w", p.ProductCode, err)
		}

		lines = append(lines, *line)
	}

	return lines, nil
}
