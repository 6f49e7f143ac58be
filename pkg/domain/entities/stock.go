package entities

import "fmt"

// StockRecord represents the quantity of a product currently on the shelves
type StockRecord struct {
	ProductCode       ProductCode
	QuantityRemaining Quantity
}

// NewStockRecord creates a validated StockRecord
func NewStockRecord(code ProductCode, remaining Quantity) (*StockRecord, error) {
	if string(code) == "" {
		return nil, fmt.Errorf("product code cannot be empty")
	}
	if remaining < 0 {
		return nil, fmt.Errorf("quantity remaining cannot be negative, got %d", remaining)
	}

	return &StockRecord{
		ProductCode:       code,
		QuantityRemaining: remaining,
	}, nil
}
