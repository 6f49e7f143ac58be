package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BulkOrderQuantity is the quantity above which an order line is flagged as a bulk order
const BulkOrderQuantity Quantity = 40

// OrderLine represents one product to restock, priced with its cheapest supplier
type OrderLine struct {
	ProductCode    ProductCode
	ProductName    string
	QuantityNeeded Quantity
	SupplierPhone  Phone
	LineCost       decimal.Decimal
}

// NewOrderLine creates a validated OrderLine
func NewOrderLine(
	code ProductCode,
	name string,
	quantityNeeded Quantity,
	supplierPhone Phone,
	lineCost decimal.Decimal,
) (*OrderLine, error) {
	if string(code) == "" {
		return nil, fmt.Errorf("product code cannot be empty")
	}
	if quantityNeeded <= 0 {
		return nil, fmt.Errorf("quantity needed must be positive, got %d", quantityNeeded)
	}
	if string(supplierPhone) == "" {
		return nil, fmt.Errorf("supplier phone cannot be empty")
	}
	if lineCost.IsNegative() {
		return nil, fmt.Errorf("line cost cannot be negative, got %s", lineCost.String())
	}

	return &OrderLine{
		ProductCode:    code,
		ProductName:    name,
		QuantityNeeded: quantityNeeded,
		SupplierPhone:  supplierPhone,
		LineCost:       lineCost,
	}, nil
}

// IsBulk reports whether the line is large enough to carry the bulk order marker
func (o OrderLine) IsBulk() bool {
	return o.QuantityNeeded > BulkOrderQuantity
}
