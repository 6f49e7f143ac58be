package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Phone is a supplier phone number. It doubles as the supplier identity.
type Phone string

// Supplier represents a supplier directory entry
type Supplier struct {
	Phone Phone
	Name  string
}

// NewSupplier creates a validated Supplier
func NewSupplier(phone Phone, name string) (*Supplier, error) {
	if string(phone) == "" {
		return nil, fmt.Errorf("supplier phone cannot be empty")
	}

	return &Supplier{
		Phone: phone,
		Name:  name,
	}, nil
}

// SupplierOffer represents one supplier's price for one product
type SupplierOffer struct {
	ProductCode   ProductCode
	SupplierPhone Phone
	UnitPrice     decimal.Decimal
}

// NewSupplierOffer creates a validated SupplierOffer
func NewSupplierOffer(code ProductCode, phone Phone, unitPrice decimal.Decimal) (*SupplierOffer, error) {
	if string(code) == "" {
		return nil, fmt.Errorf("product code cannot be empty")
	}
	if string(phone) == "" {
		return nil, fmt.Errorf("supplier phone cannot be empty")
	}
	if unitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price cannot be negative, got %s", unitPrice.String())
	}

	return &SupplierOffer{
		ProductCode:   code,
		SupplierPhone: phone,
		UnitPrice:     unitPrice,
	}, nil
}

// SupplierTotal is the cumulative order cost placed with one supplier
type SupplierTotal struct {
	Phone Phone
	Total decimal.Decimal
}
