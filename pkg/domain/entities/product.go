package entities

import "fmt"

// ProductCode represents a unique product identifier shared by every input file
type ProductCode string

// Quantity represents an integer count of shelf units
type Quantity int64

// Product represents a catalog entry
type Product struct {
	Code ProductCode
	Name string
}

// NewProduct creates a validated Product
func NewProduct(code ProductCode, name string) (*Product, error) {
	if string(code) == "" {
		return nil, fmt.Errorf("product code cannot be empty")
	}

	return &Product{
		Code: code,
		Name: name,
	}, nil
}
