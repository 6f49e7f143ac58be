package entities

import (
	"errors"
	"fmt"
)

// ErrFileNotFound is returned when an input file does not exist
var ErrFileNotFound = errors.New("input file not found")

// ParseError describes a malformed line in an input file
type ParseError struct {
	File   string
	Line   int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s line %d: %s: %v", e.File, e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s line %d: %s", e.File, e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingOfferError is returned when a product to reorder has no supplier offer
type MissingOfferError struct {
	ProductCode ProductCode
}

func (e *MissingOfferError) Error() string {
	return fmt.Sprintf("no supplier offer for product %s", e.ProductCode)
}

// MissingProductError is returned when a product to reorder is not in the catalog
type MissingProductError struct {
	ProductCode ProductCode
}

func (e *MissingProductError) Error() string {
	return fmt.Sprintf("product %s not found in catalog", e.ProductCode)
}

// MissingSupplierError is returned when a supplier phone is not in the directory
type MissingSupplierError struct {
	Phone Phone
}

func (e *MissingSupplierError) Error() string {
	return fmt.Sprintf("supplier %s not found in directory", e.Phone)
}
