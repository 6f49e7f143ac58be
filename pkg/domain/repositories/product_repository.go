package repositories

import "github.com/vsinha/restock/pkg/domain/entities"

// ProductRepository provides access to the product catalog
type ProductRepository interface {
	GetProduct(code entities.ProductCode) (*entities.Product, error)
	LoadProducts(products []*entities.Product) error
}

// SupplierRepository provides access to the supplier directory
type SupplierRepository interface {
	GetSupplier(phone entities.Phone) (*entities.Supplier, error)
	LoadSuppliers(suppliers []*entities.Supplier) error
}
