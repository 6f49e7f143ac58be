package memory

import (
	"github.com/vsinha/restock/pkg/domain/entities"
	"github.com/vsinha/restock/pkg/domain/repositories"
)

// ProductRepository provides in-memory product catalog storage
type ProductRepository struct {
	products map[entities.ProductCode]entities.Product
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository(expectedProducts int) *ProductRepository {
	return &ProductRepository{
		products: make(map[entities.ProductCode]entities.Product, expectedProducts),
	}
}

// Verify interface compliance
var _ repositories.ProductRepository = (*ProductRepository)(nil)

// LoadProducts loads products into the repository
func (r *ProductRepository) LoadProducts(products []*entities.Product) error {
	for _, product := range products {
		r.AddProduct(*product)
	}
	return nil
}

// AddProduct adds a product, replacing any earlier entry with the same code
func (r *ProductRepository) AddProduct(product entities.Product) {
	r.products[product.Code] = product
}

// GetProduct returns the catalog entry for a product code
func (r *ProductRepository) GetProduct(code entities.ProductCode) (*entities.Product, error) {
	product, exists := r.products[code]
	if !exists {
		return nil, &entities.MissingProductError{ProductCode: code}
	}
	return &product, nil
}

// SupplierRepository provides in-memory supplier directory storage
type SupplierRepository struct {
	suppliers map[entities.Phone]entities.Supplier
}

// NewSupplierRepository creates a new in-memory supplier repository
func NewSupplierRepository(expectedSuppliers int) *SupplierRepository {
	return &SupplierRepository{
		suppliers: make(map[entities.Phone]entities.Supplier, expectedSuppliers),
	}
}

// Verify interface compliance
var _ repositories.SupplierRepository = (*SupplierRepository)(nil)

// LoadSuppliers loads suppliers into the repository
func (r *SupplierRepository) LoadSuppliers(suppliers []*entities.Supplier) error {
	for _, supplier := range suppliers {
		r.AddSupplier(*supplier)
	}
	return nil
}

// AddSupplier adds a supplier, replacing any earlier entry with the same phone
func (r *SupplierRepository) AddSupplier(supplier entities.Supplier) {
	r.suppliers[supplier.Phone] = supplier
}

// GetSupplier returns the directory entry for a supplier phone
func (r *SupplierRepository) GetSupplier(phone entities.Phone) (*entities.Supplier, error) {
	supplier, exists := r.suppliers[phone]
	if !exists {
		return nil, &entities.MissingSupplierError{Phone: phone}
	}
	return &supplier, nil
}
