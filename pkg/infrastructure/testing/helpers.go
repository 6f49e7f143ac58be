package testing

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/restock/pkg/domain/entities"
	"github.com/vsinha/restock/pkg/infrastructure/repositories/memory"
)

// StoreData bundles the four in-memory repositories a restock run reads
type StoreData struct {
	Stock     *memory.StockRepository
	Offers    *memory.OfferRepository
	Products  *memory.ProductRepository
	Suppliers *memory.SupplierRepository
}

// NewStoreData creates empty repositories
func NewStoreData() *StoreData {
	return &StoreData{
		Stock:     memory.NewStockRepository(8),
		Offers:    memory.NewOfferRepository(8),
		Products:  memory.NewProductRepository(8),
		Suppliers: memory.NewSupplierRepository(4),
	}
}

// WithStock adds a shelf quantity - panics on validation error
func (d *StoreData) WithStock(code string, remaining int64) *StoreData {
	record, err := entities.NewStockRecord(entities.ProductCode(code), entities.Quantity(remaining))
	if err != nil {
		panic(err)
	}
	d.Stock.AddStock(*record)
	return d
}

// WithOffer adds a supplier offer - panics on validation error
func (d *StoreData) WithOffer(code, phone, price string) *StoreData {
	offer, err := entities.NewSupplierOffer(entities.ProductCode(code), entities.Phone(phone), decimal.RequireFromString(price))
	if err != nil {
		panic(err)
	}
	d.Offers.AddOffer(*offer)
	return d
}

// WithProduct adds a catalog entry - panics on validation error
func (d *StoreData) WithProduct(code, name string) *StoreData {
	product, err := entities.NewProduct(entities.ProductCode(code), name)
	if err != nil {
		panic(err)
	}
	d.Products.AddProduct(*product)
	return d
}

// WithSupplier adds a directory entry - panics on validation error
func (d *StoreData) WithSupplier(phone, name string) *StoreData {
	supplier, err := entities.NewSupplier(entities.Phone(phone), name)
	if err != nil {
		panic(err)
	}
	d.Suppliers.AddSupplier(*supplier)
	return d
}

// BuildCornerStoreTestData builds a small store with three suppliers, one
// product that does not need restocking and one bulk reorder.
//
//	P100 Paper Towels   12 left -> 38 @ Bayside  1.25 = 47.50
//	P200 Dish Soap       5 left -> 45 @ Acme     2.00 = 90.00 (Bayside 2.10)
//	P300 AA Batteries   25 left -> not reordered
//	P400 Sponges        19 left -> 31 @ Bayside  1.40 = 43.40
//	P500 Trash Bags      0 left -> 50 @ Citrus   0.80 = 40.00
func BuildCornerStoreTestData() *StoreData {
	return NewStoreData().
		WithStock("P100", 12).
		WithStock("P200", 5).
		WithStock("P300", 25).
		WithStock("P400", 19).
		WithStock("P500", 0).
		WithOffer("P100", "4165550300", "1.25").
		WithOffer("P200", "4165550300", "2.10").
		WithOffer("P200", "4165550100", "2.00").
		WithOffer("P300", "4165550100", "0.99").
		WithOffer("P400", "4165550300", "1.40").
		WithOffer("P500", "4165550200", "0.80").
		WithProduct("P100", "Paper Towels").
		WithProduct("P200", "Dish Soap").
		WithProduct("P300", "AA Batteries").
		WithProduct("P400", "Sponges").
		WithProduct("P500", "Trash Bags").
		WithSupplier("4165550100", "Acme").
		WithSupplier("4165550200", "Citrus Wholesale").
		WithSupplier("4165550300", "Bayside Supply")
}
