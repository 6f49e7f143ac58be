package repositories

import "github.com/vsinha/restock/pkg/domain/entities"

// StockRepository provides access to shelf inventory in file order
type StockRepository interface {
	GetAllStock() ([]*entities.StockRecord, error)
	LoadStock(records []*entities.StockRecord) error
}

// OfferRepository provides access to supplier offers
type OfferRepository interface {
	// GetCheapestOffer returns the lowest priced offer for a product.
	// Returns *entities.MissingOfferError when no supplier carries it.
	GetCheapestOffer(code entities.ProductCode) (*entities.SupplierOffer, error)
	LoadOffers(offers []*entities.SupplierOffer) error
}
