package memory

import (
	"github.com/vsinha/restock/pkg/domain/entities"
	"github.com/vsinha/restock/pkg/domain/repositories"
)

// StockRepository provides in-memory shelf inventory storage.
// Records keep the position of their first appearance.
type StockRepository struct {
	records  []entities.StockRecord
	stockMap map[entities.ProductCode]int
}

// NewStockRepository creates a new in-memory stock repository
func NewStockRepository(expectedRecords int) *StockRepository {
	return &StockRepository{
		records:  make([]entities.StockRecord, 0, expectedRecords),
		stockMap: make(map[entities.ProductCode]int, expectedRecords),
	}
}

// Verify interface compliance
var _ repositories.StockRepository = (*StockRepository)(nil)

// LoadStock loads stock records into the repository
func (r *StockRepository) LoadStock(records []*entities.StockRecord) error {
	for _, record := range records {
		r.AddStock(*record)
	}
	return nil
}

// AddStock adds a stock record. A repeated product code replaces the earlier
// quantity in place.
func (r *StockRepository) AddStock(record entities.StockRecord) {
	if index, exists := r.stockMap[record.ProductCode]; exists {
		r.records[index].QuantityRemaining = record.QuantityRemaining
		return
	}
	r.stockMap[record.ProductCode] = len(r.records)
	r.records = append(r.records, record)
}

// GetAllStock returns all stock records in load order
func (r *StockRepository) GetAllStock() ([]*entities.StockRecord, error) {
	records := make([]*entities.StockRecord, 0, len(r.records))
	for i := range r.records {
		records = append(records, &r.records[i])
	}
	return records, nil
}

// OfferRepository keeps only the cheapest offer seen for each product
type OfferRepository struct {
	cheapest map[entities.ProductCode]entities.SupplierOffer
}

// NewOfferRepository creates a new in-memory offer repository
func NewOfferRepository(expectedProducts int) *OfferRepository {
	return &OfferRepository{
		cheapest: make(map[entities.ProductCode]entities.SupplierOffer, expectedProducts),
	}
}

// Verify interface compliance
var _ repositories.OfferRepository = (*OfferRepository)(nil)

// LoadOffers reduces offers to the minimum price per product
func (r *OfferRepository) LoadOffers(offers []*entities.SupplierOffer) error {
	for _, offer := range offers {
		r.AddOffer(*offer)
	}
	return nil
}

// AddOffer records an offer if it is at least as cheap as the current one.
// On equal prices the later offer wins.
func (r *OfferRepository) AddOffer(offer entities.SupplierOffer) {
	current, exists := r.cheapest[offer.ProductCode]
	if !exists || offer.UnitPrice.LessThanOrEqual(current.UnitPrice) {
		r.cheapest[offer.ProductCode] = offer
	}
}

// GetCheapestOffer returns the lowest priced offer for a product
func (r *OfferRepository) GetCheapestOffer(code entities.ProductCode) (*entities.SupplierOffer, error) {
	offer, exists := r.cheapest[code]
	if !exists {
		return nil, &entities.MissingOfferError{ProductCode: code}
	}
	return &offer, nil
}

// Len returns the number of products with at least one offer
func (r *OfferRepository) Len() int {
	return len(r.cheapest)
}
