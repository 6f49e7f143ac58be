package memory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/restock/pkg/domain/entities"
)

func TestStockRepository_PreservesLoadOrder(t *testing.T) {
	repo := NewStockRepository(3)

	err := repo.LoadStock([]*entities.StockRecord{
		{ProductCode: "C3", QuantityRemaining: 7},
		{ProductCode: "A1", QuantityRemaining: 30},
		{ProductCode: "B2", QuantityRemaining: 0},
	})
	require.NoError(t, err)

	records, err := repo.GetAllStock()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, entities.ProductCode("C3"), records[0].ProductCode)
	assert.Equal(t, entities.ProductCode("A1"), records[1].ProductCode)
	assert.Equal(t, entities.ProductCode("B2"), records[2].ProductCode)
}

func TestStockRepository_DuplicateKeepsPositionTakesLaterQuantity(t *testing.T) {
	repo := NewStockRepository(3)

	repo.AddStock(entities.StockRecord{ProductCode: "A1", QuantityRemaining: 5})
	repo.AddStock(entities.StockRecord{ProductCode: "B2", QuantityRemaining: 8})
	repo.AddStock(entities.StockRecord{ProductCode: "A1", QuantityRemaining: 25})

	records, err := repo.GetAllStock()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, entities.ProductCode("A1"), records[0].ProductCode)
	assert.Equal(t, entities.Quantity(25), records[0].QuantityRemaining)
	assert.Equal(t, entities.ProductCode("B2"), records[1].ProductCode)
	assert.Equal(t, entities.Quantity(8), records[1].QuantityRemaining)
}

func TestOfferRepository_KeepsCheapestRegardlessOfOrder(t *testing.T) {
	offers := []*entities.SupplierOffer{
		{ProductCode: "A1", SupplierPhone: "5550000003", UnitPrice: decimal.RequireFromString("3.10")},
		{ProductCode: "A1", SupplierPhone: "5550000001", UnitPrice: decimal.RequireFromString("1.95")},
		{ProductCode: "A1", SupplierPhone: "5550000002", UnitPrice: decimal.RequireFromString("2.40")},
		{ProductCode: "B2", SupplierPhone: "5550000002", UnitPrice: decimal.RequireFromString("9.99")},
	}

	// Forward and reversed file order must both reduce to the same winner
	for _, order := range [][]*entities.SupplierOffer{offers, reversed(offers)} {
		repo := NewOfferRepository(2)
		require.NoError(t, repo.LoadOffers(order))

		offer, err := repo.GetCheapestOffer("A1")
		require.NoError(t, err)
		assert.Equal(t, entities.Phone("5550000001"), offer.SupplierPhone)
		assert.True(t, offer.UnitPrice.Equal(decimal.RequireFromString("1.95")))
		assert.Equal(t, 2, repo.Len())
	}
}

func TestOfferRepository_EqualPriceLaterOfferWins(t *testing.T) {
	repo := NewOfferRepository(1)
	repo.AddOffer(entities.SupplierOffer{ProductCode: "A1", SupplierPhone: "5550000001", UnitPrice: decimal.RequireFromString("2.00")})
	repo.AddOffer(entities.SupplierOffer{ProductCode: "A1", SupplierPhone: "5550000002", UnitPrice: decimal.RequireFromString("2.0")})

	offer, err := repo.GetCheapestOffer("A1")
	require.NoError(t, err)
	assert.Equal(t, entities.Phone("5550000002"), offer.SupplierPhone)
}

func TestOfferRepository_MissingOffer(t *testing.T) {
	repo := NewOfferRepository(0)

	_, err := repo.GetCheapestOffer("A1")
	var missing *entities.MissingOfferError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, entities.ProductCode("A1"), missing.ProductCode)
}

func reversed(offers []*entities.SupplierOffer) []*entities.SupplierOffer {
	out := make([]*entities.SupplierOffer, len(offers))
	for i, offer := range offers {
		out[len(offers)-1-i] = offer
	}
	return out
}
