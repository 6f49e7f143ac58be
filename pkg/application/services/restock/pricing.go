package restock

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vsinha/restock/pkg/domain/entities"
	"github.com/vsinha/restock/pkg/domain/repositories"
)

// CostPlaces is the number of decimal places line costs are rounded to
const CostPlaces = 2

// PricedRequest is a reorder request matched with its cheapest supplier
type PricedRequest struct {
	ReorderRequest
	SupplierPhone entities.Phone
	LineCost      decimal.Decimal
}

// ResolvePricing prices every request with the cheapest available offer and
// returns them stable-sorted by supplier phone. A request without any offer
// fails the whole run with *entities.MissingOfferError.
func ResolvePricing(requests []ReorderRequest, offers repositories.OfferRepository) ([]PricedRequest, error) {
	priced := make([]PricedRequest, 0, len(requests))

	for _, request := range requests {
		offer, err := offers.GetCheapestOffer(request.ProductCode)
		if err != nil {
			return nil, fmt.Errorf("failed to price %s: %w", request.ProductCode, err)
		}

		priced = append(priced, PricedRequest{
			ReorderRequest: request,
			SupplierPhone:  offer.SupplierPhone,
			LineCost:       LineCost(offer.UnitPrice, request.QuantityNeeded),
		})
	}

	sort.SliceStable(priced, func(i, j int) bool {
		return priced[i].SupplierPhone < priced[j].SupplierPhone
	})

	return priced, nil
}

// LineCost returns unitPrice × quantity rounded half away from zero to cents.
// The product is exact, so 1.005 × 1 is 1.01 where binary float formatting gives 1.00.
func LineCost(unitPrice decimal.Decimal, quantity entities.Quantity) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(CostPlaces)
}
