package restock

import (
	"context"
	"fmt"

	"github.com/vsinha/restock/pkg/application/dto"
	"github.com/vsinha/restock/pkg/domain/repositories"
	"github.com/vsinha/restock/pkg/infrastructure/logger"
)

// RestockService chains selection, pricing, naming and aggregation
type RestockService struct {
	policy Policy
}

// NewRestockService creates a restock service with the default policy
func NewRestockService() *RestockService {
	return NewRestockServiceWithPolicy(DefaultPolicy())
}

// NewRestockServiceWithPolicy creates a restock service with a custom policy
func NewRestockServiceWithPolicy(policy Policy) *RestockService {
	return &RestockService{
		policy: policy,
	}
}

// Plan builds the day's order lines and their cost summary. Each stage
// consumes the complete output of the previous one; the first failure aborts.
func (s *RestockService) Plan(
	ctx context.Context,
	stockRepo repositories.StockRepository,
	offerRepo repositories.OfferRepository,
	productRepo repositories.ProductRepository,
) (*dto.RestockResult, error) {
	stock, err := stockRepo.GetAllStock()
	if err != nil {
		return nil, fmt.Errorf("failed to read stock: %w", err)
	}

	requests := SelectReorders(stock, s.policy)
	logger.Debug(ctx).
		Int("stock_records", len(stock)).
		Int("reorders", len(requests)).
		Msg("selected products to reorder")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	priced, err := ResolvePricing(requests, offerRepo)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines, err := BuildOrderLines(priced, productRepo)
	if err != nil {
		return nil, err
	}

	summary := Aggregate(lines)
	logger.Debug(ctx).
		Int("order_lines", len(lines)).
		Int("suppliers", len(summary.SupplierTotals)).
		Str("grand_total", summary.GrandTotal.StringFixed(CostPlaces)).
		Msg("aggregated supplier costs")

	return &dto.RestockResult{
		OrderLines: lines,
		Summary:    summary,
	}, nil
}
