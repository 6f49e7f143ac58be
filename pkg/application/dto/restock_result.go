package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/restock/pkg/domain/entities"
)

// RestockResult contains the complete output of a restock planning run
type RestockResult struct {
	OrderLines []entities.OrderLine
	Summary    CostSummary
}

// CostSummary aggregates order line costs per supplier
type CostSummary struct {
	GrandTotal decimal.Decimal
	// SupplierTotals is in order of each supplier's first order line
	SupplierTotals []entities.SupplierTotal
	HighestCost    decimal.Decimal
	// TopSuppliers lists every supplier whose total equals HighestCost
	TopSuppliers []entities.Phone
}

