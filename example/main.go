package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/restock/pkg/application/services/restock"
	"github.com/vsinha/restock/pkg/domain/entities"
	"github.com/vsinha/restock/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/restock/pkg/interfaces/cli/output"
)

func main() {
	ctx := context.Background()

	// Create repositories
	stockRepo := memory.NewStockRepository(4)
	offerRepo := memory.NewOfferRepository(4)
	productRepo := memory.NewProductRepository(4)
	supplierRepo := memory.NewSupplierRepository(2)

	// Set up a small bakery aisle
	setupBakeryAisle(stockRepo, offerRepo, productRepo, supplierRepo)

	fmt.Println("Planning restock for the bakery aisle...")
	fmt.Println()

	result, err := restock.NewRestockService().Plan(ctx, stockRepo, offerRepo, productRepo)
	if err != nil {
		fmt.Printf("Restock failed: %v\n", err)
		return
	}

	report, err := output.RenderReport(result, supplierRepo)
	if err != nil {
		fmt.Printf("Rendering failed: %v\n", err)
		return
	}
	fmt.Print(report)
	fmt.Println()

	// Per-supplier breakdown
	fmt.Println("Supplier totals:")
	for _, st := range result.Summary.SupplierTotals {
		supplier, _ := supplierRepo.GetSupplier(st.Phone)
		fmt.Printf("  %-20s %s  $%s\n", supplier.Name, output.FormatPhone(st.Phone), st.Total.StringFixed(2))
	}
}

func setupBakeryAisle(
	stockRepo *memory.StockRepository,
	offerRepo *memory.OfferRepository,
	productRepo *memory.ProductRepository,
	supplierRepo *memory.SupplierRepository,
) {
	stockRepo.AddStock(entities.StockRecord{ProductCode: "B-001", QuantityRemaining: 3})
	stockRepo.AddStock(entities.StockRecord{ProductCode: "B-002", QuantityRemaining: 22})
	stockRepo.AddStock(entities.StockRecord{ProductCode: "B-003", QuantityRemaining: 17})
	stockRepo.AddStock(entities.StockRecord{ProductCode: "B-004", QuantityRemaining: 11})

	// Two mills compete on flour; the cheaper one wins
	offerRepo.AddOffer(entities.SupplierOffer{ProductCode: "B-001", SupplierPhone: "6045550142", UnitPrice: decimal.RequireFromString("3.15")})
	offerRepo.AddOffer(entities.SupplierOffer{ProductCode: "B-001", SupplierPhone: "6045550199", UnitPrice: decimal.RequireFromString("2.95")})
	offerRepo.AddOffer(entities.SupplierOffer{ProductCode: "B-002", SupplierPhone: "6045550142", UnitPrice: decimal.RequireFromString("4.50")})
	offerRepo.AddOffer(entities.SupplierOffer{ProductCode: "B-003", SupplierPhone: "6045550142", UnitPrice: decimal.RequireFromString("1.10")})
	offerRepo.AddOffer(entities.SupplierOffer{ProductCode: "B-004", SupplierPhone: "6045550199", UnitPrice: decimal.RequireFromString("6.25")})

	productRepo.AddProduct(entities.Product{Code: "B-001", Name: "Whole Wheat Flour 2kg"})
	productRepo.AddProduct(entities.Product{Code: "B-002", Name: "Sourdough Loaf"})
	productRepo.AddProduct(entities.Product{Code: "B-003", Name: "Dry Yeast"})
	productRepo.AddProduct(entities.Product{Code: "B-004", Name: "Rye Flour"})

	supplierRepo.AddSupplier(entities.Supplier{Phone: "6045550142", Name: "Harbour Mills"})
	supplierRepo.AddSupplier(entities.Supplier{Phone: "6045550199", Name: "Prairie Grain Co"})
}
