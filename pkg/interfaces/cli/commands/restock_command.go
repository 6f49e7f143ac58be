package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vsinha/restock/pkg/application/services/restock"
	"github.com/vsinha/restock/pkg/infrastructure/logger"
	"github.com/vsinha/restock/pkg/infrastructure/repositories/flatfile"
	"github.com/vsinha/restock/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/restock/pkg/interfaces/cli/output"
)

// Config holds configuration for the restock command
type Config struct {
	DataDir          string
	StockFile        string
	AvailabilityFile string
	ProductsFile     string
	SuppliersFile    string
	OutputFile       string
	XLSXFile         string
	Policy           restock.Policy
	Help             bool

	// Stdout receives the displayed report; os.Stdout when nil
	Stdout io.Writer
}

// RestockCommand produces the daily restocking report
type RestockCommand struct {
	config Config
}

// NewRestockCommand creates a new restock command with the given configuration
func NewRestockCommand(config Config) *RestockCommand {
	if config.Stdout == nil {
		config.Stdout = os.Stdout
	}
	return &RestockCommand{
		config: config,
	}
}

// Execute runs the restock command
func (c *RestockCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	files := c.resolveFiles()
	logger.Debug(ctx).
		Str("stock", files.stock).
		Str("availability", files.availability).
		Str("products", files.products).
		Str("suppliers", files.suppliers).
		Msg("resolved input files")

	loader := flatfile.NewLoader()

	stock, err := loader.LoadStock(files.stock)
	if err != nil {
		return fmt.Errorf("error loading stock: %w", err)
	}

	offers, err := loader.LoadOffers(files.availability)
	if err != nil {
		return fmt.Errorf("error loading availability: %w", err)
	}

	products, err := loader.LoadProducts(files.products)
	if err != nil {
		return fmt.Errorf("error loading products: %w", err)
	}

	suppliers, err := loader.LoadSuppliers(files.suppliers)
	if err != nil {
		return fmt.Errorf("error loading suppliers: %w", err)
	}

	logger.Debug(ctx).
		Int("stock", len(stock)).
		Int("offers", len(offers)).
		Int("products", len(products)).
		Int("suppliers", len(suppliers)).
		Msg("data loaded")

	// Create repositories
	stockRepo := memory.NewStockRepository(len(stock))
	if err := stockRepo.LoadStock(stock); err != nil {
		return fmt.Errorf("failed to load stock into repository: %w", err)
	}

	offerRepo := memory.NewOfferRepository(len(offers))
	if err := offerRepo.LoadOffers(offers); err != nil {
		return fmt.Errorf("failed to load offers into repository: %w", err)
	}

	productRepo := memory.NewProductRepository(len(products))
	if err := productRepo.LoadProducts(products); err != nil {
		return fmt.Errorf("failed to load products into repository: %w", err)
	}

	supplierRepo := memory.NewSupplierRepository(len(suppliers))
	if err := supplierRepo.LoadSuppliers(suppliers); err != nil {
		return fmt.Errorf("failed to load suppliers into repository: %w", err)
	}
	logger.Debug(ctx).
		Int("offered_products", offerRepo.Len()).
		Msg("reduced offers to cheapest per product")

	startTime := time.Now()
	result, err := restock.NewRestockServiceWithPolicy(c.config.Policy).Plan(ctx, stockRepo, offerRepo, productRepo)
	if err != nil {
		return fmt.Errorf("error planning restock: %w", err)
	}

	outputConfig := output.Config{
		OutputFile: files.output,
		XLSXFile:   files.xlsx,
	}
	if err := output.Generate(result, supplierRepo, outputConfig, c.config.Stdout); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	logger.Info(ctx).
		Str("report", files.output).
		Int("order_lines", len(result.OrderLines)).
		Str("grand_total", result.Summary.GrandTotal.StringFixed(restock.CostPlaces)).
		Dur("elapsed", time.Since(startTime)).
		Msg("restock report written")

	return nil
}

type inputFiles struct {
	stock        string
	availability string
	products     string
	suppliers    string
	output       string
	xlsx         string
}

// resolveFiles joins relative file names onto the data directory
func (c *RestockCommand) resolveFiles() inputFiles {
	return inputFiles{
		stock:        c.resolve(c.config.StockFile),
		availability: c.resolve(c.config.AvailabilityFile),
		products:     c.resolve(c.config.ProductsFile),
		suppliers:    c.resolve(c.config.SuppliersFile),
		output:       c.resolve(c.config.OutputFile),
		xlsx:         c.resolve(c.config.XLSXFile),
	}
}

func (c *RestockCommand) resolve(name string) string {
	if name == "" || filepath.IsAbs(name) || c.config.DataDir == "" {
		return name
	}
	return filepath.Join(c.config.DataDir, name)
}

// showHelp displays the help message
func (c *RestockCommand) showHelp() {
	fmt.Fprint(c.config.Stdout, `restock - daily restocking report

USAGE:
    restock [options]

OPTIONS:
    -data <dir>            Directory holding the input files (default: .)
    -stock <file>          Shelf inventory, product_code#quantity (default: onshelves.txt)
    -availability <file>   Supplier offers, product_code,phone,price (default: availability.txt)
    -products <file>       Catalog, product_code;name (default: products.txt)
    -suppliers <file>      Directory, phone;name (default: suppliers.txt)
    -output <file>         Report file, overwritten each run (default: orders.txt)
    -xlsx <file>           Also export the orders to a workbook (optional)
    -log-level <level>     debug, info, warn, error (default: warn)
    -help                  Show this help message

Every option can also be set through the environment (RESTOCK_DATA_DIR,
RESTOCK_STOCK_FILE, RESTOCK_AVAILABILITY_FILE, RESTOCK_PRODUCTS_FILE,
RESTOCK_SUPPLIERS_FILE, RESTOCK_OUTPUT, RESTOCK_XLSX_OUTPUT, LOG_LEVEL) or a .env file.
RESTOCK_REORDER_THRESHOLD (default 20) and RESTOCK_TARGET_LEVEL (default 50)
control which products are reordered and how many units are ordered.
`)
}
