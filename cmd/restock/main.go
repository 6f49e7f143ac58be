package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vsinha/restock/pkg/application/services/restock"
	"github.com/vsinha/restock/pkg/domain/entities"
	"github.com/vsinha/restock/pkg/infrastructure/config"
	"github.com/vsinha/restock/pkg/infrastructure/logger"
	"github.com/vsinha/restock/pkg/interfaces/cli/commands"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Command line flags; defaults come from the environment
	var (
		dataDir          = flag.String("data", cfg.DataDir, "Directory holding the input files")
		stockFile        = flag.String("stock", cfg.StockFile, "Shelf inventory file")
		availabilityFile = flag.String("availability", cfg.AvailabilityFile, "Supplier availability file")
		productsFile     = flag.String("products", cfg.ProductsFile, "Product catalog file")
		suppliersFile    = flag.String("suppliers", cfg.SuppliersFile, "Supplier directory file")
		outputFile       = flag.String("output", cfg.OutputFile, "Report file, overwritten each run")
		xlsxFile         = flag.String("xlsx", cfg.XLSXOutput, "Optional workbook export")
		logLevel         = flag.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
		help             = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	logger.Init("restock", cfg.LogPretty)
	logger.SetLevel(*logLevel)

	// Create command configuration
	cmdConfig := commands.Config{
		DataDir:          *dataDir,
		StockFile:        *stockFile,
		AvailabilityFile: *availabilityFile,
		ProductsFile:     *productsFile,
		SuppliersFile:    *suppliersFile,
		OutputFile:       *outputFile,
		XLSXFile:         *xlsxFile,
		Policy: restock.Policy{
			Threshold:   entities.Quantity(cfg.ReorderThreshold),
			TargetLevel: entities.Quantity(cfg.TargetLevel),
		},
		Help: *help,
	}

	// Create and execute command
	cmd := commands.NewRestockCommand(cmdConfig)
	ctx := logger.Logger.WithContext(context.Background())

	if err := cmd.Execute(ctx); err != nil {
		logger.Error(ctx).Err(err).Msg("restock run failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
