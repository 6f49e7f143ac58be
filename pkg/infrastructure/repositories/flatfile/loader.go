package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/restock/pkg/domain/entities"
)

// Field delimiters for each input file
const (
	StockDelimiter        = "#"
	AvailabilityDelimiter = ","
	ProductDelimiter      = ";"
	SupplierDelimiter     = ";"
)

// Loader handles loading restock data from delimited text files.
// Files have no header row; every non-blank line is data.
type Loader struct{}

// NewLoader creates a new flat file loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadStock loads shelf quantities from lines of product_code#quantity_remaining
func (l *Loader) LoadStock(filename string) ([]*entities.StockRecord, error) {
	var records []*entities.StockRecord

	err := readRecords(filename, StockDelimiter, 2, func(fields []string) error {
		quantity, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid quantity_remaining %q", fields[1])
		}

		record, err := entities.NewStockRecord(entities.ProductCode(fields[0]), entities.Quantity(quantity))
		if err != nil {
			return err
		}

		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// LoadOffers loads supplier offers from lines of product_code,supplier_phone,unit_price.
// Every row is returned; reducing to the cheapest offer is the repository's job.
func (l *Loader) LoadOffers(filename string) ([]*entities.SupplierOffer, error) {
	var offers []*entities.SupplierOffer

	err := readRecords(filename, AvailabilityDelimiter, 3, func(fields []string) error {
		price, err := decimal.NewFromString(fields[2])
		if err != nil {
			return fmt.Errorf("invalid unit_price %q", fields[2])
		}

		offer, err := entities.NewSupplierOffer(entities.ProductCode(fields[0]), entities.Phone(fields[1]), price)
		if err != nil {
			return err
		}

		offers = append(offers, offer)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return offers, nil
}

// LoadProducts loads the catalog from lines of product_code;product_name
func (l *Loader) LoadProducts(filename string) ([]*entities.Product, error) {
	var products []*entities.Product

	err := readRecords(filename, ProductDelimiter, 2, func(fields []string) error {
		product, err := entities.NewProduct(entities.ProductCode(fields[0]), fields[1])
		if err != nil {
			return err
		}

		products = append(products, product)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// LoadSuppliers loads the directory from lines of supplier_phone;supplier_name
func (l *Loader) LoadSuppliers(filename string) ([]*entities.Supplier, error) {
	var suppliers []*entities.Supplier

	err := readRecords(filename, SupplierDelimiter, 2, func(fields []string) error {
		supplier, err := entities.NewSupplier(entities.Phone(fields[0]), fields[1])
		if err != nil {
			return err
		}

		suppliers = append(suppliers, supplier)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return suppliers, nil
}

// readRecords splits each non-blank line of a file on delimiter and hands the
// trimmed fields to parse. Any failure is reported as a *entities.ParseError
// carrying the file name and 1-based line number.
func readRecords(filename, delimiter string, fieldCount int, parse func(fields []string) error) error {
	file, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s: %w", entities.ErrFileNotFound, filename, err)
		}
		return fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	name := filepath.Base(filename)
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, delimiter)
		if len(fields) != fieldCount {
			return &entities.ParseError{
				File:   name,
				Line:   lineNo,
				Reason: fmt.Sprintf("expected %d fields separated by %q, got %d", fieldCount, delimiter, len(fields)),
			}
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		if err := parse(fields); err != nil {
			return &entities.ParseError{
				File:   name,
				Line:   lineNo,
				Reason: "invalid record",
				Err:    err,
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	return nil
}
