package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/vsinha/restock/pkg/application/dto"
	"github.com/vsinha/restock/pkg/domain/repositories"
)

// SuppliersSheet is the workbook sheet holding per-supplier totals
const SuppliersSheet = "Suppliers"

// BuildWorkbook lays out the export in memory: order lines on the first sheet,
// supplier totals with the top suppliers flagged on a second sheet. Every
// supplier is looked up here, so a directory gap fails before anything is saved.
func BuildWorkbook(result *dto.RestockResult, suppliers repositories.SupplierRepository) (*excelize.File, error) {
	f := excelize.NewFile()

	orders := f.GetSheetName(0)
	writeRow(f, orders, 1, "product_code", "product_name", "quantity", "bulk", "supplier_phone", "supplier", "line_cost")
	for i, line := range result.OrderLines {
		supplier, err := suppliers.GetSupplier(line.SupplierPhone)
		if err != nil {
			f.Close()
			return nil, err
		}
		writeRow(f, orders, i+2,
			string(line.ProductCode),
			line.ProductName,
			int64(line.QuantityNeeded),
			line.IsBulk(),
			FormatPhone(line.SupplierPhone),
			supplier.Name,
			line.LineCost.InexactFloat64(),
		)
	}

	if _, err := f.NewSheet(SuppliersSheet); err != nil {
		f.Close()
		return nil, err
	}

	top := make(map[string]bool, len(result.Summary.TopSuppliers))
	for _, phone := range result.Summary.TopSuppliers {
		top[string(phone)] = true
	}

	writeRow(f, SuppliersSheet, 1, "supplier_phone", "supplier", "total_cost", "highest_cost")
	for i, st := range result.Summary.SupplierTotals {
		supplier, err := suppliers.GetSupplier(st.Phone)
		if err != nil {
			f.Close()
			return nil, err
		}
		writeRow(f, SuppliersSheet, i+2,
			FormatPhone(st.Phone),
			supplier.Name,
			st.Total.InexactFloat64(),
			top[string(st.Phone)],
		)
	}
	writeRow(f, SuppliersSheet, len(result.Summary.SupplierTotals)+2,
		"", "Total", result.Summary.GrandTotal.InexactFloat64(), "")

	return f, nil
}

// SaveWorkbook writes the workbook, creating the parent directory if needed
func SaveWorkbook(f *excelize.File, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(outputPath), err)
	}
	return f.SaveAs(outputPath)
}

func writeRow(f *excelize.File, sheet string, row int, values ...any) {
	for i, value := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheet, cell, value)
	}
}
