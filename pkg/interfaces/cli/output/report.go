package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vsinha/restock/pkg/application/dto"
	"github.com/vsinha/restock/pkg/domain/entities"
	"github.com/vsinha/restock/pkg/domain/repositories"
)

// Table layout of the daily order report
const (
	tableDivider = "+--------------+------------------+--------+----------------+----------+\n"
	tableHeader  = "| Product code | Product Name     |Quantity| Supplier       | Cost     |\n"
	totalDivider = "+--------------+---------------------------+\n"

	codeWidth     = 14
	nameWidth     = 18
	bulkNameWidth = 17
	nameMaxLength = 16
	qtyWidth      = 7
	phoneWidth    = 16
	costWidth     = 7
	totalWidth    = 10

	bulkMarker = "*"
)

// Config holds configuration for output generation
type Config struct {
	// OutputFile is where the text report is persisted
	OutputFile string
	// XLSXFile enables the workbook export when non-empty
	XLSXFile string
}

// Generate renders the report, persists it, displays the persisted copy on
// stdout, and optionally exports a workbook. Rendering and the workbook are
// completed before the report file is touched, so a failed run leaves no report.
func Generate(result *dto.RestockResult, suppliers repositories.SupplierRepository, config Config, stdout io.Writer) error {
	report, err := RenderReport(result, suppliers)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	var workbook *excelize.File
	if config.XLSXFile != "" {
		workbook, err = BuildWorkbook(result, suppliers)
		if err != nil {
			return fmt.Errorf("failed to export workbook: %w", err)
		}
		defer workbook.Close()

		if err := SaveWorkbook(workbook, config.XLSXFile); err != nil {
			return fmt.Errorf("failed to export workbook: %w", err)
		}
	}

	if err := NewFileSink(config.OutputFile).Publish(report, stdout); err != nil {
		if workbook != nil {
			os.Remove(config.XLSXFile)
		}
		return err
	}

	return nil
}

// RenderReport formats the order table, the grand total and one line per top
// supplier. Supplier names come from the directory; an unknown top supplier
// fails with *entities.MissingSupplierError.
func RenderReport(result *dto.RestockResult, suppliers repositories.SupplierRepository) (string, error) {
	highlights, err := highestCostLines(result.Summary, suppliers)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	b.WriteString(tableDivider)
	b.WriteString(tableHeader)
	b.WriteString(tableDivider)
	for _, line := range result.OrderLines {
		b.WriteString(formatOrderLine(line))
		b.WriteString("\n")
	}
	b.WriteString(tableDivider)
	fmt.Fprintf(&b, "| Total Cost   |                $%s|\n", alignRight(result.Summary.GrandTotal.StringFixed(2), totalWidth))
	b.WriteString(totalDivider)
	for _, line := range highlights {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String(), nil
}

func formatOrderLine(line entities.OrderLine) string {
	name := truncate(line.ProductName, nameMaxLength)
	if line.IsBulk() {
		name = bulkMarker + center(name, bulkNameWidth)
	} else {
		name = center(name, nameWidth)
	}

	return "|" + center(string(line.ProductCode), codeWidth) +
		"|" + name +
		"|" + fmt.Sprintf("%*d", qtyWidth, line.QuantityNeeded) +
		" |" + center(FormatPhone(line.SupplierPhone), phoneWidth) +
		"| $" + alignRight(line.LineCost.StringFixed(2), costWidth) +
		" |"
}

func highestCostLines(summary dto.CostSummary, suppliers repositories.SupplierRepository) ([]string, error) {
	lines := make([]string, 0, len(summary.TopSuppliers))

	for _, phone := range summary.TopSuppliers {
		supplier, err := suppliers.GetSupplier(phone)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fmt.Sprintf("Highest cost: %s %s [$%s]",
			supplier.Name, FormatPhone(phone), summary.HighestCost.StringFixed(2)))
	}

	return lines, nil
}
