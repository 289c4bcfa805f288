package exporter

import (
	"fmt"
	"io"

	"stock-organizer/internal/exporter/common"
	"stock-organizer/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	// InventorySheet holds the organized records; it is always the first sheet
	InventorySheet = "Inventario"
	// SummarySheet holds per-warehouse and per-size totals
	SummarySheet = "Resumen"

	// XLSXContentType is the download MIME type of the organized workbook
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExcelExporter handles the Excel generation
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

func (e *ExcelExporter) Name() string        { return "excel" }
func (e *ExcelExporter) Extension() string   { return "xlsx" }
func (e *ExcelExporter) ContentType() string { return XLSXContentType }

// Export generates the organized workbook
func (e *ExcelExporter) Export(w io.Writer, summary *model.Summary, records []model.ProductRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	// Rename the default sheet so the inventory stays at index 0
	if err := f.SetSheetName("Sheet1", InventorySheet); err != nil {
		return err
	}

	// 1. Inventory Sheet
	if err := e.writeInventory(f, styler, records); err != nil {
		return err
	}

	// 2. Summary Sheet
	if summary != nil {
		if err := e.writeSummary(f, styler, summary); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// --- Inventory Sheet Logic ---

func (e *ExcelExporter) writeInventory(f *excelize.File, s *Styler, records []model.ProductRecord) error {
	sheet := InventorySheet

	e.writeRow(f, sheet, 1, model.OutputHeaders, s.HeaderStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	row := 2
	for _, rec := range records {
		cells := rec.Cells()
		start, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, start, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}

		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), s.DefaultStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("E%d", row), fmt.Sprintf("E%d", row),
			s.QuantityStyleFor(rec.Quantity.IsNumber(), rec.Quantity.IsEmpty()))
		row++
	}

	if len(records) > 0 {
		if err := f.AutoFilter(sheet, fmt.Sprintf("A1:E%d", row-1), nil); err != nil {
			return err
		}
	}

	f.SetColWidth(sheet, "A", "A", 22) // Warehouse
	f.SetColWidth(sheet, "B", "B", 18) // Code
	f.SetColWidth(sheet, "C", "C", 45) // Name
	f.SetColWidth(sheet, "D", "E", 12) // Size/Quantity

	return nil
}

// --- Summary Sheet Logic ---

func (e *ExcelExporter) writeSummary(f *excelize.File, s *Styler, summary *model.Summary) error {
	sheet := SummarySheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	// Section A: Totals
	e.writeRow(f, sheet, 1, []string{"Métrica", "Valor"}, s.HeaderStyle)
	row := 2

	metrics := []struct {
		Key string
		Val interface{}
	}{
		{"Fecha", summary.GeneratedDate},
		{"Archivo", summary.SourceName},
		{"Total productos", summary.TotalRecords},
		{"Productos con talla", summary.SizedRecords},
		{"Cantidad total", summary.NumericTotal},
		{"Cantidades no numéricas", summary.TextQuantity},
	}

	for _, m := range metrics {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.Key)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Val)
		row++
	}

	row += 2 // Spacer

	// Section B: Per warehouse
	e.writeRow(f, sheet, row, []string{"Bodega", "Productos", "Con talla", "Cantidad"}, s.HeaderStyle)
	row++

	for _, wh := range summary.Warehouses {
		name := wh.Name
		if name == "" {
			name = common.NoWarehouseLabel
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), wh.Records)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), wh.SizedRecords)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), wh.QuantitySum)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), s.DefaultStyle)
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), summary.TotalRecords)
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), summary.SizedRecords)
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), summary.NumericTotal)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), s.TotalStyle)
	row += 3

	// Section C: Per size
	if len(summary.Sizes) > 0 {
		e.writeRow(f, sheet, row, []string{"Talla", "Productos"}, s.HeaderStyle)
		row++
		for _, sz := range summary.Sizes {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), sz.Size)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), sz.Count)
			row++
		}
	}

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "D", 14)

	return nil
}

func (e *ExcelExporter) writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}
