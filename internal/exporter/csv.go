package exporter

import (
	"encoding/csv"
	"io"
	"strconv"

	"stock-organizer/internal/model"
)

// CSVExporter writes the organized rows as UTF-8 CSV with the output header
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Name() string        { return "csv" }
func (e *CSVExporter) Extension() string   { return "csv" }
func (e *CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }

func (e *CSVExporter) Export(w io.Writer, _ *model.Summary, records []model.ProductRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(model.OutputHeaders); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{
			rec.Warehouse,
			rec.ProductCode,
			rec.ProductName,
			rec.Size,
			csvQuantity(rec.Quantity),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvQuantity(v model.Value) string {
	if v.IsNumber() {
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
	return v.Text
}
