package html

import (
	"html/template"
	"io"

	"stock-organizer/internal/exporter/common"
	"stock-organizer/internal/model"
)

type HTMLExporter struct {
	tmpl *template.Template
}

func NewHTMLExporter() *HTMLExporter {
	tmpl := template.Must(template.New("inventory-report").Funcs(template.FuncMap{
		"quantity": common.QuantityText,
		"size":     common.SizeText,
		"textQty": func(v model.Value) bool {
			return !v.IsEmpty() && !v.IsNumber()
		},
		"add": func(a, b int) int {
			return a + b
		},
	}).Parse(InventoryReportTemplate))

	return &HTMLExporter{tmpl: tmpl}
}

func (e *HTMLExporter) Name() string        { return "html" }
func (e *HTMLExporter) Extension() string   { return "html" }
func (e *HTMLExporter) ContentType() string { return "text/html; charset=utf-8" }

// ReportData is the template input
type ReportData struct {
	Summary *model.Summary
	Headers []string
	Groups  []common.WarehouseGroup
}

func (e *HTMLExporter) Export(w io.Writer, summary *model.Summary, records []model.ProductRecord) error {
	if summary == nil {
		summary = model.BuildSummary(records, "", "")
	}

	data := ReportData{
		Summary: summary,
		Headers: model.OutputHeaders,
		Groups:  common.GroupByWarehouse(records),
	}

	return e.tmpl.Execute(w, data)
}
