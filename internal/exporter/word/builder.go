package word

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"stock-organizer/internal/exporter/common"
	"stock-organizer/internal/model"

	"github.com/nguyenthenguyen/docx"
)

const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Name() string        { return "word" }
func (e *WordExporter) Extension() string   { return "docx" }
func (e *WordExporter) ContentType() string { return DocxContentType }

func (e *WordExporter) Export(w io.Writer, summary *model.Summary, records []model.ProductRecord) error {
	if summary == nil {
		summary = model.BuildSummary(records, "", "")
	}

	// 1. Load the template from memory
	tpl, err := Template()
	if err != nil {
		return fmt.Errorf("failed to build template: %w", err)
	}

	r, err := docx.ReadDocxFromMemory(bytes.NewReader(tpl), int64(len(tpl)))
	if err != nil {
		return fmt.Errorf("failed to read docx template: %w", err)
	}
	defer r.Close()

	doc := r.Editable()

	// 2. Replace Summary Placeholders
	doc.Replace(PlaceholderDate, summary.GeneratedDate, -1)
	doc.Replace(PlaceholderSource, summary.SourceName, -1)
	doc.Replace(PlaceholderTotal, fmt.Sprintf("%d", summary.TotalRecords), -1)

	// 3. Inject content as plain text (the library handles XML encoding)
	doc.Replace(PlaceholderContent, BuildContent(summary, records), -1)

	if err := doc.Write(w); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}
	return nil
}

// BuildContent renders the per-warehouse listing as fixed-width text
func BuildContent(summary *model.Summary, records []model.ProductRecord) string {
	var sb strings.Builder

	sb.WriteString("RESUMEN\n")
	sb.WriteString(fmt.Sprintf("  • Productos con talla: %d\n", summary.SizedRecords))
	sb.WriteString(fmt.Sprintf("  • Bodegas: %d\n", len(summary.Warehouses)))
	sb.WriteString(fmt.Sprintf("  • Cantidad total: %g\n", summary.NumericTotal))
	if summary.TextQuantity > 0 {
		sb.WriteString(fmt.Sprintf("  • Cantidades no numéricas: %d\n", summary.TextQuantity))
	}
	sb.WriteString("\n" + strings.Repeat("=", 80) + "\n\n")

	groups := common.GroupByWarehouse(records)
	for i, g := range groups {
		sb.WriteString(fmt.Sprintf("BODEGA: %s (%d)\n", g.Label(), len(g.Records)))
		sb.WriteString(fmt.Sprintf("%-15s %-40s %-8s %s\n", "Código", "Nombre", "Talla", "Cantidad"))
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, rec := range g.Records {
			sb.WriteString(fmt.Sprintf("%-15s %-40s %-8s %s\n",
				truncate(rec.ProductCode, 15),
				truncate(rec.ProductName, 40),
				common.SizeText(rec.Size),
				common.QuantityText(rec.Quantity)))
		}

		if i < len(groups)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// truncate truncates a string to a maximum length in runes
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}
