package html

import (
	"bytes"
	"strings"
	"testing"

	"stock-organizer/internal/exporter/common"
	"stock-organizer/internal/model"
)

func TestHTMLExport(t *testing.T) {
	records := []model.ProductRecord{
		{Warehouse: "Bodega Central", ProductCode: "CAM-101", ProductName: "Camiseta <Basica>", Size: "XL", Quantity: model.NumberValue(12)},
		{Warehouse: "Bodega Norte", ProductCode: "PAN-102", ProductName: "Pantalon Cargo", Quantity: model.TextValue("N/A")},
		{ProductCode: "GOR-200", ProductName: "Gorra"},
	}
	summary := model.BuildSummary(records, "2026-10-19", "inventario.xlsx")

	var buf bytes.Buffer
	if err := NewHTMLExporter().Export(&buf, summary, records); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Bodega Central",
		"Bodega Norte",
		common.NoWarehouseLabel,
		"Camiseta &lt;Basica&gt;",
		`<span class="size-badge">XL</span>`,
		`class="qty text"`,
		model.HeaderQuantity,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// Groups keep first-appearance order
	if strings.Index(out, "Bodega Central") > strings.Index(out, "Bodega Norte") {
		t.Error("warehouse order not preserved")
	}
}

func TestHTMLExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewHTMLExporter().Export(&buf, nil, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No se encontraron productos") {
		t.Error("empty report should say no products were found")
	}
}
