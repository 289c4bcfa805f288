package organizer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"stock-organizer/internal/blockparser"
	"stock-organizer/internal/model"
	"stock-organizer/internal/sizes"
)

func row(cells ...string) model.Row {
	r := make(model.Row, len(cells))
	for i, c := range cells {
		r[i] = model.ParseValue(c)
	}
	return r
}

func twelveRowSheet() model.RawSheet {
	return model.RawSheet{Name: "Saldos", Rows: []model.Row{
		row("Producto: Camisetas", "", "", ""),
		row("Bodega: Central", "", "", ""),
		row("CAM-101", "Camiseta Basica TALLA XL", "F-01", "12"),
		row("CAM-102", "Camiseta Polo T S", "F-02", "4"),
		row("16", "", "", "16"),
		row("", "", "", ""),
		row("Producto: Pantalones", "", "", ""),
		row("Bodega: Norte", "", "", ""),
		row("PAN-102", "Pantalon Cargo", "F-03", "7"),
		row("PAN-103", "Pantalon Jean TALLA M", "F-04", "N/D"),
		row("7", "", "", "7"),
		row("", "", "", ""),
	}}
}

func TestOrganizeTwelveRowSheet(t *testing.T) {
	opts := blockparser.Options{SkipRows: 0, MinColumns: 4, Layout: blockparser.LayoutDetail}
	org := New(opts, nil)

	records, err := org.Organize(twelveRowSheet())
	if err != nil {
		t.Fatalf("Organize failed: %v", err)
	}

	want := []model.ProductRecord{
		{Warehouse: "Central", ProductCode: "CAM-101", ProductName: "Camiseta Basica", Size: "XL", Quantity: model.ParseValue("12")},
		{Warehouse: "Central", ProductCode: "CAM-102", ProductName: "Camiseta Polo", Size: "S", Quantity: model.ParseValue("4")},
		{Warehouse: "Norte", ProductCode: "PAN-102", ProductName: "Pantalon Cargo", Size: "", Quantity: model.ParseValue("7")},
		{Warehouse: "Norte", ProductCode: "PAN-103", ProductName: "Pantalon Jean", Size: "M", Quantity: model.TextValue("N/D")},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("Organize() mismatch (-want +got):\n%s", diff)
	}

	if !records[0].Quantity.IsNumber() || records[0].Quantity.Number != 12 {
		t.Errorf("numeric quantity lost: %+v", records[0].Quantity)
	}
}

func TestOrganizeDefaultOffsetSkipsPreamble(t *testing.T) {
	preamble := make([]model.Row, 8)
	for i := range preamble {
		preamble[i] = row("Empresa S.A.", "CAM-999 fake", "", "1")
	}
	sheet := twelveRowSheet()
	sheet.Rows = append(preamble, sheet.Rows...)

	records, err := New(blockparser.DefaultOptions(), nil).Organize(sheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 4 {
		t.Errorf("Expected 4 records after skipping the preamble, got %d", len(records))
	}
}

func TestOrganizeMalformed(t *testing.T) {
	sheet := model.RawSheet{Name: "bad", Rows: []model.Row{
		row("Bodega: A", "", ""),
		row("CAM-101", "Camiseta", "F-01"),
	}}
	opts := blockparser.Options{SkipRows: 0, MinColumns: 4, Layout: blockparser.LayoutDetail}

	records, err := New(opts, nil).Organize(sheet)
	if records != nil {
		t.Errorf("no partial output expected, got %v", records)
	}
	var malformed *blockparser.MalformedRowError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedRowError, got %v", err)
	}
	if malformed.Row != 1 {
		t.Errorf("Row = %d, want 1", malformed.Row)
	}
}

func TestOrganizeParsesBeforeSizing(t *testing.T) {
	// A marker row whose remainder looks like a size must stay a marker
	sheet := model.RawSheet{Rows: []model.Row{
		row("Bodega: Tienda T M", "", "", ""),
		row("CAM-101", "Camiseta T L", "", "2"),
	}}
	opts := blockparser.Options{SkipRows: 0, MinColumns: 4, Layout: blockparser.LayoutDetail}

	records, err := New(opts, nil).Organize(sheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Warehouse != "Tienda T M" || records[0].Size != "L" {
		t.Errorf("unexpected records: %v", records)
	}
}

func TestApplySizesNumericGrammar(t *testing.T) {
	ext, err := sizes.New(sizes.Options{Grammar: sizes.GrammarNumeric, Anchor: sizes.AnchorEnd})
	if err != nil {
		t.Fatal(err)
	}
	records := []model.ProductRecord{
		{ProductName: "Jean Slim 32 L"},
		{ProductName: "Gorra"},
	}

	n := New(blockparser.DefaultOptions(), ext).ApplySizes(records)
	if n != 1 {
		t.Errorf("sized = %d, want 1", n)
	}
	if records[0].ProductName != "Jean Slim" || records[0].Size != "32L" {
		t.Errorf("unexpected record: %+v", records[0])
	}
	if records[1].Size != "" || records[1].ProductName != "Gorra" {
		t.Errorf("unsized record changed: %+v", records[1])
	}
}
