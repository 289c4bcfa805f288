package model

import "testing"

func TestRowCell(t *testing.T) {
	r := Row{TextValue("a")}
	if r.Cell(0).Text != "a" {
		t.Error("Cell(0) should return the first value")
	}
	if !r.Cell(5).IsEmpty() || !r.Cell(-1).IsEmpty() {
		t.Error("out of range cells should be empty")
	}
}

func TestRawSheetWidth(t *testing.T) {
	s := RawSheet{Rows: []Row{{{}, {}}, {{}, {}, {}, {}}, {}}}
	if s.Width() != 4 {
		t.Errorf("Width() = %d, want 4", s.Width())
	}
}

func TestRecordCells(t *testing.T) {
	rec := ProductRecord{ProductCode: "CAM-101", ProductName: "Camiseta", Quantity: NumberValue(3)}
	cells := rec.Cells()

	if len(cells) != len(OutputHeaders) {
		t.Fatalf("Cells() has %d columns, want %d", len(cells), len(OutputHeaders))
	}
	if cells[0] != nil || cells[3] != nil {
		t.Errorf("missing warehouse and size should be nil: %v", cells)
	}
	if cells[1] != "CAM-101" || cells[4] != 3.0 {
		t.Errorf("unexpected cells: %v", cells)
	}
}

func TestClone(t *testing.T) {
	src := []ProductRecord{{ProductCode: "A"}}
	dst := Clone(src)
	dst[0].ProductCode = "B"
	if src[0].ProductCode != "A" {
		t.Error("Clone must not share the backing array")
	}
}

func TestBuildSummary(t *testing.T) {
	records := []ProductRecord{
		{Warehouse: "Central", Size: "XL", Quantity: NumberValue(10)},
		{Warehouse: "Norte", Size: "M", Quantity: NumberValue(2)},
		{Warehouse: "Central", Quantity: TextValue("N/D")},
		{Warehouse: "Central", Size: "M", Quantity: NumberValue(1.5)},
		{Quantity: Value{}},
	}

	s := BuildSummary(records, "2026-10-19", "inventario.xlsx")

	if s.TotalRecords != 5 || s.SizedRecords != 3 || s.TextQuantity != 1 || s.NumericTotal != 13.5 {
		t.Errorf("unexpected totals: %+v", s)
	}
	if len(s.Warehouses) != 3 {
		t.Fatalf("Expected 3 warehouse stats, got %d", len(s.Warehouses))
	}
	central := s.Warehouses[0]
	if central.Name != "Central" || central.Records != 3 || central.QuantitySum != 11.5 || central.SizedRecords != 2 {
		t.Errorf("unexpected Central stat: %+v", central)
	}
	if s.Warehouses[2].Name != "" {
		t.Errorf("records without warehouse should group under \"\": %+v", s.Warehouses[2])
	}

	if len(s.Sizes) != 2 || s.Sizes[0] != (SizeStat{Size: "M", Count: 2}) || s.Sizes[1] != (SizeStat{Size: "XL", Count: 1}) {
		t.Errorf("unexpected size stats: %+v", s.Sizes)
	}
}
