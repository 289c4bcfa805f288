package session

import (
	"errors"
	"testing"

	"stock-organizer/internal/model"
)

func testRecords() []model.ProductRecord {
	return []model.ProductRecord{
		{Warehouse: "A", ProductCode: "CAM-101", ProductName: "Camiseta", Size: "XL", Quantity: model.NumberValue(10)},
		{Warehouse: "B", ProductCode: "PAN-102", ProductName: "Pantalon", Quantity: model.NumberValue(4)},
		{Warehouse: "A", ProductCode: "GOR-200", ProductName: "Gorra", Quantity: model.NumberValue(1)},
		{ProductCode: "MED-300", ProductName: "Medias", Quantity: model.NumberValue(7)},
	}
}

func strPtr(s string) *string { return &s }

func TestNewCopiesRecords(t *testing.T) {
	src := testRecords()
	s := New(src)

	src[0].ProductCode = "CHANGED"
	if got := s.Records("")[0].ProductCode; got != "CAM-101" {
		t.Errorf("session should own its copy, got %q", got)
	}

	out := s.Snapshot()
	out[0].ProductCode = "CHANGED"
	if got := s.Records("")[0].ProductCode; got != "CAM-101" {
		t.Errorf("snapshot should be a copy, got %q", got)
	}
}

func TestWarehouses(t *testing.T) {
	s := New(testRecords())
	got := s.Warehouses()
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("Warehouses() = %v, want [A B]", got)
	}
}

func TestRecordsFilter(t *testing.T) {
	s := New(testRecords())

	if n := len(s.Records("")); n != 4 {
		t.Errorf("all records: got %d", n)
	}
	a := s.Records("A")
	if len(a) != 2 || a[0].ProductCode != "CAM-101" || a[1].ProductCode != "GOR-200" {
		t.Errorf("warehouse A: %v", a)
	}
	if n := len(s.Records("Z")); n != 0 {
		t.Errorf("unknown warehouse: got %d", n)
	}
}

func TestUpdateByWarehousePosition(t *testing.T) {
	s := New(testRecords())

	rec, warnings, err := s.Update("A", 1, Edit{Code: strPtr(" GOR-201 "), Name: strPtr("Gorra Azul")})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if rec.ProductCode != "GOR-201" || rec.ProductName != "Gorra Azul" {
		t.Errorf("updated record: %v", rec)
	}

	// Third record overall, second of warehouse A
	if got := s.Records("")[2]; got.ProductCode != "GOR-201" {
		t.Errorf("edit landed on the wrong row: %v", got)
	}
	// Quantity untouched
	if got := s.Records("")[2].Quantity.Number; got != 1 {
		t.Errorf("quantity changed: %v", got)
	}
}

func TestUpdateQuantity(t *testing.T) {
	s := New(testRecords())

	num := model.NumberValue(25)
	rec, warnings, err := s.Update("", 0, Edit{Quantity: &num})
	if err != nil || len(warnings) != 0 {
		t.Fatalf("numeric edit: err=%v warnings=%v", err, warnings)
	}
	if rec.Quantity.Number != 25 {
		t.Errorf("quantity: %v", rec.Quantity)
	}

	// Numeric text is stored as a number
	text := model.TextValue("8")
	rec, warnings, _ = s.Update("B", 0, Edit{Quantity: &text})
	if !rec.Quantity.IsNumber() || rec.Quantity.Number != 8 || len(warnings) != 0 {
		t.Errorf("numeric text: %v %v", rec.Quantity, warnings)
	}

	// Non-numeric text is kept and flagged
	bad := model.TextValue("doce")
	rec, warnings, err = s.Update("B", 0, Edit{Quantity: &bad})
	if err != nil {
		t.Fatalf("non-numeric quantity must not fail: %v", err)
	}
	if rec.Quantity.Text != "doce" || rec.Quantity.IsNumber() {
		t.Errorf("text quantity should be kept: %v", rec.Quantity)
	}
	if len(warnings) != 1 || warnings[0].Field != "quantity" || warnings[0].Value != "doce" {
		t.Errorf("expected quantity warning, got %v", warnings)
	}
}

func TestUpdateEmptyCodeWarns(t *testing.T) {
	s := New(testRecords())
	_, warnings, err := s.Update("", 3, Edit{Code: strPtr("  ")})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 || warnings[0].Field != "code" {
		t.Errorf("expected code warning, got %v", warnings)
	}
}

func TestUpdateOutOfRange(t *testing.T) {
	s := New(testRecords())

	cases := []struct {
		warehouse string
		position  int
	}{
		{"", 4},
		{"", -1},
		{"A", 2},
		{"B", 1},
		{"Z", 0},
	}
	for _, c := range cases {
		_, _, err := s.Update(c.warehouse, c.position, Edit{Name: strPtr("x")})
		if !errors.Is(err, ErrPositionOutOfRange) {
			t.Errorf("Update(%q, %d): expected ErrPositionOutOfRange, got %v", c.warehouse, c.position, err)
		}
	}
}

func TestEditIsEmpty(t *testing.T) {
	if !(Edit{}).IsEmpty() {
		t.Error("zero edit should be empty")
	}
	if (Edit{Name: strPtr("x")}).IsEmpty() {
		t.Error("edit with name should not be empty")
	}
}
