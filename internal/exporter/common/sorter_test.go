package common

import (
	"testing"

	"stock-organizer/internal/model"
)

func TestGroupByWarehouse(t *testing.T) {
	records := []model.ProductRecord{
		{Warehouse: "B", ProductCode: "1"},
		{Warehouse: "A", ProductCode: "2"},
		{Warehouse: "B", ProductCode: "3"},
		{Warehouse: "", ProductCode: "4"},
	}

	groups := GroupByWarehouse(records)
	if len(groups) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(groups))
	}

	if groups[0].Name != "B" || len(groups[0].Records) != 2 {
		t.Errorf("Unexpected first group: %+v", groups[0])
	}
	if groups[0].Records[1].ProductCode != "3" {
		t.Errorf("Source order lost inside group: %+v", groups[0].Records)
	}
	if groups[2].Label() != NoWarehouseLabel {
		t.Errorf("Empty warehouse label = %q", groups[2].Label())
	}
}

func TestTextHelpers(t *testing.T) {
	if QuantityText(model.Value{}) != "-" {
		t.Error("Empty quantity should render as -")
	}
	if QuantityText(model.NumberValue(2.5)) != "2.5" {
		t.Error("Numeric quantity should render its text")
	}
	if SizeText("") != "-" || SizeText("XL") != "XL" {
		t.Error("Unexpected size rendering")
	}
}
