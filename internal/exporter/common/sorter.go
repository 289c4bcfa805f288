package common

import (
	"strings"

	"stock-organizer/internal/model"
)

// NoWarehouseLabel is shown for records read before any "Bodega:" marker
const NoWarehouseLabel = "(sin bodega)"

// WarehouseGroup is the slice of records belonging to one warehouse
type WarehouseGroup struct {
	Name    string
	Records []model.ProductRecord
}

// Label returns the display name of the group
func (g WarehouseGroup) Label() string {
	if strings.TrimSpace(g.Name) == "" {
		return NoWarehouseLabel
	}
	return g.Name
}

// GroupByWarehouse splits records by warehouse keeping first-appearance order
// of warehouses and source order inside each group.
func GroupByWarehouse(records []model.ProductRecord) []WarehouseGroup {
	var groups []WarehouseGroup
	index := make(map[string]int)

	for _, rec := range records {
		idx, ok := index[rec.Warehouse]
		if !ok {
			idx = len(groups)
			index[rec.Warehouse] = idx
			groups = append(groups, WarehouseGroup{Name: rec.Warehouse})
		}
		groups[idx].Records = append(groups[idx].Records, rec)
	}

	return groups
}

// QuantityText renders a quantity for text reports
func QuantityText(v model.Value) string {
	if v.IsEmpty() {
		return "-"
	}
	return v.String()
}

// SizeText renders a size for text reports
func SizeText(size string) string {
	if size == "" {
		return "-"
	}
	return size
}
