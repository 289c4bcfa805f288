package model

import "sort"

// Summary holds run-level statistics for the report exporters
type Summary struct {
	GeneratedDate string `json:"generated_date"`
	SourceName    string `json:"source_name"`

	TotalRecords int             `json:"total_records"`
	SizedRecords int             `json:"sized_records"`
	NumericTotal float64         `json:"numeric_total"`
	TextQuantity int             `json:"text_quantity"` // records whose quantity is not a number
	Warehouses   []WarehouseStat `json:"warehouses"`
	Sizes        []SizeStat      `json:"sizes"`
}

// WarehouseStat aggregates records of one warehouse
type WarehouseStat struct {
	Name         string  `json:"name"`
	Records      int     `json:"records"`
	QuantitySum  float64 `json:"quantity_sum"`
	SizedRecords int     `json:"sized_records"`
}

// SizeStat counts records per size code
type SizeStat struct {
	Size  string `json:"size"`
	Count int    `json:"count"`
}

// BuildSummary aggregates records. Warehouses keep first-appearance order,
// sizes are sorted by code.
func BuildSummary(records []ProductRecord, date, source string) *Summary {
	s := &Summary{
		GeneratedDate: date,
		SourceName:    source,
		TotalRecords:  len(records),
	}

	whIndex := make(map[string]int)
	sizeCount := make(map[string]int)

	for _, rec := range records {
		idx, ok := whIndex[rec.Warehouse]
		if !ok {
			idx = len(s.Warehouses)
			whIndex[rec.Warehouse] = idx
			s.Warehouses = append(s.Warehouses, WarehouseStat{Name: rec.Warehouse})
		}
		wh := &s.Warehouses[idx]
		wh.Records++

		if rec.Quantity.IsNumber() {
			wh.QuantitySum += rec.Quantity.Number
			s.NumericTotal += rec.Quantity.Number
		} else if !rec.Quantity.IsEmpty() {
			s.TextQuantity++
		}

		if rec.Size != "" {
			wh.SizedRecords++
			s.SizedRecords++
			sizeCount[rec.Size]++
		}
	}

	for size, n := range sizeCount {
		s.Sizes = append(s.Sizes, SizeStat{Size: size, Count: n})
	}
	sort.Slice(s.Sizes, func(i, j int) bool {
		return s.Sizes[i].Size < s.Sizes[j].Size
	})

	return s
}
