package model

import "fmt"

// Row is one sheet row; column order is significant
type Row []Value

// Cell returns the value at column idx, or an empty value past the row end
func (r Row) Cell(idx int) Value {
	if idx < 0 || idx >= len(r) {
		return Value{}
	}
	return r[idx]
}

// RawSheet is the first worksheet of an upload, row by row.
// Column 0 carries the "Producto:" / "Bodega:" section markers.
type RawSheet struct {
	Name string
	Rows []Row
}

// Width returns the length of the widest row
func (s RawSheet) Width() int {
	width := 0
	for _, row := range s.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// ProductRecord is one flattened inventory line.
// Warehouse and Size use "" for "not present".
type ProductRecord struct {
	Warehouse   string `json:"warehouse"`
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
	Size        string `json:"size"`
	Quantity    Value  `json:"quantity"`
}

// Output column headers, in output order
const (
	HeaderWarehouse = "Bodega del producto"
	HeaderCode      = "Código del producto"
	HeaderName      = "Nombre del producto"
	HeaderSize      = "Talla"
	HeaderQuantity  = "Cantidad"
)

// OutputHeaders is the header row of every organized export
var OutputHeaders = []string{HeaderWarehouse, HeaderCode, HeaderName, HeaderSize, HeaderQuantity}

// Cells returns the record as an output row matching OutputHeaders
func (p ProductRecord) Cells() []interface{} {
	return []interface{}{
		nullable(p.Warehouse),
		p.ProductCode,
		p.ProductName,
		nullable(p.Size),
		p.Quantity.Interface(),
	}
}

// String returns a human-readable representation of the record
func (p ProductRecord) String() string {
	return fmt.Sprintf("[%s] %s %s (%s) x%s", p.Warehouse, p.ProductCode, p.ProductName, p.Size, p.Quantity)
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// Clone copies a record slice so edits on one side never leak to the other
func Clone(records []ProductRecord) []ProductRecord {
	out := make([]ProductRecord, len(records))
	copy(out, records)
	return out
}
