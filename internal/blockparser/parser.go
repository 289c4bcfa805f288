// Package blockparser flattens "Producto:/Bodega:" block exports into product records.
package blockparser

import (
	"fmt"
	"strings"

	"stock-organizer/internal/model"
)

// Section markers found in column 0
const (
	ProductMarker   = "Producto:"
	WarehouseMarker = "Bodega:"
)

// Layout selects how marker rows relate to data rows
type Layout string

const (
	// LayoutDetail: "Bodega:" opens a warehouse, every code row below it is a record.
	LayoutDetail Layout = "detail"
	// LayoutSummary: "Producto:" opens a product, every "Bodega:" row below it is a record.
	LayoutSummary Layout = "summary"
)

// Column positions of a data row
const (
	colCode      = 0
	colName      = 1
	colReference = 2 // factory reference, read but never stored
	colQuantity  = 3
)

// Options configures a parse
type Options struct {
	SkipRows   int    // rows before this index are template preamble
	MinColumns int    // narrowest acceptable data row
	Layout     Layout // defaults to LayoutDetail
}

// DefaultOptions matches the stock report template the tool was built for
func DefaultOptions() Options {
	return Options{
		SkipRows:   8,
		MinColumns: 4,
		Layout:     LayoutDetail,
	}
}

// state is the fold accumulator threaded through the rows
type state struct {
	// product is the rolling "Producto:" value. It is tracked only; records
	// take code and name from their own row (detail) or from current (summary).
	product   string
	warehouse string

	// summary layout only
	current *model.ProductRecord
}

// Parse scans the sheet in order and returns one record per data row.
// Any malformed row aborts the parse; no partial result is returned.
func Parse(sheet model.RawSheet, opts Options) ([]model.ProductRecord, error) {
	if opts.MinColumns <= 0 {
		opts.MinColumns = 4
	}
	if opts.SkipRows < 0 {
		return nil, fmt.Errorf("skip rows must not be negative: %d", opts.SkipRows)
	}

	var step func(state, int, model.Row, Options) (state, *model.ProductRecord, error)
	switch opts.Layout {
	case LayoutDetail, "":
		step = detailStep
	case LayoutSummary:
		step = summaryStep
	default:
		return nil, fmt.Errorf("unknown layout %q", opts.Layout)
	}

	records := make([]model.ProductRecord, 0)
	st := state{}

	for idx := opts.SkipRows; idx < len(sheet.Rows); idx++ {
		var (
			rec *model.ProductRecord
			err error
		)
		st, rec, err = step(st, idx, sheet.Rows[idx], opts)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			records = append(records, *rec)
		}
	}

	return records, nil
}

// detailStep: markers update the accumulator, code rows emit a record
// carrying the current warehouse.
func detailStep(st state, idx int, row model.Row, opts Options) (state, *model.ProductRecord, error) {
	marker := strings.TrimSpace(row.Cell(colCode).String())

	if rest, ok := cutMarker(marker, ProductMarker); ok {
		st.product = rest
		return st, nil, nil
	}
	if rest, ok := cutMarker(marker, WarehouseMarker); ok {
		st.warehouse = rest
		return st, nil, nil
	}
	if !IsDataKey(marker) {
		return st, nil, nil
	}

	if len(row) < opts.MinColumns {
		return st, nil, &MalformedRowError{Row: idx, Columns: len(row), Want: opts.MinColumns}
	}

	// colReference (factory reference) is not carried into the record
	return st, &model.ProductRecord{
		Warehouse:   st.warehouse,
		ProductCode: marker,
		ProductName: strings.TrimSpace(row.Cell(colName).String()),
		Quantity:    row.Cell(colQuantity),
	}, nil
}

// summaryStep: a "Producto:" row opens a product, digit-only rows restate its
// balance, each "Bodega:" row under it emits one record for that warehouse.
func summaryStep(st state, idx int, row model.Row, opts Options) (state, *model.ProductRecord, error) {
	marker := strings.TrimSpace(row.Cell(colCode).String())

	if rest, ok := cutMarker(marker, ProductMarker); ok {
		if len(row) < opts.MinColumns {
			return st, nil, &MalformedRowError{Row: idx, Columns: len(row), Want: opts.MinColumns}
		}
		st.product = rest
		code, name := SplitCodeName(rest, strings.TrimSpace(row.Cell(colName).String()))
		st.current = &model.ProductRecord{
			ProductCode: code,
			ProductName: name,
			Quantity:    row.Cell(colQuantity),
		}
		return st, nil, nil
	}

	if rest, ok := cutMarker(marker, WarehouseMarker); ok {
		st.warehouse = rest
		if st.current == nil {
			return st, nil, nil
		}
		rec := *st.current
		rec.Warehouse = rest
		return st, &rec, nil
	}

	if st.current != nil && isDigits(marker) {
		next := *st.current
		next.Quantity = model.ParseValue(marker)
		st.current = &next
	}

	return st, nil, nil
}

// SplitCodeName splits "CODE-NAME" at the first hyphen. Without a hyphen the
// text is the whole code and fallbackName is kept.
func SplitCodeName(text, fallbackName string) (code, name string) {
	code, name, found := strings.Cut(text, "-")
	if !found {
		return strings.TrimSpace(text), fallbackName
	}
	return strings.TrimSpace(code), strings.TrimSpace(name)
}

// IsDataKey reports whether a trimmed column-0 value identifies a product row:
// non-empty and not made only of decimal digits.
func IsDataKey(s string) bool {
	return s != "" && !isDigits(s)
}

func cutMarker(s, marker string) (string, bool) {
	if !strings.HasPrefix(s, marker) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(s, marker)), true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
