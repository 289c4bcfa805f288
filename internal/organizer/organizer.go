// Package organizer composes block parsing and size extraction.
package organizer

import (
	"fmt"

	"stock-organizer/internal/blockparser"
	"stock-organizer/internal/logger"
	"stock-organizer/internal/model"
	"stock-organizer/internal/sizes"
)

// Organizer turns raw block sheets into sized product records
type Organizer struct {
	parse blockparser.Options
	sizes *sizes.Extractor
}

// New creates an Organizer
func New(parse blockparser.Options, extractor *sizes.Extractor) *Organizer {
	if extractor == nil {
		extractor = sizes.MustNew(sizes.DefaultOptions())
	}
	return &Organizer{parse: parse, sizes: extractor}
}

// Organize parses the block structure first and only then strips size tokens
// from the product names. Marker detection reads column 0 untouched.
func (o *Organizer) Organize(sheet model.RawSheet) ([]model.ProductRecord, error) {
	records, err := blockparser.Parse(sheet, o.parse)
	if err != nil {
		logger.LogRowError(sheet.Name, err, "block parse")
		return nil, fmt.Errorf("organize %q: %w", sheet.Name, err)
	}
	logger.Debug("Parsed %d records from %d rows of %q", len(records), len(sheet.Rows), sheet.Name)

	o.ApplySizes(records)
	return records, nil
}

// ApplySizes fills Size in place from each record's ProductName
func (o *Organizer) ApplySizes(records []model.ProductRecord) int {
	sized := 0
	for i := range records {
		cleaned, size, ok := o.sizes.Extract(records[i].ProductName)
		if !ok {
			continue
		}
		records[i].ProductName = cleaned
		records[i].Size = size
		sized++
	}
	logger.Debug("Extracted sizes for %d of %d records", sized, len(records))
	return sized
}
