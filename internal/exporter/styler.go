package exporter

import (
	"github.com/xuri/excelize/v2"
)

// Styler handles Excel styling
type Styler struct {
	File *excelize.File

	// Pre-defined styles
	HeaderStyle       int
	DefaultStyle      int
	QuantityStyle     int
	TextQuantityStyle int
	TotalStyle        int
}

// NewStyler creates a new Styler and explicitly registers styles
func NewStyler(f *excelize.File) (*Styler, error) {
	s := &Styler{File: f}
	var err error

	// Header Style: Bold, Gray Background, Center Aligned
	s.HeaderStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#000000"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    createBorder(),
	})
	if err != nil {
		return nil, err
	}

	s.DefaultStyle, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    createBorder(),
	})
	if err != nil {
		return nil, err
	}

	// Quantity Style: right aligned, thousands separator, up to 2 decimals
	customFmt := "#,##0.##"
	s.QuantityStyle, err = f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       createBorder(),
		CustomNumFmt: &customFmt,
	})
	if err != nil {
		return nil, err
	}

	// Text Quantity Style: amber fill, the value still needs correcting
	s.TextQuantityStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: "#8A6D00"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#FFF3CD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:    createBorder(),
	})
	if err != nil {
		return nil, err
	}

	s.TotalStyle, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Alignment:    &excelize.Alignment{Vertical: "center"},
		Border:       createBorder(),
		CustomNumFmt: &customFmt,
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// QuantityStyleFor picks the cell style for a quantity value
func (s *Styler) QuantityStyleFor(isNumber, isEmpty bool) int {
	switch {
	case isNumber:
		return s.QuantityStyle
	case isEmpty:
		return s.DefaultStyle
	default:
		return s.TextQuantityStyle
	}
}

func createBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "D4D4D4", Style: 1},
		{Type: "top", Color: "D4D4D4", Style: 1},
		{Type: "bottom", Color: "D4D4D4", Style: 1},
		{Type: "right", Color: "D4D4D4", Style: 1},
	}
}
