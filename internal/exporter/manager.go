package exporter

import (
	"strings"

	"stock-organizer/internal/exporter/html"
	"stock-organizer/internal/exporter/word"
)

// GetExporters returns a list of Exporters based on requested formats.
// Unknown formats are skipped, duplicates and aliases collapse to one exporter.
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		exp := ByFormat(fmtStr)
		if exp == nil || seen[exp.Name()] {
			continue
		}
		seen[exp.Name()] = true
		exporters = append(exporters, exp)
	}

	return exporters
}

// ByFormat returns the exporter for a single format name, or nil
func ByFormat(format string) Exporter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "excel", "xlsx":
		return NewExcelExporter()
	case "html":
		return html.NewHTMLExporter()
	case "word", "docx":
		return word.NewWordExporter()
	case "json":
		return NewJSONExporter()
	case "csv":
		return NewCSVExporter()
	}
	return nil
}

// Formats lists the canonical format names
func Formats() []string {
	return []string{"excel", "html", "word", "json", "csv"}
}
