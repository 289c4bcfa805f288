package exporter

import (
	"encoding/json"
	"io"

	"stock-organizer/internal/model"
)

// JSONDocument is the top-level object written by the JSON exporter
type JSONDocument struct {
	Generated string                `json:"generated"`
	Summary   *model.Summary        `json:"summary"`
	Records   []model.ProductRecord `json:"records"`
}

// JSONExporter writes records and summary as an indented JSON document
type JSONExporter struct{}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Name() string        { return "json" }
func (e *JSONExporter) Extension() string   { return "json" }
func (e *JSONExporter) ContentType() string { return "application/json; charset=utf-8" }

func (e *JSONExporter) Export(w io.Writer, summary *model.Summary, records []model.ProductRecord) error {
	if records == nil {
		records = []model.ProductRecord{}
	}

	doc := JSONDocument{
		Summary: summary,
		Records: records,
	}
	if summary != nil {
		doc.Generated = summary.GeneratedDate
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
