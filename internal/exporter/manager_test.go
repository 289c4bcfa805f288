package exporter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"stock-organizer/internal/model"
)

func TestGetExporters(t *testing.T) {
	exps := GetExporters([]string{"xlsx", "EXCEL", " html ", "docx", "json", "csv", "pdf"})

	var names []string
	for _, e := range exps {
		names = append(names, e.Name())
	}
	want := []string{"excel", "html", "word", "json", "csv"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("exporter %d: got %s, want %s", i, names[i], want[i])
		}
	}
}

func TestByFormat(t *testing.T) {
	if ByFormat("unknown") != nil {
		t.Error("unknown format should yield nil")
	}
	exp := ByFormat("xlsx")
	if exp == nil || exp.Extension() != "xlsx" || exp.ContentType() != XLSXContentType {
		t.Errorf("unexpected excel exporter: %#v", exp)
	}
	for _, name := range Formats() {
		if ByFormat(name) == nil {
			t.Errorf("format %s has no exporter", name)
		}
	}
}

func TestJSONExport(t *testing.T) {
	records := sampleRecords()
	summary := model.BuildSummary(records, "2026-10-19", "inventario.xlsx")

	var buf bytes.Buffer
	if err := NewJSONExporter().Export(&buf, summary, records); err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Generated string                `json:"generated"`
		Records   []model.ProductRecord `json:"records"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.Generated != "2026-10-19" {
		t.Errorf("generated: got %q", doc.Generated)
	}
	if len(doc.Records) != 4 {
		t.Fatalf("Expected 4 records, got %d", len(doc.Records))
	}
	if !doc.Records[0].Quantity.IsNumber() || doc.Records[0].Quantity.Number != 12 {
		t.Errorf("quantity should stay numeric: %+v", doc.Records[0].Quantity)
	}
	if !doc.Records[3].Quantity.IsEmpty() {
		t.Errorf("empty quantity should decode as empty: %+v", doc.Records[3].Quantity)
	}
}

func TestJSONExportNilRecords(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONExporter().Export(&buf, nil, nil); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"records": []`)) {
		t.Errorf("nil records should encode as an empty array: %s", buf.String())
	}
}

func TestCSVExport(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCSVExporter().Export(&buf, nil, sampleRecords()); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 {
		t.Fatalf("Expected header + 4 rows, got %d", len(rows))
	}
	if rows[0][1] != model.HeaderCode {
		t.Errorf("header: got %v", rows[0])
	}
	if rows[1][4] != "12" || rows[2][4] != "3.5" || rows[3][4] != "N/A" || rows[4][4] != "" {
		t.Errorf("quantities: %v %v %v %v", rows[1][4], rows[2][4], rows[3][4], rows[4][4])
	}
}
