// Package workbook reads uploaded spreadsheets into raw rows and organized sheets back into records.
package workbook

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"stock-organizer/internal/model"
)

// Format is the container format of an upload
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

var (
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
	utf8BOM  = []byte{0xEF, 0xBB, 0xBF}
)

// DetectFormat decides by extension first, then by the zip signature
func DetectFormat(name string, head []byte) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return FormatCSV
	case ".xlsx", ".xlsm":
		return FormatXLSX
	}
	if bytes.HasPrefix(head, zipMagic) {
		return FormatXLSX
	}
	return FormatCSV
}

// ReadSheet reads the first worksheet of an xlsx upload (or a csv file) into
// a RawSheet. Rows are padded to the widest row so blank trailing cells keep
// their column.
func ReadSheet(r io.Reader, name string) (model.RawSheet, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zipMagic))

	var (
		sheet model.RawSheet
		err   error
	)
	switch DetectFormat(name, head) {
	case FormatXLSX:
		sheet, err = readXLSX(br)
	default:
		sheet, err = readCSV(br)
	}
	if err != nil {
		return model.RawSheet{}, &UnreadableWorkbookError{Name: name, Err: err}
	}

	if sheet.Name == "" {
		sheet.Name = name
	}
	pad(&sheet)
	return sheet, nil
}

func readXLSX(r io.Reader) (model.RawSheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return model.RawSheet{}, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return model.RawSheet{}, ErrNoSheet
	}

	// Raw values keep numbers unformatted ("1234" instead of "1,234")
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return model.RawSheet{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	return model.RawSheet{Name: sheets[0], Rows: toRows(rows)}, nil
}

func readCSV(r io.Reader) (model.RawSheet, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return model.RawSheet{}, err
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	// Spanish-locale Excel saves CSV as Windows-1252
	if !utf8.Valid(raw) {
		decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
		if err != nil {
			return model.RawSheet{}, fmt.Errorf("decode csv: %w", err)
		}
		raw = decoded
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.Comma = sniffDelimiter(raw)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return model.RawSheet{}, fmt.Errorf("parse csv: %w", err)
	}
	return model.RawSheet{Rows: toRows(records)}, nil
}

// sniffDelimiter picks ';' when the first line has more semicolons than commas
func sniffDelimiter(raw []byte) rune {
	line := raw
	if idx := bytes.IndexByte(raw, '\n'); idx >= 0 {
		line = raw[:idx]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

func toRows(cells [][]string) []model.Row {
	rows := make([]model.Row, len(cells))
	for i, rec := range cells {
		row := make(model.Row, len(rec))
		for j, c := range rec {
			row[j] = model.ParseValue(c)
		}
		rows[i] = row
	}
	return rows
}

func pad(sheet *model.RawSheet) {
	width := sheet.Width()
	for i, row := range sheet.Rows {
		if len(row) < width {
			padded := make(model.Row, width)
			copy(padded, row)
			sheet.Rows[i] = padded
		}
	}
}

// ReadRecords reads an organized sheet (header row + one record per row)
// back into records. It accepts what the excel exporter writes.
func ReadRecords(r io.Reader) ([]model.ProductRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &UnreadableWorkbookError{Name: "organized", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &UnreadableWorkbookError{Name: "organized", Err: ErrNoSheet}
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrUnexpectedHeader
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	records := make([]model.ProductRecord, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := toRows([][]string{cells})[0]
		if isBlank(row) {
			continue
		}
		records = append(records, model.ProductRecord{
			Warehouse:   row.Cell(0).String(),
			ProductCode: row.Cell(1).String(),
			ProductName: row.Cell(2).String(),
			Size:        row.Cell(3).String(),
			Quantity:    row.Cell(4),
		})
	}
	return records, nil
}

func checkHeader(header []string) error {
	if len(header) < len(model.OutputHeaders) {
		return fmt.Errorf("%w: %v", ErrUnexpectedHeader, header)
	}
	for i, want := range model.OutputHeaders {
		if strings.TrimSpace(header[i]) != want {
			return fmt.Errorf("%w: column %d is %q, expected %q", ErrUnexpectedHeader, i+1, header[i], want)
		}
	}
	return nil
}

func isBlank(row model.Row) bool {
	for _, v := range row {
		if strings.TrimSpace(v.String()) != "" {
			return false
		}
	}
	return true
}
