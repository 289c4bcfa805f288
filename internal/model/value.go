package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ValueKind classifies what a spreadsheet cell holds
type ValueKind int

const (
	KindEmpty ValueKind = iota
	KindText
	KindNumber
)

// Value is a single cell value as read from a sheet.
// Numbers keep the text they were read from so output can echo it unchanged.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
}

// TextValue builds a text value. Whitespace-only input is still text.
func TextValue(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{Kind: KindText, Text: s}
}

// NumberValue builds a numeric value
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Number: n, Text: strconv.FormatFloat(n, 'f', -1, 64)}
}

// ParseValue classifies raw cell text: integers and decimals become numbers,
// anything else stays text. Surrounding spaces are ignored for the number test only.
func ParseValue(s string) Value {
	if s == "" {
		return Value{}
	}
	trimmed := strings.TrimSpace(s)
	if trimmed != "" {
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil && isDecimalText(trimmed) {
			return Value{Kind: KindNumber, Number: n, Text: trimmed}
		}
	}
	return Value{Kind: KindText, Text: s}
}

// IsEmpty reports whether the cell carries nothing
func (v Value) IsEmpty() bool {
	return v.Kind == KindEmpty
}

// IsNumber reports whether the cell is numeric
func (v Value) IsNumber() bool {
	return v.Kind == KindNumber
}

// String returns the cell's text form ("" for empty cells)
func (v Value) String() string {
	return v.Text
}

// Interface returns the value in the shape excelize and encoding/json expect:
// nil, string or float64.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindNumber:
		return v.Number
	case KindText:
		return v.Text
	default:
		return nil
	}
}

// MarshalJSON writes numbers as JSON numbers, text as strings and empty as null
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON accepts a JSON number, string or null
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = Value{}
	case float64:
		*v = NumberValue(x)
	case string:
		*v = TextValue(x)
	default:
		*v = TextValue(strings.TrimSpace(string(data)))
	}
	return nil
}

// isDecimalText rejects forms ParseFloat accepts but a spreadsheet would not
// show as a number (hex, "inf", "NaN", digit separators).
func isDecimalText(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789.-+eE", r) {
			return false
		}
	}
	return true
}
