package model

import (
	"encoding/json"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in     string
		kind   ValueKind
		number float64
	}{
		{"", KindEmpty, 0},
		{"12", KindNumber, 12},
		{" 3.5 ", KindNumber, 3.5},
		{"-4", KindNumber, -4},
		{"1e3", KindNumber, 1000},
		{"CAM-101", KindText, 0},
		{"inf", KindText, 0},
		{"NaN", KindText, 0},
		{"0x1F", KindText, 0},
		{"1_000", KindText, 0},
		{"   ", KindText, 0},
	}

	for _, tt := range tests {
		v := ParseValue(tt.in)
		if v.Kind != tt.kind {
			t.Errorf("ParseValue(%q).Kind = %v, want %v", tt.in, v.Kind, tt.kind)
			continue
		}
		if tt.kind == KindNumber && v.Number != tt.number {
			t.Errorf("ParseValue(%q).Number = %v, want %v", tt.in, v.Number, tt.number)
		}
	}
}

func TestValueKeepsSourceText(t *testing.T) {
	v := ParseValue("007")
	if !v.IsNumber() || v.String() != "007" {
		t.Errorf("numeric text should be kept verbatim, got %+v", v)
	}
}

func TestValueInterface(t *testing.T) {
	if (Value{}).Interface() != nil {
		t.Error("empty value should be nil")
	}
	if TextValue("a").Interface() != "a" {
		t.Error("text value should be a string")
	}
	if NumberValue(2.5).Interface() != 2.5 {
		t.Error("number value should be a float64")
	}
}

func TestValueJSON(t *testing.T) {
	in := []Value{NumberValue(7), TextValue("N/D"), {}}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[7,"N/D",null]` {
		t.Errorf("Marshal = %s", data)
	}

	var out []Value
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if !out[0].IsNumber() || out[0].Number != 7 {
		t.Errorf("number: %+v", out[0])
	}
	if out[1].Kind != KindText || out[1].Text != "N/D" {
		t.Errorf("text: %+v", out[1])
	}
	if !out[2].IsEmpty() {
		t.Errorf("null: %+v", out[2])
	}

	var v Value
	if err := json.Unmarshal([]byte(`true`), &v); err != nil || v.Text != "true" {
		t.Errorf("bool should decode as text, got %+v (%v)", v, err)
	}
}
