package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"stock-organizer/internal/model"
)

// Edit is a partial update of one record; nil fields are left untouched
type Edit struct {
	Code     *string      `json:"code,omitempty"`
	Name     *string      `json:"name,omitempty"`
	Quantity *model.Value `json:"quantity,omitempty"`
}

// IsEmpty reports whether the edit changes nothing
func (e Edit) IsEmpty() bool {
	return e.Code == nil && e.Name == nil && e.Quantity == nil
}

// Session holds one upload's organized records while they are being edited.
// Each session owns its copy; sessions never share records.
type Session struct {
	ID      string
	Source  string
	Created time.Time

	mu       sync.Mutex
	records  []model.ProductRecord
	lastUsed time.Time
}

// New copies records into a fresh session
func New(records []model.ProductRecord) *Session {
	now := time.Now()
	return &Session{
		Created:  now,
		records:  model.Clone(records),
		lastUsed: now,
	}
}

// Len returns the number of records
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Warehouses returns the distinct non-empty warehouse names in first-appearance order
func (s *Session) Warehouses() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := []string{}
	seen := make(map[string]bool)
	for _, rec := range s.records {
		if rec.Warehouse == "" || seen[rec.Warehouse] {
			continue
		}
		seen[rec.Warehouse] = true
		names = append(names, rec.Warehouse)
	}
	return names
}

// Records returns a copy of the records in warehouse, or all records for ""
func (s *Session) Records(warehouse string) []model.ProductRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if warehouse == "" {
		return model.Clone(s.records)
	}

	subset := []model.ProductRecord{}
	for _, rec := range s.records {
		if rec.Warehouse == warehouse {
			subset = append(subset, rec)
		}
	}
	return subset
}

// Update applies edit to the position-th record (0-based) of the warehouse
// subset. A quantity that is not a number is stored as text and reported
// as a warning.
func (s *Session) Update(warehouse string, position int, edit Edit) (model.ProductRecord, []Warning, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(warehouse, position)
	if idx < 0 {
		return model.ProductRecord{}, nil, fmt.Errorf("%w: %d in %q", ErrPositionOutOfRange, position, warehouse)
	}

	var warnings []Warning
	rec := &s.records[idx]

	if edit.Code != nil {
		rec.ProductCode = strings.TrimSpace(*edit.Code)
		if rec.ProductCode == "" {
			warnings = append(warnings, Warning{Field: "code", Message: "product code is empty", Position: position})
		}
	}
	if edit.Name != nil {
		rec.ProductName = strings.TrimSpace(*edit.Name)
	}
	if edit.Quantity != nil {
		q := *edit.Quantity
		if q.Kind == model.KindText {
			q = model.ParseValue(q.Text)
		}
		rec.Quantity = q
		if q.Kind == model.KindText {
			warnings = append(warnings, Warning{
				Field:    "quantity",
				Value:    q.Text,
				Message:  "quantity is not a number",
				Position: position,
			})
		}
	}

	s.lastUsed = time.Now()
	return *rec, warnings, nil
}

// Snapshot returns a copy of all records for export
func (s *Session) Snapshot() []model.ProductRecord {
	return s.Records("")
}

// Touch marks the session as used at t
func (s *Session) Touch(t time.Time) {
	s.mu.Lock()
	s.lastUsed = t
	s.mu.Unlock()
}

// idleSince reports how long the session has been unused at t
func (s *Session) idleSince(t time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t.Sub(s.lastUsed)
}

// indexOf maps a subset position to an index in s.records, or -1
func (s *Session) indexOf(warehouse string, position int) int {
	if position < 0 {
		return -1
	}
	if warehouse == "" {
		if position >= len(s.records) {
			return -1
		}
		return position
	}

	n := 0
	for i, rec := range s.records {
		if rec.Warehouse != warehouse {
			continue
		}
		if n == position {
			return i
		}
		n++
	}
	return -1
}
