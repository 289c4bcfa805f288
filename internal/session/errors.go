package session

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for unknown or expired session ids
	ErrNotFound = errors.New("session not found")
	// ErrPositionOutOfRange is returned when an edit targets a row past the subset
	ErrPositionOutOfRange = errors.New("position out of range")
)

// Warning flags an edit that was applied but needs attention before export
type Warning struct {
	Field    string `json:"field"`
	Value    string `json:"value"`
	Message  string `json:"message"`
	Position int    `json:"position"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s at position %d: %s (%q)", w.Field, w.Position, w.Message, w.Value)
}
