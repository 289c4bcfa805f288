package blockparser

import "fmt"

// MalformedRowError reports a data row that is narrower than the layout requires.
// Row is the 0-based index in the raw sheet.
type MalformedRowError struct {
	Row     int
	Columns int
	Want    int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row %d (sheet row %d): has %d columns, need at least %d",
		e.Row, e.Row+1, e.Columns, e.Want)
}
