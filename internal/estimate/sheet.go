package estimate

import "fmt"

// Entry is one window row on a sheet: the measured inputs plus the
// metrics derived from them.
type Entry struct {
	WindowID   string
	Name       string
	StitchType string
	LiningType string
	Width      float64
	Height     float64
	Notes      string
	Images     []string
	Metrics
}

// Sheet is the ordered set of window entries for one order under
// edit. Every mutation recomputes the affected entry's metrics before
// it is committed, so totals never mix stale derived values with new
// measurements.
type Sheet struct {
	entries []Entry
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{}
}

// Add appends an entry and computes its metrics. Entries arriving
// without a window id get a fresh one; ids the caller already holds
// survive. The committed entry is returned.
func (s *Sheet) Add(e Entry) Entry {
	if e.WindowID == "" {
		e.WindowID = NewWindowID()
	}
	e.Metrics = Compute(e.StitchType, e.Width, e.Height)
	s.entries = append(s.entries, e)
	return e
}

// UpdateAt replaces the entry at position i in place, keeping its
// window id and recomputing metrics from the new measurements.
func (s *Sheet) UpdateAt(i int, e Entry) (Entry, error) {
	if i < 0 || i >= len(s.entries) {
		return Entry{}, fmt.Errorf("no entry at position %d", i)
	}
	e.WindowID = s.entries[i].WindowID
	e.Metrics = Compute(e.StitchType, e.Width, e.Height)
	s.entries[i] = e
	return e, nil
}

// RemoveAt deletes the entry at position i, preserving order.
func (s *Sheet) RemoveAt(i int) error {
	if i < 0 || i >= len(s.entries) {
		return fmt.Errorf("no entry at position %d", i)
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return nil
}

// Len returns the number of entries.
func (s *Sheet) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in insertion order.
func (s *Sheet) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// TotalQuantity sums running metres of fabric across the sheet.
func (s *Sheet) TotalQuantity() float64 {
	var total float64
	for _, e := range s.entries {
		total += e.Quantity
	}
	return round2(total)
}

// TotalSQFT sums square footage across the sheet.
func (s *Sheet) TotalSQFT() float64 {
	var total float64
	for _, e := range s.entries {
		total += e.SQFT
	}
	return round2(total)
}
