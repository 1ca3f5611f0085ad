package itinerary

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is one itinerary day line of the inline formset. Persisted rows carry a
// database id; removing one only flags it deleted so the server can drop it
// on save. Unpersisted rows were added this session and can vanish outright.
type Row struct {
	ID             int64
	DayNumber      int
	Title          string
	Description    string
	MasterTemplate *int64
	Persisted      bool
	Deleted        bool
}

// TemplateFetcher resolves a master template by id for row autofill.
type TemplateFetcher interface {
	FetchTemplate(id int64) (title, description string, err error)
}

// Formset keeps the ordered day rows in lock-step with the package's days
// field. All transitions are synchronous and pure over the row slice; only a
// render step elsewhere touches presentation.
type Formset struct {
	Rows []Row
}

// ActiveRows returns the visible, non-deleted rows in order.
func (f *Formset) ActiveRows() []Row {
	out := make([]Row, 0, len(f.Rows))
	for _, r := range f.Rows {
		if !r.Deleted {
			out = append(out, r)
		}
	}
	return out
}

// ActiveCount counts visible, non-deleted rows.
func (f *Formset) ActiveCount() int {
	n := 0
	for _, r := range f.Rows {
		if !r.Deleted {
			n++
		}
	}
	return n
}

// AdjustString parses the raw days input and adjusts. Non-numeric or values
// of zero and below leave the formset untouched.
func (f *Formset) AdjustString(raw string) {
	target, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return
	}
	f.Adjust(target)
}

// Adjust grows or shrinks the active row set to target, then renumbers.
func (f *Formset) Adjust(target int) {
	if target <= 0 {
		return
	}
	current := f.ActiveCount()
	switch {
	case current < target:
		f.grow(target - current)
	case current > target:
		f.shrink(current - target)
	}
	f.Renumber()
}

// grow appends blank unpersisted rows, one per missing day.
func (f *Formset) grow(diff int) {
	for i := 0; i < diff; i++ {
		f.Rows = append(f.Rows, Row{})
	}
}

// shrink removes the last active rows. Rows never saved are taken out of the
// slice; persisted rows get the delete flag and stay for the server round-trip.
func (f *Formset) shrink(diff int) {
	for i := 0; i < diff; i++ {
		idx := f.lastActiveIndex()
		if idx < 0 {
			return
		}
		if f.Rows[idx].Persisted {
			f.Rows[idx].Deleted = true
		} else {
			f.Rows = append(f.Rows[:idx], f.Rows[idx+1:]...)
		}
	}
}

func (f *Formset) lastActiveIndex() int {
	for i := len(f.Rows) - 1; i >= 0; i-- {
		if !f.Rows[i].Deleted {
			return i
		}
	}
	return -1
}

// Renumber walks active rows in order and assigns 1-based day numbers. The
// title is overwritten with "Day N" only when empty or still a default
// ("Day " prefix), so a user-customized title survives.
func (f *Formset) Renumber() {
	n := 0
	for i := range f.Rows {
		if f.Rows[i].Deleted {
			continue
		}
		n++
		f.Rows[i].DayNumber = n
		title := f.Rows[i].Title
		if title == "" || strings.HasPrefix(title, "Day ") {
			f.Rows[i].Title = fmt.Sprintf("Day %d", n)
		}
	}
}

// ApplyTemplate autofills row index with the fetched master template. Unlike
// renumbering it always overwrites title and description, even user-typed ones.
func (f *Formset) ApplyTemplate(index int, templateID int64, fetcher TemplateFetcher) error {
	if index < 0 || index >= len(f.Rows) {
		return fmt.Errorf("row index %d out of range", index)
	}
	if templateID <= 0 {
		return nil
	}
	title, description, err := fetcher.FetchTemplate(templateID)
	if err != nil {
		return err
	}
	f.Rows[index].Title = title
	f.Rows[index].Description = description
	f.Rows[index].MasterTemplate = &templateID
	return nil
}
