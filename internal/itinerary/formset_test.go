package itinerary

import (
	"fmt"
	"testing"
)

func persistedRows(n int) []Row {
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, Row{
			ID:        int64(i + 1),
			DayNumber: i + 1,
			Title:     fmt.Sprintf("Day %d", i+1),
			Persisted: true,
		})
	}
	return rows
}

func TestAdjustGrow(t *testing.T) {
	fs := Formset{Rows: persistedRows(3)}
	fs.Adjust(5)

	if got := fs.ActiveCount(); got != 5 {
		t.Fatalf("active count = %d, want 5", got)
	}
	active := fs.ActiveRows()
	for i, r := range active {
		if r.DayNumber != i+1 {
			t.Fatalf("row %d day number = %d, want %d", i, r.DayNumber, i+1)
		}
	}
	if active[3].Persisted || active[4].Persisted {
		t.Fatalf("grown rows must be unpersisted")
	}
	if active[3].Title != "Day 4" || active[4].Title != "Day 5" {
		t.Fatalf("grown rows not titled: %q %q", active[3].Title, active[4].Title)
	}
}

func TestAdjustShrinkFlagsPersistedRows(t *testing.T) {
	fs := Formset{Rows: persistedRows(5)}
	fs.Adjust(2)

	if got := fs.ActiveCount(); got != 2 {
		t.Fatalf("active count = %d, want 2", got)
	}
	// persisted rows stay in the slice with the delete flag set
	if len(fs.Rows) != 5 {
		t.Fatalf("rows len = %d, want 5", len(fs.Rows))
	}
	for _, r := range fs.Rows[2:] {
		if !r.Deleted {
			t.Fatalf("row id=%d not flagged deleted", r.ID)
		}
	}
}

func TestAdjustShrinkRemovesUnpersistedRows(t *testing.T) {
	fs := Formset{Rows: persistedRows(2)}
	fs.Adjust(4)
	fs.Adjust(2)

	if len(fs.Rows) != 2 {
		t.Fatalf("rows len = %d, want 2 after removing session rows", len(fs.Rows))
	}
	for _, r := range fs.Rows {
		if r.Deleted {
			t.Fatalf("persisted row id=%d should survive", r.ID)
		}
	}
}

func TestAdjustIgnoresNonPositiveTarget(t *testing.T) {
	fs := Formset{Rows: persistedRows(3)}
	fs.Adjust(0)
	fs.Adjust(-2)
	if got := fs.ActiveCount(); got != 3 {
		t.Fatalf("active count = %d, want 3", got)
	}
}

func TestAdjustStringIgnoresNonNumeric(t *testing.T) {
	fs := Formset{Rows: persistedRows(3)}
	fs.AdjustString("abc")
	fs.AdjustString("")
	if got := fs.ActiveCount(); got != 3 {
		t.Fatalf("active count = %d, want 3", got)
	}
	fs.AdjustString(" 4 ")
	if got := fs.ActiveCount(); got != 4 {
		t.Fatalf("active count = %d, want 4 after numeric input", got)
	}
}

func TestRenumberKeepsCustomTitles(t *testing.T) {
	fs := Formset{Rows: persistedRows(3)}
	fs.Rows[1].Title = "Desert safari"
	fs.Adjust(2)

	active := fs.ActiveRows()
	if active[0].Title != "Day 1" {
		t.Fatalf("default title rewritten wrong: %q", active[0].Title)
	}
	if active[1].Title != "Desert safari" {
		t.Fatalf("custom title lost: %q", active[1].Title)
	}
	if active[1].DayNumber != 2 {
		t.Fatalf("day number = %d, want 2", active[1].DayNumber)
	}
}

func TestRenumberAfterShrinkRewritesDefaults(t *testing.T) {
	fs := Formset{Rows: persistedRows(4)}
	fs.Rows[0].Deleted = true
	fs.Renumber()

	active := fs.ActiveRows()
	want := []string{"Day 1", "Day 2", "Day 3"}
	for i, r := range active {
		if r.Title != want[i] || r.DayNumber != i+1 {
			t.Fatalf("row %d = %q/%d, want %q/%d", i, r.Title, r.DayNumber, want[i], i+1)
		}
	}
}

type stubFetcher struct {
	title string
	desc  string
	err   error
	calls int
}

func (s *stubFetcher) FetchTemplate(id int64) (string, string, error) {
	s.calls++
	return s.title, s.desc, s.err
}

func TestApplyTemplateOverwritesUserText(t *testing.T) {
	fs := Formset{Rows: persistedRows(2)}
	fs.Rows[0].Title = "My own title"
	fs.Rows[0].Description = "My own description"

	fetcher := &stubFetcher{title: "City tour", desc: "Full day guided tour"}
	if err := fs.ApplyTemplate(0, 7, fetcher); err != nil {
		t.Fatalf("ApplyTemplate error: %v", err)
	}
	if fs.Rows[0].Title != "City tour" || fs.Rows[0].Description != "Full day guided tour" {
		t.Fatalf("template did not overwrite: %q / %q", fs.Rows[0].Title, fs.Rows[0].Description)
	}
	if fs.Rows[0].MasterTemplate == nil || *fs.Rows[0].MasterTemplate != 7 {
		t.Fatalf("master template not recorded")
	}
}

func TestApplyTemplateIgnoresZeroID(t *testing.T) {
	fs := Formset{Rows: persistedRows(1)}
	fetcher := &stubFetcher{title: "X"}
	if err := fs.ApplyTemplate(0, 0, fetcher); err != nil {
		t.Fatalf("ApplyTemplate error: %v", err)
	}
	if fetcher.calls != 0 {
		t.Fatalf("fetcher called for zero template id")
	}
	if fs.Rows[0].Title != "Day 1" {
		t.Fatalf("row changed for zero template id")
	}
}

func TestApplyTemplateOutOfRange(t *testing.T) {
	fs := Formset{Rows: persistedRows(1)}
	if err := fs.ApplyTemplate(3, 1, &stubFetcher{}); err == nil {
		t.Fatalf("expected error for out of range index")
	}
}
