package presenter

import (
	"log/slog"
	"testing"

	"github.com/classkit/badge-scan-go/domain/attendance"
	"github.com/classkit/badge-scan-go/ui/model"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

type mockRosterView struct {
	updates int
	rows    []model.Row
	last    *attendance.Student
	status  string
	present int
	total   int
}

func (v *mockRosterView) UpdateRoster(rows []model.Row)        { v.updates++; v.rows = rows }
func (v *mockRosterView) SetLastScanned(s *attendance.Student) { v.last = s }
func (v *mockRosterView) SetStatus(msg string)                 { v.status = msg }
func (v *mockRosterView) SetPresentCount(present, total int)   { v.present, v.total = present, total }

func TestRosterPresenter_RefreshesOnlyOnChange(t *testing.T) {
	store := attendance.NewStore([]attendance.Student{
		{ID: "S1", Name: "Asha Rao", Attendance: attendance.Absent},
		{ID: "S2", Name: "Ben Okafor", Attendance: attendance.Absent},
	}, discardLogger)
	view := &mockRosterView{}
	p := NewRosterPresenter(store, model.NewRosterModel(), view)

	p.Tick() // initial render
	if view.updates != 1 {
		t.Fatalf("updates = %d, want 1", view.updates)
	}
	p.Tick() // unchanged store, no redraw
	if view.updates != 1 {
		t.Fatalf("redundant redraw: updates = %d", view.updates)
	}

	store.RecordScan("S1")
	p.Tick()
	if view.updates != 2 {
		t.Fatalf("updates = %d, want 2", view.updates)
	}
	if view.last == nil || view.last.ID != "S1" {
		t.Fatalf("last scanned = %+v", view.last)
	}
	if view.status != "Scanned: S1" {
		t.Fatalf("status = %q", view.status)
	}
	if !view.rows[0].Present || view.rows[1].Present {
		t.Fatalf("row highlight wrong: %+v", view.rows)
	}
	if view.present != 1 || view.total != 2 {
		t.Fatalf("present count %d/%d", view.present, view.total)
	}
}

func TestRosterPresenter_MissClearsLastScanned(t *testing.T) {
	store := attendance.NewStore([]attendance.Student{
		{ID: "S1", Attendance: attendance.Absent},
	}, discardLogger)
	view := &mockRosterView{}
	p := NewRosterPresenter(store, model.NewRosterModel(), view)

	store.RecordScan("S1")
	p.Tick()
	store.RecordScan("UNKNOWN")
	p.Tick()

	if view.last != nil {
		t.Fatalf("last scanned should clear on miss, got %+v", view.last)
	}
	if view.status != attendance.MsgNotFound {
		t.Fatalf("status = %q", view.status)
	}
}
