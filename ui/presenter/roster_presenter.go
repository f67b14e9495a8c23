package presenter

import (
	"github.com/classkit/badge-scan-go/domain/attendance"
	"github.com/classkit/badge-scan-go/ui/model"
)

// AttendanceSource narrows what the presenter reads from the store.
type AttendanceSource interface {
	Students() []attendance.Student
	LastScanned() *attendance.Student
	Status() string
	Revision() uint64
	PresentCount() int
}

// RosterView renders the roster table, the last-scanned panel and the
// status line.
type RosterView interface {
	UpdateRoster(rows []model.Row)
	SetLastScanned(s *attendance.Student)
	SetStatus(msg string)
	SetPresentCount(present, total int)
}

// RosterPresenter pushes attendance display state to the view whenever the
// store revision moved since the last tick.
type RosterPresenter struct {
	store AttendanceSource
	model *model.RosterModel
	view  RosterView
}

func NewRosterPresenter(store AttendanceSource, m *model.RosterModel, view RosterView) *RosterPresenter {
	return &RosterPresenter{store: store, model: m, view: view}
}

// Tick refreshes the view when the store changed.
func (p *RosterPresenter) Tick() {
	if p == nil || p.store == nil || p.model == nil || p.view == nil {
		return
	}
	rev := p.store.Revision()
	if !p.model.Stale(rev) {
		return
	}
	students := p.store.Students()
	p.model.Update(students, rev)
	p.view.UpdateRoster(p.model.Rows())
	p.view.SetLastScanned(p.store.LastScanned())
	p.view.SetStatus(p.store.Status())
	p.view.SetPresentCount(p.store.PresentCount(), len(students))
}
