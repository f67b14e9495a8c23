package model

import (
	"github.com/classkit/badge-scan-go/domain/attendance"
)

// Row is one display line of the roster table.
type Row struct {
	ID      string
	Name    string
	Branch  string
	Class   string
	Present bool
}

// RosterModel caches the roster display rows plus the store revision they
// were built from, so presenters only rebuild the table when something
// changed. No synchronization needed: updates occur on the UI thread tick.
type RosterModel struct {
	rows     []Row
	revision uint64
	seeded   bool
}

func NewRosterModel() *RosterModel { return &RosterModel{} }

// Stale reports whether the given store revision differs from the cached one.
func (m *RosterModel) Stale(revision uint64) bool {
	if m == nil {
		return false
	}
	return !m.seeded || revision != m.revision
}

// Update rebuilds the cached rows from a roster snapshot.
func (m *RosterModel) Update(students []attendance.Student, revision uint64) {
	if m == nil {
		return
	}
	rows := make([]Row, len(students))
	for i, s := range students {
		rows[i] = Row{
			ID:      s.ID,
			Name:    s.Name,
			Branch:  s.Branch,
			Class:   s.Class,
			Present: s.Attendance == attendance.Present,
		}
	}
	m.rows = rows
	m.revision = revision
	m.seeded = true
}

// Rows returns the cached display rows.
func (m *RosterModel) Rows() []Row {
	if m == nil {
		return nil
	}
	return m.rows
}
