package view

import (
	"github.com/classkit/badge-scan-go/ui/model"
	"github.com/classkit/badge-scan-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RosterTable renders the student list with per-row attendance highlighting.
// The widget set is built once for the roster loaded at startup; Update only
// rewrites cell text and backgrounds.
type RosterTable interface {
	Update(rows []model.Row)
}

type rosterTable struct {
	cells [][]*LabelWidget // cells[row] = ID, Name, Branch, Class, Attendance
}

var rosterHeaders = []string{"ID", "Name", "Branch", "Class", "Attendance"}

// NewRosterTable builds the table starting at startRow and returns the view
// plus the next free grid row.
func NewRosterTable(startRow int, rows []model.Row) (RosterTable, int) {
	t := &rosterTable{}
	grid := startRow
	for col, h := range rosterHeaders {
		lbl := Label(Txt(h), Borderwidth(1), Relief("raised"), Width(14), Anchor("w"))
		Grid(lbl, Row(grid), Column(col), Sticky("we"), Padx("0.2m"))
	}
	grid++
	for range rows {
		line := make([]*LabelWidget, len(rosterHeaders))
		for col := range rosterHeaders {
			lbl := Label(Borderwidth(1), Relief("ridge"), Width(14), Anchor("w"), Background(theme.ColorAbsentBg))
			Grid(lbl, Row(grid), Column(col), Sticky("we"), Padx("0.2m"))
			line[col] = lbl
		}
		t.cells = append(t.cells, line)
		grid++
	}
	t.Update(rows)
	return t, grid
}

func (t *rosterTable) Update(rows []model.Row) {
	if t == nil {
		return
	}
	for i, row := range rows {
		if i >= len(t.cells) {
			// The roster is fixed at startup; rows beyond the built
			// cell set cannot appear and are not rendered.
			break
		}
		attendance := "Absent"
		bg := theme.ColorAbsentBg
		if row.Present {
			attendance = "Present"
			bg = theme.ColorPresent
		}
		values := []string{row.ID, row.Name, row.Branch, row.Class, attendance}
		for col, lbl := range t.cells[i] {
			if lbl == nil {
				continue
			}
			lbl.Configure(Txt(values[col]), Background(bg))
		}
	}
}
