package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback. The
// zero value is usable (methods are nil-safe).
type Loop struct {
	State    *StatePresenter
	Roster   *RosterPresenter
	Stats    *StatsPresenter
	Preview  *PreviewPresenter
	Schedule func()
}

func NewLoop(state *StatePresenter, roster *RosterPresenter, stats *StatsPresenter, preview *PreviewPresenter, schedule func()) *Loop {
	return &Loop{State: state, Roster: roster, Stats: stats, Preview: preview, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	// Drive the state presenter first so pending transitions reach the view
	// before dependent updates.
	if l.State != nil {
		l.State.Tick(now)
	}
	if l.Roster != nil {
		l.Roster.Tick()
	}
	if l.Stats != nil {
		l.Stats.Tick(now)
	}
	if l.Preview != nil {
		l.Preview.Tick()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
