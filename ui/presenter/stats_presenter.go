package presenter

import (
	"time"

	"github.com/classkit/badge-scan-go/domain/scan"
	"github.com/classkit/badge-scan-go/ui/model"
)

// StatsView displays scanning durations and the decode counter.
type StatsView interface {
	SetStats(session, total time.Duration, hits int)
}

// StatsPresenter advances the stats model from the session state and pushes
// the values to the view.
type StatsPresenter struct {
	stats *model.StatsModel
	eng   StateSource
	view  StatsView
}

func NewStatsPresenter(stats *model.StatsModel, eng StateSource, view StatsView) *StatsPresenter {
	return &StatsPresenter{stats: stats, eng: eng, view: view}
}

// Tick updates the presenter: advance the model and push values to the view.
func (p *StatsPresenter) Tick(now time.Time) {
	if p == nil || p.stats == nil || p.eng == nil || p.view == nil {
		return
	}
	p.stats.OnTick(p.eng.Current() == scan.StateScanning, now)
	s, t := p.stats.Durations()
	p.view.SetStats(s, t, p.stats.Hits())
}
