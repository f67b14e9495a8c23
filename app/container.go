package app

import (
	"log/slog"

	"github.com/classkit/badge-scan-go/config"
	"github.com/classkit/badge-scan-go/decode"
	"github.com/classkit/badge-scan-go/domain/attendance"
	"github.com/classkit/badge-scan-go/domain/scan"
	"github.com/classkit/badge-scan-go/media"
	"github.com/classkit/badge-scan-go/ui/model"
	"github.com/classkit/badge-scan-go/ui/presenter"
	"github.com/classkit/badge-scan-go/ui/view"
)

// AppContainer assembles the store, the scan session engine, models,
// presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Store    *attendance.Store
	Session  scan.SessionContract
	Camera   *model.CameraModel
	Roster   *model.RosterModel
	Stats    *model.StatsModel
	RootView *view.RootView
	UI       view.UI

	// Presenters
	StatePresenter   *presenter.StatePresenter
	RosterPresenter  *presenter.RosterPresenter
	StatsPresenter   *presenter.StatsPresenter
	PreviewPresenter *presenter.PreviewPresenter
	CameraPresenter  *presenter.CameraPresenter
	Loop             *presenter.Loop
}

// BuildContainer constructs all components for the given roster. The session
// engine starts its event loop immediately; the view is built by the app
// wrapper once Tk is up.
func BuildContainer(cfg *config.Config, logger *slog.Logger, roster []attendance.Student) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Store = attendance.NewStore(roster, logger)
	c.Camera = &model.CameraModel{}
	c.Roster = model.NewRosterModel()
	c.Stats = model.NewStatsModel()

	provider := media.NewScreenProvider(logger)
	c.Session = scan.NewFSM(logger, cfg, provider, decode.NewZXing, scan.Callbacks{
		OnResult: func(r decode.Result) {
			c.Store.RecordScan(r.Text)
			c.Stats.RecordHit()
		},
		OnMessage: c.Store.SetStatus,
	})

	c.RootView = view.NewRootView(logger)
	c.UI = c.RootView
	return c
}

// wirePresenters connects presenters to the already-built view. Called by the
// app wrapper after RootView.Build.
func (c *AppContainer) wirePresenters() {
	c.StatePresenter = presenter.NewStatePresenter(c.Session, c.UI, c.Camera, c.UI)
	c.Session.AddListener(func(_, next scan.SessionState) { c.StatePresenter.OnState(next) })
	c.RosterPresenter = presenter.NewRosterPresenter(c.Store, c.Roster, c.UI)
	c.StatsPresenter = presenter.NewStatsPresenter(c.Stats, c.Session, c.UI)
	c.PreviewPresenter = presenter.NewPreviewPresenter(c.Camera, c.Session, c.UI)
	c.CameraPresenter = presenter.NewCameraPresenter(c.Camera, c.Session, c.UI)
	c.Loop = &presenter.Loop{
		State:   c.StatePresenter,
		Roster:  c.RosterPresenter,
		Stats:   c.StatsPresenter,
		Preview: c.PreviewPresenter,
	}
}
