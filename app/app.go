package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/classkit/badge-scan-go/config"
	"github.com/classkit/badge-scan-go/debug"
	"github.com/classkit/badge-scan-go/domain/attendance"
	"github.com/classkit/badge-scan-go/ui/theme"
)

const tick = 100 * time.Millisecond

// app owns the Tk window lifecycle and the periodic presenter loop.
// Lowercase on purpose: the dot-imported tk9.0 package exports the root
// window as App.
type app struct {
	container *AppContainer
	logger    *slog.Logger
	afterID   string
}

func NewApp(title string, width, height int, cfg *config.Config, logger *slog.Logger, roster []attendance.Student) *app {
	a := &app{logger: logger}
	a.container = BuildContainer(cfg, logger, roster)

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the view, wires presenters and enters the Tk event loop.
// Blocks until the window closes.
func (a *app) Start() {
	c := a.container
	theme.InitStyles()

	// Seed the roster rows so the table is laid out for the loaded roster.
	c.Roster.Update(c.Store.Students(), c.Store.Revision())
	c.RootView.Build(c.Roster.Rows(),
		func() { c.CameraPresenter.Enable() },
		func() { c.CameraPresenter.Disable() },
		func(path string) { c.CameraPresenter.DecodeImage(path) },
		a.exitHandler,
	)
	c.wirePresenters()
	c.Loop.Schedule = a.scheduleUpdate

	if c.Config.Debug {
		debug.StartGoroutineLogger(2*time.Second, a.logger)
		debug.StartMemLogger(2*time.Second, a.logger)
	}

	// Paint the initial tally; later updates flow through RosterPresenter.
	c.UI.SetPresentCount(c.Store.PresentCount(), len(c.Roster.Rows()))

	a.scheduleUpdate()
	App.Wait()
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	if a.container != nil && a.container.Session != nil {
		a.container.Session.Stop()
		a.container.Session.Close()
	}
	Destroy(App)
}

// scheduleUpdate queues the next presenter tick on Tk's event loop thread.
func (a *app) scheduleUpdate() {
	a.afterID = TclAfter(tick, func() { a.container.Loop.Tick() })
}
