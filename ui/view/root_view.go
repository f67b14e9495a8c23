package view

import (
	"fmt"
	"image"
	"log/slog"
	"strings"
	"time"

	"github.com/classkit/badge-scan-go/domain/attendance"
	"github.com/classkit/badge-scan-go/ui/model"
	"github.com/classkit/badge-scan-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Table   RosterTable
	Stats   ScanStats
	Preview CameraPreview

	// Widgets
	StateLabel  *LabelWidget
	StatusLabel *LabelWidget
	LastLabel   *LabelWidget
	TallyLabel  *LabelWidget
	openBtn     *ButtonWidget
	stopBtn     *ButtonWidget
	decodeBtn   *ButtonWidget
	pathEntry   *TextWidget
}

// UI abstracts the view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	SetStateLabel(text string)
	SetStatus(msg string)
	ShowCameraActive(active bool)
	PreviewReset()
	UpdatePreview(img image.Image)
	UpdateRoster(rows []model.Row)
	SetLastScanned(s *attendance.Student)
	SetPresentCount(present, total int)
	SetStats(session, total time.Duration, hits int)
}

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout for the roster loaded at startup. Handlers are
// invoked on user actions; onDecodeImage receives the typed image path.
func (rv *RootView) Build(rows []model.Row, onOpenCamera, onStopCamera func(), onDecodeImage func(path string), onExit func()) {
	if rv == nil {
		return
	}
	// Row 0: state label, status line, control buttons.
	rv.StateLabel = Label(Txt("State: idle"), Style(theme.StyleStateLabel))
	Grid(rv.StateLabel, Row(0), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.StatusLabel = Label(Txt(""), Style(theme.StyleStatusLabel), Anchor("w"))
	Grid(rv.StatusLabel, Row(0), Column(1), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	rv.openBtn = Button(Txt("Open Camera"), Style(theme.StylePrimaryButton), Command(onOpenCamera))
	Grid(rv.openBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.stopBtn = Button(Txt("Stop Camera"), Style(theme.StyleDangerButton), Command(onStopCamera))
	Grid(rv.stopBtn, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	rv.pathEntry = Text(Height(1), Width(26))
	Grid(rv.pathEntry, In(btnFrame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.decodeBtn = Button(Txt("Decode Image"), Command(func() {
		if onDecodeImage != nil {
			onDecodeImage(rv.imagePath())
		}
	}))
	Grid(rv.decodeBtn, In(btnFrame), Row(3), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	exitBtn := Button(Txt("Exit"), Command(onExit))
	Grid(exitBtn, In(btnFrame), Row(4), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: scanning stats plus attendance tally.
	rv.Stats = NewScanStats(1, 0)
	rv.TallyLabel = Label(Txt("Present: 0 / 0"), Anchor("e"))
	Grid(rv.TallyLabel, Row(1), Column(3), Columnspan(2), Sticky("e"), Padx("0.4m"))

	// Row 2: last-scanned student panel.
	rv.LastLabel = Label(Txt("Last scanned: none"), Borderwidth(1), Relief("ridge"), Anchor("w"))
	Grid(rv.LastLabel, Row(2), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	// Roster table, then camera preview underneath.
	var next int
	rv.Table, next = NewRosterTable(3, rows)
	rv.Preview = NewCameraPreview(next, 0, 5)

	rv.ShowCameraActive(false)
}

func (rv *RootView) imagePath() string {
	if rv == nil || rv.pathEntry == nil {
		return ""
	}
	parts := rv.pathEntry.Get("1.0", END)
	return strings.TrimSpace(strings.Join(parts, ""))
}

// SetStateLabel updates the session-state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(msg string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(msg))
	}
}

// ShowCameraActive swaps the Open/Stop buttons: only the action that makes
// sense for the current source state is enabled.
func (rv *RootView) ShowCameraActive(active bool) {
	if rv == nil {
		return
	}
	openState, stopState := "normal", "disabled"
	if active {
		openState, stopState = "disabled", "normal"
	}
	if rv.openBtn != nil {
		rv.openBtn.Configure(State(openState))
	}
	if rv.stopBtn != nil {
		rv.stopBtn.Configure(State(stopState))
	}
}

// PreviewReset clears the camera preview surface.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}

// UpdatePreview proxies to the underlying preview view.
func (rv *RootView) UpdatePreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdatePreview(img)
	}
}

// UpdateRoster redraws the roster table.
func (rv *RootView) UpdateRoster(rows []model.Row) {
	if rv != nil && rv.Table != nil {
		rv.Table.Update(rows)
	}
}

// SetLastScanned renders the last matched student, or the empty panel.
func (rv *RootView) SetLastScanned(s *attendance.Student) {
	if rv == nil || rv.LastLabel == nil {
		return
	}
	if s == nil {
		rv.LastLabel.Configure(Txt("Last scanned: none"))
		return
	}
	rv.LastLabel.Configure(Txt("Last scanned: " + s.ID + " - " + s.Name + " (" + s.Branch + ", " + s.Class + ")"))
}

// SetPresentCount shows the attendance tally.
func (rv *RootView) SetPresentCount(present, total int) {
	if rv == nil || rv.TallyLabel == nil {
		return
	}
	rv.TallyLabel.Configure(Txt(fmt.Sprintf("Present: %d / %d", present, total)))
}

// SetStats proxies scanning durations and hit count to the stats row.
func (rv *RootView) SetStats(session, total time.Duration, hits int) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.SetStats(session, total, hits)
	}
}

var _ UI = (*RootView)(nil)
