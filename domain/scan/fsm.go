package scan

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/classkit/badge-scan-go/config"
	"github.com/classkit/badge-scan-go/decode"
	"github.com/classkit/badge-scan-go/media"
)

// Status messages surfaced through Callbacks.OnMessage.
const (
	MsgNoDevice      = "No camera device found!"
	MsgImageNotFound = "No barcode found in this image!"
)

// ScanFSM manages the decode-session lifecycle: camera start/stop, the
// continuous frame-decode loop and one-shot image decodes. Only one scan
// source is active at a time; starting one tears the other down first.
// Decoder instances and their symbology hints are rebuilt on every session
// start so no decoder state leaks between sessions.
type ScanFSM struct {
	state     atomic.Int32 // SessionState; written by the event loop only
	logger    *slog.Logger
	cfg       *config.Config
	provider  media.Provider
	factory   decode.Factory
	callbacks Callbacks
	events    chan interface{}
	quit      chan struct{}
	closed    atomic.Bool
	listeners []StateListener
	session   *cameraSession
	attemptID string // rejects events from superseded camera attempts
	latest    atomic.Pointer[FrameSnapshot]
}

// cameraSession is the owned, replaceable resource bundle for one camera
// session. Closing done unsubscribes the frame loop; Release drops the
// stream's tracks. Both happen on every stop/start/error path.
type cameraSession struct {
	id      string
	stream  media.Stream
	decoder decode.Decoder
	done    chan struct{}
}

// events
type (
	evtAddListener struct{ l StateListener }
	evtOpenCamera  struct{}
	evtStreamReady struct {
		id     string
		stream media.Stream
		device media.Device
	}
	evtCameraError struct {
		id  string
		err error
	}
	evtDecodeHit struct {
		id  string
		res decode.Result
	}
	evtFrameError struct {
		id  string
		err error
	}
	evtStop        struct{}
	evtDecodeImage struct{ path string }
	evtImageResult struct {
		res decode.Result
		err error
	}
)

// NewFSM constructs the session and starts its event loop.
func NewFSM(logger *slog.Logger, cfg *config.Config, provider media.Provider, factory decode.Factory, callbacks Callbacks) *ScanFSM {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	f := &ScanFSM{
		logger:    logger,
		cfg:       cfg,
		provider:  provider,
		factory:   factory,
		callbacks: callbacks,
		events:    make(chan interface{}, 64),
		quit:      make(chan struct{}),
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				if logger != nil {
					logger.Error("scan fsm panic", "error", r, "stack", stack)
				}
			}
		}()
		f.loop()
	}()
	return f
}

func (f *ScanFSM) loop() {
	for {
		var ev interface{}
		select {
		case <-f.quit:
			f.teardown()
			f.drainQueued()
			return
		case ev = <-f.events:
		}
		switch e := ev.(type) {
		case evtAddListener:
			f.listeners = append(f.listeners, e.l)
		case evtOpenCamera:
			f.handleOpenCamera()
		case evtStreamReady:
			f.handleStreamReady(e)
		case evtCameraError:
			f.handleCameraError(e)
		case evtDecodeHit:
			f.handleDecodeHit(e)
		case evtFrameError:
			f.handleFrameError(e)
		case evtStop:
			f.teardown()
			f.message("")
			f.transition(StateIdle)
		case evtDecodeImage:
			f.handleDecodeImage(e.path)
		case evtImageResult:
			f.handleImageResult(e)
		}
	}
}

// send delivers an event to the loop unless the FSM is shutting down. Events
// are never sent on a closed channel: producers racing Close drop here. A
// dropped event carrying a live stream releases it.
func (f *ScanFSM) send(ev interface{}) {
	select {
	case f.events <- ev:
	case <-f.quit:
		if e, ok := ev.(evtStreamReady); ok {
			e.stream.Release()
		}
	}
}

// drainQueued releases streams held by events still buffered at shutdown.
func (f *ScanFSM) drainQueued() {
	for {
		select {
		case ev := <-f.events:
			if e, ok := ev.(evtStreamReady); ok {
				e.stream.Release()
			}
		default:
			return
		}
	}
}

func (f *ScanFSM) handleOpenCamera() {
	switch f.Current() {
	case StateIdle, StateError:
	default:
		return
	}
	id := uuid.NewString()
	f.attemptID = id
	f.transition(StateCameraStarting)
	go f.acquire(id)
}

// acquire runs off the event loop: device enumeration and stream permission
// are the session's suspension points.
func (f *ScanFSM) acquire(id string) {
	devices, err := f.provider.VideoInputs()
	if err != nil {
		f.send(evtCameraError{id: id, err: err})
		return
	}
	if len(devices) == 0 {
		f.send(evtCameraError{id: id, err: media.ErrNoDevice})
		return
	}
	// Always the first enumerated device; there is no picker.
	dev := devices[0]
	stream, err := f.provider.Open(media.Constraints{
		DeviceID:    dev.ID,
		FacingMode:  f.cfg.PreferredFacingMode,
		IdealWidth:  f.cfg.IdealWidth,
		IdealHeight: f.cfg.IdealHeight,
	})
	if err != nil {
		f.send(evtCameraError{id: id, err: err})
		return
	}
	f.send(evtStreamReady{id: id, stream: stream, device: dev})
}

func (f *ScanFSM) handleStreamReady(e evtStreamReady) {
	if f.Current() != StateCameraStarting || e.id != f.attemptID {
		// Superseded attempt: the user stopped or restarted meanwhile.
		e.stream.Release()
		return
	}
	decoder, err := f.buildDecoder()
	if err != nil {
		e.stream.Release()
		if f.logger != nil {
			f.logger.Error("decoder construction failed", "error", err)
		}
		f.message("Unable to start scanner: " + err.Error())
		f.transition(StateError)
		return
	}
	done := make(chan struct{})
	f.session = &cameraSession{id: e.id, stream: e.stream, decoder: decoder, done: done}
	f.transition(StateCameraActive)
	if f.logger != nil {
		f.logger.Info("camera session started", "session", e.id, "device", e.device.Label)
	}
	go f.frameLoop(e.id, e.stream, decoder, done)
	f.message("Ready, hold a barcode up to the camera")
	f.transition(StateScanning)
}

// buildDecoder reconstructs the decoder with the configured allow-list.
// Intentionally not cached: a fresh instance per session avoids stale
// internal state.
func (f *ScanFSM) buildDecoder() (decode.Decoder, error) {
	hints, err := decode.ParseSymbologies(f.cfg.Formats)
	if err != nil {
		return nil, err
	}
	return f.factory(hints)
}

// frameLoop is the subscription returned to the session: it decodes frames
// until done is closed. Closing done is the unsubscribe handle invoked on
// every teardown path.
func (f *ScanFSM) frameLoop(id string, stream media.Stream, decoder decode.Decoder, done chan struct{}) {
	ticker := time.NewTicker(f.cfg.FrameInterval())
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
		}
		img, err := stream.Frame()
		if err != nil {
			if errors.Is(err, media.ErrReleased) {
				return
			}
			f.send(evtFrameError{id: id, err: err})
			continue
		}
		f.latest.Store(&FrameSnapshot{Image: img, CapturedAt: time.Now()})
		res, err := decoder.Decode(img)
		if err != nil {
			if errors.Is(err, decode.ErrNotFound) {
				continue // expected per-frame noise
			}
			f.send(evtFrameError{id: id, err: err})
			continue
		}
		f.send(evtDecodeHit{id: id, res: res})
	}
}

func (f *ScanFSM) handleDecodeHit(e evtDecodeHit) {
	if f.Current() != StateScanning || f.session == nil || f.session.id != e.id {
		return
	}
	if f.logger != nil {
		f.logger.Info("barcode decoded", "session", e.id, "format", string(e.res.Format))
	}
	if f.callbacks.OnResult != nil {
		f.callbacks.OnResult(e.res)
	}
	if f.cfg.StopOnMatch {
		f.teardown()
		f.transition(StateIdle)
	}
}

func (f *ScanFSM) handleFrameError(e evtFrameError) {
	if f.Current() != StateScanning || f.session == nil || f.session.id != e.id {
		return
	}
	// Genuine per-frame errors are surfaced but never stop the session.
	if f.logger != nil {
		f.logger.Error("frame decode error", "session", e.id, "error", e.err)
	}
	f.message("Scanning error, still trying...")
}

func (f *ScanFSM) handleCameraError(e evtCameraError) {
	if f.Current() != StateCameraStarting || e.id != f.attemptID {
		return
	}
	if f.logger != nil {
		f.logger.Error("camera start failed", "error", e.err)
	}
	if errors.Is(e.err, media.ErrNoDevice) {
		f.message(MsgNoDevice)
	} else {
		f.message("Unable to start camera: " + e.err.Error())
	}
	f.transition(StateError)
}

func (f *ScanFSM) handleDecodeImage(path string) {
	if f.Current() == StateImageProcessing {
		return
	}
	// Hard rule: camera and image decoding are mutually exclusive. Any
	// active camera session is fully torn down before the file is touched.
	f.teardown()
	f.transition(StateImageProcessing)
	go f.decodeImageFile(path)
}

func (f *ScanFSM) decodeImageFile(path string) {
	res, err := func() (decode.Result, error) {
		file, err := os.Open(path)
		if err != nil {
			return decode.Result{}, fmt.Errorf("open image: %w", err)
		}
		defer file.Close()
		img, _, err := image.Decode(file)
		if err != nil {
			return decode.Result{}, fmt.Errorf("load image: %w", err)
		}
		decoder, err := f.buildDecoder()
		if err != nil {
			return decode.Result{}, err
		}
		return decoder.Decode(img)
	}()
	f.send(evtImageResult{res: res, err: err})
}

func (f *ScanFSM) handleImageResult(e evtImageResult) {
	if f.Current() != StateImageProcessing {
		return
	}
	switch {
	case e.err == nil:
		if f.callbacks.OnResult != nil {
			f.callbacks.OnResult(e.res)
		}
	case errors.Is(e.err, decode.ErrNotFound):
		f.message(MsgImageNotFound)
	default:
		if f.logger != nil {
			f.logger.Error("image decode failed", "error", e.err)
		}
		f.message("Could not process this image: " + e.err.Error())
	}
	f.transition(StateIdle)
}

// teardown releases the active camera session: unsubscribe the frame loop,
// release the stream's tracks, discard the decoder instance.
func (f *ScanFSM) teardown() {
	if f.session == nil {
		return
	}
	close(f.session.done)
	f.session.stream.Release()
	if f.logger != nil {
		f.logger.Info("camera session stopped", "session", f.session.id)
	}
	f.session = nil
	f.attemptID = ""
	f.latest.Store(nil)
}

func (f *ScanFSM) transition(next SessionState) {
	prev := f.Current()
	if prev == next {
		return
	}
	f.state.Store(int32(next))
	if f.logger != nil {
		f.logger.Debug("scan state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range f.listeners {
		l(prev, next)
	}
}

func (f *ScanFSM) message(msg string) {
	if f.callbacks.OnMessage != nil {
		f.callbacks.OnMessage(msg)
	}
}

// Public API implements contracts
func (f *ScanFSM) Current() SessionState       { return SessionState(f.state.Load()) }
func (f *ScanFSM) OpenCamera()                 { f.send(evtOpenCamera{}) }
func (f *ScanFSM) Stop()                       { f.send(evtStop{}) }
func (f *ScanFSM) DecodeImage(path string)     { f.send(evtDecodeImage{path: path}) }
func (f *ScanFSM) AddListener(l StateListener) { f.send(evtAddListener{l: l}) }

// LatestFrame returns the freshest frame pulled from the active stream, for
// the UI preview. Zero value when no camera session is running.
func (f *ScanFSM) LatestFrame() FrameSnapshot {
	snap := f.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

// Close shuts the event loop down and releases any active session. Safe to
// call more than once and concurrently with in-flight decodes: producers
// select against quit, so the events channel is never closed.
func (f *ScanFSM) Close() {
	if f.closed.Swap(true) {
		return
	}
	close(f.quit)
}

// Ensure contract satisfaction
var _ SessionContract = (*ScanFSM)(nil)
