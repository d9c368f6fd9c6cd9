package app

import (
	"context"
	"errors"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"

	"rangeslider/internal/config"
	"rangeslider/internal/logging"
	"rangeslider/internal/slider"
)

// Model hosts one slider widget in a terminal. Every slider callback, tick
// callbacks included, runs inside Update.
type Model struct {
	cfg    config.Config
	log    logging.Logger
	now    func() time.Time
	widget *slider.Widget
	keys   keyMap
	help   help.Model
	glyphs glyphSet

	scheduler *tickScheduler
	capture   pointerCapture
	pointer   pointerState
	overlay   slider.Overlay
	renders   int
	active    slider.Kind

	width  int
	height int

	showHelp bool
	helpOpen bool
	status   string

	toastText  string
	toastLevel toastLevel
	toastUntil time.Time

	pendingConfig      *config.Config
	trackWidthOverride int
}

type ModelOption func(*Model)

func WithLogger(log logging.Logger) ModelOption {
	return func(m *Model) {
		if log != nil {
			m.log = log
		}
	}
}

func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithTrackWidthOverride fixes the track width regardless of the config
// file, including files reloaded later.
func WithTrackWidthOverride(width int) ModelOption {
	return func(m *Model) {
		if width > 0 {
			m.trackWidthOverride = width
			m.cfg.UI.TrackWidth = width
		}
	}
}

func withTickFunc(tick tickFunc) ModelOption {
	return func(m *Model) {
		m.scheduler = newTickScheduler(tick)
	}
}

func NewModel(cfg config.Config, opts ...ModelOption) *Model {
	m := &Model{
		cfg:       cfg,
		log:       logging.Nop(),
		now:       time.Now,
		keys:      defaultKeyMap(),
		help:      help.New(),
		glyphs:    resolveGlyphs(nil),
		scheduler: newTickScheduler(nil),
		showHelp:  cfg.UI.ShowHelp,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	host := slider.Host{
		Regions: map[slider.Kind]slider.Region{
			slider.LeftHandle:   hitRegion{m: m, kind: slider.LeftHandle},
			slider.RightHandle:  hitRegion{m: m, kind: slider.RightHandle},
			slider.MiddleRegion: hitRegion{m: m, kind: slider.MiddleRegion},
		},
		Track:     slider.TrackFunc(func() float64 { return float64(m.trackWidth()) }),
		Capturer:  &m.capture,
		Renderer:  slider.RendererFunc(m.receiveOverlay),
		Scheduler: m.scheduler,
	}
	dragOpts := cfg.Drag.Options()
	dragOpts.Logger = m.log.With(logging.F("component", "slider"))
	dragOpts.Now = m.now
	m.widget = slider.NewWidgetWithRange(slider.NewRangeFromState(cfg.Range.State()), host, dragOpts)
	m.widget.OnDragStart(m.onDragStart)
	m.widget.OnDragStop(m.onDragStop)
	m.widget.Observe(m.onSelectionChanged)
	m.status = m.selectionLabel(m.widget.State())
	m.widget.Controller().Render()
	return m
}

// Run drives the model until the user quits or ctx is done. When
// configPath is set the file is watched and edits are applied live.
func Run(ctx context.Context, cfg config.Config, log logging.Logger, configPath string, opts ...ModelOption) error {
	if log == nil {
		log = logging.Nop()
	}
	model := NewModel(cfg, append([]ModelOption{WithLogger(log)}, opts...)...)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	if configPath != "" {
		watcher, err := config.NewWatcher(configPath)
		if err != nil {
			log.Warn("config watch disabled", logging.F("path", configPath), logging.F("error", err))
		} else {
			watchCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			go func() {
				if err := watcher.Run(watchCtx, func(cfg config.Config, err error) {
					p.Send(configReloadedMsg{cfg: cfg, err: err})
				}); err != nil {
					log.Warn("config watch stopped", logging.F("error", err))
				}
			}()
		}
	}

	_, err := p.Run()
	switch {
	case errors.Is(err, tea.ErrInterrupted):
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return nil
	}
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.reduce(msg)
	return m, tea.Batch(cmd, m.scheduler.flush())
}

func (m *Model) reduce(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyPressMsg:
		return m.reduceKey(msg)
	case tea.MouseClickMsg:
		m.reduceLeftPressMouse(msg.Mouse())
	case tea.MouseMotionMsg:
		m.reduceMotionMouse(msg.Mouse())
	case tea.MouseReleaseMsg:
		m.reduceReleaseMouse(msg.Mouse())
	case scheduledTickMsg:
		if msg.run != nil {
			msg.run()
		}
	case configReloadedMsg:
		m.reduceConfigReload(msg)
	case clipboardResultMsg:
		m.reduceClipboardResult(msg)
	}
	return nil
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.viewContent())
	v.AltScreen = true
	v.MouseMode = resolveMouseMode(m.widget.Dragging())
	return v
}

// resolveMouseMode asks for every motion event while dragging so a button
// released outside the window is still noticed.
func resolveMouseMode(dragging bool) tea.MouseMode {
	if dragging {
		return tea.MouseModeAllMotion
	}
	return tea.MouseModeCellMotion
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.SetWidth(width)
	m.widget.Controller().Render()
}

// trackWidth is measured in cells. It is 0 until the terminal size is known
// unless a fixed width is configured.
func (m *Model) trackWidth() int {
	if m.cfg.UI.TrackWidth > 0 {
		return m.cfg.UI.TrackWidth
	}
	if m.width <= 0 {
		return 0
	}
	return max(m.width-2*trackMargin, minTrackWidth)
}

func (m *Model) receiveOverlay(o slider.Overlay) {
	m.overlay = o
	m.renders++
}

func (m *Model) layout() trackLayout {
	return layoutTrack(trackMargin, int(m.overlay.TrackWidth), m.overlay)
}

func (m *Model) onDragStart() {
	if g, ok := m.widget.Controller().Gesture(); ok {
		m.active = g.Kind
		m.status = "dragging " + g.Kind.String()
	}
	m.keys.setDragging(true)
}

func (m *Model) onDragStop() {
	m.active = slider.KindNone
	m.keys.setDragging(false)
	m.status = m.selectionLabel(m.widget.State())
	if m.pendingConfig != nil {
		cfg := *m.pendingConfig
		m.pendingConfig = nil
		m.applyConfig(cfg)
	}
}

func (m *Model) onSelectionChanged(s slider.State) {
	if !m.widget.Dragging() {
		m.status = m.selectionLabel(s)
	}
}
