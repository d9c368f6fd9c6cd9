package app

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	xansi "github.com/charmbracelet/x/ansi"

	"rangeslider/internal/config"
	"rangeslider/internal/slider"
)

// tickQueue stands in for tea.Tick: callbacks are queued and delivered
// through Update only when the test fires them.
type tickQueue struct {
	delays []time.Duration
	fns    []func(time.Time) tea.Msg
}

func (q *tickQueue) tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	q.delays = append(q.delays, d)
	q.fns = append(q.fns, fn)
	return nil
}

func (q *tickQueue) fire(t *testing.T, m *Model) {
	t.Helper()
	if len(q.fns) == 0 {
		t.Fatalf("no tick scheduled")
	}
	fn := q.fns[0]
	q.fns = q.fns[1:]
	m.Update(fn(time.Time{}))
}

func newTestModel(t *testing.T, mutate func(*config.Config), opts ...ModelOption) (*Model, *tickQueue) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.UI.TrackWidth = 100
	if mutate != nil {
		mutate(&cfg)
	}
	q := &tickQueue{}
	opts = append([]ModelOption{withTickFunc(q.tick), WithClock(func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	})}, opts...)
	m := NewModel(cfg, opts...)
	m.Update(tea.WindowSizeMsg{Width: 104, Height: 20})
	return m, q
}

func press(m *Model, x int) {
	m.Update(tea.MouseClickMsg{Button: tea.MouseLeft, X: x, Y: trackRow})
}

func move(m *Model, x int) {
	m.Update(tea.MouseMotionMsg{Button: tea.MouseLeft, X: x, Y: trackRow})
}

func release(m *Model, x int) {
	m.Update(tea.MouseReleaseMsg{Button: tea.MouseLeft, X: x, Y: trackRow})
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestResolveMouseModeUsesAllMotionOnlyWhileDragging(t *testing.T) {
	if got := resolveMouseMode(false); got != tea.MouseModeCellMotion {
		t.Fatalf("expected cell motion when not dragging, got %v", got)
	}
	if got := resolveMouseMode(true); got != tea.MouseModeAllMotion {
		t.Fatalf("expected all motion when dragging, got %v", got)
	}
}

func TestMiddleDragCrawlsTowardPointer(t *testing.T) {
	m, q := newTestModel(t, nil)

	// selection 0..10 on a 100 cell track: handles at cells 0 and 9
	press(m, trackMargin+5)
	if !m.widget.Dragging() || m.active != slider.MiddleRegion {
		t.Fatalf("expected middle drag, active=%v", m.active)
	}
	if len(q.fns) != 1 || q.delays[0] != slider.DefaultTickInterval {
		t.Fatalf("expected one tick after %v, got %v", slider.DefaultTickInterval, q.delays)
	}
	if v := m.View(); v.MouseMode != tea.MouseModeAllMotion {
		t.Fatalf("expected all-motion mouse mode while dragging")
	}

	move(m, trackMargin+45)
	q.fire(t, m)
	// offset 44 against origin 4: moved 40, speed 40/100*40
	assertNear(t, "start", m.widget.SliderStart(), 16)
	assertNear(t, "end", m.widget.SliderEnd(), 26)

	q.fire(t, m)
	// the region followed the selection, so the pointer is now 24 cells ahead
	assertNear(t, "start", m.widget.SliderStart(), 25.6)
	assertNear(t, "end", m.widget.SliderEnd(), 35.6)

	release(m, trackMargin+45)
	if m.widget.Dragging() || m.capture.held || m.active != slider.KindNone {
		t.Fatalf("expected release to end the gesture")
	}
	renders, start := m.renders, m.widget.SliderStart()
	q.fire(t, m)
	if m.renders != renders || m.widget.SliderStart() != start {
		t.Fatalf("expected stale tick to be dropped")
	}
	if len(q.fns) != 0 {
		t.Fatalf("expected no further ticks, got %d", len(q.fns))
	}
	if v := m.View(); v.MouseMode != tea.MouseModeCellMotion {
		t.Fatalf("expected cell-motion mouse mode after release")
	}
}

func TestLeftHandleDragShrinksSelection(t *testing.T) {
	m, q := newTestModel(t, nil)
	press(m, trackMargin)
	if m.active != slider.LeftHandle {
		t.Fatalf("expected left handle, got %v", m.active)
	}
	move(m, trackMargin+5)
	q.fire(t, m)
	assertNear(t, "start", m.widget.SliderStart(), 2)
	assertNear(t, "end", m.widget.SliderEnd(), 10)
}

func TestRightHandleDragGrowsSelection(t *testing.T) {
	m, q := newTestModel(t, nil)
	press(m, trackMargin+9)
	if m.active != slider.RightHandle {
		t.Fatalf("expected right handle, got %v", m.active)
	}
	move(m, trackMargin+19)
	q.fire(t, m)
	assertNear(t, "start", m.widget.SliderStart(), 0)
	assertNear(t, "end", m.widget.SliderEnd(), 14)
}

func TestMotionWithoutButtonEndsGestureOnNextTick(t *testing.T) {
	m, q := newTestModel(t, nil)
	press(m, trackMargin+5)
	m.Update(tea.MouseMotionMsg{Button: tea.MouseNone, X: trackMargin + 40, Y: trackRow})
	if !m.widget.Dragging() {
		t.Fatalf("expected the gesture to survive until the next tick")
	}
	q.fire(t, m)
	if m.widget.Dragging() {
		t.Fatalf("expected the tick to notice the button is up")
	}
	assertNear(t, "start", m.widget.SliderStart(), 0)
	if len(q.fns) != 0 {
		t.Fatalf("expected no tick after the gesture ended")
	}
}

func TestPressOutsideSelectionDoesNotStartGesture(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseClickMsg
	}{
		{name: "header row", msg: tea.MouseClickMsg{Button: tea.MouseLeft, X: trackMargin + 5, Y: 0}},
		{name: "margin", msg: tea.MouseClickMsg{Button: tea.MouseLeft, X: 0, Y: trackRow}},
		{name: "hidden track", msg: tea.MouseClickMsg{Button: tea.MouseLeft, X: trackMargin + 50, Y: trackRow}},
		{name: "right button", msg: tea.MouseClickMsg{Button: tea.MouseRight, X: trackMargin + 5, Y: trackRow}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, q := newTestModel(t, nil)
			m.Update(tc.msg)
			if m.widget.Dragging() || len(q.fns) != 0 || m.pointer.pressed {
				t.Fatalf("expected no gesture")
			}
		})
	}
}

func TestPressBeforeLayoutIsRefused(t *testing.T) {
	cfg := config.DefaultConfig()
	q := &tickQueue{}
	m := NewModel(cfg, withTickFunc(q.tick))
	press(m, trackMargin)
	if m.widget.Dragging() || m.capture.held {
		t.Fatalf("expected no gesture before the track has a width")
	}
}

func TestSecondPressWhileDraggingIsIgnored(t *testing.T) {
	m, q := newTestModel(t, nil)
	press(m, trackMargin+5)
	g, _ := m.widget.Controller().Gesture()

	press(m, trackMargin)
	if got, _ := m.widget.Controller().Gesture(); got.ID != g.ID || got.Kind != slider.MiddleRegion {
		t.Fatalf("expected the original gesture to continue, got %+v", got)
	}
	if len(q.fns) != 1 {
		t.Fatalf("expected a single pending tick, got %d", len(q.fns))
	}
}

func TestConfigReloadWaitsForDragToEnd(t *testing.T) {
	m, _ := newTestModel(t, nil)
	press(m, trackMargin+5)

	next := config.DefaultConfig()
	next.Range.Max = 200
	next.Drag.SpeedFactor = 10
	m.Update(configReloadedMsg{cfg: next})
	if m.widget.Max() != 100 || m.pendingConfig == nil {
		t.Fatalf("expected reload to be deferred while dragging")
	}

	release(m, trackMargin+5)
	if m.widget.Max() != 200 {
		t.Fatalf("expected new max after release, got %v", m.widget.Max())
	}
	if m.widget.SliderStart() != 0 || m.widget.SliderEnd() != 10 {
		t.Fatalf("expected selection to be kept, got %v..%v", m.widget.SliderStart(), m.widget.SliderEnd())
	}
	if m.widget.Controller().Options().SpeedFactor != 10 {
		t.Fatalf("expected speed factor to be applied")
	}
}

func TestConfigReloadErrorShowsToast(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(configReloadedMsg{err: errors.New("bad toml")})
	if m.toastLevel != toastLevelError || !strings.Contains(m.toastText, "bad toml") {
		t.Fatalf("expected error toast, got %q", m.toastText)
	}
}

func TestConfigReloadKeepsTrackWidthOverride(t *testing.T) {
	m, _ := newTestModel(t, nil, WithTrackWidthOverride(40))
	if m.trackWidth() != 40 || m.overlay.TrackWidth != 40 {
		t.Fatalf("expected overridden track width 40, got %d (overlay %v)", m.trackWidth(), m.overlay.TrackWidth)
	}

	m.Update(configReloadedMsg{cfg: config.DefaultConfig()})
	if m.trackWidth() != 40 || m.overlay.TrackWidth != 40 {
		t.Fatalf("expected override to survive a reload without track_width, got %d (overlay %v)", m.trackWidth(), m.overlay.TrackWidth)
	}

	next := config.DefaultConfig()
	next.UI.TrackWidth = 60
	m.Update(configReloadedMsg{cfg: next})
	if m.trackWidth() != 40 {
		t.Fatalf("expected override to win over the file, got %d", m.trackWidth())
	}
}

func TestConfigReloadTrackWidthFollowsFileWithoutOverride(t *testing.T) {
	m, _ := newTestModel(t, nil)
	next := config.DefaultConfig()
	next.UI.TrackWidth = 60
	m.Update(configReloadedMsg{cfg: next})
	if m.trackWidth() != 60 || m.overlay.TrackWidth != 60 {
		t.Fatalf("expected reloaded track width 60, got %d (overlay %v)", m.trackWidth(), m.overlay.TrackWidth)
	}
}

func TestConfigReloadRejectsInvertedBounds(t *testing.T) {
	m, _ := newTestModel(t, nil)
	next := config.DefaultConfig()
	next.Range.Min = 50
	next.Range.Max = 10
	next.Drag.SpeedFactor = 5
	m.Update(configReloadedMsg{cfg: next})

	if m.toastLevel != toastLevelWarning || !strings.Contains(m.toastText, "min must be below max") {
		t.Fatalf("expected warning toast, got level=%d %q", m.toastLevel, m.toastText)
	}
	if m.widget.Min() != 0 || m.widget.Max() != 100 {
		t.Fatalf("expected bounds untouched, got %v..%v", m.widget.Min(), m.widget.Max())
	}
	if m.cfg.Range.Max != 100 || m.widget.Controller().Options().SpeedFactor != slider.DefaultSpeedFactor {
		t.Fatalf("expected the rejected config to be discarded entirely")
	}
}

func TestConfigReloadRejectsInvertedBoundsWhileDragging(t *testing.T) {
	m, _ := newTestModel(t, nil)
	press(m, trackMargin+5)

	next := config.DefaultConfig()
	next.Range.Min = 10
	next.Range.Max = 10
	m.Update(configReloadedMsg{cfg: next})
	if m.pendingConfig != nil {
		t.Fatalf("expected invalid config not to be queued")
	}
	if m.toastLevel != toastLevelWarning {
		t.Fatalf("expected warning toast, got %q", m.toastText)
	}

	release(m, trackMargin+5)
	if m.widget.Max() != 100 {
		t.Fatalf("expected bounds untouched after release, got %v", m.widget.Max())
	}
}

func TestResetKeyRestoresConfiguredRange(t *testing.T) {
	m, q := newTestModel(t, nil)
	press(m, trackMargin+5)
	move(m, trackMargin+45)
	q.fire(t, m)
	release(m, trackMargin+45)

	m.Update(keyPress('r'))
	if got := m.widget.State(); got != m.cfg.Range.State() {
		t.Fatalf("expected configured range, got %+v", got)
	}
}

func TestResetKeyDisabledWhileDragging(t *testing.T) {
	m, q := newTestModel(t, nil)
	press(m, trackMargin+5)
	move(m, trackMargin+45)
	q.fire(t, m)

	m.Update(keyPress('r'))
	assertNear(t, "start", m.widget.SliderStart(), 16)
}

func TestQuitReleasesActiveGesture(t *testing.T) {
	m, _ := newTestModel(t, nil)
	press(m, trackMargin+5)
	_, cmd := m.Update(keyPress('q'))
	if m.widget.Dragging() {
		t.Fatalf("expected quit to release the gesture")
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestViewShowsTrackAndSelection(t *testing.T) {
	m, _ := newTestModel(t, nil)
	plain := xansi.Strip(m.viewContent())
	lines := strings.Split(plain, "\n")
	if len(lines) <= trackRow+1 {
		t.Fatalf("unexpected view:\n%s", plain)
	}
	track := lines[trackRow]
	if !strings.HasPrefix(track, "  "+m.glyphs.left) {
		t.Fatalf("expected left handle at the start of the track, got %q", track)
	}
	if got := xansi.StringWidth(strings.TrimRight(track, " ")); got != trackMargin+100 {
		t.Fatalf("expected a 100 cell track, got width %d", got)
	}
	if !strings.Contains(lines[trackRow+1], "0.0 – 10.0") {
		t.Fatalf("expected selection label, got %q", lines[trackRow+1])
	}
	for i, line := range lines {
		if w := xansi.StringWidth(line); w != 104 {
			t.Fatalf("line %d has width %d, want 104", i, w)
		}
	}
}

func TestViewShowsToast(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.showErrorToast("copy failed")
	if plain := xansi.Strip(m.viewContent()); !strings.Contains(plain, "copy failed") {
		t.Fatalf("expected toast text in view output: %q", plain)
	}
}

func TestHelpKeyTogglesMarkdownHelp(t *testing.T) {
	m, _ := newTestModel(t, func(cfg *config.Config) { cfg.UI.MarkdownStyle = "notty" })
	m.Update(keyPress('?'))
	if !m.helpOpen {
		t.Fatalf("expected help to open")
	}
	if plain := xansi.Strip(m.viewContent()); !strings.Contains(plain, "Dragging") {
		t.Fatalf("expected rendered help, got:\n%s", plain)
	}
	m.Update(keyPress('?'))
	if m.helpOpen {
		t.Fatalf("expected help to close")
	}
}
