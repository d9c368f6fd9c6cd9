package slider

import "time"

type fakeRegion struct {
	offset  float64
	ready   bool
	pressed bool
}

func newFakeRegion(offset float64) *fakeRegion {
	return &fakeRegion{offset: offset, ready: true, pressed: true}
}

func (r *fakeRegion) PointerOffset() (float64, bool) { return r.offset, r.ready }
func (r *fakeRegion) Pressed() bool                  { return r.pressed }

type scheduled struct {
	after time.Duration
	fn    func()
}

// fakeScheduler queues callbacks and runs them only when told to.
type fakeScheduler struct {
	queue []scheduled
}

func (s *fakeScheduler) After(d time.Duration, fn func()) {
	s.queue = append(s.queue, scheduled{after: d, fn: fn})
}

// runNext runs the oldest pending callback and reports whether there was one.
func (s *fakeScheduler) runNext() bool {
	if len(s.queue) == 0 {
		return false
	}
	next := s.queue[0]
	s.queue = s.queue[1:]
	next.fn()
	return true
}

func (s *fakeScheduler) runN(n int) int {
	ran := 0
	for ran < n && s.runNext() {
		ran++
	}
	return ran
}

type fakeCapturer struct {
	refuse   bool
	captured int
	released int
}

func (c *fakeCapturer) CapturePointer() bool {
	if c.refuse {
		return false
	}
	c.captured++
	return true
}

func (c *fakeCapturer) ReleasePointer() { c.released++ }

type recordingRenderer struct {
	overlays []Overlay
}

func (r *recordingRenderer) Render(o Overlay) { r.overlays = append(r.overlays, o) }

type testHost struct {
	left, right, middle *fakeRegion
	sched               *fakeScheduler
	capture             *fakeCapturer
	renderer            *recordingRenderer
	width               float64
}

func newTestHost(width float64) *testHost {
	return &testHost{
		left:     newFakeRegion(0),
		right:    newFakeRegion(0),
		middle:   newFakeRegion(0),
		sched:    &fakeScheduler{},
		capture:  &fakeCapturer{},
		renderer: &recordingRenderer{},
		width:    width,
	}
}

func (h *testHost) host() Host {
	return Host{
		Regions: map[Kind]Region{
			LeftHandle:   h.left,
			RightHandle:  h.right,
			MiddleRegion: h.middle,
		},
		Track:     TrackFunc(func() float64 { return h.width }),
		Capturer:  h.capture,
		Renderer:  h.renderer,
		Scheduler: h.sched,
	}
}

func (h *testHost) region(k Kind) *fakeRegion {
	switch k {
	case LeftHandle:
		return h.left
	case RightHandle:
		return h.right
	default:
		return h.middle
	}
}

func rangeOf(min, max, start, end, minWidth, maxWidth float64) *Range {
	return NewRangeFromState(State{
		Min:      min,
		Max:      max,
		Start:    start,
		End:      end,
		MinWidth: minWidth,
		MaxWidth: maxWidth,
	})
}
