package slider

import "time"

// Region is one of the three hit regions a gesture can start on.
type Region interface {
	// PointerOffset reports the pointer coordinate relative to the region.
	// ok is false while the region has not been laid out.
	PointerOffset() (offset float64, ok bool)
	// Pressed reports whether the button that started the gesture is still down.
	Pressed() bool
}

// Track measures the background bar.
type Track interface {
	TrackWidth() float64
}

// Capturer grants a widget exclusive pointer input until released.
type Capturer interface {
	CapturePointer() bool
	ReleasePointer()
}

// Renderer receives a render request after every state change.
type Renderer interface {
	Render(Overlay)
}

// Scheduler runs fn on the host's event loop once d has elapsed.
type Scheduler interface {
	After(d time.Duration, fn func())
}

type RendererFunc func(Overlay)

func (f RendererFunc) Render(o Overlay) { f(o) }

type TrackFunc func() float64

func (f TrackFunc) TrackWidth() float64 { return f() }

// Host groups the collaborators a Controller needs. Regions may be missing;
// gestures for a missing kind are never started.
type Host struct {
	Regions   map[Kind]Region
	Track     Track
	Capturer  Capturer
	Renderer  Renderer
	Scheduler Scheduler
}

func (h Host) region(k Kind) Region {
	if h.Regions == nil {
		return nil
	}
	return h.Regions[k]
}

func (h Host) trackWidth() float64 {
	if h.Track == nil {
		return 0
	}
	return h.Track.TrackWidth()
}
