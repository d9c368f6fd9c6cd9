package slider

import (
	"math"
	"time"

	"github.com/google/uuid"

	"rangeslider/internal/logging"
)

const (
	// DefaultSpeedFactor scales the relative pointer offset into a per-tick
	// step. Larger values make a handle catch up with the pointer faster.
	DefaultSpeedFactor  = 40.0
	DefaultTickInterval = 25 * time.Millisecond
)

type Options struct {
	SpeedFactor  float64
	TickInterval time.Duration
	Logger       logging.Logger
	Now          func() time.Time
}

func DefaultOptions() Options {
	return Options{
		SpeedFactor:  DefaultSpeedFactor,
		TickInterval: DefaultTickInterval,
	}
}

func (o Options) normalized() Options {
	if !(o.SpeedFactor > 0) || math.IsInf(o.SpeedFactor, 0) {
		o.SpeedFactor = DefaultSpeedFactor
	}
	if o.TickInterval <= 0 {
		o.TickInterval = DefaultTickInterval
	}
	if o.Logger == nil {
		o.Logger = logging.Nop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Hooks are invoked synchronously from the controller.
type Hooks struct {
	DragStart func(*Gesture)
	DragStop  func(*Gesture)
	Step      func(*Gesture, Step)
}

// Controller turns pointer displacement into bounded, speed-scaled changes
// of a Range. It is Idle until Begin succeeds and Dragging until the
// gesture is released, either explicitly or when a tick finds the button up.
type Controller struct {
	rng     *Range
	host    Host
	opts    Options
	hooks   Hooks
	gesture *Gesture
}

func NewController(rng *Range, host Host, opts Options) *Controller {
	if rng == nil {
		rng = NewRange()
	}
	return &Controller{rng: rng, host: host, opts: opts.normalized()}
}

func (c *Controller) SetHooks(h Hooks) { c.hooks = h }

func (c *Controller) SetHost(h Host) { c.host = h }

func (c *Controller) Host() Host { return c.host }

func (c *Controller) Options() Options { return c.opts }

// SetSpeedFactor and SetTickInterval take effect from the next tick.
func (c *Controller) SetSpeedFactor(f float64) {
	o := c.opts
	o.SpeedFactor = f
	c.opts = o.normalized()
}

func (c *Controller) SetTickInterval(d time.Duration) {
	o := c.opts
	o.TickInterval = d
	c.opts = o.normalized()
}

func (c *Controller) Dragging() bool {
	return c.gesture != nil
}

// Gesture returns a copy of the active gesture.
func (c *Controller) Gesture() (Gesture, bool) {
	if c.gesture == nil {
		return Gesture{}, false
	}
	return *c.gesture, true
}

// Begin starts a gesture of the given kind. It reports false, and nothing
// happens, if a gesture is already active, the region is missing or not yet
// laid out, there is no scheduler, or the host refuses the pointer capture.
func (c *Controller) Begin(kind Kind) bool {
	if c.gesture != nil || c.host.Scheduler == nil {
		return false
	}
	region := c.host.region(kind)
	if region == nil {
		return false
	}
	origin, ok := region.PointerOffset()
	if !ok || !finite(origin) {
		return false
	}
	if c.host.Capturer != nil && !c.host.Capturer.CapturePointer() {
		return false
	}

	g := &Gesture{
		ID:        uuid.NewString(),
		Kind:      kind,
		Origin:    origin,
		StartedAt: c.opts.Now(),
		region:    region,
		active:    true,
	}
	c.gesture = g
	c.opts.Logger.Info("drag start",
		logging.F("gesture", g.ID),
		logging.F("kind", kind),
		logging.F("origin", origin),
	)
	if c.hooks.DragStart != nil {
		c.hooks.DragStart(g)
	}
	c.render()
	c.schedule(g)
	return true
}

// Release ends the active gesture immediately. Ticks already scheduled for
// it are dropped when they fire.
func (c *Controller) Release() bool {
	if c.gesture == nil {
		return false
	}
	c.finish(c.gesture, "release")
	return true
}

func (c *Controller) schedule(g *Gesture) {
	c.host.Scheduler.After(c.opts.TickInterval, func() { c.tick(g) })
}

func (c *Controller) tick(g *Gesture) {
	if c.gesture != g || !g.active {
		return
	}
	if !g.region.Pressed() {
		c.finish(g, "button up")
		return
	}

	g.Ticks++
	step := Step{Tick: g.Ticks}
	if offset, ok := g.region.PointerOffset(); ok && finite(offset) {
		step.Moved = offset - g.Origin
		step.Speed = Speed(step.Moved, c.host.trackWidth(), c.opts.SpeedFactor)
		step.Applied = c.dispatch(g.Kind, step.Moved, step.Speed)
	}
	step.State = c.rng.Snapshot()
	g.Last = step

	if c.opts.Logger.Enabled(logging.Debug) {
		c.opts.Logger.Debug("drag tick",
			logging.F("gesture", g.ID),
			logging.F("tick", step.Tick),
			logging.F("moved", step.Moved),
			logging.F("speed", step.Speed),
			logging.F("applied", step.Applied),
			logging.F("start", step.State.Start),
			logging.F("end", step.State.End),
		)
	}
	if c.hooks.Step != nil {
		c.hooks.Step(g, step)
	}
	c.render()

	// a hook may have released the gesture
	if c.gesture == g {
		c.schedule(g)
	}
}

// dispatch applies one step to the range and returns the signed change of
// the boundary that moved.
func (c *Controller) dispatch(kind Kind, moved, speed float64) float64 {
	r := c.rng
	switch {
	case moved > 0:
		switch kind {
		case LeftHandle:
			return r.ShrinkFromLeft(speed)
		case RightHandle:
			return r.GrowFromRight(speed)
		case MiddleRegion:
			if r.End() < r.Max() {
				return r.Translate(speed)
			}
		}
	case moved < 0:
		switch kind {
		case LeftHandle:
			return -r.GrowFromLeft(speed)
		case RightHandle:
			return -r.ShrinkFromRight(speed)
		case MiddleRegion:
			if r.Start() > r.Min() {
				return r.Translate(-speed)
			}
		}
	}
	return 0
}

func (c *Controller) finish(g *Gesture, reason string) {
	c.gesture = nil
	g.active = false
	if c.host.Capturer != nil {
		c.host.Capturer.ReleasePointer()
	}
	c.opts.Logger.Info("drag stop",
		logging.F("gesture", g.ID),
		logging.F("kind", g.Kind),
		logging.F("reason", reason),
		logging.F("ticks", g.Ticks),
		logging.F("start", c.rng.Start()),
		logging.F("end", c.rng.End()),
	)
	if c.hooks.DragStop != nil {
		c.hooks.DragStop(g)
	}
}

// Render pushes the current overlay to the host renderer.
func (c *Controller) Render() {
	c.render()
}

func (c *Controller) render() {
	if c.host.Renderer == nil {
		return
	}
	c.host.Renderer.Render(ComputeOverlay(c.rng.Snapshot(), c.host.trackWidth()))
}

// Speed converts a pointer displacement into a per-tick step. A track that
// has no usable width yields 0.
func Speed(moved, trackWidth, factor float64) float64 {
	if !(trackWidth > 0) || !finite(trackWidth) || !finite(moved) {
		return 0
	}
	s := math.Abs(moved) / trackWidth * factor
	if !finite(s) || s < 0 {
		return 0
	}
	return s
}
