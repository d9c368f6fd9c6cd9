package slider

// Widget is the range slider as seen by its host: properties that can be
// read and written from outside, drag notifications, and the gesture entry
// points the host calls from its pointer handlers.
type Widget struct {
	rng  *Range
	ctrl *Controller

	observers listeners[State]
	dragStart listeners[struct{}]
	dragStop  listeners[struct{}]
	last      State
}

func NewWidget(host Host, opts Options) *Widget {
	return NewWidgetWithRange(NewRange(), host, opts)
}

func NewWidgetWithRange(rng *Range, host Host, opts Options) *Widget {
	if rng == nil {
		rng = NewRange()
	}
	w := &Widget{rng: rng}
	w.ctrl = NewController(rng, host, opts)
	w.ctrl.SetHooks(Hooks{
		DragStart: func(*Gesture) { w.dragStart.emit(struct{}{}) },
		DragStop:  func(*Gesture) { w.dragStop.emit(struct{}{}) },
		Step:      func(*Gesture, Step) { w.changed() },
	})
	w.last = rng.Snapshot()
	return w
}

func (w *Widget) Controller() *Controller { return w.ctrl }

func (w *Widget) State() State { return w.rng.Snapshot() }

func (w *Widget) Min() float64            { return w.rng.Min() }
func (w *Widget) Max() float64            { return w.rng.Max() }
func (w *Widget) MinSliderWidth() float64 { return w.rng.MinWidth() }
func (w *Widget) MaxSliderWidth() float64 { return w.rng.MaxWidth() }
func (w *Widget) SliderStart() float64    { return w.rng.Start() }
func (w *Widget) SliderEnd() float64      { return w.rng.End() }

func (w *Widget) SetMin(v float64) bool {
	ok := w.rng.SetMin(v)
	w.written()
	return ok
}

func (w *Widget) SetMax(v float64) bool {
	ok := w.rng.SetMax(v)
	w.written()
	return ok
}

func (w *Widget) SetBounds(min, max float64) bool {
	ok := w.rng.SetBounds(min, max)
	w.written()
	return ok
}

func (w *Widget) SetMinSliderWidth(v float64) {
	w.rng.SetMinWidth(v)
	w.written()
}

func (w *Widget) SetMaxSliderWidth(v float64) {
	w.rng.SetMaxWidth(v)
	w.written()
}

func (w *Widget) SetSliderStart(v float64) {
	w.rng.SetStart(v)
	w.written()
}

func (w *Widget) SetSliderEnd(v float64) {
	w.rng.SetEnd(v)
	w.written()
}

func (w *Widget) SetSelection(start, end float64) {
	w.rng.SetSelection(start, end)
	w.written()
}

// Apply writes every property of s, clamping as the individual setters do.
// It reports false, and writes nothing, when s has invalid bounds.
func (w *Widget) Apply(s State) bool {
	if !w.rng.SetBounds(s.Min, s.Max) {
		return false
	}
	w.rng.SetMinWidth(s.MinWidth)
	w.rng.SetMaxWidth(s.MaxWidth)
	w.rng.SetSelection(s.Start, s.End)
	w.written()
	return true
}

// Begin and Release forward the host's pointer down and up.
func (w *Widget) Begin(kind Kind) bool { return w.ctrl.Begin(kind) }
func (w *Widget) Release() bool        { return w.ctrl.Release() }
func (w *Widget) Dragging() bool       { return w.ctrl.Dragging() }

// Overlay maps the current state onto a track of the given width.
func (w *Widget) Overlay(trackWidth float64) Overlay {
	return ComputeOverlay(w.rng.Snapshot(), trackWidth)
}

// Observe registers fn to run whenever the state changes, from a drag tick
// or an external write.
func (w *Widget) Observe(fn func(State)) (cancel func()) {
	return w.observers.add(fn)
}

func (w *Widget) OnDragStart(fn func()) (cancel func()) {
	return w.dragStart.add(notify(fn))
}

func (w *Widget) OnDragStop(fn func()) (cancel func()) {
	return w.dragStop.add(notify(fn))
}

func notify(fn func()) func(struct{}) {
	if fn == nil {
		return nil
	}
	return func(struct{}) { fn() }
}

func (w *Widget) written() {
	w.changed()
	w.ctrl.Render()
}

func (w *Widget) changed() {
	s := w.rng.Snapshot()
	if s == w.last {
		return
	}
	w.last = s
	w.observers.emit(s)
}

type listener[T any] struct {
	id int
	fn func(T)
}

type listeners[T any] struct {
	next  int
	items []listener[T]
}

func (l *listeners[T]) add(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	l.next++
	id := l.next
	l.items = append(l.items, listener[T]{id: id, fn: fn})
	return func() { l.remove(id) }
}

func (l *listeners[T]) remove(id int) {
	for i, item := range l.items {
		if item.id == id {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			return
		}
	}
}

func (l *listeners[T]) emit(v T) {
	items := append([]listener[T](nil), l.items...)
	for _, item := range items {
		item.fn(v)
	}
}
