package slider

import "math"

const (
	DefaultMin      = 0.0
	DefaultMax      = 100.0
	DefaultStart    = 0.0
	DefaultEnd      = 10.0
	DefaultMinWidth = 1.0
)

// State is a value copy of a Range.
type State struct {
	Min      float64
	Max      float64
	Start    float64
	End      float64
	MinWidth float64
	MaxWidth float64
}

func (s State) Width() float64 {
	return s.End - s.Start
}

// Range holds the numeric state of a range slider. All writes clamp into
// min <= start <= end <= max and minWidth <= end-start <= maxWidth.
type Range struct {
	min      float64
	max      float64
	start    float64
	end      float64
	minWidth float64
	maxWidth float64
}

func NewRange() *Range {
	return &Range{
		min:      DefaultMin,
		max:      DefaultMax,
		start:    DefaultStart,
		end:      DefaultEnd,
		minWidth: DefaultMinWidth,
		maxWidth: math.Inf(1),
	}
}

// NewRangeFromState builds a range from s, clamping every field.
func NewRangeFromState(s State) *Range {
	r := NewRange()
	r.SetBounds(s.Min, s.Max)
	r.SetMinWidth(s.MinWidth)
	r.SetMaxWidth(s.MaxWidth)
	r.SetSelection(s.Start, s.End)
	return r
}

func (r *Range) Min() float64      { return r.min }
func (r *Range) Max() float64      { return r.max }
func (r *Range) Start() float64    { return r.start }
func (r *Range) End() float64      { return r.end }
func (r *Range) MinWidth() float64 { return r.minWidth }
func (r *Range) MaxWidth() float64 { return r.maxWidth }
func (r *Range) Width() float64    { return r.end - r.start }

func (r *Range) Snapshot() State {
	return State{
		Min:      r.min,
		Max:      r.max,
		Start:    r.start,
		End:      r.end,
		MinWidth: r.minWidth,
		MaxWidth: r.maxWidth,
	}
}

// ShrinkFromLeft moves start right by up to delta and returns the change applied.
func (r *Range) ShrinkFromLeft(delta float64) float64 {
	slack := r.Width() - r.minWidth
	d := saturate(delta, slack)
	if d <= 0 {
		return 0
	}
	if d >= slack {
		r.start = r.end - r.minWidth
	} else {
		r.start += d
	}
	return d
}

// GrowFromLeft moves start left by up to delta and returns the change applied.
func (r *Range) GrowFromLeft(delta float64) float64 {
	slack := math.Min(r.start-r.min, r.maxWidth-r.Width())
	d := saturate(delta, slack)
	if d <= 0 {
		return 0
	}
	switch {
	case d >= r.start-r.min:
		r.start = r.min
	case d >= r.maxWidth-r.Width():
		r.start = r.end - r.maxWidth
	default:
		r.start -= d
	}
	return d
}

// GrowFromRight moves end right by up to delta and returns the change applied.
func (r *Range) GrowFromRight(delta float64) float64 {
	slack := math.Min(r.max-r.end, r.maxWidth-r.Width())
	d := saturate(delta, slack)
	if d <= 0 {
		return 0
	}
	switch {
	case d >= r.max-r.end:
		r.end = r.max
	case d >= r.maxWidth-r.Width():
		r.end = r.start + r.maxWidth
	default:
		r.end += d
	}
	return d
}

// ShrinkFromRight moves end left by up to delta and returns the change applied.
func (r *Range) ShrinkFromRight(delta float64) float64 {
	slack := r.Width() - r.minWidth
	d := saturate(delta, slack)
	if d <= 0 {
		return 0
	}
	if d >= slack {
		r.end = r.start + r.minWidth
	} else {
		r.end -= d
	}
	return d
}

// Translate moves start and end together by the signed delta, stopping at
// the global bounds. It returns the signed change applied.
func (r *Range) Translate(delta float64) float64 {
	if math.IsNaN(delta) || delta == 0 {
		return 0
	}
	width := r.Width()
	if delta > 0 {
		slack := r.max - r.end
		d := saturate(delta, slack)
		if d <= 0 {
			return 0
		}
		if d >= slack {
			r.end = r.max
			r.start = r.max - width
		} else {
			r.start += d
			r.end += d
		}
		return d
	}
	slack := r.start - r.min
	d := saturate(-delta, slack)
	if d <= 0 {
		return 0
	}
	if d >= slack {
		r.start = r.min
		r.end = r.min + width
	} else {
		r.start -= d
		r.end -= d
	}
	return -d
}

// SetBounds sets min and max together. It reports false and changes
// nothing when min < max would not hold.
func (r *Range) SetBounds(min, max float64) bool {
	if !ValidBounds(min, max) {
		return false
	}
	r.min, r.max = min, max
	r.normalize()
	return true
}

// ValidBounds reports whether min and max are finite with min < max.
func ValidBounds(min, max float64) bool {
	return finite(min) && finite(max) && min < max
}

func (r *Range) SetMin(v float64) bool { return r.SetBounds(v, r.max) }
func (r *Range) SetMax(v float64) bool { return r.SetBounds(r.min, v) }

func (r *Range) SetMinWidth(v float64) {
	if math.IsNaN(v) {
		return
	}
	r.minWidth = clamp(v, 0, r.max-r.min)
	if r.maxWidth < r.minWidth {
		r.maxWidth = r.minWidth
	}
	r.normalize()
}

// SetMaxWidth sets the widest selectable span. Non-positive values mean unbounded.
func (r *Range) SetMaxWidth(v float64) {
	if math.IsNaN(v) {
		return
	}
	if v <= 0 {
		v = math.Inf(1)
	}
	r.maxWidth = math.Max(v, r.minWidth)
	r.normalize()
}

func (r *Range) SetStart(v float64) {
	if math.IsNaN(v) {
		return
	}
	lo := math.Max(r.min, r.end-r.maxWidth)
	hi := r.end - r.minWidth
	r.start = clamp(v, lo, hi)
}

func (r *Range) SetEnd(v float64) {
	if math.IsNaN(v) {
		return
	}
	lo := r.start + r.minWidth
	hi := math.Min(r.max, r.start+r.maxWidth)
	r.end = clamp(v, lo, hi)
}

// SetSelection replaces start and end at once, keeping the requested start
// when the pair has to be narrowed or widened.
func (r *Range) SetSelection(start, end float64) {
	if math.IsNaN(start) || math.IsNaN(end) {
		return
	}
	if end < start {
		start, end = end, start
	}
	r.start, r.end = start, end
	r.normalize()
}

func (r *Range) normalize() {
	span := r.max - r.min
	r.minWidth = clamp(r.minWidth, 0, span)
	if r.maxWidth < r.minWidth {
		r.maxWidth = r.minWidth
	}
	width := clamp(r.end-r.start, r.minWidth, math.Min(r.maxWidth, span))
	r.start = clamp(r.start, r.min, r.max-width)
	r.end = r.start + width
	if r.end > r.max {
		r.end = r.max
	}
}

// saturate bounds delta to [0, limit], treating NaN as no movement.
func saturate(delta, limit float64) float64 {
	if math.IsNaN(delta) || math.IsNaN(limit) || delta <= 0 || limit <= 0 {
		return 0
	}
	return math.Min(delta, limit)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
