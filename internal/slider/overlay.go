package slider

// Overlay is the geometry a host needs to show the selected span: two
// masking bars hiding the track left of start and right of end.
type Overlay struct {
	TrackWidth float64
	LeftHide   float64
	RightHide  float64
	State      State
}

// Visible returns the width left between the two masking bars.
func (o Overlay) Visible() float64 {
	v := o.TrackWidth - o.LeftHide - o.RightHide
	if v < 0 {
		return 0
	}
	return v
}

// ComputeOverlay maps s onto a track of the given width. The bar widths are
// floored at 0 but not capped at trackWidth.
func ComputeOverlay(s State, trackWidth float64) Overlay {
	o := Overlay{TrackWidth: trackWidth, State: s}
	span := s.Max - s.Min
	if span <= 0 || !finite(trackWidth) {
		return o
	}
	relStart := (s.Start - s.Min) / span
	relEnd := (s.End - s.Min) / span

	left := trackWidth * relStart
	right := trackWidth - trackWidth*relEnd
	if left > 0 {
		o.LeftHide = left
	}
	if right > 0 {
		o.RightHide = right
	}
	return o
}
