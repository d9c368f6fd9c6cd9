package slider

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeOverlay(t *testing.T) {
	tests := []struct {
		name      string
		state     State
		width     float64
		wantLeft  float64
		wantRight float64
	}{
		{
			name:      "default track",
			state:     State{Min: 0, Max: 100, Start: 20, End: 30},
			width:     200,
			wantLeft:  40,
			wantRight: 140,
		},
		{
			name:      "full selection",
			state:     State{Min: 0, Max: 100, Start: 0, End: 100},
			width:     80,
			wantLeft:  0,
			wantRight: 0,
		},
		{
			name:      "offset minimum",
			state:     State{Min: 50, Max: 150, Start: 75, End: 100},
			width:     100,
			wantLeft:  25,
			wantRight: 50,
		},
		{
			// measured from min, not from 0: start/max would give 50 and 40
			name:      "negative minimum",
			state:     State{Min: -100, Max: 100, Start: 0, End: 50},
			width:     200,
			wantLeft:  100,
			wantRight: 50,
		},
		{
			name:  "zero track",
			state: State{Min: 0, Max: 100, Start: 20, End: 30},
			width: 0,
		},
		{
			name:  "negative track floors at zero",
			state: State{Min: 0, Max: 100, Start: 20, End: 30},
			width: -50,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeOverlay(tc.state, tc.width)
			want := Overlay{TrackWidth: tc.width, LeftHide: tc.wantLeft, RightHide: tc.wantRight, State: tc.state}
			if diff := cmp.Diff(want, got, approx); diff != "" {
				t.Fatalf("unexpected overlay (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOverlayVisible(t *testing.T) {
	o := ComputeOverlay(State{Min: 0, Max: 100, Start: 20, End: 30}, 200)
	if got := o.Visible(); got != 20 {
		t.Fatalf("expected 20 visible, got %v", got)
	}
	if got := (Overlay{TrackWidth: 10, LeftHide: 8, RightHide: 8}).Visible(); got != 0 {
		t.Fatalf("expected overlapping bars to leave nothing visible, got %v", got)
	}
}
