package slider

import "time"

// Kind identifies the hit region a gesture started on.
type Kind uint8

const (
	KindNone Kind = iota
	LeftHandle
	RightHandle
	MiddleRegion
)

func (k Kind) String() string {
	switch k {
	case LeftHandle:
		return "left"
	case RightHandle:
		return "right"
	case MiddleRegion:
		return "middle"
	default:
		return "none"
	}
}

// ParseKind accepts the names produced by Kind.String plus the aliases
// start, end, mid and center.
func ParseKind(raw string) (Kind, bool) {
	switch raw {
	case "left", "start":
		return LeftHandle, true
	case "right", "end":
		return RightHandle, true
	case "middle", "mid", "center":
		return MiddleRegion, true
	default:
		return KindNone, false
	}
}

// Step records what a single tick did.
type Step struct {
	Tick    int
	Moved   float64
	Speed   float64
	Applied float64
	State   State
}

// Direction is the sign of the pointer displacement: -1, 0 or 1.
func (s Step) Direction() int {
	switch {
	case s.Moved > 0:
		return 1
	case s.Moved < 0:
		return -1
	default:
		return 0
	}
}

// Gesture is one press-move-release interaction.
type Gesture struct {
	ID        string
	Kind      Kind
	Origin    float64
	StartedAt time.Time
	Ticks     int
	Last      Step

	region Region
	active bool
}

func (g *Gesture) Active() bool {
	return g != nil && g.active
}
