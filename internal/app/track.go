package app

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"rangeslider/internal/slider"
)

const (
	trackMargin   = 2
	trackRow      = 2
	minTrackWidth = 8
)

type glyphSet struct {
	hidden   string
	selected string
	left     string
	right    string
	single   string
}

var (
	boxGlyphs   = glyphSet{hidden: "─", selected: "━", left: "┣", right: "┫", single: "┃"}
	asciiGlyphs = glyphSet{hidden: "-", selected: "=", left: "[", right: "]", single: "|"}
)

// resolveGlyphs falls back to ASCII when the box-drawing set is not one cell
// per glyph, as happens with East Asian ambiguous widths.
func resolveGlyphs(cond *runewidth.Condition) glyphSet {
	if cond == nil {
		cond = runewidth.DefaultCondition
	}
	g := boxGlyphs
	for _, glyph := range []string{g.hidden, g.selected, g.left, g.right, g.single} {
		if cond.StringWidth(glyph) != 1 {
			return asciiGlyphs
		}
	}
	return g
}

// trackLayout places an overlay on a row of terminal cells. Handles occupy
// the first and last cell of the visible span.
type trackLayout struct {
	x     int
	width int
	left  int
	right int
}

func layoutTrack(x, width int, o slider.Overlay) trackLayout {
	l := trackLayout{x: x, width: width}
	if width <= 0 {
		return l
	}
	l.left = clampInt(int(math.Floor(o.LeftHide)), 0, width-1)
	l.right = clampInt(int(math.Ceil(o.TrackWidth-o.RightHide))-1, 0, width-1)
	if l.right < l.left {
		l.right = l.left
	}
	return l
}

// origin returns the screen column a region's pointer offsets are measured
// from.
func (l trackLayout) origin(kind slider.Kind) (int, bool) {
	if l.width <= 0 {
		return 0, false
	}
	switch kind {
	case slider.LeftHandle:
		return l.x + l.left, true
	case slider.RightHandle:
		return l.x + l.right, true
	case slider.MiddleRegion:
		return l.x + l.left + 1, true
	}
	return 0, false
}

func (l trackLayout) hit(x int) (slider.Kind, bool) {
	cell := x - l.x
	if l.width <= 0 || cell < 0 || cell >= l.width {
		return slider.KindNone, false
	}
	switch {
	case cell == l.left && cell == l.right:
		// collapsed selection: pick the handle that still has room to grow
		if l.right < l.width-1 {
			return slider.RightHandle, true
		}
		return slider.LeftHandle, true
	case cell == l.left:
		return slider.LeftHandle, true
	case cell == l.right:
		return slider.RightHandle, true
	case cell > l.left && cell < l.right:
		return slider.MiddleRegion, true
	}
	return slider.KindNone, false
}

func (l trackLayout) render(g glyphSet, active slider.Kind) string {
	if l.width <= 0 {
		return ""
	}
	fill := selectionStyle
	if active == slider.MiddleRegion {
		fill = selectionDragStyle
	}
	handle := func(kind slider.Kind, glyph string) string {
		if active == kind {
			return handleActiveStyle.Render(glyph)
		}
		return handleStyle.Render(glyph)
	}

	var b strings.Builder
	b.WriteString(trackHiddenStyle.Render(strings.Repeat(g.hidden, l.left)))
	if l.left == l.right {
		style := handleStyle
		if active != slider.KindNone {
			style = handleActiveStyle
		}
		b.WriteString(style.Render(g.single))
	} else {
		b.WriteString(handle(slider.LeftHandle, g.left))
		b.WriteString(fill.Render(strings.Repeat(g.selected, l.right-l.left-1)))
		b.WriteString(handle(slider.RightHandle, g.right))
	}
	b.WriteString(trackHiddenStyle.Render(strings.Repeat(g.hidden, l.width-l.right-1)))
	return b.String()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
