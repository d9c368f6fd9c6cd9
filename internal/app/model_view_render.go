package app

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	xansi "github.com/charmbracelet/x/ansi"

	"rangeslider/internal/slider"
)

const appTitle = "rangeslider"

func (m *Model) viewContent() string {
	layout := m.layout()
	margin := strings.Repeat(" ", trackMargin)

	lines := []string{
		m.headerLine(),
		"",
		margin + layout.render(m.glyphs, m.active),
		margin + m.labelsLine(layout.width),
		"",
		m.statusLine(),
	}
	if m.helpOpen {
		lines = append(lines, "", renderMarkdown(helpMarkdown(m.keys, m.cfg), m.helpWidth(), m.cfg.UI.Style()))
	} else if m.showHelp {
		lines = append(lines, helpStyle.Render(m.help.View(m.keys)))
	}

	out := strings.Join(lines, "\n")
	if m.width <= 0 {
		return out
	}
	return fitLines(strings.Split(out, "\n"), m.width)
}

// fitLines truncates or pads every line to exactly width cells.
func fitLines(lines []string, width int) string {
	for i, line := range lines {
		line = xansi.Truncate(line, width, "…")
		if w := xansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (m *Model) headerLine() string {
	title := headerStyle.Render(appTitle)
	if m.active == slider.KindNone {
		return title
	}
	return title + "  " + activityStyle.Render("● "+m.active.String())
}

// labelsLine puts the bounds under the ends of the track and the selection
// between them, dropping the bounds when they do not fit.
func (m *Model) labelsLine(width int) string {
	s := m.widget.State()
	selection := valueStyle.Render(m.selectionLabel(s))
	if width <= 0 {
		return selection
	}
	lo := boundStyle.Render(m.formatValue(s.Min))
	hi := boundStyle.Render(m.formatValue(s.Max))
	gap := width - lipgloss.Width(lo) - lipgloss.Width(hi) - lipgloss.Width(selection)
	if gap < 2 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, selection)
	}
	left := gap / 2
	return lo + strings.Repeat(" ", left) + selection + strings.Repeat(" ", gap-left) + hi
}

func (m *Model) statusLine() string {
	if toast := m.toastLine(max(m.width, 0)); toast != "" {
		return toast
	}
	return statusStyle.Render(m.status)
}

func (m *Model) helpWidth() int {
	if m.width <= 0 {
		return 80
	}
	return max(m.width-2*trackMargin, 20)
}

func (m *Model) selectionLabel(s slider.State) string {
	return m.formatValue(s.Start) + " – " + m.formatValue(s.End)
}

// selectionText is what the copy binding puts on the clipboard.
func (m *Model) selectionText() string {
	s := m.widget.State()
	return m.formatValue(s.Start) + ".." + m.formatValue(s.End)
}

func (m *Model) formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', m.cfg.UI.ValuePrecision(), 64)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	if xansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return xansi.Cut(text, 0, width-1) + "…"
}
