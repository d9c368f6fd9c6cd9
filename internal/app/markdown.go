package app

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	xansi "github.com/charmbracelet/x/ansi"

	"rangeslider/internal/config"
)

var (
	rendererMu       sync.Mutex
	renderersByStyle = map[markdownRendererKey]*glamour.TermRenderer{}
)

type markdownRendererKey struct {
	width int
	style string
}

func renderMarkdown(input string, width int, style string) string {
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := getRenderer(width, style)
	if r == nil {
		return input
	}
	out, err := r.Render(input)
	if err != nil {
		return input
	}
	out = strings.TrimRight(out, "\n")
	out = xansi.Hardwrap(out, width, true)
	return strings.TrimRight(out, "\n")
}

func getRenderer(width int, style string) *glamour.TermRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	key := markdownRendererKey{width: width, style: style}
	if renderer, ok := renderersByStyle[key]; ok && renderer != nil {
		return renderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(buildStyleConfig(style)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderersByStyle[key] = r
	return r
}

func buildStyleConfig(style string) glamouransi.StyleConfig {
	var base glamouransi.StyleConfig
	switch style {
	case "light":
		base = styles.LightStyleConfig
	case "notty":
		base = styles.NoTTYStyleConfig
	default:
		base = styles.DarkStyleConfig
	}
	// spacing around the help block is owned by the view
	base.Document.StylePrimitive.BlockPrefix = ""
	base.Document.StylePrimitive.BlockSuffix = ""
	zero := uint(0)
	base.Document.Margin = &zero
	return base
}

// helpMarkdown documents the pointer gestures and the key bindings that are
// currently enabled.
func helpMarkdown(keys keyMap, cfg config.Config) string {
	var b strings.Builder
	b.WriteString("## Dragging\n\n")
	b.WriteString("- Drag the **left handle** to move the start of the range.\n")
	b.WriteString("- Drag the **right handle** to move the end of the range.\n")
	b.WriteString("- Drag the **middle** to move both ends together.\n\n")
	fmt.Fprintf(&b, "The selection crawls toward the pointer every %s; the further the pointer is from where the drag started, the faster it moves (speed factor %g).\n\n",
		cfg.Drag.TickInterval(), cfg.Drag.Options().SpeedFactor)
	b.WriteString("## Keys\n\n")
	for _, group := range keys.FullHelp() {
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			h := binding.Help()
			fmt.Fprintf(&b, "- `%s` %s\n", h.Key, h.Desc)
		}
	}
	return b.String()
}
