package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// renderFooter renders the key hints at full terminal width. The short form
// lists the bindings that act on the current page; help expands it to all.
func renderFooter(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}
	text := helpText
	if !app.showHelp {
		text = shortHelp(app.page)
	}
	return StyleDim.Width(width).Render(text)
}

// shortHelp lists the bindings that act on page p.
func shortHelp(p page) string {
	bindings := []key.Binding{keys.Help, keys.Quit}
	if p == pageDashboard {
		bindings = append([]key.Binding{keys.Refresh}, bindings...)
	} else {
		bindings = append([]key.Binding{keys.Pages[pageDashboard]}, bindings...)
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
