package iostreams

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorScheme provides terminal color formatting. When colors are
// disabled, methods return the input string unmodified.
type ColorScheme struct {
	enabled  bool
	renderer *lipgloss.Renderer
}

// NewColorScheme creates a new ColorScheme.
// Theme can be "light", "dark", or "none"; empty means dark.
func NewColorScheme(enabled bool, theme string) *ColorScheme {
	if theme == "" {
		theme = "dark"
	}

	// The renderer never writes; it only needs a fixed profile so styled
	// output does not depend on what stdout happens to be.
	r := lipgloss.NewRenderer(io.Discard)
	if enabled {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	r.SetHasDarkBackground(theme != "light")

	return &ColorScheme{enabled: enabled, renderer: r}
}

// Enabled returns whether colors are enabled.
func (cs *ColorScheme) Enabled() bool {
	return cs.enabled
}

func (cs *ColorScheme) fg(c lipgloss.TerminalColor, s string) string {
	if !cs.enabled {
		return s
	}
	return cs.renderer.NewStyle().Foreground(c).Render(s)
}

// Red returns the string in the error color.
func (cs *ColorScheme) Red(s string) string { return cs.fg(ColorError, s) }

// Redf returns a formatted string in the error color.
func (cs *ColorScheme) Redf(format string, a ...any) string {
	return cs.Red(fmt.Sprintf(format, a...))
}

// Yellow returns the string in the warning color.
func (cs *ColorScheme) Yellow(s string) string { return cs.fg(ColorWarning, s) }

// Green returns the string in the success color.
func (cs *ColorScheme) Green(s string) string { return cs.fg(ColorSuccess, s) }

// Cyan returns the string in the info color.
func (cs *ColorScheme) Cyan(s string) string { return cs.fg(ColorInfo, s) }

// Muted returns the string in a muted gray.
func (cs *ColorScheme) Muted(s string) string { return cs.fg(ColorMuted, s) }

// Title returns the string styled as a progress title.
func (cs *ColorScheme) Title(s string) string {
	if !cs.enabled {
		return s
	}
	return cs.renderer.NewStyle().Bold(true).Foreground(ColorTitle).Render(s)
}

// Bold returns the string in bold.
func (cs *ColorScheme) Bold(s string) string {
	if !cs.enabled {
		return s
	}
	return cs.renderer.NewStyle().Bold(true).Render(s)
}

// SuccessIcon returns a success indicator: a green ✓, or [ok] without color.
func (cs *ColorScheme) SuccessIcon() string {
	if cs.enabled {
		return cs.Green("✓")
	}
	return "[ok]"
}

// WarningIcon returns a warning indicator: a yellow !, or [warn] without color.
func (cs *ColorScheme) WarningIcon() string {
	if cs.enabled {
		return cs.Yellow("!")
	}
	return "[warn]"
}

// FailureIcon returns a failure indicator: a red ✗, or [error] without color.
func (cs *ColorScheme) FailureIcon() string {
	if cs.enabled {
		return cs.Red("✗")
	}
	return "[error]"
}

// InfoIcon returns an info indicator: a cyan ℹ, or [info] without color.
func (cs *ColorScheme) InfoIcon() string {
	if cs.enabled {
		return cs.Cyan("ℹ")
	}
	return "[info]"
}
