package iostreams

import "github.com/charmbracelet/lipgloss"

// ─── Named Colors ─────────────────────────────────────────────────
// Canonical color values by X11/CSS name (or nearest recognized name).
var (
	ColorBurntOrange = lipgloss.Color("#E8714A") // Warm orange (nearest: X11 Coral)
	ColorDeepSkyBlue = lipgloss.Color("#00BFFF") // Exact X11/CSS: DeepSkyBlue
	ColorEmerald     = lipgloss.Color("#04B575") // Vivid green (nearest: X11 MediumSeaGreen)
	ColorAmber       = lipgloss.Color("#FFCC00") // Warm yellow (nearest: X11 Gold)
	ColorHotPink     = lipgloss.Color("#FF5F87") // Bright pink (nearest: X11 HotPink)
	ColorDimGray     = lipgloss.Color("#626262") // Near X11 DimGray
	ColorSkyBlue     = lipgloss.Color("#87CEEB") // Exact X11/CSS: SkyBlue
	ColorGainsboro   = lipgloss.Color("#DCDCDC") // Exact X11/CSS: Gainsboro
	ColorCharcoal    = lipgloss.Color("#4A4A4A") // Dark gray
)

// ─── Semantic Theme ───────────────────────────────────────────────
// Intent-based aliases. Swap the RHS to change the entire color theme.
var (
	ColorPrimary = ColorBurntOrange
	ColorSuccess = ColorEmerald
	ColorWarning = ColorAmber
	ColorError   = ColorHotPink
	ColorInfo    = ColorSkyBlue
	ColorMuted   = ColorDimGray
	ColorTitle   = ColorDeepSkyBlue

	// ColorTrack is the unfilled part of a bar; it must read as
	// background on both light and dark terminals.
	ColorTrack = lipgloss.AdaptiveColor{Light: string(ColorGainsboro), Dark: string(ColorCharcoal)}
)
