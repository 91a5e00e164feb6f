package iostreams

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/schmitthub/gauge/pkg/progress"
)

// Progress bar glyph presets.
const (
	GlyphsClassic = "classic" // colored background cells
	GlyphsASCII   = "ascii"   // =, - and a > leader
	GlyphsBlock   = "block"   // full blocks with an eighth-block ramp
)

// GlyphPresets lists the accepted preset names.
func GlyphPresets() []string {
	return []string{GlyphsClassic, GlyphsASCII, GlyphsBlock}
}

var blockRamp = []string{"▏", "▎", "▍", "▌", "▋", "▊", "▉"}

// BarGlyphs returns the glyph set for preset. Colored presets fall back
// to plain characters when colors are disabled.
func (cs *ColorScheme) BarGlyphs(preset string) (progress.Glyphs, error) {
	switch preset {
	case GlyphsClassic, "":
		if !cs.Enabled() {
			return asciiGlyphs(), nil
		}
		return progress.Glyphs{
			Complete:   cs.bg(ColorSuccess),
			Incomplete: cs.bg(ColorTrack),
		}, nil
	case GlyphsASCII:
		return asciiGlyphs(), nil
	case GlyphsBlock:
		ramp := make([]string, len(blockRamp))
		for i, g := range blockRamp {
			ramp[i] = cs.fg(ColorPrimary, g)
		}
		return progress.Glyphs{
			Complete:     cs.fg(ColorPrimary, "█"),
			Incomplete:   cs.fg(ColorMuted, "░"),
			Intermediate: ramp,
		}, nil
	}
	return progress.Glyphs{}, fmt.Errorf("unknown glyph preset %q (want one of: %s)", preset, strings.Join(GlyphPresets(), ", "))
}

func asciiGlyphs() progress.Glyphs {
	return progress.Glyphs{Complete: "=", Incomplete: "-", Leader: ">"}
}

// bg renders a single space with background color c.
func (cs *ColorScheme) bg(c lipgloss.TerminalColor) string {
	return cs.renderer.NewStyle().Background(c).Render(" ")
}
