package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag names registered by RegisterFlags, mapped to their config keys.
var flagKeys = map[string]string{
	"glyphs":         "bar.glyphs",
	"template":       "bar.template",
	"interval":       "render.min_update_interval",
	"columns":        "render.columns",
	"display-always": "render.display_always",
	"hide-cursor":    "render.hide_cursor",
}

// RegisterFlags adds the render flags that override configuration values.
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.String("glyphs", d.Bar.Glyphs, "Bar glyph preset (classic, ascii, block)")
	fs.String("template", d.Bar.Template, "Line template")
	fs.Duration("interval", d.Render.MinUpdateInterval, "Minimum time between redraws")
	fs.Int("columns", 0, "Terminal width (0 detects it)")
	fs.Bool("display-always", false, "Draw even when stderr is not a terminal")
	fs.Bool("hide-cursor", false, "Hide the cursor while drawing")
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}
