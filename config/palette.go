package config

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neon-rails/render"
	"github.com/lixenwraith/neon-rails/terminal"
)

// paletteSlots maps config keys to palette fields
var paletteSlots = map[string]func(p *render.Palette) *terminal.RGB{
	"background":  func(p *render.Palette) *terminal.RGB { return &p.Background },
	"rail_left":   func(p *render.Palette) *terminal.RGB { return &p.RailLeft },
	"rail_center": func(p *render.Palette) *terminal.RGB { return &p.RailCenter },
	"rail_right":  func(p *render.Palette) *terminal.RGB { return &p.RailRight },
	"obstacle":    func(p *render.Palette) *terminal.RGB { return &p.Obstacle },
	"pickup":      func(p *render.Palette) *terminal.RGB { return &p.Pickup },
	"player":      func(p *render.Palette) *terminal.RGB { return &p.Player },
	"crashed":     func(p *render.Palette) *terminal.RGB { return &p.Crashed },
	"rival_a":     func(p *render.Palette) *terminal.RGB { return &p.Rivals[0] },
	"rival_b":     func(p *render.Palette) *terminal.RGB { return &p.Rivals[1] },
	"splash_a":    func(p *render.Palette) *terminal.RGB { return &p.SplashA },
	"splash_b":    func(p *render.Palette) *terminal.RGB { return &p.SplashB },
}

// RenderPalette returns the default palette with configured overrides applied
func (c *Config) RenderPalette() (render.Palette, error) {
	p := render.DefaultPalette()
	for key, value := range c.Palette {
		slot, ok := paletteSlots[strings.ToLower(key)]
		if !ok {
			return p, fmt.Errorf("%w: unknown palette entry %q", ErrInvalid, key)
		}
		rgb, err := ParseColor(value)
		if err != nil {
			return p, fmt.Errorf("%w: palette.%s: %w", ErrInvalid, key, err)
		}
		*slot(&p) = rgb
	}
	return p, nil
}

// ParseColor accepts "#rrggbb" or a W3C color name
func ParseColor(s string) (terminal.RGB, error) {
	c := tcell.GetColor(strings.TrimSpace(strings.ToLower(s)))
	if c == tcell.ColorDefault {
		return terminal.RGB{}, fmt.Errorf("unknown color %q", s)
	}
	r, g, b := c.RGB()
	return terminal.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}
