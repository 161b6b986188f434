package engine

import (
	"github.com/lixenwraith/neon-rails/camera"
	"github.com/lixenwraith/neon-rails/canvas"
	"github.com/lixenwraith/neon-rails/game"
	"github.com/lixenwraith/neon-rails/hud"
	"github.com/lixenwraith/neon-rails/parameter"
)

// CanvasSize splits a terminal into canvas cells and room for footer lines
// Footer lines are dropped when they would squeeze the canvas under MinCanvasRows
func CanvasSize(width, height, footer int) (cols, rows int, showFooter bool) {
	cols = max(width, parameter.MinCols)
	rows = height - parameter.ReservedRows - footer
	if footer > 0 && rows >= parameter.MinCanvasRows {
		return cols, rows, true
	}
	return cols, max(1, height-parameter.ReservedRows), false
}

// layout picks the footer for the current phase and fits canvas and projector to it
// The canvas is reallocated before anything draws into it
func (ctx *GameContext) layout() {
	var footer []string
	if ctx.State.Phase == game.PhaseSplash {
		footer = hud.Splash(ctx.State.Laps.Total, ctx.Height-parameter.ReservedRows-parameter.MinCanvasRows)
	} else {
		footer = hud.Panel(ctx.State)
	}

	cols, rows, show := CanvasSize(ctx.Width, ctx.Height, len(footer))
	if !show {
		footer = nil
	}
	ctx.footer = footer

	if ctx.Canvas == nil {
		ctx.Canvas = canvas.New(cols, rows, ctx.mode)
	} else if ctx.Canvas.Cols() != cols || ctx.Canvas.Rows() != rows {
		ctx.Canvas.Resize(cols, rows)
	} else if ctx.fov == ctx.Config.FOV {
		return
	}
	ctx.fov = ctx.Config.FOV
	ctx.Projector = camera.NewProjector(ctx.Canvas.PixelWidth(), ctx.Canvas.PixelHeight(), ctx.fov)
}
