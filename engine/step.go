package engine

import (
	"fmt"
	"log"

	"github.com/lixenwraith/neon-rails/event"
	"github.com/lixenwraith/neon-rails/game"
	"github.com/lixenwraith/neon-rails/hud"
	"github.com/lixenwraith/neon-rails/parameter"
	"github.com/lixenwraith/neon-rails/scores"
)

// Step runs one tick: drain input, simulate, play cues, draw and write the frame
// It returns ErrQuit when a Quit event was drained
func (ctx *GameContext) Step(dt float64) error {
	quit := false
	ctx.Queue.Drain(func(ev event.GameEvent) {
		switch ev.Kind {
		case event.Quit:
			quit = true
		case event.Resize:
			ctx.Resize(ev.Width, ev.Height)
		case event.Reload:
			if err := ctx.Reload(); err != nil {
				ctx.State.SetStatus(parameter.TextReloadFailed, parameter.StatusDefaultTTL)
			}
		default:
			ctx.State.Apply(ev)
		}
	})
	if quit {
		return ErrQuit
	}

	ctx.State.Update(dt)
	if cues := ctx.State.TakeCues(); len(cues) > 0 && ctx.sound != nil {
		ctx.sound.Play(cues...)
	}
	ctx.recordResult()

	ctx.layout()
	ctx.Scene.Draw(ctx.Canvas, ctx.Projector, ctx.State)
	ctx.frame = ctx.Canvas.AppendFrame(ctx.frame[:0], ctx.header())
	for _, line := range ctx.footer {
		ctx.frame = append(ctx.frame, line...)
		ctx.frame = append(ctx.frame, '\n')
	}

	if _, err := ctx.out.Write(ctx.frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	ctx.FrameNumber.Add(1)
	return nil
}

func (ctx *GameContext) header() string {
	st := ctx.State
	if st.Phase == game.PhaseSplash {
		return hud.SplashHeader(hud.Painter{Mode: ctx.Canvas.ColorMode()})
	}
	info := hud.HeaderInfo{
		Score:   st.Player.Score,
		Alive:   st.Phase != game.PhaseCrashed,
		Message: st.Status.Message,
		Mode:    ctx.Canvas.ColorMode(),
	}
	if ctx.scores != nil {
		info.Best = ctx.scores.Best(st.IsCircuit())
	}
	return hud.Header(info, ctx.Canvas.Cols())
}

// recordResult submits a run once when it ends by crash or finish
func (ctx *GameContext) recordResult() {
	st := ctx.State
	switch st.Phase {
	case game.PhaseCrashed, game.PhaseFinished:
	default:
		if st.Phase == game.PhaseRacing {
			ctx.submitted = false
		}
		return
	}
	if ctx.submitted || ctx.scores == nil {
		return
	}
	ctx.submitted = true

	newBest, err := ctx.scores.Submit(scores.Result{
		Circuit: st.IsCircuit(),
		Score:   st.Player.Score,
		BestLap: st.Laps.Best,
	})
	if err != nil {
		log.Printf("[scores] %v", err)
	}
	if newBest && st.Player.Score > 0 {
		st.SetStatus(st.Status.Message+" "+parameter.TextNewBest, parameter.StatusFinishTTL)
	}
}
