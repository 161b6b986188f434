package render

import (
	"math"

	"github.com/lixenwraith/neon-rails/camera"
	"github.com/lixenwraith/neon-rails/canvas"
	"github.com/lixenwraith/neon-rails/game"
	"github.com/lixenwraith/neon-rails/parameter"
	"github.com/lixenwraith/neon-rails/parameter/visual"
	"github.com/lixenwraith/neon-rails/terminal"
	"github.com/lixenwraith/neon-rails/vmath"
)

// Scene draws a game state from the chase camera
type Scene struct {
	Palette      Palette
	ChaseOffset  vmath.Vec3F // (normal, binormal, tangent)
	ViewDistance float64
	SampleStep   float64

	fader Fader
}

// NewScene creates a scene with stock camera and sampling
func NewScene(p Palette) *Scene {
	return &Scene{
		Palette: p,
		ChaseOffset: vmath.Vec3F{
			X: parameter.ChaseOffsetNormal,
			Y: parameter.ChaseOffsetBinormal,
			Z: parameter.ChaseOffsetTangent,
		},
		ViewDistance: parameter.ViewDistance,
		SampleStep:   parameter.RailSampleStep,
		fader:        NewFader(p.Background),
	}
}

// SetPalette swaps colors, used on config reload
func (sc *Scene) SetPalette(p Palette) {
	sc.Palette = p
	sc.fader = NewFader(p.Background)
}

// Camera returns the chase camera for the player's current position
func (sc *Scene) Camera(st *game.State) camera.Camera {
	return camera.BuildCamera(st.Frame(st.Player.S), sc.ChaseOffset)
}

// Draw clears the canvas and renders one frame of st
func (sc *Scene) Draw(c *canvas.DotCanvas, pr camera.Projector, st *game.State) {
	c.Clear()
	if st.Phase == game.PhaseSplash {
		sc.drawSplash(c, st.SplashAge)
		return
	}

	cam := sc.Camera(st)
	sc.drawRails(c, pr, cam, st)
	sc.drawObstacles(c, pr, cam, st)
	sc.drawPickups(c, pr, cam, st)
	sc.drawRivals(c, pr, cam, st)
	sc.drawPlayer(c, pr, cam, st)
}

// window reports whether arc position at is inside the drawn stretch
func (sc *Scene) window(st *game.State, at float64) bool {
	return at > st.Player.S+sc.ChaseOffset.Z && at <= st.Player.S+sc.ViewDistance
}

func (sc *Scene) drawRails(c *canvas.DotCanvas, pr camera.Projector, cam camera.Camera, st *game.State) {
	if sc.SampleStep <= 0 {
		return
	}
	colors := [3]terminal.RGB{sc.Palette.RailLeft, sc.Palette.RailCenter, sc.Palette.RailRight}
	lane := st.Tuning.LaneOffset

	// Rails start where the camera sits so nothing behind it is sampled
	for ds := sc.ChaseOffset.Z; ds <= sc.ViewDistance; ds += sc.SampleStep {
		f := st.Frame(st.Player.S + ds)
		for i, l := range game.Lanes {
			sp, ok := pr.Project(cam, f.Offset(float64(l)*lane, 0, 0))
			if !ok {
				continue
			}
			c.Stamp(sp.X, sp.Y, 0, sc.fader.Apply(colors[i], sp.Depth))
		}
	}
}

func (sc *Scene) drawObstacles(c *canvas.DotCanvas, pr camera.Projector, cam camera.Camera, st *game.State) {
	for _, o := range st.Obstacles {
		if !sc.window(st, o.S) {
			continue
		}
		sc.stamp(c, pr, cam, st.LanePoint(o.S, float64(o.Lane)), sc.Palette.Obstacle)
	}
}

func (sc *Scene) drawPickups(c *canvas.DotCanvas, pr camera.Projector, cam camera.Camera, st *game.State) {
	if !st.IsCircuit() {
		return
	}
	loop := st.Circuit.Length()
	base := math.Floor(st.Player.S/loop) * loop
	for _, d := range st.Pickups {
		if !d.Active {
			continue
		}
		// The view may straddle the start line
		for _, at := range [2]float64{base + d.S, base + loop + d.S} {
			if sc.window(st, at) {
				sc.stamp(c, pr, cam, st.LanePoint(at, float64(d.Lane)), sc.Palette.Pickup)
			}
		}
	}
}

func (sc *Scene) drawRivals(c *canvas.DotCanvas, pr camera.Projector, cam camera.Camera, st *game.State) {
	for i, r := range st.Rivals {
		at := r.S
		if st.IsCircuit() {
			// Rivals are drawn at their loop position relative to the player's loop
			loop := st.Circuit.Length()
			d := math.Mod(r.S-st.Player.S, loop)
			if d < 0 {
				d += loop
			}
			if d > loop/2 {
				d -= loop
			}
			at = st.Player.S + d
		}
		if !sc.window(st, at) {
			continue
		}
		sc.stamp(c, pr, cam, st.LanePoint(at, float64(r.Lane)), sc.Palette.rival(i))
	}
}

func (sc *Scene) drawPlayer(c *canvas.DotCanvas, pr camera.Projector, cam camera.Camera, st *game.State) {
	col := sc.Palette.Player
	if !st.Player.Alive {
		col = sc.Palette.Crashed
	}
	sc.stamp(c, pr, cam, st.PlayerWorld(), col)
}

// stamp projects p and draws a glow sized by depth
func (sc *Scene) stamp(c *canvas.DotCanvas, pr camera.Projector, cam camera.Camera, p vmath.Vec3F, col terminal.RGB) {
	sp, ok := pr.Project(cam, p)
	if !ok {
		return
	}
	c.Stamp(sp.X, sp.Y, GlowRadius(sp.Depth), sc.fader.Apply(col, sp.Depth))
}

// GlowRadius returns the stamp radius for an entity at depth
func GlowRadius(depth float64) int {
	if depth <= 0 {
		return visual.GlowMaxRadius
	}
	return min(visual.GlowMaxRadius, int(visual.GlowScale/depth))
}
