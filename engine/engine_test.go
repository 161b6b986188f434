package engine

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/lixenwraith/neon-rails/config"
	"github.com/lixenwraith/neon-rails/event"
	"github.com/lixenwraith/neon-rails/game"
	"github.com/lixenwraith/neon-rails/parameter"
	"github.com/lixenwraith/neon-rails/scores"
	"github.com/lixenwraith/neon-rails/terminal"
)

type recordingPlayer struct {
	cues []game.Cue
}

func (r *recordingPlayer) Play(cues ...game.Cue) {
	r.cues = append(r.cues, cues...)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func newTestContext(t *testing.T, cfg *config.Config) (*GameContext, *bytes.Buffer, *recordingPlayer) {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
		cfg.Seed = 1
	}
	var out bytes.Buffer
	sound := &recordingPlayer{}
	ctx, err := NewGameContext(Options{
		Config: cfg,
		Out:    &out,
		Width:  80,
		Height: 40,
		Mode:   terminal.ColorModeTrueColor,
		Sound:  sound,
		Scores: scores.NewStore(nil),
	})
	if err != nil {
		t.Fatalf("NewGameContext failed: %v", err)
	}
	return ctx, &out, sound
}

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h, footer int
		cols, rows   int
		show         bool
	}{
		{"roomy", 100, 50, 15, 100, 33, true},
		{"narrow clamps cols", 40, 50, 15, parameter.MinCols, 33, true},
		{"footer dropped", 80, 20, 15, 80, 18, false},
		{"no footer", 80, 30, 0, 80, 28, false},
		{"tiny", 80, 2, 0, 80, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows, show := CanvasSize(tt.w, tt.h, tt.footer)
			if cols != tt.cols || rows != tt.rows || show != tt.show {
				t.Errorf("Expected %d,%d,%v, got %d,%d,%v", tt.cols, tt.rows, tt.show, cols, rows, show)
			}
		})
	}
}

func TestSplashFrame(t *testing.T) {
	ctx, out, _ := newTestContext(t, nil)
	if err := ctx.Step(1.0 / 60); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	frame := out.String()
	if !strings.HasPrefix(frame, terminal.SeqHome+terminal.SeqClearToEnd) {
		t.Errorf("Expected frame to start with home and clear, got %q", frame[:min(20, len(frame))])
	}
	if !strings.Contains(frame, parameter.TextSplashPrompt) {
		t.Error("Expected splash prompt in header")
	}
	if !strings.Contains(frame, "Controls:") {
		t.Error("Expected splash briefing under the canvas")
	}
	if lines := strings.Count(frame, "\n"); lines > ctx.Height-1 {
		t.Errorf("Expected at most %d lines, got %d", ctx.Height-1, lines)
	}
	if got := ctx.FrameNumber.Load(); got != 1 {
		t.Errorf("Expected frame 1, got %d", got)
	}
}

func TestStartRace(t *testing.T) {
	ctx, out, sound := newTestContext(t, nil)
	ctx.Step(0.01)
	splashRows := ctx.Canvas.Rows()

	ctx.Queue.Push(event.GameEvent{Kind: event.Start})
	out.Reset()
	if err := ctx.Step(0.01); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if ctx.State.Phase != game.PhaseRacing {
		t.Fatalf("Expected racing, got %s", ctx.State.Phase)
	}
	if !slices.Contains(sound.cues, game.CueStart) {
		t.Errorf("Expected start cue, got %v", sound.cues)
	}
	if ctx.Canvas.Rows() == splashRows {
		t.Errorf("Expected canvas relayout for the panel, still %d rows", splashRows)
	}
	frame := out.String()
	if !strings.Contains(frame, "STANDINGS:") {
		t.Error("Expected standings panel")
	}
	if lines := strings.Count(frame, "\n"); lines > ctx.Height-1 {
		t.Errorf("Expected at most %d lines, got %d", ctx.Height-1, lines)
	}
}

func TestQuit(t *testing.T) {
	ctx, out, _ := newTestContext(t, nil)
	ctx.Queue.Push(event.GameEvent{Kind: event.Quit})
	if err := ctx.Step(0.01); !errors.Is(err, ErrQuit) {
		t.Fatalf("Expected ErrQuit, got %v", err)
	}
	if out.Len() != 0 {
		t.Error("Expected no frame written after quit")
	}
}

func TestResizeBeforeDraw(t *testing.T) {
	ctx, _, _ := newTestContext(t, nil)
	ctx.Queue.Push(event.GameEvent{Kind: event.Resize, Width: 120, Height: 60})
	if err := ctx.Step(0.01); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if ctx.Canvas.Cols() != 120 {
		t.Errorf("Expected 120 cols, got %d", ctx.Canvas.Cols())
	}
	if ctx.Projector.Width != float64(ctx.Canvas.PixelWidth()) || ctx.Projector.Height != float64(ctx.Canvas.PixelHeight()) {
		t.Errorf("Expected projector %dx%d, got %fx%f",
			ctx.Canvas.PixelWidth(), ctx.Canvas.PixelHeight(), ctx.Projector.Width, ctx.Projector.Height)
	}

	// Degenerate sizes are ignored
	ctx.Queue.Push(event.GameEvent{Kind: event.Resize})
	ctx.Step(0.01)
	if ctx.Width != 120 || ctx.Height != 60 {
		t.Errorf("Expected 120x60 kept, got %dx%d", ctx.Width, ctx.Height)
	}
}

func TestCrashRecordedOnce(t *testing.T) {
	ctx, _, sound := newTestContext(t, nil)
	ctx.Queue.Push(event.GameEvent{Kind: event.Start})
	ctx.Step(0.01)

	st := ctx.State
	st.Obstacles[0] = game.Obstacle{S: st.Player.S + 0.1, Lane: st.Player.Lane}
	ctx.Step(0.01)
	if st.Phase != game.PhaseCrashed {
		t.Fatalf("Expected crash, got %s", st.Phase)
	}
	if !slices.Contains(sound.cues, game.CueCrash) {
		t.Errorf("Expected crash cue, got %v", sound.cues)
	}
	ctx.Step(0.01)
	ctx.Step(0.01)
	if races := ctx.scores.Record().Races; races != 1 {
		t.Errorf("Expected one recorded race, got %d", races)
	}

	// A restarted run is recorded again when it ends
	ctx.Queue.Push(event.GameEvent{Kind: event.Restart})
	ctx.Step(0.01)
	st.Obstacles[0] = game.Obstacle{S: st.Player.S + 0.1, Lane: st.Player.Lane}
	ctx.Step(0.01)
	if races := ctx.scores.Record().Races; races != 2 {
		t.Errorf("Expected two recorded races, got %d", races)
	}
}

func TestMapInput(t *testing.T) {
	ctx, _, _ := newTestContext(t, nil)
	ctx.MapInput(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'p'})
	ctx.MapInput(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: '~'})
	events := ctx.Queue.Consume()
	if len(events) != 1 || events[0].Kind != event.Pause {
		t.Errorf("Expected one Pause, got %v", events)
	}
}

func TestReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rails.toml")
	if err := os.WriteFile(path, []byte("seed = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	var out bytes.Buffer
	ctx, err := NewGameContext(Options{Config: cfg, ConfigPath: path, Out: &out, Width: 80, Height: 40})
	if err != nil {
		t.Fatalf("NewGameContext failed: %v", err)
	}

	body := "seed = 1\ntrack = \"circuit\"\n[palette]\nplayer = \"#010203\"\n[keys]\nk = \"quit\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx.Queue.Push(event.GameEvent{Kind: event.Reload})
	if err := ctx.Step(0.01); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	if want := (terminal.RGB{R: 1, G: 2, B: 3}); ctx.Scene.Palette.Player != want {
		t.Errorf("Expected reloaded player color %v, got %v", want, ctx.Scene.Palette.Player)
	}
	if ctx.Config.Track != config.TrackWave {
		t.Errorf("Expected track kept until restart, got %q", ctx.Config.Track)
	}
	ctx.MapInput(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'k'})
	if events := ctx.Queue.Consume(); len(events) != 1 || events[0].Kind != event.Quit {
		t.Errorf("Expected rebound k to quit, got %v", events)
	}

	// A broken file keeps the running config
	os.WriteFile(path, []byte("fov = 1.0\n"), 0o644)
	if err := ctx.Reload(); err == nil {
		t.Error("Expected reload error")
	}
	if ctx.Config.FOV != parameter.FieldOfView {
		t.Errorf("Expected fov unchanged, got %f", ctx.Config.FOV)
	}
}

func TestWriteError(t *testing.T) {
	ctx, err := NewGameContext(Options{Out: failingWriter{}, Width: 80, Height: 30})
	if err != nil {
		t.Fatalf("NewGameContext failed: %v", err)
	}
	if err := ctx.Step(0.01); err == nil {
		t.Error("Expected write error")
	}
}

func TestCircuitContext(t *testing.T) {
	cfg := config.Default()
	cfg.Track = config.TrackCircuit
	ctx, out, _ := newTestContext(t, cfg)
	if !ctx.State.IsCircuit() {
		t.Fatal("Expected circuit state")
	}
	ctx.Queue.Push(event.GameEvent{Kind: event.Start})
	for range 30 {
		if err := ctx.Step(1.0 / 30); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}
	if !strings.Contains(out.String(), "LAP: 1/3") {
		t.Error("Expected lap counter in panel")
	}
}

func TestReloadFieldOfView(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rails.toml")
	if err := os.WriteFile(path, []byte("seed = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	var out bytes.Buffer
	ctx, err := NewGameContext(Options{Config: cfg, ConfigPath: path, Out: &out, Width: 80, Height: 40})
	if err != nil {
		t.Fatalf("NewGameContext failed: %v", err)
	}
	before := ctx.Projector.Focal

	if err := os.WriteFile(path, []byte("seed = 1\nfov = 100.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx.Queue.Push(event.GameEvent{Kind: event.Reload})
	if err := ctx.Step(0.01); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	if ctx.Projector.Focal >= before {
		t.Errorf("Expected wider fov to shorten focal length below %f, got %f", before, ctx.Projector.Focal)
	}
}

func TestReloadResizesRace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rails.toml")
	if err := os.WriteFile(path, []byte("seed = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	var out bytes.Buffer
	ctx, err := NewGameContext(Options{Config: cfg, ConfigPath: path, Out: &out, Width: 80, Height: 40})
	if err != nil {
		t.Fatalf("NewGameContext failed: %v", err)
	}
	ctx.Queue.Push(event.GameEvent{Kind: event.Start})
	if err := ctx.Step(0.01); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	body := "seed = 1\n[tuning]\nobstacle_count = 10\nrivals = 4\nlaps = 5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx.Queue.Push(event.GameEvent{Kind: event.Reload})
	if err := ctx.Step(0.01); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	ctx.Queue.Push(event.GameEvent{Kind: event.Restart})
	if err := ctx.Step(0.01); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	st := ctx.State
	if len(st.Obstacles) != 10 {
		t.Errorf("Expected 10 obstacles after restart, got %d", len(st.Obstacles))
	}
	if len(st.Rivals) != 4 {
		t.Errorf("Expected 4 rivals after restart, got %d", len(st.Rivals))
	}
	if st.Laps.Total != 5 {
		t.Errorf("Expected 5 laps, got %d", st.Laps.Total)
	}
	if len(st.Standings()) != 5 {
		t.Errorf("Expected player plus 4 rivals in standings, got %d", len(st.Standings()))
	}
}

func TestReloadOnSplashAppliesNow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rails.yaml")
	if err := os.WriteFile(path, []byte("seed: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	var out bytes.Buffer
	ctx, err := NewGameContext(Options{Config: cfg, ConfigPath: path, Out: &out, Width: 80, Height: 40})
	if err != nil {
		t.Fatalf("NewGameContext failed: %v", err)
	}

	body := "seed: 1\ntuning:\n  obstacle_count: 3\n  rivals: 1\n  laps: 2\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx.Queue.Push(event.GameEvent{Kind: event.Reload})
	if err := ctx.Step(0.01); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	st := ctx.State
	if st.Phase != game.PhaseSplash {
		t.Fatalf("Expected splash, got %v", st.Phase)
	}
	if len(st.Obstacles) != 3 || len(st.Rivals) != 1 || st.Laps.Total != 2 {
		t.Errorf("Expected 3 obstacles 1 rival 2 laps, got %d %d %d", len(st.Obstacles), len(st.Rivals), st.Laps.Total)
	}
}

func TestReloadFailureShowsStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rails.toml")
	if err := os.WriteFile(path, []byte("seed = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	var out bytes.Buffer
	ctx, err := NewGameContext(Options{Config: cfg, ConfigPath: path, Out: &out, Width: 80, Height: 40})
	if err != nil {
		t.Fatalf("NewGameContext failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("fov = 1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx.Queue.Push(event.GameEvent{Kind: event.Reload})
	if err := ctx.Step(0.01); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	if ctx.State.Status.Message != parameter.TextReloadFailed {
		t.Errorf("Expected %q, got %q", parameter.TextReloadFailed, ctx.State.Status.Message)
	}
	if ctx.Config.FOV != parameter.FieldOfView {
		t.Errorf("Expected fov unchanged, got %f", ctx.Config.FOV)
	}
}
