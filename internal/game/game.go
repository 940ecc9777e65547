package game

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/brogue/internal/entity"
	"github.com/samdwyer/brogue/internal/gamedata"
	"github.com/samdwyer/brogue/internal/telemetry"
	"github.com/samdwyer/brogue/internal/ui"
)

// eventBuffer is how many terminal events may queue between ticks.
const eventBuffer = 64

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	keys     *gamedata.KeyRegistry
	state    *State
	camera   *entity.Camera
	events   chan tcell.Event
	running  bool
}

// New creates a new game instance on the controlling terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	g, err := newGame(screen, cfg)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// newGame builds a game on an initialized screen.
func newGame(screen *ui.Screen, cfg Config) (*Game, error) {
	keys, err := gamedata.LoadKeyRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load key bindings: %w", err)
	}
	terrain, err := gamedata.LoadTerrain()
	if err != nil {
		return nil, fmt.Errorf("failed to load terrain: %w", err)
	}

	screen.SetTitle(cfg.Title)

	// The stored map seed records launch time only; generation is seeded
	// by InitialSeed and later by the clock.
	state := NewState(cfg.Width, cfg.Height, uint64(time.Now().Unix()), terrain)

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		keys:     keys,
		state:    state,
		camera:   entity.NewCamera(cfg.Width, cfg.Height),
		events:   make(chan tcell.Event, eventBuffer),
		running:  true,
	}, nil
}

// Run executes the main game loop until a quit key is pressed or ctx ends.
func (g *Game) Run(ctx context.Context) error {
	g.setup(ctx)

	// Invariant violations panic; give the terminal back before they surface.
	defer func() {
		if r := recover(); r != nil {
			g.screen.Close()
			panic(r)
		}
	}()

	done := make(chan struct{})
	defer close(done)
	go g.screen.PumpEvents(g.events, done)

	ticker := time.NewTicker(g.cfg.frameInterval())
	defer ticker.Stop()

	last := time.Now()
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case now := <-ticker.C:
			g.Tick(ctx, g.pendingKey(), now.Sub(last))
			last = now
		}
	}

	g.screen.Close()
	log.Info("game loop stopped")
	return nil
}

// setup generates the first map and places the player.
func (g *Game) setup(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	g.state.Map.Generate(ctx, g.cfg.InitialSeed)
	g.state.Player.SetPosition(g.state.Width/2, g.state.Height/2)

	span.SetAttributes(
		attribute.Int("map.width", g.state.Width),
		attribute.Int("map.height", g.state.Height),
		attribute.Int("player.start_x", g.state.Player.X),
		attribute.Int("player.start_y", g.state.Player.Y),
		attribute.Int("fps_cap", g.cfg.FPSCap),
	)
	log.WithFields(log.Fields{
		"width":  g.state.Width,
		"height": g.state.Height,
		"seed":   g.cfg.InitialSeed,
	}).Info("game initialized")
}

// pendingKey drains queued events and returns the most recent key press.
// Earlier key presses in the same frame are dropped.
func (g *Game) pendingKey() *tcell.EventKey {
	var key *tcell.EventKey
	for {
		select {
		case ev := <-g.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				key = ev
			case *tcell.EventResize:
				g.resize()
			}
		default:
			return key
		}
	}
}

// resize redraws the whole screen after a terminal resize and reports
// whether the map still fits.
func (g *Game) resize() bool {
	g.screen.Sync()
	width, height := g.screen.Size()
	fits := width >= g.cfg.Width && height >= g.cfg.Height
	if !fits {
		log.WithFields(log.Fields{
			"terminal_width":  width,
			"terminal_height": height,
			"map_width":       g.cfg.Width,
			"map_height":      g.cfg.Height,
		}).Warn("terminal smaller than map, drawing is clipped")
	}
	return fits
}

// Tick advances one frame: clear, apply the key, highlight the player's
// tile and draw. key may be nil.
func (g *Game) Tick(ctx context.Context, key *tcell.EventKey, frameTime time.Duration) {
	g.screen.Clear()

	g.handleKey(ctx, key)
	if !g.running {
		return
	}

	g.state.Highlight()
	g.renderer.Render(g.state.Map, g.state.Player, g.camera, FPS(frameTime))
}

// handleKey dispatches a key press through the key bindings.
func (g *Game) handleKey(ctx context.Context, key *tcell.EventKey) {
	bounds := g.state.Bounds()
	player := g.state.Player

	switch g.keys.Lookup(key) {
	case gamedata.ActionMoveUp:
		player.MoveUp(bounds)
	case gamedata.ActionMoveDown:
		player.MoveDown(bounds)
	case gamedata.ActionMoveLeft:
		player.MoveLeft(bounds)
	case gamedata.ActionMoveRight:
		player.MoveRight(bounds)
	case gamedata.ActionQuit:
		g.running = false
	case gamedata.ActionRegenerate:
		g.regenerate(ctx)
	}
}

// regenerate replaces the map with fresh time-seeded terrain.
func (g *Game) regenerate(ctx context.Context) {
	log.Debug("regenerating map")
	g.state.Map.Generate(ctx, 0)
}

// Running reports whether the loop should keep going.
func (g *Game) Running() bool {
	return g.running
}

// State returns the game state.
func (g *Game) State() *State {
	return g.state
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}

// FPS converts a frame duration to a whole frames-per-second figure.
// A zero or negative frame time reports 0.
func FPS(frameTime time.Duration) int {
	ms := float64(frameTime) / float64(time.Millisecond)
	if ms <= 0 {
		return 0
	}
	return int(math.Floor(1000 / ms))
}
