package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"
)

const (
	Title     = "Blockfall"
	tickDelta = 1.0 / 60.0
)

// Overlay draws on top of the game. Its frame is open while the systems run,
// so systems registered alongside it can issue draw calls.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

// ebitenKeys reads key state from ebiten's input handler.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) JustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// Game implements ebiten.Game over an engine. All engine mutation happens in
// Update through the scheduler.
type Game struct {
	engine    *tetris.Engine
	scheduler *loop.Scheduler
	inbox     *loop.Inbox
	keys      KeyState
	repeater  *keyRepeater
	flash     *Flash
	face      text.Face
	overlay   Overlay
	logger    log.FieldLogger

	// CaptureKeyboard reports whether the overlay wants keyboard input, in
	// which case game keys are ignored.
	CaptureKeyboard func() bool
}

// NewGame wires the systems that drive the engine at ebiten's tick rate.
func NewGame(engine *tetris.Engine, cfg config.Config, player audio.Player, logger log.FieldLogger) *Game {
	g := &Game{
		engine:    engine,
		scheduler: loop.NewScheduler(engine),
		inbox:     loop.NewInbox(16),
		keys:      ebitenKeys{},
		repeater:  newKeyRepeater(),
		flash:     &Flash{},
		face:      text.NewGoXFace(basicfont.Face7x13),
		logger:    logger,
	}

	g.scheduler.Register(&loop.InputSystem{Inbox: g.inbox})
	g.scheduler.Register(&loop.GravitySystem{Interval: cfg.StepInterval})
	g.scheduler.Register(&loop.LogSystem{Logger: logger})
	g.scheduler.Register(&audio.CueSystem{Player: player})
	g.scheduler.Register(&FlashSystem{Flash: g.flash})
	return g
}

// Scheduler exposes the frame scheduler so callers can register extra
// systems, such as a debug overlay.
func (g *Game) Scheduler() *loop.Scheduler {
	return g.scheduler
}

func (g *Game) SetOverlay(overlay Overlay) {
	g.overlay = overlay
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.CaptureKeyboard == nil || !g.CaptureKeyboard() {
		for _, action := range g.repeater.actions(g.keys, tickDelta) {
			if !g.inbox.Post(action) {
				g.logger.WithField("action", action).Warn("input dropped")
			}
		}
	}

	if g.overlay != nil {
		g.overlay.BeginFrame()
	}
	g.scheduler.Once(tickDelta)
	if g.overlay != nil {
		g.overlay.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	board := boardRect(g.engine.Width(), g.engine.Height())
	vector.StrokeRect(screen, float32(board.Min.X-2), float32(board.Min.Y-2),
		float32(board.Dx()+4), float32(board.Dy()+4), 2, frameColor, false)

	for c := range g.engine.Coords() {
		fillRect(screen, cellRect(c), cellColor(g.engine.CellAt(c)))
		r := cellRect(c)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y),
			float32(r.Dx()), float32(r.Dy()), 1, gridColor, false)
	}

	if alpha := g.flash.Alpha(); alpha > 0 {
		a := uint8(alpha * 160)
		fillRect(screen, board, color.RGBA{R: a, G: a, B: a, A: a})
	}

	g.drawPanel(screen)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	origin := panelOrigin(g.engine.Width())
	stats := g.engine.Stats()

	lines := []string{
		"BLOCKFALL",
		"",
		fmt.Sprintf("SCORE %d", g.engine.Score()),
		fmt.Sprintf("LINES %d", stats.Lines),
		fmt.Sprintf("PIECES %d", stats.Pieces),
	}
	for i, s := range lines {
		g.drawText(screen, s, origin.Add(image.Pt(0, i*lineHeight)), textColor)
	}

	if g.engine.IsGameOver() {
		y := origin.Y + len(lines)*lineHeight + lineHeight
		g.drawText(screen, "GAME OVER", image.Pt(origin.X, y), gameOverColor)
		g.drawText(screen, "Press R to restart", image.Pt(origin.X, y+lineHeight), textColor)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, at image.Point, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}

func fillRect(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()), clr, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return ScreenSize(g.engine.Width(), g.engine.Height())
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(ScreenSize(g.engine.Width(), g.engine.Height()))
	ebiten.SetWindowTitle(Title)

	g.logger.Info("window session started")
	err := ebiten.RunGame(g)
	g.logger.WithFields(log.Fields{
		"frames": g.scheduler.GetStats().Frames,
		"score":  g.engine.Score(),
	}).Info("window session ended")

	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
