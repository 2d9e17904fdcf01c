package game

import (
	"fmt"
	"image/color"
	"math/rand"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/simonolander/laniakea/client/flow"
	"github.com/simonolander/laniakea/client/fonts"
	"github.com/simonolander/laniakea/client/input"
	"github.com/simonolander/laniakea/client/scenes"
	"github.com/simonolander/laniakea/client/session"
	"github.com/simonolander/laniakea/pkg/log"
	"golang.org/x/image/font"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// rng seeds the puzzle sessions.
	rng *rand.Rand
	// mode is the current game mode.
	mode flow.GameMode
	// scene is the current scene.
	scene scenes.Scene
	// manager is the running puzzle session, nil outside of play.
	manager *session.Manager
	// guards are held for the duration of a play session.
	guards []session.Guard
	// closeGuard intercepts window close requests during play.
	closeGuard *session.CloseGuard
	// quitRequested is true while the close confirmation is shown.
	quitRequested bool
}

type NewGameOptions struct {
	Debug bool
	// Seed determines every generated puzzle of the run.
	Seed int64
	// Size, when non-zero, skips the menu and starts a game directly.
	Size int
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	closeGuard := session.NewCloseGuard()
	g := &Game{
		debug:      opts.Debug,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		closeGuard: closeGuard,
		guards:     []session.Guard{closeGuard, session.NewWakeGuard()},
	}

	if opts.Size > 0 {
		if err := g.loadPlay(opts.Size); err != nil {
			return nil, fmt.Errorf("failed to load play scene: %v", err)
		}
		return g, nil
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

// teardownSession releases the running puzzle session and stops its guards.
// Safe to call without a running session.
func (g *Game) teardownSession() {
	if g.manager == nil {
		return
	}
	g.manager.Close()
	g.manager = nil
	for _, guard := range g.guards {
		guard.Stop()
	}
}

func (g *Game) loadMenu() error {
	g.teardownSession()

	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		OnStart: func(size int) {
			if err := g.loadPlay(size); err != nil {
				log.Error("Failed to start game: %v", err)
			}
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = flow.GameModeMenu
	return nil
}

func (g *Game) loadPlay(size int) error {
	manager := session.NewManager(size, g.rng.Int63())
	play, err := scenes.NewPlayScene(scenes.PlaySceneOptions{
		Manager: manager,
		OnExit: func() {
			if err := g.loadMenu(); err != nil {
				log.Error("Failed to load menu scene: %v", err)
			}
		},
	})
	if err != nil {
		manager.Close()
		return fmt.Errorf("failed to create play scene: %v", err)
	}
	if err := g.SetScene(play); err != nil {
		manager.Close()
		return fmt.Errorf("failed to set play scene: %v", err)
	}

	g.manager = manager
	for _, guard := range g.guards {
		guard.Start()
	}
	g.mode = flow.GameModePlay
	return nil
}

func (g *Game) Update() error {
	if g.closeGuard.Requested() {
		if g.mode == flow.GameModePlay {
			g.quitRequested = true
		} else {
			return ebiten.Termination
		}
	}

	if g.quitRequested {
		if input.IsConfirmJustPressed() {
			g.teardownSession()
			return ebiten.Termination
		}
		if input.IsNegativeJustPressed() || input.IsPositiveJustPressed() {
			g.quitRequested = false
		}
		// The game is paused while the confirmation is up.
		return nil
	}

	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.quitRequested {
		g.drawQuitConfirmation(screen)
	}
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawQuitConfirmation(screen *ebiten.Image) {
	t := strings.ToUpper("Quit? Enter to confirm, Esc to keep playing")
	f := fonts.TTFNormalFont
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64(bounds.Max.X>>6)/2, float64(screen.Bounds().Dy())/2-float64(bounds.Max.Y>>6)/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, f, op)
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))

	if g.manager == nil {
		return
	}
	snapshot := g.manager.Snapshot()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Size: %dx%d", snapshot.Width, snapshot.Height))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Centers: %d", len(snapshot.Objective.Centers)))
}

const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 720
)

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return DefaultScreenWidth, DefaultScreenHeight
}
