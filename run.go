package viewstate

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the FPS overlay text is recomputed.
const fpsRefresh = 500 * time.Millisecond

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Background fills the screen before Draw. Nil leaves the screen as is.
	Background color.Color
	// ShowFPS draws FPS and TPS in the top-left corner.
	ShowFPS bool
	// Update, if set, runs every tick after input has been applied and
	// before the controller advances. Returning an error stops the game.
	Update func(c *Controller) error
	// Draw renders one frame from the controller's snapshot.
	Draw func(screen *ebiten.Image, s Snapshot)
}

// Run opens a window and drives c from an Ebitengine game loop: input is
// applied, the controller advances one tick and Draw receives a snapshot.
// c is closed when the loop exits. For full control implement ebiten.Game
// yourself and call ApplyInput, Update and Snapshot directly.
func Run(c *Controller, cfg RunConfig) error {
	if c == nil {
		return errors.New("viewstate: Run requires a controller")
	}
	defer c.Close()
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		c.Resize(float64(cfg.Width), float64(cfg.Height))
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(&runGame{c: c, cfg: cfg}); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type runGame struct {
	c   *Controller
	cfg RunConfig

	fpsText  string
	sinceFPS time.Duration
}

func (g *runGame) Update() error {
	g.c.ApplyInput(ReadEbitenInput())
	if g.cfg.Update != nil {
		if err := g.cfg.Update(g.c); err != nil {
			return err
		}
	}
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	dt := time.Second / time.Duration(tps)
	g.c.Update(dt)

	if g.cfg.ShowFPS {
		g.sinceFPS += dt
		if g.fpsText == "" || g.sinceFPS >= fpsRefresh {
			g.sinceFPS = 0
			g.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
	}
	return nil
}

func (g *runGame) Draw(screen *ebiten.Image) {
	if g.cfg.Background != nil {
		screen.Fill(g.cfg.Background)
	}
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen, g.c.Snapshot())
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrintAt(screen, g.fpsText, 4, 4)
	}
}

func (g *runGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
