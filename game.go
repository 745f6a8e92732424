package sapling

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int

	// Input drives Target (a Camera2D node) from the keyboard and mouse.
	// Both nil disables input handling.
	Input  *InputController2d
	Target *Node

	// Draw is called each frame after the scene is updated. Rendering is
	// up to the caller; sapling only maintains camera and node state.
	Draw func(screen *ebiten.Image, s *Scene)
}

// Game adapts a Scene to ebiten.Game.
type Game struct {
	scene  *Scene
	cfg    RunConfig
	source InputSource
}

// NewGame wraps scene for use with ebiten.RunGame.
func NewGame(scene *Scene, cfg RunConfig) *Game {
	return &Game{scene: scene, cfg: cfg, source: EbitenInput{}}
}

// Update reads input, then advances the scene by one tick.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if g.cfg.Input != nil && g.cfg.Target != nil {
		in := g.cfg.Input.Update(g.source, dt)
		g.cfg.Input.Apply(in, g.cfg.Target)
	}
	g.scene.Update(dt)
	return nil
}

// Draw calls the configured draw hook.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen, g.scene)
	}
}

// Layout returns the configured logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Width > 0 && g.cfg.Height > 0 {
		return g.cfg.Width, g.cfg.Height
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and runs scene until the window is closed.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 480
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if err := ebiten.RunGame(NewGame(scene, cfg)); err != nil {
		return fmt.Errorf("sapling: run: %w", err)
	}
	return nil
}
