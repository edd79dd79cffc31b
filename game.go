package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/npcwander/ecs/render"
	"github.com/milk9111/npcwander/sim"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	viewMargin = 40
)

type Game struct {
	world *sim.World
	debug bool
}

func NewGame(world *sim.World, debug bool) *Game {
	return &Game{world: world, debug: debug}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// tick by real frame time so wandering speed is independent of TPS
	tps := ebiten.ActualTPS()
	if tps <= 0 {
		tps = float64(ebiten.TPS())
	}
	for _, tr := range g.world.Step(1 / tps) {
		if g.debug {
			log.Printf("npc %d: %s -> %s for %.2fs", tr.Entity, tr.From, tr.To, tr.Duration)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	b := screen.Bounds()
	view := render.FitView(render.WorldBounds(g.world.ECS), b.Dx(), b.Dy(), viewMargin)

	if g.debug {
		render.DrawWanderBounds(g.world.ECS, screen, view)
	}
	render.DrawAgents(g.world.ECS, screen, view)
	if g.debug {
		render.DrawWanderDebug(g.world.ECS, screen, view)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
