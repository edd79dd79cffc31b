package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/npcwander/wander"
)

var (
	boundsStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	idleStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	movingStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// cellGrid maps the wander rectangle onto the terminal, leaving a one cell
// border for the box and a status line on top.
type cellGrid struct {
	bounds        wander.Bounds
	left, top     int
	width, height int
}

func newCellGrid(b wander.Bounds, screenW, screenH int) cellGrid {
	return cellGrid{
		bounds: b,
		left:   1,
		top:    2,
		width:  max(screenW-2, 1),
		height: max(screenH-3, 1),
	}
}

func (g cellGrid) cell(x, y float64) (int, int) {
	size := g.bounds.Size()
	fx, fy := 0.5, 0.5
	if size.X > 0 {
		fx = (x - g.bounds.MinX) / size.X
	}
	if size.Y > 0 {
		fy = (g.bounds.MaxY - y) / size.Y
	}
	cx := g.left + int(math.Round(fx*float64(g.width-1)))
	cy := g.top + int(math.Round(fy*float64(g.height-1)))
	return cx, cy
}

func (v *terminalView) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	grid := newCellGrid(v.world.Bounds(), w, h)

	drawBox(v.screen, grid.left-1, grid.top-1, grid.left+grid.width, grid.top+grid.height, boundsStyle)

	idle, moving := 0, 0
	for _, e := range v.world.NPCs {
		pos, ok := v.world.Position(e)
		if !ok {
			continue
		}
		state, _ := v.world.State(e)
		r, style := 'o', idleStyle
		if state == wander.Moving {
			r, style = '@', movingStyle
			moving++
		} else {
			idle++
		}
		cx, cy := grid.cell(pos.X, pos.Y)
		v.screen.SetContent(cx, cy, r, nil, style)
	}

	clock := v.world.ECS.Clock()
	status := fmt.Sprintf("%s  t=%.1fs  idle=%d moving=%d  (q to quit)", v.world.Spec.Name, clock.Elapsed, idle, moving)
	drawText(v.screen, 0, 0, status, textStyle)

	v.screen.Show()
}

func drawBox(s tcell.Screen, x0, y0, x1, y1 int, style tcell.Style) {
	for x := x0 + 1; x < x1; x++ {
		s.SetContent(x, y0, tcell.RuneHLine, nil, style)
		s.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		s.SetContent(x0, y, tcell.RuneVLine, nil, style)
		s.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	s.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	s.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	s.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
