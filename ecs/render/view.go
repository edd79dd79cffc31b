// Package render draws the wander world with ebiten. Nothing here mutates
// ECS state.
package render

import "github.com/milk9111/npcwander/wander"

// View maps world units onto screen pixels. World Y points up, screen Y
// points down.
type View struct {
	Scale   float64
	OriginX float64
	OriginY float64
}

// FitView returns a view that centers b on a screen of the given size with
// margin pixels left around it.
func FitView(b wander.Bounds, screenW, screenH int, margin float64) View {
	size := b.Size()
	availW := float64(screenW) - 2*margin
	availH := float64(screenH) - 2*margin

	scale := 1.0
	switch {
	case size.X > 0 && size.Y > 0:
		scale = min(availW/size.X, availH/size.Y)
	case size.X > 0:
		scale = availW / size.X
	case size.Y > 0:
		scale = availH / size.Y
	}
	if scale <= 0 {
		scale = 1
	}

	c := b.Center()
	return View{
		Scale:   scale,
		OriginX: float64(screenW)/2 - c.X*scale,
		OriginY: float64(screenH)/2 + c.Y*scale,
	}
}

// Project converts a world position to screen pixels.
func (v View) Project(x, y float64) (float32, float32) {
	return float32(v.OriginX + x*v.Scale), float32(v.OriginY - y*v.Scale)
}

// ProjectBounds returns the screen rectangle (top-left, size) covering b.
func (v View) ProjectBounds(b wander.Bounds) (x, y, w, h float32) {
	bb := b.BB()
	x, y = v.Project(bb.L, bb.T)
	return x, y, float32((bb.R - bb.L) * v.Scale), float32((bb.T - bb.B) * v.Scale)
}
