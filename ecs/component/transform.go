package component

// Transform is the world-space placement of an entity. Wandering only ever
// writes X and Y; Z is carried through untouched.
type Transform struct {
	X float64
	Y float64
	Z float64
}

var TransformComponent = NewComponent[Transform]()
