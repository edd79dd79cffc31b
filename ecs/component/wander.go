package component

import "github.com/milk9111/npcwander/wander"

// Wander attaches a wandering controller to an entity. Spec names the prefab
// the controller was built from so hot reloads can find it again.
type Wander struct {
	Spec       string
	Controller *wander.Wanderer
}

var WanderComponent = NewComponent[Wander]()

// WanderTransitionEventType is the ecs.Event type pushed when an agent's
// controller changes state.
const WanderTransitionEventType = "wander_transition"

// WanderTransition is the payload of a wander_transition event.
type WanderTransition struct {
	Entity   uint64
	From     wander.State
	To       wander.State
	Duration float64
	X, Y     float64
}
