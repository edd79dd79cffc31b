package component

// NPCTag marks an entity as a wandering NPC and carries its display name.
type NPCTag struct {
	Name string
}

var NPCTagComponent = NewComponent[NPCTag]()
