package state

import (
	"fmt"

	"adventure/pkg/engine/world"
)

// Adventurer is the player's inventory
type Adventurer struct {
	owned world.ItemSet
}

// NewAdventurer creates an adventurer carrying nothing
func NewAdventurer() *Adventurer {
	return &Adventurer{owned: world.NewItemSet()}
}

// HasItem checks if the adventurer carries a specific item
func (a *Adventurer) HasItem(item world.Item) bool {
	return a.owned.Has(item)
}

// PickUpItem adds an item to the adventurer's inventory
func (a *Adventurer) PickUpItem(item world.Item) {
	a.owned.Put(item)
}

func (a *Adventurer) HasLamp() bool {
	return a.HasItem(world.Lamp)
}

func (a *Adventurer) SetLamp(b bool) {
	a.set(world.Lamp, b)
}

func (a *Adventurer) HasKey() bool {
	return a.HasItem(world.Key)
}

func (a *Adventurer) SetKey(b bool) {
	a.set(world.Key, b)
}

func (a *Adventurer) set(item world.Item, carried bool) {
	if carried {
		a.owned.Put(item)
	} else {
		a.owned.Remove(item)
	}
}

func (a *Adventurer) String() string {
	return fmt.Sprintf("Adventurer[hasLamp=%t, hasKey=%t]", a.HasLamp(), a.HasKey())
}
